package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/paluwagan_app/internal/core/ports/services"
	"github.com/SscSPs/paluwagan_app/internal/dto"
	"github.com/SscSPs/paluwagan_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// memberHandler handles the caller's linked members.
type memberHandler struct {
	memberService portssvc.LinkedMemberSvc
}

func registerMemberRoutes(rg *gin.RouterGroup, ms portssvc.LinkedMemberSvc) {
	h := &memberHandler{memberService: ms}

	members := rg.Group("/members")
	{
		members.POST("", h.addMember)
		members.GET("", h.listMembers)
	}
}

// addMember godoc
// @Summary Link a member to the caller
// @Description Adds a pending sub-account that an admin must approve
// @Tags members
// @Accept  json
// @Produce  json
// @Param   member body dto.AddLinkedMemberRequest true "Member details"
// @Success 201 {object} dto.LinkedMemberResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /members [post]
func (h *memberHandler) addMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AddLinkedMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err, "request format")
		return
	}
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	member, err := h.memberService.AddLinkedMember(c.Request.Context(), caller.UserID, req)
	if err != nil {
		handleError(c, logger, err, "Add linked member")
		return
	}
	c.JSON(http.StatusCreated, dto.ToLinkedMemberResponse(member))
}

// listMembers godoc
// @Summary List the caller's linked members
// @Tags members
// @Produce  json
// @Success 200 {array} dto.LinkedMemberResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /members [get]
func (h *memberHandler) listMembers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	members, err := h.memberService.ListLinkedMembers(c.Request.Context(), caller.UserID)
	if err != nil {
		handleError(c, logger, err, "List linked members")
		return
	}
	c.JSON(http.StatusOK, dto.ToLinkedMemberResponses(members))
}
