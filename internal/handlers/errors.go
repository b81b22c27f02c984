package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/paluwagan_app/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// statusForError maps service errors onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrOverPayment):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrInvalidAmount), errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrInvalidTransition),
		errors.Is(err, apperrors.ErrInvalidState),
		errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// handleError logs err and writes the failure response. Infrastructure details stay in the log.
func handleError(c *gin.Context, logger *slog.Logger, err error, action string) {
	status := statusForError(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		logger.Error(action+" failed", slog.String("error", err.Error()))
		message = action + " failed"
		if status == http.StatusServiceUnavailable {
			message = "Record store unavailable, try again later"
		}
	} else {
		logger.Warn(action+" refused", slog.String("error", err.Error()), slog.Int("status", status))
	}
	c.JSON(status, gin.H{"success": false, "error": message})
}

// badRequest writes a 400 for malformed input that never reached a service.
func badRequest(c *gin.Context, logger *slog.Logger, err error, what string) {
	logger.Warn("Invalid "+what, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid " + what + ": " + err.Error()})
}
