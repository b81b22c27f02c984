package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/paluwagan_app/internal/middleware"
	"github.com/SscSPs/paluwagan_app/internal/platform/clock"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Clock clock.Clock
}

func newBaseService(clk clock.Clock) BaseService {
	if clk == nil {
		clk = clock.System{}
	}
	return BaseService{Clock: clk}
}

// Now returns the current time from the service clock.
func (s *BaseService) Now() time.Time {
	return s.Clock.Now()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}
