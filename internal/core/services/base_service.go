package services

import (
	"context"
	"log/slog"

	portssvc "github.com/jdvries-dev/boekhoud_app/internal/core/ports/services"
	"github.com/jdvries-dev/boekhoud_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	CompanyAuthorizer portssvc.CompanyAuthorizerSvc
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
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

// LogWarn logs a warning message with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// AuthorizeCompany checks that the calling token may act on the company.
func (s *BaseService) AuthorizeCompany(ctx context.Context, companyID string) error {
	if s.CompanyAuthorizer == nil {
		s.LogDebug(ctx, "No company authorizer provided, access granted by default",
			slog.String("company_id", companyID))
		return nil
	}
	tokenCompanyID, _ := middleware.GetTokenCompanyIDFromCtx(ctx)
	return s.CompanyAuthorizer.AuthorizeCompanyAccess(ctx, tokenCompanyID, companyID)
}
