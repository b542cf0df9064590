package repositories

import (
	"context"

	"github.com/jdvries-dev/boekhoud_app/internal/core/domain"
)

// CompanyRepository defines persistence operations for companies.
type CompanyRepository interface {
	// FindCompanyByID retrieves a company by its ID.
	// Returns apperrors.ErrNotFound if no such company exists.
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)
}
