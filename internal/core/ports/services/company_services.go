package services

import (
	"context"

	"github.com/jdvries-dev/boekhoud_app/internal/core/domain"
)

// CompanyAuthorizerSvc checks that the calling token may act on a company.
// Identity itself is managed by an external service; only the scope check
// lives here.
type CompanyAuthorizerSvc interface {
	AuthorizeCompanyAccess(ctx context.Context, tokenCompanyID, companyID string) error
}

// CompanyReaderSvc exposes read access to company profiles.
type CompanyReaderSvc interface {
	GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)
}

// CompanySvcFacade combines all company-related service operations.
type CompanySvcFacade interface {
	CompanyAuthorizerSvc
	CompanyReaderSvc
}
