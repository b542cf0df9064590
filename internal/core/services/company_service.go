package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jdvries-dev/boekhoud_app/internal/apperrors"
	"github.com/jdvries-dev/boekhoud_app/internal/core/domain"
	portsrepo "github.com/jdvries-dev/boekhoud_app/internal/core/ports/repositories"
	portssvc "github.com/jdvries-dev/boekhoud_app/internal/core/ports/services"
)

// companyService implements the CompanySvcFacade interface.
type companyService struct {
	BaseService
	companyRepo portsrepo.CompanyRepository
}

// NewCompanyService creates a new company service
func NewCompanyService(companyRepo portsrepo.CompanyRepository) portssvc.CompanySvcFacade {
	return &companyService{
		companyRepo: companyRepo,
	}
}

var _ portssvc.CompanySvcFacade = (*companyService)(nil)

// AuthorizeCompanyAccess checks that the token's company scope matches the
// company being acted on. Identity is managed externally; only the scope
// check lives here.
func (s *companyService) AuthorizeCompanyAccess(ctx context.Context, tokenCompanyID, companyID string) error {
	if tokenCompanyID == "" || tokenCompanyID != companyID {
		s.LogWarn(ctx, "Company access denied",
			slog.String("token_company_id", tokenCompanyID),
			slog.String("company_id", companyID))
		return fmt.Errorf("%w: token is not scoped to company %s", apperrors.ErrForbidden, companyID)
	}
	return nil
}

// GetCompanyByID retrieves a company profile.
func (s *companyService) GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve company",
			slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to retrieve company %s: %w", companyID, err)
	}
	return company, nil
}
