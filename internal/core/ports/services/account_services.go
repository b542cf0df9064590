package services

import (
	"context"

	"github.com/jdvries-dev/boekhoud_app/internal/core/domain"
	"github.com/jdvries-dev/boekhoud_app/internal/dto"
)

// AccountSvcFacade defines operations for managing ledger accounts.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, companyID, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, companyID string, limit, offset int) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, companyID, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)
	DeactivateAccount(ctx context.Context, companyID, accountID, userID string) error
}
