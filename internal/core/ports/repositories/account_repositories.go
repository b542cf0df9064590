package repositories

import (
	"context"
	"time"

	"github.com/jdvries-dev/boekhoud_app/internal/core/domain"
)

// AccountRepository defines persistence operations for ledger accounts.
// All operations are company-scoped.
type AccountRepository interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// FindAccountByID retrieves an account by its ID.
	// Returns apperrors.ErrNotFound if no such account exists in the company.
	FindAccountByID(ctx context.Context, companyID, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts keyed by their IDs.
	// Missing IDs are simply absent from the result map.
	FindAccountsByIDs(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.Account, error)

	// FindActiveAccounts retrieves all active accounts ordered by code ascending.
	FindActiveAccounts(ctx context.Context, companyID string) ([]domain.Account, error)

	// ListAccounts retrieves accounts with pagination, ordered by code ascending.
	ListAccounts(ctx context.Context, companyID string, limit, offset int) ([]domain.Account, error)

	// UpdateAccount persists administrative edits to an existing account.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeactivateAccount marks an account inactive.
	DeactivateAccount(ctx context.Context, companyID, accountID, userID string, now time.Time) error
}
