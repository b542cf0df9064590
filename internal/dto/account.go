package dto

import (
	"time"

	"github.com/jdvries-dev/boekhoud_app/internal/core/domain"
)

// CreateAccountRequest is the payload for creating a ledger account.
type CreateAccountRequest struct {
	Code         string             `json:"code" binding:"required,max=10"`
	Name         string             `json:"name" binding:"required,max=100"`
	AccountType  domain.AccountType `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	Role         domain.AccountRole `json:"role" binding:"omitempty,oneof=PRIVATE"`
	TaxonomyCode string             `json:"taxonomyCode" binding:"omitempty,max=20"`
}

// UpdateAccountRequest is the payload for administrative edits to an account.
// Nil fields are left unchanged.
type UpdateAccountRequest struct {
	Name         *string             `json:"name" binding:"omitempty,max=100"`
	Role         *domain.AccountRole `json:"role" binding:"omitempty,oneof=PRIVATE"`
	TaxonomyCode *string             `json:"taxonomyCode" binding:"omitempty,max=20"`
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	AccountID    string `json:"accountID"`
	CompanyID    string `json:"companyID"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	AccountType  string `json:"accountType"`
	Role         string `json:"role,omitempty"`
	TaxonomyCode string `json:"taxonomyCode,omitempty"`
	IsActive     bool   `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ListAccountsResponse wraps a page of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain account to its response DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:    acc.AccountID,
		CompanyID:    acc.CompanyID,
		Code:         acc.Code,
		Name:         acc.Name,
		AccountType:  string(acc.AccountType),
		Role:         string(acc.Role),
		TaxonomyCode: acc.TaxonomyCode,
		IsActive:     acc.IsActive,
		CreatedAt:    acc.CreatedAt,
	}
}

// ToListAccountsResponse converts a slice of domain accounts.
func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	resp := ListAccountsResponse{Accounts: make([]AccountResponse, 0, len(accounts))}
	for i := range accounts {
		resp.Accounts = append(resp.Accounts, ToAccountResponse(&accounts[i]))
	}
	return resp
}
