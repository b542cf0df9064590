package services

import (
	"context"

	"github.com/jdvries-dev/boekhoud_app/internal/core/domain"
	"github.com/jdvries-dev/boekhoud_app/internal/dto"
)

// JournalSvcFacade defines operations for managing journal entries upstream
// of the reporting core. Balance validation happens here, at finalize time;
// the reporting core takes final entries as already balanced.
type JournalSvcFacade interface {
	CreateEntry(ctx context.Context, companyID string, req dto.CreateJournalEntryRequest, creatorUserID string) (*domain.EntryWithLines, error)
	GetEntryByID(ctx context.Context, companyID, entryID string) (*domain.EntryWithLines, error)
	FinalizeEntry(ctx context.Context, companyID, entryID, userID string) (*domain.EntryWithLines, error)
	ListEntries(ctx context.Context, companyID string, limit, offset int) ([]domain.JournalEntry, error)
}
