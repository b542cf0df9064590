package repositories

import (
	"context"
	"time"

	"github.com/jdvries-dev/boekhoud_app/internal/core/domain"
)

// JournalRepository defines persistence operations for journal entries and
// their lines on the write side of the application.
type JournalRepository interface {
	// SaveEntry persists a new journal entry together with its lines,
	// atomically.
	SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error

	// FindEntryByID retrieves a journal entry with its lines.
	// Returns apperrors.ErrNotFound if no such entry exists in the company.
	FindEntryByID(ctx context.Context, companyID, entryID string) (*domain.EntryWithLines, error)

	// FinalizeEntry transitions a draft entry to FINAL. Once final the entry
	// is immutable; the reporting core's correctness depends on that.
	FinalizeEntry(ctx context.Context, companyID, entryID, userID string, now time.Time) error

	// ListEntries retrieves journal entries with pagination, ordered by
	// entry date descending (newest first, for browsing).
	ListEntries(ctx context.Context, companyID string, limit, offset int) ([]domain.JournalEntry, error)
}

// LedgerReadRepository is the read-only store adapter consumed by the
// reporting core. Every read reflects the latest posted state; there is no
// caching layer in front of it.
type LedgerReadRepository interface {
	// FindFinalLines retrieves all lines of FINAL entries up to the cutoff
	// date, joined with their parent entry's date. The bound is strict
	// (entry_date < cutoff) unless inclusive is set (entry_date <= cutoff).
	// An empty result is a legitimate outcome, not an error.
	FindFinalLines(ctx context.Context, companyID string, cutoff time.Time, inclusive bool) ([]domain.DatedLine, error)

	// FindFinalEntriesInPeriod retrieves FINAL entries whose date falls in
	// the closed period, each with its owned lines, ordered by entry date
	// ascending.
	FindFinalEntriesInPeriod(ctx context.Context, companyID string, period domain.FiscalPeriod) ([]domain.EntryWithLines, error)
}
