package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jdvries-dev/boekhoud_app/internal/apperrors"
	"github.com/jdvries-dev/boekhoud_app/internal/core/domain"
	portsrepo "github.com/jdvries-dev/boekhoud_app/internal/core/ports/repositories"
	portssvc "github.com/jdvries-dev/boekhoud_app/internal/core/ports/services"
	"github.com/jdvries-dev/boekhoud_app/internal/dto"
	"github.com/shopspring/decimal"
)

var (
	// ErrEntryUnbalanced is returned when a finalizing entry's debits and
	// credits do not match.
	ErrEntryUnbalanced = errors.New("journal entry debits and credits do not balance")
	// ErrEntryMinLines is returned when an entry carries fewer than two lines.
	ErrEntryMinLines = errors.New("journal entry must have at least two lines")
	// ErrEntryNotDraft is returned when finalizing an entry that is not a draft.
	ErrEntryNotDraft = errors.New("only draft entries can be finalized")
	// ErrAccountNotFound is returned when a line references a missing or
	// inactive account.
	ErrAccountNotFound = errors.New("account not found or inactive")
)

// journalService implements the JournalSvcFacade interface. It is the
// upstream posting workflow: balance validation happens here, so the
// reporting core can take final entries as already balanced.
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepository
	accountRepo portsrepo.AccountRepository
}

// JournalServiceOption is a functional option for configuring the journal service
type JournalServiceOption func(*journalService)

// WithJournalCompanyAuthorizer sets the company authorizer for the journal service.
func WithJournalCompanyAuthorizer(authorizer portssvc.CompanyAuthorizerSvc) JournalServiceOption {
	return func(s *journalService) {
		s.CompanyAuthorizer = authorizer
	}
}

// NewJournalService creates a new journal service with the provided options
func NewJournalService(journalRepo portsrepo.JournalRepository, accountRepo portsrepo.AccountRepository, options ...JournalServiceOption) portssvc.JournalSvcFacade {
	svc := &journalService{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// CreateEntry creates a new draft journal entry with its lines.
func (s *journalService) CreateEntry(ctx context.Context, companyID string, req dto.CreateJournalEntryRequest, creatorUserID string) (*domain.EntryWithLines, error) {
	if err := s.AuthorizeCompany(ctx, companyID); err != nil {
		return nil, err
	}

	if len(req.Lines) < 2 {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, ErrEntryMinLines)
	}

	accountIDs := make([]string, 0, len(req.Lines))
	for _, line := range req.Lines {
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return nil, fmt.Errorf("%w: line amounts must not be negative", apperrors.ErrValidation)
		}
		if line.Debit.IsPositive() == line.Credit.IsPositive() {
			return nil, fmt.Errorf("%w: exactly one of debit/credit must be positive per line", apperrors.ErrValidation)
		}
		accountIDs = append(accountIDs, line.AccountID)
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, companyID, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve line accounts: %w", err)
	}
	for _, accountID := range accountIDs {
		account, ok := accounts[accountID]
		if !ok || !account.IsActive {
			return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, accountID)
		}
	}

	now := time.Now().UTC()
	entry := domain.JournalEntry{
		EntryID:       uuid.NewString(),
		CompanyID:     companyID,
		EntryDate:     req.EntryDate,
		Status:        domain.Draft,
		Description:   req.Description,
		MemoriaalType: req.MemoriaalType,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	lines := make([]domain.JournalLine, 0, len(req.Lines))
	for _, lineReq := range req.Lines {
		lines = append(lines, domain.JournalLine{
			LineID:      uuid.NewString(),
			EntryID:     entry.EntryID,
			AccountID:   lineReq.AccountID,
			Debit:       lineReq.Debit.Round(2),
			Credit:      lineReq.Credit.Round(2),
			Description: lineReq.Description,
			AuditFields: entry.AuditFields,
		})
	}

	if err := s.journalRepo.SaveEntry(ctx, entry, lines); err != nil {
		s.LogError(ctx, err, "Failed to save journal entry", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	s.LogInfo(ctx, "Journal entry created",
		slog.String("company_id", companyID),
		slog.String("entry_id", entry.EntryID),
		slog.Int("line_count", len(lines)))
	return &domain.EntryWithLines{Entry: entry, Lines: lines}, nil
}

// GetEntryByID retrieves a journal entry with its lines.
func (s *journalService) GetEntryByID(ctx context.Context, companyID, entryID string) (*domain.EntryWithLines, error) {
	if err := s.AuthorizeCompany(ctx, companyID); err != nil {
		return nil, err
	}

	entry, err := s.journalRepo.FindEntryByID(ctx, companyID, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find journal entry %s: %w", entryID, err)
	}
	return entry, nil
}

// FinalizeEntry validates balance and transitions a draft entry to FINAL,
// after which it is immutable and visible to reporting.
func (s *journalService) FinalizeEntry(ctx context.Context, companyID, entryID, userID string) (*domain.EntryWithLines, error) {
	if err := s.AuthorizeCompany(ctx, companyID); err != nil {
		return nil, err
	}

	entry, err := s.journalRepo.FindEntryByID(ctx, companyID, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find journal entry %s: %w", entryID, err)
	}
	if entry.Entry.Status != domain.Draft {
		return nil, fmt.Errorf("%w: entry %s has status %s", ErrEntryNotDraft, entryID, entry.Entry.Status)
	}
	if len(entry.Lines) < 2 {
		return nil, fmt.Errorf("%w: entry %s", ErrEntryMinLines, entryID)
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, line := range entry.Lines {
		totalDebit = totalDebit.Add(line.Debit)
		totalCredit = totalCredit.Add(line.Credit)
	}
	if !totalDebit.Equal(totalCredit) {
		return nil, fmt.Errorf("%w: debit %s vs credit %s",
			ErrEntryUnbalanced, totalDebit.String(), totalCredit.String())
	}

	now := time.Now().UTC()
	if err := s.journalRepo.FinalizeEntry(ctx, companyID, entryID, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to finalize journal entry",
			slog.String("company_id", companyID),
			slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to finalize journal entry: %w", err)
	}

	entry.Entry.Status = domain.Final
	entry.Entry.LastUpdatedAt = now
	entry.Entry.LastUpdatedBy = userID

	s.LogInfo(ctx, "Journal entry finalized",
		slog.String("company_id", companyID),
		slog.String("entry_id", entryID))
	return entry, nil
}

// ListEntries retrieves journal entries with pagination.
func (s *journalService) ListEntries(ctx context.Context, companyID string, limit, offset int) ([]domain.JournalEntry, error) {
	if err := s.AuthorizeCompany(ctx, companyID); err != nil {
		return nil, err
	}

	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	entries, err := s.journalRepo.ListEntries(ctx, companyID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	return entries, nil
}
