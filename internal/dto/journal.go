package dto

import (
	"time"

	"github.com/jdvries-dev/boekhoud_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateJournalLineRequest is one line of a new journal entry. Exactly one
// of debit/credit should be positive.
type CreateJournalLineRequest struct {
	AccountID   string          `json:"accountID" binding:"required,uuid"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description" binding:"max=200"`
}

// CreateJournalEntryRequest is the payload for creating a draft journal entry.
type CreateJournalEntryRequest struct {
	EntryDate     time.Time                  `json:"entryDate" binding:"required" time_format:"2006-01-02"`
	Description   string                     `json:"description" binding:"max=200"`
	MemoriaalType string                     `json:"memoriaalType" binding:"max=50"`
	Lines         []CreateJournalLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// JournalLineResponse represents a journal line in API responses.
type JournalLineResponse struct {
	LineID      string          `json:"lineID"`
	AccountID   string          `json:"accountID"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description,omitempty"`
}

// JournalEntryResponse represents a journal entry in API responses.
type JournalEntryResponse struct {
	EntryID       string                `json:"entryID"`
	CompanyID     string                `json:"companyID"`
	EntryDate     string                `json:"entryDate"`
	Status        string                `json:"status"`
	Description   string                `json:"description,omitempty"`
	MemoriaalType string                `json:"memoriaalType,omitempty"`
	Lines         []JournalLineResponse `json:"lines,omitempty"`
}

// ListJournalEntriesResponse wraps a page of journal entries.
type ListJournalEntriesResponse struct {
	Entries []JournalEntryResponse `json:"entries"`
}

// ToJournalLineResponse converts a domain journal line.
func ToJournalLineResponse(l *domain.JournalLine) JournalLineResponse {
	return JournalLineResponse{
		LineID:      l.LineID,
		AccountID:   l.AccountID,
		Debit:       l.Debit,
		Credit:      l.Credit,
		Description: l.Description,
	}
}

// ToJournalEntryResponse converts a domain entry with its lines.
func ToJournalEntryResponse(e *domain.EntryWithLines) JournalEntryResponse {
	resp := JournalEntryResponse{
		EntryID:       e.Entry.EntryID,
		CompanyID:     e.Entry.CompanyID,
		EntryDate:     e.Entry.EntryDate.Format("2006-01-02"),
		Status:        string(e.Entry.Status),
		Description:   e.Entry.Description,
		MemoriaalType: e.Entry.MemoriaalType,
	}
	for i := range e.Lines {
		resp.Lines = append(resp.Lines, ToJournalLineResponse(&e.Lines[i]))
	}
	return resp
}

// ToListJournalEntriesResponse converts a page of entries without lines.
func ToListJournalEntriesResponse(entries []domain.JournalEntry) ListJournalEntriesResponse {
	resp := ListJournalEntriesResponse{Entries: make([]JournalEntryResponse, 0, len(entries))}
	for i := range entries {
		e := &entries[i]
		resp.Entries = append(resp.Entries, JournalEntryResponse{
			EntryID:       e.EntryID,
			CompanyID:     e.CompanyID,
			EntryDate:     e.EntryDate.Format("2006-01-02"),
			Status:        string(e.Status),
			Description:   e.Description,
			MemoriaalType: e.MemoriaalType,
		})
	}
	return resp
}
