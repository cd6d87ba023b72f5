package dto

import (
	"time"

	"github.com/SscSPs/erp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateJournalLineRequest is one line of a new journal entry.
type CreateJournalLineRequest struct {
	AccountID   string          `json:"accountID" binding:"required"`
	Debit       decimal.Decimal `json:"debit" binding:"dgte0,dscale"`
	Credit      decimal.Decimal `json:"credit" binding:"dgte0,dscale"`
	Description *string         `json:"description"`
}

// CreateJournalEntryRequest defines the header and lines of a new journal entry.
// Status defaults to DRAFT; an entry created as POSTED updates balances immediately.
type CreateJournalEntryRequest struct {
	EntryDate   time.Time                  `json:"entryDate" binding:"required"`
	Description string                     `json:"description"`
	Reference   *string                    `json:"reference"`
	Status      domain.JournalStatus       `json:"status" binding:"omitempty,oneof=DRAFT POSTED"`
	Lines       []CreateJournalLineRequest `json:"lines" binding:"dive"`
}

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	LineID      string          `json:"lineID"`
	LineNumber  int             `json:"lineNumber"`
	AccountID   string          `json:"accountID"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description *string         `json:"description,omitempty"`
}

// JournalEntryResponse defines the data returned for a journal entry with its lines.
type JournalEntryResponse struct {
	JournalEntryID string                `json:"journalEntryID"`
	EntryDate      time.Time             `json:"entryDate"`
	Description    string                `json:"description"`
	Reference      *string               `json:"reference,omitempty"`
	Status         domain.JournalStatus  `json:"status"`
	PostedAt       *time.Time            `json:"postedAt,omitempty"`
	Lines          []JournalLineResponse `json:"lines"`
	CreatedAt      time.Time             `json:"createdAt"`
	CreatedBy      string                `json:"createdBy"`
}

// ListJournalEntriesResponse wraps a page of journal entries.
type ListJournalEntriesResponse struct {
	JournalEntries []JournalEntryResponse `json:"journalEntries"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to JournalEntryResponse DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	lines := make([]JournalLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = JournalLineResponse{
			LineID:      l.LineID,
			LineNumber:  l.LineNumber,
			AccountID:   l.AccountID,
			Debit:       l.Debit,
			Credit:      l.Credit,
			Description: l.Description,
		}
	}
	return JournalEntryResponse{
		JournalEntryID: e.JournalEntryID,
		EntryDate:      e.EntryDate,
		Description:    e.Description,
		Reference:      e.Reference,
		Status:         e.Status,
		PostedAt:       e.PostedAt,
		Lines:          lines,
		CreatedAt:      e.CreatedAt,
		CreatedBy:      e.CreatedBy,
	}
}

// ToJournalEntryResponses converts a slice of domain.JournalEntry.
func ToJournalEntryResponses(entries []domain.JournalEntry) []JournalEntryResponse {
	res := make([]JournalEntryResponse, len(entries))
	for i := range entries {
		res[i] = ToJournalEntryResponse(&entries[i])
	}
	return res
}
