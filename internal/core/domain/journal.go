package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus indicates the state of a journal entry.
type JournalStatus string

const (
	Draft  JournalStatus = "DRAFT"
	Posted JournalStatus = "POSTED"
)

// IsValid reports whether s is a known journal status.
func (s JournalStatus) IsValid() bool {
	return s == Draft || s == Posted
}

// JournalEntry is a header owning an ordered, non-empty set of lines.
// Lines are applied to account balances only once the entry is POSTED.
type JournalEntry struct {
	JournalEntryID string             `json:"journalEntryID"`
	EntryDate      time.Time          `json:"entryDate"`
	Description    string             `json:"description"`
	Reference      *string            `json:"reference,omitempty"`
	Status         JournalStatus      `json:"status"`
	PostedAt       *time.Time         `json:"postedAt,omitempty"`
	Lines          []JournalEntryLine `json:"lines,omitempty"`
	AuditFields
}

// JournalEntryLine affects exactly one account with a debit and/or credit amount.
type JournalEntryLine struct {
	LineID         string          `json:"lineID"`
	JournalEntryID string          `json:"journalEntryID"`
	LineNumber     int             `json:"lineNumber"`
	AccountID      string          `json:"accountID"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	Description    *string         `json:"description,omitempty"`
}

// Delta is the signed effect of the line on its account balance.
func (l JournalEntryLine) Delta() decimal.Decimal {
	return l.Debit.Sub(l.Credit)
}
