package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is the database row of the journal_entries table.
type JournalEntry struct {
	JournalEntryID string     `db:"journal_entry_id"`
	EntryDate      time.Time  `db:"entry_date"`
	Description    string     `db:"description"`
	Reference      *string    `db:"reference"`
	Status         string     `db:"status"`
	PostedAt       *time.Time `db:"posted_at"`
	AuditFields
}

// JournalEntryLine is the database row of the journal_entry_lines table.
type JournalEntryLine struct {
	LineID         string          `db:"line_id"`
	JournalEntryID string          `db:"journal_entry_id"`
	LineNumber     int             `db:"line_number"`
	AccountID      string          `db:"account_id"`
	Debit          decimal.Decimal `db:"debit"`
	Credit         decimal.Decimal `db:"credit"`
	Description    *string         `db:"description"`
}
