package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/erp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalReader defines read operations for journal data
type JournalReader interface {
	// FindJournalEntryByID retrieves a journal entry together with its ordered lines.
	FindJournalEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error)

	// ListJournalEntries retrieves a page of journal entries, newest entry date first, each with its lines.
	ListJournalEntries(ctx context.Context, limit int, offset int) ([]domain.JournalEntry, error)
}

// JournalWriter defines write operations for journal data
type JournalWriter interface {
	// SaveJournalEntry inserts the header and every line, then applies balanceChanges,
	// all inside one database transaction. A nil or empty balanceChanges leaves balances untouched.
	SaveJournalEntry(ctx context.Context, entry domain.JournalEntry, balanceChanges map[string]decimal.Decimal) error

	// PostJournalEntry moves a DRAFT entry to POSTED and applies balanceChanges in the same
	// transaction. It returns apperrors.ErrInvalidState when the entry is no longer DRAFT.
	PostJournalEntry(ctx context.Context, journalEntryID string, balanceChanges map[string]decimal.Decimal, userID string, postedAt time.Time) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
// This is a facade for clients that need access to all operations
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}

// JournalRepositoryWithTx extends JournalRepositoryFacade with transaction capabilities
type JournalRepositoryWithTx interface {
	JournalRepositoryFacade
	TransactionManager
}
