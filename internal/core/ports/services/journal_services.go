package services

import (
	"context"

	"github.com/SscSPs/erp_backend/internal/core/domain"
	"github.com/SscSPs/erp_backend/internal/dto"
)

// JournalReaderSvc defines read operations for journal data
type JournalReaderSvc interface {
	// GetJournalEntryByID retrieves a journal entry with its lines.
	GetJournalEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error)

	// ListJournalEntries retrieves a page of journal entries.
	ListJournalEntries(ctx context.Context, limit int, offset int) ([]domain.JournalEntry, error)
}

// JournalWriterSvc defines write operations for journal data
type JournalWriterSvc interface {
	// CreateJournalEntry validates and persists an entry with its lines. When the
	// entry is created POSTED the line amounts are applied to account balances
	// in the same transaction.
	CreateJournalEntry(ctx context.Context, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error)

	// PostJournalEntry moves a DRAFT entry to POSTED and applies its lines.
	PostJournalEntry(ctx context.Context, journalEntryID string, userID string) (*domain.JournalEntry, error)
}

// JournalSvcFacade combines all journal-related service interfaces
// This is a facade for clients that need access to all operations
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
