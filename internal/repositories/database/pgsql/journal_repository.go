package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/erp_backend/internal/apperrors"
	"github.com/SscSPs/erp_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_backend/internal/core/ports/repositories"
	"github.com/SscSPs/erp_backend/internal/models"
	"github.com/SscSPs/erp_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const (
	journalEntryColumns = `journal_entry_id, entry_date, description, reference, status, posted_at, created_at, created_by, last_updated_at, last_updated_by`
	journalLineColumns  = `line_id, journal_entry_id, line_number, account_id, debit, credit, description`
)

type PgxJournalRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountBalanceUpdater
}

// newPgxJournalRepository creates a new repository for journal entries and their lines.
func newPgxJournalRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountBalanceUpdater) portsrepo.JournalRepositoryWithTx {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryWithTx
var _ portsrepo.JournalRepositoryWithTx = (*PgxJournalRepository)(nil)

// SaveJournalEntry saves the header, every line and the balance changes within one DB transaction.
func (r *PgxJournalRepository) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry, balanceChanges map[string]decimal.Decimal) error {
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		// 1. Header
		m := mapping.ToModelJournalEntry(entry)
		headerQuery := `
			INSERT INTO journal_entries (` + journalEntryColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
		`
		_, err := tx.Exec(ctx, headerQuery,
			m.JournalEntryID,
			m.EntryDate,
			m.Description,
			m.Reference,
			m.Status,
			m.PostedAt,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
		if err != nil {
			return storageError("failed to insert journal entry "+m.JournalEntryID, err)
		}

		// 2. Lines
		lineQuery := `
			INSERT INTO journal_entry_lines (` + journalLineColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7);
		`
		batch := &pgx.Batch{}
		for _, line := range entry.Lines {
			lm := mapping.ToModelJournalEntryLine(line)
			batch.Queue(lineQuery, lm.LineID, lm.JournalEntryID, lm.LineNumber, lm.AccountID, lm.Debit, lm.Credit, lm.Description)
		}
		if err := sendBatch(ctx, tx, batch, nil, nil); err != nil {
			if errors.Is(err, apperrors.ErrUnknownReference) {
				return fmt.Errorf("%w: journal line references a missing account", apperrors.ErrUnknownAccount)
			}
			return err
		}

		// 3. Balances, only for entries created as POSTED
		if len(balanceChanges) == 0 {
			return nil
		}
		return r.accountRepo.ApplyDeltasInTx(ctx, tx, balanceChanges, entry.CreatedBy, entry.CreatedAt)
	})
}

// PostJournalEntry transitions a DRAFT entry to POSTED and applies its balance changes.
func (r *PgxJournalRepository) PostJournalEntry(ctx context.Context, journalEntryID string, balanceChanges map[string]decimal.Decimal, userID string, postedAt time.Time) error {
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		// The status guard makes the transition happen at most once even under concurrent posts.
		query := `
			UPDATE journal_entries
			SET status = $2, posted_at = $3, last_updated_at = $3, last_updated_by = $4
			WHERE journal_entry_id = $1 AND status = $5;
		`
		ct, err := tx.Exec(ctx, query, journalEntryID, string(domain.Posted), postedAt, userID, string(domain.Draft))
		if err != nil {
			return storageError("failed to post journal entry "+journalEntryID, err)
		}
		if ct.RowsAffected() == 0 {
			var exists bool
			if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM journal_entries WHERE journal_entry_id = $1);`, journalEntryID).Scan(&exists); err != nil {
				return storageError("failed to check journal entry "+journalEntryID, err)
			}
			if !exists {
				return fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, journalEntryID)
			}
			return fmt.Errorf("%w: journal entry %s is not a draft", apperrors.ErrInvalidState, journalEntryID)
		}

		return r.accountRepo.ApplyDeltasInTx(ctx, tx, balanceChanges, userID, postedAt)
	})
}

// FindJournalEntryByID retrieves a journal entry with its lines ordered by line number.
func (r *PgxJournalRepository) FindJournalEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + journalEntryColumns + ` FROM journal_entries WHERE journal_entry_id = $1;`
	rows, _ := r.Pool.Query(ctx, query, journalEntryID)
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.JournalEntry])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, journalEntryID)
		}
		return nil, storageError("failed to find journal entry by ID "+journalEntryID, err)
	}

	lines, err := r.findLinesByEntryIDs(ctx, []string{journalEntryID})
	if err != nil {
		return nil, err
	}

	entry := mapping.ToDomainJournalEntry(m)
	entry.Lines = lines[journalEntryID]
	return &entry, nil
}

// ListJournalEntries retrieves a page of entries, newest entry date first, with their lines.
func (r *PgxJournalRepository) ListJournalEntries(ctx context.Context, limit int, offset int) ([]domain.JournalEntry, error) {
	query := `
		SELECT ` + journalEntryColumns + `
		FROM journal_entries
		ORDER BY entry_date DESC, created_at DESC, journal_entry_id
		LIMIT $1 OFFSET $2;
	`
	rows, _ := r.Pool.Query(ctx, query, limit, offset)
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.JournalEntry])
	if err != nil {
		return nil, storageError("failed to list journal entries", err)
	}

	ids := make([]string, len(ms))
	for i, m := range ms {
		ids[i] = m.JournalEntryID
	}
	lines, err := r.findLinesByEntryIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.JournalEntry, len(ms))
	for i, m := range ms {
		entries[i] = mapping.ToDomainJournalEntry(m)
		entries[i].Lines = lines[m.JournalEntryID]
	}
	return entries, nil
}

// findLinesByEntryIDs loads lines for several entries, grouped by entry ID.
func (r *PgxJournalRepository) findLinesByEntryIDs(ctx context.Context, entryIDs []string) (map[string][]domain.JournalEntryLine, error) {
	grouped := make(map[string][]domain.JournalEntryLine, len(entryIDs))
	if len(entryIDs) == 0 {
		return grouped, nil
	}

	query := `
		SELECT ` + journalLineColumns + `
		FROM journal_entry_lines
		WHERE journal_entry_id = ANY($1)
		ORDER BY journal_entry_id, line_number;
	`
	rows, _ := r.Pool.Query(ctx, query, entryIDs)
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.JournalEntryLine])
	if err != nil {
		return nil, storageError("failed to query journal entry lines", err)
	}

	for _, m := range ms {
		grouped[m.JournalEntryID] = append(grouped[m.JournalEntryID], mapping.ToDomainJournalEntryLine(m))
	}
	return grouped, nil
}
