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
	"github.com/SscSPs/erp_backend/internal/utils/accounting"
	"github.com/SscSPs/erp_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const accountColumns = `account_id, code, name, account_type, description, balance, created_at, created_by, last_updated_at, last_updated_by`

// applyDeltaQuery is the single arithmetic update every balance change goes through.
// The row lock it takes is held until the surrounding transaction ends.
const applyDeltaQuery = `
	UPDATE accounts
	SET balance = balance + $2, last_updated_at = $3, last_updated_by = $4
	WHERE account_id = $1`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryWithTx {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryWithTx
var _ portsrepo.AccountRepositoryWithTx = (*PgxAccountRepository)(nil)

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.Code,
		m.Name,
		m.AccountType,
		m.Description,
		m.Balance,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if code, constraint := pgErrorCode(err); code == pgUniqueViolation && constraint == "accounts_code_key" {
			return fmt.Errorf("%w: account code %s", apperrors.ErrDuplicateCode, m.Code)
		}
		return storageError("failed to save account "+m.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`

	rows, _ := r.Pool.Query(ctx, query, accountID)
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
		}
		return nil, storageError("failed to find account by ID "+accountID, err)
	}

	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

// FindAccountsByIDs retrieves multiple accounts by their IDs.
// The caller checks whether every requested ID came back.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = ANY($1);`
	rows, _ := r.Pool.Query(ctx, query, accountIDs)
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, storageError("failed to query accounts by IDs", err)
	}

	accounts := make(map[string]domain.Account, len(ms))
	for _, m := range ms {
		accounts[m.AccountID] = mapping.ToDomainAccount(m)
	}
	return accounts, nil
}

// ListAccounts retrieves a page of accounts ordered by code.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY code LIMIT $1 OFFSET $2;`
	rows, _ := r.Pool.Query(ctx, query, limit, offset)
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, storageError("failed to list accounts", err)
	}
	return mapping.ToDomainAccountSlice(ms), nil
}

// ApplyDelta adds delta to a single account balance and returns the updated account.
func (r *PgxAccountRepository) ApplyDelta(ctx context.Context, accountID string, delta decimal.Decimal, userID string, now time.Time) (*domain.Account, error) {
	query := applyDeltaQuery + ` RETURNING ` + accountColumns + `;`
	rows, _ := r.Pool.Query(ctx, query, accountID, delta, now, userID)
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownAccount, accountID)
		}
		return nil, storageError("failed to apply balance delta to account "+accountID, err)
	}

	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

// ApplyDeltasInTx updates balances for multiple accounts within a transaction.
// Updates are issued in ascending account ID so concurrent postings lock rows
// in the same order.
func (r *PgxAccountRepository) ApplyDeltasInTx(ctx context.Context, tx pgx.Tx, deltas map[string]decimal.Decimal, userID string, now time.Time) error {
	batch := &pgx.Batch{}
	accountIDs := make([]string, 0, len(deltas))
	for _, accountID := range accounting.SortedKeys(deltas) {
		delta := deltas[accountID]
		if delta.IsZero() {
			continue
		}
		batch.Queue(applyDeltaQuery, accountID, delta, now, userID)
		accountIDs = append(accountIDs, accountID)
	}

	return sendBatch(ctx, tx, batch, accountIDs, apperrors.ErrUnknownAccount)
}
