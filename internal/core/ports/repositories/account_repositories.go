package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/erp_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts by their IDs. Missing IDs are absent from the map.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves a page of accounts ordered by code.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account. A duplicate code yields apperrors.ErrDuplicateCode.
	SaveAccount(ctx context.Context, account domain.Account) error
}

// AccountBalanceUpdater defines the atomic balance mutation used by posting.
type AccountBalanceUpdater interface {
	// ApplyDelta adds delta to one account balance in a single statement.
	ApplyDelta(ctx context.Context, accountID string, delta decimal.Decimal, userID string, now time.Time) (*domain.Account, error)

	// ApplyDeltasInTx adds each delta to its account inside tx, in ascending account ID order.
	ApplyDeltasInTx(ctx context.Context, tx pgx.Tx, deltas map[string]decimal.Decimal, userID string, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
// This is a facade for clients that need access to all operations
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountBalanceUpdater
}

// AccountRepositoryWithTx extends AccountRepositoryFacade with transaction capabilities
type AccountRepositoryWithTx interface {
	AccountRepositoryFacade
	TransactionManager
}
