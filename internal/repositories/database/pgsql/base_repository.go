package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/SscSPs/erp_backend/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres error codes the repositories translate into application errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to rollback transaction", err)
	}
	return nil
}

// WithTx runs fn inside a transaction. fn's error aborts and rolls back every
// statement it issued; a nil return commits.
func (r *BaseRepository) WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // no-op after a successful commit

	if err := fn(tx); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// pgErrorCode returns the SQLSTATE of err, or "" when err is not a Postgres error.
func pgErrorCode(err error) (code string, constraint string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	return "", ""
}

// storageError wraps an unexpected database error as a storage failure.
// Errors that already carry an application kind pass through untouched.
func storageError(msg string, err error) error {
	if isAppKind(err) {
		return err
	}
	switch code, constraint := pgErrorCode(err); code {
	case pgUniqueViolation:
		return fmt.Errorf("%w: %s (%s)", apperrors.ErrDuplicate, msg, constraint)
	case pgForeignKeyViolation:
		return fmt.Errorf("%w: %s (%s)", apperrors.ErrUnknownReference, msg, constraint)
	case pgCheckViolation:
		return fmt.Errorf("%w: %s (%s)", apperrors.ErrValidation, msg, constraint)
	}
	return apperrors.NewAppError(http.StatusInternalServerError, msg, err)
}

func isAppKind(err error) bool {
	for _, kind := range []error{
		apperrors.ErrNotFound,
		apperrors.ErrValidation,
		apperrors.ErrDuplicate,
		apperrors.ErrUnknownReference,
		apperrors.ErrEmptyDocument,
		apperrors.ErrInvalidState,
		apperrors.ErrStorage,
		apperrors.ErrUnbalancedEntry,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

// sendBatch executes batch inside tx and checks every result. When notFound is
// non-nil, a statement that affected no rows fails with notFound naming keys[i].
func sendBatch(ctx context.Context, tx pgx.Tx, batch *pgx.Batch, keys []string, notFound error) error {
	if batch.Len() == 0 {
		return nil
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		ct, err := br.Exec()
		if err != nil {
			if batchErr == nil {
				batchErr = storageError(fmt.Sprintf("batch statement %d failed", i+1), err)
			}
			continue
		}
		if notFound != nil && ct.RowsAffected() == 0 && batchErr == nil {
			key := ""
			if i < len(keys) {
				key = keys[i]
			}
			batchErr = fmt.Errorf("%w: %s", notFound, key)
		}
	}

	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = storageError("failed to close batch", err)
	}
	return batchErr
}
