package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/erp_backend/internal/apperrors"
	"github.com/SscSPs/erp_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_backend/internal/core/ports/repositories"
	"github.com/SscSPs/erp_backend/internal/models"
	"github.com/SscSPs/erp_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bankStatementColumns = `line_id, bank_account_id, statement_date, reference, description, amount, reconciled, created_at, created_by, last_updated_at, last_updated_by`

type PgxBankStatementRepository struct {
	BaseRepository
}

func newPgxBankStatementRepository(pool *pgxpool.Pool) portsrepo.BankStatementRepositoryFacade {
	return &PgxBankStatementRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BankStatementRepositoryFacade = (*PgxBankStatementRepository)(nil)

// SaveBankStatementLine inserts an imported statement line.
func (r *PgxBankStatementRepository) SaveBankStatementLine(ctx context.Context, line domain.BankStatementLine) error {
	query := `INSERT INTO bank_statement_lines (` + bankStatementColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`
	_, err := r.Pool.Exec(ctx, query,
		line.LineID, line.BankAccountID, line.StatementDate, line.Reference, line.Description, line.Amount, line.Reconciled,
		line.CreatedAt, line.CreatedBy, line.LastUpdatedAt, line.LastUpdatedBy,
	)
	if err != nil {
		if code, _ := pgErrorCode(err); code == pgForeignKeyViolation {
			return fmt.Errorf("%w: %s", apperrors.ErrUnknownAccount, line.BankAccountID)
		}
		return storageError("failed to save bank statement line "+line.LineID, err)
	}
	return nil
}

// ListBankStatementLines lists lines newest first, optionally for one bank account.
func (r *PgxBankStatementRepository) ListBankStatementLines(ctx context.Context, bankAccountID *string, limit int, offset int) ([]domain.BankStatementLine, error) {
	query := `
		SELECT ` + bankStatementColumns + `
		FROM bank_statement_lines
		WHERE ($1::text IS NULL OR bank_account_id = $1)
		ORDER BY statement_date DESC, line_id
		LIMIT $2 OFFSET $3;
	`
	rows, _ := r.Pool.Query(ctx, query, bankAccountID, limit, offset)
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.BankStatementLine])
	if err != nil {
		return nil, storageError("failed to list bank statement lines", err)
	}
	lines := make([]domain.BankStatementLine, len(ms))
	for i, m := range ms {
		lines[i] = mapping.ToDomainBankStatementLine(m)
	}
	return lines, nil
}
