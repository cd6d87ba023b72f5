package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/erp_backend/internal/apperrors"
	"github.com/SscSPs/erp_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_backend/internal/core/ports/repositories"
	"github.com/SscSPs/erp_backend/internal/models"
	"github.com/SscSPs/erp_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const customerColumns = `customer_id, name, email, phone, address, created_at, created_by, last_updated_at, last_updated_by`

type PgxCustomerRepository struct {
	BaseRepository
}

func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, c domain.Customer) error {
	query := `INSERT INTO customers (` + customerColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`
	_, err := r.Pool.Exec(ctx, query,
		c.CustomerID, c.Name, c.Email, c.Phone, c.Address,
		c.CreatedAt, c.CreatedBy, c.LastUpdatedAt, c.LastUpdatedBy,
	)
	if err != nil {
		return storageError("failed to save customer "+c.CustomerID, err)
	}
	return nil
}

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	rows, _ := r.Pool.Query(ctx, `SELECT `+customerColumns+` FROM customers WHERE customer_id = $1;`, customerID)
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Customer])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, customerID)
		}
		return nil, storageError("failed to find customer "+customerID, err)
	}
	c := mapping.ToDomainCustomer(m)
	return &c, nil
}

func (r *PgxCustomerRepository) ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error) {
	rows, _ := r.Pool.Query(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY name, customer_id LIMIT $1 OFFSET $2;`, limit, offset)
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Customer])
	if err != nil {
		return nil, storageError("failed to list customers", err)
	}
	customers := make([]domain.Customer, len(ms))
	for i, m := range ms {
		customers[i] = mapping.ToDomainCustomer(m)
	}
	return customers, nil
}
