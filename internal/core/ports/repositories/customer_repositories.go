package repositories

import (
	"context"

	"github.com/SscSPs/erp_backend/internal/core/domain"
)

// CustomerReader defines read operations for customer data
type CustomerReader interface {
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error)
}

// CustomerWriter defines write operations for customer data
type CustomerWriter interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) error
}

// CustomerRepositoryFacade combines all customer repository interfaces
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
