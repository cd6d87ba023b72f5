package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/erp_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_backend/internal/core/ports/services"
	"github.com/SscSPs/erp_backend/internal/dto"
	"github.com/SscSPs/erp_backend/internal/utils/pagination"
	"github.com/google/uuid"
)

type customerService struct {
	BaseService
	repo portsrepo.CustomerRepositoryFacade
	now  func() time.Time
}

// NewCustomerService creates a new customer service
func NewCustomerService(repo portsrepo.CustomerRepositoryFacade) portssvc.CustomerSvcFacade {
	return &customerService{repo: repo, now: time.Now}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, userID string) (*domain.Customer, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, validationError("customer name is required")
	}

	customer := domain.Customer{
		CustomerID:  uuid.NewString(),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		AuditFields: domain.NewAuditFields(s.now(), userID),
	}
	if err := s.repo.SaveCustomer(ctx, customer); err != nil {
		s.logUnexpected(ctx, err, "Failed to save customer")
		return nil, err
	}

	s.LogInfo(ctx, "Customer created", slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	customer, err := s.repo.FindCustomerByID(ctx, customerID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find customer", slog.String("customer_id", customerID))
		return nil, err
	}
	return customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error) {
	limit, offset = pagination.Normalize(limit, offset)
	customers, err := s.repo.ListCustomers(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers")
		return nil, err
	}
	if customers == nil {
		return []domain.Customer{}, nil
	}
	return customers, nil
}
