package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/erp_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_backend/internal/core/ports/services"
	"github.com/SscSPs/erp_backend/internal/dto"
	"github.com/SscSPs/erp_backend/internal/utils/accounting"
	"github.com/SscSPs/erp_backend/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	now         func() time.Time
}

// NewAccountService creates a new account service
func NewAccountService(repo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: repo, now: time.Now}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	if req.Code == "" || req.Name == "" {
		return nil, validationError("code and name are required")
	}
	if !req.AccountType.IsValid() {
		return nil, validationError("invalid account type %q", req.AccountType)
	}

	account := domain.Account{
		AccountID:   uuid.NewString(),
		Code:        req.Code,
		Name:        req.Name,
		AccountType: req.AccountType,
		Description: req.Description,
		Balance:     decimal.Zero,
		AuditFields: domain.NewAuditFields(s.now(), userID),
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.logUnexpected(ctx, err, "Failed to save account in repository",
			slog.String("account_code", account.Code))
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_id", account.AccountID),
		slog.String("account_code", account.Code))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find account by ID", slog.String("account_id", accountID))
		return nil, err
	}
	return account, nil
}

// ListAccounts retrieves a page of accounts ordered by code.
func (s *accountService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	limit, offset = pagination.Normalize(limit, offset)
	accounts, err := s.accountRepo.ListAccounts(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.Int("limit", limit), slog.Int("offset", offset))
		return nil, err
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

// ApplyDelta adds debit - credit to the balance in one statement.
func (s *accountService) ApplyDelta(ctx context.Context, accountID string, debit, credit decimal.Decimal, userID string) (*domain.Account, error) {
	if debit.IsNegative() || credit.IsNegative() {
		return nil, validationError("debit and credit must not be negative")
	}
	if err := accounting.ValidateMoneyScale("delta", debit, credit); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.ApplyDelta(ctx, accountID, debit.Sub(credit), userID, s.now())
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to apply balance delta", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account balance adjusted",
		slog.String("account_id", accountID),
		slog.String("debit", debit.String()),
		slog.String("credit", credit.String()),
		slog.String("balance", account.Balance.String()))
	return account, nil
}
