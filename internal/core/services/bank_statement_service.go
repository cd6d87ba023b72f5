package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/erp_backend/internal/apperrors"
	"github.com/SscSPs/erp_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_backend/internal/core/ports/services"
	"github.com/SscSPs/erp_backend/internal/dto"
	"github.com/SscSPs/erp_backend/internal/utils/accounting"
	"github.com/SscSPs/erp_backend/internal/utils/pagination"
	"github.com/google/uuid"
)

// bankStatementService records imported bank movements. Lines are never reconciled here.
type bankStatementService struct {
	BaseService
	repo        portsrepo.BankStatementRepositoryFacade
	accountRepo portsrepo.AccountReader
	now         func() time.Time
}

// NewBankStatementService creates a new bank statement service
func NewBankStatementService(repo portsrepo.BankStatementRepositoryFacade, accountRepo portsrepo.AccountReader) portssvc.BankStatementSvcFacade {
	return &bankStatementService{repo: repo, accountRepo: accountRepo, now: time.Now}
}

var _ portssvc.BankStatementSvcFacade = (*bankStatementService)(nil)

func (s *bankStatementService) CreateBankStatementLine(ctx context.Context, req dto.CreateBankStatementLineRequest, userID string) (*domain.BankStatementLine, error) {
	if err := accounting.ValidateMoneyScale("amount", req.Amount); err != nil {
		return nil, err
	}
	if _, err := s.accountRepo.FindAccountByID(ctx, req.BankAccountID); err != nil {
		return nil, referenceError(err, apperrors.ErrUnknownAccount, req.BankAccountID)
	}

	line := domain.BankStatementLine{
		LineID:        uuid.NewString(),
		BankAccountID: req.BankAccountID,
		StatementDate: req.StatementDate,
		Reference:     req.Reference,
		Description:   req.Description,
		Amount:        req.Amount,
		Reconciled:    false,
		AuditFields:   domain.NewAuditFields(s.now(), userID),
	}
	if err := s.repo.SaveBankStatementLine(ctx, line); err != nil {
		s.logUnexpected(ctx, err, "Failed to save bank statement line",
			slog.String("bank_account_id", line.BankAccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Bank statement line recorded",
		slog.String("line_id", line.LineID),
		slog.String("bank_account_id", line.BankAccountID),
		slog.String("amount", line.Amount.String()))
	return &line, nil
}

func (s *bankStatementService) ListBankStatementLines(ctx context.Context, bankAccountID *string, limit int, offset int) ([]domain.BankStatementLine, error) {
	limit, offset = pagination.Normalize(limit, offset)
	lines, err := s.repo.ListBankStatementLines(ctx, bankAccountID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bank statement lines")
		return nil, err
	}
	if lines == nil {
		return []domain.BankStatementLine{}, nil
	}
	return lines, nil
}
