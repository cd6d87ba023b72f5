package services

import (
	"context"
	"fmt"
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
	"github.com/shopspring/decimal"
)

// journalService creates and posts journal entries.
type journalService struct {
	BaseService
	journalRepo     portsrepo.JournalRepositoryFacade
	accountRepo     portsrepo.AccountReader
	requireBalanced bool
	now             func() time.Time
}

// JournalServiceOption is a functional option for configuring the journal service
type JournalServiceOption func(*journalService)

// WithBalancedEntries rejects entries whose total debits differ from total credits.
func WithBalancedEntries(required bool) JournalServiceOption {
	return func(s *journalService) {
		s.requireBalanced = required
	}
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountRepo portsrepo.AccountReader, options ...JournalServiceOption) portssvc.JournalSvcFacade {
	svc := &journalService{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

func (s *journalService) CreateJournalEntry(ctx context.Context, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	status := req.Status
	if status == "" {
		status = domain.Draft
	}
	if !status.IsValid() {
		return nil, validationError("invalid journal status %q", status)
	}
	if len(req.Lines) == 0 {
		return nil, apperrors.ErrEmptyDocument
	}

	now := s.now()
	entry := domain.JournalEntry{
		JournalEntryID: uuid.NewString(),
		EntryDate:      req.EntryDate,
		Description:    req.Description,
		Reference:      req.Reference,
		Status:         status,
		Lines:          make([]domain.JournalEntryLine, len(req.Lines)),
		AuditFields:    domain.NewAuditFields(now, userID),
	}
	for i, l := range req.Lines {
		entry.Lines[i] = domain.JournalEntryLine{
			LineID:         uuid.NewString(),
			JournalEntryID: entry.JournalEntryID,
			LineNumber:     i + 1,
			AccountID:      l.AccountID,
			Debit:          l.Debit,
			Credit:         l.Credit,
			Description:    l.Description,
		}
	}

	if err := accounting.ValidateLineAmounts(entry.Lines); err != nil {
		return nil, err
	}
	if s.requireBalanced {
		if err := accounting.ValidateJournalBalance(entry.Lines); err != nil {
			return nil, err
		}
	}
	if err := s.ensureAccountsExist(ctx, entry.Lines); err != nil {
		return nil, err
	}

	var balanceChanges map[string]decimal.Decimal
	if status == domain.Posted {
		entry.PostedAt = &now
		balanceChanges = accounting.NetBalanceChanges(entry.Lines)
	}

	if err := s.journalRepo.SaveJournalEntry(ctx, entry, balanceChanges); err != nil {
		s.logUnexpected(ctx, err, "Failed to save journal entry",
			slog.String("journal_entry_id", entry.JournalEntryID))
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry created",
		slog.String("journal_entry_id", entry.JournalEntryID),
		slog.String("status", string(entry.Status)),
		slog.Int("line_count", len(entry.Lines)))
	return &entry, nil
}

// PostJournalEntry applies a DRAFT entry's lines to balances and marks it POSTED.
func (s *journalService) PostJournalEntry(ctx context.Context, journalEntryID string, userID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindJournalEntryByID(ctx, journalEntryID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to load journal entry for posting",
			slog.String("journal_entry_id", journalEntryID))
		return nil, err
	}
	if entry.Status != domain.Draft {
		return nil, fmt.Errorf("%w: journal entry %s is %s", apperrors.ErrInvalidState, journalEntryID, entry.Status)
	}
	if s.requireBalanced {
		if err := accounting.ValidateJournalBalance(entry.Lines); err != nil {
			return nil, err
		}
	}

	now := s.now()
	if err := s.journalRepo.PostJournalEntry(ctx, journalEntryID, accounting.NetBalanceChanges(entry.Lines), userID, now); err != nil {
		s.logUnexpected(ctx, err, "Failed to post journal entry",
			slog.String("journal_entry_id", journalEntryID))
		return nil, err
	}

	entry.Status = domain.Posted
	entry.PostedAt = &now
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = userID

	s.LogInfo(ctx, "Journal entry posted", slog.String("journal_entry_id", journalEntryID))
	return entry, nil
}

func (s *journalService) GetJournalEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindJournalEntryByID(ctx, journalEntryID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find journal entry",
			slog.String("journal_entry_id", journalEntryID))
		return nil, err
	}
	return entry, nil
}

func (s *journalService) ListJournalEntries(ctx context.Context, limit int, offset int) ([]domain.JournalEntry, error) {
	limit, offset = pagination.Normalize(limit, offset)
	entries, err := s.journalRepo.ListJournalEntries(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries", slog.Int("limit", limit), slog.Int("offset", offset))
		return nil, err
	}
	if entries == nil {
		return []domain.JournalEntry{}, nil
	}
	return entries, nil
}

// ensureAccountsExist checks every referenced account before the write starts.
func (s *journalService) ensureAccountsExist(ctx context.Context, lines []domain.JournalEntryLine) error {
	seen := make(map[string]struct{}, len(lines))
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.AccountID]; ok {
			continue
		}
		seen[l.AccountID] = struct{}{}
		ids = append(ids, l.AccountID)
	}

	found, err := s.accountRepo.FindAccountsByIDs(ctx, ids)
	if err != nil {
		s.LogError(ctx, err, "Failed to look up journal line accounts")
		return err
	}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return fmt.Errorf("%w: %s", apperrors.ErrUnknownAccount, id)
		}
	}
	return nil
}
