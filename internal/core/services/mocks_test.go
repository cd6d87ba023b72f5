package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/erp_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ApplyDelta(ctx context.Context, accountID string, delta decimal.Decimal, userID string, now time.Time) (*domain.Account, error) {
	args := m.Called(ctx, accountID, delta, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ApplyDeltasInTx(ctx context.Context, tx pgx.Tx, deltas map[string]decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, tx, deltas, userID, now)
	return args.Error(0)
}

// MockJournalRepository is a mock type for the JournalRepositoryFacade interface
type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) FindJournalEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, journalEntryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) ListJournalEntries(ctx context.Context, limit int, offset int) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry, balanceChanges map[string]decimal.Decimal) error {
	args := m.Called(ctx, entry, balanceChanges)
	return args.Error(0)
}

func (m *MockJournalRepository) PostJournalEntry(ctx context.Context, journalEntryID string, balanceChanges map[string]decimal.Decimal, userID string, postedAt time.Time) error {
	args := m.Called(ctx, journalEntryID, balanceChanges, userID, postedAt)
	return args.Error(0)
}

// MockInventoryRepository is a mock type for the InventoryRepositoryFacade interface
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}

func (m *MockInventoryRepository) ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Supplier), args.Error(1)
}

func (m *MockInventoryRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockInventoryRepository) FindProductByID(ctx context.Context, productID string) (*domain.InventoryProduct, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryProduct), args.Error(1)
}

func (m *MockInventoryRepository) FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.InventoryProduct, error) {
	args := m.Called(ctx, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.InventoryProduct), args.Error(1)
}

func (m *MockInventoryRepository) ListProducts(ctx context.Context, limit int, offset int) ([]domain.InventoryProduct, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryProduct), args.Error(1)
}

func (m *MockInventoryRepository) SaveProduct(ctx context.Context, product domain.InventoryProduct) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockInventoryRepository) AdjustStockInTx(ctx context.Context, tx pgx.Tx, quantities map[string]int64, userID string, now time.Time) error {
	args := m.Called(ctx, tx, quantities, userID, now)
	return args.Error(0)
}

// MockPurchaseOrderRepository is a mock type for the PurchaseOrderRepositoryFacade interface
type MockPurchaseOrderRepository struct {
	mock.Mock
}

func (m *MockPurchaseOrderRepository) FindPurchaseOrderByID(ctx context.Context, purchaseOrderID string) (*domain.PurchaseOrder, error) {
	args := m.Called(ctx, purchaseOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) ListPurchaseOrders(ctx context.Context, limit int, offset int) ([]domain.PurchaseOrder, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) SavePurchaseOrder(ctx context.Context, order domain.PurchaseOrder, stockChanges map[string]int64) error {
	args := m.Called(ctx, order, stockChanges)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) TransitionPurchaseOrder(ctx context.Context, purchaseOrderID string, from, to domain.PurchaseOrderStatus, stockChanges map[string]int64, userID string, at time.Time) error {
	args := m.Called(ctx, purchaseOrderID, from, to, stockChanges, userID, at)
	return args.Error(0)
}

// MockCustomerRepository is a mock type for the CustomerRepositoryFacade interface
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

// MockPOSRepository is a mock type for the POSRepositoryFacade interface
type MockPOSRepository struct {
	mock.Mock
}

func (m *MockPOSRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.POSSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.POSSession), args.Error(1)
}

func (m *MockPOSRepository) FindOpenSessionByUser(ctx context.Context, userID string) (*domain.POSSession, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.POSSession), args.Error(1)
}

func (m *MockPOSRepository) SaveSession(ctx context.Context, session domain.POSSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockPOSRepository) CloseSession(ctx context.Context, sessionID string, closingCash decimal.Decimal, status domain.SessionStatus, endTime time.Time) (*domain.POSSession, error) {
	args := m.Called(ctx, sessionID, closingCash, status, endTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.POSSession), args.Error(1)
}

func (m *MockPOSRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.POSOrder, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.POSOrder), args.Error(1)
}

func (m *MockPOSRepository) ListOrders(ctx context.Context, limit int, offset int) ([]domain.POSOrder, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.POSOrder), args.Error(1)
}

func (m *MockPOSRepository) SaveOrder(ctx context.Context, order domain.POSOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

// MockInvoiceRepository is a mock type for the InvoiceRepositoryFacade interface
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) SaveAPInvoice(ctx context.Context, invoice domain.APInvoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) ListAPInvoices(ctx context.Context, limit int, offset int) ([]domain.APInvoice, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.APInvoice), args.Error(1)
}

func (m *MockInvoiceRepository) SaveARInvoice(ctx context.Context, invoice domain.ARInvoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) ListARInvoices(ctx context.Context, limit int, offset int) ([]domain.ARInvoice, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ARInvoice), args.Error(1)
}

// MockBankStatementRepository is a mock type for the BankStatementRepositoryFacade interface
type MockBankStatementRepository struct {
	mock.Mock
}

func (m *MockBankStatementRepository) SaveBankStatementLine(ctx context.Context, line domain.BankStatementLine) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}

func (m *MockBankStatementRepository) ListBankStatementLines(ctx context.Context, bankAccountID *string, limit int, offset int) ([]domain.BankStatementLine, error) {
	args := m.Called(ctx, bankAccountID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankStatementLine), args.Error(1)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// decimalsEqual matches a balance change map against expected string amounts.
func decimalsEqual(want map[string]string) func(map[string]decimal.Decimal) bool {
	return func(got map[string]decimal.Decimal) bool {
		if len(got) != len(want) {
			return false
		}
		for id, amount := range want {
			v, ok := got[id]
			if !ok || !v.Equal(dec(amount)) {
				return false
			}
		}
		return true
	}
}
