package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/erp_backend/internal/core/domain"
	portssvc "github.com/SscSPs/erp_backend/internal/core/ports/services"
	"github.com/SscSPs/erp_backend/internal/dto"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

// generateTestToken creates a signed JWT whose subject is userID.
func generateTestToken(userID string) (string, error) {
	claims := jwt.RegisteredClaims{
		Issuer:    "erp-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(testJWTSecret))
}

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) ApplyDelta(ctx context.Context, accountID string, debit, credit decimal.Decimal, userID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID, debit, credit, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) GetJournalEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, journalEntryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockJournalService) ListJournalEntries(ctx context.Context, limit int, offset int) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}
func (m *MockJournalService) CreateJournalEntry(ctx context.Context, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockJournalService) PostJournalEntry(ctx context.Context, journalEntryID string, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, journalEntryID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

// --- Mock PurchaseOrderService ---
type MockPurchaseOrderService struct {
	mock.Mock
}

func (m *MockPurchaseOrderService) GetPurchaseOrderByID(ctx context.Context, purchaseOrderID string) (*domain.PurchaseOrder, error) {
	args := m.Called(ctx, purchaseOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseOrder), args.Error(1)
}
func (m *MockPurchaseOrderService) ListPurchaseOrders(ctx context.Context, limit int, offset int) ([]domain.PurchaseOrder, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseOrder), args.Error(1)
}
func (m *MockPurchaseOrderService) CreatePurchaseOrder(ctx context.Context, req dto.CreatePurchaseOrderRequest, userID string) (*domain.PurchaseOrder, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseOrder), args.Error(1)
}
func (m *MockPurchaseOrderService) ReceivePurchaseOrder(ctx context.Context, purchaseOrderID string, userID string) (*domain.PurchaseOrder, error) {
	args := m.Called(ctx, purchaseOrderID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseOrder), args.Error(1)
}
func (m *MockPurchaseOrderService) CancelPurchaseOrder(ctx context.Context, purchaseOrderID string, userID string) (*domain.PurchaseOrder, error) {
	args := m.Called(ctx, purchaseOrderID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseOrder), args.Error(1)
}

var _ portssvc.PurchaseOrderSvcFacade = (*MockPurchaseOrderService)(nil)

// --- Mock POSService ---
type MockPOSService struct {
	mock.Mock
}

func (m *MockPOSService) CreateSession(ctx context.Context, req dto.CreateSessionRequest, userID string) (*domain.POSSession, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.POSSession), args.Error(1)
}
func (m *MockPOSService) CloseSession(ctx context.Context, sessionID string, req dto.CloseSessionRequest) (*domain.POSSession, error) {
	args := m.Called(ctx, sessionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.POSSession), args.Error(1)
}
func (m *MockPOSService) GetActiveSession(ctx context.Context, userID string) (*domain.POSSession, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.POSSession), args.Error(1)
}
func (m *MockPOSService) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*domain.POSOrder, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.POSOrder), args.Error(1)
}
func (m *MockPOSService) GetOrderByID(ctx context.Context, orderID string) (*domain.POSOrder, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.POSOrder), args.Error(1)
}
func (m *MockPOSService) ListOrders(ctx context.Context, limit int, offset int) ([]domain.POSOrder, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.POSOrder), args.Error(1)
}

var _ portssvc.POSSvcFacade = (*MockPOSService)(nil)

// --- Mock InvoiceService ---
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) CreateAPInvoice(ctx context.Context, req dto.CreateAPInvoiceRequest, userID string) (*domain.APInvoice, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.APInvoice), args.Error(1)
}
func (m *MockInvoiceService) ListAPInvoices(ctx context.Context, limit int, offset int) ([]domain.APInvoice, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.APInvoice), args.Error(1)
}
func (m *MockInvoiceService) CreateARInvoice(ctx context.Context, req dto.CreateARInvoiceRequest, userID string) (*domain.ARInvoice, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ARInvoice), args.Error(1)
}
func (m *MockInvoiceService) ListARInvoices(ctx context.Context, limit int, offset int) ([]domain.ARInvoice, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ARInvoice), args.Error(1)
}

var _ portssvc.InvoiceSvcFacade = (*MockInvoiceService)(nil)

// --- Mock BankStatementService ---
type MockBankStatementService struct {
	mock.Mock
}

func (m *MockBankStatementService) CreateBankStatementLine(ctx context.Context, req dto.CreateBankStatementLineRequest, userID string) (*domain.BankStatementLine, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankStatementLine), args.Error(1)
}
func (m *MockBankStatementService) ListBankStatementLines(ctx context.Context, bankAccountID *string, limit int, offset int) ([]domain.BankStatementLine, error) {
	args := m.Called(ctx, bankAccountID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankStatementLine), args.Error(1)
}

var _ portssvc.BankStatementSvcFacade = (*MockBankStatementService)(nil)

// --- Mock InventoryService ---
type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest, userID string) (*domain.Supplier, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}
func (m *MockInventoryService) ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Supplier), args.Error(1)
}
func (m *MockInventoryService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, userID string) (*domain.InventoryProduct, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryProduct), args.Error(1)
}
func (m *MockInventoryService) GetProductByID(ctx context.Context, productID string) (*domain.InventoryProduct, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryProduct), args.Error(1)
}
func (m *MockInventoryService) ListProducts(ctx context.Context, limit int, offset int) ([]domain.InventoryProduct, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryProduct), args.Error(1)
}

var _ portssvc.InventorySvcFacade = (*MockInventoryService)(nil)
