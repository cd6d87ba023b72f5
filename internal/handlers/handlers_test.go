package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/erp_backend/internal/apperrors"
	"github.com/SscSPs/erp_backend/internal/core/domain"
	portssvc "github.com/SscSPs/erp_backend/internal/core/ports/services"
	"github.com/SscSPs/erp_backend/internal/dto"
	"github.com/SscSPs/erp_backend/internal/handlers"
	"github.com/SscSPs/erp_backend/internal/middleware"
	"github.com/SscSPs/erp_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type HandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockAccountService   *MockAccountService
	mockJournalService   *MockJournalService
	mockOrderService     *MockPurchaseOrderService
	mockPOSService       *MockPOSService
	mockInvoiceService   *MockInvoiceService
	mockStatementService *MockBankStatementService
	mockInventoryService *MockInventoryService
	userID               string
	token                string
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(middleware.SetupValidator())

	suite.router = gin.New()
	suite.router.Use(middleware.AuthMiddleware(testJWTSecret))

	suite.mockAccountService = new(MockAccountService)
	suite.mockJournalService = new(MockJournalService)
	suite.mockOrderService = new(MockPurchaseOrderService)
	suite.mockPOSService = new(MockPOSService)
	suite.mockInvoiceService = new(MockInvoiceService)
	suite.mockStatementService = new(MockBankStatementService)
	suite.mockInventoryService = new(MockInventoryService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterAccountRoutes(v1, suite.mockAccountService)
	handlers.RegisterJournalRoutes(v1, suite.mockJournalService)
	handlers.RegisterPurchaseOrderRoutes(v1, suite.mockOrderService)
	handlers.RegisterPOSRoutes(v1, suite.mockPOSService)
	handlers.RegisterFinanceRoutes(v1, suite.mockInvoiceService, suite.mockStatementService)
	handlers.RegisterInventoryRoutes(v1, suite.mockInventoryService)

	suite.userID = uuid.NewString()
	token, err := generateTestToken(suite.userID)
	suite.Require().NoError(err)
	suite.token = token
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.mockAccountService.AssertExpectations(suite.T())
	suite.mockJournalService.AssertExpectations(suite.T())
	suite.mockOrderService.AssertExpectations(suite.T())
	suite.mockPOSService.AssertExpectations(suite.T())
	suite.mockInvoiceService.AssertExpectations(suite.T())
	suite.mockStatementService.AssertExpectations(suite.T())
	suite.mockInventoryService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func decimalEq(s string) any {
	want := decimal.RequireFromString(s)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}

func (suite *HandlerTestSuite) TestMissingToken_Unauthorized() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "ListAccounts")
}

func (suite *HandlerTestSuite) TestCreateAccount_Success() {
	reqBody := dto.CreateAccountRequest{Code: "1001", Name: "Cash", AccountType: domain.Asset}
	created := &domain.Account{AccountID: uuid.NewString(), Code: "1001", Name: "Cash", AccountType: domain.Asset, Balance: decimal.Zero}
	suite.mockAccountService.On("CreateAccount", mock.AnythingOfType("*context.valueCtx"), reqBody, suite.userID).
		Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts", reqBody)

	suite.Equal(http.StatusCreated, w.Code)
	var res dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal(created.AccountID, res.AccountID)
	suite.True(res.Balance.IsZero())
}

func (suite *HandlerTestSuite) TestCreateAccount_DuplicateCode() {
	reqBody := dto.CreateAccountRequest{Code: "1001", Name: "Cash", AccountType: domain.Asset}
	suite.mockAccountService.On("CreateAccount", mock.AnythingOfType("*context.valueCtx"), reqBody, suite.userID).
		Return(nil, fmt.Errorf("%w: 1001", apperrors.ErrDuplicateCode)).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts", reqBody)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestCreateAccount_InvalidType() {
	w := suite.do(http.MethodPost, "/api/v1/accounts", gin.H{"code": "1001", "name": "Cash", "accountType": "CASHFLOW"})

	suite.Equal(http.StatusBadRequest, w.Code)
	var res dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Contains(res.Error, "accountType must be one of")
	suite.mockAccountService.AssertNotCalled(suite.T(), "CreateAccount")
}

func (suite *HandlerTestSuite) TestApplyDelta_Success() {
	accountID := uuid.NewString()
	updated := &domain.Account{AccountID: accountID, Balance: decimal.NewFromInt(60)}
	suite.mockAccountService.On("ApplyDelta", mock.AnythingOfType("*context.valueCtx"), accountID, decimalEq("0"), decimalEq("40"), suite.userID).
		Return(updated, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts/"+accountID+"/delta", gin.H{"debit": "0", "credit": "40"})

	suite.Equal(http.StatusOK, w.Code)
	var res dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.True(res.Balance.Equal(decimal.NewFromInt(60)))
}

func (suite *HandlerTestSuite) TestApplyDelta_NegativeAmountRejected() {
	w := suite.do(http.MethodPost, "/api/v1/accounts/"+uuid.NewString()+"/delta", gin.H{"debit": "-5", "credit": "0"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "ApplyDelta")
}

func (suite *HandlerTestSuite) TestApplyDelta_BeyondFourPlacesRejected() {
	w := suite.do(http.MethodPost, "/api/v1/accounts/"+uuid.NewString()+"/delta", gin.H{"debit": "0.00005", "credit": "0"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "debit must have at most 4 decimal places")
	suite.mockAccountService.AssertNotCalled(suite.T(), "ApplyDelta")
}

func (suite *HandlerTestSuite) TestApplyDelta_UnknownAccount() {
	accountID := uuid.NewString()
	suite.mockAccountService.On("ApplyDelta", mock.AnythingOfType("*context.valueCtx"), accountID, mock.Anything, mock.Anything, suite.userID).
		Return(nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownAccount, accountID)).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts/"+accountID+"/delta", gin.H{"debit": "10", "credit": "0"})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *HandlerTestSuite) TestListAccounts_DefaultsPagination() {
	suite.mockAccountService.On("ListAccounts", mock.AnythingOfType("*context.valueCtx"), 20, 0).
		Return([]domain.Account{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"accounts":[]}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestCreateJournalEntry_UnknownAccount() {
	suite.mockJournalService.On("CreateJournalEntry", mock.AnythingOfType("*context.valueCtx"), mock.AnythingOfType("dto.CreateJournalEntryRequest"), suite.userID).
		Return(nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownAccount, "missing")).Once()

	w := suite.do(http.MethodPost, "/api/v1/journal-entries", gin.H{
		"entryDate": time.Now().UTC().Format(time.RFC3339),
		"status":    "POSTED",
		"lines":     []gin.H{{"accountID": "missing", "debit": "100", "credit": "0"}},
	})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *HandlerTestSuite) TestCreateJournalEntry_EmptyLines() {
	suite.mockJournalService.On("CreateJournalEntry", mock.AnythingOfType("*context.valueCtx"), mock.AnythingOfType("dto.CreateJournalEntryRequest"), suite.userID).
		Return(nil, apperrors.ErrEmptyDocument).Once()

	w := suite.do(http.MethodPost, "/api/v1/journal-entries", gin.H{
		"entryDate": time.Now().UTC().Format(time.RFC3339),
		"lines":     []gin.H{},
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestPostJournalEntry_AlreadyPosted() {
	entryID := uuid.NewString()
	suite.mockJournalService.On("PostJournalEntry", mock.AnythingOfType("*context.valueCtx"), entryID, suite.userID).
		Return(nil, fmt.Errorf("%w: entry is POSTED", apperrors.ErrInvalidState)).Once()

	w := suite.do(http.MethodPost, "/api/v1/journal-entries/"+entryID+"/post", nil)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestCreateProduct_OpeningStock() {
	suite.mockInventoryService.On("CreateProduct", mock.AnythingOfType("*context.valueCtx"), mock.MatchedBy(func(req dto.CreateProductRequest) bool {
		return req.SKU == "SKU-1" && req.QuantityInStock == 5
	}), suite.userID).Return(&domain.InventoryProduct{ProductID: uuid.NewString(), SKU: "SKU-1", QuantityInStock: 5}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/products", gin.H{"sku": "SKU-1", "name": "Widget", "price": "9.99", "quantityInStock": 5})

	suite.Equal(http.StatusCreated, w.Code)
	var res domain.InventoryProduct
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal(int64(5), res.QuantityInStock)
}

func (suite *HandlerTestSuite) TestCreateProduct_Rejections() {
	for name, body := range map[string]gin.H{
		"negative stock":           {"sku": "SKU-1", "name": "Widget", "quantityInStock": -1},
		"price beyond four places": {"sku": "SKU-1", "name": "Widget", "price": "9.99999"},
	} {
		suite.Run(name, func() {
			w := suite.do(http.MethodPost, "/api/v1/products", body)
			suite.Equal(http.StatusBadRequest, w.Code)
		})
	}
	suite.mockInventoryService.AssertNotCalled(suite.T(), "CreateProduct")
}

func (suite *HandlerTestSuite) TestReceivePurchaseOrder_Success() {
	orderID := uuid.NewString()
	now := time.Now()
	received := &domain.PurchaseOrder{PurchaseOrderID: orderID, Status: domain.POReceived, ReceivedAt: &now}
	suite.mockOrderService.On("ReceivePurchaseOrder", mock.AnythingOfType("*context.valueCtx"), orderID, suite.userID).
		Return(received, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/purchase-orders/"+orderID+"/receive", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res domain.PurchaseOrder
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal(domain.POReceived, res.Status)
}

func (suite *HandlerTestSuite) TestCreatePurchaseOrder_ZeroQuantityRejected() {
	w := suite.do(http.MethodPost, "/api/v1/purchase-orders", gin.H{
		"supplierID": uuid.NewString(),
		"items":      []gin.H{{"productID": uuid.NewString(), "quantity": 0, "unitPrice": "1.00"}},
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockOrderService.AssertNotCalled(suite.T(), "CreatePurchaseOrder")
}

func (suite *HandlerTestSuite) TestCreateSession_AlreadyOpen() {
	suite.mockPOSService.On("CreateSession", mock.AnythingOfType("*context.valueCtx"), mock.AnythingOfType("dto.CreateSessionRequest"), suite.userID).
		Return(nil, apperrors.ErrSessionAlreadyOpen).Once()

	w := suite.do(http.MethodPost, "/api/v1/pos/sessions", gin.H{"openingCash": "50"})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestGetActiveSession_None() {
	suite.mockPOSService.On("GetActiveSession", mock.AnythingOfType("*context.valueCtx"), suite.userID).
		Return(nil, apperrors.ErrSessionNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/pos/sessions/active", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestCreateOrder_UnknownProduct() {
	sessionID := uuid.NewString()
	suite.mockPOSService.On("CreateOrder", mock.AnythingOfType("*context.valueCtx"), mock.MatchedBy(func(req dto.CreateOrderRequest) bool {
		return req.SessionID == sessionID && len(req.Items) == 1 && len(req.Payments) == 1
	})).Return(nil, apperrors.ErrUnknownProduct).Once()

	w := suite.do(http.MethodPost, "/api/v1/pos/orders", gin.H{
		"sessionID":   sessionID,
		"totalAmount": "10",
		"items":       []gin.H{{"productID": "ghost", "quantity": 1, "unitPrice": "10"}},
		"payments":    []gin.H{{"amount": "10", "method": "CASH"}},
	})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *HandlerTestSuite) TestCreateOrder_InvalidPaymentMethod() {
	w := suite.do(http.MethodPost, "/api/v1/pos/orders", gin.H{
		"sessionID":   uuid.NewString(),
		"totalAmount": "10",
		"items":       []gin.H{{"productID": uuid.NewString(), "quantity": 1, "unitPrice": "10"}},
		"payments":    []gin.H{{"amount": "10", "method": "BARTER"}},
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPOSService.AssertNotCalled(suite.T(), "CreateOrder")
}

func (suite *HandlerTestSuite) TestCreateOrder_ZeroPaymentAccepted() {
	sessionID := uuid.NewString()
	suite.mockPOSService.On("CreateOrder", mock.AnythingOfType("*context.valueCtx"), mock.MatchedBy(func(req dto.CreateOrderRequest) bool {
		return len(req.Payments) == 2 && req.Payments[1].Amount.IsZero()
	})).Return(&domain.POSOrder{OrderID: uuid.NewString(), SessionID: sessionID, Status: domain.POSOrderCompleted}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/pos/orders", gin.H{
		"sessionID":   sessionID,
		"totalAmount": "10",
		"items":       []gin.H{{"productID": uuid.NewString(), "quantity": 1, "unitPrice": "10"}},
		"payments":    []gin.H{{"amount": "10", "method": "CASH"}, {"amount": "0", "method": "CARD"}},
	})

	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *HandlerTestSuite) TestCreateAPInvoice_UnknownSupplier() {
	suite.mockInvoiceService.On("CreateAPInvoice", mock.AnythingOfType("*context.valueCtx"), mock.AnythingOfType("dto.CreateAPInvoiceRequest"), suite.userID).
		Return(nil, apperrors.ErrUnknownSupplier).Once()

	w := suite.do(http.MethodPost, "/api/v1/invoices/ap", gin.H{
		"invoiceNumber": "INV-1",
		"supplierID":    uuid.NewString(),
		"invoiceDate":   time.Now().UTC().Format(time.RFC3339),
		"totalAmount":   "99.50",
	})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *HandlerTestSuite) TestListBankStatementLines_FilteredByAccount() {
	bankAccountID := uuid.NewString()
	lines := []domain.BankStatementLine{{LineID: uuid.NewString(), BankAccountID: bankAccountID, Amount: decimal.NewFromInt(-20)}}
	suite.mockStatementService.On("ListBankStatementLines", mock.AnythingOfType("*context.valueCtx"),
		mock.MatchedBy(func(id *string) bool { return id != nil && *id == bankAccountID }), 5, 0).
		Return(lines, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/bank-statements?bankAccountID="+bankAccountID+"&limit=5", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.ListBankStatementLinesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Len(res.Lines, 1)
}

func (suite *HandlerTestSuite) TestCreateBankStatementLine_BeyondFourPlacesRejected() {
	w := suite.do(http.MethodPost, "/api/v1/bank-statements", gin.H{
		"bankAccountID": uuid.NewString(),
		"statementDate": time.Now().UTC().Format(time.RFC3339),
		"amount":        "-42.10001",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockStatementService.AssertNotCalled(suite.T(), "CreateBankStatementLine")
}

func (suite *HandlerTestSuite) TestServerErrorHidesCause() {
	suite.mockAccountService.On("GetAccountByID", mock.AnythingOfType("*context.valueCtx"), "acc-1").
		Return(nil, apperrors.NewAppError(http.StatusInternalServerError, "db down", nil)).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/acc-1", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(w.Body.String(), "db down")
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func TestHomeEchoesCaller(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers.RegisterRoutes(r, &config.Config{JWTSecret: testJWTSecret, IsProduction: true}, &portssvc.ServiceContainer{}, nil)

	token, err := generateTestToken("cashier-1")
	if err != nil {
		t.Fatal(err)
	}
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["userID"] != "cashier-1" {
		t.Fatalf("userID = %q", body["userID"])
	}

	health := httptest.NewRecorder()
	r.ServeHTTP(health, httptest.NewRequest(http.MethodGet, "/health", nil))
	if health.Code != http.StatusOK {
		t.Fatalf("health status = %d", health.Code)
	}
}
