package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/erp_backend/internal/apperrors"
	"github.com/SscSPs/erp_backend/internal/core/domain"
	portssvc "github.com/SscSPs/erp_backend/internal/core/ports/services"
	"github.com/SscSPs/erp_backend/internal/core/services"
	"github.com/SscSPs/erp_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type POSServiceTestSuite struct {
	suite.Suite
	mockPOSRepo       *MockPOSRepository
	mockCustomerRepo  *MockCustomerRepository
	mockInventoryRepo *MockInventoryRepository
	service           portssvc.POSSvcFacade
}

func (suite *POSServiceTestSuite) SetupTest() {
	suite.mockPOSRepo = new(MockPOSRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockInventoryRepo = new(MockInventoryRepository)
	suite.service = services.NewPOSService(suite.mockPOSRepo, suite.mockCustomerRepo, suite.mockInventoryRepo)
}

func (suite *POSServiceTestSuite) TestCreateSession_Success() {
	ctx := context.Background()
	suite.mockPOSRepo.On("SaveSession", ctx, mock.MatchedBy(func(s domain.POSSession) bool {
		return s.UserID == "cashier" && s.Status == domain.SessionOpen && s.EndTime == nil && s.ClosingCash == nil
	})).Return(nil).Once()

	session, err := suite.service.CreateSession(ctx, dto.CreateSessionRequest{OpeningCash: dec("50")}, "cashier")

	suite.Require().NoError(err)
	suite.True(dec("50").Equal(session.OpeningCash))
	suite.mockPOSRepo.AssertExpectations(suite.T())
}

func (suite *POSServiceTestSuite) TestCreateSession_AlreadyOpen() {
	ctx := context.Background()
	suite.mockPOSRepo.On("SaveSession", ctx, mock.Anything).Return(apperrors.ErrSessionAlreadyOpen).Once()

	_, err := suite.service.CreateSession(ctx, dto.CreateSessionRequest{OpeningCash: decimal.Zero}, "cashier")

	suite.ErrorIs(err, apperrors.ErrSessionAlreadyOpen)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
}

func (suite *POSServiceTestSuite) TestCreateSession_NegativeOpeningCash() {
	_, err := suite.service.CreateSession(context.Background(), dto.CreateSessionRequest{OpeningCash: dec("-1")}, "cashier")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *POSServiceTestSuite) TestSessionCash_BeyondFourPlaces() {
	ctx := context.Background()

	_, err := suite.service.CreateSession(ctx, dto.CreateSessionRequest{OpeningCash: dec("100.12345")}, "cashier")
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.CloseSession(ctx, "s-1", dto.CloseSessionRequest{ClosingCash: dec("0.00001")})
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPOSRepo.AssertNotCalled(suite.T(), "SaveSession", mock.Anything, mock.Anything)
	suite.mockPOSRepo.AssertNotCalled(suite.T(), "CloseSession", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *POSServiceTestSuite) TestCloseSession_Defaults() {
	ctx := context.Background()
	closed := &domain.POSSession{SessionID: "s-1", Status: domain.SessionClosed}
	suite.mockPOSRepo.On("CloseSession", ctx, "s-1",
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(dec("75.5")) }),
		domain.SessionClosed,
		mock.MatchedBy(func(t time.Time) bool { return time.Since(t) < time.Second }),
	).Return(closed, nil).Once()

	session, err := suite.service.CloseSession(ctx, "s-1", dto.CloseSessionRequest{ClosingCash: dec("75.5")})

	suite.Require().NoError(err)
	suite.Equal(domain.SessionClosed, session.Status)
	suite.mockPOSRepo.AssertExpectations(suite.T())
}

func (suite *POSServiceTestSuite) TestCloseSession_ExplicitEndTime() {
	ctx := context.Background()
	end := time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC)
	suite.mockPOSRepo.On("CloseSession", ctx, "s-1", mock.Anything, domain.SessionClosed, end).
		Return(&domain.POSSession{SessionID: "s-1", EndTime: &end}, nil).Once()

	session, err := suite.service.CloseSession(ctx, "s-1", dto.CloseSessionRequest{ClosingCash: decimal.Zero, EndTime: &end})

	suite.Require().NoError(err)
	suite.Equal(end, *session.EndTime)
}

func (suite *POSServiceTestSuite) TestCloseSession_Errors() {
	ctx := context.Background()
	open := domain.SessionOpen
	_, err := suite.service.CloseSession(ctx, "s-1", dto.CloseSessionRequest{Status: &open})
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockPOSRepo.On("CloseSession", ctx, "s-404", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrSessionNotFound).Once()
	_, err = suite.service.CloseSession(ctx, "s-404", dto.CloseSessionRequest{})
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockPOSRepo.On("CloseSession", ctx, "s-closed", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrInvalidState).Once()
	_, err = suite.service.CloseSession(ctx, "s-closed", dto.CloseSessionRequest{})
	suite.ErrorIs(err, apperrors.ErrInvalidState)
}

func (suite *POSServiceTestSuite) TestGetActiveSession_None() {
	ctx := context.Background()
	suite.mockPOSRepo.On("FindOpenSessionByUser", ctx, "cashier").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetActiveSession(ctx, "cashier")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func checkoutRequest() dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		SessionID:   "s-1",
		TotalAmount: dec("99"),
		Items: []dto.CreateOrderItemRequest{
			{ProductID: "p-1", Quantity: 2, UnitPrice: dec("12.50")},
			{ProductID: "p-2", Quantity: 1, UnitPrice: dec("0.99")},
		},
		Payments: []dto.CreatePaymentRequest{
			{Amount: dec("99"), Method: domain.PaymentCash},
		},
	}
}

func (suite *POSServiceTestSuite) openSession() {
	suite.mockPOSRepo.On("FindSessionByID", mock.Anything, "s-1").
		Return(&domain.POSSession{SessionID: "s-1", Status: domain.SessionOpen}, nil).Once()
}

func (suite *POSServiceTestSuite) TestCreateOrder_Success() {
	ctx := context.Background()
	suite.openSession()
	suite.mockInventoryRepo.On("FindProductsByIDs", ctx, []string{"p-1", "p-2"}).
		Return(map[string]domain.InventoryProduct{"p-1": {}, "p-2": {}}, nil).Once()
	suite.mockPOSRepo.On("SaveOrder", ctx, mock.MatchedBy(func(o domain.POSOrder) bool {
		return o.Status == domain.POSOrderCompleted && len(o.Items) == 2 && len(o.Payments) == 1 &&
			o.Items[0].Subtotal.Equal(dec("25")) && o.Items[1].Subtotal.Equal(dec("0.99")) &&
			o.Payments[0].OrderID == o.OrderID
	})).Return(nil).Once()

	order, err := suite.service.CreateOrder(ctx, checkoutRequest())

	suite.Require().NoError(err)
	// The caller total is kept even though it differs from the item subtotals.
	suite.True(dec("99").Equal(order.TotalAmount))
	suite.mockPOSRepo.AssertExpectations(suite.T())
	suite.mockInventoryRepo.AssertExpectations(suite.T())
}

func (suite *POSServiceTestSuite) TestCreateOrder_ZeroPaymentAccepted() {
	ctx := context.Background()
	req := checkoutRequest()
	req.Payments = append(req.Payments, dto.CreatePaymentRequest{Amount: decimal.Zero, Method: domain.PaymentCard})
	suite.openSession()
	suite.mockInventoryRepo.On("FindProductsByIDs", ctx, []string{"p-1", "p-2"}).
		Return(map[string]domain.InventoryProduct{"p-1": {}, "p-2": {}}, nil).Once()
	suite.mockPOSRepo.On("SaveOrder", ctx, mock.MatchedBy(func(o domain.POSOrder) bool {
		return len(o.Payments) == 2 && o.Payments[1].Amount.IsZero()
	})).Return(nil).Once()

	_, err := suite.service.CreateOrder(ctx, req)

	suite.Require().NoError(err)
	suite.mockPOSRepo.AssertExpectations(suite.T())
}

func (suite *POSServiceTestSuite) TestCreateOrder_ClosedSession() {
	ctx := context.Background()
	suite.mockPOSRepo.On("FindSessionByID", ctx, "s-1").
		Return(&domain.POSSession{SessionID: "s-1", Status: domain.SessionClosed}, nil).Once()

	_, err := suite.service.CreateOrder(ctx, checkoutRequest())

	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockPOSRepo.AssertNotCalled(suite.T(), "SaveOrder", mock.Anything, mock.Anything)
}

func (suite *POSServiceTestSuite) TestCreateOrder_UnknownSession() {
	ctx := context.Background()
	suite.mockPOSRepo.On("FindSessionByID", ctx, "s-1").Return(nil, apperrors.ErrSessionNotFound).Once()

	_, err := suite.service.CreateOrder(ctx, checkoutRequest())

	suite.ErrorIs(err, apperrors.ErrUnknownSession)
	suite.ErrorIs(err, apperrors.ErrUnknownReference)
}

func (suite *POSServiceTestSuite) TestCreateOrder_UnknownCustomer() {
	ctx := context.Background()
	customerID := "c-404"
	req := checkoutRequest()
	req.CustomerID = &customerID
	suite.openSession()
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateOrder(ctx, req)

	suite.ErrorIs(err, apperrors.ErrUnknownCustomer)
}

func (suite *POSServiceTestSuite) TestCreateOrder_UnknownProduct() {
	ctx := context.Background()
	suite.openSession()
	suite.mockInventoryRepo.On("FindProductsByIDs", ctx, []string{"p-1", "p-2"}).
		Return(map[string]domain.InventoryProduct{"p-1": {}}, nil).Once()

	_, err := suite.service.CreateOrder(ctx, checkoutRequest())

	suite.ErrorIs(err, apperrors.ErrUnknownProduct)
}

func (suite *POSServiceTestSuite) TestCreateOrder_Rejections() {
	empty := checkoutRequest()
	empty.Items = nil
	badPayment := checkoutRequest()
	badPayment.Payments[0].Method = "CRYPTO"
	negPayment := checkoutRequest()
	negPayment.Payments[0].Amount = dec("-1")
	finePayment := checkoutRequest()
	finePayment.Payments[0].Amount = dec("98.99999")
	finePrice := checkoutRequest()
	finePrice.Items[0].UnitPrice = dec("12.123456")
	fineTotal := checkoutRequest()
	fineTotal.TotalAmount = dec("99.00001")

	tests := []struct {
		name    string
		req     dto.CreateOrderRequest
		wantErr error
	}{
		{name: "no items", req: empty, wantErr: apperrors.ErrEmptyDocument},
		{name: "unknown method", req: badPayment, wantErr: apperrors.ErrValidation},
		{name: "negative payment", req: negPayment, wantErr: apperrors.ErrValidation},
		{name: "payment beyond four places", req: finePayment, wantErr: apperrors.ErrValidation},
		{name: "unit price beyond four places", req: finePrice, wantErr: apperrors.ErrValidation},
		{name: "total beyond four places", req: fineTotal, wantErr: apperrors.ErrValidation},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.CreateOrder(context.Background(), tt.req)
			suite.ErrorIs(err, tt.wantErr)
		})
	}
	suite.mockPOSRepo.AssertNotCalled(suite.T(), "FindSessionByID", mock.Anything, mock.Anything)
}

func TestPOSServiceTestSuite(t *testing.T) {
	suite.Run(t, new(POSServiceTestSuite))
}
