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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PurchaseOrderServiceTestSuite struct {
	suite.Suite
	mockOrderRepo     *MockPurchaseOrderRepository
	mockInventoryRepo *MockInventoryRepository
	service           portssvc.PurchaseOrderSvcFacade
}

func (suite *PurchaseOrderServiceTestSuite) SetupTest() {
	suite.mockOrderRepo = new(MockPurchaseOrderRepository)
	suite.mockInventoryRepo = new(MockInventoryRepository)
	suite.service = services.NewPurchaseOrderService(suite.mockOrderRepo, suite.mockInventoryRepo)
}

func widgetOrder(status domain.PurchaseOrderStatus) dto.CreatePurchaseOrderRequest {
	return dto.CreatePurchaseOrderRequest{
		SupplierID: "sup-1",
		Status:     status,
		Items: []dto.CreatePurchaseOrderItemRequest{
			{ProductID: "x", Quantity: 10, UnitPrice: dec("2.0")},
			{ProductID: "y", Quantity: 3, UnitPrice: dec("0.1")},
			{ProductID: "x", Quantity: 1, UnitPrice: dec("2.5")},
		},
	}
}

func (suite *PurchaseOrderServiceTestSuite) catalogKnows(ids ...string) {
	found := make(map[string]domain.InventoryProduct, len(ids))
	for _, id := range ids {
		found[id] = domain.InventoryProduct{ProductID: id}
	}
	suite.mockInventoryRepo.On("FindProductsByIDs", mock.Anything, []string{"x", "y", "x"}).Return(found, nil).Once()
}

func (suite *PurchaseOrderServiceTestSuite) TestCreatePurchaseOrder_PendingComputesTotal() {
	ctx := context.Background()
	suite.mockInventoryRepo.On("FindSupplierByID", ctx, "sup-1").Return(&domain.Supplier{SupplierID: "sup-1"}, nil).Once()
	suite.catalogKnows("x", "y")
	suite.mockOrderRepo.On("SavePurchaseOrder", ctx,
		mock.MatchedBy(func(o domain.PurchaseOrder) bool {
			return o.Status == domain.POPending && o.ReceivedAt == nil && len(o.Items) == 3 && o.Items[2].LineNumber == 3
		}),
		map[string]int64(nil),
	).Return(nil).Once()

	order, err := suite.service.CreatePurchaseOrder(ctx, widgetOrder(""), "user-1")

	suite.Require().NoError(err)
	suite.Equal("22.8", order.TotalAmount.String())
	suite.WithinDuration(time.Now(), order.OrderDate, time.Second)
	suite.mockOrderRepo.AssertExpectations(suite.T())
	suite.mockInventoryRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseOrderServiceTestSuite) TestCreatePurchaseOrder_ReceivedIncrementsStock() {
	ctx := context.Background()
	suite.mockInventoryRepo.On("FindSupplierByID", ctx, "sup-1").Return(&domain.Supplier{SupplierID: "sup-1"}, nil).Once()
	suite.catalogKnows("x", "y")
	suite.mockOrderRepo.On("SavePurchaseOrder", ctx,
		mock.MatchedBy(func(o domain.PurchaseOrder) bool { return o.Status == domain.POReceived && o.ReceivedAt != nil }),
		map[string]int64{"x": 11, "y": 3},
	).Return(nil).Once()

	order, err := suite.service.CreatePurchaseOrder(ctx, widgetOrder(domain.POReceived), "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.POReceived, order.Status)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseOrderServiceTestSuite) TestCreatePurchaseOrder_Rejections() {
	empty := widgetOrder("")
	empty.Items = nil
	zeroQty := widgetOrder("")
	zeroQty.Items[1].Quantity = 0
	negPrice := widgetOrder("")
	negPrice.Items[0].UnitPrice = dec("-0.01")
	finePrice := widgetOrder("")
	finePrice.Items[0].UnitPrice = dec("1.00005")

	tests := []struct {
		name    string
		req     dto.CreatePurchaseOrderRequest
		wantErr error
	}{
		{name: "no items", req: empty, wantErr: apperrors.ErrEmptyDocument},
		{name: "zero quantity", req: zeroQty, wantErr: apperrors.ErrValidation},
		{name: "negative price", req: negPrice, wantErr: apperrors.ErrValidation},
		{name: "price beyond four places", req: finePrice, wantErr: apperrors.ErrValidation},
		{name: "bad status", req: widgetOrder("SHIPPED"), wantErr: apperrors.ErrValidation},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			order, err := suite.service.CreatePurchaseOrder(context.Background(), tt.req, "user-1")
			suite.Nil(order)
			suite.ErrorIs(err, tt.wantErr)
		})
	}
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "SavePurchaseOrder", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PurchaseOrderServiceTestSuite) TestCreatePurchaseOrder_UnknownSupplier() {
	ctx := context.Background()
	suite.mockInventoryRepo.On("FindSupplierByID", ctx, "sup-1").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreatePurchaseOrder(ctx, widgetOrder(""), "user-1")

	suite.ErrorIs(err, apperrors.ErrUnknownSupplier)
	suite.ErrorIs(err, apperrors.ErrUnknownReference)
}

func (suite *PurchaseOrderServiceTestSuite) TestCreatePurchaseOrder_UnknownProduct() {
	ctx := context.Background()
	suite.mockInventoryRepo.On("FindSupplierByID", ctx, "sup-1").Return(&domain.Supplier{SupplierID: "sup-1"}, nil).Once()
	suite.catalogKnows("x")

	_, err := suite.service.CreatePurchaseOrder(ctx, widgetOrder(domain.POReceived), "user-1")

	suite.ErrorIs(err, apperrors.ErrUnknownProduct)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "SavePurchaseOrder", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PurchaseOrderServiceTestSuite) TestReceivePurchaseOrder_Success() {
	ctx := context.Background()
	pending := &domain.PurchaseOrder{
		PurchaseOrderID: "po-1",
		Status:          domain.POPending,
		Items: []domain.PurchaseOrderItem{
			{ProductID: "x", Quantity: 10},
			{ProductID: "y", Quantity: 3},
		},
	}
	suite.mockOrderRepo.On("FindPurchaseOrderByID", ctx, "po-1").Return(pending, nil).Once()
	suite.mockOrderRepo.On("TransitionPurchaseOrder", ctx, "po-1", domain.POPending, domain.POReceived,
		map[string]int64{"x": 10, "y": 3}, "user-1", mock.AnythingOfType("time.Time")).Return(nil).Once()

	order, err := suite.service.ReceivePurchaseOrder(ctx, "po-1", "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.POReceived, order.Status)
	suite.NotNil(order.ReceivedAt)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseOrderServiceTestSuite) TestReceivePurchaseOrder_AlreadyReceived() {
	ctx := context.Background()
	suite.mockOrderRepo.On("FindPurchaseOrderByID", ctx, "po-1").
		Return(&domain.PurchaseOrder{PurchaseOrderID: "po-1", Status: domain.POReceived}, nil).Once()

	_, err := suite.service.ReceivePurchaseOrder(ctx, "po-1", "user-1")

	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "TransitionPurchaseOrder",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PurchaseOrderServiceTestSuite) TestCancelPurchaseOrder_NoStockChange() {
	ctx := context.Background()
	suite.mockOrderRepo.On("FindPurchaseOrderByID", ctx, "po-1").
		Return(&domain.PurchaseOrder{PurchaseOrderID: "po-1", Status: domain.POPending,
			Items: []domain.PurchaseOrderItem{{ProductID: "x", Quantity: 4}}}, nil).Once()
	suite.mockOrderRepo.On("TransitionPurchaseOrder", ctx, "po-1", domain.POPending, domain.POCancelled,
		map[string]int64(nil), "user-1", mock.AnythingOfType("time.Time")).Return(nil).Once()

	order, err := suite.service.CancelPurchaseOrder(ctx, "po-1", "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.POCancelled, order.Status)
	suite.Nil(order.ReceivedAt)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseOrderServiceTestSuite) TestCancelPurchaseOrder_NotFound() {
	ctx := context.Background()
	suite.mockOrderRepo.On("FindPurchaseOrderByID", ctx, "po-9").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CancelPurchaseOrder(ctx, "po-9", "user-1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestPurchaseOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PurchaseOrderServiceTestSuite))
}
