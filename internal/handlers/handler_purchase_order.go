package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/erp_backend/internal/core/ports/services"
	"github.com/SscSPs/erp_backend/internal/dto"
	"github.com/SscSPs/erp_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// purchaseOrderHandler handles purchase order creation and receiving.
type purchaseOrderHandler struct {
	orderService portssvc.PurchaseOrderSvcFacade
}

// RegisterPurchaseOrderRoutes registers routes related to purchase orders.
func RegisterPurchaseOrderRoutes(rg *gin.RouterGroup, orderService portssvc.PurchaseOrderSvcFacade) {
	h := &purchaseOrderHandler{orderService: orderService}

	orders := rg.Group("/purchase-orders")
	{
		orders.POST("", h.createPurchaseOrder)
		orders.GET("", h.listPurchaseOrders)
		orders.GET("/:id", h.getPurchaseOrder)
		orders.POST("/:id/receive", h.receivePurchaseOrder)
		orders.POST("/:id/cancel", h.cancelPurchaseOrder)
	}
}

// createPurchaseOrder godoc
// @Summary Create a purchase order
// @Description Creates an order with its items. Orders created RECEIVED increment stock in the same transaction.
// @Tags purchase-orders
// @Accept  json
// @Produce  json
// @Param   order body dto.CreatePurchaseOrderRequest true "Order and items"
// @Success 201 {object} domain.PurchaseOrder
// @Failure 400 {object} dto.ErrorResponse "Validation error or empty order"
// @Failure 422 {object} dto.ErrorResponse "Unknown supplier or product"
// @Failure 500 {object} dto.ErrorResponse "Failed to create purchase order"
// @Security BearerAuth
// @Router /purchase-orders [post]
func (h *purchaseOrderHandler) createPurchaseOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err)
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	order, err := h.orderService.CreatePurchaseOrder(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, logger.With(slog.String("supplier_id", req.SupplierID)), err, "Failed to create purchase order")
		return
	}
	c.JSON(http.StatusCreated, order)
}

// receivePurchaseOrder godoc
// @Summary Receive a pending purchase order
// @Description Moves a PENDING order to RECEIVED and increments stock for each item
// @Tags purchase-orders
// @Produce  json
// @Param   id path string true "Purchase order ID"
// @Success 200 {object} domain.PurchaseOrder
// @Failure 404 {object} dto.ErrorResponse "Purchase order not found"
// @Failure 409 {object} dto.ErrorResponse "Order is not pending"
// @Security BearerAuth
// @Router /purchase-orders/{id}/receive [post]
func (h *purchaseOrderHandler) receivePurchaseOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	orderID := c.Param("id")
	order, err := h.orderService.ReceivePurchaseOrder(c.Request.Context(), orderID, userID)
	if err != nil {
		respondWithError(c, logger.With(slog.String("purchase_order_id", orderID)), err, "Failed to receive purchase order")
		return
	}
	c.JSON(http.StatusOK, order)
}

// cancelPurchaseOrder godoc
// @Summary Cancel a pending purchase order
// @Tags purchase-orders
// @Produce  json
// @Param   id path string true "Purchase order ID"
// @Success 200 {object} domain.PurchaseOrder
// @Failure 404 {object} dto.ErrorResponse "Purchase order not found"
// @Failure 409 {object} dto.ErrorResponse "Order is not pending"
// @Security BearerAuth
// @Router /purchase-orders/{id}/cancel [post]
func (h *purchaseOrderHandler) cancelPurchaseOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	orderID := c.Param("id")
	order, err := h.orderService.CancelPurchaseOrder(c.Request.Context(), orderID, userID)
	if err != nil {
		respondWithError(c, logger.With(slog.String("purchase_order_id", orderID)), err, "Failed to cancel purchase order")
		return
	}
	c.JSON(http.StatusOK, order)
}

// getPurchaseOrder godoc
// @Summary Get a purchase order
// @Tags purchase-orders
// @Produce  json
// @Param   id path string true "Purchase order ID"
// @Success 200 {object} domain.PurchaseOrder
// @Failure 404 {object} dto.ErrorResponse "Purchase order not found"
// @Security BearerAuth
// @Router /purchase-orders/{id} [get]
func (h *purchaseOrderHandler) getPurchaseOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	order, err := h.orderService.GetPurchaseOrderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve purchase order")
		return
	}
	c.JSON(http.StatusOK, order)
}

// listPurchaseOrders godoc
// @Summary List purchase orders
// @Tags purchase-orders
// @Produce  json
// @Param   limit query int false "Page size"
// @Param   offset query int false "Rows to skip"
// @Success 200 {object} dto.ListPurchaseOrdersResponse
// @Security BearerAuth
// @Router /purchase-orders [get]
func (h *purchaseOrderHandler) listPurchaseOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, ok := bindListParams(c, logger)
	if !ok {
		return
	}

	orders, err := h.orderService.ListPurchaseOrders(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list purchase orders")
		return
	}
	c.JSON(http.StatusOK, dto.ListPurchaseOrdersResponse{PurchaseOrders: orders})
}
