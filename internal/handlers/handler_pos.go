package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/erp_backend/internal/core/ports/services"
	"github.com/SscSPs/erp_backend/internal/dto"
	"github.com/SscSPs/erp_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// posHandler handles cash register sessions and checkouts.
type posHandler struct {
	posService portssvc.POSSvcFacade
}

// RegisterPOSRoutes registers session and order routes under /pos.
func RegisterPOSRoutes(rg *gin.RouterGroup, posService portssvc.POSSvcFacade) {
	h := &posHandler{posService: posService}

	pos := rg.Group("/pos")
	sessions := pos.Group("/sessions")
	{
		sessions.POST("", h.createSession)
		sessions.GET("/active", h.getActiveSession)
		sessions.POST("/:id/close", h.closeSession)
	}
	orders := pos.Group("/orders")
	{
		orders.POST("", h.createOrder)
		orders.GET("", h.listOrders)
		orders.GET("/:id", h.getOrder)
	}
}

// createSession godoc
// @Summary Open a cash register session
// @Description Opens a session for the caller. A user may hold one OPEN session at a time.
// @Tags pos
// @Accept  json
// @Produce  json
// @Param   session body dto.CreateSessionRequest true "Opening cash"
// @Success 201 {object} domain.POSSession
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 409 {object} dto.ErrorResponse "Session already open"
// @Security BearerAuth
// @Router /pos/sessions [post]
func (h *posHandler) createSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err)
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	session, err := h.posService.CreateSession(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to open session")
		return
	}
	c.JSON(http.StatusCreated, session)
}

// getActiveSession godoc
// @Summary Get the caller's open session
// @Tags pos
// @Produce  json
// @Success 200 {object} domain.POSSession
// @Failure 404 {object} dto.ErrorResponse "No open session"
// @Security BearerAuth
// @Router /pos/sessions/active [get]
func (h *posHandler) getActiveSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	session, err := h.posService.GetActiveSession(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve active session")
		return
	}
	c.JSON(http.StatusOK, session)
}

// closeSession godoc
// @Summary Close a session
// @Description Records closing cash. Orders are not reconciled against it.
// @Tags pos
// @Accept  json
// @Produce  json
// @Param   id path string true "Session ID"
// @Param   close body dto.CloseSessionRequest true "Closing cash"
// @Success 200 {object} domain.POSSession
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Session already closed"
// @Security BearerAuth
// @Router /pos/sessions/{id}/close [post]
func (h *posHandler) closeSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CloseSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	sessionID := c.Param("id")
	session, err := h.posService.CloseSession(c.Request.Context(), sessionID, req)
	if err != nil {
		respondWithError(c, logger.With(slog.String("session_id", sessionID)), err, "Failed to close session")
		return
	}
	c.JSON(http.StatusOK, session)
}

// createOrder godoc
// @Summary Check out an order
// @Description Stores the order with its items and payments in one transaction. The supplied total is kept as given.
// @Tags pos
// @Accept  json
// @Produce  json
// @Param   order body dto.CreateOrderRequest true "Order, items and payments"
// @Success 201 {object} domain.POSOrder
// @Failure 400 {object} dto.ErrorResponse "Validation error or empty order"
// @Failure 409 {object} dto.ErrorResponse "Session is closed"
// @Failure 422 {object} dto.ErrorResponse "Unknown session, customer or product"
// @Security BearerAuth
// @Router /pos/orders [post]
func (h *posHandler) createOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	order, err := h.posService.CreateOrder(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger.With(slog.String("session_id", req.SessionID)), err, "Failed to create order")
		return
	}
	c.JSON(http.StatusCreated, order)
}

// getOrder godoc
// @Summary Get a POS order
// @Tags pos
// @Produce  json
// @Param   id path string true "Order ID"
// @Success 200 {object} domain.POSOrder
// @Failure 404 {object} dto.ErrorResponse "Order not found"
// @Security BearerAuth
// @Router /pos/orders/{id} [get]
func (h *posHandler) getOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	order, err := h.posService.GetOrderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve order")
		return
	}
	c.JSON(http.StatusOK, order)
}

// listOrders godoc
// @Summary List POS orders
// @Tags pos
// @Produce  json
// @Param   limit query int false "Page size"
// @Param   offset query int false "Rows to skip"
// @Success 200 {object} dto.ListOrdersResponse
// @Security BearerAuth
// @Router /pos/orders [get]
func (h *posHandler) listOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, ok := bindListParams(c, logger)
	if !ok {
		return
	}

	orders, err := h.posService.ListOrders(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list orders")
		return
	}
	c.JSON(http.StatusOK, dto.ListOrdersResponse{Orders: orders})
}
