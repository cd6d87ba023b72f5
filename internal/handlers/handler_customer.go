package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/erp_backend/internal/core/ports/services"
	"github.com/SscSPs/erp_backend/internal/dto"
	"github.com/SscSPs/erp_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type customerHandler struct {
	customerService portssvc.CustomerSvcFacade
}

// RegisterCustomerRoutes registers routes related to customers.
func RegisterCustomerRoutes(rg *gin.RouterGroup, customerService portssvc.CustomerSvcFacade) {
	h := &customerHandler{customerService: customerService}

	customers := rg.Group("/customers")
	{
		customers.POST("", h.createCustomer)
		customers.GET("", h.listCustomers)
		customers.GET("/:id", h.getCustomer)
	}
}

// createCustomer godoc
// @Summary Register a customer
// @Tags customers
// @Accept  json
// @Produce  json
// @Param   customer body dto.CreateCustomerRequest true "Customer details"
// @Success 201 {object} domain.Customer
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Security BearerAuth
// @Router /customers [post]
func (h *customerHandler) createCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err)
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create customer")
		return
	}
	c.JSON(http.StatusCreated, customer)
}

// getCustomer godoc
// @Summary Get a customer
// @Tags customers
// @Produce  json
// @Param   id path string true "Customer ID"
// @Success 200 {object} domain.Customer
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Security BearerAuth
// @Router /customers/{id} [get]
func (h *customerHandler) getCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customer, err := h.customerService.GetCustomerByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve customer")
		return
	}
	c.JSON(http.StatusOK, customer)
}

// listCustomers godoc
// @Summary List customers
// @Tags customers
// @Produce  json
// @Param   limit query int false "Page size"
// @Param   offset query int false "Rows to skip"
// @Success 200 {object} dto.ListCustomersResponse
// @Security BearerAuth
// @Router /customers [get]
func (h *customerHandler) listCustomers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, ok := bindListParams(c, logger)
	if !ok {
		return
	}

	customers, err := h.customerService.ListCustomers(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list customers")
		return
	}
	c.JSON(http.StatusOK, dto.ListCustomersResponse{Customers: customers})
}
