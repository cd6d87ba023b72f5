package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/erp_backend/internal/core/ports/services"
	"github.com/SscSPs/erp_backend/internal/dto"
	"github.com/SscSPs/erp_backend/internal/middleware"
	"github.com/SscSPs/erp_backend/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// financeHandler serves AP/AR invoices and bank statement lines.
type financeHandler struct {
	invoiceService       portssvc.InvoiceSvcFacade
	bankStatementService portssvc.BankStatementSvcFacade
}

// RegisterFinanceRoutes registers invoice and bank statement routes.
func RegisterFinanceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade, bankStatementService portssvc.BankStatementSvcFacade) {
	h := &financeHandler{
		invoiceService:       invoiceService,
		bankStatementService: bankStatementService,
	}

	invoices := rg.Group("/invoices")
	{
		invoices.POST("/ap", h.createAPInvoice)
		invoices.GET("/ap", h.listAPInvoices)
		invoices.POST("/ar", h.createARInvoice)
		invoices.GET("/ar", h.listARInvoices)
	}

	statements := rg.Group("/bank-statements")
	{
		statements.POST("", h.createBankStatementLine)
		statements.GET("", h.listBankStatementLines)
	}
}

// createAPInvoice godoc
// @Summary Record a supplier invoice
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   invoice body dto.CreateAPInvoiceRequest true "Invoice"
// @Success 201 {object} domain.APInvoice
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 422 {object} dto.ErrorResponse "Unknown supplier"
// @Security BearerAuth
// @Router /invoices/ap [post]
func (h *financeHandler) createAPInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAPInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err)
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.CreateAPInvoice(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create AP invoice")
		return
	}
	c.JSON(http.StatusCreated, invoice)
}

// listAPInvoices godoc
// @Summary List supplier invoices
// @Tags invoices
// @Produce  json
// @Param   limit query int false "Page size"
// @Param   offset query int false "Rows to skip"
// @Success 200 {object} dto.ListAPInvoicesResponse
// @Security BearerAuth
// @Router /invoices/ap [get]
func (h *financeHandler) listAPInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, ok := bindListParams(c, logger)
	if !ok {
		return
	}

	invoices, err := h.invoiceService.ListAPInvoices(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list AP invoices")
		return
	}
	c.JSON(http.StatusOK, dto.ListAPInvoicesResponse{Invoices: invoices})
}

// createARInvoice godoc
// @Summary Record a customer invoice
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   invoice body dto.CreateARInvoiceRequest true "Invoice"
// @Success 201 {object} domain.ARInvoice
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 422 {object} dto.ErrorResponse "Unknown customer"
// @Security BearerAuth
// @Router /invoices/ar [post]
func (h *financeHandler) createARInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateARInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err)
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.CreateARInvoice(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create AR invoice")
		return
	}
	c.JSON(http.StatusCreated, invoice)
}

// listARInvoices godoc
// @Summary List customer invoices
// @Tags invoices
// @Produce  json
// @Param   limit query int false "Page size"
// @Param   offset query int false "Rows to skip"
// @Success 200 {object} dto.ListARInvoicesResponse
// @Security BearerAuth
// @Router /invoices/ar [get]
func (h *financeHandler) listARInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, ok := bindListParams(c, logger)
	if !ok {
		return
	}

	invoices, err := h.invoiceService.ListARInvoices(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list AR invoices")
		return
	}
	c.JSON(http.StatusOK, dto.ListARInvoicesResponse{Invoices: invoices})
}

// createBankStatementLine godoc
// @Summary Record a bank statement line
// @Description Lines are stored unreconciled. Amount is signed.
// @Tags bank-statements
// @Accept  json
// @Produce  json
// @Param   line body dto.CreateBankStatementLineRequest true "Statement line"
// @Success 201 {object} domain.BankStatementLine
// @Failure 422 {object} dto.ErrorResponse "Unknown bank account"
// @Security BearerAuth
// @Router /bank-statements [post]
func (h *financeHandler) createBankStatementLine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBankStatementLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err)
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	line, err := h.bankStatementService.CreateBankStatementLine(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to record bank statement line")
		return
	}
	c.JSON(http.StatusCreated, line)
}

// listBankStatementLines godoc
// @Summary List bank statement lines
// @Tags bank-statements
// @Produce  json
// @Param   bankAccountID query string false "Restrict to one bank account"
// @Param   limit query int false "Page size"
// @Param   offset query int false "Rows to skip"
// @Success 200 {object} dto.ListBankStatementLinesResponse
// @Security BearerAuth
// @Router /bank-statements [get]
func (h *financeHandler) listBankStatementLines(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListBankStatementLinesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindError(c, logger, err)
		return
	}
	limit, offset := pagination.Normalize(params.Limit, params.Offset)

	lines, err := h.bankStatementService.ListBankStatementLines(c.Request.Context(), params.BankAccountID, limit, offset)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list bank statement lines")
		return
	}
	c.JSON(http.StatusOK, dto.ListBankStatementLinesResponse{Lines: lines})
}
