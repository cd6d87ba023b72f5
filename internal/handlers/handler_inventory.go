package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/erp_backend/internal/core/ports/services"
	"github.com/SscSPs/erp_backend/internal/dto"
	"github.com/SscSPs/erp_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// inventoryHandler serves suppliers and the product catalog.
type inventoryHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

// RegisterInventoryRoutes registers supplier and product routes.
func RegisterInventoryRoutes(rg *gin.RouterGroup, inventoryService portssvc.InventorySvcFacade) {
	h := &inventoryHandler{inventoryService: inventoryService}

	suppliers := rg.Group("/suppliers")
	{
		suppliers.POST("", h.createSupplier)
		suppliers.GET("", h.listSuppliers)
	}

	products := rg.Group("/products")
	{
		products.POST("", h.createProduct)
		products.GET("", h.listProducts)
		products.GET("/:id", h.getProduct)
	}
}

// createSupplier godoc
// @Summary Register a supplier
// @Tags inventory
// @Accept  json
// @Produce  json
// @Param   supplier body dto.CreateSupplierRequest true "Supplier details"
// @Success 201 {object} domain.Supplier
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Security BearerAuth
// @Router /suppliers [post]
func (h *inventoryHandler) createSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err)
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	supplier, err := h.inventoryService.CreateSupplier(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create supplier")
		return
	}
	c.JSON(http.StatusCreated, supplier)
}

// listSuppliers godoc
// @Summary List suppliers
// @Tags inventory
// @Produce  json
// @Param   limit query int false "Page size"
// @Param   offset query int false "Rows to skip"
// @Success 200 {object} dto.ListSuppliersResponse
// @Security BearerAuth
// @Router /suppliers [get]
func (h *inventoryHandler) listSuppliers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, ok := bindListParams(c, logger)
	if !ok {
		return
	}

	suppliers, err := h.inventoryService.ListSuppliers(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list suppliers")
		return
	}
	c.JSON(http.StatusOK, dto.ListSuppliersResponse{Suppliers: suppliers})
}

// createProduct godoc
// @Summary Add a product to the catalog
// @Description Stock starts at quantityInStock (default zero) and then grows only by receiving purchase orders
// @Tags inventory
// @Accept  json
// @Produce  json
// @Param   product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} domain.InventoryProduct
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 409 {object} dto.ErrorResponse "Duplicate SKU"
// @Failure 422 {object} dto.ErrorResponse "Unknown supplier"
// @Security BearerAuth
// @Router /products [post]
func (h *inventoryHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err)
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	product, err := h.inventoryService.CreateProduct(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, logger.With(slog.String("sku", req.SKU)), err, "Failed to create product")
		return
	}
	c.JSON(http.StatusCreated, product)
}

// getProduct godoc
// @Summary Get a product
// @Tags inventory
// @Produce  json
// @Param   id path string true "Product ID"
// @Success 200 {object} domain.InventoryProduct
// @Failure 404 {object} dto.ErrorResponse "Product not found"
// @Security BearerAuth
// @Router /products/{id} [get]
func (h *inventoryHandler) getProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	product, err := h.inventoryService.GetProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve product")
		return
	}
	c.JSON(http.StatusOK, product)
}

// listProducts godoc
// @Summary List products
// @Tags inventory
// @Produce  json
// @Param   limit query int false "Page size"
// @Param   offset query int false "Rows to skip"
// @Success 200 {object} dto.ListProductsResponse
// @Security BearerAuth
// @Router /products [get]
func (h *inventoryHandler) listProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, ok := bindListParams(c, logger)
	if !ok {
		return
	}

	products, err := h.inventoryService.ListProducts(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list products")
		return
	}
	c.JSON(http.StatusOK, dto.ListProductsResponse{Products: products})
}
