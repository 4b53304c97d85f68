package delivery

import (
	"net/http"
	"strconv"

	"catalog_service/internal/domain"
	"catalog_service/internal/usecase"
	"catalog_service/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ProductHandler struct {
	useCase usecase.ProductUseCase
	log     *logrus.Logger
}

func NewProductHandler(uc usecase.ProductUseCase, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *ProductHandler) RegisterRoutes(router gin.IRouter, requireAdmin gin.HandlerFunc) {
	products := router.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.GET("/:id", h.GetProductByID)
		products.POST("", requireAdmin, h.CreateProduct)
		products.PUT("/:id", requireAdmin, h.UpdateProduct)
		products.DELETE("/:id", requireAdmin, h.DeleteProduct)
	}
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	// Optional exact-match filter; 0 means unfiltered.
	var categoryID int64
	if categoryIDStr := c.Query("category_id"); categoryIDStr != "" {
		parsed, err := strconv.ParseInt(categoryIDStr, 10, 64)
		if err != nil || parsed <= 0 {
			h.log.Warnf("Invalid category_id filter parameter: %s", categoryIDStr)
			ValidationErrorResponse(c, []validation.FieldError{{Field: "category_id", Error: "must be a positive integer"}})
			return
		}
		categoryID = parsed
	}

	products, err := h.useCase.ListProducts(categoryID)
	if err != nil {
		h.log.Errorf("Failed to list products: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	if len(products) == 0 {
		c.JSON(http.StatusNotFound, []domain.Product{})
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProductByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	product, err := h.useCase.GetProductByID(id)
	if err != nil {
		if domain.KindOf(err) == domain.KindNotFound {
			c.JSON(http.StatusNotFound, []domain.Product{})
			return
		}
		h.log.Errorf("Failed to get product by ID %d: %v", id, err)
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var input domain.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.log.Warnf("Failed to bind JSON for create product: %v", err)
		ValidationErrorResponse(c, []validation.FieldError{{Field: "body", Error: err.Error()}})
		return
	}

	if fields := validation.ValidateProductInput(&input); len(fields) > 0 {
		h.log.Warnf("Validation failed for create product: %v", fields)
		ValidationErrorResponse(c, fields)
		return
	}

	createdProduct, err := h.useCase.CreateProduct(&input)
	if err != nil {
		h.log.Warnf("Failed to create product '%s': %v", input.Name, err)
		ErrorResponse(c, mapErrorToStatus(err), err.Error())
		return
	}

	c.JSON(http.StatusCreated, createdProduct)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input domain.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.log.Warnf("Failed to bind JSON for update product ID %d: %v", id, err)
		ValidationErrorResponse(c, []validation.FieldError{{Field: "body", Error: err.Error()}})
		return
	}

	if fields := validation.ValidateProductInput(&input); len(fields) > 0 {
		h.log.Warnf("Validation failed for update product ID %d: %v", id, fields)
		ValidationErrorResponse(c, fields)
		return
	}

	updatedProduct, err := h.useCase.UpdateProduct(id, &input)
	if err != nil {
		h.log.Warnf("Failed to update product ID %d: %v", id, err)
		ErrorResponse(c, mapErrorToStatus(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, updatedProduct)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.useCase.DeleteProduct(id); err != nil {
		h.log.Warnf("Failed to delete product ID %d: %v", id, err)
		ErrorResponse(c, mapErrorToStatus(err), err.Error())
		return
	}

	c.Status(http.StatusNoContent)
}
