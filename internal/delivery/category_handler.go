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

type CategoryHandler struct {
	useCase usecase.CategoryUseCase
	log     *logrus.Logger
}

func NewCategoryHandler(uc usecase.CategoryUseCase, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{
		useCase: uc,
		log:     logger,
	}
}

// RegisterRoutes mounts the category routes. requireAdmin guards the
// mutating verbs only; reads are unauthenticated.
func (h *CategoryHandler) RegisterRoutes(router gin.IRouter, requireAdmin gin.HandlerFunc) {
	categories := router.Group("/categories")
	{
		categories.GET("", h.ListCategories)
		categories.GET("/:id", h.GetCategoryByID)
		categories.POST("", requireAdmin, h.CreateCategory)
		categories.PUT("/:id", requireAdmin, h.UpdateCategory)
		categories.DELETE("/:id", requireAdmin, h.DeleteCategory)
	}
}

// parseIDParam reads the :id path parameter. A malformed id is reported as a
// validation failure, matching the body validation convention.
func parseIDParam(c *gin.Context) (int64, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		ValidationErrorResponse(c, []validation.FieldError{{Field: "id", Error: "must be a positive integer"}})
		return 0, false
	}
	return id, true
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.useCase.ListCategories()
	if err != nil {
		h.log.Errorf("Failed to list categories: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	// An empty table reports not-found with an empty list body. Existing
	// clients depend on this exact shape.
	if len(categories) == 0 {
		c.JSON(http.StatusNotFound, []domain.Category{})
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) GetCategoryByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	category, err := h.useCase.GetCategoryByID(id)
	if err != nil {
		if domain.KindOf(err) == domain.KindNotFound {
			// Same empty-list convention as ListCategories.
			c.JSON(http.StatusNotFound, []domain.Category{})
			return
		}
		h.log.Errorf("Failed to get category by ID %d: %v", id, err)
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var input domain.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.log.Warnf("Failed to bind JSON for create category: %v", err)
		ValidationErrorResponse(c, []validation.FieldError{{Field: "body", Error: err.Error()}})
		return
	}

	if fields := validation.ValidateCategoryInput(&input); len(fields) > 0 {
		h.log.Warnf("Validation failed for create category: %v", fields)
		ValidationErrorResponse(c, fields)
		return
	}

	createdCategory, err := h.useCase.CreateCategory(&input)
	if err != nil {
		h.log.Warnf("Failed to create category '%s': %v", input.Name, err)
		ErrorResponse(c, mapErrorToStatus(err), err.Error())
		return
	}

	c.JSON(http.StatusCreated, createdCategory)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input domain.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.log.Warnf("Failed to bind JSON for update category ID %d: %v", id, err)
		ValidationErrorResponse(c, []validation.FieldError{{Field: "body", Error: err.Error()}})
		return
	}

	if fields := validation.ValidateCategoryInput(&input); len(fields) > 0 {
		h.log.Warnf("Validation failed for update category ID %d: %v", id, fields)
		ValidationErrorResponse(c, fields)
		return
	}

	updatedCategory, err := h.useCase.UpdateCategory(id, &input)
	if err != nil {
		h.log.Warnf("Failed to update category ID %d: %v", id, err)
		ErrorResponse(c, mapErrorToStatus(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, updatedCategory)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.useCase.DeleteCategory(id); err != nil {
		h.log.Warnf("Failed to delete category ID %d: %v", id, err)
		ErrorResponse(c, mapErrorToStatus(err), err.Error())
		return
	}

	c.Status(http.StatusNoContent)
}
