package handler

import (
	"net/http"

	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/centavo/centavo-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CategoryRequest represents a create or update category request body
type CategoryRequest struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Color       string  `json:"color"`
	Description *string `json:"description,omitempty"`
}

// CreateCategory creates a new category
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	category, err := h.categoryService.CreateCategory(service.CreateCategoryInput{
		Name:        req.Name,
		Type:        domain.CategoryType(req.Type),
		Color:       req.Color,
		Description: req.Description,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, category)
}

// GetCategories lists all categories
func (h *CategoryHandler) GetCategories(c echo.Context) error {
	categories, err := h.categoryService.GetCategories()
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, categories)
}

// GetCategory retrieves a single category
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return NewValidationError(c, err.Error(), nil)
	}

	category, err := h.categoryService.GetCategory(id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, category)
}

// UpdateCategory renames or recolors a category
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return NewValidationError(c, err.Error(), nil)
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	category, err := h.categoryService.UpdateCategory(id, req.Name, req.Color, req.Description)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, category)
}

// DeleteCategory removes a category with no transactions
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return NewValidationError(c, err.Error(), nil)
	}

	if err := h.categoryService.DeleteCategory(id); err != nil {
		return respondServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
