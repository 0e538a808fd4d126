package handler

import (
	"net/http"

	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/centavo/centavo-backend/internal/middleware"
	"github.com/centavo/centavo-backend/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// BudgetHandler handles budget-related HTTP requests
type BudgetHandler struct {
	budgetService *service.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(budgetService *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// BudgetRequest represents a create or update budget request body
type BudgetRequest struct {
	Name        string  `json:"name"`
	Amount      string  `json:"amount"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	CategoryID  *int32  `json:"categoryId,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r BudgetRequest) toInput() (service.CreateBudgetInput, []ValidationError) {
	var fieldErrors []ValidationError

	amount, err := domain.NewMoneyFromString(r.Amount)
	if err != nil {
		fieldErrors = append(fieldErrors, ValidationError{Field: "amount", Message: "Must be a valid decimal number"})
	}
	startDate, err := parseDate(r.StartDate)
	if err != nil {
		fieldErrors = append(fieldErrors, ValidationError{Field: "startDate", Message: "Must be in YYYY-MM-DD format"})
	}
	endDate, err := parseDate(r.EndDate)
	if err != nil {
		fieldErrors = append(fieldErrors, ValidationError{Field: "endDate", Message: "Must be in YYYY-MM-DD format"})
	}
	if fieldErrors != nil {
		return service.CreateBudgetInput{}, fieldErrors
	}

	return service.CreateBudgetInput{
		Name:        r.Name,
		Amount:      amount,
		StartDate:   startDate,
		EndDate:     endDate,
		CategoryID:  r.CategoryID,
		Description: r.Description,
	}, nil
}

// CreateBudget creates a new budget
func (h *BudgetHandler) CreateBudget(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req BudgetRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	input, fieldErrors := req.toInput()
	if fieldErrors != nil {
		return NewValidationError(c, "Validation failed", fieldErrors)
	}

	budget, err := h.budgetService.CreateBudget(userID, input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, budget)
}

// GetBudgets lists a user's budgets
func (h *BudgetHandler) GetBudgets(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	budgets, err := h.budgetService.GetBudgets(userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, budgets)
}

// GetBudget retrieves a single budget
func (h *BudgetHandler) GetBudget(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return NewValidationError(c, err.Error(), nil)
	}

	budget, err := h.budgetService.GetBudget(userID, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, budget)
}

// GetBudgetStatus returns the computed spend state of a budget
func (h *BudgetHandler) GetBudgetStatus(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return NewValidationError(c, err.Error(), nil)
	}

	status, err := h.budgetService.GetBudgetStatus(userID, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, status)
}

// UpdateBudget edits a budget definition
func (h *BudgetHandler) UpdateBudget(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return NewValidationError(c, err.Error(), nil)
	}

	var req BudgetRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	input, fieldErrors := req.toInput()
	if fieldErrors != nil {
		return NewValidationError(c, "Validation failed", fieldErrors)
	}

	budget, err := h.budgetService.UpdateBudget(userID, id, input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, budget)
}

// DeleteBudget removes a budget
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return NewValidationError(c, err.Error(), nil)
	}

	if err := h.budgetService.DeleteBudget(userID, id); err != nil {
		return respondServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
