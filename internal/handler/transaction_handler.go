package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/centavo/centavo-backend/internal/middleware"
	"github.com/centavo/centavo-backend/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// TransactionRequest represents a create or update transaction request body
type TransactionRequest struct {
	CategoryID  int32   `json:"categoryId"`
	Amount      string  `json:"amount"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Notes       *string `json:"notes,omitempty"`
	Date        *string `json:"date,omitempty"`
}

// CreateTransaction records a new transaction
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req TransactionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	if req.CategoryID <= 0 {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "categoryId", Message: "Category ID is required"},
		})
	}

	amount, err := domain.NewMoneyFromString(req.Amount)
	if err != nil {
		return NewValidationError(c, "Invalid amount", []ValidationError{
			{Field: "amount", Message: "Must be a valid decimal number"},
		})
	}

	var occurredAt *time.Time
	if req.Date != nil && *req.Date != "" {
		parsed, err := parseDate(*req.Date)
		if err != nil {
			return NewValidationError(c, "Invalid date", []ValidationError{
				{Field: "date", Message: "Must be in YYYY-MM-DD format"},
			})
		}
		occurredAt = &parsed
	}

	transaction, err := h.transactionService.CreateTransaction(userID, service.CreateTransactionInput{
		CategoryID:  req.CategoryID,
		Amount:      amount,
		Type:        domain.TransactionType(req.Type),
		Description: req.Description,
		Notes:       req.Notes,
		OccurredAt:  occurredAt,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, transaction)
}

// GetTransactions lists a user's transactions with optional filters
func (h *TransactionHandler) GetTransactions(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	filters := &domain.TransactionFilters{}

	if raw := c.QueryParam("categoryId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return NewValidationError(c, "Invalid categoryId", nil)
		}
		categoryID := int32(id)
		filters.CategoryID = &categoryID
	}
	if raw := c.QueryParam("from"); raw != "" {
		from, err := parseDate(raw)
		if err != nil {
			return NewValidationError(c, "Invalid from date", nil)
		}
		filters.StartDate = &from
	}
	if raw := c.QueryParam("to"); raw != "" {
		to, err := parseDate(raw)
		if err != nil {
			return NewValidationError(c, "Invalid to date", nil)
		}
		filters.EndDate = &to
	}
	if raw := c.QueryParam("type"); raw != "" {
		transactionType := domain.TransactionType(raw)
		if transactionType != domain.TransactionTypeIncome && transactionType != domain.TransactionTypeExpense {
			return NewValidationError(c, "Invalid type", nil)
		}
		filters.Type = &transactionType
	}

	transactions, err := h.transactionService.GetTransactions(userID, filters)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, transactions)
}

// GetTransaction retrieves a single transaction
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return NewValidationError(c, err.Error(), nil)
	}

	transaction, err := h.transactionService.GetTransaction(userID, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, transaction)
}

// UpdateTransaction rewrites a transaction
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return NewValidationError(c, err.Error(), nil)
	}

	var req TransactionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	if req.CategoryID <= 0 {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "categoryId", Message: "Category ID is required"},
		})
	}

	amount, err := domain.NewMoneyFromString(req.Amount)
	if err != nil {
		return NewValidationError(c, "Invalid amount", []ValidationError{
			{Field: "amount", Message: "Must be a valid decimal number"},
		})
	}

	if req.Date == nil || *req.Date == "" {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "date", Message: "Date is required"},
		})
	}
	occurredAt, err := parseDate(*req.Date)
	if err != nil {
		return NewValidationError(c, "Invalid date", []ValidationError{
			{Field: "date", Message: "Must be in YYYY-MM-DD format"},
		})
	}

	transaction, err := h.transactionService.UpdateTransaction(userID, id, service.UpdateTransactionInput{
		CategoryID:  req.CategoryID,
		Amount:      amount,
		Type:        domain.TransactionType(req.Type),
		Description: req.Description,
		Notes:       req.Notes,
		OccurredAt:  occurredAt,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, transaction)
}

// DeleteTransaction removes a transaction
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return NewValidationError(c, err.Error(), nil)
	}

	if err := h.transactionService.DeleteTransaction(userID, id); err != nil {
		return respondServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
