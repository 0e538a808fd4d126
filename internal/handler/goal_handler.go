package handler

import (
	"net/http"

	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/centavo/centavo-backend/internal/middleware"
	"github.com/centavo/centavo-backend/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// GoalHandler handles goal-related HTTP requests
type GoalHandler struct {
	goalService *service.GoalService
}

// NewGoalHandler creates a new GoalHandler
func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// GoalRequest represents a create or update goal request body
type GoalRequest struct {
	Name         string  `json:"name"`
	TargetAmount string  `json:"targetAmount"`
	TargetDate   string  `json:"targetDate"`
	Description  *string `json:"description,omitempty"`
}

// AmountRequest represents a body carrying a single monetary amount
type AmountRequest struct {
	Amount string `json:"amount"`
}

// CreateGoal creates a new savings goal
func (h *GoalHandler) CreateGoal(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req GoalRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	targetAmount, err := domain.NewMoneyFromString(req.TargetAmount)
	if err != nil {
		return NewValidationError(c, "Invalid targetAmount", []ValidationError{
			{Field: "targetAmount", Message: "Must be a valid decimal number"},
		})
	}
	targetDate, err := parseDate(req.TargetDate)
	if err != nil {
		return NewValidationError(c, "Invalid targetDate", []ValidationError{
			{Field: "targetDate", Message: "Must be in YYYY-MM-DD format"},
		})
	}

	goal, err := h.goalService.CreateGoal(userID, service.CreateGoalInput{
		Name:         req.Name,
		TargetAmount: targetAmount,
		TargetDate:   targetDate,
		Description:  req.Description,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, goal)
}

// GetGoals lists a user's goals, optionally filtered by status
func (h *GoalHandler) GetGoals(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	if status := c.QueryParam("status"); status != "" {
		goals, err := h.goalService.GetGoalsByStatus(userID, domain.GoalStatus(status))
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(http.StatusOK, goals)
	}

	goals, err := h.goalService.GetGoals(userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, goals)
}

// GetGoal retrieves a single goal
func (h *GoalHandler) GetGoal(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return NewValidationError(c, err.Error(), nil)
	}

	goal, err := h.goalService.GetGoal(userID, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, goal)
}

// SearchGoals finds goals by name keyword
func (h *GoalHandler) SearchGoals(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	goals, err := h.goalService.SearchGoals(userID, c.QueryParam("q"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, goals)
}

// GetOverdueGoals lists active goals past their target date
func (h *GoalHandler) GetOverdueGoals(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	goals, err := h.goalService.GetOverdueGoals(userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, goals)
}

// GetGoalSummary aggregates a user's goals
func (h *GoalHandler) GetGoalSummary(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	summary, err := h.goalService.GetGoalSummary(userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}

// Contribute adds an amount to a goal's progress
func (h *GoalHandler) Contribute(c echo.Context) error {
	return h.applyAmount(c, h.goalService.Contribute)
}

// SetProgress overwrites a goal's current amount
func (h *GoalHandler) SetProgress(c echo.Context) error {
	return h.applyAmount(c, h.goalService.SetProgress)
}

func (h *GoalHandler) applyAmount(c echo.Context, apply func(uuid.UUID, int32, domain.Money) (*domain.Goal, error)) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return NewValidationError(c, err.Error(), nil)
	}

	var req AmountRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	amount, err := domain.NewMoneyFromString(req.Amount)
	if err != nil {
		return NewValidationError(c, "Invalid amount", []ValidationError{
			{Field: "amount", Message: "Must be a valid decimal number"},
		})
	}

	goal, err := apply(userID, id, amount)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, goal)
}

// CompleteGoal forces a goal to completed
func (h *GoalHandler) CompleteGoal(c echo.Context) error {
	return h.transition(c, h.goalService.Complete)
}

// CancelGoal forces a goal to cancelled
func (h *GoalHandler) CancelGoal(c echo.Context) error {
	return h.transition(c, h.goalService.Cancel)
}

// ReactivateGoal returns a completed or cancelled goal to active
func (h *GoalHandler) ReactivateGoal(c echo.Context) error {
	return h.transition(c, h.goalService.Reactivate)
}

func (h *GoalHandler) transition(c echo.Context, apply func(uuid.UUID, int32) (*domain.Goal, error)) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return NewValidationError(c, err.Error(), nil)
	}

	goal, err := apply(userID, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, goal)
}

// UpdateGoal edits a goal's definition
func (h *GoalHandler) UpdateGoal(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return NewValidationError(c, err.Error(), nil)
	}

	var req GoalRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	targetAmount, err := domain.NewMoneyFromString(req.TargetAmount)
	if err != nil {
		return NewValidationError(c, "Invalid targetAmount", []ValidationError{
			{Field: "targetAmount", Message: "Must be a valid decimal number"},
		})
	}
	targetDate, err := parseDate(req.TargetDate)
	if err != nil {
		return NewValidationError(c, "Invalid targetDate", []ValidationError{
			{Field: "targetDate", Message: "Must be in YYYY-MM-DD format"},
		})
	}

	goal, err := h.goalService.UpdateGoal(userID, id, service.UpdateGoalInput{
		Name:         req.Name,
		TargetAmount: targetAmount,
		TargetDate:   targetDate,
		Description:  req.Description,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, goal)
}

// DeleteGoal removes a goal
func (h *GoalHandler) DeleteGoal(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return NewValidationError(c, err.Error(), nil)
	}

	if err := h.goalService.DeleteGoal(userID, id); err != nil {
		return respondServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
