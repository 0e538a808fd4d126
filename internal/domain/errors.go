package domain

import "errors"

// Domain errors
var (
	ErrNotFound             = errors.New("resource not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrBudgetNotFound       = errors.New("budget not found")
	ErrGoalNotFound         = errors.New("goal not found")
	ErrNotificationNotFound = errors.New("notification not found")

	ErrNameRequired       = errors.New("name is required")
	ErrNameTooLong        = errors.New("name exceeds maximum length")
	ErrDescriptionTooLong = errors.New("description exceeds maximum length")
	ErrNotesTooLong       = errors.New("notes exceed maximum length")

	ErrInvalidAmount          = errors.New("amount must be greater than zero")
	ErrNegativeAmount         = errors.New("amount cannot be negative")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidCategoryType    = errors.New("invalid category type")
	ErrCategoryTypeMismatch   = errors.New("category type does not match transaction type")
	ErrCategoryAlreadyExists  = errors.New("category with this name already exists")
	ErrCategoryInUse          = errors.New("category has transactions and cannot be deleted")
	ErrInvalidDateRange       = errors.New("start date must not be after end date")
	ErrPastTargetDate         = errors.New("target date cannot be in the past")
	ErrInvalidGoalStatus      = errors.New("invalid goal status")

	ErrGoalNotActive  = errors.New("goal is not active")
	ErrDivisionByZero = errors.New("division by zero")

	// ErrNilTransactions marks a nil transaction collection passed to an
	// aggregation; an empty slice is valid input, nil is a caller bug.
	ErrNilTransactions = errors.New("transaction collection cannot be nil")
)

// Validation constants
const (
	MaxNameLength        = 100
	MaxDescriptionLength = 500
	MaxNotesLength       = 500
)
