package service

import (
	"strings"
	"time"

	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/google/uuid"
)

// TransactionService handles transaction-related business logic
type TransactionService struct {
	transactionRepo domain.TransactionRepository
	categoryRepo    domain.CategoryRepository
	budgetService   *BudgetService
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(transactionRepo domain.TransactionRepository, categoryRepo domain.CategoryRepository, budgetService *BudgetService) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		budgetService:   budgetService,
	}
}

// CreateTransactionInput holds the input for creating a transaction
type CreateTransactionInput struct {
	CategoryID  int32
	Amount      domain.Money
	Type        domain.TransactionType
	Description string
	Notes       *string
	OccurredAt  *time.Time
}

// CreateTransaction records a new transaction. The amount must be positive;
// direction is carried by Type. The category's type must match the
// transaction direction. Budgets covering the transaction are re-evaluated
// afterwards.
func (s *TransactionService) CreateTransaction(userID uuid.UUID, input CreateTransactionInput) (*domain.Transaction, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, domain.ErrNameRequired
	}
	if len(description) > domain.MaxNameLength {
		return nil, domain.ErrNameTooLong
	}
	if !input.Amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	if input.Type != domain.TransactionTypeIncome && input.Type != domain.TransactionTypeExpense {
		return nil, domain.ErrInvalidTransactionType
	}
	notes, err := trimOptionalNotes(input.Notes)
	if err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.GetByID(input.CategoryID)
	if err != nil {
		return nil, domain.ErrCategoryNotFound
	}
	if err := matchCategoryType(category, input.Type); err != nil {
		return nil, err
	}

	occurredAt := time.Now().UTC().Truncate(24 * time.Hour)
	if input.OccurredAt != nil {
		occurredAt = *input.OccurredAt
	}

	transaction, err := s.transactionRepo.Create(&domain.Transaction{
		UserID:      userID,
		CategoryID:  input.CategoryID,
		Amount:      input.Amount,
		Type:        input.Type,
		Description: description,
		Notes:       notes,
		OccurredAt:  occurredAt,
	})
	if err != nil {
		return nil, err
	}

	s.budgetService.EvaluateThresholdsForTransaction(userID, transaction)

	return transaction, nil
}

// GetTransactions retrieves a user's transactions with optional filters
func (s *TransactionService) GetTransactions(userID uuid.UUID, filters *domain.TransactionFilters) ([]*domain.Transaction, error) {
	return s.transactionRepo.GetByUser(userID, filters)
}

// GetTransaction retrieves a transaction by id for a user
func (s *TransactionService) GetTransaction(userID uuid.UUID, id int32) (*domain.Transaction, error) {
	return s.transactionRepo.GetByID(userID, id)
}

// UpdateTransactionInput holds the input for updating a transaction
type UpdateTransactionInput struct {
	CategoryID  int32
	Amount      domain.Money
	Type        domain.TransactionType
	Description string
	Notes       *string
	OccurredAt  time.Time
}

// UpdateTransaction rewrites a transaction under the same validation rules
// as creation and re-evaluates covering budgets
func (s *TransactionService) UpdateTransaction(userID uuid.UUID, id int32, input UpdateTransactionInput) (*domain.Transaction, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, domain.ErrNameRequired
	}
	if len(description) > domain.MaxNameLength {
		return nil, domain.ErrNameTooLong
	}
	if !input.Amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	if input.Type != domain.TransactionTypeIncome && input.Type != domain.TransactionTypeExpense {
		return nil, domain.ErrInvalidTransactionType
	}
	notes, err := trimOptionalNotes(input.Notes)
	if err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.GetByID(input.CategoryID)
	if err != nil {
		return nil, domain.ErrCategoryNotFound
	}
	if err := matchCategoryType(category, input.Type); err != nil {
		return nil, err
	}

	transaction, err := s.transactionRepo.Update(userID, id, &domain.UpdateTransactionData{
		CategoryID:  input.CategoryID,
		Amount:      input.Amount,
		Type:        input.Type,
		Description: description,
		Notes:       notes,
		OccurredAt:  input.OccurredAt,
	})
	if err != nil {
		return nil, err
	}

	s.budgetService.EvaluateThresholdsForTransaction(userID, transaction)

	return transaction, nil
}

// DeleteTransaction removes a transaction and re-evaluates budgets that
// covered it
func (s *TransactionService) DeleteTransaction(userID uuid.UUID, id int32) error {
	transaction, err := s.transactionRepo.GetByID(userID, id)
	if err != nil {
		return err
	}
	if err := s.transactionRepo.Delete(userID, id); err != nil {
		return err
	}

	s.budgetService.EvaluateThresholdsForTransaction(userID, transaction)

	return nil
}

func matchCategoryType(category *domain.Category, transactionType domain.TransactionType) error {
	if string(category.Type) != string(transactionType) {
		return domain.ErrCategoryTypeMismatch
	}
	return nil
}

func trimOptionalNotes(notes *string) (*string, error) {
	if notes == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*notes)
	if trimmed == "" {
		return nil, nil
	}
	if len(trimmed) > domain.MaxNotesLength {
		return nil, domain.ErrNotesTooLong
	}
	return &trimmed, nil
}
