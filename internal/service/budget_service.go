package service

import (
	"strings"
	"time"

	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// BudgetService handles budget CRUD and spend tracking against the ledger
type BudgetService struct {
	budgetRepo      domain.BudgetRepository
	transactionRepo domain.TransactionRepository
	categoryRepo    domain.CategoryRepository
	notifications   *NotificationService
}

// NewBudgetService creates a new BudgetService
func NewBudgetService(budgetRepo domain.BudgetRepository, transactionRepo domain.TransactionRepository, categoryRepo domain.CategoryRepository, notifications *NotificationService) *BudgetService {
	return &BudgetService{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		notifications:   notifications,
	}
}

// CreateBudgetInput holds the input for creating a budget
type CreateBudgetInput struct {
	Name        string
	Amount      domain.Money
	StartDate   time.Time
	EndDate     time.Time
	CategoryID  *int32
	Description *string
}

// CreateBudget creates a budget. The date window is validated here in the
// core, not just at the form layer: startDate must not be after endDate.
func (s *BudgetService) CreateBudget(userID uuid.UUID, input CreateBudgetInput) (*domain.Budget, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxNameLength {
		return nil, domain.ErrNameTooLong
	}
	if !input.Amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	if input.StartDate.After(input.EndDate) {
		return nil, domain.ErrInvalidDateRange
	}
	description, err := trimOptional(input.Description, domain.MaxDescriptionLength)
	if err != nil {
		return nil, err
	}
	if input.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(*input.CategoryID); err != nil {
			return nil, domain.ErrCategoryNotFound
		}
	}

	return s.budgetRepo.Create(&domain.Budget{
		UserID:      userID,
		Name:        name,
		Amount:      input.Amount,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		CategoryID:  input.CategoryID,
		Description: description,
	})
}

// GetBudget retrieves a budget by id for a user
func (s *BudgetService) GetBudget(userID uuid.UUID, id int32) (*domain.Budget, error) {
	return s.budgetRepo.GetByID(userID, id)
}

// GetBudgets retrieves all budgets for a user
func (s *BudgetService) GetBudgets(userID uuid.UUID) ([]*domain.Budget, error) {
	return s.budgetRepo.GetByUser(userID)
}

// UpdateBudget edits a budget definition under the same validation rules
// as creation
func (s *BudgetService) UpdateBudget(userID uuid.UUID, id int32, input CreateBudgetInput) (*domain.Budget, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxNameLength {
		return nil, domain.ErrNameTooLong
	}
	if !input.Amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	if input.StartDate.After(input.EndDate) {
		return nil, domain.ErrInvalidDateRange
	}
	description, err := trimOptional(input.Description, domain.MaxDescriptionLength)
	if err != nil {
		return nil, err
	}
	if input.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(*input.CategoryID); err != nil {
			return nil, domain.ErrCategoryNotFound
		}
	}

	budget, err := s.budgetRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	budget.Name = name
	budget.Amount = input.Amount
	budget.StartDate = input.StartDate
	budget.EndDate = input.EndDate
	budget.CategoryID = input.CategoryID
	budget.Description = description

	return s.budgetRepo.Update(budget)
}

// DeleteBudget removes a budget
func (s *BudgetService) DeleteBudget(userID uuid.UUID, id int32) error {
	return s.budgetRepo.Delete(userID, id)
}

// BudgetStatus is the computed state of a budget against actual spend
type BudgetStatus struct {
	Budget        *domain.Budget `json:"budget"`
	Spent         domain.Money   `json:"spent"`
	Utilization   domain.Money   `json:"utilization"`
	Remaining     domain.Money   `json:"remaining"`
	Exceeded      bool           `json:"exceeded"`
	Active        bool           `json:"active"`
	DaysRemaining int            `json:"daysRemaining"`
}

// GetBudgetStatus recomputes spend for the budget's scope and window and
// derives utilization, remaining and over-budget state
func (s *BudgetService) GetBudgetStatus(userID uuid.UUID, id int32) (*BudgetStatus, error) {
	budget, err := s.budgetRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	spent, err := s.spentAmount(budget)
	if err != nil {
		return nil, err
	}
	utilization, err := BudgetUtilization(spent, budget.Amount)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &BudgetStatus{
		Budget:        budget,
		Spent:         spent,
		Utilization:   utilization,
		Remaining:     RemainingBudget(budget.Amount, spent),
		Exceeded:      IsBudgetExceeded(spent, budget.Amount),
		Active:        budget.IsActive(now),
		DaysRemaining: budget.DaysRemaining(now),
	}, nil
}

// EvaluateThresholdsForTransaction re-checks every budget whose scope and
// window cover the given expense transaction, firing threshold
// notifications for newly crossed thresholds. Called by the transaction
// service after any mutation of an expense transaction.
func (s *BudgetService) EvaluateThresholdsForTransaction(userID uuid.UUID, transaction *domain.Transaction) {
	if !transaction.IsExpense() {
		return
	}
	budgets, err := s.budgetRepo.GetByUserCoveringDate(userID, transaction.OccurredAt)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to load budgets for threshold evaluation")
		return
	}
	for _, budget := range budgets {
		if !budget.AppliesToCategory(transaction.CategoryID) {
			continue
		}
		s.evaluateThresholds(budget)
	}
}

func (s *BudgetService) evaluateThresholds(budget *domain.Budget) {
	spent, err := s.spentAmount(budget)
	if err != nil {
		log.Error().Err(err).Int32("budget_id", budget.ID).Msg("Failed to compute budget spend")
		return
	}
	utilization, err := BudgetUtilization(spent, budget.Amount)
	if err != nil {
		log.Error().Err(err).Int32("budget_id", budget.ID).Msg("Failed to compute budget utilization")
		return
	}

	threshold, crossed := CrossedThreshold(utilization, budget.LastNotificationPercentage)
	if !crossed {
		return
	}
	s.notifications.NotifyBudgetThreshold(budget.UserID, budget.Name, threshold)
	budget.LastNotificationPercentage = &threshold
	if _, err := s.budgetRepo.Update(budget); err != nil {
		log.Error().Err(err).Int32("budget_id", budget.ID).Msg("Failed to persist budget notification state")
	}
}

func (s *BudgetService) spentAmount(budget *domain.Budget) (domain.Money, error) {
	expenseType := domain.TransactionTypeExpense
	transactions, err := s.transactionRepo.GetByUser(budget.UserID, &domain.TransactionFilters{
		CategoryID: budget.CategoryID,
		StartDate:  &budget.StartDate,
		EndDate:    &budget.EndDate,
		Type:       &expenseType,
	})
	if err != nil {
		return domain.Money{}, err
	}
	return TotalExpenses(transactions)
}
