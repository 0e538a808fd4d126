package service

import (
	"strings"
	"testing"
	"time"

	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/centavo/centavo-backend/internal/testutil"
	"github.com/google/uuid"
)

type budgetFixture struct {
	budgetService    *BudgetService
	budgetRepo       *testutil.MockBudgetRepository
	transactionRepo  *testutil.MockTransactionRepository
	categoryRepo     *testutil.MockCategoryRepository
	notificationRepo *testutil.MockNotificationRepository
}

func newBudgetFixture() *budgetFixture {
	budgetRepo := testutil.NewMockBudgetRepository()
	transactionRepo := testutil.NewMockTransactionRepository()
	categoryRepo := testutil.NewMockCategoryRepository()
	notificationRepo := testutil.NewMockNotificationRepository()
	return &budgetFixture{
		budgetService:    NewBudgetService(budgetRepo, transactionRepo, categoryRepo, NewNotificationService(notificationRepo)),
		budgetRepo:       budgetRepo,
		transactionRepo:  transactionRepo,
		categoryRepo:     categoryRepo,
		notificationRepo: notificationRepo,
	}
}

func marchWindow() (time.Time, time.Time) {
	return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
}

func (f *budgetFixture) addExpense(userID uuid.UUID, categoryID int32, amount int64, day time.Time) *domain.Transaction {
	return f.transactionRepo.AddTransaction(&domain.Transaction{
		UserID:      userID,
		CategoryID:  categoryID,
		Amount:      domain.NewMoneyFromInt(amount),
		Type:        domain.TransactionTypeExpense,
		Description: "expense",
		OccurredAt:  day,
	})
}

func TestCreateBudget_Success(t *testing.T) {
	f := newBudgetFixture()
	userID := uuid.New()
	start, end := marchWindow()

	budget, err := f.budgetService.CreateBudget(userID, CreateBudgetInput{
		Name:      "March spending",
		Amount:    domain.NewMoneyFromInt(7500000),
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		t.Fatalf("CreateBudget failed: %v", err)
	}
	if budget.CategoryID != nil {
		t.Error("Expected an unscoped budget")
	}
	if budget.LastNotificationPercentage != nil {
		t.Error("Expected no notification state on a fresh budget")
	}
}

func TestCreateBudget_Validation(t *testing.T) {
	f := newBudgetFixture()
	userID := uuid.New()
	start, end := marchWindow()

	if _, err := f.budgetService.CreateBudget(userID, CreateBudgetInput{
		Name: " ", Amount: domain.NewMoneyFromInt(100), StartDate: start, EndDate: end,
	}); err != domain.ErrNameRequired {
		t.Errorf("Expected ErrNameRequired, got %v", err)
	}

	if _, err := f.budgetService.CreateBudget(userID, CreateBudgetInput{
		Name: strings.Repeat("a", 101), Amount: domain.NewMoneyFromInt(100), StartDate: start, EndDate: end,
	}); err != domain.ErrNameTooLong {
		t.Errorf("Expected ErrNameTooLong, got %v", err)
	}

	if _, err := f.budgetService.CreateBudget(userID, CreateBudgetInput{
		Name: "March", Amount: domain.ZeroMoney(), StartDate: start, EndDate: end,
	}); err != domain.ErrInvalidAmount {
		t.Errorf("Expected ErrInvalidAmount for zero amount, got %v", err)
	}

	// Window reversed: rejected in the core, not left to the form layer
	if _, err := f.budgetService.CreateBudget(userID, CreateBudgetInput{
		Name: "March", Amount: domain.NewMoneyFromInt(100), StartDate: end, EndDate: start,
	}); err != domain.ErrInvalidDateRange {
		t.Errorf("Expected ErrInvalidDateRange, got %v", err)
	}

	missing := int32(42)
	if _, err := f.budgetService.CreateBudget(userID, CreateBudgetInput{
		Name: "March", Amount: domain.NewMoneyFromInt(100), StartDate: start, EndDate: end, CategoryID: &missing,
	}); err != domain.ErrCategoryNotFound {
		t.Errorf("Expected ErrCategoryNotFound, got %v", err)
	}
}

func TestGetBudgetStatus(t *testing.T) {
	f := newBudgetFixture()
	userID := uuid.New()
	start, end := marchWindow()

	budget := f.budgetRepo.AddBudget(&domain.Budget{
		UserID:    userID,
		Name:      "March spending",
		Amount:    domain.NewMoneyFromInt(7500000),
		StartDate: start,
		EndDate:   end,
	})
	f.addExpense(userID, 1, 2000000, start.AddDate(0, 0, 4))
	f.addExpense(userID, 2, 350000, start.AddDate(0, 0, 10))
	// Income and out-of-window spend must not count
	f.transactionRepo.AddTransaction(&domain.Transaction{
		UserID: userID, CategoryID: 1, Amount: domain.NewMoneyFromInt(9999999),
		Type: domain.TransactionTypeIncome, OccurredAt: start.AddDate(0, 0, 5),
	})
	f.addExpense(userID, 1, 500, end.AddDate(0, 1, 0))

	status, err := f.budgetService.GetBudgetStatus(userID, budget.ID)
	if err != nil {
		t.Fatalf("GetBudgetStatus failed: %v", err)
	}

	if status.Spent.String() != "2350000.00" {
		t.Errorf("Expected spent 2350000.00, got %s", status.Spent)
	}
	if status.Utilization.String() != "31.33" {
		t.Errorf("Expected utilization 31.33, got %s", status.Utilization)
	}
	if status.Remaining.String() != "5150000.00" {
		t.Errorf("Expected remaining 5150000.00, got %s", status.Remaining)
	}
	if status.Exceeded {
		t.Error("Expected budget not exceeded")
	}
}

func TestGetBudgetStatus_CategoryScope(t *testing.T) {
	f := newBudgetFixture()
	userID := uuid.New()
	start, end := marchWindow()
	groceries := int32(1)

	budget := f.budgetRepo.AddBudget(&domain.Budget{
		UserID:     userID,
		Name:       "Groceries",
		Amount:     domain.NewMoneyFromInt(1000),
		StartDate:  start,
		EndDate:    end,
		CategoryID: &groceries,
	})
	f.addExpense(userID, groceries, 300, start.AddDate(0, 0, 1))
	f.addExpense(userID, 2, 900, start.AddDate(0, 0, 2))

	status, err := f.budgetService.GetBudgetStatus(userID, budget.ID)
	if err != nil {
		t.Fatalf("GetBudgetStatus failed: %v", err)
	}
	if status.Spent.String() != "300.00" {
		t.Errorf("Expected only scoped spend 300.00, got %s", status.Spent)
	}
}

func TestEvaluateThresholds_Sequence(t *testing.T) {
	f := newBudgetFixture()
	userID := uuid.New()
	start, end := marchWindow()

	budget := f.budgetRepo.AddBudget(&domain.Budget{
		UserID:    userID,
		Name:      "March spending",
		Amount:    domain.NewMoneyFromInt(100),
		StartDate: start,
		EndDate:   end,
	})

	// Spend 40 -> 60 -> 60 (re-evaluation) -> 90: exactly two notifications
	steps := []int64{40, 20, 0, 30}
	for _, amount := range steps {
		var transaction *domain.Transaction
		if amount > 0 {
			transaction = f.addExpense(userID, 1, amount, start.AddDate(0, 0, 5))
		} else {
			transaction = &domain.Transaction{
				UserID: userID, CategoryID: 1, Type: domain.TransactionTypeExpense,
				Amount: domain.ZeroMoney(), OccurredAt: start.AddDate(0, 0, 5),
			}
		}
		f.budgetService.EvaluateThresholdsForTransaction(userID, transaction)
	}

	messages := f.notificationRepo.MessagesFor(userID)
	if len(messages) != 2 {
		t.Fatalf("Expected exactly 2 notifications, got %d: %v", len(messages), messages)
	}
	if !strings.Contains(messages[0], "50%") {
		t.Errorf("Expected first notification at 50%%, got %s", messages[0])
	}
	if !strings.Contains(messages[1], "75%") {
		t.Errorf("Expected second notification at 75%%, got %s", messages[1])
	}

	stored, err := f.budgetRepo.GetByID(userID, budget.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if stored.LastNotificationPercentage == nil || *stored.LastNotificationPercentage != 75 {
		t.Errorf("Expected persisted threshold 75, got %v", stored.LastNotificationPercentage)
	}
}

func TestEvaluateThresholds_ExhaustionMessageOnce(t *testing.T) {
	f := newBudgetFixture()
	userID := uuid.New()
	start, end := marchWindow()

	f.budgetRepo.AddBudget(&domain.Budget{
		UserID:    userID,
		Name:      "March spending",
		Amount:    domain.NewMoneyFromInt(100),
		StartDate: start,
		EndDate:   end,
	})

	over := f.addExpense(userID, 1, 120, start.AddDate(0, 0, 5))
	f.budgetService.EvaluateThresholdsForTransaction(userID, over)
	// Further spending past 100% stays silent
	more := f.addExpense(userID, 1, 50, start.AddDate(0, 0, 6))
	f.budgetService.EvaluateThresholdsForTransaction(userID, more)

	messages := f.notificationRepo.MessagesFor(userID)
	if len(messages) != 1 {
		t.Fatalf("Expected exactly 1 notification, got %d: %v", len(messages), messages)
	}
	if messages[0] != "You have used up your budget 'March spending'!" {
		t.Errorf("Unexpected message: %s", messages[0])
	}
}

func TestEvaluateThresholds_IgnoresIncomeAndOutOfScope(t *testing.T) {
	f := newBudgetFixture()
	userID := uuid.New()
	start, end := marchWindow()
	groceries := int32(1)

	f.budgetRepo.AddBudget(&domain.Budget{
		UserID:     userID,
		Name:       "Groceries",
		Amount:     domain.NewMoneyFromInt(100),
		StartDate:  start,
		EndDate:    end,
		CategoryID: &groceries,
	})

	// Income never triggers evaluation
	income := &domain.Transaction{
		UserID: userID, CategoryID: groceries, Type: domain.TransactionTypeIncome,
		Amount: domain.NewMoneyFromInt(1000), OccurredAt: start,
	}
	f.budgetService.EvaluateThresholdsForTransaction(userID, income)

	// An expense in another category leaves a scoped budget silent even
	// when its own utilization would cross a threshold
	other := f.addExpense(userID, 2, 90, start.AddDate(0, 0, 1))
	f.budgetService.EvaluateThresholdsForTransaction(userID, other)

	if messages := f.notificationRepo.MessagesFor(userID); len(messages) != 0 {
		t.Errorf("Expected no notifications, got %v", messages)
	}
}

func TestUpdateBudget_Success(t *testing.T) {
	f := newBudgetFixture()
	userID := uuid.New()
	start, end := marchWindow()
	budget := f.budgetRepo.AddBudget(&domain.Budget{
		UserID:    userID,
		Name:      "March spending",
		Amount:    domain.NewMoneyFromInt(100),
		StartDate: start,
		EndDate:   end,
	})

	updated, err := f.budgetService.UpdateBudget(userID, budget.ID, CreateBudgetInput{
		Name:      "March essentials",
		Amount:    domain.NewMoneyFromInt(200),
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		t.Fatalf("UpdateBudget failed: %v", err)
	}
	if updated.Name != "March essentials" || updated.Amount.String() != "200.00" {
		t.Errorf("Update not applied: %s %s", updated.Name, updated.Amount)
	}
}

func TestDeleteBudget_NotFound(t *testing.T) {
	f := newBudgetFixture()
	if err := f.budgetService.DeleteBudget(uuid.New(), 99); err != domain.ErrBudgetNotFound {
		t.Errorf("Expected ErrBudgetNotFound, got %v", err)
	}
}
