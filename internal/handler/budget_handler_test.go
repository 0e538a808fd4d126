package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/centavo/centavo-backend/internal/service"
	"github.com/centavo/centavo-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type budgetHandlerFixture struct {
	handler         *BudgetHandler
	budgetRepo      *testutil.MockBudgetRepository
	transactionRepo *testutil.MockTransactionRepository
	categoryRepo    *testutil.MockCategoryRepository
}

func newBudgetHandlerFixture() budgetHandlerFixture {
	budgetRepo := testutil.NewMockBudgetRepository()
	transactionRepo := testutil.NewMockTransactionRepository()
	categoryRepo := testutil.NewMockCategoryRepository()
	notificationService := service.NewNotificationService(testutil.NewMockNotificationRepository())
	budgetService := service.NewBudgetService(budgetRepo, transactionRepo, categoryRepo, notificationService)
	return budgetHandlerFixture{
		handler:         NewBudgetHandler(budgetService),
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

func TestCreateBudgetEndpoint_Success(t *testing.T) {
	e := echo.New()
	fixture := newBudgetHandlerFixture()

	reqBody := `{"name": "Monthly", "amount": "7500000", "startDate": "2026-03-01", "endDate": "2026-03-31"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/budgets", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, uuid.New())

	if err := fixture.handler.CreateBudget(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var response domain.Budget
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Amount.String() != "7500000.00" {
		t.Errorf("Expected amount 7500000.00, got %s", response.Amount)
	}
}

func TestCreateBudgetEndpoint_MalformedDates(t *testing.T) {
	e := echo.New()
	fixture := newBudgetHandlerFixture()

	reqBody := `{"name": "Monthly", "amount": "7500000", "startDate": "03/01/2026", "endDate": "2026-03-31"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/budgets", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, uuid.New())

	if err := fixture.handler.CreateBudget(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}

	var problem ProblemDetails
	if err := json.Unmarshal(rec.Body.Bytes(), &problem); err != nil {
		t.Fatalf("Failed to unmarshal problem: %v", err)
	}
	if len(problem.Errors) != 1 || problem.Errors[0].Field != "startDate" {
		t.Errorf("Expected a startDate field error, got %+v", problem.Errors)
	}
}

func TestCreateBudgetEndpoint_ReversedWindow(t *testing.T) {
	e := echo.New()
	fixture := newBudgetHandlerFixture()

	reqBody := `{"name": "Monthly", "amount": "7500000", "startDate": "2026-03-31", "endDate": "2026-03-01"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/budgets", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, uuid.New())

	if err := fixture.handler.CreateBudget(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for a reversed window, got %d", rec.Code)
	}
}

func TestGetBudgetStatusEndpoint(t *testing.T) {
	e := echo.New()
	fixture := newBudgetHandlerFixture()
	userID := uuid.New()

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	fixture.budgetRepo.AddBudget(&domain.Budget{
		UserID:    userID,
		Name:      "Monthly",
		Amount:    domain.NewMoneyFromInt(7500000),
		StartDate: start,
		EndDate:   end,
	})
	fixture.transactionRepo.AddTransaction(&domain.Transaction{
		UserID:     userID,
		CategoryID: 1,
		Amount:     domain.NewMoneyFromInt(2350000),
		Type:       domain.TransactionTypeExpense,
		OccurredAt: start.AddDate(0, 0, 9),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/budgets/1/status", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")
	setupAuthContext(c, userID)

	if err := fixture.handler.GetBudgetStatus(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var status service.BudgetStatus
	if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
		t.Fatalf("Failed to unmarshal status: %v", err)
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

func TestGetBudgetEndpoint_NotFound(t *testing.T) {
	e := echo.New()
	fixture := newBudgetHandlerFixture()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/budgets/3", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("3")
	setupAuthContext(c, uuid.New())

	if err := fixture.handler.GetBudget(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestDeleteBudgetEndpoint(t *testing.T) {
	e := echo.New()
	fixture := newBudgetHandlerFixture()
	userID := uuid.New()
	fixture.budgetRepo.AddBudget(&domain.Budget{
		UserID:    userID,
		Name:      "Monthly",
		Amount:    domain.NewMoneyFromInt(100),
		StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/budgets/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")
	setupAuthContext(c, userID)

	if err := fixture.handler.DeleteBudget(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", rec.Code)
	}
	if len(fixture.budgetRepo.Budgets) != 0 {
		t.Error("Expected budget removed")
	}
}
