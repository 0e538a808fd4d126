package service

import (
	"testing"
	"time"

	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/centavo/centavo-backend/internal/testutil"
	"github.com/google/uuid"
)

func addLedgerEntry(repo *testutil.MockTransactionRepository, userID uuid.UUID, transactionType domain.TransactionType, amount int64, category string, day time.Time) {
	repo.AddTransaction(&domain.Transaction{
		UserID:       userID,
		Amount:       domain.NewMoneyFromInt(amount),
		Type:         transactionType,
		CategoryName: category,
		OccurredAt:   day,
	})
}

func TestGetFinancialSummary(t *testing.T) {
	transactionRepo := testutil.NewMockTransactionRepository()
	reportService := NewReportService(transactionRepo)
	userID := uuid.New()

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	addLedgerEntry(transactionRepo, userID, domain.TransactionTypeIncome, 5000, "Salary", start.AddDate(0, 0, 1))
	addLedgerEntry(transactionRepo, userID, domain.TransactionTypeIncome, 1200, "Freelance", start.AddDate(0, 0, 10))
	addLedgerEntry(transactionRepo, userID, domain.TransactionTypeExpense, 800, "Rent", start.AddDate(0, 0, 2))
	addLedgerEntry(transactionRepo, userID, domain.TransactionTypeExpense, 150, "Groceries", start.AddDate(0, 0, 5))
	addLedgerEntry(transactionRepo, userID, domain.TransactionTypeExpense, 50, "Groceries", start.AddDate(0, 0, 20))
	// Outside the range: ignored
	addLedgerEntry(transactionRepo, userID, domain.TransactionTypeExpense, 9999, "Rent", end.AddDate(0, 0, 5))

	summary, err := reportService.GetFinancialSummary(userID, start, end)
	if err != nil {
		t.Fatalf("GetFinancialSummary failed: %v", err)
	}

	if summary.TotalIncome.String() != "6200.00" {
		t.Errorf("Expected income 6200.00, got %s", summary.TotalIncome)
	}
	if summary.TotalExpenses.String() != "1000.00" {
		t.Errorf("Expected expenses 1000.00, got %s", summary.TotalExpenses)
	}
	if summary.NetSavings.String() != "5200.00" {
		t.Errorf("Expected net savings 5200.00, got %s", summary.NetSavings)
	}

	if len(summary.IncomeByCategory) != 2 {
		t.Fatalf("Expected 2 income groups, got %d", len(summary.IncomeByCategory))
	}
	// Breakdown is sorted by category name
	if summary.IncomeByCategory[0].Category != "Freelance" || summary.IncomeByCategory[1].Category != "Salary" {
		t.Errorf("Expected sorted income breakdown, got %+v", summary.IncomeByCategory)
	}

	if len(summary.ExpenseByCategory) != 2 {
		t.Fatalf("Expected 2 expense groups, got %d", len(summary.ExpenseByCategory))
	}
	if summary.ExpenseByCategory[0].Category != "Groceries" || summary.ExpenseByCategory[0].Total.String() != "200.00" {
		t.Errorf("Expected Groceries 200.00 first, got %+v", summary.ExpenseByCategory[0])
	}
}

func TestGetFinancialSummary_EmptyRange(t *testing.T) {
	transactionRepo := testutil.NewMockTransactionRepository()
	reportService := NewReportService(transactionRepo)

	summary, err := reportService.GetFinancialSummary(uuid.New(),
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("GetFinancialSummary failed: %v", err)
	}

	if summary.NetSavings.String() != "0.00" {
		t.Errorf("Expected 0.00 net for empty range, got %s", summary.NetSavings)
	}
	if len(summary.IncomeByCategory) != 0 || len(summary.ExpenseByCategory) != 0 {
		t.Error("Expected empty breakdowns")
	}
}

func TestGetTrendReport(t *testing.T) {
	transactionRepo := testutil.NewMockTransactionRepository()
	reportService := NewReportService(transactionRepo)
	userID := uuid.New()

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	day1 := time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC)
	day1Later := time.Date(2026, 3, 3, 18, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)

	addLedgerEntry(transactionRepo, userID, domain.TransactionTypeIncome, 500, "Salary", day1)
	addLedgerEntry(transactionRepo, userID, domain.TransactionTypeExpense, 120, "Groceries", day1Later)
	addLedgerEntry(transactionRepo, userID, domain.TransactionTypeExpense, 60, "Transport", day2)

	series, err := reportService.GetTrendReport(userID, start, end)
	if err != nil {
		t.Fatalf("GetTrendReport failed: %v", err)
	}

	// Only days with activity appear; the gap between them is preserved
	if len(series) != 2 {
		t.Fatalf("Expected 2 points, got %d", len(series))
	}
	if !series[0].Date.Before(series[1].Date) {
		t.Error("Expected ascending date order")
	}
	if series[0].Income.String() != "500.00" || series[0].Expense.String() != "120.00" {
		t.Errorf("Expected day one totals 500.00/120.00, got %s/%s", series[0].Income, series[0].Expense)
	}
	if series[1].Income.String() != "0.00" || series[1].Expense.String() != "60.00" {
		t.Errorf("Expected day two totals 0.00/60.00, got %s/%s", series[1].Income, series[1].Expense)
	}
}
