package service

import (
	"sort"
	"time"

	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/google/uuid"
)

// ReportService composes ledger aggregates into summaries and trend data
type ReportService struct {
	transactionRepo domain.TransactionRepository
}

// NewReportService creates a new ReportService
func NewReportService(transactionRepo domain.TransactionRepository) *ReportService {
	return &ReportService{transactionRepo: transactionRepo}
}

// CategoryBreakdown is one category group in a summary
type CategoryBreakdown struct {
	Category string       `json:"category"`
	Total    domain.Money `json:"total"`
}

// FinancialSummary holds totals and per-direction category breakdowns for
// a date range
type FinancialSummary struct {
	TotalIncome       domain.Money        `json:"totalIncome"`
	TotalExpenses     domain.Money        `json:"totalExpenses"`
	NetSavings        domain.Money        `json:"netSavings"`
	IncomeByCategory  []CategoryBreakdown `json:"incomeByCategory"`
	ExpenseByCategory []CategoryBreakdown `json:"expenseByCategory"`
}

// GetFinancialSummary computes totals and category breakdowns over a date
// range. Raw totals include everything; the breakdown lists are
// chart-oriented and drop non-positive groups.
func (s *ReportService) GetFinancialSummary(userID uuid.UUID, startDate, endDate time.Time) (*FinancialSummary, error) {
	transactions, err := s.transactionRepo.GetByUser(userID, &domain.TransactionFilters{
		StartDate: &startDate,
		EndDate:   &endDate,
	})
	if err != nil {
		return nil, err
	}
	if transactions == nil {
		transactions = []*domain.Transaction{}
	}

	totalIncome, err := TotalIncome(transactions)
	if err != nil {
		return nil, err
	}
	totalExpenses, err := TotalExpenses(transactions)
	if err != nil {
		return nil, err
	}

	income := make([]*domain.Transaction, 0)
	expense := make([]*domain.Transaction, 0)
	for _, t := range transactions {
		if t.IsIncome() {
			income = append(income, t)
		} else {
			expense = append(expense, t)
		}
	}

	incomeGroups, err := CategoryTotals(income)
	if err != nil {
		return nil, err
	}
	expenseGroups, err := CategoryTotals(expense)
	if err != nil {
		return nil, err
	}

	return &FinancialSummary{
		TotalIncome:       totalIncome,
		TotalExpenses:     totalExpenses,
		NetSavings:        totalIncome.Sub(totalExpenses),
		IncomeByCategory:  toBreakdown(incomeGroups),
		ExpenseByCategory: toBreakdown(expenseGroups),
	}, nil
}

// TrendPoint is one day of activity in a trend report
type TrendPoint struct {
	Date    time.Time    `json:"date"`
	Income  domain.Money `json:"income"`
	Expense domain.Money `json:"expense"`
}

// GetTrendReport returns a date-ordered daily income/expense series for
// the range. Days without any transaction are absent from the series;
// gap filling is left to consumers.
func (s *ReportService) GetTrendReport(userID uuid.UUID, startDate, endDate time.Time) ([]TrendPoint, error) {
	transactions, err := s.transactionRepo.GetByUser(userID, &domain.TransactionFilters{
		StartDate: &startDate,
		EndDate:   &endDate,
	})
	if err != nil {
		return nil, err
	}

	byDay := make(map[time.Time]*TrendPoint)
	for _, t := range transactions {
		day := time.Date(t.OccurredAt.Year(), t.OccurredAt.Month(), t.OccurredAt.Day(), 0, 0, 0, 0, time.UTC)
		point, ok := byDay[day]
		if !ok {
			point = &TrendPoint{Date: day}
			byDay[day] = point
		}
		if t.IsIncome() {
			point.Income = point.Income.Add(t.Amount)
		} else {
			point.Expense = point.Expense.Add(t.Amount)
		}
	}

	series := make([]TrendPoint, 0, len(byDay))
	for _, point := range byDay {
		series = append(series, *point)
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})

	return series, nil
}

func toBreakdown(groups map[string]domain.Money) []CategoryBreakdown {
	breakdown := make([]CategoryBreakdown, 0, len(groups))
	for category, total := range groups {
		if !total.IsPositive() {
			continue
		}
		breakdown = append(breakdown, CategoryBreakdown{Category: category, Total: total})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		return breakdown[i].Category < breakdown[j].Category
	})
	return breakdown
}
