package service

import (
	"github.com/centavo/centavo-backend/internal/domain"
)

// Ledger aggregation. These are pure functions over transaction
// collections already filtered to one owner and date range by the
// repository layer. A nil collection is a caller bug and is rejected;
// an empty one aggregates to zero.

// TotalIncome sums the amounts of all income transactions
func TotalIncome(transactions []*domain.Transaction) (domain.Money, error) {
	if transactions == nil {
		return domain.Money{}, domain.ErrNilTransactions
	}
	total := domain.ZeroMoney()
	for _, t := range transactions {
		if t.IsIncome() {
			total = total.Add(t.Amount)
		}
	}
	return total, nil
}

// TotalExpenses sums the amounts of all expense transactions
func TotalExpenses(transactions []*domain.Transaction) (domain.Money, error) {
	if transactions == nil {
		return domain.Money{}, domain.ErrNilTransactions
	}
	total := domain.ZeroMoney()
	for _, t := range transactions {
		if t.IsExpense() {
			total = total.Add(t.Amount)
		}
	}
	return total, nil
}

// NetBalance returns total income minus total expenses
func NetBalance(transactions []*domain.Transaction) (domain.Money, error) {
	income, err := TotalIncome(transactions)
	if err != nil {
		return domain.Money{}, err
	}
	expenses, err := TotalExpenses(transactions)
	if err != nil {
		return domain.Money{}, err
	}
	return income.Sub(expenses), nil
}

// CategoryTotals groups transactions by category name and sums the
// unsigned amount per group
func CategoryTotals(transactions []*domain.Transaction) (map[string]domain.Money, error) {
	if transactions == nil {
		return nil, domain.ErrNilTransactions
	}
	totals := make(map[string]domain.Money)
	for _, t := range transactions {
		totals[t.CategoryName] = totals[t.CategoryName].Add(t.Amount)
	}
	return totals, nil
}

// BudgetUtilization returns spent as a percentage of the budget amount.
// A zero budget amount is a fail-fast error, unlike goal progress which
// defensively returns zero.
func BudgetUtilization(spent, budgetAmount domain.Money) (domain.Money, error) {
	return spent.PercentageOf(budgetAmount)
}

// RemainingBudget returns budget - spent; negative when over budget
func RemainingBudget(budgetAmount, spent domain.Money) domain.Money {
	return budgetAmount.Sub(spent)
}

// IsBudgetExceeded reports whether spending has passed the budget amount
func IsBudgetExceeded(spent, budgetAmount domain.Money) bool {
	return spent.GreaterThan(budgetAmount)
}
