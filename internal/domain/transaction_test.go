package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestTransaction_SignedAmount(t *testing.T) {
	income := &Transaction{Type: TransactionTypeIncome, Amount: NewMoneyFromInt(250)}
	if got := income.SignedAmount().String(); got != "250.00" {
		t.Errorf("Expected 250.00 for income, got %s", got)
	}

	expense := &Transaction{Type: TransactionTypeExpense, Amount: NewMoneyFromInt(250)}
	if got := expense.SignedAmount().String(); got != "-250.00" {
		t.Errorf("Expected -250.00 for expense, got %s", got)
	}
}

func TestTransaction_Direction(t *testing.T) {
	tx := &Transaction{Type: TransactionTypeIncome}
	if !tx.IsIncome() || tx.IsExpense() {
		t.Error("Expected income direction")
	}
	tx.Type = TransactionTypeExpense
	if tx.IsIncome() || !tx.IsExpense() {
		t.Error("Expected expense direction")
	}
}

func TestTransaction_ReceiptKeyNotSerialized(t *testing.T) {
	key := "receipts/abc"
	tx := &Transaction{Amount: NewMoneyFromInt(10), ReceiptKey: &key}

	data, err := json.Marshal(tx)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if strings.Contains(string(data), "receipts/abc") {
		t.Error("Expected receipt key to be excluded from JSON")
	}
}
