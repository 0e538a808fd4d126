package domain

import (
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction is an immutable income or expense record owned by exactly one
// user and assigned to exactly one category. The amount is always stored
// positive; direction is carried by Type.
type Transaction struct {
	ID           int32           `json:"id"`
	UserID       uuid.UUID       `json:"userId"`
	CategoryID   int32           `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	Amount       Money           `json:"amount"`
	Type         TransactionType `json:"type"`
	Description  string          `json:"description"`
	Notes        *string         `json:"notes,omitempty"`
	OccurredAt   time.Time       `json:"occurredAt"`
	ReceiptKey   *string         `json:"-"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// IsIncome reports whether the transaction adds to the balance
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// IsExpense reports whether the transaction subtracts from the balance
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// SignedAmount derives the directional amount: positive for income,
// negative for expense. Never persisted.
func (t *Transaction) SignedAmount() Money {
	if t.IsIncome() {
		return t.Amount
	}
	return t.Amount.Neg()
}

// TransactionFilters narrows a per-user transaction query
type TransactionFilters struct {
	CategoryID *int32
	StartDate  *time.Time
	EndDate    *time.Time
	Type       *TransactionType
}

// UpdateTransactionData holds the mutable fields of a transaction update
type UpdateTransactionData struct {
	CategoryID  int32
	Amount      Money
	Type        TransactionType
	Description string
	Notes       *string
	OccurredAt  time.Time
}

type TransactionRepository interface {
	Create(transaction *Transaction) (*Transaction, error)
	GetByID(userID uuid.UUID, id int32) (*Transaction, error)
	GetByUser(userID uuid.UUID, filters *TransactionFilters) ([]*Transaction, error)
	Update(userID uuid.UUID, id int32, data *UpdateTransactionData) (*Transaction, error)
	Delete(userID uuid.UUID, id int32) error
	SetReceiptKey(userID uuid.UUID, id int32, key *string) error
}
