package domain

import "time"

type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Category is shared reference data: it is not owned by a user and may be
// referenced by many transactions and budgets.
type Category struct {
	ID          int32        `json:"id"`
	Name        string       `json:"name"`
	Type        CategoryType `json:"type"`
	Color       string       `json:"color"`
	Description *string      `json:"description,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
}

type CategoryRepository interface {
	Create(category *Category) (*Category, error)
	GetByID(id int32) (*Category, error)
	GetByName(name string) (*Category, error)
	GetAll() ([]*Category, error)
	Update(id int32, name string, color string, description *string) (*Category, error)
	Delete(id int32) error
	HasTransactions(id int32) (bool, error)
}
