package domain

import (
	"time"

	"github.com/google/uuid"
)

// Budget caps spending against a category (or the whole portfolio when
// CategoryID is nil) over an inclusive [StartDate, EndDate] window.
// LastNotificationPercentage records the highest threshold already
// notified, keeping threshold notifications idempotent.
type Budget struct {
	ID                         int32     `json:"id"`
	UserID                     uuid.UUID `json:"userId"`
	Name                       string    `json:"name"`
	Amount                     Money     `json:"amount"`
	StartDate                  time.Time `json:"startDate"`
	EndDate                    time.Time `json:"endDate"`
	CategoryID                 *int32    `json:"categoryId,omitempty"`
	Description                *string   `json:"description,omitempty"`
	LastNotificationPercentage *int      `json:"-"`
	CreatedAt                  time.Time `json:"createdAt"`
}

// IsActive reports whether today falls inside the budget window, inclusive
// on both ends
func (b *Budget) IsActive(today time.Time) bool {
	today = dateOnly(today)
	return !today.Before(dateOnly(b.StartDate)) && !today.After(dateOnly(b.EndDate))
}

// DaysRemaining returns full days between today and the end date, or 0 once
// the window has passed
func (b *Budget) DaysRemaining(today time.Time) int {
	today = dateOnly(today)
	end := dateOnly(b.EndDate)
	if today.After(end) {
		return 0
	}
	return int(end.Sub(today).Hours() / 24)
}

// TotalDays returns the inclusive length of the budget window in days
func (b *Budget) TotalDays() int {
	return int(dateOnly(b.EndDate).Sub(dateOnly(b.StartDate)).Hours()/24) + 1
}

// ContainsDate reports whether a transaction date falls inside the window
func (b *Budget) ContainsDate(date time.Time) bool {
	d := dateOnly(date)
	return !d.Before(dateOnly(b.StartDate)) && !d.After(dateOnly(b.EndDate))
}

// AppliesToCategory reports whether the budget scopes the given category.
// An unscoped budget applies to the whole portfolio.
func (b *Budget) AppliesToCategory(categoryID int32) bool {
	return b.CategoryID == nil || *b.CategoryID == categoryID
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// BudgetRepository persists budgets. Budget rows may be concurrently
// written by the same user from multiple sessions; there is no optimistic
// locking, so the last write wins.
type BudgetRepository interface {
	Create(budget *Budget) (*Budget, error)
	GetByID(userID uuid.UUID, id int32) (*Budget, error)
	GetByUser(userID uuid.UUID) ([]*Budget, error)
	GetByUserCoveringDate(userID uuid.UUID, date time.Time) ([]*Budget, error)
	Update(budget *Budget) (*Budget, error)
	Delete(userID uuid.UUID, id int32) error
}
