package domain

import (
	"time"

	"github.com/google/uuid"
)

type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusCancelled GoalStatus = "cancelled"
)

// Goal is a savings target. CurrentAmount starts at zero and grows through
// contributions; SetProgress may reset it. CompletedAt is stamped exactly
// when the status transitions to completed.
type Goal struct {
	ID                         int32      `json:"id"`
	UserID                     uuid.UUID  `json:"userId"`
	Name                       string     `json:"name"`
	TargetAmount               Money      `json:"targetAmount"`
	CurrentAmount              Money      `json:"currentAmount"`
	TargetDate                 time.Time  `json:"targetDate"`
	Status                     GoalStatus `json:"status"`
	Description                *string    `json:"description,omitempty"`
	LastNotificationPercentage *int       `json:"-"`
	CreatedAt                  time.Time  `json:"createdAt"`
	CompletedAt                *time.Time `json:"completedAt,omitempty"`
}

// RemainingAmount returns target - current; negative once the target is
// exceeded
func (g *Goal) RemainingAmount() Money {
	return g.TargetAmount.Sub(g.CurrentAmount)
}

// ProgressPercentage returns current/target as a percentage. A zero target
// yields zero rather than an error; budgets fail fast on the same
// condition, goals deliberately do not.
func (g *Goal) ProgressPercentage() Money {
	if g.TargetAmount.IsZero() {
		return ZeroMoney()
	}
	pct, _ := g.CurrentAmount.PercentageOf(g.TargetAmount)
	return pct
}

// IsReached reports whether the current amount meets the target
func (g *Goal) IsReached() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// DaysRemaining returns full days until the target date, or 0 once passed
func (g *Goal) DaysRemaining(today time.Time) int {
	today = dateOnly(today)
	target := dateOnly(g.TargetDate)
	if today.After(target) {
		return 0
	}
	return int(target.Sub(today).Hours() / 24)
}

// IsOverdue reports whether the target date has passed without the goal
// being reached
func (g *Goal) IsOverdue(today time.Time) bool {
	return dateOnly(today).After(dateOnly(g.TargetDate)) && !g.IsReached()
}

// MarkCompleted transitions the goal to completed and stamps CompletedAt
func (g *Goal) MarkCompleted(now time.Time) {
	g.Status = GoalStatusCompleted
	g.CompletedAt = &now
}

// AddProgress adds a contribution and auto-completes when the target is
// reached
func (g *Goal) AddProgress(amount Money, now time.Time) {
	g.CurrentAmount = g.CurrentAmount.Add(amount)
	if g.IsReached() {
		g.MarkCompleted(now)
	}
}

// GoalRepository persists goals. As with budgets, concurrent writers from
// the same user race on current_amount; the last write wins.
type GoalRepository interface {
	Create(goal *Goal) (*Goal, error)
	GetByID(userID uuid.UUID, id int32) (*Goal, error)
	GetByUser(userID uuid.UUID) ([]*Goal, error)
	GetByUserAndStatus(userID uuid.UUID, status GoalStatus) ([]*Goal, error)
	CountByUserAndStatus(userID uuid.UUID, status GoalStatus) (int64, error)
	SearchByName(userID uuid.UUID, keyword string) ([]*Goal, error)
	Update(goal *Goal) (*Goal, error)
	Delete(userID uuid.UUID, id int32) error
}
