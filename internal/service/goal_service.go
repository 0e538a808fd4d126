package service

import (
	"strings"
	"time"

	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/google/uuid"
)

// NearCompletionThreshold is the progress percentage at which an active
// goal counts as near completion in summaries
const NearCompletionThreshold = 80

// GoalService handles goal lifecycle and progress tracking
type GoalService struct {
	goalRepo      domain.GoalRepository
	notifications *NotificationService
}

// NewGoalService creates a new GoalService
func NewGoalService(goalRepo domain.GoalRepository, notifications *NotificationService) *GoalService {
	return &GoalService{
		goalRepo:      goalRepo,
		notifications: notifications,
	}
}

// CreateGoalInput holds the input for creating a goal
type CreateGoalInput struct {
	Name         string
	TargetAmount domain.Money
	TargetDate   time.Time
	Description  *string
}

// CreateGoal creates a new active goal with zero progress
func (s *GoalService) CreateGoal(userID uuid.UUID, input CreateGoalInput) (*domain.Goal, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxNameLength {
		return nil, domain.ErrNameTooLong
	}
	if !input.TargetAmount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	if isPastDate(input.TargetDate) {
		return nil, domain.ErrPastTargetDate
	}
	description, err := trimOptional(input.Description, domain.MaxDescriptionLength)
	if err != nil {
		return nil, err
	}

	return s.goalRepo.Create(&domain.Goal{
		UserID:        userID,
		Name:          name,
		TargetAmount:  input.TargetAmount,
		CurrentAmount: domain.ZeroMoney(),
		TargetDate:    input.TargetDate,
		Status:        domain.GoalStatusActive,
		Description:   description,
	})
}

// GetGoal retrieves a goal by id for a user
func (s *GoalService) GetGoal(userID uuid.UUID, id int32) (*domain.Goal, error) {
	return s.goalRepo.GetByID(userID, id)
}

// GetGoals retrieves all goals for a user
func (s *GoalService) GetGoals(userID uuid.UUID) ([]*domain.Goal, error) {
	return s.goalRepo.GetByUser(userID)
}

// GetGoalsByStatus retrieves a user's goals in a given status
func (s *GoalService) GetGoalsByStatus(userID uuid.UUID, status domain.GoalStatus) ([]*domain.Goal, error) {
	switch status {
	case domain.GoalStatusActive, domain.GoalStatusCompleted, domain.GoalStatusCancelled:
	default:
		return nil, domain.ErrInvalidGoalStatus
	}
	return s.goalRepo.GetByUserAndStatus(userID, status)
}

// GetOverdueGoals retrieves a user's goals past their target date and not
// yet reached
func (s *GoalService) GetOverdueGoals(userID uuid.UUID) ([]*domain.Goal, error) {
	goals, err := s.goalRepo.GetByUserAndStatus(userID, domain.GoalStatusActive)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	overdue := make([]*domain.Goal, 0)
	for _, g := range goals {
		if g.IsOverdue(now) {
			overdue = append(overdue, g)
		}
	}
	return overdue, nil
}

// SearchGoals finds a user's goals whose name contains the keyword
func (s *GoalService) SearchGoals(userID uuid.UUID, keyword string) ([]*domain.Goal, error) {
	return s.goalRepo.SearchByName(userID, strings.TrimSpace(keyword))
}

// Contribute adds a positive amount to an active goal's progress. Reaching
// the target completes the goal. The threshold check runs after the
// mutation and before persistence.
func (s *GoalService) Contribute(userID uuid.UUID, id int32, amount domain.Money) (*domain.Goal, error) {
	if !amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	goal, err := s.goalRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if goal.Status != domain.GoalStatusActive {
		return nil, domain.ErrGoalNotActive
	}

	goal.AddProgress(amount, time.Now())
	s.checkThreshold(goal)

	return s.goalRepo.Update(goal)
}

// SetProgress overwrites the current amount. Unlike Contribute this is not
// additive and may lower progress; it never re-fires already-notified
// thresholds.
func (s *GoalService) SetProgress(userID uuid.UUID, id int32, amount domain.Money) (*domain.Goal, error) {
	if amount.IsNegative() {
		return nil, domain.ErrNegativeAmount
	}
	goal, err := s.goalRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}

	goal.CurrentAmount = amount
	if goal.IsReached() {
		goal.MarkCompleted(time.Now())
	}
	s.checkThreshold(goal)

	return s.goalRepo.Update(goal)
}

// Complete forces a goal to completed regardless of its current amount
func (s *GoalService) Complete(userID uuid.UUID, id int32) (*domain.Goal, error) {
	goal, err := s.goalRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	goal.MarkCompleted(time.Now())
	return s.goalRepo.Update(goal)
}

// Cancel forces a goal to cancelled
func (s *GoalService) Cancel(userID uuid.UUID, id int32) (*domain.Goal, error) {
	goal, err := s.goalRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	goal.Status = domain.GoalStatusCancelled
	return s.goalRepo.Update(goal)
}

// Reactivate returns a completed or cancelled goal to active. A goal whose
// current amount still meets the target is immediately re-completed.
func (s *GoalService) Reactivate(userID uuid.UUID, id int32) (*domain.Goal, error) {
	goal, err := s.goalRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if isPastDate(goal.TargetDate) {
		return nil, domain.ErrPastTargetDate
	}

	goal.Status = domain.GoalStatusActive
	if goal.IsReached() {
		goal.MarkCompleted(time.Now())
	} else {
		goal.CompletedAt = nil
	}

	return s.goalRepo.Update(goal)
}

// UpdateGoalInput holds the input for updating a goal
type UpdateGoalInput struct {
	Name         string
	TargetAmount domain.Money
	TargetDate   time.Time
	Description  *string
}

// UpdateGoal edits a goal's definition and re-evaluates completion against
// the new target amount
func (s *GoalService) UpdateGoal(userID uuid.UUID, id int32, input UpdateGoalInput) (*domain.Goal, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxNameLength {
		return nil, domain.ErrNameTooLong
	}
	if !input.TargetAmount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	description, err := trimOptional(input.Description, domain.MaxDescriptionLength)
	if err != nil {
		return nil, err
	}

	goal, err := s.goalRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if goal.Status == domain.GoalStatusActive && isPastDate(input.TargetDate) {
		return nil, domain.ErrPastTargetDate
	}

	goal.Name = name
	goal.TargetAmount = input.TargetAmount
	goal.TargetDate = input.TargetDate
	goal.Description = description
	if goal.IsReached() {
		goal.MarkCompleted(time.Now())
	}

	return s.goalRepo.Update(goal)
}

// DeleteGoal removes a goal
func (s *GoalService) DeleteGoal(userID uuid.UUID, id int32) error {
	return s.goalRepo.Delete(userID, id)
}

// GoalSummary aggregates a user's active goals
type GoalSummary struct {
	ActiveCount         int          `json:"activeCount"`
	TotalTargetAmount   domain.Money `json:"totalTargetAmount"`
	TotalCurrentAmount  domain.Money `json:"totalCurrentAmount"`
	TotalRemaining      domain.Money `json:"totalRemaining"`
	OverallProgress     domain.Money `json:"overallProgress"`
	NearCompletionCount int          `json:"nearCompletionCount"`
	OverdueCount        int          `json:"overdueCount"`
	CompletedCount      int64        `json:"completedCount"`
}

// GetGoalSummary aggregates active goals plus the all-time completed count
func (s *GoalService) GetGoalSummary(userID uuid.UUID) (*GoalSummary, error) {
	activeGoals, err := s.goalRepo.GetByUserAndStatus(userID, domain.GoalStatusActive)
	if err != nil {
		return nil, err
	}
	completedCount, err := s.goalRepo.CountByUserAndStatus(userID, domain.GoalStatusCompleted)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	nearThreshold := domain.NewMoneyFromInt(NearCompletionThreshold)
	summary := &GoalSummary{
		ActiveCount:    len(activeGoals),
		CompletedCount: completedCount,
	}
	for _, g := range activeGoals {
		summary.TotalTargetAmount = summary.TotalTargetAmount.Add(g.TargetAmount)
		summary.TotalCurrentAmount = summary.TotalCurrentAmount.Add(g.CurrentAmount)
		if g.ProgressPercentage().GreaterThanOrEqual(nearThreshold) {
			summary.NearCompletionCount++
		}
		if g.IsOverdue(now) {
			summary.OverdueCount++
		}
	}
	summary.TotalRemaining = summary.TotalTargetAmount.Sub(summary.TotalCurrentAmount)
	if !summary.TotalTargetAmount.IsZero() {
		summary.OverallProgress, _ = summary.TotalCurrentAmount.PercentageOf(summary.TotalTargetAmount)
	}

	return summary, nil
}

func (s *GoalService) checkThreshold(goal *domain.Goal) {
	threshold, crossed := CrossedThreshold(goal.ProgressPercentage(), goal.LastNotificationPercentage)
	if !crossed {
		return
	}
	s.notifications.NotifyGoalThreshold(goal.UserID, goal.Name, threshold)
	goal.LastNotificationPercentage = &threshold
}

func isPastDate(date time.Time) bool {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return d.Before(today)
}

func trimOptional(value *string, maxLength int) (*string, error) {
	if value == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil, nil
	}
	if len(trimmed) > maxLength {
		return nil, domain.ErrDescriptionTooLong
	}
	return &trimmed, nil
}
