package service

import (
	"fmt"

	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// progressThresholds are the discrete notification thresholds, highest
// first. Crossing several in one mutation fires only the top one.
var progressThresholds = [3]int{100, 75, 50}

// CrossedThreshold computes the highest threshold at or below the given
// percentage and reports whether it is newly crossed relative to the last
// notified threshold. Re-evaluating at the same or a lower percentage
// never reports a crossing.
func CrossedThreshold(percentage domain.Money, lastNotified *int) (int, bool) {
	current := 0
	for _, threshold := range progressThresholds {
		if percentage.GreaterThanOrEqual(domain.NewMoneyFromInt(int64(threshold))) {
			current = threshold
			break
		}
	}
	if current == 0 {
		return 0, false
	}
	if lastNotified != nil && current <= *lastNotified {
		return 0, false
	}
	return current, true
}

// NotificationService persists per-user notifications. Emission is best
// effort: a storage failure is logged and swallowed so it can never roll
// back the mutation that triggered it.
type NotificationService struct {
	notificationRepo domain.NotificationRepository
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notificationRepo domain.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

// NotifyGoalThreshold emits a goal progress notification for a crossed
// threshold
func (s *NotificationService) NotifyGoalThreshold(userID uuid.UUID, goalName string, threshold int) {
	var message string
	if threshold >= 100 {
		message = fmt.Sprintf("Congratulations! You have reached your goal '%s'!", goalName)
	} else {
		message = fmt.Sprintf("You have reached over %d%% of your goal '%s'. Keep going!", threshold, goalName)
	}
	s.emit(userID, message)
}

// NotifyBudgetThreshold emits a budget utilization notification for a
// crossed threshold
func (s *NotificationService) NotifyBudgetThreshold(userID uuid.UUID, budgetName string, threshold int) {
	var message string
	if threshold >= 100 {
		message = fmt.Sprintf("You have used up your budget '%s'!", budgetName)
	} else {
		message = fmt.Sprintf("You have used over %d%% of your budget '%s'.", threshold, budgetName)
	}
	s.emit(userID, message)
}

func (s *NotificationService) emit(userID uuid.UUID, message string) {
	_, err := s.notificationRepo.Create(&domain.Notification{
		UserID:  userID,
		Message: message,
	})
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to persist notification")
	}
}

// GetNotifications returns a user's notifications, newest first
func (s *NotificationService) GetNotifications(userID uuid.UUID) ([]*domain.Notification, error) {
	return s.notificationRepo.GetByUser(userID)
}

// GetUnreadCount returns the number of unread notifications for a user
func (s *NotificationService) GetUnreadCount(userID uuid.UUID) (int64, error) {
	return s.notificationRepo.CountUnread(userID)
}

// MarkAsRead marks a single notification as read
func (s *NotificationService) MarkAsRead(userID uuid.UUID, id int32) error {
	return s.notificationRepo.MarkRead(userID, id)
}
