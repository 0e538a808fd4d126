package postgres

import (
	"context"

	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NotificationRepository implements domain.NotificationRepository using
// PostgreSQL
type NotificationRepository struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

// Create appends a notification record for a user
func (r *NotificationRepository) Create(notification *domain.Notification) (*domain.Notification, error) {
	query := `
		INSERT INTO notifications (user_id, message)
		VALUES ($1, $2)
		RETURNING id, is_read, created_at`

	err := r.pool.QueryRow(context.Background(), query,
		notification.UserID, notification.Message,
	).Scan(&notification.ID, &notification.IsRead, &notification.CreatedAt)
	if err != nil {
		return nil, err
	}
	return notification, nil
}

// GetByUser retrieves a user's notifications, newest first
func (r *NotificationRepository) GetByUser(userID uuid.UUID) ([]*domain.Notification, error) {
	query := `
		SELECT id, user_id, message, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]*domain.Notification, 0)
	for rows.Next() {
		n := &domain.Notification{}
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// CountUnread counts a user's unread notifications
func (r *NotificationRepository) CountUnread(userID uuid.UUID) (int64, error) {
	var count int64
	err := r.pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = FALSE`,
		userID,
	).Scan(&count)
	return count, err
}

// MarkRead marks a single notification as read
func (r *NotificationRepository) MarkRead(userID uuid.UUID, id int32) error {
	tag, err := r.pool.Exec(context.Background(),
		`UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND id = $2`,
		userID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}
