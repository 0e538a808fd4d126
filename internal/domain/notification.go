package domain

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID        int32     `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

type NotificationRepository interface {
	Create(notification *Notification) (*Notification, error)
	GetByUser(userID uuid.UUID) ([]*Notification, error)
	CountUnread(userID uuid.UUID) (int64, error)
	MarkRead(userID uuid.UUID, id int32) error
}
