package interfaces

import (
	"context"

	"servineta/internal/domain/entities"
)

//go:generate mockgen -source=notification_repository_interface.go -destination=mocks/mock_notification_repository.go -package=mocks

// NotificationFilter narrows a user's notification listing.
type NotificationFilter struct {
	Search string
	IsRead *bool
	Limit  int32
	Cursor string
}

// INotificationRepository abstracts DynamoDB persistence for Notification.
type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
	GetByID(ctx context.Context, id string) (entities.Notification, error)
	ListByUserID(ctx context.Context, userID string, f NotificationFilter) ([]entities.Notification, string, error)
	CountUnread(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, id string) (entities.Notification, error)
	MarkAllRead(ctx context.Context, userID string) (int, error)
	Delete(ctx context.Context, id string) error
	DeleteAllRead(ctx context.Context, userID string) (int, error)
}
