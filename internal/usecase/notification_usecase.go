package usecase

import (
	"context"
	"errors"
	"strings"

	"servineta/internal/domain/entities"
	"servineta/internal/usecase/interfaces"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotNotificationOwner = errors.New("caller does not own this notification")
)

//go:generate mockgen -source=notification_usecase.go -destination=../adapter/http/handlers/mocks/mock_notification_usecase.go -package=mocks
type INotificationUseCase interface {
	List(ctx context.Context, userID string, f interfaces.NotificationFilter) ([]entities.Notification, string, error)
	UnreadCount(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, userID, notificationID string) (entities.Notification, error)
	MarkAllRead(ctx context.Context, userID string) (int, error)
	Delete(ctx context.Context, userID, notificationID string) error
	DeleteAllRead(ctx context.Context, userID string) (int, error)
}

type NotificationUseCase struct {
	notifications interfaces.INotificationRepository
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(notifications interfaces.INotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{notifications: notifications}
}

func (u *NotificationUseCase) List(ctx context.Context, userID string, f interfaces.NotificationFilter) ([]entities.Notification, string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, "", ErrNotNotificationOwner
	}
	return u.notifications.ListByUserID(ctx, userID, f)
}

func (u *NotificationUseCase) UnreadCount(ctx context.Context, userID string) (int, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return 0, ErrNotNotificationOwner
	}
	return u.notifications.CountUnread(ctx, userID)
}

func (u *NotificationUseCase) MarkRead(ctx context.Context, userID, notificationID string) (entities.Notification, error) {
	n, err := u.owned(ctx, userID, notificationID)
	if err != nil {
		return entities.Notification{}, err
	}
	read, err := u.notifications.MarkRead(ctx, n.ID)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Notification{}, ErrNotificationNotFound
		}
		return entities.Notification{}, err
	}
	return read, nil
}

func (u *NotificationUseCase) MarkAllRead(ctx context.Context, userID string) (int, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return 0, ErrNotNotificationOwner
	}
	return u.notifications.MarkAllRead(ctx, userID)
}

func (u *NotificationUseCase) Delete(ctx context.Context, userID, notificationID string) error {
	n, err := u.owned(ctx, userID, notificationID)
	if err != nil {
		return err
	}
	return u.notifications.Delete(ctx, n.ID)
}

func (u *NotificationUseCase) DeleteAllRead(ctx context.Context, userID string) (int, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return 0, ErrNotNotificationOwner
	}
	return u.notifications.DeleteAllRead(ctx, userID)
}

func (u *NotificationUseCase) owned(ctx context.Context, userID, notificationID string) (entities.Notification, error) {
	notificationID = strings.TrimSpace(notificationID)
	if notificationID == "" {
		return entities.Notification{}, ErrNotificationNotFound
	}
	n, err := u.notifications.GetByID(ctx, notificationID)
	if err != nil {
		return entities.Notification{}, err
	}
	if n.ID == "" {
		return entities.Notification{}, ErrNotificationNotFound
	}
	if n.UserID != strings.TrimSpace(userID) {
		return entities.Notification{}, ErrNotNotificationOwner
	}
	return n, nil
}
