package usecase

import (
	"context"
	"errors"
	"testing"

	"servineta/internal/domain/entities"
	"servineta/internal/usecase/interfaces"
	mock_interfaces "servineta/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestNotificationUseCase_List(t *testing.T) {
	t.Run("blank caller", func(t *testing.T) {
		uc := NewNotificationUseCase(nil)
		_, _, err := uc.List(context.Background(), "  ", interfaces.NotificationFilter{})
		if !errors.Is(err, ErrNotNotificationOwner) {
			t.Fatalf("expected ErrNotNotificationOwner, got %v", err)
		}
	})

	t.Run("passes the filter through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo)

		unread := false
		f := interfaces.NotificationFilter{IsRead: &unread, Limit: 5}
		repo.EXPECT().ListByUserID(gomock.Any(), "user-1", f).Return([]entities.Notification{{ID: "n-1"}}, "cursor", nil)

		items, cursor, err := uc.List(context.Background(), "user-1", f)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 1 || cursor != "cursor" {
			t.Fatalf("unexpected result: %d items, cursor %q", len(items), cursor)
		}
	})
}

func TestNotificationUseCase_MarkRead(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Notification{}, nil)

		_, err := uc.MarkRead(context.Background(), "user-1", "ghost")
		if !errors.Is(err, ErrNotificationNotFound) {
			t.Fatalf("expected ErrNotificationNotFound, got %v", err)
		}
	})

	t.Run("someone else's notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "n-1").Return(entities.Notification{ID: "n-1", UserID: "user-2"}, nil)

		_, err := uc.MarkRead(context.Background(), "user-1", "n-1")
		if !errors.Is(err, ErrNotNotificationOwner) {
			t.Fatalf("expected ErrNotNotificationOwner, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "n-1").Return(entities.Notification{ID: "n-1", UserID: "user-1"}, nil)
		repo.EXPECT().MarkRead(gomock.Any(), "n-1").Return(entities.Notification{ID: "n-1", UserID: "user-1", IsRead: true}, nil)

		n, err := uc.MarkRead(context.Background(), "user-1", "n-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !n.IsRead {
			t.Fatalf("expected read notification")
		}
	})
}

func TestNotificationUseCase_BulkOperations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockINotificationRepository(ctrl)
	uc := NewNotificationUseCase(repo)

	repo.EXPECT().MarkAllRead(gomock.Any(), "user-1").Return(3, nil)
	repo.EXPECT().DeleteAllRead(gomock.Any(), "user-1").Return(2, nil)
	repo.EXPECT().CountUnread(gomock.Any(), "user-1").Return(4, nil)

	if n, err := uc.MarkAllRead(context.Background(), "user-1"); err != nil || n != 3 {
		t.Fatalf("expected 3 marked, got %d (%v)", n, err)
	}
	if n, err := uc.DeleteAllRead(context.Background(), "user-1"); err != nil || n != 2 {
		t.Fatalf("expected 2 deleted, got %d (%v)", n, err)
	}
	if n, err := uc.UnreadCount(context.Background(), "user-1"); err != nil || n != 4 {
		t.Fatalf("expected 4 unread, got %d (%v)", n, err)
	}
}
