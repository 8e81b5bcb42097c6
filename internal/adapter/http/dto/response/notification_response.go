package response

import (
	"time"

	"servineta/internal/domain/entities"
)

type NotificationResponse struct {
	ID             string                    `json:"id"`
	UserID         string                    `json:"user_id"`
	Title          string                    `json:"title"`
	Message        string                    `json:"message"`
	AdditionalData *entities.QuotationNotice `json:"additional_data,omitempty"`
	IsRead         bool                      `json:"is_read"`
	CreatedAt      time.Time                 `json:"created_at"`
	UpdatedAt      time.Time                 `json:"updated_at"`
}

func FromNotification(n entities.Notification) NotificationResponse {
	return NotificationResponse{
		ID:             n.ID,
		UserID:         n.UserID,
		Title:          n.Title,
		Message:        n.Message,
		AdditionalData: n.AdditionalData,
		IsRead:         n.IsRead,
		CreatedAt:      n.CreatedAt,
		UpdatedAt:      n.UpdatedAt,
	}
}

type NotificationListResponse struct {
	Items      []NotificationResponse `json:"items"`
	NextCursor string                 `json:"next_cursor,omitempty"`
}

func FromNotifications(notifications []entities.Notification, cursor string) NotificationListResponse {
	items := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		items = append(items, FromNotification(n))
	}
	return NotificationListResponse{Items: items, NextCursor: cursor}
}

type UnreadCountResponse struct {
	Unread int `json:"unread"`
}

type AffectedCountResponse struct {
	Affected int `json:"affected"`
}
