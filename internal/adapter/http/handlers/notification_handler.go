package handlers

import (
	"errors"
	"net/http"
	"strconv"

	response "servineta/internal/adapter/http/dto/response"
	"servineta/internal/adapter/http/middleware"
	"servineta/internal/usecase"
	"servineta/internal/usecase/interfaces"
	"servineta/pkg"

	"github.com/gin-gonic/gin"
)

// NotificationHandler handles a user's in-app notification feed.

type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

func (h *NotificationHandler) List(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.Query("limit"), 10, 32)
	f := interfaces.NotificationFilter{
		Search: c.Query("search"),
		Limit:  int32(limit),
		Cursor: c.Query("cursor"),
	}
	if v := c.Query("is_read"); v != "" {
		isRead := v == "true" || v == "1"
		f.IsRead = &isRead
	}

	items, cursor, err := h.usecase.List(c.Request.Context(), c.GetString(middleware.ContextUserID), f)
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromNotifications(items, cursor))
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	count, err := h.usecase.UnreadCount(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.UnreadCountResponse{Unread: count})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	updated, err := h.usecase.MarkRead(c.Request.Context(), c.GetString(middleware.ContextUserID), c.Param("notification_id"))
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromNotification(updated))
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	count, err := h.usecase.MarkAllRead(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.AffectedCountResponse{Affected: count})
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.GetString(middleware.ContextUserID), c.Param("notification_id")); err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *NotificationHandler) DeleteAllRead(c *gin.Context) {
	count, err := h.usecase.DeleteAllRead(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.AffectedCountResponse{Affected: count})
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNotificationNotFound):
		return pkg.NewDomainErrorSimple("NOTIFICATION_NOT_FOUND", "Notification not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotNotificationOwner):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "You do not own this notification", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
