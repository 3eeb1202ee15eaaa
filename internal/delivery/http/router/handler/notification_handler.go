package handler

import (
	"net/http"

	"imprisio/internal/delivery/http/middleware"
	"imprisio/internal/delivery/http/response"
	"imprisio/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for in-app notification handlers.
type NotificationHandler struct {
	notifications usecase.NotificationUsecase
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(notifications usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// List returns the caller's notifications with the unread count.
func (h *NotificationHandler) List(c echo.Context) error {
	user := middleware.CurrentUser(c)

	notifications, unread, err := h.notifications.List(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"notifications": toNotificationViews(notifications),
		"unreadCount":   unread,
	}, "")
}

// MarkAsRead marks one notification as read.
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	user := middleware.CurrentUser(c)

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Identifiant de notification invalide")
	}

	if err := h.notifications.MarkAsRead(c.Request().Context(), user.ID, notificationID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification lue")
}

// MarkAllAsRead marks every notification of the caller as read.
func (h *NotificationHandler) MarkAllAsRead(c echo.Context) error {
	user := middleware.CurrentUser(c)

	if err := h.notifications.MarkAllAsRead(c.Request().Context(), user.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Notifications lues")
}

// Remove deletes one notification.
func (h *NotificationHandler) Remove(c echo.Context) error {
	user := middleware.CurrentUser(c)

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Identifiant de notification invalide")
	}

	if err := h.notifications.Remove(c.Request().Context(), user.ID, notificationID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification supprimée")
}

// Clear deletes all notifications of the caller.
func (h *NotificationHandler) Clear(c echo.Context) error {
	user := middleware.CurrentUser(c)

	if err := h.notifications.Clear(c.Request().Context(), user.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Notifications supprimées")
}
