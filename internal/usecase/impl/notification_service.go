package impl

import (
	"context"
	"log/slog"

	"imprisio/internal/domain/entity"
	"imprisio/internal/domain/service"
	"imprisio/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// notificationService implements the NotificationUsecase interface over the
// in-process notification center.
type notificationService struct {
	center service.NotificationCenter
	logger *slog.Logger
}

// NotificationServiceParams holds dependencies for notificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	Center service.NotificationCenter
	Logger *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		center: params.Center,
		logger: params.Logger,
	}
}

// List returns the caller's notifications, most recent first, with the unread count.
func (srv *notificationService) List(_ context.Context, userID uuid.UUID) ([]*entity.Notification, int, error) {
	return srv.center.List(userID), srv.center.UnreadCount(userID), nil
}

// MarkAsRead marks one notification as read.
func (srv *notificationService) MarkAsRead(_ context.Context, userID, notificationID uuid.UUID) error {
	srv.center.MarkAsRead(userID, notificationID)

	return nil
}

// MarkAllAsRead marks every notification of the caller as read.
func (srv *notificationService) MarkAllAsRead(_ context.Context, userID uuid.UUID) error {
	srv.center.MarkAllAsRead(userID)

	return nil
}

// Remove deletes one notification.
func (srv *notificationService) Remove(_ context.Context, userID, notificationID uuid.UUID) error {
	srv.center.Remove(userID, notificationID)

	return nil
}

// Clear deletes all notifications of the caller.
func (srv *notificationService) Clear(_ context.Context, userID uuid.UUID) error {
	srv.center.Clear(userID)

	return nil
}
