// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"imprisio/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase exposes the per-user in-app notification list. The
// backing store is process-local and ephemeral; see the domain service doc.
type NotificationUsecase interface {
	// List returns the caller's notifications, most recent first, with the
	// unread count.
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, int, error)

	// MarkAsRead marks one notification as read.
	MarkAsRead(ctx context.Context, userID, notificationID uuid.UUID) error

	// MarkAllAsRead marks every notification of the caller as read.
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) error

	// Remove deletes one notification.
	Remove(ctx context.Context, userID, notificationID uuid.UUID) error

	// Clear deletes all notifications of the caller.
	Clear(ctx context.Context, userID uuid.UUID) error
}
