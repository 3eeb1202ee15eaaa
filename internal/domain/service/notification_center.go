package service

import (
	"imprisio/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationCenter holds the per-user in-app alert lists shown in the bell
// menu. State is scoped to the process lifetime: nothing is persisted and
// nothing crosses instances. It is a UI convenience list, not a message bus.
type NotificationCenter interface {
	// Add prepends a notification for a user and returns its id.
	Add(userID uuid.UUID, kind entity.NotificationType, title, message string, data map[string]any) uuid.UUID

	// List returns a user's notifications, most recent first.
	List(userID uuid.UUID) []*entity.Notification

	// UnreadCount returns the number of unread notifications for a user.
	UnreadCount(userID uuid.UUID) int

	// MarkAsRead marks one notification as read. Unknown ids are ignored.
	MarkAsRead(userID, id uuid.UUID)

	// MarkAllAsRead marks every notification of the user as read.
	MarkAllAsRead(userID uuid.UUID)

	// Remove deletes one notification. Unknown ids are ignored.
	Remove(userID, id uuid.UUID)

	// Clear deletes all notifications of the user.
	Clear(userID uuid.UUID)
}
