// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies an in-app notification.
type NotificationType string

const (
	NotificationTypeOrder   NotificationType = "order"
	NotificationTypeMessage NotificationType = "message"
	NotificationTypeSystem  NotificationType = "system"
)

// IsValid checks if the NotificationType is a known value.
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeOrder, NotificationTypeMessage, NotificationTypeSystem:
		return true
	default:
		return false
	}
}

// Notification is an ephemeral in-app alert shown in the bell menu. It lives
// only in process memory: not persisted, not shared across instances, gone on
// restart. Despite the name this is a UI convenience list, not a message bus.
type Notification struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"userId"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	Data      map[string]any   `json:"data,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
}
