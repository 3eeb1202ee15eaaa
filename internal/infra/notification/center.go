// Package notification holds the process-local in-app notification center.
package notification

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	"imprisio/internal/domain/entity"
	"imprisio/internal/domain/service"

	"github.com/google/uuid"
)

// maxPerUser caps each user's list; the oldest entries fall off the end.
const maxPerUser = 100

// center is the in-memory implementation of service.NotificationCenter.
// One mutex guards the whole map: lists are tiny and every operation is a
// handful of pointer moves, so finer locking buys nothing.
type center struct {
	mu     sync.Mutex
	byUser map[uuid.UUID][]*entity.Notification
	logger *slog.Logger
}

// NewCenter creates an empty notification center.
func NewCenter(logger *slog.Logger) service.NotificationCenter {
	return &center{
		byUser: make(map[uuid.UUID][]*entity.Notification),
		logger: logger,
	}
}

// Add prepends a notification for a user and returns its id.
func (c *center) Add(userID uuid.UUID, kind entity.NotificationType, title, message string, data map[string]any) uuid.UUID {
	if !kind.IsValid() {
		kind = entity.NotificationTypeSystem
	}

	n := &entity.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      kind,
		Title:     title,
		Message:   message,
		Data:      data,
		CreatedAt: time.Now(),
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	list := append([]*entity.Notification{n}, c.byUser[userID]...)
	if len(list) > maxPerUser {
		list = list[:maxPerUser]
	}
	c.byUser[userID] = list

	return n.ID
}

// List returns a snapshot of a user's notifications, most recent first.
func (c *center) List(userID uuid.UUID) []*entity.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	list := c.byUser[userID]
	out := make([]*entity.Notification, len(list))
	for i, n := range list {
		cloned := *n
		out[i] = &cloned
	}

	return out
}

// UnreadCount returns the number of unread notifications for a user.
func (c *center) UnreadCount(userID uuid.UUID) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, n := range c.byUser[userID] {
		if !n.Read {
			count++
		}
	}

	return count
}

// MarkAsRead marks one notification as read. Unknown ids are ignored.
func (c *center) MarkAsRead(userID, id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, n := range c.byUser[userID] {
		if n.ID == id {
			n.Read = true

			return
		}
	}
}

// MarkAllAsRead marks every notification of the user as read.
func (c *center) MarkAllAsRead(userID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, n := range c.byUser[userID] {
		n.Read = true
	}
}

// Remove deletes one notification. Unknown ids are ignored.
func (c *center) Remove(userID, id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	list := c.byUser[userID]
	c.byUser[userID] = slices.DeleteFunc(list, func(n *entity.Notification) bool {
		return n.ID == id
	})
}

// Clear deletes all notifications of the user.
func (c *center) Clear(userID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.byUser, userID)
}
