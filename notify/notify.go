// Package notify is the storefront's notification center: transient, leveled
// messages a view layer renders as toasts. Ephemeral by design; nothing here
// is persisted.
package notify

import (
	"sync"

	"github.com/google/uuid"
)

// Level classifies a notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

// Notification is one transient message.
type Notification struct {
	ID      string
	Level   Level
	Message string
}

// maxBuffered bounds the queue; the oldest notification is dropped when a new
// one would exceed it.
const maxBuffered = 20

// Center collects notifications and fans them out to an optional subscriber.
// All methods are safe for concurrent use.
type Center struct {
	mu            sync.Mutex
	notifications []Notification
	subscriber    func(Notification)
}

// NewCenter creates an empty notification center.
func NewCenter() *Center {
	return &Center{}
}

// Subscribe sets the callback invoked for every pushed notification. Only one
// subscriber is supported; a later call replaces the earlier one. The
// callback runs synchronously on the pushing goroutine.
func (c *Center) Subscribe(fn func(Notification)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscriber = fn
}

// Push adds a notification and returns its ID.
func (c *Center) Push(level Level, message string) string {
	n := Notification{
		ID:      uuid.New().String(),
		Level:   level,
		Message: message,
	}

	c.mu.Lock()
	c.notifications = append(c.notifications, n)
	if len(c.notifications) > maxBuffered {
		c.notifications = c.notifications[len(c.notifications)-maxBuffered:]
	}
	subscriber := c.subscriber
	c.mu.Unlock()

	if subscriber != nil {
		subscriber(n)
	}
	return n.ID
}

// Success pushes a success notification.
func (c *Center) Success(message string) string { return c.Push(LevelSuccess, message) }

// Error pushes an error notification.
func (c *Center) Error(message string) string { return c.Push(LevelError, message) }

// Warning pushes a warning notification.
func (c *Center) Warning(message string) string { return c.Push(LevelWarning, message) }

// Info pushes an info notification.
func (c *Center) Info(message string) string { return c.Push(LevelInfo, message) }

// Dismiss removes a notification by ID. Unknown IDs are ignored.
func (c *Center) Dismiss(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, n := range c.notifications {
		if n.ID == id {
			c.notifications = append(c.notifications[:i], c.notifications[i+1:]...)
			return
		}
	}
}

// List returns a copy of the currently buffered notifications, oldest first.
func (c *Center) List() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notification, len(c.notifications))
	copy(out, c.notifications)
	return out
}
