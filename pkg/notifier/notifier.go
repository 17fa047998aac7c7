package notifier

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Type represents the notification type/severity.
type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeWarning Type = "warning"
	TypeError   Type = "error"
)

// Notification is a transient user-facing message. Delivery is fire-and-forget;
// the pipeline never waits for acknowledgment.
type Notification struct {
	ID        string    `json:"id"`
	Type      Type      `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// New creates a notification with a generated ID and the current timestamp.
func New(typ Type, message string) Notification {
	return Notification{
		ID:        uuid.New().String(),
		Type:      typ,
		Message:   message,
		CreatedAt: time.Now(),
	}
}

// Notifier delivers transient notifications to the current user.
// Implementations must not block on delivery failures.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// Func adapts a function to the Notifier interface.
type Func func(ctx context.Context, n Notification) error

func (f Func) Notify(ctx context.Context, n Notification) error {
	return f(ctx, n)
}
