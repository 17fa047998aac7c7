package notifier

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/authflow/pkg/logger"
)

// Ensure Multi implements Notifier.
var _ Notifier = (*Multi)(nil)

// Multi fans a notification out to several channels with best-effort
// semantics: a failing channel is logged and skipped, never fatal.
type Multi struct {
	notifiers []Notifier
	logger    *slog.Logger
}

// MultiOption configures a Multi notifier.
type MultiOption func(*Multi)

// WithMultiLogger sets the logger used to report channel failures.
func WithMultiLogger(log *slog.Logger) MultiOption {
	return func(m *Multi) {
		m.logger = log
	}
}

// NewMulti creates a multi-channel notifier.
func NewMulti(notifiers []Notifier, opts ...MultiOption) *Multi {
	m := &Multi{
		notifiers: notifiers,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Notify delivers n through every configured channel.
func (m *Multi) Notify(ctx context.Context, n Notification) error {
	for i, nt := range m.notifiers {
		if err := nt.Notify(ctx, n); err != nil {
			m.logger.LogAttrs(ctx, slog.LevelError, "failed to deliver notification",
				slog.String("notification_id", n.ID),
				slog.Int("notifier_index", i),
				logger.Error(err),
			)
		}
	}
	return nil
}
