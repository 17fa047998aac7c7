package notifier

import (
	"context"
	"log/slog"
)

// Ensure Slog implements Notifier.
var _ Notifier = (*Slog)(nil)

// Slog writes notifications to a structured logger. Useful as a development
// channel and as a fallback when no UI channel is wired.
type Slog struct {
	logger *slog.Logger
}

// NewSlog creates a logger-backed notifier.
func NewSlog(log *slog.Logger) *Slog {
	if log == nil {
		log = slog.Default()
	}
	return &Slog{logger: log}
}

// Notify logs the notification at a level matching its type.
func (s *Slog) Notify(ctx context.Context, n Notification) error {
	level := slog.LevelInfo
	switch n.Type {
	case TypeWarning:
		level = slog.LevelWarn
	case TypeError:
		level = slog.LevelError
	}

	s.logger.LogAttrs(ctx, level, n.Message,
		slog.String("notification_id", n.ID),
		slog.String("type", string(n.Type)),
	)
	return nil
}
