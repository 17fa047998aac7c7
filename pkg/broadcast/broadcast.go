package broadcast

import (
	"context"
	"sync"
)

// Subscriber receives values from a Broadcaster.
// Implementations must be safe for concurrent use.
type Subscriber[T any] interface {
	// Receive returns the channel on which broadcast values arrive.
	// The channel is closed when the subscriber is closed.
	Receive() <-chan T

	// Close closes the subscriber and releases resources.
	// Close is idempotent and safe to call multiple times.
	Close() error
}

// Broadcaster fans values out to multiple subscribers.
// Implementations must handle slow consumers without blocking the publisher,
// typically by dropping values for the lagging subscriber.
type Broadcaster[T any] interface {
	// Subscribe creates a new subscriber that receives all subsequent
	// broadcasts. The subscription is torn down when ctx is cancelled.
	Subscribe(ctx context.Context) Subscriber[T]

	// Publish sends a value to all active subscribers. Values may be
	// dropped for slow consumers to keep Publish non-blocking.
	Publish(ctx context.Context, v T) error

	// Close shuts down the broadcaster and closes all subscribers.
	Close() error
}

type subscriber[T any] struct {
	ch     chan T
	closed bool
	mu     sync.RWMutex
}

func newSubscriber[T any](bufferSize int) *subscriber[T] {
	return &subscriber[T]{ch: make(chan T, bufferSize)}
}

func (s *subscriber[T]) Receive() <-chan T {
	return s.ch
}

func (s *subscriber[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		close(s.ch)
		s.closed = true
	}
	return nil
}

func (s *subscriber[T]) send(v T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false
	}

	select {
	case s.ch <- v:
		return true
	default:
		return false
	}
}
