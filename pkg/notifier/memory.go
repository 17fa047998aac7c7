package notifier

import (
	"context"
	"sync"
)

// Ensure Memory implements Notifier.
var _ Notifier = (*Memory)(nil)

// Memory records delivered notifications in process memory.
// Intended for tests and local development.
type Memory struct {
	mu    sync.RWMutex
	items []Notification
}

// NewMemory creates an empty in-memory notifier.
func NewMemory() *Memory {
	return &Memory{}
}

// Notify records the notification.
func (m *Memory) Notify(_ context.Context, n Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, n)
	return nil
}

// All returns a copy of every recorded notification in delivery order.
func (m *Memory) All() []Notification {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Notification, len(m.items))
	copy(out, m.items)
	return out
}

// Last returns the most recent notification, or false when none were recorded.
func (m *Memory) Last() (Notification, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.items) == 0 {
		return Notification{}, false
	}
	return m.items[len(m.items)-1], true
}

// Reset clears all recorded notifications.
func (m *Memory) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = nil
}
