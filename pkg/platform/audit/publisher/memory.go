package publisher

import (
	"context"
	"sync"
	"time"

	"conforma/pkg/platform/audit"
)

// Memory is an in-process audit sink. Used by tests and by deployments
// without a broker; events are retained for inspection, newest last.
type Memory struct {
	mu     sync.RWMutex
	events []audit.Event
}

// NewMemory creates an empty in-memory publisher.
func NewMemory() *Memory {
	return &Memory{}
}

// Emit records the event. Never fails.
func (p *Memory) Emit(_ context.Context, event audit.Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if event.Category == "" {
		event.Category = audit.CategoryFor(event.Action)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

// Events returns a copy of all recorded events in emission order.
func (p *Memory) Events() []audit.Event {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]audit.Event{}, p.events...)
}

// Clear drops all recorded events.
func (p *Memory) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = nil
}

// Close is a no-op for the in-memory publisher.
func (p *Memory) Close() error {
	return nil
}
