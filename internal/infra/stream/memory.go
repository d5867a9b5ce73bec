package stream

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryHub is an in-process Hub used by tests and local development.
// Publish pushes an event to every live subscriber whose query matches.
type MemoryHub struct {
	mu          sync.Mutex
	subscribers map[uuid.UUID]*memorySubscriber
}

type memorySubscriber struct {
	query  Query
	events chan Event
	done   chan struct{}
}

func NewMemoryHub() *MemoryHub {
	return &MemoryHub{
		subscribers: make(map[uuid.UUID]*memorySubscriber),
	}
}

func (h *MemoryHub) Subscribe(ctx context.Context, query Query) (*Subscription, error) {
	id := uuid.New()
	sub := &memorySubscriber{
		query:  query,
		events: make(chan Event, 16),
		done:   make(chan struct{}),
	}

	h.mu.Lock()
	h.subscribers[id] = sub
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subscribers, id)
			h.mu.Unlock()
			close(sub.done)
			close(sub.events)
		})
	}

	go func() {
		select {
		case <-ctx.Done():
			cancel()
		case <-sub.done:
		}
	}()

	return &Subscription{
		Id:     id,
		Events: sub.events,
		cancel: cancel,
	}, nil
}

// Publish delivers the event to matching subscribers. Slow consumers
// with a full buffer are skipped rather than blocked on.
func (h *MemoryHub) Publish(userId string, event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, sub := range h.subscribers {
		if sub.query.Collection != event.Collection || sub.query.UserId != userId {
			continue
		}
		select {
		case sub.events <- event:
		default:
		}
	}
}
