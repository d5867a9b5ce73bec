package stream

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryHubDeliversMatchingEvents(t *testing.T) {
	hub := NewMemoryHub()

	sub, err := hub.Subscribe(context.Background(), Query{Collection: "accounts", UserId: "user-1"})
	require.NoError(t, err)
	defer sub.Cancel()

	hub.Publish("user-1", Event{Operation: OperationInsert, Collection: "accounts", DocumentId: "a1"})

	select {
	case event := <-sub.Events:
		assert.Equal(t, OperationInsert, event.Operation)
		assert.Equal(t, "a1", event.DocumentId)
	case <-time.After(time.Second):
		t.Fatal("expected an event")
	}
}

func TestMemoryHubFiltersByOwnerAndCollection(t *testing.T) {
	hub := NewMemoryHub()

	sub, err := hub.Subscribe(context.Background(), Query{Collection: "accounts", UserId: "user-1"})
	require.NoError(t, err)
	defer sub.Cancel()

	hub.Publish("user-2", Event{Operation: OperationInsert, Collection: "accounts", DocumentId: "foreign"})
	hub.Publish("user-1", Event{Operation: OperationInsert, Collection: "bill_dues", DocumentId: "other-collection"})

	select {
	case event := <-sub.Events:
		t.Fatalf("unexpected event delivered: %+v", event)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestMemoryHubCancelClosesChannel(t *testing.T) {
	hub := NewMemoryHub()

	sub, err := hub.Subscribe(context.Background(), Query{Collection: "accounts", UserId: "user-1"})
	require.NoError(t, err)

	sub.Cancel()
	sub.Cancel() // idempotent

	_, open := <-sub.Events
	assert.False(t, open)

	// publishing after cancel must not panic or deliver
	hub.Publish("user-1", Event{Operation: OperationDelete, Collection: "accounts", DocumentId: "a1"})
}

func TestMemoryHubContextCancellationTearsDown(t *testing.T) {
	hub := NewMemoryHub()

	ctx, cancel := context.WithCancel(context.Background())
	sub, err := hub.Subscribe(ctx, Query{Collection: "transactions", UserId: "user-1"})
	require.NoError(t, err)

	cancel()

	deadline := time.After(time.Second)
	for {
		select {
		case _, open := <-sub.Events:
			if !open {
				return
			}
		case <-deadline:
			t.Fatal("events channel not closed after context cancellation")
		}
	}
}
