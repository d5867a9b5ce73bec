package stream

import (
	"context"

	"github.com/google/uuid"
)

const (
	OperationInsert  = "INSERT"
	OperationUpdate  = "UPDATE"
	OperationReplace = "REPLACE"
	OperationDelete  = "DELETE"
)

// Event is one snapshot notification pushed to a subscriber whenever a
// document of the watched query changes.
type Event struct {
	Operation  string                 `json:"operation"`
	Collection string                 `json:"collection"`
	DocumentId string                 `json:"documentId"`
	Document   map[string]interface{} `json:"document,omitempty"`
}

// Query selects the documents a subscriber wants to watch: one
// collection, filtered to the owner.
type Query struct {
	Collection string
	UserId     string
}

// Subscription is a cancellable stream of events. Cancel is safe to
// call more than once; the Events channel is closed on teardown.
type Subscription struct {
	Id     uuid.UUID
	Events <-chan Event

	cancel func()
}

func (s *Subscription) Cancel() {
	s.cancel()
}

// Hub hands out live subscriptions. The Mongo implementation is backed
// by change streams; the in-memory one backs the tests.
type Hub interface {
	Subscribe(ctx context.Context, query Query) (*Subscription, error)
}
