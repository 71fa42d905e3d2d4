package shell

import (
	"context"

	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
)

// EventStore is what the handlers need from an engine.
type EventStore = eventstore.EventStore

// QueriesEvents is the read side of an EventStore, all a query handler needs.
type QueriesEvents interface {
	Query(ctx context.Context, filter eventstore.Filter) (
		eventstore.StorableEvents,
		eventstore.MaxSequenceNumberUint,
		error,
	)
}

// Command represents the contract for all command types.
// The CommandType method enables polymorphic handling and observability instrumentation.
type Command interface {
	CommandType() string
}

// CoreCommandHandler defines the contract for components that process one command type.
// Handlers return HandlerResult containing business outcomes (idempotency, settled entity id)
// and execution metadata (retry info).
type CoreCommandHandler[C Command] interface {
	Handle(ctx context.Context, command C) (HandlerResult, error)
}

// Query represents the contract for all query types.
type Query interface {
	QueryType() string
}

// CoreQueryHandler defines the contract for components that build one read model.
type CoreQueryHandler[Q Query, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}
