package eventstore

import "context"

// EventStore is the contract every engine fulfils.
//
// Query returns all events matching the Filter in sequence order together with the highest
// sequence number among them. Append writes the events atomically only if the highest sequence
// number matching the same Filter still equals expectedMaxSequenceNumber; otherwise it returns
// ErrConcurrencyConflict and writes nothing.
type EventStore interface {
	Query(ctx context.Context, filter Filter) (StorableEvents, MaxSequenceNumberUint, error)
	Append(
		ctx context.Context,
		filter Filter,
		expectedMaxSequenceNumber MaxSequenceNumberUint,
		event StorableEvent,
		additionalEvents ...StorableEvent,
	) error
}

// Pinger is implemented by engines backed by a database connection.
type Pinger interface {
	Ping(ctx context.Context) error
}
