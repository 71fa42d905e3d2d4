package fixtures

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore/memengine"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/shell"
)

// GivenUniqueID returns a fresh v7 uuid string.
func GivenUniqueID(t testing.TB) string {
	t.Helper()

	id, err := uuid.NewV7()
	require.NoError(t, err, "error in arranging test data")

	return id.String()
}

// GivenEventStore returns an empty in-memory event store.
func GivenEventStore(t testing.TB) *memengine.EventStore {
	t.Helper()

	es, err := memengine.NewEventStore()
	require.NoError(t, err, "error in arranging test data")

	return es
}

// GivenEvents appends events to es unconditionally, in order.
func GivenEvents(t testing.TB, es eventstore.EventStore, events ...core.DomainEvent) {
	t.Helper()

	if len(events) == 0 {
		return
	}

	ctx := context.Background()
	filter := eventstore.BuildEventFilter().MatchingAnyEvent()

	_, maxSequenceNumber, err := es.Query(ctx, filter)
	require.NoError(t, err, "error in arranging test data")

	storableEvents, err := shell.StorableEventsFrom(events, GivenUniqueID(t))
	require.NoError(t, err, "error in arranging test data")

	err = es.Append(ctx, filter, maxSequenceNumber, storableEvents[0], storableEvents[1:]...)
	require.NoError(t, err, "error in arranging test data")
}

// QueryHistory reads the domain events matching filter.
func QueryHistory(t testing.TB, es eventstore.EventStore, filter eventstore.Filter) core.DomainEvents {
	t.Helper()

	history, _, err := shell.QueryHistory(context.Background(), es, filter)
	require.NoError(t, err)

	return history
}
