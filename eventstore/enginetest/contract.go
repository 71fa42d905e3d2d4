// Package enginetest holds the behavioural contract every event store engine must satisfy.
// Engine packages run it from their own tests with a factory that yields an empty store.
package enginetest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
)

// Factory returns an empty event store. Cleanup is registered on t by the factory.
type Factory func(t *testing.T) eventstore.EventStore

// RunContractSuite runs all contract tests against the engine built by newStore.
func RunContractSuite(t *testing.T, newStore Factory) {
	t.Run("query on empty store", func(t *testing.T) { testQueryOnEmptyStore(t, newStore(t)) })
	t.Run("append then query", func(t *testing.T) { testAppendThenQuery(t, newStore(t)) })
	t.Run("stale append conflicts", func(t *testing.T) { testStaleAppendConflicts(t, newStore(t)) })
	t.Run("disjoint boundaries do not conflict", func(t *testing.T) { testDisjointBoundaries(t, newStore(t)) })
	t.Run("multiple events append atomically", func(t *testing.T) { testMultipleEvents(t, newStore(t)) })
	t.Run("all predicates must match", func(t *testing.T) { testAllPredicates(t, newStore(t)) })
	t.Run("concurrent appends have one winner", func(t *testing.T) { testConcurrentAppends(t, newStore(t)) })
}

func givenEvent(t *testing.T, eventType string, payload string) eventstore.StorableEvent {
	t.Helper()

	event, err := eventstore.BuildStorableEvent(
		eventType,
		time.Date(2025, 6, 1, 10, 0, 0, 123000, time.UTC),
		[]byte(payload),
		[]byte(`{"MessageID":"m-1"}`),
	)
	require.NoError(t, err)

	return event
}

func bookFilter(bookID string) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf("BookAdded", "BookLentToContact").
		AndAnyPredicateOf(eventstore.P("BookID", bookID)).
		Finalize()
}

func testQueryOnEmptyStore(t *testing.T, es eventstore.EventStore) {
	// act
	events, maxSeq, err := es.Query(context.Background(), bookFilter("b-1"))

	// assert
	assert.NoError(t, err)
	assert.Empty(t, events)
	assert.Equal(t, eventstore.MaxSequenceNumberUint(0), maxSeq)
}

func testAppendThenQuery(t *testing.T, es eventstore.EventStore) {
	ctx := context.Background()
	filter := bookFilter("b-1")

	// arrange
	require.NoError(t, es.Append(ctx, filter, 0, givenEvent(t, "BookAdded", `{"BookID":"b-1","Title":"Dune"}`)))

	// act
	events, maxSeq, err := es.Query(ctx, filter)

	// assert
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "BookAdded", events[0].EventType)
	assert.JSONEq(t, `{"BookID":"b-1","Title":"Dune"}`, string(events[0].PayloadJSON))
	assert.JSONEq(t, `{"MessageID":"m-1"}`, string(events[0].MetadataJSON))
	assert.True(t, events[0].OccurredAt.Equal(time.Date(2025, 6, 1, 10, 0, 0, 123000, time.UTC)))
	assert.Positive(t, maxSeq)
	assert.Equal(t, maxSeq, events[0].SequenceNumber)
}

func testStaleAppendConflicts(t *testing.T, es eventstore.EventStore) {
	ctx := context.Background()
	filter := bookFilter("b-1")

	// arrange
	require.NoError(t, es.Append(ctx, filter, 0, givenEvent(t, "BookAdded", `{"BookID":"b-1"}`)))

	// act
	err := es.Append(ctx, filter, 0, givenEvent(t, "BookLentToContact", `{"BookID":"b-1","LoanID":"l-1"}`))

	// assert
	assert.ErrorIs(t, err, eventstore.ErrConcurrencyConflict)

	events, _, queryErr := es.Query(ctx, filter)
	require.NoError(t, queryErr)
	assert.Len(t, events, 1, "rejected append must not write anything")
}

func testDisjointBoundaries(t *testing.T, es eventstore.EventStore) {
	ctx := context.Background()

	// arrange
	_, maxSeqB1, err := es.Query(ctx, bookFilter("b-1"))
	require.NoError(t, err)
	require.NoError(t, es.Append(ctx, bookFilter("b-2"), 0, givenEvent(t, "BookAdded", `{"BookID":"b-2"}`)))

	// act
	err = es.Append(ctx, bookFilter("b-1"), maxSeqB1, givenEvent(t, "BookAdded", `{"BookID":"b-1"}`))

	// assert
	assert.NoError(t, err)
}

func testMultipleEvents(t *testing.T, es eventstore.EventStore) {
	ctx := context.Background()
	filter := bookFilter("b-1")

	// act
	err := es.Append(
		ctx,
		filter,
		0,
		givenEvent(t, "BookAdded", `{"BookID":"b-1"}`),
		givenEvent(t, "BookLentToContact", `{"BookID":"b-1","LoanID":"l-1"}`),
	)

	// assert
	require.NoError(t, err)

	events, maxSeq, queryErr := es.Query(ctx, filter)
	require.NoError(t, queryErr)
	require.Len(t, events, 2)
	assert.Equal(t, "BookAdded", events[0].EventType)
	assert.Equal(t, "BookLentToContact", events[1].EventType)
	assert.Equal(t, events[1].SequenceNumber, maxSeq)
	assert.Less(t, events[0].SequenceNumber, events[1].SequenceNumber)

	staleErr := es.Append(
		ctx,
		filter,
		events[0].SequenceNumber,
		givenEvent(t, "BookLentToContact", `{"BookID":"b-1","LoanID":"l-2"}`),
		givenEvent(t, "BookLentToContact", `{"BookID":"b-1","LoanID":"l-3"}`),
	)
	assert.ErrorIs(t, staleErr, eventstore.ErrConcurrencyConflict)
}

func testAllPredicates(t *testing.T, es eventstore.EventStore) {
	ctx := context.Background()
	anyInvitation := eventstore.BuildEventFilter().Matching().AnyEventTypeOf("InvitationSent").Finalize()

	// arrange
	require.NoError(t, es.Append(ctx, anyInvitation, 0,
		givenEvent(t, "InvitationSent", `{"SenderID":"a","RecipientID":"b"}`),
		givenEvent(t, "InvitationSent", `{"SenderID":"a","RecipientID":"c"}`),
		givenEvent(t, "InvitationSent", `{"SenderID":"c","RecipientID":"b"}`),
	))

	pair := eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf("InvitationSent").
		AndAllPredicatesOf(eventstore.P("SenderID", "a"), eventstore.P("RecipientID", "b")).
		Finalize()

	// act
	events, _, err := es.Query(ctx, pair)

	// assert
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.JSONEq(t, `{"SenderID":"a","RecipientID":"b"}`, string(events[0].PayloadJSON))
}

func testConcurrentAppends(t *testing.T, es eventstore.EventStore) {
	ctx := context.Background()
	filter := bookFilter("b-1")
	const writers = 8

	// arrange
	require.NoError(t, es.Append(ctx, filter, 0, givenEvent(t, "BookAdded", `{"BookID":"b-1"}`)))
	_, maxSeq, err := es.Query(ctx, filter)
	require.NoError(t, err)

	// act
	var wg sync.WaitGroup
	results := make(chan error, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			payload := fmt.Sprintf(`{"BookID":"b-1","LoanID":"l-%d"}`, i)
			results <- es.Append(ctx, filter, maxSeq, givenEvent(t, "BookLentToContact", payload))
		}(i)
	}

	wg.Wait()
	close(results)

	// assert
	succeeded := 0
	for appendErr := range results {
		if appendErr == nil {
			succeeded++
			continue
		}
		assert.True(t, errors.Is(appendErr, eventstore.ErrConcurrencyConflict), "unexpected error: %v", appendErr)
	}

	assert.Equal(t, 1, succeeded, "exactly one concurrent append must win")
}
