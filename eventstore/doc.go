// Package eventstore provides the abstractions shared by all event store engines:
// filters describing dynamic consistency boundaries, storable events, and the sentinel errors.
//
// A decision queries the events it depends on, decides, and appends its new events conditionally
// on the same filter:
//
//	filter := eventstore.BuildEventFilter().
//		Matching().
//		AnyEventTypeOf("BookLentToContact", "LoanReturned").
//		AndAnyPredicateOf(eventstore.P("BookID", bookID)).
//		Finalize()
//
//	events, maxSeq, err := store.Query(ctx, filter)
//	// ... decide ...
//	err = store.Append(ctx, filter, maxSeq, newEvent)
//	if errors.Is(err, eventstore.ErrConcurrencyConflict) {
//		// somebody else changed the boundary, re-read and decide again
//	}
//
// Engines live in sub packages: postgresengine, sqliteengine and memengine.
package eventstore
