package shell

import (
	"context"

	jsoniter "github.com/json-iterator/go"

	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

// QueryHistory reads the events matching filter as domain events.
func QueryHistory(ctx context.Context, es QueriesEvents, filter eventstore.Filter) (core.DomainEvents, eventstore.MaxSequenceNumberUint, error) {
	storableEvents, maxSequenceNumber, err := es.Query(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	history, err := DomainEventsFrom(storableEvents)
	if err != nil {
		return nil, 0, err
	}

	return history, maxSequenceNumber, nil
}

// LocatePayloadValues reads the top level string values of keys from the first event matching filter.
// It is used to find a consistency boundary from a secondary id, e.g. the book of a loan.
// Found is false when no event matches.
func LocatePayloadValues(
	ctx context.Context,
	es QueriesEvents,
	filter eventstore.Filter,
	keys ...string,
) (map[string]string, bool, error) {

	storableEvents, _, err := es.Query(ctx, filter)
	if err != nil {
		return nil, false, err
	}

	if len(storableEvents) == 0 {
		return nil, false, nil
	}

	values := make(map[string]string, len(keys))
	for _, key := range keys {
		values[key] = jsoniter.Get(storableEvents[0].PayloadJSON, key).ToString()
	}

	return values, true, nil
}

// LocateBookOf returns the book id of the first event of eventType carrying key=id, e.g. a LoanID.
func LocateBookOf(ctx context.Context, es QueriesEvents, eventType string, key string, id string) (core.BookIDString, bool, error) {
	if id == "" {
		return "", false, nil
	}

	filter := eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(eventType).
		AndAnyPredicateOf(eventstore.P(key, id)).
		Finalize()

	values, found, err := LocatePayloadValues(ctx, es, filter, core.KeyBookID)
	if err != nil || !found {
		return "", false, err
	}

	return values[core.KeyBookID], true, nil
}

// LocateBookOwner returns the owner of bookID. Found is false for unknown and removed books.
func LocateBookOwner(ctx context.Context, es QueriesEvents, bookID core.BookIDString) (core.UserIDString, bool, error) {
	if bookID == "" {
		return "", false, nil
	}

	filter := eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(core.BookAddedEventType, core.BookRemovedEventType).
		AndAnyPredicateOf(eventstore.P(core.KeyBookID, bookID)).
		Finalize()

	storableEvents, _, err := es.Query(ctx, filter)
	if err != nil {
		return "", false, err
	}

	for _, e := range storableEvents {
		if e.EventType == core.BookRemovedEventType {
			return "", false, nil
		}
	}

	if len(storableEvents) == 0 {
		return "", false, nil
	}

	return jsoniter.Get(storableEvents[0].PayloadJSON, core.KeyOwnerID).ToString(), true, nil
}

// LocateInvitationParties returns sender and recipient of an invitation.
func LocateInvitationParties(
	ctx context.Context,
	es QueriesEvents,
	invitationID core.InvitationIDString,
) (core.UserIDString, core.UserIDString, bool, error) {

	if invitationID == "" {
		return "", "", false, nil
	}

	filter := eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(core.InvitationSentEventType).
		AndAnyPredicateOf(eventstore.P(core.KeyInvitationID, invitationID)).
		Finalize()

	values, found, err := LocatePayloadValues(ctx, es, filter, core.KeySenderID, core.KeyRecipientID)
	if err != nil || !found {
		return "", "", false, err
	}

	return values[core.KeySenderID], values[core.KeyRecipientID], true, nil
}
