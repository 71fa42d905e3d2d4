package shell

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
)

var (
	// ErrMappingToDomainEventFailed is returned when domain event conversion fails.
	ErrMappingToDomainEventFailed = errors.New("mapping to domain event failed")

	// ErrMappingToDomainEventUnknownEventType is returned for unrecognized event types.
	ErrMappingToDomainEventUnknownEventType = errors.New("unknown event type")
)

type unmarshalFunc func(payloadJSON []byte) (core.DomainEvent, error)

var unmarshalers = map[string]unmarshalFunc{
	core.MemberRegisteredEventType:        unmarshal[core.MemberRegistered],
	core.BookAddedEventType:               unmarshal[core.BookAdded],
	core.BookLendabilityChangedEventType:  unmarshal[core.BookLendabilityChanged],
	core.BookRemovedEventType:             unmarshal[core.BookRemoved],
	core.ContactAddedEventType:            unmarshal[core.ContactAdded],
	core.ContactLinkedEventType:           unmarshal[core.ContactLinked],
	core.LibrarySharingChangedEventType:   unmarshal[core.LibrarySharingChanged],
	core.InvitationSentEventType:          unmarshal[core.InvitationSent],
	core.InvitationAcceptedEventType:      unmarshal[core.InvitationAccepted],
	core.InvitationDeclinedEventType:      unmarshal[core.InvitationDeclined],
	core.InvitationCancelledEventType:     unmarshal[core.InvitationCancelled],
	core.BookLentToContactEventType:       unmarshal[core.BookLentToContact],
	core.LoanReturnedEventType:            unmarshal[core.LoanReturned],
	core.BookBorrowedFromContactEventType: unmarshal[core.BookBorrowedFromContact],
	core.BorrowedBookReturnedEventType:    unmarshal[core.BorrowedBookReturned],
	core.BorrowHistoryClearedEventType:    unmarshal[core.BorrowHistoryCleared],
	core.LoanRequestedEventType:           unmarshal[core.LoanRequested],
	core.LoanRequestAcceptedEventType:     unmarshal[core.LoanRequestAccepted],
	core.LoanRequestDeclinedEventType:     unmarshal[core.LoanRequestDeclined],
	core.LoanRequestCancelledEventType:    unmarshal[core.LoanRequestCancelled],
	core.LoanRequestReturnedEventType:     unmarshal[core.LoanRequestReturned],
}

// DomainEventsFrom converts multiple StorableEvents to DomainEvents.
func DomainEventsFrom(storableEvents eventstore.StorableEvents) (core.DomainEvents, error) {
	domainEvents := make(core.DomainEvents, 0, len(storableEvents))

	for _, storableEvent := range storableEvents {
		domainEvent, err := DomainEventFrom(storableEvent)
		if err != nil {
			return nil, err
		}

		domainEvents = append(domainEvents, domainEvent)
	}

	return domainEvents, nil
}

// DomainEventFrom converts a StorableEvent to its corresponding DomainEvent.
func DomainEventFrom(storableEvent eventstore.StorableEvent) (core.DomainEvent, error) {
	unmarshalEvent, ok := unmarshalers[storableEvent.EventType]
	if !ok {
		return nil, errors.Join(ErrMappingToDomainEventFailed, ErrMappingToDomainEventUnknownEventType)
	}

	return unmarshalEvent(storableEvent.PayloadJSON)
}

func unmarshal[E core.DomainEvent](payloadJSON []byte) (core.DomainEvent, error) {
	payload := new(E)

	if err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, payload); err != nil {
		return nil, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return *payload, nil
}
