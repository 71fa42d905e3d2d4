// Package memengine is an in-process event store engine with the same Query/Append semantics as the
// database engines. It keeps all events in a slice guarded by a mutex, so Append's check of the
// expected max sequence number and the write happen atomically.
package memengine

import (
	"context"
	"errors"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
)

const (
	logMsgQueryCompleted      = "eventstore operation: query completed"
	logMsgEventsAppended      = "eventstore operation: events appended"
	logMsgConcurrencyConflict = "eventstore operation: concurrency conflict detected"
	logAttrEventCount         = "event_count"
	logAttrExpectedSequence   = "expected_sequence"
	logAttrActualSequence     = "actual_sequence"
	logAttrFilter             = "filter"
)

// ErrUnreadablePayload is returned when a payload appended to the store does not decode into a JSON object.
var ErrUnreadablePayload = errors.New("stored payload is not a json object")

type storedEvent struct {
	event   eventstore.StorableEvent
	payload map[string]any
}

// EventStore keeps events in memory. The zero value is not usable, use NewEventStore.
type EventStore struct {
	mu     sync.RWMutex
	events []storedEvent
	logger eventstore.Logger
}

// Option defines a functional option for configuring EventStore.
type Option func(*EventStore) error

// WithLogger sets the logger for the EventStore.
func WithLogger(logger eventstore.Logger) Option {
	return func(es *EventStore) error {
		es.logger = logger
		return nil
	}
}

// NewEventStore creates an empty in-memory EventStore.
func NewEventStore(options ...Option) (*EventStore, error) {
	es := &EventStore{events: make([]storedEvent, 0)}

	for _, option := range options {
		if err := option(es); err != nil {
			return nil, err
		}
	}

	return es, nil
}

// Query returns the matching events in sequence order and the highest sequence number among them.
func (es *EventStore) Query(ctx context.Context, filter eventstore.Filter) (
	eventstore.StorableEvents,
	eventstore.MaxSequenceNumberUint,
	error,
) {

	if err := ctx.Err(); err != nil {
		return nil, 0, errors.Join(eventstore.ErrQueryingEventsFailed, err)
	}

	es.mu.RLock()
	defer es.mu.RUnlock()

	start := time.Now()
	eventStream := make(eventstore.StorableEvents, 0)
	maxSequenceNumber := eventstore.MaxSequenceNumberUint(0)

	for i, stored := range es.events {
		if filter.Matches(stored.event.EventType, lookupIn(stored.payload)) {
			eventStream = append(eventStream, stored.event)
			maxSequenceNumber = eventstore.MaxSequenceNumberUint(i + 1)
		}
	}

	if es.logger != nil {
		es.logger.Debug(logMsgQueryCompleted, logAttrEventCount, len(eventStream), "duration", time.Since(start))
	}

	return eventStream, maxSequenceNumber, nil
}

// Append writes the events if no event matching filter was appended since expectedMaxSequenceNumber was read.
func (es *EventStore) Append(
	ctx context.Context,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
	event eventstore.StorableEvent,
	additionalEvents ...eventstore.StorableEvent,
) error {

	if err := ctx.Err(); err != nil {
		return errors.Join(eventstore.ErrAppendingEventFailed, err)
	}

	allEvents := append(eventstore.StorableEvents{event}, additionalEvents...)

	decoded := make([]map[string]any, len(allEvents))
	for i, e := range allEvents {
		payload, err := decodePayload(e.PayloadJSON)
		if err != nil {
			return errors.Join(eventstore.ErrAppendingEventFailed, err)
		}
		decoded[i] = payload
	}

	es.mu.Lock()
	defer es.mu.Unlock()

	actual := es.maxSequenceNumberFor(filter)
	if actual != expectedMaxSequenceNumber {
		if es.logger != nil {
			es.logger.Info(
				logMsgConcurrencyConflict,
				logAttrExpectedSequence, expectedMaxSequenceNumber,
				logAttrActualSequence, actual,
				logAttrFilter, filter.String(),
			)
		}

		return eventstore.ErrConcurrencyConflict
	}

	for i, e := range allEvents {
		sequenceNumber := eventstore.MaxSequenceNumberUint(len(es.events) + 1)
		es.events = append(es.events, storedEvent{event: e.WithSequenceNumber(sequenceNumber), payload: decoded[i]})
	}

	if es.logger != nil {
		es.logger.Info(logMsgEventsAppended, logAttrEventCount, len(allEvents))
	}

	return nil
}

// Ping always succeeds.
func (es *EventStore) Ping(_ context.Context) error {
	return nil
}

// Len returns the total number of stored events.
func (es *EventStore) Len() int {
	es.mu.RLock()
	defer es.mu.RUnlock()

	return len(es.events)
}

func (es *EventStore) maxSequenceNumberFor(filter eventstore.Filter) eventstore.MaxSequenceNumberUint {
	for i := len(es.events) - 1; i >= 0; i-- {
		if filter.Matches(es.events[i].event.EventType, lookupIn(es.events[i].payload)) {
			return eventstore.MaxSequenceNumberUint(i + 1)
		}
	}

	return 0
}

func decodePayload(payloadJSON []byte) (map[string]any, error) {
	payload := make(map[string]any)
	if err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &payload); err != nil {
		return nil, errors.Join(ErrUnreadablePayload, err)
	}

	return payload, nil
}

// lookupIn only resolves string values, mirroring the JSON containment check of the SQL engines.
func lookupIn(payload map[string]any) func(string) (string, bool) {
	return func(key string) (string, bool) {
		val, ok := payload[key].(string)
		return val, ok
	}
}
