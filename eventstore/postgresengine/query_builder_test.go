package postgresengine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
)

func givenStore() EventStore {
	return EventStore{eventTableName: defaultEventTableName}
}

func givenStorableEvent(t *testing.T, eventType string, payload string) eventstore.StorableEvent {
	t.Helper()

	event, err := eventstore.BuildStorableEventWithEmptyMetadata(eventType, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC), []byte(payload))
	require.NoError(t, err)

	return event
}

func Test_BuildSelectQuery_TranslatesFilter(t *testing.T) {
	// arrange
	filter := eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf("BookAdded", "BookRemoved").
		AndAnyPredicateOf(eventstore.P("OwnerID", "o-1"), eventstore.P("LenderID", "o-1")).
		OrMatching().
		AnyEventTypeOf("LoanRequested").
		AndAllPredicatesOf(eventstore.P("BookID", "b-1"), eventstore.P("RequesterID", "u-2")).
		Finalize()

	// act
	sqlQuery, err := givenStore().buildSelectQuery(filter)

	// assert
	require.NoError(t, err)
	assert.Contains(t, sqlQuery, `SELECT "event_type", "occurred_at", "payload", "metadata", "sequence_number" FROM "events"`)
	assert.Contains(t, sqlQuery, `("event_type" = 'BookAdded')`)
	assert.Contains(t, sqlQuery, `payload @> '{"LenderID":"o-1"}'::jsonb`)
	assert.Contains(t, sqlQuery, `payload @> '{"OwnerID":"o-1"}'::jsonb`)
	assert.Contains(t, sqlQuery, `(payload @> '{"BookID":"b-1"}'::jsonb AND payload @> '{"RequesterID":"u-2"}'::jsonb)`)
	assert.Contains(t, sqlQuery, `ORDER BY "sequence_number" ASC`)
}

func Test_BuildSelectQuery_EmptyFilterHasNoWhereClause(t *testing.T) {
	// act
	sqlQuery, err := givenStore().buildSelectQuery(eventstore.BuildEventFilter().MatchingAnyEvent())

	// assert
	require.NoError(t, err)
	assert.NotContains(t, sqlQuery, "WHERE")
}

func Test_BuildSelectQuery_EscapesPredicateValues(t *testing.T) {
	// arrange
	filter := eventstore.BuildEventFilter().
		Matching().
		AnyPredicateOf(eventstore.P("Title", `O'Brien "quoted"`)).
		Finalize()

	// act
	sqlQuery, err := givenStore().buildSelectQuery(filter)

	// assert
	require.NoError(t, err)
	assert.Contains(t, sqlQuery, `'{"Title":"O''Brien \"quoted\""}'::jsonb`)
}

func Test_BuildInsertQueryForSingleEvent_GuardsOnExpectedSequence(t *testing.T) {
	// arrange
	filter := eventstore.BuildEventFilter().Matching().AnyPredicateOf(eventstore.P("BookID", "b-1")).Finalize()
	event := givenStorableEvent(t, "BookAdded", `{"BookID":"b-1"}`)

	// act
	sqlQuery, err := givenStore().buildInsertQueryForSingleEvent(event, filter, 7)

	// assert
	require.NoError(t, err)
	assert.Contains(t, sqlQuery, "WITH context AS")
	assert.Contains(t, sqlQuery, `MAX("sequence_number") AS "max_seq"`)
	assert.Contains(t, sqlQuery, `INSERT INTO "events" ("event_type", "occurred_at", "payload", "metadata")`)
	assert.Contains(t, sqlQuery, `COALESCE("max_seq", 0) = 7`)
}

func Test_BuildInsertQueryForMultipleEvents_KeepsOrder(t *testing.T) {
	// arrange
	filter := eventstore.BuildEventFilter().Matching().AnyPredicateOf(eventstore.P("BookID", "b-1")).Finalize()
	events := eventstore.StorableEvents{
		givenStorableEvent(t, "BookAdded", `{"BookID":"b-1"}`),
		givenStorableEvent(t, "BookLentToContact", `{"BookID":"b-1"}`),
	}

	// act
	sqlQuery, err := givenStore().buildInsertQueryForMultipleEvents(events, filter, 0)

	// assert
	require.NoError(t, err)
	assert.Contains(t, sqlQuery, "UNION ALL")
	assert.Contains(t, sqlQuery, `ORDER BY "vals"."ordinal" ASC`)
	assert.Contains(t, sqlQuery, `COALESCE("max_seq", 0) = 0`)
}

func Test_SchemaDDL_UsesTableName(t *testing.T) {
	// arrange
	es := EventStore{eventTableName: "library_events"}

	// act
	ddl := es.schemaDDL()

	// assert
	assert.Contains(t, ddl, "CREATE TABLE IF NOT EXISTS library_events")
	assert.Contains(t, ddl, "library_events_payload_idx ON library_events USING GIN (payload jsonb_path_ops)")
}
