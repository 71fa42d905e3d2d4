// Package sqliteengine is a single-node event store engine on SQLite.
//
// Filters become json_extract comparisons on the payload column. Append runs in a
// BEGIN IMMEDIATE transaction, so the re-read of the max sequence number and the
// insert cannot interleave with another writer.
package sqliteengine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3" // dialect registration
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // database/sql driver

	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
)

const (
	driverName       = "sqlite3"
	dialectSQLite    = "sqlite3"
	defaultTableName = "events"
	busyTimeoutMS    = 5000

	colEventType      = "event_type"
	colOccurredAt     = "occurred_at"
	colPayload        = "payload"
	colMetadata       = "metadata"
	colSequenceNumber = "sequence_number"
	aliasMaxSeq       = "max_seq"
	exprPayloadEquals = "json_extract(payload, ?) = ?"

	logMsgQueryCompleted      = "eventstore operation: query completed"
	logMsgEventsAppended      = "eventstore operation: events appended"
	logMsgConcurrencyConflict = "eventstore operation: concurrency conflict detected"
	logMsgSQLExecuted         = "executed sql for: "
	logAttrEventCount         = "event_count"
	logAttrExpectedSequence   = "expected_sequence"
	logAttrActualSequence     = "actual_sequence"
	logAttrQuery              = "query"
)

var ErrOpeningDatabaseFailed = errors.New("opening sqlite database failed")

// EventStore is the SQLite engine.
type EventStore struct {
	db             *sqlx.DB
	eventTableName string
	logger         eventstore.Logger
}

type eventRow struct {
	EventType      string `db:"event_type"`
	OccurredAt     string `db:"occurred_at"`
	Payload        string `db:"payload"`
	Metadata       string `db:"metadata"`
	SequenceNumber int64  `db:"sequence_number"`
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

// DSN builds the connection string used by Open: WAL journal, busy timeout and immediate transactions.
func DSN(path string) string {
	return fmt.Sprintf("file:%s?_busy_timeout=%d&_journal_mode=WAL&_txlock=immediate", path, busyTimeoutMS)
}

// Open opens (or creates) the database file at path and ensures the schema exists.
func Open(ctx context.Context, path string, options ...Option) (*EventStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Join(ErrOpeningDatabaseFailed, err)
		}
	}

	db, err := sqlx.Open(driverName, DSN(path))
	if err != nil {
		return nil, errors.Join(ErrOpeningDatabaseFailed, err)
	}

	es, err := NewEventStore(db, options...)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := es.CreateSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return es, nil
}

// NewEventStore wraps an already opened database. The DSN should come from DSN.
func NewEventStore(db *sqlx.DB, options ...Option) (*EventStore, error) {
	if db == nil {
		return nil, eventstore.ErrNilDatabaseConnection
	}

	es := &EventStore{db: db, eventTableName: defaultTableName}

	for _, option := range options {
		if err := option(es); err != nil {
			return nil, err
		}
	}

	return es, nil
}

// CreateSchema creates the events table and its index if they do not exist yet.
func (es *EventStore) CreateSchema(ctx context.Context) error {
	ddl := fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %[1]s (
	sequence_number INTEGER PRIMARY KEY AUTOINCREMENT,
	occurred_at TEXT NOT NULL,
	event_type TEXT NOT NULL,
	payload TEXT NOT NULL,
	metadata TEXT NOT NULL DEFAULT '{}'
);
CREATE INDEX IF NOT EXISTS %[1]s_event_type_idx ON %[1]s (event_type);
`, es.eventTableName)

	if _, err := es.db.ExecContext(ctx, ddl); err != nil {
		return errors.Join(eventstore.ErrCreatingSchemaFailed, err)
	}

	return nil
}

// Close closes the underlying database.
func (es *EventStore) Close() error {
	return es.db.Close()
}

// Ping checks the database connection.
func (es *EventStore) Ping(ctx context.Context) error {
	return es.db.PingContext(ctx)
}

// Query returns the matching events in sequence order and the highest sequence number among them.
func (es *EventStore) Query(ctx context.Context, filter eventstore.Filter) (
	eventstore.StorableEvents,
	eventstore.MaxSequenceNumberUint,
	error,
) {

	sqlQuery, err := es.buildSelectQuery(filter)
	if err != nil {
		return nil, 0, err
	}

	start := time.Now()
	rows := make([]eventRow, 0)
	if err := es.db.SelectContext(ctx, &rows, sqlQuery); err != nil {
		return nil, 0, errors.Join(eventstore.ErrQueryingEventsFailed, err)
	}
	es.logQuery(sqlQuery, "query", time.Since(start))

	eventStream := make(eventstore.StorableEvents, 0, len(rows))
	maxSequenceNumber := eventstore.MaxSequenceNumberUint(0)

	for _, row := range rows {
		event, err := row.toStorableEvent()
		if err != nil {
			return nil, 0, errors.Join(eventstore.ErrBuildingStorableEventFailed, err)
		}

		maxSequenceNumber = event.SequenceNumber
		eventStream = append(eventStream, event)
	}

	if es.logger != nil {
		es.logger.Debug(logMsgQueryCompleted, logAttrEventCount, len(eventStream))
	}

	return eventStream, maxSequenceNumber, nil
}

// Append writes the events if the max sequence number matching filter still equals expectedMaxSequenceNumber.
func (es *EventStore) Append(
	ctx context.Context,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
	event eventstore.StorableEvent,
	additionalEvents ...eventstore.StorableEvent,
) error {

	allEvents := append(eventstore.StorableEvents{event}, additionalEvents...)

	maxSeqQuery, err := es.buildMaxSequenceQuery(filter)
	if err != nil {
		return err
	}

	insertQuery, err := es.buildInsertQuery(allEvents)
	if err != nil {
		return err
	}

	tx, err := es.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Join(eventstore.ErrAppendingEventFailed, err)
	}
	defer func() { _ = tx.Rollback() }()

	var actual int64
	if err := tx.GetContext(ctx, &actual, maxSeqQuery); err != nil {
		return errors.Join(eventstore.ErrQueryingEventsFailed, err)
	}

	if eventstore.MaxSequenceNumberUint(actual) != expectedMaxSequenceNumber { //nolint:gosec // autoincrement is never negative
		if es.logger != nil {
			es.logger.Info(logMsgConcurrencyConflict, logAttrExpectedSequence, expectedMaxSequenceNumber, logAttrActualSequence, actual)
		}

		return eventstore.ErrConcurrencyConflict
	}

	start := time.Now()
	if _, err := tx.ExecContext(ctx, insertQuery); err != nil {
		return errors.Join(eventstore.ErrAppendingEventFailed, err)
	}
	es.logQuery(insertQuery, "append", time.Since(start))

	if err := tx.Commit(); err != nil {
		return errors.Join(eventstore.ErrAppendingEventFailed, err)
	}

	if es.logger != nil {
		es.logger.Info(logMsgEventsAppended, logAttrEventCount, len(allEvents))
	}

	return nil
}

func (es *EventStore) logQuery(sqlQuery string, action string, duration time.Duration) {
	if es.logger != nil {
		es.logger.Debug(logMsgSQLExecuted+action, "duration", duration, logAttrQuery, sqlQuery)
	}
}

func (es *EventStore) buildSelectQuery(filter eventstore.Filter) (string, error) {
	selectStmt := goqu.Dialect(dialectSQLite).
		From(es.eventTableName).
		Select(colEventType, colOccurredAt, colPayload, colMetadata, colSequenceNumber).
		Order(goqu.I(colSequenceNumber).Asc())

	return toSQL(addWhereClause(filter, selectStmt))
}

func (es *EventStore) buildMaxSequenceQuery(filter eventstore.Filter) (string, error) {
	selectStmt := goqu.Dialect(dialectSQLite).
		From(es.eventTableName).
		Select(goqu.COALESCE(goqu.MAX(colSequenceNumber), 0).As(aliasMaxSeq))

	return toSQL(addWhereClause(filter, selectStmt))
}

func (es *EventStore) buildInsertQuery(events eventstore.StorableEvents) (string, error) {
	rows := make([]any, 0, len(events))
	for _, event := range events {
		rows = append(rows, goqu.Record{
			colEventType:  event.EventType,
			colOccurredAt: event.OccurredAt.UTC().Format(time.RFC3339Nano),
			colPayload:    string(event.PayloadJSON),
			colMetadata:   string(event.MetadataJSON),
		})
	}

	sqlQuery, _, err := goqu.Dialect(dialectSQLite).Insert(es.eventTableName).Rows(rows...).ToSQL()
	if err != nil {
		return "", errors.Join(eventstore.ErrBuildingQueryFailed, err)
	}

	return sqlQuery, nil
}

func toSQL(selectStmt *goqu.SelectDataset) (string, error) {
	sqlQuery, _, err := selectStmt.ToSQL()
	if err != nil {
		return "", errors.Join(eventstore.ErrBuildingQueryFailed, err)
	}

	return sqlQuery, nil
}

func addWhereClause(filter eventstore.Filter, selectStmt *goqu.SelectDataset) *goqu.SelectDataset {
	if filter.IsEmpty() {
		return selectStmt
	}

	itemsExpressions := make([]goqu.Expression, 0, len(filter.Items()))

	for _, item := range filter.Items() {
		eventTypeExpressions := make([]goqu.Expression, 0, len(item.EventTypes()))
		for _, eventType := range item.EventTypes() {
			eventTypeExpressions = append(eventTypeExpressions, goqu.Ex{colEventType: eventType})
		}

		predicateExpressions := make([]goqu.Expression, 0, len(item.Predicates()))
		for _, predicate := range item.Predicates() {
			predicateExpressions = append(predicateExpressions, goqu.L(exprPayloadEquals, "$."+predicate.Key(), predicate.Val()))
		}

		predicates := goqu.Or(predicateExpressions...)
		if item.AllPredicatesMustMatch() {
			predicates = goqu.And(predicateExpressions...)
		}

		itemsExpressions = append(itemsExpressions, goqu.And(goqu.Or(eventTypeExpressions...), predicates))
	}

	return selectStmt.Where(goqu.Or(itemsExpressions...))
}

func (r eventRow) toStorableEvent() (eventstore.StorableEvent, error) {
	occurredAt, err := time.Parse(time.RFC3339Nano, r.OccurredAt)
	if err != nil {
		return eventstore.StorableEvent{}, err
	}

	event, err := eventstore.BuildStorableEvent(r.EventType, occurredAt, []byte(r.Payload), []byte(r.Metadata))
	if err != nil {
		return eventstore.StorableEvent{}, err
	}

	return event.WithSequenceNumber(eventstore.MaxSequenceNumberUint(r.SequenceNumber)), nil //nolint:gosec // autoincrement is never negative
}
