package eventstore

import (
	"errors"
)

var (
	// ErrConcurrencyConflict is returned by Append when events matching the Filter were appended after the
	// expected MaxSequenceNumberUint was read. Callers re-read and decide again.
	ErrConcurrencyConflict = errors.New("concurrency error, no rows were affected")

	ErrEmptyEventsTableName        = errors.New("events table name must not be empty")
	ErrNilDatabaseConnection       = errors.New("database connection must not be nil")
	ErrNoEventsToAppend            = errors.New("at least one event must be supplied to append")
	ErrBuildingQueryFailed         = errors.New("building query failed")
	ErrQueryingEventsFailed        = errors.New("querying events failed")
	ErrScanningDBRowFailed         = errors.New("scanning db row failed")
	ErrBuildingStorableEventFailed = errors.New("building storable event failed")
	ErrAppendingEventFailed        = errors.New("appending the event failed")
	ErrGettingRowsAffectedFailed   = errors.New("getting rows affected failed")
	ErrCreatingSchemaFailed        = errors.New("creating event store schema failed")
)

// MaxSequenceNumberUint is the highest sequence number of the events matching a Filter at query time.
// Zero means no matching event exists yet.
type MaxSequenceNumberUint = uint
