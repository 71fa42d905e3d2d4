package adapters

import (
	"context"
	"errors"
)

// ErrSerializationFailure marks a transaction the database aborted to keep serializable isolation.
var ErrSerializationFailure = errors.New("could not serialize access due to concurrent update")

// DBAdapter defines the database operations needed by the event store.
type DBAdapter interface {
	// Query runs a read. Adapters with a replica serve it from there when the context asks for eventual consistency.
	Query(ctx context.Context, query string) (DBRows, error)

	// ExecSerializable runs a write inside its own SERIALIZABLE transaction and returns the rows affected.
	// Aborts caused by concurrent transactions are reported as ErrSerializationFailure.
	ExecSerializable(ctx context.Context, query string) (int64, error)

	// Exec runs a statement outside of an explicit transaction, e.g. schema DDL.
	Exec(ctx context.Context, query string) error

	Ping(ctx context.Context) error
}

// DBRows defines the interface for query result rows.
type DBRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}
