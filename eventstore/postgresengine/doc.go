// Package postgresengine provides a PostgreSQL implementation of the eventstore interface.
//
// Events live in one table. A Filter becomes a WHERE clause on event_type and JSONB containment
// (payload @> {"Key":"Val"}), which the GIN index created by CreateSchema serves. Append inserts
// through a CTE that re-reads the max sequence number of the same Filter and only writes when it
// equals the expected one, inside a SERIALIZABLE transaction. Serialization failures and
// zero-row inserts both surface as eventstore.ErrConcurrencyConflict.
//
// Three database adapters are supported (pgx pool, database/sql with lib/pq, sqlx):
//
//	pool, _ := pgxpool.New(ctx, dsn)
//	store, _ := postgresengine.NewEventStoreFromPGXPool(pool, postgresengine.WithLogger(slog.Default()))
//	_ = store.CreateSchema(ctx)
//
//	events, maxSeq, _ := store.Query(ctx, filter)
//	err := store.Append(ctx, filter, maxSeq, newEvent)
package postgresengine
