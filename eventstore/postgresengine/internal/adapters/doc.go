// Package adapters lets the PostgreSQL event store run on pgxpool.Pool, sql.DB and sqlx.DB.
//
// All adapters execute appends in a SERIALIZABLE transaction and normalize the driver specific
// serialization failure codes into ErrSerializationFailure.
package adapters
