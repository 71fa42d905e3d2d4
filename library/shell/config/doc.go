// Package config loads the runtime configuration of the bibliotheque binaries and builds what
// depends on it: the slog logger, the database connections (pgx.Pool, sql.DB, sqlx.DB) and the
// event store engine selected by BIBLIOTHEQUE_DB_DRIVER.
//
// This package is part of the shell (infrastructure) layer.
package config
