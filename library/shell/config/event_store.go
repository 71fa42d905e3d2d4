package config

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore/memengine"
	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore/postgresengine"
	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore/sqliteengine"
)

// EventStore is an opened engine together with its lifecycle hooks.
type EventStore struct {
	eventstore.EventStore
	Driver string

	createSchema func(ctx context.Context) error
	ping         func(ctx context.Context) error
	closeFn      func() error
}

// CreateSchema bootstraps the events table. It is a no-op for the memory driver.
func (s EventStore) CreateSchema(ctx context.Context) error {
	if s.createSchema == nil {
		return nil
	}

	return s.createSchema(ctx)
}

// Ping checks the database connection. It always succeeds for the memory driver.
func (s EventStore) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}

	return s.ping(ctx)
}

// Close releases the database connection.
func (s EventStore) Close() error {
	if s.closeFn == nil {
		return nil
	}

	return s.closeFn()
}

// OpenEventStore opens the engine selected by cfg.DBDriver. The sqlite engine creates its schema on open,
// postgres needs CreateSchema (the migrate command).
func OpenEventStore(
	ctx context.Context,
	cfg Config,
	logger *slog.Logger,
	metricsCollector eventstore.MetricsCollector,
) (EventStore, error) {

	switch cfg.DBDriver {
	case DriverMemory:
		var options []memengine.Option
		if logger != nil {
			options = append(options, memengine.WithLogger(logger))
		}

		es, err := memengine.NewEventStore(options...)
		if err != nil {
			return EventStore{}, err
		}

		return EventStore{EventStore: es, Driver: DriverMemory}, nil

	case DriverSQLite:
		var options []sqliteengine.Option
		if logger != nil {
			options = append(options, sqliteengine.WithLogger(logger))
		}

		es, err := sqliteengine.Open(ctx, cfg.DBDSN, options...)
		if err != nil {
			return EventStore{}, err
		}

		return EventStore{
			EventStore:   es,
			Driver:       DriverSQLite,
			createSchema: es.CreateSchema,
			ping:         es.Ping,
			closeFn:      es.Close,
		}, nil

	case DriverPostgres:
		return openPostgres(ctx, cfg, logger, metricsCollector)

	default:
		return EventStore{}, fmt.Errorf("%w: unknown driver %q", ErrInvalidConfig, cfg.DBDriver)
	}
}

func openPostgres(
	ctx context.Context,
	cfg Config,
	logger *slog.Logger,
	metricsCollector eventstore.MetricsCollector,
) (EventStore, error) {

	var options []postgresengine.Option
	if logger != nil {
		options = append(options, postgresengine.WithLogger(logger), postgresengine.WithContextualLogger(logger))
	}

	if metricsCollector != nil {
		options = append(options, postgresengine.WithMetrics(metricsCollector))
	}

	var (
		es      postgresengine.EventStore
		closeFn func() error
		err     error
	)

	switch cfg.DBAdapter {
	case AdapterPGXPool:
		pool, poolErr := NewPostgresPGXPool(ctx, cfg.DBDSN)
		if poolErr != nil {
			return EventStore{}, poolErr
		}

		closeFn = func() error { pool.Close(); return nil }
		es, err = postgresengine.NewEventStoreFromPGXPool(pool, options...)

	case AdapterSQLDB:
		db, dbErr := NewPostgresSQLDB(ctx, cfg.DBDSN)
		if dbErr != nil {
			return EventStore{}, dbErr
		}

		closeFn = db.Close
		es, err = postgresengine.NewEventStoreFromSQLDB(db, options...)

	case AdapterSQLXDB:
		db, dbErr := NewPostgresSQLX(ctx, cfg.DBDSN)
		if dbErr != nil {
			return EventStore{}, dbErr
		}

		closeFn = db.Close
		es, err = postgresengine.NewEventStoreFromSQLX(db, options...)

	default:
		return EventStore{}, fmt.Errorf("%w: unknown adapter %q", ErrInvalidConfig, cfg.DBAdapter)
	}

	if err != nil {
		_ = closeFn()
		return EventStore{}, err
	}

	return EventStore{
		EventStore:   es,
		Driver:       DriverPostgres,
		createSchema: es.CreateSchema,
		ping:         es.Ping,
		closeFn:      closeFn,
	}, nil
}
