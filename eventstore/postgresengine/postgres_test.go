package postgresengine_test

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver for database/sql
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore/enginetest"
	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore/postgresengine"
)

const testDSNEnv = "BIBLIOTHEQUE_TEST_DSN"

func testDSN(t *testing.T) string {
	t.Helper()

	dsn := os.Getenv(testDSNEnv)
	if dsn == "" {
		t.Skipf("%s not set, skipping postgres tests", testDSNEnv)
	}

	return dsn
}

func prepareTable(t *testing.T, es postgresengine.EventStore, truncate func(ctx context.Context) error) {
	t.Helper()

	ctx := context.Background()
	require.NoError(t, es.CreateSchema(ctx))
	require.NoError(t, truncate(ctx))
}

func Test_PostgresEngine_Contract_PGXPool(t *testing.T) {
	dsn := testDSN(t)

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	enginetest.RunContractSuite(t, func(t *testing.T) eventstore.EventStore {
		es, err := postgresengine.NewEventStoreFromPGXPool(pool, postgresengine.WithTableName("contract_events_pgx"))
		require.NoError(t, err)
		prepareTable(t, es, func(ctx context.Context) error {
			_, err := pool.Exec(ctx, "TRUNCATE contract_events_pgx RESTART IDENTITY")
			return err
		})

		return es
	})
}

func Test_PostgresEngine_Contract_SQLDB(t *testing.T) {
	dsn := testDSN(t)

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	enginetest.RunContractSuite(t, func(t *testing.T) eventstore.EventStore {
		es, err := postgresengine.NewEventStoreFromSQLDB(db, postgresengine.WithTableName("contract_events_sql"))
		require.NoError(t, err)
		prepareTable(t, es, func(ctx context.Context) error {
			_, err := db.ExecContext(ctx, "TRUNCATE contract_events_sql RESTART IDENTITY")
			return err
		})

		return es
	})
}

func Test_PostgresEngine_Contract_SQLX(t *testing.T) {
	dsn := testDSN(t)

	db, err := sqlx.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	enginetest.RunContractSuite(t, func(t *testing.T) eventstore.EventStore {
		es, err := postgresengine.NewEventStoreFromSQLX(db, postgresengine.WithTableName("contract_events_sqlx"))
		require.NoError(t, err)
		prepareTable(t, es, func(ctx context.Context) error {
			_, err := db.ExecContext(ctx, "TRUNCATE contract_events_sqlx RESTART IDENTITY")
			return err
		})

		return es
	})
}

func Test_PostgresEngine_Constructors_RejectNilConnections(t *testing.T) {
	_, pgxErr := postgresengine.NewEventStoreFromPGXPool(nil)
	_, replicaErr := postgresengine.NewEventStoreFromPGXPoolAndReplica(nil, nil)
	_, sqlErr := postgresengine.NewEventStoreFromSQLDB(nil)
	_, sqlxErr := postgresengine.NewEventStoreFromSQLX(nil)

	assert.ErrorIs(t, pgxErr, eventstore.ErrNilDatabaseConnection)
	assert.ErrorIs(t, replicaErr, eventstore.ErrNilDatabaseConnection)
	assert.ErrorIs(t, sqlErr, eventstore.ErrNilDatabaseConnection)
	assert.ErrorIs(t, sqlxErr, eventstore.ErrNilDatabaseConnection)
}

func Test_WithTableName_ValidatesIdentifier(t *testing.T) {
	db, err := sql.Open("postgres", "postgres://localhost/unused")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	testCases := []struct {
		name      string
		tableName string
		wantErr   error
	}{
		{name: "empty", tableName: "", wantErr: eventstore.ErrEmptyEventsTableName},
		{name: "with quote", tableName: `events"; drop table x; --`, wantErr: postgresengine.ErrInvalidEventsTableName},
		{name: "leading digit", tableName: "1events", wantErr: postgresengine.ErrInvalidEventsTableName},
		{name: "plain", tableName: "library_events", wantErr: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			_, err := postgresengine.NewEventStoreFromSQLDB(db, postgresengine.WithTableName(tc.tableName))

			// assert
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
