package config_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/shell/config"
)

func givenCleanEnvironment(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		config.EnvDBDriver,
		config.EnvDBDSN,
		config.EnvDBAdapter,
		config.EnvHTTPPort,
		config.EnvLogLevel,
		config.EnvLogFormat,
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func Test_Load_Defaults(t *testing.T) {
	// arrange
	givenCleanEnvironment(t)

	// act
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))

	// assert
	require.NoError(t, err)
	assert.Equal(t, config.DriverMemory, cfg.DBDriver)
	assert.Equal(t, config.AdapterPGXPool, cfg.DBAdapter)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, config.LogFormatJSON, cfg.LogFormat)
}

func Test_Load_FromEnvFile(t *testing.T) {
	// arrange
	givenCleanEnvironment(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "BIBLIOTHEQUE_DB_DRIVER=sqlite\nBIBLIOTHEQUE_HTTP_PORT=9090\nBIBLIOTHEQUE_LOG_FORMAT=text\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	// act
	cfg, err := config.Load(envFile)

	// assert
	require.NoError(t, err)
	assert.Equal(t, config.DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "bibliotheque.db", cfg.DBDSN)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, config.LogFormatText, cfg.LogFormat)
}

func Test_Load_EnvironmentWinsOverEnvFile(t *testing.T) {
	// arrange
	givenCleanEnvironment(t)
	t.Setenv(config.EnvHTTPPort, "7070")
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("BIBLIOTHEQUE_HTTP_PORT=9090\n"), 0o600))

	// act
	cfg, err := config.Load(envFile)

	// assert
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.HTTPPort)
}

func Test_Load_InvalidSettings(t *testing.T) {
	testCases := []struct {
		description string
		key         string
		value       string
	}{
		{description: "unknown driver", key: config.EnvDBDriver, value: "mysql"},
		{description: "unknown adapter", key: config.EnvDBAdapter, value: "gorm"},
		{description: "unknown log format", key: config.EnvLogFormat, value: "xml"},
		{description: "unknown log level", key: config.EnvLogLevel, value: "loud"},
		{description: "postgres without dsn", key: config.EnvDBDriver, value: "postgres"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			// arrange
			givenCleanEnvironment(t)
			t.Setenv(tc.key, tc.value)

			// act
			_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))

			// assert
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func Test_NewLogger_LevelAndFormat(t *testing.T) {
	// arrange
	var buf bytes.Buffer

	// act
	logger, err := config.NewLogger(&buf, "warn", config.LogFormatJSON)
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown", "book_id", "b-1")

	// assert
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"book_id":"b-1"`)
}

func Test_OpenEventStore_Memory(t *testing.T) {
	// arrange
	ctx := context.Background()
	cfg := config.Config{DBDriver: config.DriverMemory}

	// act
	es, err := config.OpenEventStore(ctx, cfg, nil, nil)

	// assert
	require.NoError(t, err)
	assert.NoError(t, es.CreateSchema(ctx))
	assert.NoError(t, es.Ping(ctx))

	events, maxSeq, err := es.Query(ctx, eventstore.BuildEventFilter().MatchingAnyEvent())
	assert.NoError(t, err)
	assert.Empty(t, events)
	assert.Equal(t, eventstore.MaxSequenceNumberUint(0), maxSeq)
	assert.NoError(t, es.Close())
}

func Test_OpenEventStore_SQLite(t *testing.T) {
	// arrange
	ctx := context.Background()
	cfg := config.Config{DBDriver: config.DriverSQLite, DBDSN: filepath.Join(t.TempDir(), "events.db")}

	// act
	es, err := config.OpenEventStore(ctx, cfg, nil, nil)

	// assert
	require.NoError(t, err)
	t.Cleanup(func() { _ = es.Close() })
	assert.Equal(t, config.DriverSQLite, es.Driver)
	assert.NoError(t, es.CreateSchema(ctx))
	assert.NoError(t, es.Ping(ctx))
}
