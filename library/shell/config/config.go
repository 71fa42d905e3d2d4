package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvDBDriver  = "BIBLIOTHEQUE_DB_DRIVER"
	EnvDBDSN     = "BIBLIOTHEQUE_DB_DSN"
	EnvDBAdapter = "BIBLIOTHEQUE_DB_ADAPTER"
	EnvHTTPPort  = "BIBLIOTHEQUE_HTTP_PORT"
	EnvLogLevel  = "BIBLIOTHEQUE_LOG_LEVEL"
	EnvLogFormat = "BIBLIOTHEQUE_LOG_FORMAT"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"

	AdapterPGXPool = "pgx.pool"
	AdapterSQLDB   = "sql.db"
	AdapterSQLXDB  = "sqlx.db"

	LogFormatJSON = "json"
	LogFormatText = "text"
)

const (
	defaultDriver     = DriverMemory
	defaultAdapter    = AdapterPGXPool
	defaultHTTPPort   = "8080"
	defaultLogLevel   = "info"
	defaultLogFormat  = LogFormatJSON
	defaultSQLitePath = "bibliotheque.db"
)

var (
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrLoadingEnvFile = errors.New("loading env file failed")
)

// Config is the runtime configuration of the bibliotheque binaries.
type Config struct {
	DBDriver  string
	DBDSN     string
	DBAdapter string
	HTTPPort  string
	LogLevel  string
	LogFormat string
}

// Load reads the configuration from the environment. Variables found in the given env files
// (default ".env") fill in what the environment leaves unset; missing files are skipped.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}

			return Config{}, errors.Join(ErrLoadingEnvFile, fmt.Errorf("%s: %w", file, err))
		}
	}

	cfg := Config{
		DBDriver:  strings.ToLower(envOrDefault(EnvDBDriver, defaultDriver)),
		DBDSN:     os.Getenv(EnvDBDSN),
		DBAdapter: strings.ToLower(envOrDefault(EnvDBAdapter, defaultAdapter)),
		HTTPPort:  envOrDefault(EnvHTTPPort, defaultHTTPPort),
		LogLevel:  strings.ToLower(envOrDefault(EnvLogLevel, defaultLogLevel)),
		LogFormat: strings.ToLower(envOrDefault(EnvLogFormat, defaultLogFormat)),
	}

	if cfg.DBDriver == DriverSQLite && cfg.DBDSN == "" {
		cfg.DBDSN = defaultSQLitePath
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the enumerated settings and that postgres has a DSN.
func (c Config) Validate() error {
	if !slices.Contains([]string{DriverPostgres, DriverSQLite, DriverMemory}, c.DBDriver) {
		return fmt.Errorf("%w: %s must be one of postgres, sqlite, memory, got %q", ErrInvalidConfig, EnvDBDriver, c.DBDriver)
	}

	if c.DBDriver == DriverPostgres && c.DBDSN == "" {
		return fmt.Errorf("%w: %s is required for the postgres driver", ErrInvalidConfig, EnvDBDSN)
	}

	if !slices.Contains([]string{AdapterPGXPool, AdapterSQLDB, AdapterSQLXDB}, c.DBAdapter) {
		return fmt.Errorf("%w: %s must be one of pgx.pool, sql.db, sqlx.db, got %q", ErrInvalidConfig, EnvDBAdapter, c.DBAdapter)
	}

	if !slices.Contains([]string{LogFormatJSON, LogFormatText}, c.LogFormat) {
		return fmt.Errorf("%w: %s must be json or text, got %q", ErrInvalidConfig, EnvLogFormat, c.LogFormat)
	}

	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

func envOrDefault(key string, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}

	return fallback
}
