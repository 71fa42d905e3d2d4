package adapters

import (
	"context"
	"database/sql"
)

// SQLAdapter implements DBAdapter for sql.DB
type SQLAdapter struct {
	db *sql.DB
}

// NewSQLAdapter creates a new SQL adapter
func NewSQLAdapter(db *sql.DB) *SQLAdapter {
	return &SQLAdapter{db: db}
}

func (s *SQLAdapter) Query(ctx context.Context, query string) (DBRows, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}

	return &stdRows{rows: rows}, nil
}

func (s *SQLAdapter) ExecSerializable(ctx context.Context, query string) (int64, error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return 0, err
	}

	return execInTx(ctx, tx, query)
}

func (s *SQLAdapter) Exec(ctx context.Context, query string) error {
	_, err := s.db.ExecContext(ctx, query)

	return err
}

func (s *SQLAdapter) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// execInTx is shared by the database/sql based adapters.
func execInTx(ctx context.Context, tx *sql.Tx, query string) (int64, error) {
	result, execErr := tx.ExecContext(ctx, query)
	if execErr != nil {
		_ = tx.Rollback()
		return 0, mapTxError(execErr)
	}

	rowsAffected, rowsErr := result.RowsAffected()
	if rowsErr != nil {
		_ = tx.Rollback()
		return 0, rowsErr
	}

	if commitErr := tx.Commit(); commitErr != nil {
		return 0, mapTxError(commitErr)
	}

	return rowsAffected, nil
}

// stdRows wraps standard library sql.Rows to implement DBRows interface.
type stdRows struct {
	rows *sql.Rows
}

func (s *stdRows) Next() bool {
	return s.rows.Next()
}

func (s *stdRows) Scan(dest ...any) error {
	return s.rows.Scan(dest...)
}

func (s *stdRows) Err() error {
	return s.rows.Err()
}

func (s *stdRows) Close() error {
	return s.rows.Close()
}
