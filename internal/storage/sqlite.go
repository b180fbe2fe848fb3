package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/raghul07102002/holofolio/internal/common"
	"github.com/raghul07102002/holofolio/internal/dbx"
)

// SQLiteStorage keeps each document in a single-row-per-key table. Writes run
// inside a transaction so a half-written value is never observable.
type SQLiteStorage struct {
	db *sql.DB
}

func NewSQLiteStorage(db *sql.DB) *SQLiteStorage {
	return &SQLiteStorage{db: db}
}

func (s *SQLiteStorage) Get(ctx context.Context, key string) (string, error) {
	query := `SELECT value FROM storage WHERE key=?`
	row := s.db.QueryRowContext(ctx, query, key)

	var value string
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrNotFound
		}
		return "", fmt.Errorf("reading key %s: %w", key, err)
	}

	return value, nil
}

func (s *SQLiteStorage) Set(ctx context.Context, key, value string) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		query := `INSERT INTO storage (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`
		_, err := tx.ExecContext(ctx, query, key, value)
		return err
	})
	if err != nil {
		return fmt.Errorf("writing key %s: %w: %w", key, common.ErrStorageUnavailable, err)
	}

	return nil
}

func (s *SQLiteStorage) Delete(ctx context.Context, key string) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM storage WHERE key=?`, key)
		return err
	})
	if err != nil {
		return fmt.Errorf("deleting key %s: %w: %w", key, common.ErrStorageUnavailable, err)
	}

	return nil
}
