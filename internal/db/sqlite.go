package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteGateway — локальный Persistence Gateway поверх файла SQLite.
// Дефолт для одиночной сессии: аналог localStorage браузера, но с
// нормальной транзакционностью.
type SQLiteGateway struct {
	db *sql.DB
}

// NewSQLiteGateway открывает (или создаёт) файл хранилища.
func NewSQLiteGateway(ctx context.Context, path string) (*SQLiteGateway, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite %s: %w", path, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("pinging sqlite %s: %w", path, err)
	}

	const schema = `
		CREATE TABLE IF NOT EXISTS saves (
			key        TEXT PRIMARY KEY,
			blob       BLOB NOT NULL,
			updated_at TEXT NOT NULL
		)`
	if _, err := sqlDB.ExecContext(ctx, schema); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("creating saves table: %w", err)
	}

	return &SQLiteGateway{db: sqlDB}, nil
}

// Load returns the blob for a key, or nil, nil if absent.
func (g *SQLiteGateway) Load(ctx context.Context, key string) ([]byte, error) {
	var blob []byte
	err := g.db.QueryRowContext(ctx,
		`SELECT blob FROM saves WHERE key = ?`, key,
	).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading save %q: %w", key, err)
	}
	return blob, nil
}

// Save upserts the blob under the key.
func (g *SQLiteGateway) Save(ctx context.Context, key string, blob []byte) error {
	_, err := g.db.ExecContext(ctx,
		`INSERT INTO saves (key, blob, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT (key) DO UPDATE SET blob = excluded.blob, updated_at = excluded.updated_at`,
		key, blob, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying database.
func (g *SQLiteGateway) Close() error {
	return g.db.Close()
}
