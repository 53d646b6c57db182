package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresGateway — Persistence Gateway поверх PostgreSQL, разделяемое
// хранилище профилей: его же читает зеркало удалённого игрока. Ключи
// скоупятся по profile_id.
type PostgresGateway struct {
	pool    *pgxpool.Pool
	profile string
}

// NewPostgresGateway подключается к PostgreSQL и привязывает gateway к
// профилю игрока.
func NewPostgresGateway(ctx context.Context, dsn, profileID string) (*PostgresGateway, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &PostgresGateway{pool: pool, profile: profileID}, nil
}

// NewPostgresGatewayFromPool binds an existing pool to a profile.
func NewPostgresGatewayFromPool(pool *pgxpool.Pool, profileID string) *PostgresGateway {
	return &PostgresGateway{pool: pool, profile: profileID}
}

// Pool returns the underlying pgx pool (for migrations and tests).
func (g *PostgresGateway) Pool() *pgxpool.Pool {
	return g.pool
}

// Load returns the blob for a key within this profile, or nil, nil if absent.
func (g *PostgresGateway) Load(ctx context.Context, key string) ([]byte, error) {
	var blob []byte
	err := g.pool.QueryRow(ctx,
		`SELECT blob FROM saves WHERE profile_id = $1 AND key = $2`,
		g.profile, key,
	).Scan(&blob)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading save %q for profile %q: %w", key, g.profile, err)
	}
	return blob, nil
}

// Save upserts the blob under (profile, key).
func (g *PostgresGateway) Save(ctx context.Context, key string, blob []byte) error {
	_, err := g.pool.Exec(ctx,
		`INSERT INTO saves (profile_id, key, blob, updated_at) VALUES ($1, $2, $3, now())
		 ON CONFLICT (profile_id, key) DO UPDATE SET blob = $3, updated_at = now()`,
		g.profile, key, blob,
	)
	if err != nil {
		return fmt.Errorf("saving %q for profile %q: %w", key, g.profile, err)
	}
	return nil
}

// Close closes the connection pool.
func (g *PostgresGateway) Close() error {
	g.pool.Close()
	return nil
}
