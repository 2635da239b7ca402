// Package primary implements the store interfaces on PostgreSQL via pgx.
package primary

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// StoreImpl implements store.BusinessStore, store.UserStore,
// store.ResultStore and store.SnapshotStore on a single connection pool.
type StoreImpl struct {
	db *pgxpool.Pool
}

// NewPrimaryStore opens a connection pool against the given DSN and verifies
// connectivity.
func NewPrimaryStore(ctx context.Context, dsn string) (*StoreImpl, error) {
	if dsn == "" {
		return nil, errors.New("database DSN cannot be empty")
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database DSN: %w", err)
	}

	dbpool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	return &StoreImpl{db: dbpool}, nil
}

// Ping checks the database connection.
func (s *StoreImpl) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Close closes the connection pool.
func (s *StoreImpl) Close() {
	s.db.Close()
}

// EnsureSchema creates the tables if they do not exist yet. Used by the
// seed and import commands so a fresh database works out of the box.
func (s *StoreImpl) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL DEFAULT '',
			hashed_password TEXT NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS businesses (
			id BIGSERIAL PRIMARY KEY,
			business_id INTEGER NOT NULL UNIQUE,
			business_name TEXT NOT NULL,
			category TEXT NOT NULL,
			latitude DOUBLE PRECISION NOT NULL,
			longitude DOUBLE PRECISION NOT NULL,
			street TEXT NOT NULL DEFAULT '',
			zone_type TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS clustering_results (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			business_category TEXT NOT NULL,
			num_clusters INTEGER NOT NULL,
			recommended_latitude DOUBLE PRECISION NOT NULL,
			recommended_longitude DOUBLE PRECISION NOT NULL,
			recommended_zone_type TEXT NOT NULL,
			confidence DOUBLE PRECISION NOT NULL,
			opportunity_level TEXT NOT NULL,
			total_businesses INTEGER NOT NULL,
			competitor_count INTEGER NOT NULL,
			competitors_within_500m INTEGER NOT NULL,
			competitors_within_1km INTEGER NOT NULL,
			competitors_within_2km INTEGER NOT NULL,
			market_saturation DOUBLE PRECISION NOT NULL,
			nearest_competitor_distance DOUBLE PRECISION,
			clusters_data JSONB NOT NULL,
			nearby_businesses JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}
