package store

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/katalvlaran/lvlath/kwok"
)

//go:embed schema.sql
var schemaSQL string

// PostgresStore persists Matchings to a Postgres table via pgx.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// Connect opens a pgx connection pool against dsn and pings it once.
func Connect(ctx context.Context, dsn string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("store: connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("store: ping: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Close releases the underlying connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// InitSchema creates the matchings table if it does not already exist.
func (s *PostgresStore) InitSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("store: init schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) SaveMatching(ctx context.Context, requestID string, m kwok.Matching) error {
	const upsert = `
		INSERT INTO matchings (request_id, left_pairs, right_pairs, total_weight)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (request_id) DO UPDATE
		SET left_pairs = EXCLUDED.left_pairs,
		    right_pairs = EXCLUDED.right_pairs,
		    total_weight = EXCLUDED.total_weight;
	`
	_, err := s.pool.Exec(ctx, upsert, requestID, m.LeftPairs, m.RightPairs, m.TotalWeight)
	if err != nil {
		return fmt.Errorf("store: save matching %s: %w", requestID, err)
	}
	return nil
}

func (s *PostgresStore) GetMatching(ctx context.Context, requestID string) (kwok.Matching, error) {
	const query = `SELECT left_pairs, right_pairs, total_weight FROM matchings WHERE request_id = $1`

	var m kwok.Matching
	err := s.pool.QueryRow(ctx, query, requestID).Scan(&m.LeftPairs, &m.RightPairs, &m.TotalWeight)
	if err != nil {
		return kwok.Matching{}, fmt.Errorf("%w: %s: %v", ErrNotFound, requestID, err)
	}
	return m, nil
}
