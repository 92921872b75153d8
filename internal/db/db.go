// Package db provides PostgreSQL storage for applications, generated
// content, and LLM usage records. The pipeline treats every write here as
// fire-and-forget: failures are logged by the caller and never interrupt
// generation.
package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// FindOrCreateApplication returns the application record for a company/role
// pair, creating it if absent.
func (db *DB) FindOrCreateApplication(ctx context.Context, company, roleTitle, country string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`SELECT id FROM applications WHERE company = $1 AND role_title = $2 LIMIT 1`,
		company, roleTitle,
	).Scan(&id)
	if err == nil {
		return id, nil
	}

	err = db.pool.QueryRow(ctx,
		`INSERT INTO applications (company, role_title, country)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		company, roleTitle, country,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create application: %w", err)
	}
	return id, nil
}
