package db

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
)

var pool *pgxpool.Pool

// InitDB connects to the business registry database. The pool is shared
// by everything that needs profile lookups.
func InitDB(ctx context.Context) error {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
	)

	p, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return fmt.Errorf("[DB] Failed to create connection pool: %w", err)
	}

	if err := p.Ping(ctx); err != nil {
		p.Close()
		return fmt.Errorf("[DB] Failed to ping database: %w", err)
	}

	pool = p
	slog.Info("[DB] Connected to Postgres")
	return nil
}

func CloseDB() {
	if pool != nil {
		pool.Close()
		slog.Info("[DB] Postgres connection pool closed")
	}
}
