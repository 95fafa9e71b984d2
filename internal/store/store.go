// Package store owns the Postgres pool and the schema for the five tables
// the service persists: admins, customers, orders, payments and menu_config.
package store

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TimeFormat is the layout for every created_at column. Timestamps are stored
// as fixed-width UTC text so that lexicographic order is chronological and the
// reporting queries can match a month by string prefix.
const TimeFormat = "2006-01-02T15:04:05.000000Z"

// Now returns the current UTC time in TimeFormat.
func Now() string { return time.Now().UTC().Format(TimeFormat) }

// Connect opens the pool and verifies the database is reachable.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	log.Printf("[store] connected")
	return pool, nil
}

// payments.phone carries no foreign key: a payment may be recorded before the
// customer's first order ever creates a customers row.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS admins (
		id BIGSERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		phone TEXT PRIMARY KEY,
		name TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id BIGSERIAL PRIMARY KEY,
		phone TEXT NOT NULL REFERENCES customers(phone),
		created_at TEXT NOT NULL,
		total NUMERIC(10,2) NOT NULL,
		data TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id BIGSERIAL PRIMARY KEY,
		phone TEXT NOT NULL,
		created_at TEXT NOT NULL,
		amount NUMERIC(10,2) NOT NULL,
		note TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS menu_config (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		menu_json TEXT NOT NULL,
		week_text TEXT,
		special_note TEXT,
		cutoff_monday TEXT,
		cutoff_tuesday TEXT,
		cutoff_wednesday TEXT,
		cutoff_thursday TEXT,
		cutoff_friday TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_phone ON orders(phone)`,
	`CREATE INDEX IF NOT EXISTS idx_payments_phone ON payments(phone)`,
}

// Migrate creates the tables and indexes if they do not exist yet.
func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
