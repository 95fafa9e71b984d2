// Package order handles order intake and the per-customer order history.
package order

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, o *Order, name string) error
	ListByPhone(ctx context.Context, phone string) ([]Order, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

// Create upserts the customer row and appends the order in one transaction.
// A non-empty name overwrites the stored one (last write wins); an empty name
// only lands when the customer is new.
func (r *PGRepo) Create(ctx context.Context, o *Order, name string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
    INSERT INTO customers (phone, name)
    VALUES ($1,$2)
    ON CONFLICT (phone) DO UPDATE SET name = EXCLUDED.name
    WHERE EXCLUDED.name <> ''
  `, o.Phone, name); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `
    INSERT INTO orders (phone, created_at, total, data)
    VALUES ($1,$2,$3,$4)
  `, o.Phone, o.CreatedAt, o.Total, o.Data); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *PGRepo) ListByPhone(ctx context.Context, phone string) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
    SELECT id, phone, created_at, total::text, data
    FROM orders WHERE phone=$1
    ORDER BY created_at DESC
  `, phone)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.Phone, &o.CreatedAt, &o.Total, &o.Data); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
