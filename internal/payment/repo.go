package payment

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	ListByPhone(ctx context.Context, phone string) ([]Payment, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, p *Payment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO payments (phone, created_at, amount, note)
		VALUES ($1,$2,$3,$4)
	`, p.Phone, p.CreatedAt, p.Amount, p.Note)
	return err
}

func (r *PGRepo) ListByPhone(ctx context.Context, phone string) ([]Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, phone, created_at, amount::text, COALESCE(note, '')
		FROM payments WHERE phone=$1
		ORDER BY created_at DESC
	`, phone)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Payment
	for rows.Next() {
		var p Payment
		if err := rows.Scan(&p.ID, &p.Phone, &p.CreatedAt, &p.Amount, &p.Note); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
