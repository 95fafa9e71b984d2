package report

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type Repository interface {
	Summary(ctx context.Context) ([]SummaryRow, error)
	MonthlySummary(ctx context.Context, month string) ([]MonthlyRow, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

// dec parses a SUM()::text value. COALESCE guarantees a numeric literal.
func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// Summary returns one row per customer with lifetime ordered/paid totals,
// ordered by phone ascending. Customers with no orders or no payments count
// as zero on that side.
func (r *PGRepo) Summary(ctx context.Context) ([]SummaryRow, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT
			c.phone,
			COALESCE(c.name, '') AS name,
			COALESCE(SUM(o.total), 0)::text AS total_ordered,
			COALESCE((
				SELECT SUM(p.amount)
				FROM payments p
				WHERE p.phone = c.phone
			), 0)::text AS total_paid
		FROM customers c
		LEFT JOIN orders o ON o.phone = c.phone
		GROUP BY c.phone, c.name
		ORDER BY c.phone
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []SummaryRow{}
	for rows.Next() {
		var phone, name, ordered, paid string
		if err := rows.Scan(&phone, &name, &ordered, &paid); err != nil {
			return nil, err
		}
		out = append(out, Summarize(phone, name, dec(ordered), dec(paid)))
	}
	return out, rows.Err()
}

// MonthlySummary returns one row per customer with the totals inside the
// given month (matched by timestamp prefix) alongside the lifetime totals.
func (r *PGRepo) MonthlySummary(ctx context.Context, month string) ([]MonthlyRow, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT
			c.phone,
			COALESCE(c.name, '') AS name,
			COALESCE((
				SELECT SUM(o.total)
				FROM orders o
				WHERE o.phone = c.phone
				  AND substr(o.created_at, 1, 7) = $1
			), 0)::text AS ordered_month,
			COALESCE((
				SELECT SUM(p.amount)
				FROM payments p
				WHERE p.phone = c.phone
				  AND substr(p.created_at, 1, 7) = $1
			), 0)::text AS paid_month,
			COALESCE((
				SELECT SUM(o2.total)
				FROM orders o2
				WHERE o2.phone = c.phone
			), 0)::text AS ordered_all,
			COALESCE((
				SELECT SUM(p2.amount)
				FROM payments p2
				WHERE p2.phone = c.phone
			), 0)::text AS paid_all
		FROM customers c
		ORDER BY c.phone
	`, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MonthlyRow
	for rows.Next() {
		var phone, name, om, pm, oa, pa string
		if err := rows.Scan(&phone, &name, &om, &pm, &oa, &pa); err != nil {
			return nil, err
		}
		out = append(out, MonthlyRow{
			Phone:        phone,
			Name:         name,
			OrderedMonth: dec(om),
			PaidMonth:    dec(pm),
			OrderedAll:   dec(oa),
			PaidAll:      dec(pa),
		})
	}
	return out, rows.Err()
}
