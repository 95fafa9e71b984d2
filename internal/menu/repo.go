package menu

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Get(ctx context.Context) (*Config, error)
	Save(ctx context.Context, c *Config) error
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

// Get returns the singleton row, or an all-empty Config when no row exists
// yet (the frontend then falls back to its own defaults).
func (r *PGRepo) Get(ctx context.Context) (*Config, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	row := r.db.QueryRow(ctx, `
		SELECT menu_json,
		       COALESCE(week_text, ''),
		       COALESCE(special_note, ''),
		       COALESCE(cutoff_monday, ''),
		       COALESCE(cutoff_tuesday, ''),
		       COALESCE(cutoff_wednesday, ''),
		       COALESCE(cutoff_thursday, ''),
		       COALESCE(cutoff_friday, '')
		FROM menu_config WHERE id = 1
	`)
	var c Config
	err := row.Scan(&c.MenuJSON, &c.WeekText, &c.SpecialNote,
		&c.Cutoffs.Monday, &c.Cutoffs.Tuesday, &c.Cutoffs.Wednesday,
		&c.Cutoffs.Thursday, &c.Cutoffs.Friday)
	if errors.Is(err, pgx.ErrNoRows) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Save overwrites the whole singleton row (id fixed at 1).
func (r *PGRepo) Save(ctx context.Context, c *Config) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO menu_config (
			id, menu_json, week_text, special_note,
			cutoff_monday, cutoff_tuesday, cutoff_wednesday,
			cutoff_thursday, cutoff_friday
		)
		VALUES (1,$1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (id) DO UPDATE SET
			menu_json = EXCLUDED.menu_json,
			week_text = EXCLUDED.week_text,
			special_note = EXCLUDED.special_note,
			cutoff_monday = EXCLUDED.cutoff_monday,
			cutoff_tuesday = EXCLUDED.cutoff_tuesday,
			cutoff_wednesday = EXCLUDED.cutoff_wednesday,
			cutoff_thursday = EXCLUDED.cutoff_thursday,
			cutoff_friday = EXCLUDED.cutoff_friday
	`, c.MenuJSON, c.WeekText, c.SpecialNote,
		c.Cutoffs.Monday, c.Cutoffs.Tuesday, c.Cutoffs.Wednesday,
		c.Cutoffs.Thursday, c.Cutoffs.Friday)
	return err
}
