package admin

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound     = errors.New("admin not found")
	ErrAlreadyExist = errors.New("admin already exists")
)

type Repository interface {
	Create(ctx context.Context, username, passwordHash string) error
	GetByUsername(ctx context.Context, username string) (*Admin, error)
	List(ctx context.Context) ([]Admin, error)
	Count(ctx context.Context) (int, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, username, passwordHash string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO admins (username, password_hash)
		VALUES ($1,$2)
	`, username, passwordHash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrAlreadyExist
		}
		return err
	}
	return nil
}

func (r *PGRepo) GetByUsername(ctx context.Context, username string) (*Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	row := r.db.QueryRow(ctx, `
		SELECT id, username, password_hash
		FROM admins WHERE username=$1
	`, username)
	var a Admin
	if err := row.Scan(&a.ID, &a.Username, &a.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *PGRepo) List(ctx context.Context) ([]Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, username FROM admins ORDER BY username
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Admin
	for rows.Next() {
		var a Admin
		if err := rows.Scan(&a.ID, &a.Username); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PGRepo) Count(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM admins`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// EnsureDefault creates the bootstrap admin when the table is empty, so a
// fresh deployment always has one account that can log in.
func EnsureDefault(ctx context.Context, repo Repository, username, password string) error {
	n, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	if err := repo.Create(ctx, username, hash); err != nil {
		// lost the race against another instance bootstrapping
		if errors.Is(err, ErrAlreadyExist) {
			return nil
		}
		return err
	}
	log.Printf("[admin] bootstrap admin %q created", username)
	return nil
}
