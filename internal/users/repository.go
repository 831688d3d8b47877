package users

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// Repository persists users. Email lookups are exact matches.
type Repository interface {
	Create(ctx context.Context, user User) error
	FindByEmail(ctx context.Context, email string) (User, error)
	UpdateProfile(ctx context.Context, email string, update ProfileUpdate) (User, error)
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed user repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new user.
func (r *PostgresRepository) Create(ctx context.Context, user User) error {
	_, err := r.db.Exec(ctx, `INSERT INTO users (email, hash, created_at) VALUES ($1, $2, $3)`,
		user.Email, user.PasswordHash, user.CreatedAt.UTC())
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrExists
	}
	return err
}

// FindByEmail fetches a user by email.
func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	row := r.db.QueryRow(ctx, `SELECT email, hash, first_name, last_name, dob, address, created_at
        FROM users WHERE email = $1`, email)
	return scanUser(row)
}

// UpdateProfile overwrites the profile fields of the user with email.
func (r *PostgresRepository) UpdateProfile(ctx context.Context, email string, update ProfileUpdate) (User, error) {
	row := r.db.QueryRow(ctx, `UPDATE users SET first_name = $1, last_name = $2, dob = $3, address = $4
        WHERE email = $5
        RETURNING email, hash, first_name, last_name, dob, address, created_at`,
		update.FirstName, update.LastName, update.DOB, update.Address, email)
	return scanUser(row)
}

func scanUser(row pgx.Row) (User, error) {
	var (
		user      User
		createdAt time.Time
	)
	if err := row.Scan(&user.Email, &user.PasswordHash, &user.FirstName, &user.LastName, &user.DOB, &user.Address, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	user.CreatedAt = createdAt.UTC()
	return user, nil
}
