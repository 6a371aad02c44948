package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgconn"
	pgx "github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/workout-tracker/backend/internal/account/domain"
	"github.com/workout-tracker/backend/internal/common/db"
)

var (
	ErrAccountNotFound = pgx.ErrNoRows

	// ErrDuplicateAccount is the authoritative uniqueness signal: the unique
	// indexes on username and email reject the insert even when two
	// registrations pass the pre-check concurrently.
	ErrDuplicateAccount = errors.New("username or email already registered")
)

type Repository interface {
	Create(ctx context.Context, account domain.Account) error
	FindByEmail(ctx context.Context, email string) (domain.Account, error)
	FindByID(ctx context.Context, id domain.ID) (domain.Profile, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}

type PgRepository struct {
	pool *pgxpool.Pool
}

func NewPgRepository(pool *pgxpool.Pool) *PgRepository {
	return &PgRepository{pool: pool}
}

func (r *PgRepository) Create(ctx context.Context, account domain.Account) error {
	start := time.Now()
	_, err := r.pool.Exec(
		ctx,
		`INSERT INTO accounts (id, username, email, password_hash, saved_workouts, created_at)
		 VALUES ($1, $2, $3, $4, COALESCE($5, '[]'::jsonb), $6)`,
		string(account.ID),
		account.Username,
		account.Email,
		account.PasswordHash,
		account.SavedWorkouts,
		account.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			db.MeasureQueryDuration("create account", start)
			return ErrDuplicateAccount
		}
		return db.HandleExecError(err, "create account", start)
	}
	return db.HandleExecError(nil, "create account", start)
}

func (r *PgRepository) FindByEmail(ctx context.Context, email string) (domain.Account, error) {
	start := time.Now()
	row := r.pool.QueryRow(
		ctx,
		`SELECT id, username, email, password_hash, saved_workouts, created_at
		 FROM accounts WHERE email = $1`,
		email,
	)

	var account domain.Account
	err := row.Scan(
		&account.ID,
		&account.Username,
		&account.Email,
		&account.PasswordHash,
		&account.SavedWorkouts,
		&account.CreatedAt,
	)
	if err != nil {
		return domain.Account{}, db.HandleQueryError(err, ErrAccountNotFound, "find account by email", start)
	}

	db.MeasureQueryDuration("find account by email", start)
	return account, nil
}

// FindByID projects the credential away in the query itself rather than
// dropping it at serialization time.
func (r *PgRepository) FindByID(ctx context.Context, id domain.ID) (domain.Profile, error) {
	start := time.Now()
	row := r.pool.QueryRow(
		ctx,
		`SELECT id, username, email, saved_workouts, created_at
		 FROM accounts WHERE id = $1`,
		string(id),
	)

	var profile domain.Profile
	err := row.Scan(
		&profile.ID,
		&profile.Username,
		&profile.Email,
		&profile.SavedWorkouts,
		&profile.CreatedAt,
	)
	if err != nil {
		return domain.Profile{}, db.HandleQueryError(err, ErrAccountNotFound, "find account by id", start)
	}

	db.MeasureQueryDuration("find account by id", start)
	return profile, nil
}

func (r *PgRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	start := time.Now()
	row := r.pool.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM accounts WHERE username = $1 OR email = $2)`,
		username,
		email,
	)

	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check account existence: %w", err)
	}

	db.MeasureQueryDuration("check account exists", start)
	return exists, nil
}
