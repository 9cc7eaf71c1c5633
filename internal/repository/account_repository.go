package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/saboresunicos/ordering-service/internal/domain"
)

// AccountRepository defines persistence access for credentialed accounts.
// Lookups are case-sensitive exact matches.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	Update(ctx context.Context, id int, fields domain.AccountUpdate) (*domain.Account, error)
	FindByID(ctx context.Context, id int) (*domain.Account, error)
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
}

type accountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository returns a Postgres-backed implementation.
func NewAccountRepository(pool *pgxpool.Pool) AccountRepository {
	return &accountRepository{pool: pool}
}

func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	const query = `
        INSERT INTO accounts (username, email, password_hash, role)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		account.Username,
		account.Email,
		account.PasswordHash,
		account.Role,
	).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
	return mapConstraintError(err)
}

// Update applies only the non-nil fields. The single UPDATE statement is the
// compare-and-set: when two requests race on the same new username or email,
// the unique constraints reject the loser and the violation is mapped to a
// duplicate-key error.
func (r *accountRepository) Update(ctx context.Context, id int, fields domain.AccountUpdate) (*domain.Account, error) {
	const query = `
        UPDATE accounts SET
            username = COALESCE($1, username),
            email = COALESCE($2, email),
            password_hash = COALESCE($3, password_hash),
            updated_at = NOW()
        WHERE id = $4
        RETURNING id, username, email, password_hash, role, created_at, updated_at`

	var account domain.Account
	err := r.pool.QueryRow(ctx, query,
		fields.Username,
		fields.Email,
		fields.PasswordHash,
		id,
	).Scan(
		&account.ID,
		&account.Username,
		&account.Email,
		&account.PasswordHash,
		&account.Role,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, mapConstraintError(err)
	}
	return &account, nil
}

func (r *accountRepository) FindByID(ctx context.Context, id int) (*domain.Account, error) {
	return r.findBy(ctx, "id = $1", id)
}

func (r *accountRepository) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	return r.findBy(ctx, "username = $1", username)
}

func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.findBy(ctx, "email = $1", email)
}

func (r *accountRepository) findBy(ctx context.Context, where string, arg any) (*domain.Account, error) {
	query := `
        SELECT id, username, email, password_hash, role, created_at, updated_at
        FROM accounts WHERE ` + where

	var account domain.Account
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&account.ID,
		&account.Username,
		&account.Email,
		&account.PasswordHash,
		&account.Role,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

// uniqueViolation is the Postgres error code for unique-constraint failures.
const uniqueViolation = "23505"

func mapConstraintError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		switch pgErr.ConstraintName {
		case "accounts_username_key":
			return domain.ErrDuplicateUsername
		case "accounts_email_key":
			return domain.ErrDuplicateEmail
		}
	}
	return err
}
