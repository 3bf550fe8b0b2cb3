// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/nutrilog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/nutrilog-backend/internal/domain"
)

const table = "users"

var columns = []string{"id", "email", "password_hash", "created_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r row) toDomain() *domain.User {
	return &domain.User{
		ID:           r.ID,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
	}
}

// GetByEmail returns a user by email, compared case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Expr("lower(email) = lower(?)", email))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select user: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return dst.toDomain(), nil
}

// ExistsByEmail reports whether an account with this email exists.
func (r *Repo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := postgres.Builder().
		Select("1").
		Prefix("SELECT EXISTS (").
		From(table).
		Where(sq.Expr("lower(email) = lower(?)", email)).
		Suffix(")")

	sql, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("build exists user: %w", err)
	}

	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "user", email)
	}
	return exists, nil
}

// Create inserts a user. The email is stored lowercased; a duplicate maps to
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, email, passwordHash string) (*domain.User, error) {
	email = strings.ToLower(email)

	query := postgres.Builder().
		Insert(table).
		Columns("email", "password_hash").
		Values(email, passwordHash).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert user: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return dst.toDomain(), nil
}
