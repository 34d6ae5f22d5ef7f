// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/mindpath/mindpath-backend/internal/adapter/postgres"
	"github.com/mindpath/mindpath-backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const table = "users"

var columns = []string{
	"id", "email", "name", "password_hash", "external_id",
	"welcome_email_sent", "created_at", "updated_at",
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// userRow mirrors the users table for pgxscan.
type userRow struct {
	ID               uuid.UUID `db:"id"`
	Email            string    `db:"email"`
	Name             string    `db:"name"`
	PasswordHash     *string   `db:"password_hash"`
	ExternalID       *string   `db:"external_id"`
	WelcomeEmailSent bool      `db:"welcome_email_sent"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

func (r userRow) toDomain() domain.User {
	return domain.User(r)
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getWhere(ctx, sq.Eq{"id": id}, id.String())
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getWhere(ctx, sq.Eq{"email": email}, email)
}

// GetByExternalID returns a user by the external-identity provider's user id.
func (r *Repo) GetByExternalID(ctx context.Context, externalID string) (*domain.User, error) {
	return r.getWhere(ctx, sq.Eq{"external_id": externalID}, externalID)
}

func (r *Repo) getWhere(ctx context.Context, pred sq.Eq, key string) (*domain.User, error) {
	query, args, err := qb.Select(columns...).From(table).Where(pred).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", key)
	}

	var row userRow
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", key)
	}

	u := row.toDomain()
	return &u, nil
}

// Create inserts a new user and returns the persisted domain.User.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	query, args, err := qb.Insert(table).
		Columns(columns...).
		Values(u.ID, u.Email, u.Name, u.PasswordHash, u.ExternalID,
			u.WelcomeEmailSent, u.CreatedAt, u.UpdatedAt).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}

	var row userRow
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}

	result := row.toDomain()
	return &result, nil
}

// UpdateName changes the user's display name.
func (r *Repo) UpdateName(ctx context.Context, id uuid.UUID, name string) (*domain.User, error) {
	query, args, err := qb.Update(table).
		Set("name", name).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", id.String())
	}

	var row userRow
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", id.String())
	}

	u := row.toDomain()
	return &u, nil
}

// LinkExternalID attaches an external-identity provider id to an existing user.
func (r *Repo) LinkExternalID(ctx context.Context, id uuid.UUID, externalID string) error {
	query, args, err := qb.Update(table).
		Set("external_id", externalID).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "user", id.String())
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "user", id.String())
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "user", id.String())
	}
	return nil
}

// MarkWelcomeEmailSent flips the welcome_email_sent flag. Idempotent.
func (r *Repo) MarkWelcomeEmailSent(ctx context.Context, id uuid.UUID) error {
	query, args, err := qb.Update(table).
		Set("welcome_email_sent", true).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "user", id.String())
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "user", id.String())
	}
	return nil
}

func joinColumns() string {
	return strings.Join(columns, ", ")
}
