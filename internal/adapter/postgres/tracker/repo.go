// Package tracker implements the ActivityCounter repository using PostgreSQL.
package tracker

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/mindpath/mindpath-backend/internal/adapter/postgres"
	"github.com/mindpath/mindpath-backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const table = "activity_counters"

var columns = []string{
	"id", "user_name", "user_email", "tracker", "activity_date", "count",
	"created_at", "updated_at",
}

// Key is the natural key of one daily counter.
type Key struct {
	UserName     string
	UserEmail    string
	Tracker      domain.TrackerType
	ActivityDate time.Time
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s/%s", k.UserEmail, k.Tracker, k.ActivityDate.Format("2006-01-02"))
}

func (k Key) pred() sq.Eq {
	return sq.Eq{
		"user_name":     k.UserName,
		"user_email":    k.UserEmail,
		"tracker":       string(k.Tracker),
		"activity_date": k.ActivityDate,
	}
}

// Repo provides activity-counter persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new tracker repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// counterRow mirrors the activity_counters table for pgxscan.
type counterRow struct {
	ID           int64     `db:"id"`
	UserName     string    `db:"user_name"`
	UserEmail    string    `db:"user_email"`
	Tracker      string    `db:"tracker"`
	ActivityDate time.Time `db:"activity_date"`
	Count        int       `db:"count"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r counterRow) toDomain() domain.ActivityCounter {
	return domain.ActivityCounter{
		ID:           r.ID,
		UserName:     r.UserName,
		UserEmail:    r.UserEmail,
		Tracker:      domain.TrackerType(r.Tracker),
		ActivityDate: r.ActivityDate,
		Count:        r.Count,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// GetByKey returns the counter stored under the natural key.
func (r *Repo) GetByKey(ctx context.Context, key Key) (*domain.ActivityCounter, error) {
	query, args, err := qb.Select(columns...).From(table).Where(key.pred()).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "activity_counter", key.String())
	}

	var row counterRow
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "activity_counter", key.String())
	}

	c := row.toDomain()
	return &c, nil
}

// Insert creates a new counter row with the given count.
func (r *Repo) Insert(ctx context.Context, key Key, count int) (int64, error) {
	query, args, err := qb.Insert(table).
		Columns("user_name", "user_email", "tracker", "activity_date", "count").
		Values(key.UserName, key.UserEmail, string(key.Tracker), key.ActivityDate, count).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "activity_counter", key.String())
	}

	var id int64
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := q.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, postgres.MapError(err, "activity_counter", key.String())
	}
	return id, nil
}

// SetCount overwrites the stored count for an existing row.
func (r *Repo) SetCount(ctx context.Context, id int64, count int) error {
	query, args, err := qb.Update(table).
		Set("count", count).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "activity_counter", fmt.Sprint(id))
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "activity_counter", fmt.Sprint(id))
	}
	return nil
}

// ListByUser returns every counter for a user ordered by date then tracker.
func (r *Repo) ListByUser(ctx context.Context, userName, userEmail string) ([]domain.ActivityCounter, error) {
	query, args, err := qb.Select(columns...).From(table).
		Where(sq.Eq{"user_name": userName, "user_email": userEmail}).
		OrderBy("activity_date ASC", "tracker ASC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "activity_counter", userEmail)
	}

	var rows []counterRow
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "activity_counter", userEmail)
	}

	counters := make([]domain.ActivityCounter, len(rows))
	for i, row := range rows {
		counters[i] = row.toDomain()
	}
	return counters, nil
}
