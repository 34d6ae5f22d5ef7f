// Package calendar implements the CalendarEntry repository using PostgreSQL.
package calendar

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

const table = "calendar_entries"

var columns = []string{
	"id", "user_name", "user_email", "theme", "task_date", "task_type",
	"description", "color_code", "created_at", "updated_at",
}

// Key is the natural key of one calendar day.
type Key struct {
	UserName  string
	UserEmail string
	Theme     string
	TaskDate  time.Time
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s/%s", k.UserEmail, k.Theme, k.TaskDate.Format("2006-01-02"))
}

func (k Key) pred() sq.Eq {
	return sq.Eq{
		"user_name":  k.UserName,
		"user_email": k.UserEmail,
		"theme":      k.Theme,
		"task_date":  k.TaskDate,
	}
}

// Repo provides calendar-entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new calendar repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// entryRow mirrors the calendar_entries table for pgxscan.
type entryRow struct {
	ID          int64     `db:"id"`
	UserName    string    `db:"user_name"`
	UserEmail   string    `db:"user_email"`
	Theme       string    `db:"theme"`
	TaskDate    time.Time `db:"task_date"`
	TaskType    int       `db:"task_type"`
	Description string    `db:"description"`
	ColorCode   string    `db:"color_code"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r entryRow) toDomain() domain.CalendarEntry {
	return domain.CalendarEntry(r)
}

// GetByKey returns the entry stored under the natural key.
func (r *Repo) GetByKey(ctx context.Context, key Key) (*domain.CalendarEntry, error) {
	query, args, err := qb.Select(columns...).From(table).Where(key.pred()).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "calendar_entry", key.String())
	}

	var row entryRow
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "calendar_entry", key.String())
	}

	e := row.toDomain()
	return &e, nil
}

// Insert creates a new entry row and returns its generated id.
func (r *Repo) Insert(ctx context.Context, e *domain.CalendarEntry) (int64, error) {
	key := Key{UserName: e.UserName, UserEmail: e.UserEmail, Theme: e.Theme, TaskDate: e.TaskDate}

	query, args, err := qb.Insert(table).
		Columns("user_name", "user_email", "theme", "task_date",
			"task_type", "description", "color_code").
		Values(e.UserName, e.UserEmail, e.Theme, e.TaskDate,
			e.TaskType, e.Description, e.ColorCode).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "calendar_entry", key.String())
	}

	var id int64
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := q.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, postgres.MapError(err, "calendar_entry", key.String())
	}
	return id, nil
}

// Update applies the given column values to an existing entry and refreshes
// updated_at. Only the columns present in set are touched.
func (r *Repo) Update(ctx context.Context, id int64, set map[string]any) error {
	if len(set) == 0 {
		return nil
	}

	b := qb.Update(table).Set("updated_at", sq.Expr("now()"))
	for col, val := range set {
		b = b.Set(col, val)
	}

	query, args, err := b.Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return postgres.MapError(err, "calendar_entry", fmt.Sprint(id))
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "calendar_entry", fmt.Sprint(id))
	}
	return nil
}

// ListByTheme returns all entries of one theme for a user ordered by date.
func (r *Repo) ListByTheme(ctx context.Context, userName, userEmail, theme string) ([]domain.CalendarEntry, error) {
	query, args, err := qb.Select(columns...).From(table).
		Where(sq.Eq{"user_name": userName, "user_email": userEmail, "theme": theme}).
		OrderBy("task_date ASC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "calendar_entry", theme)
	}

	var rows []entryRow
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "calendar_entry", theme)
	}

	entries := make([]domain.CalendarEntry, len(rows))
	for i, row := range rows {
		entries[i] = row.toDomain()
	}
	return entries, nil
}
