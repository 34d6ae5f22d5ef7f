// Package board implements board-card persistence for the vision board and
// the weekly planner. Both share one schema; the target table is chosen by
// the caller and re-checked against the allowlist here, since the table name
// becomes part of the SQL identifier.
package board

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/mindpath/mindpath-backend/internal/adapter/postgres"
	"github.com/mindpath/mindpath-backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"id", "user_name", "user_email", "theme", "card_id", "tasks",
	"created_at", "updated_at",
}

// Key is the natural key of one board card.
type Key struct {
	UserName  string
	UserEmail string
	Theme     string
	CardID    string
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s/%s", k.UserEmail, k.Theme, k.CardID)
}

func (k Key) pred() sq.Eq {
	return sq.Eq{
		"user_name":  k.UserName,
		"user_email": k.UserEmail,
		"theme":      k.Theme,
		"card_id":    k.CardID,
	}
}

// Repo provides board-card persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new board repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// cardRow mirrors a board table for pgxscan; tasks stays raw JSON until decode.
type cardRow struct {
	ID        int64           `db:"id"`
	UserName  string          `db:"user_name"`
	UserEmail string          `db:"user_email"`
	Theme     string          `db:"theme"`
	CardID    string          `db:"card_id"`
	Tasks     json.RawMessage `db:"tasks"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

func (r cardRow) toDomain() (domain.BoardCard, error) {
	var tasks []domain.TaskItem
	if len(r.Tasks) > 0 {
		if err := json.Unmarshal(r.Tasks, &tasks); err != nil {
			return domain.BoardCard{}, fmt.Errorf("decode tasks blob: %w", err)
		}
	}
	return domain.BoardCard{
		ID:        r.ID,
		UserName:  r.UserName,
		UserEmail: r.UserEmail,
		Theme:     r.Theme,
		CardID:    r.CardID,
		Tasks:     tasks,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}, nil
}

// checkTable guards against a non-allowlisted name reaching a query identifier.
func checkTable(table string) error {
	if !domain.AllowedBoardTable(table) {
		return fmt.Errorf("table %q: %w", table, domain.ErrValidation)
	}
	return nil
}

// GetByKey returns the card stored under the natural key in the given table.
func (r *Repo) GetByKey(ctx context.Context, table string, key Key) (*domain.BoardCard, error) {
	if err := checkTable(table); err != nil {
		return nil, err
	}

	query, args, err := qb.Select(columns...).From(table).Where(key.pred()).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, table, key.String())
	}

	var row cardRow
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, table, key.String())
	}

	card, err := row.toDomain()
	if err != nil {
		return nil, postgres.MapError(err, table, key.String())
	}
	return &card, nil
}

// Insert creates a new card row and returns its generated id.
func (r *Repo) Insert(ctx context.Context, table string, key Key, tasks []domain.TaskItem) (int64, error) {
	if err := checkTable(table); err != nil {
		return 0, err
	}

	blob, err := json.Marshal(tasks)
	if err != nil {
		return 0, fmt.Errorf("encode tasks blob: %w", err)
	}

	query, args, err := qb.Insert(table).
		Columns("user_name", "user_email", "theme", "card_id", "tasks").
		Values(key.UserName, key.UserEmail, key.Theme, key.CardID, blob).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, postgres.MapError(err, table, key.String())
	}

	var id int64
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := q.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, postgres.MapError(err, table, key.String())
	}
	return id, nil
}

// UpdateTasks rewrites the whole task blob for an existing card and refreshes
// updated_at. The blob is replaced, not merged; item-level changes are applied
// by the caller rewriting the full list.
func (r *Repo) UpdateTasks(ctx context.Context, table string, id int64, tasks []domain.TaskItem) error {
	if err := checkTable(table); err != nil {
		return err
	}

	blob, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("encode tasks blob: %w", err)
	}

	query, args, err := qb.Update(table).
		Set("tasks", blob).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, table, fmt.Sprint(id))
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, table, fmt.Sprint(id))
	}
	return nil
}

// ListByTheme returns all cards of one theme for a user, oldest first.
func (r *Repo) ListByTheme(ctx context.Context, table, userName, userEmail, theme string) ([]domain.BoardCard, error) {
	if err := checkTable(table); err != nil {
		return nil, err
	}

	query, args, err := qb.Select(columns...).From(table).
		Where(sq.Eq{"user_name": userName, "user_email": userEmail, "theme": theme}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, table, theme)
	}

	var rows []cardRow
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, table, theme)
	}

	cards := make([]domain.BoardCard, 0, len(rows))
	for _, row := range rows {
		card, err := row.toDomain()
		if err != nil {
			return nil, postgres.MapError(err, table, theme)
		}
		cards = append(cards, card)
	}
	return cards, nil
}
