package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindpath/mindpath-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a unique email and returns the filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Name:      "Test User " + suffix,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, welcome_email_sent, created_at, updated_at)
		 VALUES ($1, $2, $3, false, $4, $5)`,
		user.ID, user.Email, user.Name, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedBoardCard inserts a board card row into the given board table and
// returns its generated row id.
func SeedBoardCard(t *testing.T, pool *pgxpool.Pool, table string, card domain.BoardCard) int64 {
	t.Helper()

	if !domain.AllowedBoardTable(table) {
		t.Fatalf("testhelper: SeedBoardCard: table %q is not allowed", table)
	}

	tasks, err := json.Marshal(card.Tasks)
	if err != nil {
		t.Fatalf("testhelper: SeedBoardCard marshal tasks: %v", err)
	}

	var id int64
	err = pool.QueryRow(context.Background(),
		`INSERT INTO `+table+` (user_name, user_email, theme, card_id, tasks, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, now(), now())
		 RETURNING id`,
		card.UserName, card.UserEmail, card.Theme, card.CardID, tasks,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedBoardCard insert: %v", err)
	}
	return id
}
