package board

import (
	"context"
	"log/slog"

	"github.com/mindpath/mindpath-backend/internal/adapter/postgres/board"
	"github.com/mindpath/mindpath-backend/internal/domain"
)

// cardRepo defines the board card repository interface needed by board service.
type cardRepo interface {
	GetByKey(ctx context.Context, table string, key board.Key) (*domain.BoardCard, error)
	Insert(ctx context.Context, table string, key board.Key, tasks []domain.TaskItem) (int64, error)
	UpdateTasks(ctx context.Context, table string, id int64, tasks []domain.TaskItem) error
	ListByTheme(ctx context.Context, table, userName, userEmail, theme string) ([]domain.BoardCard, error)
}

// txManager defines the transaction manager interface needed by board service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the generic save path shared by the vision board and
// the weekly planner. Both boards have identical shape; the table name is the
// only thing that varies, and it is checked against the allowlist before any
// query runs.
type Service struct {
	log   *slog.Logger
	cards cardRepo
	tx    txManager
}

// NewService creates a new board service instance.
func NewService(logger *slog.Logger, cards cardRepo, tx txManager) *Service {
	return &Service{
		log:   logger.With("service", "board"),
		cards: cards,
		tx:    tx,
	}
}
