package tracker

import (
	"context"
	"log/slog"

	"github.com/mindpath/mindpath-backend/internal/adapter/postgres/tracker"
	"github.com/mindpath/mindpath-backend/internal/domain"
)

// counterRepo defines the counter repository interface needed by tracker service.
type counterRepo interface {
	GetByKey(ctx context.Context, key tracker.Key) (*domain.ActivityCounter, error)
	Insert(ctx context.Context, key tracker.Key, count int) (int64, error)
	SetCount(ctx context.Context, id int64, count int) error
	ListByUser(ctx context.Context, userName, userEmail string) ([]domain.ActivityCounter, error)
}

// txManager defines the transaction manager interface needed by tracker service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the "mind tools" activity counter operations.
type Service struct {
	log      *slog.Logger
	counters counterRepo
	tx       txManager
}

// NewService creates a new tracker service instance.
func NewService(logger *slog.Logger, counters counterRepo, tx txManager) *Service {
	return &Service{
		log:      logger.With("service", "tracker"),
		counters: counters,
		tx:       tx,
	}
}
