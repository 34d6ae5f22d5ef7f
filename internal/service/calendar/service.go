package calendar

import (
	"context"
	"log/slog"

	"github.com/mindpath/mindpath-backend/internal/adapter/postgres/calendar"
	"github.com/mindpath/mindpath-backend/internal/domain"
)

// entryRepo defines the calendar repository interface needed by calendar service.
type entryRepo interface {
	GetByKey(ctx context.Context, key calendar.Key) (*domain.CalendarEntry, error)
	Insert(ctx context.Context, e *domain.CalendarEntry) (int64, error)
	Update(ctx context.Context, id int64, set map[string]any) error
	ListByTheme(ctx context.Context, userName, userEmail, theme string) ([]domain.CalendarEntry, error)
}

// txManager defines the transaction manager interface needed by calendar service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements annual-calendar operations.
type Service struct {
	log     *slog.Logger
	entries entryRepo
	tx      txManager
}

// NewService creates a new calendar service instance.
func NewService(logger *slog.Logger, entries entryRepo, tx txManager) *Service {
	return &Service{
		log:     logger.With("service", "calendar"),
		entries: entries,
		tx:      tx,
	}
}
