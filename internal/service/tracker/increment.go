package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mindpath/mindpath-backend/internal/adapter/postgres/tracker"
	"github.com/mindpath/mindpath-backend/internal/domain"
	"github.com/mindpath/mindpath-backend/pkg/ctxutil"
)

// IncrementInput holds parameters for the single-use increment operation.
type IncrementInput struct {
	UserName  string
	UserEmail string
	Tracker   domain.TrackerType
	Date      time.Time
}

// Validate validates the increment input.
func (i IncrementInput) Validate() error {
	var errs []domain.FieldError

	if !i.Tracker.IsValid() {
		errs = append(errs, domain.FieldError{Field: "tracker", Message: "unknown tracker type"})
	}
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Increment bumps one day's tally by one, creating the row at 1 when absent.
// Returns the stored count after the bump.
func (s *Service) Increment(ctx context.Context, input IncrementInput) (int, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}
	if !id.Owns(input.UserName, input.UserEmail) {
		return 0, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return 0, err
	}

	key := tracker.Key{
		UserName:     input.UserName,
		UserEmail:    input.UserEmail,
		Tracker:      input.Tracker,
		ActivityDate: input.Date,
	}

	var final int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.counters.GetByKey(txCtx, key)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			if _, err := s.counters.Insert(txCtx, key, 1); err != nil {
				return fmt.Errorf("insert counter: %w", err)
			}
			final = 1
			return nil
		case err != nil:
			return fmt.Errorf("get counter: %w", err)
		}

		final = existing.Count + 1
		if err := s.counters.SetCount(txCtx, existing.ID, final); err != nil {
			return fmt.Errorf("set count: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("tracker.Increment %s: %w", key, err)
	}

	s.log.InfoContext(ctx, "counter incremented",
		slog.String("tracker", input.Tracker.String()),
		slog.Int("count", final))

	return final, nil
}

// ListByUser returns every stored counter of the authenticated identity.
func (s *Service) ListByUser(ctx context.Context) ([]domain.ActivityCounter, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	counters, err := s.counters.ListByUser(ctx, id.Name, id.Email)
	if err != nil {
		return nil, fmt.Errorf("tracker.ListByUser: %w", err)
	}
	return counters, nil
}
