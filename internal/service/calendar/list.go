package calendar

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mindpath/mindpath-backend/internal/domain"
	"github.com/mindpath/mindpath-backend/pkg/ctxutil"
)

// ListByTheme returns the caller's entries for one theme. Every entry is
// normalized before it is returned; rows stored by older clients with an
// inconsistent (color_code, task_type) pair are repaired in place so the
// next read sees clean data. A failed repair only logs — the read result is
// already correct.
func (s *Service) ListByTheme(ctx context.Context, theme string) ([]domain.CalendarEntry, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if theme == "" {
		return nil, &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "theme", Message: "required"},
		}}
	}

	entries, err := s.entries.ListByTheme(ctx, id.Name, id.Email, theme)
	if err != nil {
		return nil, fmt.Errorf("calendar.ListByTheme: %w", err)
	}

	for i := range entries {
		before := entries[i]
		entries[i].NormalizeColor()
		if entries[i].ColorCode == before.ColorCode && entries[i].TaskType == before.TaskType {
			continue
		}

		set := map[string]any{
			"task_type":  entries[i].TaskType,
			"color_code": entries[i].ColorCode,
		}
		if err := s.entries.Update(ctx, entries[i].ID, set); err != nil {
			s.log.WarnContext(ctx, "calendar entry repair failed",
				slog.Int64("entry_id", entries[i].ID),
				slog.String("error", err.Error()))
		}
	}

	return entries, nil
}
