package calendar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mindpath/mindpath-backend/internal/adapter/postgres/calendar"
	"github.com/mindpath/mindpath-backend/internal/domain"
	"github.com/mindpath/mindpath-backend/pkg/ctxutil"
)

// UpsertAction tells the client whether its entry was inserted or rewritten.
type UpsertAction string

const (
	ActionCreated UpsertAction = "created"
	ActionUpdated UpsertAction = "updated"
)

// UpsertResult is returned by Upsert.
type UpsertResult struct {
	ID     int64
	Action UpsertAction
}

// UpsertInput holds parameters for the calendar upsert. Optional fields are
// pointers: on update only the provided ones are written; on create TaskType
// and Description are required and a missing ColorCode is derived from the
// type.
type UpsertInput struct {
	UserName    string
	UserEmail   string
	Theme       string
	TaskDate    time.Time
	TaskType    *int
	Description *string
	ColorCode   *string
}

// Validate validates the upsert input.
func (i UpsertInput) Validate() error {
	var errs []domain.FieldError

	if i.UserName == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.UserEmail == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Theme == "" {
		errs = append(errs, domain.FieldError{Field: "theme", Message: "required"})
	}
	if i.TaskDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "task_date", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// validateForCreate checks the fields that only an insert needs.
func (i UpsertInput) validateForCreate() error {
	var errs []domain.FieldError

	if i.TaskType == nil {
		errs = append(errs, domain.FieldError{Field: "task_type", Message: "required"})
	}
	if i.Description == nil {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Upsert stores one calendar day by its natural key (name, email, theme,
// task date). The color code and type code are normalized together before
// anything is written, so a stored pair is always mutually consistent.
func (s *Service) Upsert(ctx context.Context, input UpsertInput) (*UpsertResult, error) {
	// Step 1: Ownership precedes validation and every query.
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !id.Owns(input.UserName, input.UserEmail) {
		return nil, domain.ErrForbidden
	}

	// Step 2: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	key := calendar.Key{
		UserName:  input.UserName,
		UserEmail: input.UserEmail,
		Theme:     input.Theme,
		TaskDate:  input.TaskDate,
	}

	// Step 3: Check-then-act inside one transaction.
	var result UpsertResult

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.entries.GetByKey(txCtx, key)
		switch {
		case err == nil:
			return s.updateExisting(txCtx, existing, input, &result)
		case errors.Is(err, domain.ErrNotFound):
			return s.insertNew(txCtx, key, input, &result)
		default:
			return fmt.Errorf("get entry: %w", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("calendar.Upsert %s: %w", key, err)
	}

	s.log.InfoContext(ctx, "calendar entry saved",
		slog.String("theme", input.Theme),
		slog.String("task_date", input.TaskDate.Format("2006-01-02")),
		slog.String("action", string(result.Action)))

	return &result, nil
}

func (s *Service) updateExisting(ctx context.Context, existing *domain.CalendarEntry, input UpsertInput, result *UpsertResult) error {
	// Merge provided fields onto the stored entry, then repair the
	// (color_code, task_type) pair before writing any of it back.
	merged := *existing
	if input.TaskType != nil {
		merged.TaskType = *input.TaskType
	}
	if input.Description != nil {
		merged.Description = *input.Description
	}
	if input.ColorCode != nil {
		merged.ColorCode = *input.ColorCode
	}
	merged.NormalizeColor()

	// The whole value part is rewritten; updated_at refreshes even when the
	// client resent identical data.
	set := map[string]any{
		"task_type":   merged.TaskType,
		"description": merged.Description,
		"color_code":  merged.ColorCode,
	}

	if err := s.entries.Update(ctx, existing.ID, set); err != nil {
		return fmt.Errorf("update entry: %w", err)
	}

	*result = UpsertResult{ID: existing.ID, Action: ActionUpdated}
	return nil
}

func (s *Service) insertNew(ctx context.Context, key calendar.Key, input UpsertInput, result *UpsertResult) error {
	if err := input.validateForCreate(); err != nil {
		return err
	}

	entry := domain.CalendarEntry{
		UserName:    key.UserName,
		UserEmail:   key.UserEmail,
		Theme:       key.Theme,
		TaskDate:    key.TaskDate,
		TaskType:    *input.TaskType,
		Description: *input.Description,
	}
	if input.ColorCode != nil {
		entry.ColorCode = *input.ColorCode
	}
	entry.NormalizeColor()

	rowID, err := s.entries.Insert(ctx, &entry)
	if err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}

	*result = UpsertResult{ID: rowID, Action: ActionCreated}
	return nil
}
