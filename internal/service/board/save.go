package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mindpath/mindpath-backend/internal/adapter/postgres/board"
	"github.com/mindpath/mindpath-backend/internal/domain"
	"github.com/mindpath/mindpath-backend/pkg/ctxutil"
)

// SaveAction tells the client whether its card was inserted or rewritten.
type SaveAction string

const (
	ActionCreated SaveAction = "created"
	ActionUpdated SaveAction = "updated"
)

// SaveResult is returned by Save.
type SaveResult struct {
	ID     int64
	Action SaveAction
}

// Save upserts one card by its natural key (name, email, theme, card id).
// An existing card has its task list rewritten; an absent one is inserted.
// The returned row id is stable across the two outcomes.
func (s *Service) Save(ctx context.Context, input SaveInput) (*SaveResult, error) {
	// Step 1: Ownership — the body identity must match the credential
	// identity. This precedes validation and every query.
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !id.Owns(input.UserName, input.UserEmail) {
		return nil, domain.ErrForbidden
	}

	// Step 2: Validate input, including the table allowlist
	if err := input.Validate(); err != nil {
		return nil, err
	}

	key := board.Key{
		UserName:  input.UserName,
		UserEmail: input.UserEmail,
		Theme:     input.Theme,
		CardID:    input.CardID,
	}

	// Step 3: Check-then-act inside one transaction. A duplicate insert from
	// a concurrent request still surfaces as ErrAlreadyExists via the
	// natural-key constraint.
	var result SaveResult

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.cards.GetByKey(txCtx, input.Table, key)
		switch {
		case err == nil:
			if err := s.cards.UpdateTasks(txCtx, input.Table, existing.ID, input.Tasks); err != nil {
				return fmt.Errorf("update tasks: %w", err)
			}
			result = SaveResult{ID: existing.ID, Action: ActionUpdated}
			return nil
		case errors.Is(err, domain.ErrNotFound):
			rowID, err := s.cards.Insert(txCtx, input.Table, key, input.Tasks)
			if err != nil {
				return fmt.Errorf("insert card: %w", err)
			}
			result = SaveResult{ID: rowID, Action: ActionCreated}
			return nil
		default:
			return fmt.Errorf("get card: %w", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("board.Save %s: %w", key, err)
	}

	s.log.InfoContext(ctx, "card saved",
		slog.String("table", input.Table),
		slog.String("theme", input.Theme),
		slog.String("card_id", input.CardID),
		slog.String("action", string(result.Action)))

	return &result, nil
}
