package board

import (
	"context"
	"fmt"

	"github.com/mindpath/mindpath-backend/internal/domain"
	"github.com/mindpath/mindpath-backend/pkg/ctxutil"
)

// List returns every card of one theme for the authenticated identity.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.BoardCard, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	cards, err := s.cards.ListByTheme(ctx, input.Table, id.Name, id.Email, input.Theme)
	if err != nil {
		return nil, fmt.Errorf("board.List: %w", err)
	}

	return cards, nil
}
