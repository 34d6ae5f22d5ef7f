package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mindpath/mindpath-backend/internal/auth"
	"github.com/mindpath/mindpath-backend/internal/domain"
)

// Refresh exchanges a valid refresh token for a new token pair. The presented
// token is revoked, so every raw refresh token is usable exactly once.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Look up the stored token by its hash
	hash := auth.HashToken(input.RefreshToken)
	stored, err := s.tokens.GetByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Either an unknown token or an already-rotated one being
			// replayed. Both read the same from here; log and reject.
			s.log.WarnContext(ctx, "refresh token not found or already revoked")
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get token: %w", err)
	}

	// Step 3: Reject expired tokens
	if stored.IsExpired(time.Now()) {
		return nil, domain.ErrUnauthorized
	}

	// Step 4: Load the owning user
	user, err := s.users.GetByID(ctx, stored.UserID)
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh get user: %w", notFoundAsUnauthorized(err))
	}

	// Step 5: Rotate — revoke the presented token
	if err := s.tokens.RevokeByID(ctx, stored.ID); err != nil {
		return nil, fmt.Errorf("auth.Refresh revoke token: %w", err)
	}

	// Step 6: Issue a fresh pair
	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "tokens refreshed", slog.String("user_id", user.ID.String()))

	return result, nil
}
