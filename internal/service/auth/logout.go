package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Logout revokes every active refresh token of the user. Access tokens stay
// valid until they expire; their TTL is short enough that this is acceptable.
func (s *Service) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := s.tokens.RevokeAllByUser(ctx, userID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "user logged out", slog.String("user_id", userID.String()))

	return nil
}
