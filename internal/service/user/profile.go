package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mindpath/mindpath-backend/internal/domain"
	"github.com/mindpath/mindpath-backend/pkg/ctxutil"
)

// GetProfile returns the authenticated user's profile.
// Returns ErrUnauthorized if no identity is found in context. Legacy
// credentials carry no user row, so they cannot read a profile.
func (s *Service) GetProfile(ctx context.Context) (*domain.User, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok || id.Legacy {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, id.UserID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}

	return user, nil
}

// UpdateProfileInput holds parameters for the profile update operation.
type UpdateProfileInput struct {
	Name string
}

// Validate validates the profile update input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateProfile updates the authenticated user's display name.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	input.Name = strings.TrimSpace(input.Name)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Extract identity from context
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok || id.Legacy {
		return nil, domain.ErrUnauthorized
	}

	// Step 3: Update profile
	user, err := s.users.UpdateName(ctx, id.UserID, input.Name)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	// Step 4: Log the update
	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", id.UserID.String()))

	return user, nil
}
