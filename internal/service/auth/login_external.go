package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mindpath/mindpath-backend/internal/domain"
)

// LoginExternal signs a user in with an external-identity provider profile.
// Resolution order: existing user by external id, then existing user by email
// (the external id is linked to that account), then a fresh account.
func (s *Service) LoginExternal(ctx context.Context, input LoginExternalInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Name = strings.TrimSpace(input.Name)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Resolve or create the user
	user, err := s.resolveExternalUser(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("auth.LoginExternal: %w", err)
	}

	// Step 3: Issue tokens
	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.LoginExternal issue tokens: %w", err)
	}

	// Step 4: Welcome email for first-time sign-ins (and earlier failures).
	s.sendWelcomeEmail(ctx, user)

	s.log.InfoContext(ctx, "user logged in via external identity",
		slog.String("user_id", user.ID.String()))

	return result, nil
}

func (s *Service) resolveExternalUser(ctx context.Context, input LoginExternalInput) (*domain.User, error) {
	// Known external id?
	user, err := s.users.GetByExternalID(ctx, input.ExternalID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get user by external id: %w", err)
	}

	// Known email? Link the external id to the existing account.
	user, err = s.users.GetByEmail(ctx, input.Email)
	if err == nil {
		if err := s.users.LinkExternalID(ctx, user.ID, input.ExternalID); err != nil {
			return nil, fmt.Errorf("link external id: %w", err)
		}
		linked := *user
		linked.ExternalID = &input.ExternalID
		return &linked, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	// First sign-in: create the account. No password hash — the external
	// provider is the only credential until the user sets one.
	now := time.Now()
	created, err := s.users.Create(ctx, &domain.User{
		ID:         uuid.New(),
		Email:      input.Email,
		Name:       input.Name,
		ExternalID: &input.ExternalID,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}
