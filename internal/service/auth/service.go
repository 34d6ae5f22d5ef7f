package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mindpath/mindpath-backend/internal/config"
	"github.com/mindpath/mindpath-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByExternalID(ctx context.Context, externalID string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	LinkExternalID(ctx context.Context, id uuid.UUID, externalID string) error
	MarkWelcomeEmailSent(ctx context.Context, id uuid.UUID) error
}

// tokenRepo defines the refresh token repository interface needed by auth service.
type tokenRepo interface {
	Create(ctx context.Context, token *domain.RefreshToken) error
	GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeByID(ctx context.Context, id uuid.UUID) error
	RevokeAllByUser(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context) (int, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, error)
	GenerateRefreshToken() (raw string, hash string, err error)
}

// mailSender defines the welcome-email side channel. Send failures never
// abort the operation that triggered them.
type mailSender interface {
	SendWelcome(ctx context.Context, email, name string) error
}

// Service implements auth operations.
type Service struct {
	log    *slog.Logger
	users  userRepo
	tokens tokenRepo
	tx     txManager
	jwt    jwtManager
	mail   mailSender
	cfg    config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tokens tokenRepo,
	tx txManager,
	jwt jwtManager,
	mail mailSender,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		users:  users,
		tokens: tokens,
		tx:     tx,
		jwt:    jwt,
		mail:   mail,
		cfg:    cfg,
	}
}

// ValidateToken parses a signed access token and returns the user ID.
// Used by the transport auth middleware.
func (s *Service) ValidateToken(_ context.Context, token string) (uuid.UUID, error) {
	userID, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	return userID, nil
}

// GetUserByID looks up the user row backing a validated token. Used by the
// transport auth middleware to build the request identity.
func (s *Service) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// issueTokens generates access and refresh tokens for the given user, stores
// the refresh token hash in DB, and returns an AuthResult.
func (s *Service) issueTokens(ctx context.Context, user *domain.User) (*AuthResult, error) {
	accessToken, err := s.jwt.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	rawRefresh, hashRefresh, err := s.jwt.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	refreshToken := &domain.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashRefresh,
		ExpiresAt: time.Now().Add(s.cfg.RefreshTokenTTL),
	}
	if err := s.tokens.Create(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &AuthResult{
		AccessToken:  accessToken,
		RefreshToken: rawRefresh,
		User:         user,
	}, nil
}

// sendWelcomeEmail fires the welcome email and flips the user's flag on
// success. Delivery failure is logged and swallowed; the flag stays false so
// a later sign-in can retry.
func (s *Service) sendWelcomeEmail(ctx context.Context, user *domain.User) {
	if user.WelcomeEmailSent {
		return
	}

	if err := s.mail.SendWelcome(ctx, user.Email, user.Name); err != nil {
		s.log.WarnContext(ctx, "welcome email failed",
			slog.String("user_id", user.ID.String()),
			slog.String("error", err.Error()))
		return
	}

	if err := s.users.MarkWelcomeEmailSent(ctx, user.ID); err != nil {
		s.log.WarnContext(ctx, "mark welcome email sent failed",
			slog.String("user_id", user.ID.String()),
			slog.String("error", err.Error()))
		return
	}

	s.log.InfoContext(ctx, "welcome email sent",
		slog.String("user_id", user.ID.String()))
}

// notFoundAsUnauthorized collapses ErrNotFound into ErrUnauthorized so login
// responses do not reveal whether an email is registered.
func notFoundAsUnauthorized(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrUnauthorized
	}
	return err
}
