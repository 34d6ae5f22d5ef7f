package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user.
// PasswordHash is nil for users created through external-identity sign-in
// who never set a password. ExternalID holds the provider's stable user id
// for those accounts. WelcomeEmailSent flips to true after the welcome
// email has been delivered at least once.
type User struct {
	ID               uuid.UUID
	Email            string
	Name             string
	PasswordHash     *string
	ExternalID       *string
	WelcomeEmailSent bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
