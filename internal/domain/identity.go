package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Identity is the caller identity derived from the Authorization header.
// For a signed token the UserID is set and Name/Email come from the user row.
// For the deprecated plain "name:email" credential only Name/Email are set
// and Legacy is true.
type Identity struct {
	UserID uuid.UUID
	Name   string
	Email  string
	Legacy bool
}

// Owns reports whether the identity owns a resource claimed for the given
// name and email. The comparison is exact on name and case-insensitive on
// email, matching how emails are normalized at registration.
func (id Identity) Owns(name, email string) bool {
	return id.Name == name && strings.EqualFold(id.Email, email)
}
