package auth

import (
	"fmt"
	"strings"
)

// ParseLegacyCredential splits the deprecated plain "name:email" bearer
// credential on its first colon. Both parts must be non-empty. The scheme
// carries no cryptographic protection — anyone who knows a user's name and
// email can present it — which is why it is config-gated and slated for
// removal once old mobile clients are gone.
func ParseLegacyCredential(token string) (name, email string, err error) {
	name, email, found := strings.Cut(token, ":")
	if !found {
		return "", "", fmt.Errorf("legacy credential: missing separator")
	}

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return "", "", fmt.Errorf("legacy credential: name and email are required")
	}

	return name, email, nil
}
