package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/mindpath/mindpath-backend/internal/auth"
	"github.com/mindpath/mindpath-backend/internal/domain"
	"github.com/mindpath/mindpath-backend/pkg/ctxutil"
)

// identityResolver turns a signed access token into a user.
type identityResolver interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Auth resolves the Authorization header into a caller identity and attaches
// it to the request context. Two credential shapes are accepted:
//
//   - "Bearer <jwt>": verified signature, the subject's user row supplies
//     name and email;
//   - "Bearer <name>:<email>": the deprecated plain credential kept for old
//     mobile clients. Accepted only while legacyEnabled is true, carries no
//     user id, and every use is logged at Warn.
//
// Requests without a header pass through anonymous; protected operations
// reject those in the service layer.
func Auth(resolver identityResolver, legacyEnabled bool, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}

			userID, err := resolver.ValidateToken(r.Context(), token)
			if err == nil {
				user, err := resolver.GetUserByID(r.Context(), userID)
				if err != nil {
					if errors.Is(err, domain.ErrNotFound) {
						rejectJSON(w, http.StatusNotFound, "not found",
							"no user for token subject")
						return
					}
					rejectJSON(w, http.StatusInternalServerError, "internal server error",
						"identity lookup failed")
					return
				}
				ctx := ctxutil.WithIdentity(r.Context(), domain.Identity{
					UserID: user.ID,
					Name:   user.Name,
					Email:  user.Email,
				})
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			if legacyEnabled {
				if name, email, lerr := auth.ParseLegacyCredential(token); lerr == nil {
					logger.WarnContext(r.Context(), "legacy credential used",
						slog.String("email", email))
					ctx := ctxutil.WithIdentity(r.Context(), domain.Identity{
						Name:   name,
						Email:  email,
						Legacy: true,
					})
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
			}

			rejectJSON(w, http.StatusUnauthorized, "authentication required",
				"invalid or missing credential")
		})
	}
}

// rejectJSON writes a failure response in the same envelope shape the REST
// handlers use, so clients parse gate rejections like any other error.
func rejectJSON(w http.ResponseWriter, status int, message, diagnostic string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(struct { //nolint:errcheck
		Success    bool   `json:"success"`
		Message    string `json:"message"`
		Diagnostic string `json:"diagnostic,omitempty"`
	}{
		Success:    false,
		Message:    message,
		Diagnostic: diagnostic,
	})
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}
