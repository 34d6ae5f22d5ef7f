// Package rest wires the HTTP surface: chi router, JSON handlers, and the
// uniform response envelope.
package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"github.com/mindpath/mindpath-backend/internal/config"
	"github.com/mindpath/mindpath-backend/internal/domain"
	"github.com/mindpath/mindpath-backend/internal/transport/middleware"
)

// identityResolver is what the auth middleware needs to turn a bearer token
// into a caller identity.
type identityResolver interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth     *AuthHandler
	Profile  *ProfileHandler
	Board    *BoardHandler
	Calendar *CalendarHandler
	Tracker  *TrackerHandler
	Health   *HealthHandler
}

// RouterDeps carries the cross-cutting pieces the router needs besides the
// handlers themselves.
type RouterDeps struct {
	Logger        *slog.Logger
	Resolver      identityResolver
	LegacyEnabled bool
	CORS          config.CORSConfig
	RateLimiter   *middleware.RateLimiter
}

// NewRouter builds the chi router with the full middleware chain. Auth
// endpoints sit behind a per-IP rate limit; everything else behind the
// identity gate.
func NewRouter(h Handlers, deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   splitCSV(deps.CORS.AllowedOrigins),
		AllowedMethods:   splitCSV(deps.CORS.AllowedMethods),
		AllowedHeaders:   splitCSV(deps.CORS.AllowedHeaders),
		AllowCredentials: deps.CORS.AllowCredentials,
		MaxAge:           deps.CORS.MaxAge,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.Logger(deps.Logger))

	r.Get("/health", h.Health.Health)
	r.Get("/health/live", h.Health.Live)
	r.Get("/health/ready", h.Health.Ready)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			if deps.RateLimiter != nil {
				r.Use(deps.RateLimiter.Limit(30))
			}
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/login/external", h.Auth.LoginExternal)
			r.Post("/refresh", h.Auth.Refresh)
			r.Post("/logout", h.Auth.Logout)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(deps.Resolver, deps.LegacyEnabled, deps.Logger))

			r.Get("/me", h.Profile.Get)
			r.Patch("/me", h.Profile.Update)

			r.Post("/cards", h.Board.Save)
			r.Get("/boards/{table}/{theme}", h.Board.List)

			r.Post("/calendar", h.Calendar.Upsert)
			r.Get("/calendar/{theme}", h.Calendar.List)

			r.Post("/trackers/sync", h.Tracker.Sync)
			r.Post("/trackers/increment", h.Tracker.Increment)
			r.Get("/trackers", h.Tracker.List)
		})
	})

	return r
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
