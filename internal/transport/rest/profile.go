package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/mindpath/mindpath-backend/internal/domain"
	"github.com/mindpath/mindpath-backend/internal/service/user"
)

// userService defines the minimal interface needed by ProfileHandler.
type userService interface {
	GetProfile(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)
}

// ProfileHandler serves the authenticated user's profile endpoints.
type ProfileHandler struct {
	svc userService
	log *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc userService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

type updateProfileRequest struct {
	Name string `json:"name"`
}

// Get handles GET /me.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetProfile(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	respondOK(w, http.StatusOK, "profile", userResponse{
		ID:    u.ID.String(),
		Email: u.Email,
		Name:  u.Name,
	})
}

// Update handles PATCH /me.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if !decodeBody(w, r, &req) {
		return
	}

	u, err := h.svc.UpdateProfile(r.Context(), user.UpdateProfileInput{Name: req.Name})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	respondOK(w, http.StatusOK, "profile updated", userResponse{
		ID:    u.ID.String(),
		Email: u.Email,
		Name:  u.Name,
	})
}
