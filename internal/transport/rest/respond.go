package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mindpath/mindpath-backend/internal/domain"
)

// envelope is the uniform response body. Every response carries a success
// flag and a human-readable message; error responses additionally carry a
// diagnostic string meant for logs, not for end users.
type envelope struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Data       any    `json:"data,omitempty"`
	Diagnostic string `json:"diagnostic,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// respondOK writes a success envelope.
func respondOK(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// respondError maps a service error onto an HTTP status and writes a failure
// envelope. Unrecognized errors become a generic 500; the cause goes to the
// log, a terse diagnostic into the body.
func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var verr *domain.ValidationError

	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, envelope{
			Success:    false,
			Message:    "validation failed",
			Diagnostic: verr.Error(),
		})
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusBadRequest, envelope{
			Success:    false,
			Message:    "validation failed",
			Diagnostic: err.Error(),
		})
	case errors.Is(err, domain.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, envelope{
			Success:    false,
			Message:    "authentication required",
			Diagnostic: "invalid or missing credential",
		})
	case errors.Is(err, domain.ErrForbidden):
		writeJSON(w, http.StatusForbidden, envelope{
			Success:    false,
			Message:    "not allowed",
			Diagnostic: "identity does not own the target resource",
		})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, envelope{
			Success:    false,
			Message:    "not found",
			Diagnostic: err.Error(),
		})
	case errors.Is(err, domain.ErrAlreadyExists):
		writeJSON(w, http.StatusConflict, envelope{
			Success:    false,
			Message:    "already exists",
			Diagnostic: err.Error(),
		})
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, envelope{
			Success:    false,
			Message:    "internal server error",
			Diagnostic: "persistence failure",
		})
	}
}

// decodeBody parses a JSON request body into dst.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{
			Success:    false,
			Message:    "invalid request body",
			Diagnostic: err.Error(),
		})
		return false
	}
	return true
}
