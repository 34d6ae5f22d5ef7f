package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mindpath/mindpath-backend/internal/domain"
	"github.com/mindpath/mindpath-backend/internal/service/calendar"
)

// dateLayout is the wire format for calendar and tracker dates.
const dateLayout = "2006-01-02"

// calendarService defines the minimal interface needed by CalendarHandler.
type calendarService interface {
	Upsert(ctx context.Context, input calendar.UpsertInput) (*calendar.UpsertResult, error)
	ListByTheme(ctx context.Context, theme string) ([]domain.CalendarEntry, error)
}

// CalendarHandler serves annual-calendar endpoints.
type CalendarHandler struct {
	svc calendarService
	log *slog.Logger
}

// NewCalendarHandler creates a CalendarHandler.
func NewCalendarHandler(svc calendarService, logger *slog.Logger) *CalendarHandler {
	return &CalendarHandler{svc: svc, log: logger.With("handler", "calendar")}
}

type upsertEntryRequest struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Theme       string  `json:"theme"`
	TaskDate    string  `json:"taskDate"`
	TaskType    *int    `json:"taskType"`
	Description *string `json:"description"`
	ColorCode   *string `json:"colorCode"`
}

type upsertEntryData struct {
	ID     int64  `json:"id"`
	Action string `json:"action"`
}

type entryResponse struct {
	ID          int64  `json:"id"`
	Theme       string `json:"theme"`
	TaskDate    string `json:"taskDate"`
	TaskType    int    `json:"taskType"`
	Description string `json:"description"`
	ColorCode   string `json:"colorCode"`
}

// Upsert handles POST /calendar.
func (h *CalendarHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req upsertEntryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	taskDate, err := time.Parse(dateLayout, req.TaskDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{
			Success:    false,
			Message:    "validation failed",
			Diagnostic: "taskDate must be YYYY-MM-DD",
		})
		return
	}

	result, err := h.svc.Upsert(r.Context(), calendar.UpsertInput{
		UserName:    req.Name,
		UserEmail:   req.Email,
		Theme:       req.Theme,
		TaskDate:    taskDate,
		TaskType:    req.TaskType,
		Description: req.Description,
		ColorCode:   req.ColorCode,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	status := http.StatusOK
	if result.Action == calendar.ActionCreated {
		status = http.StatusCreated
	}
	respondOK(w, status, "entry saved", upsertEntryData{
		ID:     result.ID,
		Action: string(result.Action),
	})
}

// List handles GET /calendar/{theme}.
func (h *CalendarHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.ListByTheme(r.Context(), chi.URLParam(r, "theme"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	data := make([]entryResponse, len(entries))
	for i, e := range entries {
		data[i] = entryResponse{
			ID:          e.ID,
			Theme:       e.Theme,
			TaskDate:    e.TaskDate.Format(dateLayout),
			TaskType:    e.TaskType,
			Description: e.Description,
			ColorCode:   e.ColorCode,
		}
	}

	respondOK(w, http.StatusOK, "entries", data)
}
