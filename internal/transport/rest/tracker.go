package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/mindpath/mindpath-backend/internal/domain"
	"github.com/mindpath/mindpath-backend/internal/service/tracker"
)

// trackerService defines the minimal interface needed by TrackerHandler.
type trackerService interface {
	Reconcile(ctx context.Context, input tracker.ReconcileInput) ([]tracker.ReconcileResult, error)
	Increment(ctx context.Context, input tracker.IncrementInput) (int, error)
	ListByUser(ctx context.Context) ([]domain.ActivityCounter, error)
}

// TrackerHandler serves the "mind tools" activity counter endpoints.
type TrackerHandler struct {
	svc trackerService
	log *slog.Logger
}

// NewTrackerHandler creates a TrackerHandler.
func NewTrackerHandler(svc trackerService, logger *slog.Logger) *TrackerHandler {
	return &TrackerHandler{svc: svc, log: logger.With("handler", "tracker")}
}

type reconcileItemRequest struct {
	Tracker string `json:"tracker"`
	Date    string `json:"date"`
	Count   *int   `json:"count"`
}

type reconcileRequest struct {
	Name  string                 `json:"name"`
	Email string                 `json:"email"`
	Items []reconcileItemRequest `json:"items"`
}

type reconcileItemResult struct {
	Tracker    string `json:"tracker"`
	Date       string `json:"date"`
	FinalCount int    `json:"finalCount"`
	Action     string `json:"action"`
}

type incrementRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Tracker string `json:"tracker"`
	Date    string `json:"date"`
}

type incrementData struct {
	FinalCount int `json:"finalCount"`
}

type counterResponse struct {
	Tracker string `json:"tracker"`
	Date    string `json:"date"`
	Count   int    `json:"count"`
}

// Sync handles POST /trackers/sync. Each batch item succeeds or fails on its
// own; the response always carries one result per input item, in order.
func (h *TrackerHandler) Sync(w http.ResponseWriter, r *http.Request) {
	var req reconcileRequest
	if !decodeBody(w, r, &req) {
		return
	}

	items := make([]tracker.ReconcileItem, len(req.Items))
	for i, item := range req.Items {
		// An unparseable date leaves the zero time, which the service
		// reports back as a failed item rather than aborting the batch.
		date, _ := time.Parse(dateLayout, item.Date)
		items[i] = tracker.ReconcileItem{
			Tracker: domain.TrackerType(item.Tracker),
			Date:    date,
			Count:   item.Count,
		}
	}

	results, err := h.svc.Reconcile(r.Context(), tracker.ReconcileInput{
		UserName:  req.Name,
		UserEmail: req.Email,
		Items:     items,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	data := make([]reconcileItemResult, len(results))
	for i, res := range results {
		data[i] = reconcileItemResult{
			Tracker:    res.Tracker.String(),
			Date:       req.Items[i].Date,
			FinalCount: res.FinalCount,
			Action:     string(res.Action),
		}
	}

	respondOK(w, http.StatusOK, "counters reconciled", data)
}

// Increment handles POST /trackers/increment.
func (h *TrackerHandler) Increment(w http.ResponseWriter, r *http.Request) {
	var req incrementRequest
	if !decodeBody(w, r, &req) {
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{
			Success:    false,
			Message:    "validation failed",
			Diagnostic: "date must be YYYY-MM-DD",
		})
		return
	}

	final, err := h.svc.Increment(r.Context(), tracker.IncrementInput{
		UserName:  req.Name,
		UserEmail: req.Email,
		Tracker:   domain.TrackerType(req.Tracker),
		Date:      date,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	respondOK(w, http.StatusOK, "counter incremented", incrementData{FinalCount: final})
}

// List handles GET /trackers.
func (h *TrackerHandler) List(w http.ResponseWriter, r *http.Request) {
	counters, err := h.svc.ListByUser(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	data := make([]counterResponse, len(counters))
	for i, c := range counters {
		data[i] = counterResponse{
			Tracker: c.Tracker.String(),
			Date:    c.ActivityDate.Format(dateLayout),
			Count:   c.Count,
		}
	}

	respondOK(w, http.StatusOK, "counters", data)
}
