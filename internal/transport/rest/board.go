package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mindpath/mindpath-backend/internal/domain"
	"github.com/mindpath/mindpath-backend/internal/service/board"
)

// boardService defines the minimal interface needed by BoardHandler.
type boardService interface {
	Save(ctx context.Context, input board.SaveInput) (*board.SaveResult, error)
	List(ctx context.Context, input board.ListInput) ([]domain.BoardCard, error)
}

// BoardHandler serves the generic card save path for the vision board and
// the weekly planner.
type BoardHandler struct {
	svc boardService
	log *slog.Logger
}

// NewBoardHandler creates a BoardHandler.
func NewBoardHandler(svc boardService, logger *slog.Logger) *BoardHandler {
	return &BoardHandler{svc: svc, log: logger.With("handler", "board")}
}

type taskItem struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

type saveCardRequest struct {
	Table  string     `json:"table"`
	Name   string     `json:"name"`
	Email  string     `json:"email"`
	Theme  string     `json:"theme"`
	CardID string     `json:"cardId"`
	Tasks  []taskItem `json:"tasks"`
}

type saveCardData struct {
	ID     int64  `json:"id"`
	Action string `json:"action"`
}

type cardResponse struct {
	ID        int64      `json:"id"`
	Theme     string     `json:"theme"`
	CardID    string     `json:"cardId"`
	Tasks     []taskItem `json:"tasks"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Save handles POST /cards. The table field selects which board is written;
// anything outside the allowlist is rejected before a query runs.
func (h *BoardHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveCardRequest
	if !decodeBody(w, r, &req) {
		return
	}

	tasks := make([]domain.TaskItem, len(req.Tasks))
	for i, t := range req.Tasks {
		tasks[i] = domain.TaskItem(t)
	}

	result, err := h.svc.Save(r.Context(), board.SaveInput{
		Table:     req.Table,
		UserName:  req.Name,
		UserEmail: req.Email,
		Theme:     req.Theme,
		CardID:    req.CardID,
		Tasks:     tasks,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	status := http.StatusOK
	if result.Action == board.ActionCreated {
		status = http.StatusCreated
	}
	respondOK(w, status, "card saved", saveCardData{
		ID:     result.ID,
		Action: string(result.Action),
	})
}

// List handles GET /boards/{table}/{theme}.
func (h *BoardHandler) List(w http.ResponseWriter, r *http.Request) {
	cards, err := h.svc.List(r.Context(), board.ListInput{
		Table: chi.URLParam(r, "table"),
		Theme: chi.URLParam(r, "theme"),
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	data := make([]cardResponse, len(cards))
	for i, c := range cards {
		tasks := make([]taskItem, len(c.Tasks))
		for j, t := range c.Tasks {
			tasks[j] = taskItem(t)
		}
		data[i] = cardResponse{
			ID:        c.ID,
			Theme:     c.Theme,
			CardID:    c.CardID,
			Tasks:     tasks,
			UpdatedAt: c.UpdatedAt,
		}
	}

	respondOK(w, http.StatusOK, "cards", data)
}
