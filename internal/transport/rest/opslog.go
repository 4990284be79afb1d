package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/speedsales/studio-backend/internal/domain"
	"github.com/speedsales/studio-backend/internal/service/operations"
)

type opsLogService interface {
	ListEntries(ctx context.Context, userID uuid.UUID, input operations.ListInput) ([]domain.OpsLogEntry, error)
	CreateEntry(ctx context.Context, userID uuid.UUID, input operations.CreateInput) (*domain.OpsLogEntry, error)
	UpdateEntry(ctx context.Context, userID, entryID uuid.UUID, input operations.UpdateInput) (*domain.OpsLogEntry, error)
	DeleteEntry(ctx context.Context, userID, entryID uuid.UUID) error
}

// OpsLogHandler serves the operations log.
type OpsLogHandler struct {
	svc opsLogService
	log *slog.Logger
}

// NewOpsLogHandler creates an OpsLogHandler.
func NewOpsLogHandler(svc opsLogService, logger *slog.Logger) *OpsLogHandler {
	return &OpsLogHandler{svc: svc, log: logger.With("handler", "opslog")}
}

type opsLogRequest struct {
	Content string `json:"content"`
	Kind    string `json:"kind"`
}

type opsLogResponse struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

// List handles GET /operations-log?kind=.
func (h *OpsLogHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := actorID(w, r)
	if !ok {
		return
	}
	list, err := h.svc.ListEntries(r.Context(), userID, operations.ListInput{Kind: r.URL.Query().Get("kind")})
	if err != nil {
		respondError(w, r, h.log, err, "Could not load operations log")
		return
	}
	out := make([]opsLogResponse, len(list))
	for i := range list {
		out[i] = toOpsLogResponse(&list[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": out})
}

// Create handles POST /operations-log.
func (h *OpsLogHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := actorID(w, r)
	if !ok {
		return
	}
	var req opsLogRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	e, err := h.svc.CreateEntry(r.Context(), userID, operations.CreateInput{Content: req.Content, Kind: req.Kind})
	if err != nil {
		respondError(w, r, h.log, err, "Could not create entry")
		return
	}
	writeJSON(w, http.StatusCreated, toOpsLogResponse(e))
}

// Update handles PUT /operations-log/{id}.
func (h *OpsLogHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := actorID(w, r)
	if !ok {
		return
	}
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	var req opsLogRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	e, err := h.svc.UpdateEntry(r.Context(), userID, id, operations.UpdateInput{Content: req.Content, Kind: req.Kind})
	if err != nil {
		respondError(w, r, h.log, err, "Could not update entry")
		return
	}
	writeJSON(w, http.StatusOK, toOpsLogResponse(e))
}

// Delete handles DELETE /operations-log/{id}.
func (h *OpsLogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := actorID(w, r)
	if !ok {
		return
	}
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteEntry(r.Context(), userID, id); err != nil {
		respondError(w, r, h.log, err, "Could not delete entry")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toOpsLogResponse(e *domain.OpsLogEntry) opsLogResponse {
	return opsLogResponse{
		ID:        e.ID,
		Content:   e.Content,
		Kind:      e.Kind.String(),
		CreatedAt: e.CreatedAt,
	}
}
