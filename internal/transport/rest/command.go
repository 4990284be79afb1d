package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/speedsales/studio-backend/internal/domain"
	"github.com/speedsales/studio-backend/internal/service/command"
)

// IdempotencyKeyHeader lets clients retry POST /command safely.
const IdempotencyKeyHeader = "Idempotency-Key"

type commandService interface {
	Interpret(ctx context.Context, userID uuid.UUID, content string) (*command.Result, error)
	InterpretOnce(ctx context.Context, userID uuid.UUID, key, content string) (*command.Result, error)
	History(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LogEntry, error)
}

// CommandHandler serves the natural-language command endpoint.
type CommandHandler struct {
	svc commandService
	log *slog.Logger
}

// NewCommandHandler creates a CommandHandler.
func NewCommandHandler(svc commandService, logger *slog.Logger) *CommandHandler {
	return &CommandHandler{svc: svc, log: logger.With("handler", "command")}
}

type commandRequest struct {
	Content string `json:"content"`
}

type logEntryResponse struct {
	ID         uuid.UUID `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	Content    string    `json:"content"`
	AIResponse string    `json:"ai_response"`
}

type historyResponse struct {
	Logs []logEntryResponse `json:"logs"`
}

// Post handles POST /command.
func (h *CommandHandler) Post(w http.ResponseWriter, r *http.Request) {
	userID, ok := actorID(w, r)
	if !ok {
		return
	}
	var req commandRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var (
		res *command.Result
		err error
	)
	if key := r.Header.Get(IdempotencyKeyHeader); key != "" {
		res, err = h.svc.InterpretOnce(r.Context(), userID, key, req.Content)
	} else {
		res, err = h.svc.Interpret(r.Context(), userID, req.Content)
	}
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			writeError(w, http.StatusConflict, "A request with this Idempotency-Key is still in progress")
			return
		}
		respondError(w, r, h.log, err, "Command failed")
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// History handles GET /command.
func (h *CommandHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := actorID(w, r)
	if !ok {
		return
	}
	limit, ok := intQuery(w, r, "limit")
	if !ok {
		return
	}

	entries, err := h.svc.History(r.Context(), userID, limit)
	if err != nil {
		respondError(w, r, h.log, err, "Could not load history")
		return
	}

	resp := historyResponse{Logs: make([]logEntryResponse, len(entries))}
	for i, e := range entries {
		resp.Logs[i] = logEntryResponse{ID: e.ID, CreatedAt: e.CreatedAt, Content: e.Content, AIResponse: e.AIResponse}
	}
	writeJSON(w, http.StatusOK, resp)
}
