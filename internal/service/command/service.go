// Package command interprets free-text shop notes by running a bounded
// tool-calling conversation with the language model.
package command

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/speedsales/studio-backend/internal/config"
	"github.com/speedsales/studio-backend/internal/domain"
	"github.com/speedsales/studio-backend/internal/provider"
	"github.com/speedsales/studio-backend/internal/service/tool"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
	maxCommandLen       = 4000
)

type chatClient interface {
	Chat(ctx context.Context, req provider.ChatRequest) (*provider.ChatResponse, error)
}

type toolRunner interface {
	Specs() []provider.ToolSpec
	Execute(ctx context.Context, userID uuid.UUID, call provider.ToolCall) tool.Outcome
}

type logRepo interface {
	Create(ctx context.Context, userID uuid.UUID, content, aiResponse string) (*domain.LogEntry, error)
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LogEntry, error)
}

type idempotencyStore interface {
	Begin(ctx context.Context, scope, key string) ([]byte, error)
	Complete(ctx context.Context, scope, key string, payload []byte) error
	Release(ctx context.Context, scope, key string) error
}

// Service is the command interpreter.
type Service struct {
	llm           chatClient
	tools         toolRunner
	logs          logRepo
	idem          idempotencyStore
	log           *slog.Logger
	maxIterations int
	historyLimit  int
}

// NewService creates a command Service. llm may be nil when no backend is
// configured; Interpret then fails with domain.ErrNotConfigured.
func NewService(
	log *slog.Logger,
	llm chatClient,
	tools toolRunner,
	logs logRepo,
	cfg config.InterpreterConfig,
) *Service {
	return &Service{
		llm:           llm,
		tools:         tools,
		logs:          logs,
		log:           log.With("service", "command"),
		maxIterations: cfg.MaxIterations,
		historyLimit:  cfg.HistoryLimit,
	}
}

// WithIdempotency enables replay of keyed requests through store.
func (s *Service) WithIdempotency(store idempotencyStore) *Service {
	s.idem = store
	return s
}

// Result is the answer to one command.
type Result struct {
	Summary    string     `json:"message"`
	LogEntryID *uuid.UUID `json:"logId,omitempty"`
}
