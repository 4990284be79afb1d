// Package copywriter generates fact-only marketing copy for a product.
package copywriter

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/speedsales/studio-backend/internal/domain"
	"github.com/speedsales/studio-backend/internal/provider"
)

const (
	DefaultTone      = "Simple"
	DefaultListLimit = 20
	maxListLimit     = 100
)

type chatClient interface {
	Chat(ctx context.Context, req provider.ChatRequest) (*provider.ChatResponse, error)
}

type copyRepo interface {
	Create(ctx context.Context, userID uuid.UUID, c *domain.MarketingCopy) (*domain.MarketingCopy, error)
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.MarketingCopy, error)
}

// Service generates and stores marketing copy.
type Service struct {
	llm    chatClient
	copies copyRepo
	log    *slog.Logger
}

// NewService creates a copywriter Service. llm may be nil when no backend is
// configured; Generate then fails with domain.ErrNotConfigured.
func NewService(log *slog.Logger, llm chatClient, copies copyRepo) *Service {
	return &Service{
		llm:    llm,
		copies: copies,
		log:    log.With("service", "copywriter"),
	}
}
