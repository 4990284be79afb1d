// Package catalog manages products, orders and the expense ledger outside
// the command interpreter.
package catalog

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/speedsales/studio-backend/internal/domain"
)

type productRepo interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.Product, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Product, error)
	Create(ctx context.Context, userID uuid.UUID, p *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, userID uuid.UUID, p *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type orderRepo interface {
	Create(ctx context.Context, userID uuid.UUID, o *domain.Order) (*domain.Order, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.Order, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type expenseRepo interface {
	ListBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.Expense, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides product, order and expense operations.
type Service struct {
	products productRepo
	orders   orderRepo
	expenses expenseRepo
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new catalog Service.
func NewService(
	log *slog.Logger,
	products productRepo,
	orders orderRepo,
	expenses expenseRepo,
	tx txManager,
) *Service {
	return &Service{
		products: products,
		orders:   orders,
		expenses: expenses,
		tx:       tx,
		log:      log.With("service", "catalog"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
