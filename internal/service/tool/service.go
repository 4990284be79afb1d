package tool

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/speedsales/studio-backend/internal/domain"
	"github.com/speedsales/studio-backend/internal/provider"
)

type productRepo interface {
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Product, error)
	GetByUniqueID(ctx context.Context, userID uuid.UUID, uniqueID string) (*domain.Product, error)
	GetByNameFold(ctx context.Context, userID uuid.UUID, name string) (*domain.Product, error)
	SearchByName(ctx context.Context, userID uuid.UUID, substr string) ([]domain.Product, error)
	ListLowestStock(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Product, error)
	Create(ctx context.Context, userID uuid.UUID, p *domain.Product) (*domain.Product, error)
	DecrementStock(ctx context.Context, userID, id uuid.UUID, qty int) (*domain.StockChange, error)
	IncrementStock(ctx context.Context, userID, id uuid.UUID, qty int) (*domain.StockChange, error)
}

type orderRepo interface {
	Create(ctx context.Context, userID uuid.UUID, o *domain.Order) (*domain.Order, error)
}

type expenseRepo interface {
	Create(ctx context.Context, userID uuid.UUID, e *domain.Expense) (*domain.Expense, error)
}

type inquiryRepo interface {
	Create(ctx context.Context, userID uuid.UUID, in *domain.Inquiry) (*domain.Inquiry, error)
	CountByStatuses(ctx context.Context, userID uuid.UUID, statuses []domain.InquiryStatus) (domain.InquiryCounts, error)
	LatestByStatuses(ctx context.Context, userID uuid.UUID, statuses []domain.InquiryStatus) (*domain.Inquiry, error)
}

// Service executes tool calls requested by the model against the store.
type Service struct {
	products  productRepo
	orders    orderRepo
	expenses  expenseRepo
	inquiries inquiryRepo
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new tool Service.
func NewService(
	log *slog.Logger,
	products productRepo,
	orders orderRepo,
	expenses expenseRepo,
	inquiries inquiryRepo,
) *Service {
	return &Service{
		products:  products,
		orders:    orders,
		expenses:  expenses,
		inquiries: inquiries,
		log:       log.With("service", "tool"),
		now:       time.Now,
	}
}

// Specs returns the tool declarations sent to the model.
func (s *Service) Specs() []provider.ToolSpec {
	return Specs()
}

// Execute parses and runs one tool call for the actor. Every failure is
// reported in the returned Outcome; Execute never aborts the command.
func (s *Service) Execute(ctx context.Context, userID uuid.UUID, call provider.ToolCall) Outcome {
	c, err := Parse(call.Name, call.Arguments)
	if err != nil {
		var ae *ArgumentError
		switch {
		case errors.As(err, &ae):
			return failure(call.Name, "%s", ae.Msg)
		case errors.Is(err, ErrUnknownTool):
			s.log.WarnContext(ctx, "unknown tool requested", slog.String("tool", call.Name))
			return failure(call.Name, "Unknown tool.")
		default:
			return failure(call.Name, "Error: %s", err.Error())
		}
	}
	return s.Run(ctx, userID, c)
}

// Run executes an already parsed call.
func (s *Service) Run(ctx context.Context, userID uuid.UUID, c Call) Outcome {
	switch c := c.(type) {
	case ManageInventory:
		switch c.Action {
		case domain.InventoryActionRegister:
			return s.register(ctx, userID, c)
		case domain.InventoryActionSell:
			return s.sell(ctx, userID, c)
		default:
			return s.restock(ctx, userID, c)
		}
	case LogExpense:
		return s.logExpense(ctx, userID, c)
	case LogCSInquiry:
		return s.logInquiry(ctx, userID, c)
	case CheckInventory:
		return s.checkInventory(ctx, userID, c)
	case CheckCSStatus:
		return s.checkCSStatus(ctx, userID, c)
	default:
		return failure(c.ToolName(), "Unknown tool.")
	}
}

// storeFailure logs an unexpected store error and turns it into an in-band result.
func (s *Service) storeFailure(ctx context.Context, userID uuid.UUID, tool, what string, err error) Outcome {
	s.log.ErrorContext(ctx, "tool store failure",
		slog.String("user_id", userID.String()),
		slog.String("tool", tool),
		slog.String("op", what),
		slog.String("error", err.Error()),
	)
	return failure(tool, "Error: could not %s.", what)
}
