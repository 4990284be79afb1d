package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/speedsales/studio-backend/internal/domain"
)

// ListOrders returns the user's orders newest first.
func (s *Service) ListOrders(ctx context.Context, userID uuid.UUID) ([]domain.Order, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}
	orders, err := s.orders.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// CreateOrder records an order by hand. The product must belong to the user.
// Stock is not changed; manual orders document sales already reflected in stock.
func (s *Service) CreateOrder(ctx context.Context, userID uuid.UUID, input CreateOrderInput) (*domain.Order, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Order
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.products.GetByID(txCtx, userID, input.ProductID)
		if err != nil {
			return fmt.Errorf("get product: %w", err)
		}

		productID := p.ID
		created, err = s.orders.Create(txCtx, userID, &domain.Order{
			ID:           uuid.New(),
			ProductID:    &productID,
			Quantity:     input.Quantity,
			CustomerName: strings.TrimSpace(input.CustomerName),
			Channel:      input.Channel.OrDefault(),
			TotalPrice:   decimal.Zero,
			Status:       domain.OrderStatusPaid,
			ProductName:  &p.ProductName,
		})
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "order created",
		slog.String("user_id", userID.String()),
		slog.String("order_id", created.ID.String()),
		slog.Int("quantity", created.Quantity),
	)
	return created, nil
}

// DeleteOrder removes an order. Stock is not restored.
func (s *Service) DeleteOrder(ctx context.Context, userID, orderID uuid.UUID) error {
	if userID == uuid.Nil {
		return domain.ErrUnauthorized
	}
	if err := s.orders.Delete(ctx, userID, orderID); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}
