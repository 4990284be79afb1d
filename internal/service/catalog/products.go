package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/speedsales/studio-backend/internal/domain"
)

// ListProducts returns the user's products ordered by name.
func (s *Service) ListProducts(ctx context.Context, userID uuid.UUID) ([]domain.Product, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}
	products, err := s.products.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// CreateProduct adds a product with the given starting stock.
func (s *Service) CreateProduct(ctx context.Context, userID uuid.UUID, input ProductInput) (*domain.Product, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p, err := s.products.Create(ctx, userID, &domain.Product{
		ID:          uuid.New(),
		ProductName: strings.TrimSpace(input.ProductName),
		UniqueID:    trimOrNil(input.UniqueID),
		StockCount:  max(0, input.StockCount),
	})
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.log.InfoContext(ctx, "product created",
		slog.String("user_id", userID.String()),
		slog.String("product_id", p.ID.String()),
	)
	return p, nil
}

// UpdateProduct overwrites name, unique id and stock. Sold count is kept.
func (s *Service) UpdateProduct(ctx context.Context, userID, productID uuid.UUID, input ProductInput) (*domain.Product, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}
	if productID == uuid.Nil {
		return nil, domain.NewValidationError("product_id", "required")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p, err := s.products.Update(ctx, userID, &domain.Product{
		ID:          productID,
		ProductName: strings.TrimSpace(input.ProductName),
		UniqueID:    trimOrNil(input.UniqueID),
		StockCount:  max(0, input.StockCount),
	})
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return p, nil
}

// DeleteProduct removes a product. Its orders remain without a product link.
func (s *Service) DeleteProduct(ctx context.Context, userID, productID uuid.UUID) error {
	if userID == uuid.Nil {
		return domain.ErrUnauthorized
	}
	if err := s.products.Delete(ctx, userID, productID); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	s.log.InfoContext(ctx, "product deleted",
		slog.String("user_id", userID.String()),
		slog.String("product_id", productID.String()),
	)
	return nil
}
