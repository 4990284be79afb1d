package tool

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/speedsales/studio-backend/internal/domain"
)

const lowStockLimit = 5

const msgProductNotFound = "Error: Product not found. Please register it first."

// findProduct looks the product up by unique id first, then by
// case-insensitive exact name. A miss returns (nil, nil).
func (s *Service) findProduct(ctx context.Context, userID uuid.UUID, name, uniqueID string) (*domain.Product, error) {
	if uniqueID != "" {
		p, err := s.products.GetByUniqueID(ctx, userID, uniqueID)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}

	p, err := s.products.GetByNameFold(ctx, userID, name)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return p, err
}

func (s *Service) register(ctx context.Context, userID uuid.UUID, c ManageInventory) Outcome {
	existing, err := s.findProduct(ctx, userID, c.ProductName, c.UniqueID)
	if err != nil {
		return s.storeFailure(ctx, userID, c.ToolName(), "look up product", err)
	}
	if existing != nil {
		return failure(c.ToolName(), "Error: Product already exists. Did you mean to update stock?")
	}

	p := &domain.Product{
		ID:          uuid.New(),
		ProductName: c.ProductName,
		StockCount:  c.Quantity,
		CreatedAt:   s.now().UTC(),
	}
	if c.UniqueID != "" {
		uid := c.UniqueID
		p.UniqueID = &uid
	}

	created, err := s.products.Create(ctx, userID, p)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return failure(c.ToolName(), "Error: Product already exists. Did you mean to update stock?")
		}
		return s.storeFailure(ctx, userID, c.ToolName(), "register product", err)
	}

	s.log.InfoContext(ctx, "product registered",
		slog.String("user_id", userID.String()),
		slog.String("product_id", created.ID.String()),
		slog.Int("stock", created.StockCount),
	)

	return success(c.ToolName(), "Registered new product: %s (ID: %s) with %d ea.",
		created.ProductName, created.DisplayID(), c.Quantity)
}

// sell moves stock to sold with one conditional update, then records the order.
// The two writes are not transactional; a failed order insert is reported
// in the outcome and the stock change stands.
func (s *Service) sell(ctx context.Context, userID uuid.UUID, c ManageInventory) Outcome {
	existing, err := s.findProduct(ctx, userID, c.ProductName, c.UniqueID)
	if err != nil {
		return s.storeFailure(ctx, userID, c.ToolName(), "look up product", err)
	}
	if existing == nil {
		return failure(c.ToolName(), msgProductNotFound)
	}
	if existing.StockCount < c.Quantity {
		return insufficient(c, existing)
	}

	change, err := s.products.DecrementStock(ctx, userID, existing.ID, c.Quantity)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			// Stock changed between the read and the update.
			if cur, gerr := s.products.GetByID(ctx, userID, existing.ID); gerr == nil {
				existing = cur
			}
			return insufficient(c, existing)
		}
		return s.storeFailure(ctx, userID, c.ToolName(), "update stock", err)
	}

	result := &SellResult{StockUpdated: true}
	text := sprintSale(c.Quantity, change)

	productID := change.Product.ID
	_, err = s.orders.Create(ctx, userID, &domain.Order{
		ID:           uuid.New(),
		ProductID:    &productID,
		Quantity:     c.Quantity,
		CustomerName: c.CustomerName,
		Channel:      c.Channel,
		TotalPrice:   decimal.Zero,
		Status:       domain.OrderStatusPaid,
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		s.log.ErrorContext(ctx, "order record failed after stock update",
			slog.String("user_id", userID.String()),
			slog.String("product_id", productID.String()),
			slog.Int("quantity", c.Quantity),
			slog.String("error", err.Error()),
		)
		text += " (Order record failed: the sale was not saved as an order.)"
	} else {
		result.OrderRecorded = true
	}

	return Outcome{Tool: c.ToolName(), Kind: KindSale, Text: text, Sell: result}
}

func sprintSale(qty int, ch *domain.StockChange) string {
	return "Sold " + strconv.Itoa(qty) + ". Stock: " + strconv.Itoa(ch.StockBefore) + " -> " + strconv.Itoa(ch.Product.StockCount) +
		". Total Sold: " + strconv.Itoa(ch.Product.SoldCount) + "."
}

func insufficient(c ManageInventory, p *domain.Product) Outcome {
	return failure(c.ToolName(), "Error: Insufficient stock. %s has %d (need %d).", p.ProductName, p.StockCount, c.Quantity)
}

func (s *Service) restock(ctx context.Context, userID uuid.UUID, c ManageInventory) Outcome {
	existing, err := s.findProduct(ctx, userID, c.ProductName, c.UniqueID)
	if err != nil {
		return s.storeFailure(ctx, userID, c.ToolName(), "look up product", err)
	}
	if existing == nil {
		return failure(c.ToolName(), msgProductNotFound)
	}

	change, err := s.products.IncrementStock(ctx, userID, existing.ID, c.Quantity)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return failure(c.ToolName(), msgProductNotFound)
		}
		return s.storeFailure(ctx, userID, c.ToolName(), "update stock", err)
	}

	return success(c.ToolName(), "Restocked %s +%d. New stock: %d (was %d).",
		change.Product.ProductName, c.Quantity, change.Product.StockCount, change.StockBefore)
}

func (s *Service) checkInventory(ctx context.Context, userID uuid.UUID, c CheckInventory) Outcome {
	if c.ProductName == "" {
		rows, err := s.products.ListLowestStock(ctx, userID, lowStockLimit)
		if err != nil {
			return s.storeFailure(ctx, userID, c.ToolName(), "read inventory", err)
		}
		if len(rows) == 0 {
			return info(c.ToolName(), "No products in inventory.")
		}
		parts := make([]string, len(rows))
		for i, p := range rows {
			parts[i] = p.ProductName + ": " + strconv.Itoa(p.StockCount) + " ea."
		}
		return info(c.ToolName(), "Low stock (top %d): %s", lowStockLimit, strings.Join(parts, " "))
	}

	rows, err := s.products.SearchByName(ctx, userID, c.ProductName)
	if err != nil {
		return s.storeFailure(ctx, userID, c.ToolName(), "read inventory", err)
	}
	if len(rows) == 0 {
		return info(c.ToolName(), "Product not found.")
	}
	parts := make([]string, len(rows))
	for i, p := range rows {
		parts[i] = "Found " + p.ProductName + ": " + strconv.Itoa(p.StockCount) + " ea."
	}
	return info(c.ToolName(), "%s", strings.Join(parts, " "))
}
