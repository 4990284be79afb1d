package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/speedsales/studio-backend/internal/domain"
	"github.com/speedsales/studio-backend/internal/service/catalog"
)

const dateLayout = "2006-01-02"

type catalogService interface {
	ListProducts(ctx context.Context, userID uuid.UUID) ([]domain.Product, error)
	CreateProduct(ctx context.Context, userID uuid.UUID, input catalog.ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, userID, productID uuid.UUID, input catalog.ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, userID, productID uuid.UUID) error
	ListOrders(ctx context.Context, userID uuid.UUID) ([]domain.Order, error)
	CreateOrder(ctx context.Context, userID uuid.UUID, input catalog.CreateOrderInput) (*domain.Order, error)
	DeleteOrder(ctx context.Context, userID, orderID uuid.UUID) error
	ListExpenses(ctx context.Context, userID uuid.UUID, input catalog.ListExpensesInput) ([]domain.Expense, error)
}

// CatalogHandler serves products, orders and expenses.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
	now func() time.Time
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalog"), now: time.Now}
}

type productRequest struct {
	ProductName string  `json:"product_name"`
	UniqueID    *string `json:"unique_id"`
	StockCount  int     `json:"stock_count"`
}

type productResponse struct {
	ID          uuid.UUID `json:"id"`
	ProductName string    `json:"product_name"`
	UniqueID    *string   `json:"unique_id"`
	StockCount  int       `json:"stock_count"`
	SoldCount   int       `json:"sold_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type orderRequest struct {
	ProductID    uuid.UUID `json:"product_id"`
	Quantity     int       `json:"quantity"`
	CustomerName string    `json:"customer_name"`
	Channel      string    `json:"channel"`
}

type orderResponse struct {
	ID           uuid.UUID       `json:"id"`
	ProductID    *uuid.UUID      `json:"product_id"`
	ProductName  *string         `json:"product_name"`
	Quantity     int             `json:"quantity"`
	CustomerName string          `json:"customer_name"`
	Channel      string          `json:"channel"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}

type expenseResponse struct {
	ID          uuid.UUID `json:"id"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	Amount      int64     `json:"amount"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListProducts handles GET /products.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	userID, ok := actorID(w, r)
	if !ok {
		return
	}
	products, err := h.svc.ListProducts(r.Context(), userID)
	if err != nil {
		respondError(w, r, h.log, err, "Could not load products")
		return
	}
	out := make([]productResponse, len(products))
	for i := range products {
		out[i] = toProductResponse(&products[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{"products": out})
}

// CreateProduct handles POST /products.
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	userID, ok := actorID(w, r)
	if !ok {
		return
	}
	var req productRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	p, err := h.svc.CreateProduct(r.Context(), userID, req.input())
	if err != nil {
		respondError(w, r, h.log, err, "Could not create product")
		return
	}
	writeJSON(w, http.StatusCreated, toProductResponse(p))
}

// UpdateProduct handles PUT /products/{id}.
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	userID, ok := actorID(w, r)
	if !ok {
		return
	}
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	var req productRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	p, err := h.svc.UpdateProduct(r.Context(), userID, id, req.input())
	if err != nil {
		respondError(w, r, h.log, err, "Could not update product")
		return
	}
	writeJSON(w, http.StatusOK, toProductResponse(p))
}

// DeleteProduct handles DELETE /products/{id}.
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	userID, ok := actorID(w, r)
	if !ok {
		return
	}
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteProduct(r.Context(), userID, id); err != nil {
		respondError(w, r, h.log, err, "Could not delete product")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListOrders handles GET /orders.
func (h *CatalogHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := actorID(w, r)
	if !ok {
		return
	}
	orders, err := h.svc.ListOrders(r.Context(), userID)
	if err != nil {
		respondError(w, r, h.log, err, "Could not load orders")
		return
	}
	out := make([]orderResponse, len(orders))
	for i := range orders {
		out[i] = toOrderResponse(&orders[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{"orders": out})
}

// CreateOrder handles POST /orders.
func (h *CatalogHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := actorID(w, r)
	if !ok {
		return
	}
	var req orderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	o, err := h.svc.CreateOrder(r.Context(), userID, catalog.CreateOrderInput{
		ProductID:    req.ProductID,
		Quantity:     req.Quantity,
		CustomerName: req.CustomerName,
		Channel:      domain.Channel(req.Channel),
	})
	if err != nil {
		respondError(w, r, h.log, err, "Could not create order")
		return
	}
	writeJSON(w, http.StatusCreated, toOrderResponse(o))
}

// DeleteOrder handles DELETE /orders/{id}.
func (h *CatalogHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := actorID(w, r)
	if !ok {
		return
	}
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteOrder(r.Context(), userID, id); err != nil {
		respondError(w, r, h.log, err, "Could not delete order")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListExpenses handles GET /expenses?from=YYYY-MM-DD&to=YYYY-MM-DD.
// The range defaults to the current month up to today.
func (h *CatalogHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	userID, ok := actorID(w, r)
	if !ok {
		return
	}

	today := h.now().UTC().Truncate(24 * time.Hour)
	from := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := today
	q := r.URL.Query()
	for name, dst := range map[string]*time.Time{"from": &from, "to": &to} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid "+name+": expected YYYY-MM-DD")
			return
		}
		*dst = t
	}

	expenses, err := h.svc.ListExpenses(r.Context(), userID, catalog.ListExpensesInput{From: from, To: to})
	if err != nil {
		respondError(w, r, h.log, err, "Could not load expenses")
		return
	}

	var total int64
	out := make([]expenseResponse, len(expenses))
	for i, e := range expenses {
		total += e.Amount
		out[i] = expenseResponse{
			ID:          e.ID,
			Date:        e.Date.Format(dateLayout),
			Description: e.Description,
			Amount:      e.Amount,
			Category:    e.Category.String(),
			CreatedAt:   e.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"expenses": out, "total": total})
}

func (req productRequest) input() catalog.ProductInput {
	return catalog.ProductInput{ProductName: req.ProductName, UniqueID: req.UniqueID, StockCount: req.StockCount}
}

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		ProductName: p.ProductName,
		UniqueID:    p.UniqueID,
		StockCount:  p.StockCount,
		SoldCount:   p.SoldCount,
		CreatedAt:   p.CreatedAt,
	}
}

func toOrderResponse(o *domain.Order) orderResponse {
	return orderResponse{
		ID:           o.ID,
		ProductID:    o.ProductID,
		ProductName:  o.ProductName,
		Quantity:     o.Quantity,
		CustomerName: o.CustomerName,
		Channel:      o.Channel.String(),
		TotalPrice:   o.TotalPrice,
		Status:       o.Status.String(),
		CreatedAt:    o.CreatedAt,
	}
}
