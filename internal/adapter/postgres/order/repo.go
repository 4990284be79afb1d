// Package order implements the order repository using PostgreSQL.
package order

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	postgres "github.com/speedsales/studio-backend/internal/adapter/postgres"
	"github.com/speedsales/studio-backend/internal/domain"
)

// Repo provides order persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new order repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// total_price is read back as text so that decimal.Decimal parses it
// without float rounding.
const returning = "RETURNING id, user_id, product_id, quantity, customer_name, channel, total_price::text AS total_price, status, created_at"

type row struct {
	ID           uuid.UUID  `db:"id"`
	UserID       uuid.UUID  `db:"user_id"`
	ProductID    *uuid.UUID `db:"product_id"`
	Quantity     int        `db:"quantity"`
	CustomerName string     `db:"customer_name"`
	Channel      string     `db:"channel"`
	TotalPrice   string     `db:"total_price"`
	Status       string     `db:"status"`
	CreatedAt    time.Time  `db:"created_at"`
	ProductName  *string    `db:"product_name"`
}

func (r row) toDomain() (domain.Order, error) {
	price, err := decimal.NewFromString(r.TotalPrice)
	if err != nil {
		return domain.Order{}, fmt.Errorf("order %s: parse total_price %q: %w", r.ID, r.TotalPrice, err)
	}
	return domain.Order{
		ID:           r.ID,
		UserID:       r.UserID,
		ProductID:    r.ProductID,
		Quantity:     r.Quantity,
		CustomerName: r.CustomerName,
		Channel:      domain.Channel(r.Channel),
		TotalPrice:   price,
		Status:       domain.OrderStatus(r.Status),
		CreatedAt:    r.CreatedAt,
		ProductName:  r.ProductName,
	}, nil
}

// Create inserts an order. Empty Status defaults to paid.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, o *domain.Order) (*domain.Order, error) {
	status := o.Status
	if status == "" {
		status = domain.OrderStatusPaid
	}

	b := postgres.Builder().
		Insert("orders").
		Columns("user_id", "product_id", "quantity", "customer_name", "channel", "total_price", "status").
		Values(userID, o.ProductID, o.Quantity, o.CustomerName, string(o.Channel), squirrel.Expr("?::numeric", o.TotalPrice.String()), string(status)).
		Suffix(returning)

	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), b)
	if err != nil {
		return nil, postgres.MapError(err, "order", o.CustomerName)
	}

	created, err := got.toDomain()
	if err != nil {
		return nil, err
	}
	created.ProductName = o.ProductName
	return &created, nil
}

// List returns the user's orders newest first, each with the name of the
// product it references (nil when the product was deleted).
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]domain.Order, error) {
	b := postgres.Builder().
		Select(
			"o.id", "o.user_id", "o.product_id", "o.quantity", "o.customer_name", "o.channel",
			"o.total_price::text AS total_price", "o.status", "o.created_at", "p.product_name",
		).
		From("orders o").
		LeftJoin("products p ON p.id = o.product_id AND p.user_id = o.user_id").
		Where(squirrel.Eq{"o.user_id": userID}).
		OrderBy("o.created_at DESC")

	rows, err := postgres.Select[row](ctx, postgres.QuerierFromCtx(ctx, r.db), b)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	out := make([]domain.Order, 0, len(rows))
	for _, rw := range rows {
		o, err := rw.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

// Delete removes an order. Stock is not restored.
// Returns domain.ErrNotFound if the order does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().Delete("orders").Where(squirrel.Eq{"id": id, "user_id": userID}))
	if err != nil {
		return postgres.MapError(err, "order", id)
	}
	if n == 0 {
		return fmt.Errorf("order %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
