// Package product implements the product (inventory) repository using PostgreSQL.
package product

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/speedsales/studio-backend/internal/adapter/postgres"
	"github.com/speedsales/studio-backend/internal/domain"
)

const table = "products"

var columns = []string{"id", "user_id", "product_name", "unique_id", "stock_count", "sold_count", "created_at"}

// Repo provides product persistence backed by PostgreSQL.
// Every method is scoped to the owning user.
type Repo struct {
	db postgres.Querier
}

// New creates a new product repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	ProductName string    `db:"product_name"`
	UniqueID    *string   `db:"unique_id"`
	StockCount  int       `db:"stock_count"`
	SoldCount   int       `db:"sold_count"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r row) toDomain() domain.Product {
	return domain.Product{
		ID:          r.ID,
		UserID:      r.UserID,
		ProductName: r.ProductName,
		UniqueID:    r.UniqueID,
		StockCount:  r.StockCount,
		SoldCount:   r.SoldCount,
		CreatedAt:   r.CreatedAt,
	}
}

func (r *Repo) selectOwned(userID uuid.UUID) squirrel.SelectBuilder {
	return postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"user_id": userID})
}

func (r *Repo) getOne(ctx context.Context, b squirrel.Sqlizer, key any) (*domain.Product, error) {
	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), b)
	if err != nil {
		return nil, postgres.MapError(err, "product", key)
	}
	p := got.toDomain()
	return &p, nil
}

func (r *Repo) list(ctx context.Context, b squirrel.Sqlizer) ([]domain.Product, error) {
	rows, err := postgres.Select[row](ctx, postgres.QuerierFromCtx(ctx, r.db), b)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	out := make([]domain.Product, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a product by primary key.
// Returns domain.ErrNotFound if it does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Product, error) {
	return r.getOne(ctx, r.selectOwned(userID).Where(squirrel.Eq{"id": id}), id)
}

// GetByUniqueID returns the product with exactly this unique id.
func (r *Repo) GetByUniqueID(ctx context.Context, userID uuid.UUID, uniqueID string) (*domain.Product, error) {
	return r.getOne(ctx, r.selectOwned(userID).Where(squirrel.Eq{"unique_id": uniqueID}).Limit(1), uniqueID)
}

// GetByNameFold returns the product whose name equals name, ignoring case.
func (r *Repo) GetByNameFold(ctx context.Context, userID uuid.UUID, name string) (*domain.Product, error) {
	b := r.selectOwned(userID).
		Where(squirrel.Expr("lower(product_name) = lower(?)", name)).
		Limit(1)
	return r.getOne(ctx, b, name)
}

// SearchByName returns products whose name contains substr, ignoring case,
// ordered by name.
func (r *Repo) SearchByName(ctx context.Context, userID uuid.UUID, substr string) ([]domain.Product, error) {
	b := r.selectOwned(userID).
		Where(squirrel.ILike{"product_name": postgres.ContainsPattern(substr)}).
		OrderBy("product_name ASC")
	return r.list(ctx, b)
}

// ListLowestStock returns up to limit products ordered by stock ascending.
func (r *Repo) ListLowestStock(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Product, error) {
	b := r.selectOwned(userID).
		OrderBy("stock_count ASC", "product_name ASC").
		Limit(uint64(limit))
	return r.list(ctx, b)
}

// List returns all products of the user ordered by name.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]domain.Product, error) {
	return r.list(ctx, r.selectOwned(userID).OrderBy("product_name ASC"))
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new product with the given name, unique id and stock.
// sold_count starts at 0. Returns domain.ErrAlreadyExists when the name or
// unique id is already taken by this user.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, p *domain.Product) (*domain.Product, error) {
	b := postgres.Builder().
		Insert(table).
		Columns("user_id", "product_name", "unique_id", "stock_count").
		Values(userID, p.ProductName, p.UniqueID, p.StockCount).
		Suffix("RETURNING " + returning())
	return r.getOne(ctx, b, p.ProductName)
}

// Update overwrites name, unique id and stock of an existing product.
func (r *Repo) Update(ctx context.Context, userID uuid.UUID, p *domain.Product) (*domain.Product, error) {
	b := postgres.Builder().
		Update(table).
		Set("product_name", p.ProductName).
		Set("unique_id", p.UniqueID).
		Set("stock_count", p.StockCount).
		Where(squirrel.Eq{"id": p.ID, "user_id": userID}).
		Suffix("RETURNING " + returning())
	return r.getOne(ctx, b, p.ID)
}

// DecrementStock atomically moves qty units from stock to sold, but only
// when at least qty units are in stock. The check and the write are one
// statement, so concurrent sales are serialized by the row lock.
// Returns domain.ErrConflict when the product is missing or short on stock.
func (r *Repo) DecrementStock(ctx context.Context, userID, id uuid.UUID, qty int) (*domain.StockChange, error) {
	b := postgres.Builder().
		Update(table).
		Set("stock_count", squirrel.Expr("stock_count - ?", qty)).
		Set("sold_count", squirrel.Expr("sold_count + ?", qty)).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Where(squirrel.GtOrEq{"stock_count": qty}).
		Suffix("RETURNING " + returning())

	p, err := r.getOne(ctx, b, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("product %s: insufficient stock for %d: %w", id, qty, domain.ErrConflict)
		}
		return nil, err
	}

	return &domain.StockChange{
		Product:     *p,
		StockBefore: p.StockCount + qty,
		SoldBefore:  p.SoldCount - qty,
	}, nil
}

// IncrementStock atomically adds qty units to stock.
func (r *Repo) IncrementStock(ctx context.Context, userID, id uuid.UUID, qty int) (*domain.StockChange, error) {
	b := postgres.Builder().
		Update(table).
		Set("stock_count", squirrel.Expr("stock_count + ?", qty)).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + returning())

	p, err := r.getOne(ctx, b, id)
	if err != nil {
		return nil, err
	}

	return &domain.StockChange{
		Product:     *p,
		StockBefore: p.StockCount - qty,
		SoldBefore:  p.SoldCount,
	}, nil
}

// Delete removes a product. Orders keep their rows with product_id set to NULL.
// Returns domain.ErrNotFound if the product does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().Delete(table).Where(squirrel.Eq{"id": id, "user_id": userID}))
	if err != nil {
		return postgres.MapError(err, "product", id)
	}
	if n == 0 {
		return fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func returning() string {
	return strings.Join(columns, ", ")
}
