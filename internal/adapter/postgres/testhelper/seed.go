package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/speedsales/studio-backend/internal/domain"
)

// NewActor returns a fresh owner id. Owners live in the external auth
// provider, so no row is needed; a random id keeps parallel tests isolated.
func NewActor() uuid.UUID {
	return uuid.New()
}

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedProduct inserts a product with the given stock for userID.
// An empty name is replaced by a unique one.
func SeedProduct(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, name string, stock int) domain.Product {
	t.Helper()
	if name == "" {
		name = "Product " + uniqueSuffix()
	}

	p := domain.Product{UserID: userID, ProductName: name, StockCount: stock}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO products (user_id, product_name, stock_count)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		userID, name, stock,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedProduct: %v", err)
	}
	return p
}

// SeedInquiry inserts a customer-service inquiry with the given status.
func SeedInquiry(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, customer string, status domain.InquiryStatus) domain.Inquiry {
	t.Helper()

	in := domain.Inquiry{
		UserID:       userID,
		CustomerName: customer,
		Content:      "inquiry " + uniqueSuffix(),
		Status:       status,
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO cs_inquiries (user_id, customer_name, content, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		userID, customer, in.Content, string(status),
	).Scan(&in.ID, &in.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedInquiry: %v", err)
	}
	return in
}
