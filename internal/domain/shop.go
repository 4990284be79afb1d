package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is an inventory item. StockCount and SoldCount are never negative.
type Product struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	ProductName string
	UniqueID    *string
	StockCount  int
	SoldCount   int
	CreatedAt   time.Time
}

// DisplayID returns the user-facing identifier: the unique id when set,
// otherwise the row id.
func (p *Product) DisplayID() string {
	if p.UniqueID != nil && *p.UniqueID != "" {
		return *p.UniqueID
	}
	return p.ID.String()
}

// StockChange is the before/after snapshot of an atomic stock mutation.
type StockChange struct {
	Product     Product // state after the change
	StockBefore int
	SoldBefore  int
}

// Order records one sale. ProductID is a weak reference; the product may be
// deleted later.
type Order struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	ProductID    *uuid.UUID
	Quantity     int
	CustomerName string
	Channel      Channel
	TotalPrice   decimal.Decimal
	Status       OrderStatus
	CreatedAt    time.Time
	ProductName  *string // joined on read, not stored
}

// DefaultCustomerName is recorded for sales without a named customer.
const DefaultCustomerName = "Unknown Customer"

// Expense is a single business expense. Amount is in KRW and never negative.
type Expense struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Date        time.Time
	Description string
	Amount      int64
	Category    ExpenseCategory
	CreatedAt   time.Time
}
