package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/speedsales/studio-backend/internal/domain"
)

const (
	maxProductNameLen  = 200
	maxUniqueIDLen     = 100
	maxCustomerNameLen = 200
	maxExpenseRange    = 366 * 24 * time.Hour
)

// ProductInput holds the fields of a product create or update.
// Negative stock is clamped to zero.
type ProductInput struct {
	ProductName string
	UniqueID    *string
	StockCount  int
}

// Validate checks all fields and collects all errors.
func (i ProductInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.ProductName)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "product_name", Message: "required"})
	}
	if len(name) > maxProductNameLen {
		errs = append(errs, domain.FieldError{Field: "product_name", Message: "max 200 characters"})
	}
	if i.UniqueID != nil && len(strings.TrimSpace(*i.UniqueID)) > maxUniqueIDLen {
		errs = append(errs, domain.FieldError{Field: "unique_id", Message: "max 100 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateOrderInput holds the parameters for recording an order by hand.
type CreateOrderInput struct {
	ProductID    uuid.UUID
	Quantity     int
	CustomerName string
	Channel      domain.Channel
}

// Validate checks all fields and collects all errors.
func (i CreateOrderInput) Validate() error {
	var errs []domain.FieldError

	if i.ProductID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "product_id", Message: "required"})
	}
	if i.Quantity < 1 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be at least 1"})
	}
	name := strings.TrimSpace(i.CustomerName)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "customer_name", Message: "required"})
	}
	if len(name) > maxCustomerNameLen {
		errs = append(errs, domain.FieldError{Field: "customer_name", Message: "max 200 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListExpensesInput selects an inclusive date range.
type ListExpensesInput struct {
	From time.Time
	To   time.Time
}

// Validate checks all fields and collects all errors.
func (i ListExpensesInput) Validate() error {
	var errs []domain.FieldError
	if i.From.IsZero() {
		errs = append(errs, domain.FieldError{Field: "from", Message: "required"})
	}
	if i.To.IsZero() {
		errs = append(errs, domain.FieldError{Field: "to", Message: "required"})
	}
	if !i.From.IsZero() && !i.To.IsZero() {
		if i.To.Before(i.From) {
			errs = append(errs, domain.FieldError{Field: "to", Message: "must not be before from"})
		} else if i.To.Sub(i.From) > maxExpenseRange {
			errs = append(errs, domain.FieldError{Field: "to", Message: "range must not exceed one year"})
		}
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
