package support

import (
	"strings"

	"github.com/speedsales/studio-backend/internal/domain"
)

const (
	maxContentLen  = 5000
	maxCustomerLen = 200
)

// ListInput filters the inbox. Status is optional.
type ListInput struct {
	Status        string
	IncludeClosed bool
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	if strings.TrimSpace(i.Status) == "" {
		return nil
	}
	if _, ok := domain.ParseInquiryStatus(i.Status); !ok {
		return domain.NewValidationError("status", "unknown status")
	}
	return nil
}

// CreateInput holds the parameters for creating an inquiry.
type CreateInput struct {
	CustomerName string
	Content      string
	ProductName  *string
	Status       string
	AIReply      *string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	errs := validateText(i.CustomerName, i.Content)
	if strings.TrimSpace(i.Status) != "" {
		if _, ok := domain.ParseInquiryStatus(i.Status); !ok {
			errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
		}
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the editable fields of an inquiry.
type UpdateInput struct {
	CustomerName string
	Content      string
	ProductName  *string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	errs := validateText(i.CustomerName, i.Content)
	if strings.TrimSpace(i.CustomerName) == "" {
		errs = append(errs, domain.FieldError{Field: "customer_name", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateText(customer, content string) []domain.FieldError {
	var errs []domain.FieldError
	if len(strings.TrimSpace(customer)) > maxCustomerLen {
		errs = append(errs, domain.FieldError{Field: "customer_name", Message: "max 200 characters"})
	}
	c := strings.TrimSpace(content)
	if c == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if len(c) > maxContentLen {
		errs = append(errs, domain.FieldError{Field: "content", Message: "max 5000 characters"})
	}
	return errs
}
