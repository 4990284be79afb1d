package operations

import (
	"strings"

	"github.com/speedsales/studio-backend/internal/domain"
)

const maxContentLen = 5000

// ListInput filters the log. Kind is optional.
type ListInput struct {
	Kind string
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	if strings.TrimSpace(i.Kind) == "" {
		return nil
	}
	if _, ok := domain.ParseOpsLogKind(i.Kind); !ok {
		return domain.NewValidationError("kind", "must be one of note, request, reminder")
	}
	return nil
}

// CreateInput holds the parameters for a new entry. Kind defaults to note.
type CreateInput struct {
	Content string
	Kind    string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	errs := validateContent(i.Content)
	if strings.TrimSpace(i.Kind) != "" {
		if _, ok := domain.ParseOpsLogKind(i.Kind); !ok {
			errs = append(errs, domain.FieldError{Field: "kind", Message: "must be one of note, request, reminder"})
		}
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the editable fields of an entry. Both are required.
type UpdateInput struct {
	Content string
	Kind    string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	errs := validateContent(i.Content)
	if _, ok := domain.ParseOpsLogKind(i.Kind); !ok {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be one of note, request, reminder"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateContent(content string) []domain.FieldError {
	c := strings.TrimSpace(content)
	if c == "" {
		return []domain.FieldError{{Field: "content", Message: "required"}}
	}
	if len(c) > maxContentLen {
		return []domain.FieldError{{Field: "content", Message: "max 5000 characters"}}
	}
	return nil
}
