package copywriter

import (
	"strings"

	"github.com/speedsales/studio-backend/internal/domain"
)

// GenerateInput describes the product facts the copy may use.
type GenerateInput struct {
	ProductName string
	Material    string
	Size        string
	Handmade    bool
	Origin      string
	KeyFeatures string
	Tone        string
	Platforms   []string
}

// Validate checks all fields and collects all errors.
func (i GenerateInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.ProductName)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "productName", Message: "Product name is required."})
	}
	if len(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "productName", Message: "max 200 characters"})
	}
	if len(i.KeyFeatures) > 4000 {
		errs = append(errs, domain.FieldError{Field: "keyFeatures", Message: "max 4000 characters"})
	}
	if len(i.platforms()) == 0 {
		errs = append(errs, domain.FieldError{Field: "platforms", Message: "At least one target platform must be selected."})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// platforms returns the known platforms in request order, without duplicates.
func (i GenerateInput) platforms() []domain.Platform {
	seen := make(map[domain.Platform]bool, len(i.Platforms))
	var out []domain.Platform
	for _, s := range i.Platforms {
		p := domain.Platform(s)
		if !p.IsValid() || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

func (i GenerateInput) facts() domain.ProductFacts {
	return domain.ProductFacts{
		Material:    optional(i.Material),
		Size:        optional(i.Size),
		Handmade:    i.Handmade,
		Origin:      optional(i.Origin),
		KeyFeatures: optional(i.KeyFeatures),
	}
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func (i GenerateInput) tone() string {
	if t := strings.TrimSpace(i.Tone); t != "" {
		return t
	}
	return DefaultTone
}
