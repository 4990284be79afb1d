// Package marketing implements the generated marketing copy repository using PostgreSQL.
package marketing

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/speedsales/studio-backend/internal/adapter/postgres"
	"github.com/speedsales/studio-backend/internal/domain"
)

// Repo stores generated copy together with the product facts it was written
// from. contents is a JSONB object keyed by the canonical platform key.
type Repo struct {
	db postgres.Querier
}

// New creates a new marketing copy repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID          uuid.UUID         `db:"id"`
	UserID      uuid.UUID         `db:"user_id"`
	ProductName string            `db:"product_name"`
	Material    *string           `db:"material"`
	Size        *string           `db:"size"`
	Handmade    bool              `db:"handmade"`
	Origin      *string           `db:"origin"`
	KeyFeatures *string           `db:"key_features"`
	Tone        string            `db:"tone"`
	Platforms   []string          `db:"platforms"`
	Contents    map[string]string `db:"contents"`
	CreatedAt   time.Time         `db:"created_at"`
}

func (r row) toDomain() domain.MarketingCopy {
	platforms := make([]domain.Platform, len(r.Platforms))
	for i, p := range r.Platforms {
		platforms[i] = domain.Platform(p)
	}
	return domain.MarketingCopy{
		ID:          r.ID,
		UserID:      r.UserID,
		ProductName: r.ProductName,
		Facts: domain.ProductFacts{
			Material:    r.Material,
			Size:        r.Size,
			Handmade:    r.Handmade,
			Origin:      r.Origin,
			KeyFeatures: r.KeyFeatures,
		},
		Tone:        r.Tone,
		Platforms:   platforms,
		Contents:    r.Contents,
		CreatedAt:   r.CreatedAt,
	}
}

const selectColumns = "id, user_id, product_name, material, size, handmade, origin, key_features, " +
	"tone, platforms, contents, created_at"

// Create stores one generated copy set.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, c *domain.MarketingCopy) (*domain.MarketingCopy, error) {
	platforms := make([]string, len(c.Platforms))
	for i, p := range c.Platforms {
		platforms[i] = string(p)
	}
	contents := c.Contents
	if contents == nil {
		contents = map[string]string{}
	}

	b := postgres.Builder().
		Insert("marketing_copies").
		Columns("user_id", "product_name", "material", "size", "handmade", "origin", "key_features",
			"tone", "platforms", "contents").
		Values(userID, c.ProductName, c.Facts.Material, c.Facts.Size, c.Facts.Handmade, c.Facts.Origin, c.Facts.KeyFeatures,
			c.Tone, platforms, contents).
		Suffix("RETURNING " + selectColumns)

	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), b)
	if err != nil {
		return nil, postgres.MapError(err, "marketing_copy", c.ProductName)
	}
	created := got.toDomain()
	return &created, nil
}

// ListRecent returns up to limit copy sets, newest first.
func (r *Repo) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.MarketingCopy, error) {
	b := postgres.Builder().
		Select(selectColumns).
		From("marketing_copies").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit))

	rows, err := postgres.Select[row](ctx, postgres.QuerierFromCtx(ctx, r.db), b)
	if err != nil {
		return nil, fmt.Errorf("list marketing_copies: %w", err)
	}
	out := make([]domain.MarketingCopy, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}
