// Package opslog implements the operations log repository using PostgreSQL.
package opslog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/speedsales/studio-backend/internal/adapter/postgres"
	"github.com/speedsales/studio-backend/internal/domain"
)

const table = "operations_logs"

var columns = []string{"id", "user_id", "content", "kind", "created_at"}

// Repo provides operations log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new operations log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Content   string    `db:"content"`
	Kind      string    `db:"kind"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() domain.OpsLogEntry {
	return domain.OpsLogEntry{
		ID:        r.ID,
		UserID:    r.UserID,
		Content:   r.Content,
		Kind:      domain.OpsLogKind(r.Kind),
		CreatedAt: r.CreatedAt,
	}
}

func (r *Repo) getOne(ctx context.Context, b squirrel.Sqlizer, key any) (*domain.OpsLogEntry, error) {
	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), b)
	if err != nil {
		return nil, postgres.MapError(err, "operations_log", key)
	}
	e := got.toDomain()
	return &e, nil
}

// List returns the user's entries newest first. A nil kind returns all kinds.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, kind *domain.OpsLogKind) ([]domain.OpsLogEntry, error) {
	where := squirrel.Eq{"user_id": userID}
	if kind != nil {
		where["kind"] = string(*kind)
	}
	b := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("created_at DESC", "id DESC")

	rows, err := postgres.Select[row](ctx, postgres.QuerierFromCtx(ctx, r.db), b)
	if err != nil {
		return nil, fmt.Errorf("list operations_logs: %w", err)
	}
	out := make([]domain.OpsLogEntry, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// Create inserts a new entry.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, e *domain.OpsLogEntry) (*domain.OpsLogEntry, error) {
	b := postgres.Builder().
		Insert(table).
		Columns("user_id", "content", "kind").
		Values(userID, e.Content, string(e.Kind)).
		Suffix("RETURNING " + strings.Join(columns, ", "))
	return r.getOne(ctx, b, e.Kind)
}

// Update overwrites content and kind.
// Returns domain.ErrNotFound if the entry does not exist or belongs to another user.
func (r *Repo) Update(ctx context.Context, userID uuid.UUID, e *domain.OpsLogEntry) (*domain.OpsLogEntry, error) {
	b := postgres.Builder().
		Update(table).
		Set("content", e.Content).
		Set("kind", string(e.Kind)).
		Where(squirrel.Eq{"id": e.ID, "user_id": userID}).
		Suffix("RETURNING " + strings.Join(columns, ", "))
	return r.getOne(ctx, b, e.ID)
}

// Delete removes an entry.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().Delete(table).Where(squirrel.Eq{"id": id, "user_id": userID}))
	if err != nil {
		return postgres.MapError(err, "operations_log", id)
	}
	if n == 0 {
		return fmt.Errorf("operations_log %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
