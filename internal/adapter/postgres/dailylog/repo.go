// Package dailylog implements the command log repository using PostgreSQL.
// Log entries are append-only.
package dailylog

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/speedsales/studio-backend/internal/adapter/postgres"
	"github.com/speedsales/studio-backend/internal/domain"
)

// Repo provides log entry persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new daily log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID         uuid.UUID `db:"id"`
	UserID     uuid.UUID `db:"user_id"`
	Content    string    `db:"content"`
	AIResponse string    `db:"ai_response"`
	CreatedAt  time.Time `db:"created_at"`
}

func (r row) toDomain() domain.LogEntry {
	return domain.LogEntry{
		ID:         r.ID,
		UserID:     r.UserID,
		Content:    r.Content,
		AIResponse: r.AIResponse,
		CreatedAt:  r.CreatedAt,
	}
}

// Create appends a log entry for one interpreted command.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, content, aiResponse string) (*domain.LogEntry, error) {
	b := postgres.Builder().
		Insert("daily_logs").
		Columns("user_id", "content", "ai_response").
		Values(userID, content, aiResponse).
		Suffix("RETURNING id, user_id, content, ai_response, created_at")

	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), b)
	if err != nil {
		return nil, postgres.MapError(err, "daily_log", userID)
	}
	entry := got.toDomain()
	return &entry, nil
}

// ListRecent returns up to limit entries, newest first.
func (r *Repo) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LogEntry, error) {
	b := postgres.Builder().
		Select("id", "user_id", "content", "ai_response", "created_at").
		From("daily_logs").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit))

	rows, err := postgres.Select[row](ctx, postgres.QuerierFromCtx(ctx, r.db), b)
	if err != nil {
		return nil, fmt.Errorf("list daily_logs: %w", err)
	}
	out := make([]domain.LogEntry, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}
