// Package expense implements the expense repository using PostgreSQL.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/speedsales/studio-backend/internal/adapter/postgres"
	"github.com/speedsales/studio-backend/internal/domain"
)

// Repo provides expense persistence backed by PostgreSQL. Expenses are
// immutable once recorded.
type Repo struct {
	db postgres.Querier
}

// New creates a new expense repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	Date        time.Time `db:"date"`
	Description string    `db:"description"`
	Amount      int64     `db:"amount"`
	Category    string    `db:"category"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r row) toDomain() domain.Expense {
	return domain.Expense{
		ID:          r.ID,
		UserID:      r.UserID,
		Date:        r.Date,
		Description: r.Description,
		Amount:      r.Amount,
		Category:    domain.ExpenseCategory(r.Category),
		CreatedAt:   r.CreatedAt,
	}
}

const returning = "RETURNING id, user_id, date, description, amount, category, created_at"

// Create inserts an expense dated e.Date (calendar day only).
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, e *domain.Expense) (*domain.Expense, error) {
	b := postgres.Builder().
		Insert("expenses").
		Columns("user_id", "date", "description", "amount", "category").
		Values(userID, e.Date, e.Description, e.Amount, string(e.Category)).
		Suffix(returning)

	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), b)
	if err != nil {
		return nil, postgres.MapError(err, "expense", e.Description)
	}
	created := got.toDomain()
	return &created, nil
}

// ListBetween returns expenses dated within [from, to], oldest first.
func (r *Repo) ListBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.Expense, error) {
	b := postgres.Builder().
		Select("id", "user_id", "date", "description", "amount", "category", "created_at").
		From("expenses").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		OrderBy("date ASC", "created_at ASC")

	rows, err := postgres.Select[row](ctx, postgres.QuerierFromCtx(ctx, r.db), b)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}

	out := make([]domain.Expense, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}
