// Package inquiry implements the customer-service inquiry repository using PostgreSQL.
package inquiry

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

const table = "cs_inquiries"

var columns = []string{"id", "user_id", "customer_name", "content", "product_name", "status", "ai_reply", "created_at"}

// Repo provides inquiry persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new inquiry repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID           uuid.UUID `db:"id"`
	UserID       uuid.UUID `db:"user_id"`
	CustomerName string    `db:"customer_name"`
	Content      string    `db:"content"`
	ProductName  *string   `db:"product_name"`
	Status       string    `db:"status"`
	AIReply      *string   `db:"ai_reply"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r row) toDomain() domain.Inquiry {
	return domain.Inquiry{
		ID:           r.ID,
		UserID:       r.UserID,
		CustomerName: r.CustomerName,
		Content:      r.Content,
		ProductName:  r.ProductName,
		Status:       domain.InquiryStatus(r.Status),
		AIReply:      r.AIReply,
		CreatedAt:    r.CreatedAt,
	}
}

func statusStrings(statuses []domain.InquiryStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func (r *Repo) selectOwned(userID uuid.UUID) squirrel.SelectBuilder {
	return postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"user_id": userID})
}

func (r *Repo) getOne(ctx context.Context, b squirrel.Sqlizer, key any) (*domain.Inquiry, error) {
	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), b)
	if err != nil {
		return nil, postgres.MapError(err, "cs_inquiry", key)
	}
	in := got.toDomain()
	return &in, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an inquiry by primary key.
// Returns domain.ErrNotFound if it does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Inquiry, error) {
	return r.getOne(ctx, r.selectOwned(userID).Where(squirrel.Eq{"id": id}), id)
}

// CountByStatuses returns the number of inquiries per status, limited to the
// given statuses. Statuses without inquiries are present with a zero count.
func (r *Repo) CountByStatuses(ctx context.Context, userID uuid.UUID, statuses []domain.InquiryStatus) (domain.InquiryCounts, error) {
	type countRow struct {
		Status string `db:"status"`
		Count  int    `db:"count"`
	}

	b := postgres.Builder().
		Select("status", "count(*) AS count").
		From(table).
		Where(squirrel.Eq{"user_id": userID, "status": statusStrings(statuses)}).
		GroupBy("status")

	rows, err := postgres.Select[countRow](ctx, postgres.QuerierFromCtx(ctx, r.db), b)
	if err != nil {
		return nil, fmt.Errorf("count cs_inquiries: %w", err)
	}

	counts := make(domain.InquiryCounts, len(statuses))
	for _, s := range statuses {
		counts[s] = 0
	}
	for _, rw := range rows {
		counts[domain.InquiryStatus(rw.Status)] = rw.Count
	}
	return counts, nil
}

// LatestByStatuses returns the most recently created inquiry among the given
// statuses. Returns domain.ErrNotFound when there is none.
func (r *Repo) LatestByStatuses(ctx context.Context, userID uuid.UUID, statuses []domain.InquiryStatus) (*domain.Inquiry, error) {
	b := r.selectOwned(userID).
		Where(squirrel.Eq{"status": statusStrings(statuses)}).
		OrderBy("created_at DESC").
		Limit(1)
	return r.getOne(ctx, b, strings.Join(statusStrings(statuses), ","))
}

// List returns inquiries newest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, f domain.InquiryFilter) ([]domain.Inquiry, error) {
	b := r.selectOwned(userID).OrderBy("created_at DESC")
	switch {
	case f.Status != nil:
		b = b.Where(squirrel.Eq{"status": string(*f.Status)})
	case !f.IncludeClosed:
		b = b.Where(squirrel.NotEq{"status": string(domain.InquiryStatusClosed)})
	}

	rows, err := postgres.Select[row](ctx, postgres.QuerierFromCtx(ctx, r.db), b)
	if err != nil {
		return nil, fmt.Errorf("list cs_inquiries: %w", err)
	}
	out := make([]domain.Inquiry, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new inquiry.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, in *domain.Inquiry) (*domain.Inquiry, error) {
	b := postgres.Builder().
		Insert(table).
		Columns("user_id", "customer_name", "content", "product_name", "status", "ai_reply").
		Values(userID, in.CustomerName, in.Content, in.ProductName, string(in.Status), in.AIReply).
		Suffix("RETURNING " + strings.Join(columns, ", "))
	return r.getOne(ctx, b, in.CustomerName)
}

// UpdateStatus moves an inquiry to status. Any status may follow any other.
func (r *Repo) UpdateStatus(ctx context.Context, userID, id uuid.UUID, status domain.InquiryStatus) (*domain.Inquiry, error) {
	b := postgres.Builder().
		Update(table).
		Set("status", string(status)).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + strings.Join(columns, ", "))
	return r.getOne(ctx, b, id)
}

// Update overwrites customer name, content and product name.
func (r *Repo) Update(ctx context.Context, userID uuid.UUID, in *domain.Inquiry) (*domain.Inquiry, error) {
	b := postgres.Builder().
		Update(table).
		Set("customer_name", in.CustomerName).
		Set("content", in.Content).
		Set("product_name", in.ProductName).
		Where(squirrel.Eq{"id": in.ID, "user_id": userID}).
		Suffix("RETURNING " + strings.Join(columns, ", "))
	return r.getOne(ctx, b, in.ID)
}

// Delete removes an inquiry.
// Returns domain.ErrNotFound if it does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().Delete(table).Where(squirrel.Eq{"id": id, "user_id": userID}))
	if err != nil {
		return postgres.MapError(err, "cs_inquiry", id)
	}
	if n == 0 {
		return fmt.Errorf("cs_inquiry %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
