// Package operations manages the shop's operations log: free-form notes,
// supply requests and reminders.
package operations

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/speedsales/studio-backend/internal/domain"
)

type entryRepo interface {
	List(ctx context.Context, userID uuid.UUID, kind *domain.OpsLogKind) ([]domain.OpsLogEntry, error)
	Create(ctx context.Context, userID uuid.UUID, e *domain.OpsLogEntry) (*domain.OpsLogEntry, error)
	Update(ctx context.Context, userID uuid.UUID, e *domain.OpsLogEntry) (*domain.OpsLogEntry, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// Service provides operations log operations.
type Service struct {
	entries entryRepo
	log     *slog.Logger
}

// NewService creates a new operations Service.
func NewService(log *slog.Logger, entries entryRepo) *Service {
	return &Service{
		entries: entries,
		log:     log.With("service", "operations"),
	}
}

// ListEntries returns entries newest first.
func (s *Service) ListEntries(ctx context.Context, userID uuid.UUID, input ListInput) ([]domain.OpsLogEntry, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var kind *domain.OpsLogKind
	if k, ok := domain.ParseOpsLogKind(input.Kind); ok {
		kind = &k
	}

	list, err := s.entries.List(ctx, userID, kind)
	if err != nil {
		return nil, fmt.Errorf("list operations log: %w", err)
	}
	return list, nil
}

// CreateEntry appends an entry to the log.
func (s *Service) CreateEntry(ctx context.Context, userID uuid.UUID, input CreateInput) (*domain.OpsLogEntry, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	kind := domain.OpsLogKindNote
	if k, ok := domain.ParseOpsLogKind(input.Kind); ok {
		kind = k
	}

	e, err := s.entries.Create(ctx, userID, &domain.OpsLogEntry{
		Content: strings.TrimSpace(input.Content),
		Kind:    kind,
	})
	if err != nil {
		return nil, fmt.Errorf("create operations log entry: %w", err)
	}

	s.log.InfoContext(ctx, "operations log entry created",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", e.ID.String()),
		slog.String("kind", string(e.Kind)),
	)
	return e, nil
}

// UpdateEntry replaces content and kind of an entry.
func (s *Service) UpdateEntry(ctx context.Context, userID, entryID uuid.UUID, input UpdateInput) (*domain.OpsLogEntry, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	kind, _ := domain.ParseOpsLogKind(input.Kind)
	e, err := s.entries.Update(ctx, userID, &domain.OpsLogEntry{
		ID:      entryID,
		Content: strings.TrimSpace(input.Content),
		Kind:    kind,
	})
	if err != nil {
		return nil, fmt.Errorf("update operations log entry: %w", err)
	}
	return e, nil
}

// DeleteEntry removes an entry.
func (s *Service) DeleteEntry(ctx context.Context, userID, entryID uuid.UUID) error {
	if userID == uuid.Nil {
		return domain.ErrUnauthorized
	}
	if err := s.entries.Delete(ctx, userID, entryID); err != nil {
		return fmt.Errorf("delete operations log entry: %w", err)
	}

	s.log.InfoContext(ctx, "operations log entry deleted",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", entryID.String()),
	)
	return nil
}
