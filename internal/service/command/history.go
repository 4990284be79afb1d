package command

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/speedsales/studio-backend/internal/domain"
)

// History returns the actor's most recent log entries, newest first.
// A zero limit uses the configured default.
func (s *Service) History(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LogEntry, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}
	if limit < 0 || limit > MaxHistoryLimit {
		return nil, domain.NewValidationError("limit", fmt.Sprintf("must be between 0 and %d", MaxHistoryLimit))
	}
	if limit == 0 {
		limit = s.historyLimit
	}
	if limit == 0 {
		limit = DefaultHistoryLimit
	}

	entries, err := s.logs.ListRecent(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list log entries: %w", err)
	}
	return entries, nil
}
