package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/speedsales/studio-backend/internal/domain"
)

// ListExpenses returns expenses dated within the inclusive range, oldest first.
func (s *Service) ListExpenses(ctx context.Context, userID uuid.UUID, input ListExpensesInput) ([]domain.Expense, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	expenses, err := s.expenses.ListBetween(ctx, userID, input.From.UTC(), input.To.UTC())
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}
