package tool

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/speedsales/studio-backend/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amountPrinter = message.NewPrinter(language.English)

func (s *Service) logExpense(ctx context.Context, userID uuid.UUID, c LogExpense) Outcome {
	now := s.now().UTC()
	e, err := s.expenses.Create(ctx, userID, &domain.Expense{
		ID:          uuid.New(),
		Date:        now.Truncate(24 * time.Hour),
		Description: c.Description,
		Amount:      c.Amount,
		Category:    c.Category,
		CreatedAt:   now,
	})
	if err != nil {
		return s.storeFailure(ctx, userID, c.ToolName(), "record expense", err)
	}

	s.log.InfoContext(ctx, "expense recorded",
		slog.String("user_id", userID.String()),
		slog.String("expense_id", e.ID.String()),
		slog.Int64("amount", e.Amount),
		slog.String("category", string(e.Category)),
	)

	return success(c.ToolName(), "Recorded expense: %s (%s KRW, %s).",
		c.Description, amountPrinter.Sprintf("%d", c.Amount), c.Category)
}

func (s *Service) logInquiry(ctx context.Context, userID uuid.UUID, c LogCSInquiry) Outcome {
	in, err := s.inquiries.Create(ctx, userID, &domain.Inquiry{
		ID:           uuid.New(),
		CustomerName: c.CustomerName,
		Content:      c.Content,
		ProductName:  c.ProductName,
		Status:       c.Status,
		AIReply:      c.AIReply,
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		return s.storeFailure(ctx, userID, c.ToolName(), "create CS ticket", err)
	}

	return Outcome{
		Tool: c.ToolName(),
		Kind: KindTicket,
		Text: "CS Ticket Created: " + in.CustomerName + " - " + string(in.Status) + ". Check CS Master.",
	}
}

func (s *Service) checkCSStatus(ctx context.Context, userID uuid.UUID, c CheckCSStatus) Outcome {
	if c.Filter == activeFilter {
		return s.activeInquiries(ctx, userID, c)
	}

	status, ok := domain.ParseInquiryStatus(c.Filter)
	if !ok {
		return info(c.ToolName(), "Use status_filter 'active' or one of: open, in_progress, waiting, resolved, closed.")
	}

	statuses := []domain.InquiryStatus{status}
	counts, err := s.inquiries.CountByStatuses(ctx, userID, statuses)
	if err != nil {
		return s.storeFailure(ctx, userID, c.ToolName(), "read CS inquiries", err)
	}
	total := counts.Total(statuses...)
	if total == 0 {
		return info(c.ToolName(), "You have 0 %s inquiries.", status)
	}

	latest, err := s.latest(ctx, userID, statuses)
	if err != nil {
		return s.storeFailure(ctx, userID, c.ToolName(), "read CS inquiries", err)
	}
	if latest == nil {
		return info(c.ToolName(), "You have %d %s inquiries.", total, status)
	}
	return info(c.ToolName(), "You have %d %s inquiries. Latest: %s - %s", total, status, latest.CustomerName, latest.Content)
}

func (s *Service) activeInquiries(ctx context.Context, userID uuid.UUID, c CheckCSStatus) Outcome {
	statuses := domain.ActiveInquiryStatuses
	counts, err := s.inquiries.CountByStatuses(ctx, userID, statuses)
	if err != nil {
		return s.storeFailure(ctx, userID, c.ToolName(), "read CS inquiries", err)
	}

	open := counts[domain.InquiryStatusOpen]
	inProgress := counts[domain.InquiryStatusInProgress]
	waiting := counts[domain.InquiryStatusWaiting]
	total := counts.Total(statuses...)

	summary := fmt.Sprintf("Found %d active inquiries: %d Open, %d In Progress, %d Waiting.", total, open, inProgress, waiting)
	if total == 0 {
		return info(c.ToolName(), "%s", summary)
	}

	latest, err := s.latest(ctx, userID, statuses)
	if err != nil {
		return s.storeFailure(ctx, userID, c.ToolName(), "read CS inquiries", err)
	}
	if latest == nil {
		return info(c.ToolName(), "%s", summary)
	}
	return info(c.ToolName(), "%s Latest: %s - %s", summary, latest.CustomerName, latest.Content)
}

func (s *Service) latest(ctx context.Context, userID uuid.UUID, statuses []domain.InquiryStatus) (*domain.Inquiry, error) {
	in, err := s.inquiries.LatestByStatuses(ctx, userID, statuses)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return in, err
}
