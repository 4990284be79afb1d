// Package support manages the customer-service inbox.
package support

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/speedsales/studio-backend/internal/domain"
)

type inquiryRepo interface {
	List(ctx context.Context, userID uuid.UUID, f domain.InquiryFilter) ([]domain.Inquiry, error)
	Create(ctx context.Context, userID uuid.UUID, in *domain.Inquiry) (*domain.Inquiry, error)
	UpdateStatus(ctx context.Context, userID, id uuid.UUID, status domain.InquiryStatus) (*domain.Inquiry, error)
	Update(ctx context.Context, userID uuid.UUID, in *domain.Inquiry) (*domain.Inquiry, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// Service provides inbox operations.
type Service struct {
	inquiries inquiryRepo
	log       *slog.Logger
}

// NewService creates a new support Service.
func NewService(log *slog.Logger, inquiries inquiryRepo) *Service {
	return &Service{
		inquiries: inquiries,
		log:       log.With("service", "support"),
	}
}

// ListInquiries returns inquiries newest first.
func (s *Service) ListInquiries(ctx context.Context, userID uuid.UUID, input ListInput) ([]domain.Inquiry, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	f := domain.InquiryFilter{IncludeClosed: input.IncludeClosed}
	if st, ok := domain.ParseInquiryStatus(input.Status); ok {
		f.Status = &st
	}

	list, err := s.inquiries.List(ctx, userID, f)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	return list, nil
}

// CreateInquiry records an inquiry by hand. Any status may be given; the
// default is open.
func (s *Service) CreateInquiry(ctx context.Context, userID uuid.UUID, input CreateInput) (*domain.Inquiry, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	status := domain.InquiryStatusOpen
	if st, ok := domain.ParseInquiryStatus(input.Status); ok {
		status = st
	}
	customer := strings.TrimSpace(input.CustomerName)
	if customer == "" {
		customer = domain.DefaultInquiryCustomer
	}

	in, err := s.inquiries.Create(ctx, userID, &domain.Inquiry{
		ID:           uuid.New(),
		CustomerName: customer,
		Content:      strings.TrimSpace(input.Content),
		ProductName:  trimOrNil(input.ProductName),
		Status:       status,
		AIReply:      trimOrNil(input.AIReply),
	})
	if err != nil {
		return nil, fmt.Errorf("create inquiry: %w", err)
	}

	s.log.InfoContext(ctx, "inquiry created",
		slog.String("user_id", userID.String()),
		slog.String("inquiry_id", in.ID.String()),
		slog.String("status", string(in.Status)),
	)
	return in, nil
}

// UpdateInquiry edits customer, content and product of an inquiry.
func (s *Service) UpdateInquiry(ctx context.Context, userID, inquiryID uuid.UUID, input UpdateInput) (*domain.Inquiry, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	in, err := s.inquiries.Update(ctx, userID, &domain.Inquiry{
		ID:           inquiryID,
		CustomerName: strings.TrimSpace(input.CustomerName),
		Content:      strings.TrimSpace(input.Content),
		ProductName:  trimOrNil(input.ProductName),
	})
	if err != nil {
		return nil, fmt.Errorf("update inquiry: %w", err)
	}
	return in, nil
}

// SetStatus moves an inquiry to any valid status.
func (s *Service) SetStatus(ctx context.Context, userID, inquiryID uuid.UUID, status string) (*domain.Inquiry, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}
	st, ok := domain.ParseInquiryStatus(status)
	if !ok {
		return nil, domain.NewValidationError("status", "must be one of open, in_progress, waiting, resolved, closed")
	}

	in, err := s.inquiries.UpdateStatus(ctx, userID, inquiryID, st)
	if err != nil {
		return nil, fmt.Errorf("update inquiry status: %w", err)
	}

	s.log.InfoContext(ctx, "inquiry status changed",
		slog.String("user_id", userID.String()),
		slog.String("inquiry_id", inquiryID.String()),
		slog.String("status", string(st)),
	)
	return in, nil
}

// DeleteInquiry removes an inquiry.
func (s *Service) DeleteInquiry(ctx context.Context, userID, inquiryID uuid.UUID) error {
	if userID == uuid.Nil {
		return domain.ErrUnauthorized
	}
	if err := s.inquiries.Delete(ctx, userID, inquiryID); err != nil {
		return fmt.Errorf("delete inquiry: %w", err)
	}
	return nil
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
