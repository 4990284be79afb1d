package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/speedsales/studio-backend/internal/domain"
	"github.com/speedsales/studio-backend/internal/service/support"
)

type supportService interface {
	ListInquiries(ctx context.Context, userID uuid.UUID, input support.ListInput) ([]domain.Inquiry, error)
	CreateInquiry(ctx context.Context, userID uuid.UUID, input support.CreateInput) (*domain.Inquiry, error)
	UpdateInquiry(ctx context.Context, userID, inquiryID uuid.UUID, input support.UpdateInput) (*domain.Inquiry, error)
	SetStatus(ctx context.Context, userID, inquiryID uuid.UUID, status string) (*domain.Inquiry, error)
	DeleteInquiry(ctx context.Context, userID, inquiryID uuid.UUID) error
}

// SupportHandler serves the customer-service inbox.
type SupportHandler struct {
	svc supportService
	log *slog.Logger
}

// NewSupportHandler creates a SupportHandler.
func NewSupportHandler(svc supportService, logger *slog.Logger) *SupportHandler {
	return &SupportHandler{svc: svc, log: logger.With("handler", "support")}
}

type createInquiryRequest struct {
	CustomerName string  `json:"customer_name"`
	Content      string  `json:"content"`
	ProductName  *string `json:"product_name"`
	Status       string  `json:"status"`
	AIReply      *string `json:"ai_reply"`
}

type updateInquiryRequest struct {
	CustomerName string  `json:"customer_name"`
	Content      string  `json:"content"`
	ProductName  *string `json:"product_name"`
}

type statusRequest struct {
	Status string `json:"status"`
}

type inquiryResponse struct {
	ID           uuid.UUID `json:"id"`
	CustomerName string    `json:"customer_name"`
	Content      string    `json:"content"`
	ProductName  *string   `json:"product_name"`
	Status       string    `json:"status"`
	AIReply      *string   `json:"ai_reply"`
	CreatedAt    time.Time `json:"created_at"`
}

// List handles GET /inquiries?status=&include_closed=.
func (h *SupportHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := actorID(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	includeClosed := false
	if raw := q.Get("include_closed"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid include_closed")
			return
		}
		includeClosed = v
	}

	list, err := h.svc.ListInquiries(r.Context(), userID, support.ListInput{
		Status:        q.Get("status"),
		IncludeClosed: includeClosed,
	})
	if err != nil {
		respondError(w, r, h.log, err, "Could not load inquiries")
		return
	}
	out := make([]inquiryResponse, len(list))
	for i := range list {
		out[i] = toInquiryResponse(&list[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{"inquiries": out})
}

// Create handles POST /inquiries.
func (h *SupportHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := actorID(w, r)
	if !ok {
		return
	}
	var req createInquiryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	inq, err := h.svc.CreateInquiry(r.Context(), userID, support.CreateInput{
		CustomerName: req.CustomerName,
		Content:      req.Content,
		ProductName:  req.ProductName,
		Status:       req.Status,
		AIReply:      req.AIReply,
	})
	if err != nil {
		respondError(w, r, h.log, err, "Could not create inquiry")
		return
	}
	writeJSON(w, http.StatusCreated, toInquiryResponse(inq))
}

// Update handles PUT /inquiries/{id}.
func (h *SupportHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := actorID(w, r)
	if !ok {
		return
	}
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	var req updateInquiryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	inq, err := h.svc.UpdateInquiry(r.Context(), userID, id, support.UpdateInput{
		CustomerName: req.CustomerName,
		Content:      req.Content,
		ProductName:  req.ProductName,
	})
	if err != nil {
		respondError(w, r, h.log, err, "Could not update inquiry")
		return
	}
	writeJSON(w, http.StatusOK, toInquiryResponse(inq))
}

// SetStatus handles PATCH /inquiries/{id}/status.
func (h *SupportHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := actorID(w, r)
	if !ok {
		return
	}
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	var req statusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	inq, err := h.svc.SetStatus(r.Context(), userID, id, req.Status)
	if err != nil {
		respondError(w, r, h.log, err, "Could not update status")
		return
	}
	writeJSON(w, http.StatusOK, toInquiryResponse(inq))
}

// Delete handles DELETE /inquiries/{id}.
func (h *SupportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := actorID(w, r)
	if !ok {
		return
	}
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteInquiry(r.Context(), userID, id); err != nil {
		respondError(w, r, h.log, err, "Could not delete inquiry")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toInquiryResponse(i *domain.Inquiry) inquiryResponse {
	return inquiryResponse{
		ID:           i.ID,
		CustomerName: i.CustomerName,
		Content:      i.Content,
		ProductName:  i.ProductName,
		Status:       i.Status.String(),
		AIReply:      i.AIReply,
		CreatedAt:    i.CreatedAt,
	}
}
