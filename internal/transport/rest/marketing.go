package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/speedsales/studio-backend/internal/domain"
	"github.com/speedsales/studio-backend/internal/service/copywriter"
)

type copywriterService interface {
	Generate(ctx context.Context, userID uuid.UUID, input copywriter.GenerateInput) (*domain.MarketingCopy, error)
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.MarketingCopy, error)
}

// MarketingHandler serves marketing copy generation.
type MarketingHandler struct {
	svc copywriterService
	log *slog.Logger
}

// NewMarketingHandler creates a MarketingHandler.
func NewMarketingHandler(svc copywriterService, logger *slog.Logger) *MarketingHandler {
	return &MarketingHandler{svc: svc, log: logger.With("handler", "marketing")}
}

type generateRequest struct {
	ProductName string   `json:"productName"`
	Material    string   `json:"material"`
	Size        string   `json:"size"`
	Handmade    bool     `json:"handmade"`
	Origin      string   `json:"origin"`
	KeyFeatures string   `json:"keyFeatures"`
	Tone        string   `json:"tone"`
	Platforms   []string `json:"platforms"`
}

type copyResponse struct {
	ID          uuid.UUID         `json:"id"`
	ProductName string            `json:"productName"`
	Material    *string           `json:"material"`
	Size        *string           `json:"size"`
	Handmade    bool              `json:"handmade"`
	Origin      *string           `json:"origin"`
	KeyFeatures *string           `json:"keyFeatures"`
	Tone        string            `json:"tone"`
	Platforms   []string          `json:"platforms"`
	Contents    map[string]string `json:"contents"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// Generate handles POST /marketing/copy.
func (h *MarketingHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, ok := actorID(w, r)
	if !ok {
		return
	}
	var req generateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	c, err := h.svc.Generate(r.Context(), userID, copywriter.GenerateInput{
		ProductName: req.ProductName,
		Material:    req.Material,
		Size:        req.Size,
		Handmade:    req.Handmade,
		Origin:      req.Origin,
		KeyFeatures: req.KeyFeatures,
		Tone:        req.Tone,
		Platforms:   req.Platforms,
	})
	if err != nil {
		respondError(w, r, h.log, err, "Copy generation failed")
		return
	}
	writeJSON(w, http.StatusOK, toCopyResponse(c))
}

// List handles GET /marketing/copy.
func (h *MarketingHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := actorID(w, r)
	if !ok {
		return
	}
	limit, ok := intQuery(w, r, "limit")
	if !ok {
		return
	}
	list, err := h.svc.ListRecent(r.Context(), userID, limit)
	if err != nil {
		respondError(w, r, h.log, err, "Could not load copy history")
		return
	}
	out := make([]copyResponse, len(list))
	for i := range list {
		out[i] = toCopyResponse(&list[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{"copies": out})
}

func toCopyResponse(c *domain.MarketingCopy) copyResponse {
	platforms := make([]string, len(c.Platforms))
	for i, p := range c.Platforms {
		platforms[i] = p.String()
	}
	return copyResponse{
		ID:          c.ID,
		ProductName: c.ProductName,
		Material:    c.Facts.Material,
		Size:        c.Facts.Size,
		Handmade:    c.Facts.Handmade,
		Origin:      c.Facts.Origin,
		KeyFeatures: c.Facts.KeyFeatures,
		Tone:        c.Tone,
		Platforms:   platforms,
		Contents:    c.Contents,
		CreatedAt:   c.CreatedAt,
	}
}
