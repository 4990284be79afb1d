package copywriter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/speedsales/studio-backend/internal/domain"
	"github.com/speedsales/studio-backend/internal/provider"
)

const systemPrompt = "You are a professional copywriter. Write strictly from the facts provided. " +
	"Do NOT invent features. Do NOT exaggerate. Return JSON only, using exactly the key names you are given for each platform."

// Generate asks the model for copy on each requested platform and stores the result.
func (s *Service) Generate(ctx context.Context, userID uuid.UUID, input GenerateInput) (*domain.MarketingCopy, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if s.llm == nil {
		return nil, fmt.Errorf("language model: %w", domain.ErrNotConfigured)
	}

	platforms := input.platforms()
	resp, err := s.llm.Chat(ctx, provider.ChatRequest{
		System:   systemPrompt,
		Messages: []provider.Message{provider.UserMessage(buildPrompt(input, platforms))},
	})
	if err != nil {
		return nil, fmt.Errorf("generate copy: %w", err)
	}

	contents, err := parseContents(resp.Text, platforms)
	if err != nil {
		s.log.WarnContext(ctx, "unusable copy response",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("generate copy: %w: %w", err, domain.ErrUpstream)
	}

	c, err := s.copies.Create(ctx, userID, &domain.MarketingCopy{
		ID:          uuid.New(),
		ProductName: strings.TrimSpace(input.ProductName),
		Facts:       input.facts(),
		Tone:        input.tone(),
		Platforms:   platforms,
		Contents:    contents,
	})
	if err != nil {
		return nil, fmt.Errorf("save copy: %w", err)
	}

	s.log.InfoContext(ctx, "marketing copy generated",
		slog.String("user_id", userID.String()),
		slog.String("copy_id", c.ID.String()),
		slog.Int("platforms", len(platforms)),
	)
	return c, nil
}

// ListRecent returns the user's latest generated copy sets, newest first.
func (s *Service) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.MarketingCopy, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}
	if limit < 0 || limit > maxListLimit {
		return nil, domain.NewValidationError("limit", fmt.Sprintf("must be between 0 and %d", maxListLimit))
	}
	if limit == 0 {
		limit = DefaultListLimit
	}
	list, err := s.copies.ListRecent(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list copies: %w", err)
	}
	return list, nil
}

func buildPrompt(in GenerateInput, platforms []domain.Platform) string {
	keys := make([]string, len(platforms))
	for i, p := range platforms {
		keys[i] = p.Key()
	}

	handmade := "No"
	if in.Handmade {
		handmade = "Yes"
	}

	lines := []string{"Product name: " + strings.TrimSpace(in.ProductName)}
	if v := strings.TrimSpace(in.Material); v != "" {
		lines = append(lines, "Material: "+v)
	}
	if v := strings.TrimSpace(in.Size); v != "" {
		lines = append(lines, "Size: "+v)
	}
	lines = append(lines, "Handmade: "+handmade)
	if v := strings.TrimSpace(in.Origin); v != "" {
		lines = append(lines, "Origin: "+v)
	}
	if v := strings.TrimSpace(in.KeyFeatures); v != "" {
		lines = append(lines, "Key features (use only these, do not add):\n"+v)
	}
	lines = append(lines,
		"Tone: "+in.tone(),
		"Generate content for these platforms. Return a JSON object with exactly these keys (use these key names verbatim): "+
			strings.Join(keys, ", ")+". Each key's value must be the generated text for that platform.",
	)
	return strings.Join(lines, "\n")
}

// parseContents extracts the JSON object from the model text and maps it to
// canonical platform keys. A platform missing from the object gets "".
func parseContents(text string, platforms []domain.Platform) (map[string]string, error) {
	raw, err := extractJSON(text)
	if err != nil {
		return nil, err
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}

	out := make(map[string]string, len(platforms))
	for _, p := range platforms {
		v, ok := parsed[p.Key()]
		if !ok {
			v, ok = parsed[p.String()]
		}
		if !ok {
			v = parsed[strings.ToLower(p.String())]
		}
		out[p.Key()] = stringify(v)
	}
	return out, nil
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []any:
		parts := make([]string, len(t))
		for i, e := range t {
			parts[i] = stringify(e)
		}
		return strings.Join(parts, " ")
	default:
		return fmt.Sprint(t)
	}
}

// extractJSON finds the first JSON object in s, tolerating markdown fences
// and surrounding prose.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}
