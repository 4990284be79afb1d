// Package anthropic adapts the Anthropic Messages API (with tool use) to the
// backend-neutral chat types in internal/provider.
package anthropic

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/speedsales/studio-backend/internal/config"
	"github.com/speedsales/studio-backend/internal/domain"
	"github.com/speedsales/studio-backend/internal/provider"
)

// Client sends chat requests to Claude. It never retries: a failed call
// surfaces as domain.ErrUpstream and the caller decides what to do.
type Client struct {
	api       sdk.Client
	model     string
	maxTokens int
	log       *slog.Logger
}

// New creates a Client from LLM configuration.
func New(cfg config.LLMConfig, log *slog.Logger) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	return &Client{
		api:       sdk.NewClient(opts...),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		log:       log.With("adapter", "anthropic"),
	}
}

// Chat performs one Messages API call.
func (c *Client) Chat(ctx context.Context, req provider.ChatRequest) (*provider.ChatResponse, error) {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = c.maxTokens
	}

	params := sdk.MessageNewParams{
		Model:     sdk.Model(c.model),
		MaxTokens: int64(maxTokens),
		Messages:  toMessages(req.Messages),
	}
	if req.System != "" {
		params.System = []sdk.TextBlockParam{{Text: req.System}}
	}
	if len(req.Tools) > 0 {
		params.Tools = toTools(req.Tools)
	}

	msg, err := c.api.Messages.New(ctx, params)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("anthropic: %w", ctxErr)
		}
		c.log.ErrorContext(ctx, "messages api call failed", slog.String("model", c.model), slog.String("error", err.Error()))
		return nil, fmt.Errorf("anthropic: %w: %w", domain.ErrUpstream, err)
	}

	resp := &provider.ChatResponse{StopReason: provider.StopReason(msg.StopReason)}
	var texts []string
	for _, block := range msg.Content {
		switch block.Type {
		case "text":
			texts = append(texts, block.Text)
		case "tool_use":
			resp.ToolCalls = append(resp.ToolCalls, provider.ToolCall{
				ID:        block.ID,
				Name:      block.Name,
				Arguments: append(json.RawMessage(nil), block.Input...),
			})
		}
	}
	resp.Text = strings.TrimSpace(strings.Join(texts, "\n"))

	c.log.DebugContext(ctx, "messages api call",
		slog.String("stop_reason", string(resp.StopReason)),
		slog.Int("tool_calls", len(resp.ToolCalls)),
		slog.Int64("input_tokens", msg.Usage.InputTokens),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
	)
	return resp, nil
}

// toMessages converts the neutral conversation. Consecutive tool results are
// grouped into a single user message, as the Messages API requires.
func toMessages(msgs []provider.Message) []sdk.MessageParam {
	out := make([]sdk.MessageParam, 0, len(msgs))
	var results []sdk.ContentBlockParamUnion

	flush := func() {
		if len(results) > 0 {
			out = append(out, sdk.NewUserMessage(results...))
			results = nil
		}
	}

	for _, m := range msgs {
		switch m.Role {
		case provider.RoleTool:
			if m.Result != nil {
				results = append(results, sdk.NewToolResultBlock(m.Result.CallID, m.Result.Content, m.Result.IsError))
			}
		case provider.RoleAssistant:
			flush()
			blocks := make([]sdk.ContentBlockParamUnion, 0, len(m.ToolCalls)+1)
			if m.Text != "" {
				blocks = append(blocks, sdk.NewTextBlock(m.Text))
			}
			for _, tc := range m.ToolCalls {
				blocks = append(blocks, sdk.NewToolUseBlock(tc.ID, toolInput(tc.Arguments), tc.Name))
			}
			out = append(out, sdk.NewAssistantMessage(blocks...))
		default:
			flush()
			out = append(out, sdk.NewUserMessage(sdk.NewTextBlock(m.Text)))
		}
	}
	flush()

	return out
}

// toolInput echoes the model's arguments back verbatim, or an empty object
// when they were not valid JSON.
func toolInput(args json.RawMessage) any {
	if len(args) == 0 || !json.Valid(args) {
		return map[string]any{}
	}
	return args
}

func toTools(specs []provider.ToolSpec) []sdk.ToolUnionParam {
	out := make([]sdk.ToolUnionParam, len(specs))
	for i, s := range specs {
		props := make(map[string]any, len(s.Parameters.Properties))
		for name, p := range s.Parameters.Properties {
			props[name] = p
		}
		out[i] = sdk.ToolUnionParam{OfTool: &sdk.ToolParam{
			Name:        s.Name,
			Description: sdk.String(s.Description),
			InputSchema: sdk.ToolInputSchemaParam{
				Properties: props,
				Required:   s.Parameters.Required,
			},
		}}
	}
	return out
}
