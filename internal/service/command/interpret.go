package command

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/speedsales/studio-backend/internal/domain"
	"github.com/speedsales/studio-backend/internal/provider"
	"github.com/speedsales/studio-backend/internal/service/tool"
)

const (
	msgNotUnderstood = "I couldn't process that. Try rephrasing."
	msgNoActions     = "Done. No actions taken."
)

// Interpret runs one command to completion and persists exactly one log entry.
func (s *Service) Interpret(ctx context.Context, userID uuid.UUID, command string) (*Result, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}

	command = strings.TrimSpace(command)
	if command == "" {
		return nil, domain.NewValidationError("content", "required")
	}
	if len(command) > maxCommandLen {
		return nil, domain.NewValidationError("content", fmt.Sprintf("max %d characters", maxCommandLen))
	}
	if s.llm == nil {
		return nil, fmt.Errorf("language model: %w", domain.ErrNotConfigured)
	}

	start := time.Now()
	run, err := s.converse(ctx, userID, command)
	if err != nil {
		s.log.WarnContext(ctx, "command failed",
			slog.String("user_id", userID.String()),
			slog.Int("iterations", run.iterations),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	summary := run.summary()

	res := &Result{Summary: summary}
	entry, err := s.logs.Create(ctx, userID, command, summary)
	if err != nil {
		s.log.ErrorContext(ctx, "log entry not saved",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
	} else {
		res.LogEntryID = &entry.ID
	}

	s.log.InfoContext(ctx, "command interpreted",
		slog.String("user_id", userID.String()),
		slog.Int("iterations", run.iterations),
		slog.Bool("exhausted", run.exhausted),
		slog.Any("tools", run.toolNames()),
		slog.Any("outcomes", run.kinds()),
		slog.Duration("duration", time.Since(start)),
	)

	return res, nil
}

// InterpretOnce is Interpret guarded by a client-supplied key. A repeated key
// returns the stored result without running tools again. Without a configured
// store or key it behaves like Interpret.
func (s *Service) InterpretOnce(ctx context.Context, userID uuid.UUID, key, command string) (*Result, error) {
	key = strings.TrimSpace(key)
	if s.idem == nil || key == "" {
		return s.Interpret(ctx, userID, command)
	}

	scope := userID.String()
	stored, err := s.idem.Begin(ctx, scope, key)
	if err != nil {
		return nil, err
	}
	if stored != nil {
		var res Result
		if err := json.Unmarshal(stored, &res); err != nil {
			return nil, fmt.Errorf("decode stored result: %w", err)
		}
		s.log.InfoContext(ctx, "command replayed", slog.String("user_id", scope))
		return &res, nil
	}

	// Release on error or panic. Once a result exists the key stays held,
	// even if Complete fails, so a retry cannot repeat a sale.
	ran := false
	defer func() {
		if ran {
			return
		}
		if rerr := s.idem.Release(context.WithoutCancel(ctx), scope, key); rerr != nil {
			s.log.WarnContext(ctx, "idempotency release failed", slog.String("error", rerr.Error()))
		}
	}()

	res, err := s.Interpret(ctx, userID, command)
	if err != nil {
		return nil, err
	}
	ran = true

	payload, err := json.Marshal(res)
	if err == nil {
		err = s.idem.Complete(context.WithoutCancel(ctx), scope, key, payload)
	}
	if err != nil {
		s.log.WarnContext(ctx, "idempotency store failed", slog.String("error", err.Error()))
	}
	return res, nil
}

type run struct {
	final      string
	done       bool
	exhausted  bool
	iterations int
	outcomes   []tool.Outcome
}

// converse drives the model/tool loop for at most maxIterations model calls.
func (s *Service) converse(ctx context.Context, userID uuid.UUID, command string) (*run, error) {
	r := &run{}
	specs := s.tools.Specs()
	messages := []provider.Message{provider.UserMessage(command)}

	for r.iterations < s.maxIterations {
		r.iterations++

		resp, err := s.llm.Chat(ctx, provider.ChatRequest{
			System:   systemPrompt,
			Messages: messages,
			Tools:    specs,
		})
		if err != nil {
			return r, fmt.Errorf("iteration %d: %w", r.iterations, err)
		}

		if len(resp.ToolCalls) == 0 {
			r.done = true
			r.final = strings.TrimSpace(resp.Text)
			if r.final == "" {
				r.final = msgNotUnderstood
			}
			return r, nil
		}

		messages = append(messages, provider.AssistantMessage(resp))
		for _, call := range resp.ToolCalls {
			if err := ctx.Err(); err != nil {
				return r, err
			}
			out := s.tools.Execute(ctx, userID, call)
			r.outcomes = append(r.outcomes, out)
			messages = append(messages, provider.ToolMessage(call.ID, out.String(), out.IsError()))
		}
	}

	r.exhausted = true
	return r, nil
}

// summary returns the final text, or a best-effort summary built from tool
// results when the iteration bound was reached.
func (r *run) summary() string {
	if r.done {
		return r.final
	}

	switch len(r.outcomes) {
	case 0:
		return msgNoActions
	case 1:
		text := r.outcomes[0].String()
		if tool.HasOutcomeGlyph(text) {
			return text
		}
		return tool.SuccessGlyph() + " " + text
	default:
		parts := make([]string, len(r.outcomes))
		for i, o := range r.outcomes {
			parts[i] = o.String()
		}
		return tool.SuccessGlyph() + " " + strings.Join(parts, " ")
	}
}

func (r *run) toolNames() []string {
	names := make([]string, len(r.outcomes))
	for i, o := range r.outcomes {
		names[i] = o.Tool
	}
	return names
}

func (r *run) kinds() []string {
	kinds := make([]string, len(r.outcomes))
	for i, o := range r.outcomes {
		kinds[i] = o.Kind.String()
	}
	return kinds
}
