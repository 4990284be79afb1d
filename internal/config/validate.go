package config

import (
	"fmt"
	"strings"
)

const (
	minJWTSecretLen  = 32
	maxIterationsCap = 20
	maxHistoryLimit  = 100
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < minJWTSecretLen {
		return fmt.Errorf("auth.jwt_secret must be at least %d characters (got %d)", minJWTSecretLen, len(c.Auth.JWTSecret))
	}

	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}
	if err := c.Interpreter.validate(); err != nil {
		return fmt.Errorf("interpreter: %w", err)
	}
	if err := c.Redis.validate(); err != nil {
		return fmt.Errorf("redis: %w", err)
	}

	if c.RateLimit.CommandsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.commands_per_minute must be > 0 (got %d)", c.RateLimit.CommandsPerMinute)
	}

	return nil
}

func (l *LLMConfig) validate() error {
	l.Provider = strings.ToLower(strings.TrimSpace(l.Provider))
	if !l.IsSupported() {
		return fmt.Errorf("provider %q is not supported (supported: %s)", l.Provider, strings.Join(SupportedProviders, ", "))
	}
	if strings.TrimSpace(l.Model) == "" {
		return fmt.Errorf("model is required")
	}
	if l.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", l.MaxTokens)
	}
	return nil
}

func (i *InterpreterConfig) validate() error {
	if i.MaxIterations < 1 || i.MaxIterations > maxIterationsCap {
		return fmt.Errorf("max_iterations must be between 1 and %d (got %d)", maxIterationsCap, i.MaxIterations)
	}
	if i.HistoryLimit < 1 || i.HistoryLimit > maxHistoryLimit {
		return fmt.Errorf("history_limit must be between 1 and %d (got %d)", maxHistoryLimit, i.HistoryLimit)
	}
	return nil
}

func (r *RedisConfig) validate() error {
	if !r.Enabled {
		return nil
	}
	if strings.TrimSpace(r.Addr) == "" {
		return fmt.Errorf("addr is required when redis is enabled")
	}
	if r.IdempotencyTTL <= 0 {
		return fmt.Errorf("idempotency_ttl must be > 0 (got %v)", r.IdempotencyTTL)
	}
	if r.PendingTTL <= 0 {
		return fmt.Errorf("pending_ttl must be > 0 (got %v)", r.PendingTTL)
	}
	if r.PendingTTL > r.IdempotencyTTL {
		r.PendingTTL = r.IdempotencyTTL
	}
	return nil
}
