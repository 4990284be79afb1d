// Package idempotency remembers the first response to a client-keyed request
// so that retries replay it instead of running side effects again.
package idempotency

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/speedsales/studio-backend/internal/domain"
)

const (
	keyPrefix     = "idem:"
	pendingMarker = "\x00pending"
)

// ErrInProgress is returned by Begin when another request holds the key.
var ErrInProgress = fmt.Errorf("idempotent request in progress: %w", domain.ErrConflict)

// Store is a Redis-backed idempotency store.
type Store struct {
	rdb        goredis.Cmdable
	ttl        time.Duration
	pendingTTL time.Duration
}

// New creates a Store whose completed entries expire after ttl. A reservation
// that is never completed or released (a crashed process) expires after
// pendingTTL; values outside (0, ttl] fall back to ttl.
func New(rdb goredis.Cmdable, ttl, pendingTTL time.Duration) *Store {
	if pendingTTL <= 0 || pendingTTL > ttl {
		pendingTTL = ttl
	}
	return &Store{rdb: rdb, ttl: ttl, pendingTTL: pendingTTL}
}

func redisKey(scope, key string) string {
	return keyPrefix + scope + ":" + key
}

// Begin reserves (scope, key). It returns (nil, nil) when the caller now owns
// the key, the stored payload when a previous request completed, and
// ErrInProgress when a concurrent request has not finished yet.
func (s *Store) Begin(ctx context.Context, scope, key string) ([]byte, error) {
	k := redisKey(scope, key)

	ok, err := s.rdb.SetNX(ctx, k, pendingMarker, s.pendingTTL).Result()
	if err != nil {
		return nil, fmt.Errorf("idempotency reserve: %w", err)
	}
	if ok {
		return nil, nil
	}

	val, err := s.rdb.Get(ctx, k).Bytes()
	if errors.Is(err, goredis.Nil) {
		// Expired between SETNX and GET; try once more.
		ok, err = s.rdb.SetNX(ctx, k, pendingMarker, s.pendingTTL).Result()
		if err != nil {
			return nil, fmt.Errorf("idempotency reserve: %w", err)
		}
		if ok {
			return nil, nil
		}
		return nil, ErrInProgress
	}
	if err != nil {
		return nil, fmt.Errorf("idempotency get: %w", err)
	}
	if string(val) == pendingMarker {
		return nil, ErrInProgress
	}
	return val, nil
}

// Complete stores the final payload for (scope, key).
func (s *Store) Complete(ctx context.Context, scope, key string, payload []byte) error {
	if err := s.rdb.Set(ctx, redisKey(scope, key), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("idempotency complete: %w", err)
	}
	return nil
}

// Release drops a reservation so that the request can be retried.
func (s *Store) Release(ctx context.Context, scope, key string) error {
	if err := s.rdb.Del(ctx, redisKey(scope, key)).Err(); err != nil {
		return fmt.Errorf("idempotency release: %w", err)
	}
	return nil
}
