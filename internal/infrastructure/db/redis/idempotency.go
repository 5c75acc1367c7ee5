package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/schooldesk/school-api/internal/core/domain"
)

// DefaultIdempotencyTTL is how long a send key is remembered.
const DefaultIdempotencyTTL = 24 * time.Hour

const (
	pendingMarker = "pending"
	// pendingTTL bounds how long a crashed send can hold its key.
	pendingTTL = time.Minute
)

// IdempotencyStore remembers which message an Idempotency-Key produced.
// Key format: idem:<school_id>:<key>
type IdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewIdempotencyStore wraps client. A non-positive ttl falls back to
// DefaultIdempotencyTTL.
func NewIdempotencyStore(client *redis.Client, ttl time.Duration) *IdempotencyStore {
	if ttl <= 0 {
		ttl = DefaultIdempotencyTTL
	}
	return &IdempotencyStore{client: client, ttl: ttl}
}

// Reserve claims key with SETNX. The first caller gets reserved=true; later
// callers get the stored message id, or domain.ErrSendInProgress while the
// key is still pending.
func (s *IdempotencyStore) Reserve(ctx context.Context, schoolID, key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	k := s.key(schoolID, key)
	ok, err := s.client.SetNX(ctx, k, pendingMarker, pendingTTL).Result()
	if err != nil {
		return "", false, fmt.Errorf("idempotency reserve: %w", err)
	}
	if ok {
		return "", true, nil
	}

	id, err := s.client.Get(ctx, k).Result()
	if errors.Is(err, redis.Nil) {
		// Released between SETNX and GET; the client may retry.
		return "", false, domain.ErrSendInProgress
	}
	if err != nil {
		return "", false, fmt.Errorf("idempotency lookup: %w", err)
	}
	if id == pendingMarker {
		return "", false, domain.ErrSendInProgress
	}
	return id, false, nil
}

// Complete replaces the pending marker with messageID for the full TTL.
func (s *IdempotencyStore) Complete(ctx context.Context, schoolID, key, messageID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := s.client.Set(ctx, s.key(schoolID, key), messageID, s.ttl).Err(); err != nil {
		return fmt.Errorf("idempotency complete: %w", err)
	}
	return nil
}

// Release deletes a reservation so a failed send can be retried at once.
func (s *IdempotencyStore) Release(ctx context.Context, schoolID, key string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := s.client.Del(ctx, s.key(schoolID, key)).Err(); err != nil {
		return fmt.Errorf("idempotency release: %w", err)
	}
	return nil
}

func (s *IdempotencyStore) key(schoolID, key string) string {
	return fmt.Sprintf("idem:%s:%s", schoolID, key)
}
