package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// WindowStore counts requests per client in fixed windows shared by every
// server instance.
type WindowStore struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

// NewWindowStore creates a store writing keys under prefix.
func NewWindowStore(client *redis.Client, prefix string) *WindowStore {
	return &WindowStore{client: client, prefix: prefix, now: time.Now}
}

// Allow increments key's counter for the current window and reports whether
// it is still within limit. When it is not, the returned duration is the time
// left until the window resets.
func (s *WindowStore) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error) {
	now := s.now()
	slot := now.UnixNano() / int64(window)
	k := s.prefix + key + ":" + strconv.FormatInt(slot, 10)

	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.PExpire(ctx, k, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, fmt.Errorf("redis: rate window %s: %w", key, err)
	}

	if incr.Val() <= int64(limit) {
		return true, 0, nil
	}
	resetAt := time.Unix(0, (slot+1)*int64(window))
	return false, resetAt.Sub(now), nil
}

// Ping checks the connection backing the store.
func (s *WindowStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
