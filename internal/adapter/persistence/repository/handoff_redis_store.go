package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sqv_cleaning/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// HandoffRedisStore keeps hand-off records in Redis with SET EX semantics, so
// expiry is handled by the server.
type HandoffRedisStore struct {
	client *redis.Client
	prefix string
}

var _ interfaces.IHandoffStore = (*HandoffRedisStore)(nil)

func NewHandoffRedisStore(client *redis.Client, prefix string) *HandoffRedisStore {
	return &HandoffRedisStore{client: client, prefix: prefix}
}

func (s *HandoffRedisStore) Put(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := s.client.Set(ctx, s.prefix+key, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set handoff: %w", err)
	}
	return nil
}

func (s *HandoffRedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get handoff: %w", err)
	}
	return data, nil
}
