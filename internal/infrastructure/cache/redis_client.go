package cache

import (
	"context"
	"crypto/tls"
	"strings"

	"sqv_cleaning/internal/config"
	"sqv_cleaning/pkg/logging"

	"github.com/redis/go-redis/v9"
)

// BuildRedisClient returns a client for the hand-off store, or nil when no
// address is configured or (with verify) the server does not answer PING.
func BuildRedisClient(ctx context.Context, cfg *config.Config, logger *logging.Logger, verify bool) *redis.Client {
	if cfg == nil || strings.TrimSpace(cfg.RedisAddr) == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}

	opts := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(opts)
	if !verify {
		return client
	}
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis not available", "addr", cfg.RedisAddr, "error", err)
		_ = client.Close()
		return nil
	}
	return client
}
