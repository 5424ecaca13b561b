package interfaces

import (
	"context"
	"time"
)

// IHandoffStore is the session-scoped key/value store bridging the estimate
// page and the scheduling page.
//
// Put overwrites any prior value under key. Get returns (nil, nil) when the
// key is absent or expired.
type IHandoffStore interface {
	Put(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
}
