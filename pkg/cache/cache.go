// Package cache stores JSON-encoded values with TTLs behind one interface,
// backed by process memory or Redis.
package cache

import (
	"context"
	"encoding/json"
	"time"
)

type Engine interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	InvalidatePrefix(ctx context.Context, prefix string) error
	Close()
}

// GetJSON decodes the cached value into dst. A value that no longer decodes
// counts as a miss.
func GetJSON(ctx context.Context, e Engine, key string, dst any) (bool, error) {
	raw, found, err := e.Get(ctx, key)
	if err != nil || !found {
		return false, err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, nil
	}
	return true, nil
}
