package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type LocalEngine struct {
	cache *gocache.Cache
}

func NewLocalEngine(defaultTTL time.Duration) *LocalEngine {
	return &LocalEngine{cache: gocache.New(defaultTTL, 2*defaultTTL)}
}

func (l *LocalEngine) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, found := l.cache.Get(key)
	if !found {
		return nil, false, nil
	}
	return v.([]byte), true, nil
}

func (l *LocalEngine) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	l.cache.Set(key, b, ttl)
	return nil
}

func (l *LocalEngine) Delete(_ context.Context, key string) error {
	l.cache.Delete(key)
	return nil
}

func (l *LocalEngine) InvalidatePrefix(_ context.Context, prefix string) error {
	for key := range l.cache.Items() {
		if strings.HasPrefix(key, prefix) {
			l.cache.Delete(key)
		}
	}
	return nil
}

func (l *LocalEngine) Close() {
	l.cache.Flush()
}
