package storage

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalBackend writes files below dir and serves them under publicPrefix.
type LocalBackend struct {
	dir          string
	publicPrefix string
}

func NewLocalBackend(dir, publicPrefix string) *LocalBackend {
	return &LocalBackend{dir: dir, publicPrefix: strings.TrimRight(publicPrefix, "/")}
}

func (b *LocalBackend) Put(_ context.Context, key string, data []byte, _ string) (string, error) {
	dst := filepath.Join(b.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return "", err
	}
	return b.publicPrefix + "/" + key, nil
}

func (b *LocalBackend) Remove(_ context.Context, key string) error {
	err := os.Remove(filepath.Join(b.dir, filepath.FromSlash(key)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (b *LocalBackend) KeyFromURL(url string) (string, bool) {
	key, ok := strings.CutPrefix(url, b.publicPrefix+"/")
	if !ok || key == "" {
		return "", false
	}
	clean := path.Clean(key)
	if clean != key || strings.HasPrefix(clean, "../") || path.IsAbs(clean) {
		return "", false
	}
	return clean, true
}
