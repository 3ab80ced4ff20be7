package service

import (
	"bytes"
	"context"
	"image/color"
	"io/fs"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"company-profile-be/internal/pkg/storage"
	"company-profile-be/internal/repository/memory"
	"company-profile-be/internal/repository/unitofwork"
	"company-profile-be/internal/resource"
	"company-profile-be/pkg/cache"
	"company-profile-be/pkg/events"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

// recordingPublisher keeps every published event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.EventType())
	}
	return out
}

type fixture struct {
	factory   unitofwork.RepositoryFactory
	uploadDir string
	cache     cache.Engine
	publisher *recordingPublisher
	deps      ResourceServiceDeps
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	f := &fixture{
		factory:   unitofwork.NewMemoryRepositoryFactory(memory.NewDatabase()),
		uploadDir: dir,
		cache:     cache.NewLocalEngine(time.Minute),
		publisher: &recordingPublisher{},
	}
	f.deps = ResourceServiceDeps{
		Factory:   f.factory,
		Storage:   storage.New(storage.NewLocalBackend(dir, "/uploads"), storage.Options{MaxSizeBytes: 1 << 20}),
		Cache:     f.cache,
		CacheTTL:  time.Minute,
		Publisher: f.publisher,
	}
	return f
}

func newService[M any](f *fixture, def *resource.Definition) IResourceService[M] {
	return NewResourceService[M](def, f.deps)
}

// fileExists resolves a local upload URL to its path on disk.
func (f *fixture) fileExists(url string) bool {
	key := strings.TrimPrefix(url, "/uploads/")
	_, err := os.Stat(filepath.Join(f.uploadDir, filepath.FromSlash(key)))
	return err == nil
}

func (f *fixture) storedFiles(t *testing.T) []string {
	t.Helper()
	var out []string
	err := filepath.WalkDir(f.uploadDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			out = append(out, path)
		}
		return nil
	})
	require.NoError(t, err)
	return out
}

func pngUpload(t *testing.T, field string) *multipart.FileHeader {
	t.Helper()
	var img bytes.Buffer
	require.NoError(t, imaging.Encode(&img, imaging.New(8, 8, color.NRGBA{B: 255, A: 255}), imaging.PNG))

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile(field, "pic.png")
	require.NoError(t, err)
	_, err = part.Write(img.Bytes())
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File[field][0]
}
