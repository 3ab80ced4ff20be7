package storage

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"company-profile-be/internal/pkg/apperr"

	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := imaging.New(w, h, color.NRGBA{R: 200, G: 10, B: 10, A: 255})
	require.NoError(t, imaging.Encode(&buf, img, imaging.PNG))
	return buf.Bytes()
}

// fileHeader builds a FileHeader the way a multipart request delivers it.
func fileHeader(t *testing.T, field, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File[field][0]
}

func TestSaveStoresImageLocally(t *testing.T) {
	dir := t.TempDir()
	s := New(NewLocalBackend(dir, "/uploads"), Options{MaxSizeBytes: 1 << 20})

	stored, err := s.Save(context.Background(), "products", "image", fileHeader(t, "image", "w.png", pngBytes(t, 20, 10)))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stored.URL, "/uploads/products/"))
	assert.True(t, strings.HasSuffix(stored.URL, ".png"))
	assert.Equal(t, "image/png", stored.ContentType)

	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(stored.Key)))
	assert.NoError(t, err)

	require.NoError(t, s.Delete(context.Background(), stored.URL))
	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(stored.Key)))
	assert.True(t, os.IsNotExist(err))
}

func TestSaveRejections(t *testing.T) {
	s := New(NewLocalBackend(t.TempDir(), "/uploads"), Options{MaxSizeBytes: 1024})

	tests := []struct {
		name    string
		content []byte
		reason  string
	}{
		{name: "not an image", content: []byte("just some text"), reason: "must be an image (jpeg, png, gif, webp or svg)"},
		{name: "too large", content: bytes.Repeat([]byte{0x89}, 4096), reason: "file exceeds the 1 KB limit"},
		{name: "empty", content: []byte{}, reason: "file is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Save(context.Background(), "products", "image", fileHeader(t, "image", "x.bin", tt.content))
			require.Error(t, err)
			assert.True(t, apperr.IsValidation(err))
			assert.Equal(t, tt.reason, apperr.From(err).Fields["image"])
		})
	}
}

func TestSaveDownscalesWideImages(t *testing.T) {
	dir := t.TempDir()
	s := New(NewLocalBackend(dir, "/uploads"), Options{MaxSizeBytes: 1 << 20, MaxImageWidth: 100})

	stored, err := s.Save(context.Background(), "news", "featured_image", fileHeader(t, "featured_image", "big.png", pngBytes(t, 400, 200)))
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(dir, filepath.FromSlash(stored.Key)))
	require.NoError(t, err)
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, 50, cfg.Height)
}

func TestLocalKeyFromURL(t *testing.T) {
	b := NewLocalBackend("/tmp/x", "/uploads/")

	key, ok := b.KeyFromURL("/uploads/products/a.png")
	assert.True(t, ok)
	assert.Equal(t, "products/a.png", key)

	for _, url := range []string{"https://cdn.example.com/a.png", "/uploads/../etc/passwd", "/uploads/"} {
		_, ok := b.KeyFromURL(url)
		assert.False(t, ok, url)
	}
}

type fakeS3 struct {
	uploaded map[string][]byte
	deleted  []string
}

func (f *fakeS3) Upload(_ context.Context, in *s3.PutObjectInput, _ ...func(*manager.Uploader)) (*manager.UploadOutput, error) {
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(in.Body)
	f.uploaded[*in.Key] = buf.Bytes()
	return &manager.UploadOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleted = append(f.deleted, *in.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Backend(t *testing.T) {
	fake := &fakeS3{uploaded: map[string][]byte{}}
	s := New(NewS3BackendWithClients(fake, fake, "assets", "https://cdn.example.com/"), Options{MaxSizeBytes: 1 << 20})
	ctx := context.Background()

	stored, err := s.Save(ctx, "partners", "logo", fileHeader(t, "logo", "logo.png", pngBytes(t, 4, 4)))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/"+stored.Key, stored.URL)
	assert.Contains(t, fake.uploaded, stored.Key)

	require.NoError(t, s.Delete(ctx, stored.URL))
	require.NoError(t, s.Delete(ctx, "/uploads/elsewhere.png"))
	assert.Equal(t, []string{stored.Key}, fake.deleted)
}
