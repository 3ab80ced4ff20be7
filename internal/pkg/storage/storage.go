// Package storage persists uploaded images and hands back their public URLs.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"company-profile-be/internal/pkg/apperr"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var allowedTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// Backend stores raw bytes under a key.
type Backend interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Remove(ctx context.Context, key string) error
	// KeyFromURL reports the key of a URL this backend issued.
	KeyFromURL(url string) (string, bool)
}

type Storage interface {
	Save(ctx context.Context, folder, field string, fh *multipart.FileHeader) (*StoredFile, error)
	Delete(ctx context.Context, url string) error
}

type StoredFile struct {
	URL         string
	Key         string
	ContentType string
	Size        int64
}

type Options struct {
	MaxSizeBytes int64
	// MaxImageWidth downscales wider JPEG and PNG images. 0 disables it.
	MaxImageWidth int
}

type ImageStorage struct {
	backend Backend
	opts    Options
}

func New(backend Backend, opts Options) *ImageStorage {
	return &ImageStorage{backend: backend, opts: opts}
}

// Save validates the upload named field and stores it under folder.
// Rejections are validation errors naming the field.
func (s *ImageStorage) Save(ctx context.Context, folder, field string, fh *multipart.FileHeader) (*StoredFile, error) {
	limit := s.opts.MaxSizeBytes
	if limit > 0 && fh.Size > limit {
		return nil, apperr.InvalidField(field, "file exceeds the "+humanSize(limit)+" limit")
	}

	src, err := fh.Open()
	if err != nil {
		return nil, errors.Wrap(err, "open upload")
	}
	defer src.Close()

	var r io.Reader = src
	if limit > 0 {
		r = io.LimitReader(src, limit+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read upload")
	}
	if limit > 0 && int64(len(data)) > limit {
		return nil, apperr.InvalidField(field, "file exceeds the "+humanSize(limit)+" limit")
	}
	if len(data) == 0 {
		return nil, apperr.InvalidField(field, "file is empty")
	}

	mtype := mimetype.Detect(data)
	contentType := mtype.String()
	for m := mtype; m != nil; m = m.Parent() {
		if allowedTypes[m.String()] {
			contentType = m.String()
			break
		}
	}
	if !allowedTypes[contentType] {
		return nil, apperr.InvalidField(field, "must be an image (jpeg, png, gif, webp or svg)")
	}

	if data, err = s.downscale(data, contentType); err != nil {
		return nil, apperr.InvalidField(field, "image could not be decoded")
	}

	key := fmt.Sprintf("%s/%s-%s%s", folder, time.Now().Format("20060102"), uuid.NewString(), mtype.Extension())
	url, err := s.backend.Put(ctx, key, data, contentType)
	if err != nil {
		return nil, errors.Wrap(err, "store upload")
	}

	return &StoredFile{URL: url, Key: key, ContentType: contentType, Size: int64(len(data))}, nil
}

func (s *ImageStorage) downscale(data []byte, contentType string) ([]byte, error) {
	var format imaging.Format
	switch contentType {
	case "image/jpeg":
		format = imaging.JPEG
	case "image/png":
		format = imaging.PNG
	default:
		return data, nil
	}
	if s.opts.MaxImageWidth <= 0 {
		return data, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}
	if img.Bounds().Dx() <= s.opts.MaxImageWidth {
		return data, nil
	}

	resized := imaging.Resize(img, s.opts.MaxImageWidth, 0, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format, imaging.JPEGQuality(85)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func humanSize(n int64) string {
	if n >= 1<<20 {
		return fmt.Sprintf("%d MB", n>>20)
	}
	return fmt.Sprintf("%d KB", n>>10)
}

// Delete removes a file previously returned by Save. URLs the backend did
// not issue are ignored.
func (s *ImageStorage) Delete(ctx context.Context, url string) error {
	key, ok := s.backend.KeyFromURL(url)
	if !ok {
		return nil
	}
	return s.backend.Remove(ctx, key)
}
