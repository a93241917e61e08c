package storage

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/safekids/app-safekids/internal/models"
)

// ErrNotFound is returned when a photo id is unknown
var ErrNotFound = models.ErrNotFound

// URLPrefix is where photos are served from
const URLPrefix = "/v1/photos/"

// allowedTypes are the image formats browsers capture and render
var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// PhotoStore keeps uploaded images
type PhotoStore interface {
	Upload(ctx context.Context, folder, filename, contentType string, r io.Reader) (*models.Photo, error)
	Open(ctx context.Context, id string) (io.ReadCloser, *models.Photo, error)
	Delete(ctx context.Context, id string) error
}

// Clock stamps uploads
var Clock = time.Now

func sanitizeFilename(filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	name = strings.Map(func(r rune) rune {
		switch {
		case r == ' ':
			return '_'
		case r < 0x20 || r == '/':
			return -1
		}
		return r
	}, name)
	if name == "" || name == "." || name == ".." {
		return "foto"
	}
	return name
}

// prepare reads the image, enforces the size and type limits and fills in
// every Photo field except the id and URL.
func prepare(folder, filename string, r io.Reader, maxBytes int64) (*models.Photo, []byte, error) {
	if !models.ValidPhotoFolder(folder) {
		return nil, nil, fmt.Errorf("%w: %q", models.ErrInvalidPhotoFolder, folder)
	}

	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read photo: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, nil, models.ErrPhotoTooLarge
	}
	if len(data) == 0 {
		return nil, nil, fmt.Errorf("%w: arquivo vazio", models.ErrInvalidPhotoType)
	}

	detected := mimetype.Detect(data).String()
	if !allowedTypes[detected] {
		return nil, nil, fmt.Errorf("%w: %s", models.ErrInvalidPhotoType, detected)
	}

	sum := sha256.Sum256(data)
	now := Clock().UTC()

	return &models.Photo{
		Path:        fmt.Sprintf("%s/%d_%s", folder, now.UnixMilli(), sanitizeFilename(filename)),
		ContentType: detected,
		Size:        int64(len(data)),
		SHA256:      hex.EncodeToString(sum[:]),
		UploadedAt:  now.Truncate(time.Millisecond),
	}, data, nil
}

func photoURL(id string) string {
	return URLPrefix + id
}

// IsClientError reports whether err was caused by the uploaded content
func IsClientError(err error) bool {
	return errors.Is(err, models.ErrInvalidPhotoType) ||
		errors.Is(err, models.ErrPhotoTooLarge) ||
		errors.Is(err, models.ErrInvalidPhotoFolder)
}

type nopReadCloser struct{ *bytes.Reader }

func (nopReadCloser) Close() error { return nil }
