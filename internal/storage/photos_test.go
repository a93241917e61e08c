package storage

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"testing"
	"time"

	"github.com/safekids/app-safekids/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pngHeader  = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")
	jpegHeader = []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00\x01\x01\x00\x00\x01\x00\x01\x00\x00")
)

func fixedClock(t *testing.T) {
	orig := Clock
	Clock = func() time.Time { return time.UnixMilli(1700000000123) }
	t.Cleanup(func() { Clock = orig })
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "foto.png", sanitizeFilename("foto.png"))
	assert.Equal(t, "minha_foto.png", sanitizeFilename("minha foto.png"))
	assert.Equal(t, "passwd", sanitizeFilename("../../etc/passwd"))
	assert.Equal(t, "img.jpg", sanitizeFilename(`C:\fotos\img.jpg`))
	assert.Equal(t, "foto", sanitizeFilename(""))
	assert.Equal(t, "foto", sanitizeFilename(".."))
}

func TestMemoryStore_Upload(t *testing.T) {
	fixedClock(t)
	store := NewMemoryStore(1024)
	ctx := context.Background()

	photo, err := store.Upload(ctx, models.PhotoFolderCheckIns, "entrada.png", "image/png", bytes.NewReader(pngHeader))
	require.NoError(t, err)

	sum := sha256.Sum256(pngHeader)
	assert.NotEmpty(t, photo.ID)
	assert.Equal(t, "checkins/1700000000123_entrada.png", photo.Path)
	assert.Equal(t, "image/png", photo.ContentType)
	assert.Equal(t, int64(len(pngHeader)), photo.Size)
	assert.Equal(t, hex.EncodeToString(sum[:]), photo.SHA256)
	assert.Equal(t, "/v1/photos/"+photo.ID, photo.URL)

	rc, meta, err := store.Open(ctx, photo.ID)
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, data)
	assert.Equal(t, photo.Path, meta.Path)

	require.NoError(t, store.Delete(ctx, photo.ID))
	_, _, err = store.Open(ctx, photo.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, photo.ID), ErrNotFound)
}

func TestMemoryStore_UploadDetectsType(t *testing.T) {
	store := NewMemoryStore(1024)

	photo, err := store.Upload(context.Background(), models.PhotoFolderCriancas, "a.bin", "application/octet-stream", bytes.NewReader(jpegHeader))
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", photo.ContentType)
}

func TestMemoryStore_UploadRejections(t *testing.T) {
	store := NewMemoryStore(64)
	ctx := context.Background()

	tests := []struct {
		name    string
		folder  string
		content []byte
		wantErr error
	}{
		{"unknown folder", "outros", pngHeader, models.ErrInvalidPhotoFolder},
		{"text content", models.PhotoFolderTios, []byte("hello world"), models.ErrInvalidPhotoType},
		{"empty", models.PhotoFolderTios, nil, models.ErrInvalidPhotoType},
		{"too large", models.PhotoFolderTios, append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 64)...), models.ErrPhotoTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Upload(ctx, tt.folder, "x.png", "image/png", bytes.NewReader(tt.content))
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsClientError(err))
		})
	}
}

func TestIsClientError(t *testing.T) {
	assert.False(t, IsClientError(io.ErrUnexpectedEOF))
	assert.False(t, IsClientError(nil))
	assert.True(t, IsClientError(models.ErrPhotoTooLarge))
}
