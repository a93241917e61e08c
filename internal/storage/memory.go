package storage

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/safekids/app-safekids/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memoryPhoto struct {
	photo models.Photo
	data  []byte
}

// MemoryStore keeps photos in process memory
type MemoryStore struct {
	mu       sync.RWMutex
	photos   map[string]memoryPhoto
	maxBytes int64
}

// NewMemoryStore creates an empty in-memory photo store
func NewMemoryStore(maxBytes int64) *MemoryStore {
	return &MemoryStore{photos: make(map[string]memoryPhoto), maxBytes: maxBytes}
}

// Upload stores an image under <folder>/<unix-millis>_<filename>
func (s *MemoryStore) Upload(_ context.Context, folder, filename, _ string, r io.Reader) (*models.Photo, error) {
	photo, data, err := prepare(folder, filename, r, s.maxBytes)
	if err != nil {
		return nil, err
	}

	photo.ID = primitive.NewObjectID().Hex()
	photo.URL = photoURL(photo.ID)

	s.mu.Lock()
	s.photos[photo.ID] = memoryPhoto{photo: *photo, data: data}
	s.mu.Unlock()

	return photo, nil
}

// Open streams a stored photo
func (s *MemoryStore) Open(_ context.Context, id string) (io.ReadCloser, *models.Photo, error) {
	s.mu.RLock()
	p, ok := s.photos[id]
	s.mu.RUnlock()
	if !ok {
		return nil, nil, ErrNotFound
	}
	photo := p.photo
	return nopReadCloser{bytes.NewReader(p.data)}, &photo, nil
}

// Delete removes a photo
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.photos[id]; !ok {
		return ErrNotFound
	}
	delete(s.photos, id)
	return nil
}

// Len reports how many photos are stored
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.photos)
}
