package services

import (
	"context"
	"io"

	"github.com/safekids/app-safekids/internal/logging"
	"github.com/safekids/app-safekids/internal/models"
	"github.com/safekids/app-safekids/internal/observability"
	"github.com/safekids/app-safekids/internal/storage"
	"go.uber.org/zap"
)

// PhotoService stores photos taken by the console
type PhotoService struct {
	store  storage.PhotoStore
	logger *logging.SafeLogger
}

// NewPhotoService creates a new photo service
func NewPhotoService(store storage.PhotoStore) *PhotoService {
	return &PhotoService{store: store, logger: logging.Logger.Named("photo_service")}
}

// PhotoServiceInstance is the global photo service
var PhotoServiceInstance *PhotoService

// Upload stores an image in folder
func (s *PhotoService) Upload(ctx context.Context, folder, filename, contentType string, r io.Reader) (*models.Photo, error) {
	photo, err := s.store.Upload(ctx, folder, filename, contentType, r)
	if err != nil {
		status := "error"
		if storage.IsClientError(err) {
			status = "rejected"
		}
		observability.PhotoUploads.WithLabelValues(folder, status).Inc()
		s.logger.Warn("photo upload failed", zap.String("folder", folder), zap.Error(err))
		return nil, err
	}

	observability.PhotoUploads.WithLabelValues(folder, "success").Inc()
	s.logger.Info("photo uploaded",
		zap.String("id", photo.ID),
		zap.String("path", photo.Path),
		zap.Int64("size", photo.Size))
	return photo, nil
}

// Open streams a stored photo
func (s *PhotoService) Open(ctx context.Context, id string) (io.ReadCloser, *models.Photo, error) {
	return s.store.Open(ctx, id)
}

// Delete removes a stored photo
func (s *PhotoService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
