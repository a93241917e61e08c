package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/safekids/app-safekids/internal/models"
	"github.com/safekids/app-safekids/internal/observability"
	"github.com/safekids/app-safekids/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// photoMetadata is stored in the GridFS file document
type photoMetadata struct {
	ContentType string `bson:"contentType"`
	SHA256      string `bson:"sha256"`
	Path        string `bson:"path"`
}

// GridFSStore keeps photos in a MongoDB GridFS bucket
type GridFSStore struct {
	db       *mongo.Database
	bucket   string
	maxBytes int64
}

// NewGridFSStore creates a photo store over the named bucket
func NewGridFSStore(db *mongo.Database, bucket string, maxBytes int64) *GridFSStore {
	return &GridFSStore{db: db, bucket: bucket, maxBytes: maxBytes}
}

// open returns a bucket bounded by the context deadline. Buckets carry
// their deadline as state, so one is built per call.
func (s *GridFSStore) open(ctx context.Context) (*gridfs.Bucket, error) {
	b, err := gridfs.NewBucket(s.db, options.GridFSBucket().SetName(s.bucket))
	if err != nil {
		return nil, fmt.Errorf("failed to open bucket %s: %w", s.bucket, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		if err := b.SetReadDeadline(deadline); err != nil {
			return nil, err
		}
		if err := b.SetWriteDeadline(deadline); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Upload stores an image under <folder>/<unix-millis>_<filename>
func (s *GridFSStore) Upload(ctx context.Context, folder, filename, contentType string, r io.Reader) (*models.Photo, error) {
	ctx, span, done := utils.TraceDatabaseOperation(ctx, "gridfs_upload", s.bucket)
	defer done()

	photo, data, err := prepare(folder, filename, r, s.maxBytes)
	if err != nil {
		return nil, err
	}

	bucket, err := s.open(ctx)
	if err != nil {
		return nil, err
	}

	oid := primitive.NewObjectID()
	meta := photoMetadata{ContentType: photo.ContentType, SHA256: photo.SHA256, Path: photo.Path}
	uploadOpts := options.GridFSUpload().SetMetadata(meta)

	if err := bucket.UploadFromStreamWithID(oid, photo.Path, bytes.NewReader(data), uploadOpts); err != nil {
		utils.RecordErrorInSpan(span, err, utils.Attrs{"photo.path": photo.Path})
		observability.DatabaseOperations.WithLabelValues("photos.upload", "error").Inc()
		return nil, fmt.Errorf("failed to upload photo: %w", err)
	}
	observability.DatabaseOperations.WithLabelValues("photos.upload", "success").Inc()

	if contentType != "" && contentType != photo.ContentType {
		observability.Logger().Debug("declared photo type differs from content",
			zap.String("declared", contentType),
			zap.String("detected", photo.ContentType))
	}

	photo.ID = oid.Hex()
	photo.URL = photoURL(photo.ID)
	return photo, nil
}

// Open streams a stored photo
func (s *GridFSStore) Open(ctx context.Context, id string) (io.ReadCloser, *models.Photo, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil, ErrNotFound
	}

	bucket, err := s.open(ctx)
	if err != nil {
		return nil, nil, err
	}

	stream, err := bucket.OpenDownloadStream(oid)
	if errors.Is(err, gridfs.ErrFileNotFound) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open photo: %w", err)
	}

	file := stream.GetFile()
	var meta photoMetadata
	if len(file.Metadata) > 0 {
		if err := bson.Unmarshal(file.Metadata, &meta); err != nil {
			_ = stream.Close()
			return nil, nil, fmt.Errorf("failed to decode photo metadata: %w", err)
		}
	}

	return stream, &models.Photo{
		ID:          id,
		Path:        file.Name,
		ContentType: meta.ContentType,
		Size:        file.Length,
		SHA256:      meta.SHA256,
		URL:         photoURL(id),
		UploadedAt:  file.UploadDate,
	}, nil
}

// Delete removes a photo and its chunks
func (s *GridFSStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	bucket, err := s.open(ctx)
	if err != nil {
		return err
	}

	if err := bucket.Delete(oid); err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete photo: %w", err)
	}
	return nil
}
