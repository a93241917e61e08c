package repository

import (
	"context"
	"errors"
	"time"

	"github.com/safekids/app-safekids/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrNotFound is returned when no document matches
	ErrNotFound = models.ErrNotFound
	// ErrDuplicate is returned when a unique index rejects a write
	ErrDuplicate = errors.New("duplicate key")
)

// Filter is an equality filter over top-level fields. Array fields match
// when they contain the value.
type Filter = bson.M

// ListOptions bounds a listing; zero Limit means no limit
type ListOptions struct {
	Skip  int64
	Limit int64
}

// Record is a pointer to a stored model carrying Meta
type Record[T any] interface {
	*T
	Metadata() *models.Meta
}

// Store is a collection of T ordered newest first
type Store[T any] interface {
	// List returns documents ordered by createdAt descending
	List(ctx context.Context, opts ListOptions) ([]T, error)
	Count(ctx context.Context, filter Filter) (int64, error)
	Get(ctx context.Context, id string) (*T, error)
	// FindBy returns the first document whose field equals value
	FindBy(ctx context.Context, field string, value interface{}) (*T, error)
	// Find returns every document matching filter, newest first
	Find(ctx context.Context, filter Filter) ([]T, error)
	// ListContaining returns documents whose array field contains value
	ListContaining(ctx context.Context, field string, value interface{}) ([]T, error)
	// Create stamps id, timestamps and version then inserts doc
	Create(ctx context.Context, doc *T) error
	// Update sets fields on the document and returns it updated
	Update(ctx context.Context, id string, fields bson.M) (*T, error)
	// Replace writes doc only if its stored version is unchanged
	Replace(ctx context.Context, doc *T) error
	Delete(ctx context.Context, id string) error
	AddToSet(ctx context.Context, id, field string, value interface{}) error
	Pull(ctx context.Context, id, field string, value interface{}) error
	// PullFromAll removes value from field in every document and reports how many changed
	PullFromAll(ctx context.Context, field string, value interface{}) (int64, error)
}

// Now is the clock used to stamp documents
var Now = func() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// NewID returns a fresh document id
func NewID() string {
	return primitive.NewObjectID().Hex()
}

func stampNew(meta *models.Meta) {
	if meta.ID == "" {
		meta.ID = NewID()
	}
	ts := Now()
	meta.CreatedAt = ts
	meta.UpdatedAt = ts
	meta.Version = 1
}
