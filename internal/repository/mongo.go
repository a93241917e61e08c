package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/safekids/app-safekids/internal/observability"
	"github.com/safekids/app-safekids/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoStore implements Store over a MongoDB collection
type MongoStore[T any, P Record[T]] struct {
	coll *mongo.Collection
	name string
}

// NewMongoStore creates a store over db.collection
func NewMongoStore[T any, P Record[T]](db *mongo.Database, collection string) *MongoStore[T, P] {
	return &MongoStore[T, P]{
		coll: db.Collection(collection),
		name: collection,
	}
}

func (s *MongoStore[T, P]) record(operation string, err error) {
	status := "success"
	if err != nil && !errors.Is(err, ErrNotFound) {
		status = "error"
	}
	observability.DatabaseOperations.WithLabelValues(s.name+"."+operation, status).Inc()
}

func newestFirst() bson.D {
	return bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}
}

func (s *MongoStore[T, P]) decodeAll(ctx context.Context, cursor *mongo.Cursor) ([]T, error) {
	defer cursor.Close(ctx)
	docs := make([]T, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.name, err)
	}
	return docs, nil
}

// List returns documents ordered by createdAt descending
func (s *MongoStore[T, P]) List(ctx context.Context, opts ListOptions) (docs []T, err error) {
	ctx, span, done := utils.TraceDatabaseOperation(ctx, "find", s.name)
	defer done()
	defer func() { s.record("list", err) }()

	findOpts := options.Find().SetSort(newestFirst())
	if opts.Skip > 0 {
		findOpts.SetSkip(opts.Skip)
	}
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}

	cursor, err := s.coll.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		utils.RecordErrorInSpan(span, err, utils.Attrs{"db.collection": s.name})
		return nil, fmt.Errorf("failed to list %s: %w", s.name, err)
	}
	return s.decodeAll(ctx, cursor)
}

// Count counts documents matching filter
func (s *MongoStore[T, P]) Count(ctx context.Context, filter Filter) (n int64, err error) {
	ctx, _, done := utils.TraceDatabaseOperation(ctx, "count", s.name)
	defer done()
	defer func() { s.record("count", err) }()

	if filter == nil {
		filter = bson.M{}
	}
	n, err = s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", s.name, err)
	}
	return n, nil
}

// Get returns the document with id
func (s *MongoStore[T, P]) Get(ctx context.Context, id string) (*T, error) {
	return s.FindBy(ctx, "_id", id)
}

// FindBy returns the first document whose field equals value
func (s *MongoStore[T, P]) FindBy(ctx context.Context, field string, value interface{}) (doc *T, err error) {
	ctx, span, done := utils.TraceDatabaseOperation(ctx, "find_one", s.name)
	defer done()
	defer func() { s.record("find_one", err) }()

	var out T
	err = s.coll.FindOne(ctx, bson.M{field: value}).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		utils.RecordErrorInSpan(span, err, utils.Attrs{"db.collection": s.name, "db.field": field})
		return nil, fmt.Errorf("failed to find %s: %w", s.name, err)
	}
	return &out, nil
}

// Find returns every document matching filter, newest first
func (s *MongoStore[T, P]) Find(ctx context.Context, filter Filter) (docs []T, err error) {
	ctx, span, done := utils.TraceDatabaseOperation(ctx, "find", s.name)
	defer done()
	defer func() { s.record("find", err) }()

	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := s.coll.Find(ctx, filter, options.Find().SetSort(newestFirst()))
	if err != nil {
		utils.RecordErrorInSpan(span, err, utils.Attrs{"db.collection": s.name})
		return nil, fmt.Errorf("failed to find %s: %w", s.name, err)
	}
	return s.decodeAll(ctx, cursor)
}

// ListContaining returns documents whose array field contains value
func (s *MongoStore[T, P]) ListContaining(ctx context.Context, field string, value interface{}) ([]T, error) {
	return s.Find(ctx, Filter{field: value})
}

// Create stamps id, timestamps and version then inserts doc
func (s *MongoStore[T, P]) Create(ctx context.Context, doc *T) (err error) {
	ctx, span, done := utils.TraceDatabaseOperation(ctx, "insert", s.name)
	defer done()
	defer func() { s.record("insert", err) }()

	stampNew(P(doc).Metadata())

	if _, err = s.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("failed to insert %s: %w", s.name, ErrDuplicate)
		}
		utils.RecordErrorInSpan(span, err, utils.Attrs{"db.collection": s.name})
		return fmt.Errorf("failed to insert %s: %w", s.name, err)
	}
	return nil
}

// Update sets fields on the document and returns it updated
func (s *MongoStore[T, P]) Update(ctx context.Context, id string, fields bson.M) (doc *T, err error) {
	ctx, span, done := utils.TraceDatabaseOperation(ctx, "update", s.name)
	defer done()
	defer func() { s.record("update", err) }()

	set := bson.M{"updatedAt": Now()}
	for k, v := range fields {
		set[k] = v
	}
	update := bson.M{"$set": set, "$inc": bson.M{"version": 1}}

	var out T
	err = s.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("failed to update %s: %w", s.name, ErrDuplicate)
		}
		utils.RecordErrorInSpan(span, err, utils.Attrs{"db.collection": s.name})
		return nil, fmt.Errorf("failed to update %s: %w", s.name, err)
	}
	return &out, nil
}

// Replace writes doc only if its stored version is unchanged
func (s *MongoStore[T, P]) Replace(ctx context.Context, doc *T) (err error) {
	ctx, _, done := utils.TraceDatabaseOperation(ctx, "replace", s.name)
	defer done()
	defer func() { s.record("replace", err) }()

	meta := P(doc).Metadata()
	expected := meta.Version
	previousUpdatedAt := meta.UpdatedAt
	meta.Version = expected + 1
	meta.UpdatedAt = Now()

	result, err := s.coll.ReplaceOne(ctx, bson.M{"_id": meta.ID, "version": expected}, doc)
	if err == nil && result.MatchedCount == 1 {
		return nil
	}

	meta.Version = expected
	meta.UpdatedAt = previousUpdatedAt

	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("failed to replace %s: %w", s.name, ErrDuplicate)
		}
		return fmt.Errorf("failed to replace %s: %w", s.name, err)
	}

	exists, countErr := s.coll.CountDocuments(ctx, bson.M{"_id": meta.ID})
	if countErr != nil {
		return fmt.Errorf("failed to check existing document: %w", countErr)
	}
	if exists == 0 {
		return ErrNotFound
	}

	observability.Logger().Warn("optimistic lock conflict detected",
		zap.String("collection", s.name),
		zap.String("id", meta.ID),
		zap.Int32("expected_version", expected))

	return utils.OptimisticLockError{
		Resource: s.name,
		Message:  fmt.Sprintf("document %s changed since version %d", meta.ID, expected),
	}
}

// Delete removes the document with id
func (s *MongoStore[T, P]) Delete(ctx context.Context, id string) (err error) {
	ctx, _, done := utils.TraceDatabaseOperation(ctx, "delete", s.name)
	defer done()
	defer func() { s.record("delete", err) }()

	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", s.name, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore[T, P]) updateArray(ctx context.Context, operation, op, id, field string, value interface{}) (err error) {
	ctx, _, done := utils.TraceDatabaseOperation(ctx, operation, s.name)
	defer done()
	defer func() { s.record(operation, err) }()

	update := bson.M{
		op:     bson.M{field: value},
		"$set": bson.M{"updatedAt": Now()},
		"$inc": bson.M{"version": 1},
	}
	result, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to %s %s.%s: %w", operation, s.name, field, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AddToSet adds value to the array field of id unless already present
func (s *MongoStore[T, P]) AddToSet(ctx context.Context, id, field string, value interface{}) error {
	return s.updateArray(ctx, "add_to_set", "$addToSet", id, field, value)
}

// Pull removes value from the array field of id
func (s *MongoStore[T, P]) Pull(ctx context.Context, id, field string, value interface{}) error {
	return s.updateArray(ctx, "pull", "$pull", id, field, value)
}

// PullFromAll removes value from field in every document and reports how many changed
func (s *MongoStore[T, P]) PullFromAll(ctx context.Context, field string, value interface{}) (n int64, err error) {
	ctx, _, done := utils.TraceDatabaseOperation(ctx, "pull_all", s.name)
	defer done()
	defer func() { s.record("pull_all", err) }()

	update := bson.M{
		"$pull": bson.M{field: value},
		"$set":  bson.M{"updatedAt": Now()},
		"$inc":  bson.M{"version": 1},
	}
	result, err := s.coll.UpdateMany(ctx, bson.M{field: value}, update)
	if err != nil {
		return 0, fmt.Errorf("failed to pull %s.%s: %w", s.name, field, err)
	}
	return result.ModifiedCount, nil
}
