package repository

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/safekids/app-safekids/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memoryDoc struct {
	seq  int64
	data bson.M
}

// MemoryStore implements Store in process memory. Documents go through a
// BSON round trip so they behave like stored ones.
type MemoryStore[T any, P Record[T]] struct {
	mu      sync.RWMutex
	name    string
	docs    map[string]*memoryDoc
	seq     int64
	uniques []string
}

// NewMemoryStore creates an empty store. uniqueFields mimic unique indexes.
func NewMemoryStore[T any, P Record[T]](name string, uniqueFields ...string) *MemoryStore[T, P] {
	return &MemoryStore[T, P]{
		name:    name,
		docs:    make(map[string]*memoryDoc),
		uniques: uniqueFields,
	}
}

func toM(doc interface{}) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func fromM[T any](m bson.M) (*T, error) {
	raw, err := bson.Marshal(m)
	if err != nil {
		return nil, err
	}
	var out T
	if err := bson.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func matchValue(stored, value interface{}) bool {
	if arr, ok := stored.(primitive.A); ok {
		for _, elem := range arr {
			if reflect.DeepEqual(elem, value) {
				return true
			}
		}
		return false
	}
	return reflect.DeepEqual(stored, value)
}

func matches(doc bson.M, filter Filter) bool {
	for field, value := range filter {
		if !matchValue(doc[field], value) {
			return false
		}
	}
	return true
}

// sorted returns documents matching filter, newest first
func (s *MemoryStore[T, P]) sorted(filter Filter) []*memoryDoc {
	out := make([]*memoryDoc, 0, len(s.docs))
	for _, d := range s.docs {
		if matches(d.data, filter) {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		ci, _ := out[i].data["createdAt"].(primitive.DateTime)
		cj, _ := out[j].data["createdAt"].(primitive.DateTime)
		if ci != cj {
			return ci > cj
		}
		return out[i].seq > out[j].seq
	})
	return out
}

func (s *MemoryStore[T, P]) decode(docs []*memoryDoc) ([]T, error) {
	result := make([]T, 0, len(docs))
	for _, d := range docs {
		v, err := fromM[T](d.data)
		if err != nil {
			return nil, err
		}
		result = append(result, *v)
	}
	return result, nil
}

func (s *MemoryStore[T, P]) checkUnique(id string, data bson.M) error {
	for _, field := range s.uniques {
		value, ok := data[field]
		if !ok {
			continue
		}
		for otherID, other := range s.docs {
			if otherID != id && reflect.DeepEqual(other.data[field], value) {
				return fmt.Errorf("%s.%s: %w", s.name, field, ErrDuplicate)
			}
		}
	}
	return nil
}

// List returns documents ordered by createdAt descending
func (s *MemoryStore[T, P]) List(_ context.Context, opts ListOptions) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := s.sorted(nil)
	if opts.Skip > 0 {
		if opts.Skip >= int64(len(docs)) {
			docs = nil
		} else {
			docs = docs[opts.Skip:]
		}
	}
	if opts.Limit > 0 && opts.Limit < int64(len(docs)) {
		docs = docs[:opts.Limit]
	}
	return s.decode(docs)
}

// Count counts documents matching filter
func (s *MemoryStore[T, P]) Count(_ context.Context, filter Filter) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.sorted(filter))), nil
}

// Get returns the document with id
func (s *MemoryStore[T, P]) Get(_ context.Context, id string) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return fromM[T](d.data)
}

// FindBy returns the first document whose field equals value
func (s *MemoryStore[T, P]) FindBy(_ context.Context, field string, value interface{}) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := s.sorted(Filter{field: value})
	if len(docs) == 0 {
		return nil, ErrNotFound
	}
	return fromM[T](docs[0].data)
}

// Find returns every document matching filter, newest first
func (s *MemoryStore[T, P]) Find(_ context.Context, filter Filter) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.decode(s.sorted(filter))
}

// ListContaining returns documents whose array field contains value
func (s *MemoryStore[T, P]) ListContaining(ctx context.Context, field string, value interface{}) ([]T, error) {
	return s.Find(ctx, Filter{field: value})
}

// Create stamps id, timestamps and version then inserts doc
func (s *MemoryStore[T, P]) Create(_ context.Context, doc *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	meta := P(doc).Metadata()
	stampNew(meta)
	if _, exists := s.docs[meta.ID]; exists {
		return fmt.Errorf("%s._id: %w", s.name, ErrDuplicate)
	}

	data, err := toM(doc)
	if err != nil {
		return err
	}
	if err := s.checkUnique(meta.ID, data); err != nil {
		return err
	}

	s.seq++
	s.docs[meta.ID] = &memoryDoc{seq: s.seq, data: data}
	return nil
}

func (s *MemoryStore[T, P]) touch(d *memoryDoc) {
	d.data["updatedAt"] = primitive.NewDateTimeFromTime(Now())
	version, _ := d.data["version"].(int32)
	d.data["version"] = version + 1
}

// Update sets fields on the document and returns it updated
func (s *MemoryStore[T, P]) Update(_ context.Context, id string, fields bson.M) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.docs[id]
	if !ok {
		return nil, ErrNotFound
	}

	updated := make(bson.M, len(d.data))
	for k, v := range d.data {
		updated[k] = v
	}
	for k, v := range fields {
		updated[k] = v
	}
	// normalise values through BSON so later comparisons see stored types
	normalised, err := toM(updated)
	if err != nil {
		return nil, err
	}
	if err := s.checkUnique(id, normalised); err != nil {
		return nil, err
	}

	d.data = normalised
	s.touch(d)
	return fromM[T](d.data)
}

// Replace writes doc only if its stored version is unchanged
func (s *MemoryStore[T, P]) Replace(_ context.Context, doc *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	meta := P(doc).Metadata()
	d, ok := s.docs[meta.ID]
	if !ok {
		return ErrNotFound
	}
	if stored, _ := d.data["version"].(int32); stored != meta.Version {
		return utils.OptimisticLockError{
			Resource: s.name,
			Message:  fmt.Sprintf("document %s changed since version %d", meta.ID, meta.Version),
		}
	}

	previousVersion, previousUpdatedAt := meta.Version, meta.UpdatedAt
	meta.Version++
	meta.UpdatedAt = Now()

	data, err := toM(doc)
	if err == nil {
		err = s.checkUnique(meta.ID, data)
	}
	if err != nil {
		meta.Version, meta.UpdatedAt = previousVersion, previousUpdatedAt
		return err
	}

	d.data = data
	return nil
}

// Delete removes the document with id
func (s *MemoryStore[T, P]) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[id]; !ok {
		return ErrNotFound
	}
	delete(s.docs, id)
	return nil
}

func arrayOf(v interface{}) primitive.A {
	arr, _ := v.(primitive.A)
	return arr
}

// AddToSet adds value to the array field of id unless already present
func (s *MemoryStore[T, P]) AddToSet(_ context.Context, id, field string, value interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.docs[id]
	if !ok {
		return ErrNotFound
	}
	arr := arrayOf(d.data[field])
	if !matchValue(arr, value) {
		arr = append(arr, value)
	}
	d.data[field] = arr
	s.touch(d)
	return nil
}

func pull(arr primitive.A, value interface{}) (primitive.A, bool) {
	out := make(primitive.A, 0, len(arr))
	removed := false
	for _, elem := range arr {
		if reflect.DeepEqual(elem, value) {
			removed = true
			continue
		}
		out = append(out, elem)
	}
	return out, removed
}

// Pull removes value from the array field of id
func (s *MemoryStore[T, P]) Pull(_ context.Context, id, field string, value interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.docs[id]
	if !ok {
		return ErrNotFound
	}
	d.data[field], _ = pull(arrayOf(d.data[field]), value)
	s.touch(d)
	return nil
}

// PullFromAll removes value from field in every document and reports how many changed
func (s *MemoryStore[T, P]) PullFromAll(_ context.Context, field string, value interface{}) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for _, d := range s.docs {
		arr, removed := pull(arrayOf(d.data[field]), value)
		if !removed {
			continue
		}
		d.data[field] = arr
		s.touch(d)
		n++
	}
	return n, nil
}
