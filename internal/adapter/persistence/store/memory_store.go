package store

import (
	"context"
	"maps"
	"sync"

	"nelly_tech/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// MemoryStore is an in-process document store used for local runs and tests.
// Records are listed in insertion order.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]*memoryCollection
	newID       func() string
}

type memoryCollection struct {
	order []string
	docs  map[string]interfaces.Fields
}

var _ interfaces.IDocumentStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string]*memoryCollection),
		newID:       uuid.NewString,
	}
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *MemoryStore) collection(name string) *memoryCollection {
	c, ok := s.collections[name]
	if !ok {
		c = &memoryCollection{docs: make(map[string]interfaces.Fields)}
		s.collections[name] = c
	}
	return c
}

func (s *MemoryStore) CreateRecord(ctx context.Context, collection string, fields interfaces.Fields) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", interfaces.NewStoreError(interfaces.StoreCodeUnavailable, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.collection(collection)
	id := s.newID()
	if _, exists := c.docs[id]; exists {
		return "", interfaces.NewStoreError(interfaces.StoreCodeAlreadyExists, nil)
	}
	doc := maps.Clone(fields)
	if doc == nil {
		doc = interfaces.Fields{}
	}
	doc[interfaces.VersionField] = int64(1)
	c.docs[id] = doc
	c.order = append(c.order, id)
	return id, nil
}

func (s *MemoryStore) GetRecord(ctx context.Context, collection, id string) (interfaces.Record, error) {
	if err := ctx.Err(); err != nil {
		return interfaces.Record{}, interfaces.NewStoreError(interfaces.StoreCodeUnavailable, err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[collection]
	if !ok {
		return interfaces.Record{}, interfaces.NewStoreError(interfaces.StoreCodeNotFound, nil)
	}
	doc, ok := c.docs[id]
	if !ok {
		return interfaces.Record{}, interfaces.NewStoreError(interfaces.StoreCodeNotFound, nil)
	}
	return interfaces.Record{ID: id, Fields: maps.Clone(doc)}, nil
}

func (s *MemoryStore) ListRecords(ctx context.Context, collection string) ([]interfaces.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, interfaces.NewStoreError(interfaces.StoreCodeUnavailable, err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[collection]
	if !ok {
		return []interfaces.Record{}, nil
	}
	out := make([]interfaces.Record, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, interfaces.Record{ID: id, Fields: maps.Clone(c.docs[id])})
	}
	return out, nil
}

func (s *MemoryStore) UpdateRecord(ctx context.Context, collection, id string, fields interfaces.Fields) error {
	return s.update(ctx, collection, id, nil, fields)
}

func (s *MemoryStore) UpdateRecordIfVersion(ctx context.Context, collection, id string, expectedVersion int64, fields interfaces.Fields) error {
	return s.update(ctx, collection, id, &expectedVersion, fields)
}

func (s *MemoryStore) update(ctx context.Context, collection, id string, expectedVersion *int64, fields interfaces.Fields) error {
	if err := ctx.Err(); err != nil {
		return interfaces.NewStoreError(interfaces.StoreCodeUnavailable, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[collection]
	if !ok {
		return interfaces.NewStoreError(interfaces.StoreCodeNotFound, nil)
	}
	doc, ok := c.docs[id]
	if !ok {
		return interfaces.NewStoreError(interfaces.StoreCodeNotFound, nil)
	}
	current, _ := doc[interfaces.VersionField].(int64)
	if expectedVersion != nil && current != *expectedVersion {
		return interfaces.NewStoreError(interfaces.StoreCodeAborted, nil)
	}
	for k, v := range fields {
		if k == interfaces.VersionField {
			continue
		}
		doc[k] = v
	}
	doc[interfaces.VersionField] = current + 1
	return nil
}

func (s *MemoryStore) DeleteRecord(ctx context.Context, collection, id string) error {
	if err := ctx.Err(); err != nil {
		return interfaces.NewStoreError(interfaces.StoreCodeUnavailable, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[collection]
	if !ok {
		return interfaces.NewStoreError(interfaces.StoreCodeNotFound, nil)
	}
	if _, ok := c.docs[id]; !ok {
		return interfaces.NewStoreError(interfaces.StoreCodeNotFound, nil)
	}
	delete(c.docs, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}
