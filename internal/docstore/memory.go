package docstore

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Memory is an in-process Collection. Documents are kept in insertion order
// per collection and listed newest first.
type Memory struct {
	mu   sync.RWMutex
	docs map[string][]Document
	now  func() time.Time
}

// NewMemory returns an empty in-memory collection store.
func NewMemory() *Memory {
	return &Memory{
		docs: make(map[string][]Document),
		now:  time.Now,
	}
}

// WithClock replaces the timestamp source. Intended for tests.
func (m *Memory) WithClock(now func() time.Time) *Memory {
	m.now = now
	return m
}

func (m *Memory) Insert(ctx context.Context, collection string, fields Fields) (Document, error) {
	if collection == "" {
		return Document{}, ErrNoCollection
	}
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}

	doc := Document{
		ID:        uuid.NewString(),
		Fields:    cloneFields(fields),
		CreatedAt: m.now().UTC(),
	}

	m.mu.Lock()
	m.docs[collection] = append(m.docs[collection], doc)
	m.mu.Unlock()

	doc.Fields = cloneFields(doc.Fields)
	return doc, nil
}

func (m *Memory) ListAll(ctx context.Context, collection string) ([]Document, error) {
	if collection == "" {
		return nil, ErrNoCollection
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	stored := m.docs[collection]
	out := make([]Document, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		d := stored[i]
		d.Fields = cloneFields(d.Fields)
		out = append(out, d)
	}
	return out, nil
}

func (m *Memory) UpdateFields(ctx context.Context, collection, id string, fields Fields) error {
	if collection == "" {
		return ErrNoCollection
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexLocked(collection, id)
	if i < 0 {
		return ErrNotFound
	}
	merged := cloneFields(m.docs[collection][i].Fields)
	for k, v := range fields {
		merged[k] = v
	}
	m.docs[collection][i].Fields = merged
	return nil
}

func (m *Memory) DeleteByID(ctx context.Context, collection, id string) error {
	if collection == "" {
		return ErrNoCollection
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexLocked(collection, id)
	if i < 0 {
		return ErrNotFound
	}
	docs := m.docs[collection]
	m.docs[collection] = append(docs[:i:i], docs[i+1:]...)
	return nil
}

func (m *Memory) indexLocked(collection, id string) int {
	for i, d := range m.docs[collection] {
		if d.ID == id {
			return i
		}
	}
	return -1
}
