package docstore

import (
	"context"
	"sync"

	"github.com/veracomply/sdk/evidence"
)

// Memory is an in-memory Store for tests and embedded use.
// It is safe for concurrent use.
type Memory struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

// NewMemory creates an empty in-memory document store.
func NewMemory() *Memory {
	return &Memory{
		docs: make(map[string]*Document),
	}
}

// Put stores a document descriptor, replacing any existing descriptor with
// the same ID.
func (m *Memory) Put(_ context.Context, doc *Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *doc
	m.docs[doc.ID] = &cp
	return nil
}

// Get implements Store.
func (m *Memory) Get(_ context.Context, id string) (*Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.docs[id]
	if !ok {
		return nil, ErrNotFound
	}

	cp := *doc
	return &cp, nil
}

// UpdateClassification implements Store.
func (m *Memory) UpdateClassification(_ context.Context, id string, result evidence.Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.docs[id]
	if !ok {
		return ErrNotFound
	}

	res := result
	doc.CurrentTier = res.Tier
	doc.Classification = &res
	return nil
}

// Len returns the number of stored descriptors.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.docs)
}
