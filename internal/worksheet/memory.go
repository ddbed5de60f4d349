package worksheet

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository is an in-memory Repository for scaffolding and tests.
type MemoryRepository struct {
	mu        sync.RWMutex
	documents map[uuid.UUID]*Document
	slugIndex map[string]uuid.UUID
}

// NewMemoryRepository creates an empty in-memory worksheet repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		documents: make(map[uuid.UUID]*Document),
		slugIndex: make(map[string]uuid.UUID),
	}
}

// Create inserts the supplied document.
func (m *MemoryRepository) Create(_ context.Context, record *Document) (*Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneDocument(record)
	m.documents[copied.ID] = copied
	m.slugIndex[copied.Slug] = copied.ID
	return cloneDocument(copied), nil
}

// GetByID retrieves a document by identifier.
func (m *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.documents[id]
	if !ok || rec.DeletedAt != nil {
		return nil, &NotFoundError{Resource: "worksheet document", Key: id.String()}
	}
	return cloneDocument(rec), nil
}

// GetBySlug retrieves a document by slug, returning NotFoundError when absent.
func (m *MemoryRepository) GetBySlug(_ context.Context, slug string) (*Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.slugIndex[slug]
	if !ok {
		return nil, &NotFoundError{Resource: "worksheet document", Key: slug}
	}
	rec := m.documents[id]
	if rec == nil || rec.DeletedAt != nil {
		return nil, &NotFoundError{Resource: "worksheet document", Key: slug}
	}
	return cloneDocument(rec), nil
}

// List returns all documents that are not soft deleted.
func (m *MemoryRepository) List(_ context.Context) ([]*Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Document, 0, len(m.documents))
	for _, rec := range m.documents {
		if rec.DeletedAt != nil {
			continue
		}
		out = append(out, cloneDocument(rec))
	}
	return out, nil
}

// Update replaces the stored document.
func (m *MemoryRepository) Update(_ context.Context, record *Document) (*Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.documents[record.ID]
	if !ok {
		return nil, &NotFoundError{Resource: "worksheet document", Key: record.ID.String()}
	}
	if existing.Slug != record.Slug {
		delete(m.slugIndex, existing.Slug)
		m.slugIndex[record.Slug] = record.ID
	}

	copied := cloneDocument(record)
	m.documents[copied.ID] = copied
	return cloneDocument(copied), nil
}

// Delete removes a document, soft deleting unless hardDelete is set.
func (m *MemoryRepository) Delete(_ context.Context, id uuid.UUID, hardDelete bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.documents[id]
	if !ok || rec.DeletedAt != nil {
		return &NotFoundError{Resource: "worksheet document", Key: id.String()}
	}

	if hardDelete {
		delete(m.slugIndex, rec.Slug)
		delete(m.documents, id)
		return nil
	}

	now := time.Now()
	rec.DeletedAt = &now
	return nil
}

func cloneDocument(src *Document) *Document {
	if src == nil {
		return nil
	}

	copied := *src
	copied.State = src.State.Clone()
	if src.Markdown != nil {
		markdown := *src.Markdown
		copied.Markdown = &markdown
	}
	if src.GeneratedAt != nil {
		generated := *src.GeneratedAt
		copied.GeneratedAt = &generated
	}
	if src.DeletedAt != nil {
		deleted := *src.DeletedAt
		copied.DeletedAt = &deleted
	}
	return &copied
}
