package service

import (
	"fmt"
	"sync"

	"github.com/bidforge/bidforge-go/internal/models"
)

// DocumentStore holds the session's bid documents. Documents are keyed
// by ID; a running pipeline re-keys its document once parsing reveals
// the canonical bid number. Created at session start, torn down at
// session end; there is no persistence.
type DocumentStore struct {
	mu    sync.RWMutex
	docs  map[string]*models.Rfp
	order []string
}

// NewDocumentStore creates an empty document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string]*models.Rfp)}
}

// Insert adds a document. An existing document under the same ID is
// replaced.
func (s *DocumentStore) Insert(doc models.Rfp) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.docs[doc.ID]; !exists {
		s.order = append(s.order, doc.ID)
	}
	s.docs[doc.ID] = &doc
}

// Get returns a snapshot copy of the document with the given ID.
func (s *DocumentStore) Get(id string) (models.Rfp, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[id]
	if !ok {
		return models.Rfp{}, false
	}
	return *doc, true
}

// Update applies fn to the stored document under the store lock.
func (s *DocumentStore) Update(id string, fn func(*models.Rfp)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[id]
	if !ok {
		return false
	}
	fn(doc)
	return true
}

// Rename atomically re-keys a document from oldID to newID. The old key
// is abandoned; there is no aliasing window. Renaming onto an existing
// key or from a missing key is an error.
func (s *DocumentStore) Rename(oldID, newID string) error {
	if oldID == newID {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[oldID]
	if !ok {
		return fmt.Errorf("document %s not found", oldID)
	}
	if _, taken := s.docs[newID]; taken {
		return fmt.Errorf("document %s already exists", newID)
	}

	delete(s.docs, oldID)
	doc.ID = newID
	s.docs[newID] = doc

	for i, id := range s.order {
		if id == oldID {
			s.order[i] = newID
			break
		}
	}
	return nil
}

// List returns snapshot copies of all documents in insertion order.
func (s *DocumentStore) List() []models.Rfp {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Rfp, 0, len(s.order))
	for _, id := range s.order {
		if doc, ok := s.docs[id]; ok {
			out = append(out, *doc)
		}
	}
	return out
}
