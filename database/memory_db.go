package database

import (
	"sync"

	"github.com/tieubaoca/rag-chat-be/types"
)

// MemoryStore is the append-only in-process document collection used
// when the vector store is unreachable. Inserts and full scans may run
// concurrently; entries are never removed.
type MemoryStore struct {
	mu   sync.RWMutex
	docs []types.Document
}

func NewMemoryStore(seeds []types.DocumentSeed) *MemoryStore {
	s := &MemoryStore{
		docs: make([]types.Document, 0, len(seeds)),
	}
	for _, seed := range seeds {
		s.docs = append(s.docs, types.Document{
			ID:       int64(len(s.docs)),
			Text:     seed.Text,
			Metadata: seed.Metadata,
		})
	}
	return s
}

// Insert appends a document and returns it with its assigned ID.
func (s *MemoryStore) Insert(text, metadata string) types.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := types.Document{
		ID:       int64(len(s.docs)),
		Text:     text,
		Metadata: metadata,
	}
	s.docs = append(s.docs, doc)
	return doc
}

// All returns a snapshot of the collection in insertion order.
func (s *MemoryStore) All() []types.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.Document, len(s.docs))
	copy(out, s.docs)
	return out
}

func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}
