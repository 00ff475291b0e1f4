package memstore

import (
	"fmt"
	"slices"
	"sort"
	"sync"

	"lingua/internal/domain"
	"lingua/internal/port"
)

// MemoryStore is a process-local history store.
type MemoryStore struct {
	mu      sync.RWMutex
	history map[string][]domain.TranslationResponse
}

var _ port.HistoryStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		history: make(map[string][]domain.TranslationResponse),
	}
}

func (s *MemoryStore) Push(docID string, resp domain.TranslationResponse, limit int) error {
	if limit <= 0 {
		return fmt.Errorf("history limit must be positive, got %d", limit)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	items := slices.Insert(s.history[docID], 0, resp)
	if len(items) > limit {
		items = items[:limit]
	}
	s.history[docID] = items
	return nil
}

func (s *MemoryStore) List(docID string) ([]domain.TranslationResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := s.history[docID]
	if items == nil {
		return []domain.TranslationResponse{}, nil
	}
	return slices.Clone(items), nil
}

func (s *MemoryStore) Clear(docID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.history, docID)
	return nil
}

func (s *MemoryStore) Documents() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.history))
	for id := range s.history {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *MemoryStore) Close() error {
	return nil
}
