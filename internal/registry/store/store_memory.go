package store

import (
	"context"
	"sync"

	"pbmledger/internal/registry/models"
	id "pbmledger/pkg/domain"
	"pbmledger/pkg/platform/sentinel"
)

// InMemoryStore keeps PBM types in an id-indexed table. Slot 0 of the table
// is unused so the stored index equals the type id; existence is explicit
// (a slot is present iff it was created), not inferred from zero values.
type InMemoryStore struct {
	mu      sync.RWMutex
	entries []models.PBMType
}

func NewInMemory() *InMemoryStore {
	// entries[0] is the reserved "nonexistent" slot.
	return &InMemoryStore{entries: make([]models.PBMType, 1)}
}

func (s *InMemoryStore) Create(_ context.Context, entry *models.PBMType) (id.TypeID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	typeID := id.TypeID(len(s.entries))
	stored := *entry
	stored.ID = typeID
	s.entries = append(s.entries, stored)
	return typeID, nil
}

func (s *InMemoryStore) Get(_ context.Context, typeID id.TypeID) (*models.PBMType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if typeID.IsZero() || uint64(typeID) >= uint64(len(s.entries)) {
		return nil, sentinel.ErrNotFound
	}
	entry := s.entries[typeID]
	return &entry, nil
}
