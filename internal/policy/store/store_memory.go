package store

import (
	"context"
	"sync"

	id "pbmledger/pkg/domain"
)

// InMemoryRoleStore keeps the role registries in process memory.
type InMemoryRoleStore struct {
	mu         sync.RWMutex
	depository id.Identity
	custodians map[id.Identity]bool
}

func NewInMemory() *InMemoryRoleStore {
	return &InMemoryRoleStore{custodians: make(map[id.Identity]bool)}
}

func (s *InMemoryRoleStore) SetDepository(_ context.Context, identity id.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.depository = identity
	return nil
}

func (s *InMemoryRoleStore) Depository(_ context.Context) (id.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.depository, nil
}

func (s *InMemoryRoleStore) SetCustodianBank(_ context.Context, identity id.Identity, isBank bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if isBank {
		s.custodians[identity] = true
	} else {
		delete(s.custodians, identity)
	}
	return nil
}

func (s *InMemoryRoleStore) IsCustodianBank(_ context.Context, identity id.Identity) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.custodians[identity], nil
}
