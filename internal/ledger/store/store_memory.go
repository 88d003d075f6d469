package store

import (
	"context"
	"sort"
	"sync"

	"pbmledger/internal/ledger/models"
	id "pbmledger/pkg/domain"
	"pbmledger/pkg/platform/sentinel"
)

// InMemoryStore keeps balances and per-type supply bookkeeping in nested
// maps. RunAtomic snapshots both tables and restores them when the staged
// mutations must be discarded, mirroring the transactional behavior of the
// Postgres store.
type InMemoryStore struct {
	mu       sync.Mutex
	balances map[id.Identity]map[id.TypeID]uint64
	supplies map[id.TypeID]models.Supply
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{
		balances: make(map[id.Identity]map[id.TypeID]uint64),
		supplies: make(map[id.TypeID]models.Supply),
	}
}

func (s *InMemoryStore) RunAtomic(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	balancesSnap := cloneBalances(s.balances)
	suppliesSnap := cloneSupplies(s.supplies)
	s.mu.Unlock()

	if err := fn(ctx); err != nil {
		s.mu.Lock()
		s.balances = balancesSnap
		s.supplies = suppliesSnap
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *InMemoryStore) Mint(_ context.Context, to id.Identity, typeID id.TypeID, qty, reserveIn uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.credit(to, typeID, qty)
	supply := s.supplies[typeID]
	supply.TypeID = typeID
	supply.Outstanding += qty
	supply.EscrowIn += reserveIn
	s.supplies[typeID] = supply
	return nil
}

func (s *InMemoryStore) Burn(_ context.Context, from id.Identity, typeID id.TypeID, qty, reserveOut uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.debit(from, typeID, qty); err != nil {
		return err
	}
	supply := s.supplies[typeID]
	supply.TypeID = typeID
	supply.Outstanding -= qty
	supply.EscrowOut += reserveOut
	s.supplies[typeID] = supply
	return nil
}

func (s *InMemoryStore) Transfer(_ context.Context, from, to id.Identity, typeID id.TypeID, qty uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.debit(from, typeID, qty); err != nil {
		return err
	}
	s.credit(to, typeID, qty)
	return nil
}

func (s *InMemoryStore) Balance(_ context.Context, holder id.Identity, typeID id.TypeID) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balances[holder][typeID], nil
}

func (s *InMemoryStore) BalancesOf(_ context.Context, holder id.Identity) ([]models.Balance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Balance
	for typeID, qty := range s.balances[holder] {
		if qty > 0 {
			out = append(out, models.Balance{TypeID: typeID, Quantity: qty})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TypeID < out[j].TypeID })
	return out, nil
}

func (s *InMemoryStore) Supply(_ context.Context, typeID id.TypeID) (models.Supply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	supply := s.supplies[typeID]
	supply.TypeID = typeID
	return supply, nil
}

// credit requires s.mu held.
func (s *InMemoryStore) credit(holder id.Identity, typeID id.TypeID, qty uint64) {
	if s.balances[holder] == nil {
		s.balances[holder] = make(map[id.TypeID]uint64)
	}
	s.balances[holder][typeID] += qty
}

// debit requires s.mu held.
func (s *InMemoryStore) debit(holder id.Identity, typeID id.TypeID, qty uint64) error {
	held := s.balances[holder][typeID]
	if held < qty {
		return sentinel.ErrInsufficient
	}
	s.balances[holder][typeID] = held - qty
	return nil
}

func cloneBalances(src map[id.Identity]map[id.TypeID]uint64) map[id.Identity]map[id.TypeID]uint64 {
	out := make(map[id.Identity]map[id.TypeID]uint64, len(src))
	for holder, positions := range src {
		inner := make(map[id.TypeID]uint64, len(positions))
		for typeID, qty := range positions {
			inner[typeID] = qty
		}
		out[holder] = inner
	}
	return out
}

func cloneSupplies(src map[id.TypeID]models.Supply) map[id.TypeID]models.Supply {
	out := make(map[id.TypeID]models.Supply, len(src))
	for typeID, supply := range src {
		out[typeID] = supply
	}
	return out
}
