package reserve

import (
	"context"
	"sync"
)

// InMemoryLedger is an in-process fungible reserve ledger with standard
// balance/allowance semantics. It backs local development and tests; a real
// deployment points the adapter at the institution's reserve system instead.
type InMemoryLedger struct {
	mu         sync.Mutex
	owner      Account
	balances   map[Account]uint64
	allowances map[Account]map[Account]uint64
}

// NewInMemoryLedger creates a reserve ledger whose owner may mint.
func NewInMemoryLedger(owner Account) *InMemoryLedger {
	return &InMemoryLedger{
		owner:      owner,
		balances:   make(map[Account]uint64),
		allowances: make(map[Account]map[Account]uint64),
	}
}

// Mint credits newly issued reserve asset to an account. Owner-gated, like
// the external reserve ledger's mint.
func (l *InMemoryLedger) Mint(caller, to Account, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if caller != l.owner {
		return ErrUnknownAccount
	}
	l.balances[to] += amount
	return nil
}

// Approve lets spender draw up to amount from the caller's account.
func (l *InMemoryLedger) Approve(caller, spender Account, amount uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.allowances[caller] == nil {
		l.allowances[caller] = make(map[Account]uint64)
	}
	l.allowances[caller][spender] = amount
}

// Transfer moves amount from the caller to the recipient.
func (l *InMemoryLedger) Transfer(caller, to Account, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.move(caller, to, amount)
}

// TransferFrom moves amount from payer to recipient on the caller's
// allowance.
func (l *InMemoryLedger) TransferFrom(caller, payer, to Account, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	allowance := l.allowances[payer][caller]
	if allowance < amount {
		return ErrInsufficientAllowance
	}
	if err := l.move(payer, to, amount); err != nil {
		return err
	}
	l.allowances[payer][caller] = allowance - amount
	return nil
}

// BalanceOf returns the account's reserve balance.
func (l *InMemoryLedger) BalanceOf(account Account) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[account]
}

// move requires l.mu held.
func (l *InMemoryLedger) move(from, to Account, amount uint64) error {
	if l.balances[from] < amount {
		return ErrInsufficientFunds
	}
	l.balances[from] -= amount
	l.balances[to] += amount
	return nil
}

// EscrowAdapter implements Adapter against a reserve ledger, acting as the
// PBM system's escrow account.
type EscrowAdapter struct {
	ledger *InMemoryLedger
	escrow Account
}

func NewEscrowAdapter(ledger *InMemoryLedger, escrow Account) *EscrowAdapter {
	return &EscrowAdapter{ledger: ledger, escrow: escrow}
}

// Escrow returns the escrow account identity.
func (a *EscrowAdapter) Escrow() Account {
	return a.escrow
}

func (a *EscrowAdapter) PullIntoEscrow(_ context.Context, payer Account, amount uint64) error {
	return a.ledger.TransferFrom(a.escrow, payer, a.escrow, amount)
}

func (a *EscrowAdapter) PayOutFromEscrow(_ context.Context, recipient Account, amount uint64) error {
	return a.ledger.Transfer(a.escrow, recipient, amount)
}
