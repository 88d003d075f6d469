// Package reserve is the thin boundary to the external fungible reserve
// ledger. The ledger engine only ever moves reserve asset in and out of its
// escrow account through this interface; the reserve's internal accounting
// is outside the core.
package reserve

import (
	"context"
	"errors"
)

// Adapter moves reserve asset between participants and the ledger's escrow
// account. Both calls are all-or-nothing: any non-nil error means no reserve
// asset moved and the enclosing ledger operation must abort.
type Adapter interface {
	// PullIntoEscrow draws amount from the payer into escrow. Fails when the
	// payer's balance or allowance toward the escrow account is too small.
	PullIntoEscrow(ctx context.Context, payer Account, amount uint64) error

	// PayOutFromEscrow pays amount out of escrow to the recipient.
	PayOutFromEscrow(ctx context.Context, recipient Account, amount uint64) error
}

// Account is a reserve-ledger account identifier. It mirrors the ledger's
// participant identities one-to-one.
type Account string

// Failure modes surfaced by adapter implementations.
var (
	ErrInsufficientFunds     = errors.New("reserve: insufficient funds")
	ErrInsufficientAllowance = errors.New("reserve: insufficient allowance")
	ErrUnknownAccount        = errors.New("reserve: unknown account")
)
