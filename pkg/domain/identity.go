package domain

import (
	"strings"

	dErrors "pbmledger/pkg/domain-errors"
)

// Identity is an opaque ledger participant identifier (an institution
// account address). The zero value means "absent" and is never a valid
// participant.
//
// Usage: construct via ParseIdentity at trust boundaries; direct casting
// bypasses validation.
type Identity string

// ZeroIdentity is the absent identity. Registry entries use it as the
// existence sentinel: a type whose creator is zero was never created.
const ZeroIdentity Identity = ""

// ParseIdentity constructs an Identity from external input.
//
// Errors: returns CodeInvalidArgument when the value is empty or
// whitespace-only; no other errors are expected.
func ParseIdentity(s string) (Identity, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ZeroIdentity, dErrors.New(dErrors.CodeInvalidArgument, "identity cannot be empty")
	}
	return Identity(trimmed), nil
}

// IsZero reports whether the identity is absent.
func (i Identity) IsZero() bool {
	return i == ZeroIdentity
}

// String returns the string representation of the identity.
func (i Identity) String() string {
	return string(i)
}

// TypeID is the handle of a registered PBM type. Ids are assigned
// sequentially starting at 1; 0 is reserved to mean "nonexistent".
type TypeID uint64

// IsZero reports whether the id is the reserved "nonexistent" handle.
func (t TypeID) IsZero() bool {
	return t == 0
}
