// Package domainerrors provides coded errors for the PBM ledger domain.
//
// Services return these so handlers can map failures onto HTTP statuses
// without string matching. Infrastructure facts (record missing in a store,
// connection refused) use pkg/platform/sentinel instead; services translate
// sentinels into coded errors at the service boundary.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code identifies the category of a domain error.
type Code string

const (
	// CodeInvalidArgument covers rejected inputs: non-positive face values,
	// past-dated settlement times, zero identities, zero-value mints.
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound covers references to type ids that were never created.
	CodeNotFound Code = "not_found"

	// CodeUnauthorized covers non-owner calls to owner-gated operations and
	// requests without a valid caller credential.
	CodeUnauthorized Code = "unauthorized"

	// CodePolicyViolation covers movements the policy engine forbids:
	// transfers of frozen units, redemptions before settlement or by the
	// wrong role, conversions that break the category or face-value rules.
	CodePolicyViolation Code = "policy_violation"

	// CodeInsufficientBalance covers debits exceeding the holder's balance.
	CodeInsufficientBalance Code = "insufficient_balance"

	// CodeReserveTransfer covers failures of the external reserve-asset call.
	CodeReserveTransfer Code = "reserve_transfer_failed"

	// CodeBadRequest covers malformed transport-level input (unparseable
	// JSON, missing fields) before it reaches domain validation.
	CodeBadRequest Code = "bad_request"

	// CodeInternal covers unexpected infrastructure failures. Handlers must
	// not leak the message to callers.
	CodeInternal Code = "internal_error"
)

// Error is a coded domain error.
type Error struct {
	Code    Code
	Message string
	wrapped error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.wrapped }

// New constructs a coded error.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Newf constructs a coded error with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying cause. The cause stays
// reachable through errors.Is/As for logging; callers only see the code.
func Wrap(code Code, message string, cause error) error {
	return &Error{Code: code, Message: message, wrapped: cause}
}

// HasCode reports whether err (or anything it wraps) carries the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// Is is an alias for HasCode kept for call-site readability in handlers.
func Is(err error, code Code) bool {
	return HasCode(err, code)
}

// CodeOf extracts the code from err, defaulting to CodeInternal for errors
// that did not originate in this package.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}
