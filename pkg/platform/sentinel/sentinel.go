package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) so services can translate them into domain errors.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: entity does not exist in store
// - ErrInsufficient: a balance debit would go below zero
// - ErrConflict: concurrent writers collided on the same row
// - ErrUnavailable: backing store temporarily unreachable
//
// For validation errors (bad input, policy decisions), use
// pkg/domain-errors directly.
var (
	ErrNotFound     = errors.New("not found")
	ErrInsufficient = errors.New("insufficient balance")
	ErrConflict     = errors.New("conflict")
	ErrUnavailable  = errors.New("unavailable")
)
