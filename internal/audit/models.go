package audit

import (
	"time"

	id "pbmledger/pkg/domain"
)

// Event is emitted from domain logic after every successful state
// transition. Keep it transport-agnostic so stores and sinks can fan out.
// Events are audit records only; the core never reads them back to decide
// anything.
type Event struct {
	ID        string
	Timestamp time.Time
	Action    AuditEvent
	// Actor is the identity whose call produced the transition.
	Actor    id.Identity
	TypeID   id.TypeID
	Category id.Category
	// TargetTypeID is set for conversions (the settlement type credited).
	TargetTypeID id.TypeID
	From         id.Identity
	To           id.Identity
	Quantity     uint64
	// ReserveAmount is the reserve-asset amount moved in or out of escrow,
	// zero for transfers and conversions.
	ReserveAmount uint64
	RequestID     string
}

type AuditEvent string

const (
	EventTypeCreated AuditEvent = "type_created"
	EventMinted      AuditEvent = "units_minted"
	EventRedeemed    AuditEvent = "units_redeemed"
	EventConverted   AuditEvent = "units_converted"
	EventTransferred AuditEvent = "units_transferred"
	EventRoleChanged AuditEvent = "role_changed"
)
