package models

import (
	id "pbmledger/pkg/domain"
)

// Movement is one (type id, quantity) pair inside a transfer batch.
type Movement struct {
	TypeID   id.TypeID
	Quantity uint64
}

// Balance is a holder's position in one PBM type.
type Balance struct {
	TypeID   id.TypeID
	Quantity uint64
}

// Supply is the per-type issuance bookkeeping backing the conservation
// invariant: FaceValue * Outstanding == EscrowIn - EscrowOut at all times.
type Supply struct {
	TypeID      id.TypeID
	Outstanding uint64
	// EscrowIn is the cumulative reserve asset pulled into escrow for this
	// type; EscrowOut the cumulative amount paid back out.
	EscrowIn  uint64
	EscrowOut uint64
}

// Escrowed returns the reserve asset currently held for the type.
func (s Supply) Escrowed() uint64 {
	return s.EscrowIn - s.EscrowOut
}

// MintReceipt records a successful mint.
type MintReceipt struct {
	TypeID        id.TypeID
	To            id.Identity
	Quantity      uint64
	ReserveAmount uint64
}

// RedeemReceipt records a successful redemption.
type RedeemReceipt struct {
	TypeID        id.TypeID
	From          id.Identity
	Quantity      uint64
	ReserveAmount uint64
}

// ConvertReceipt records a successful frozen-to-settlement conversion.
type ConvertReceipt struct {
	FrozenTypeID     id.TypeID
	SettlementTypeID id.TypeID
	Holder           id.Identity
	Quantity         uint64
}

// TransferReceipt records a successful transfer batch.
type TransferReceipt struct {
	From      id.Identity
	To        id.Identity
	Movements []Movement
}
