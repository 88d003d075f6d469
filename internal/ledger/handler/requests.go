package handler

// MintRequest is the POST /ledger/mint payload. The caller pays the reserve
// asset; the minted units go to To.
type MintRequest struct {
	To       string `json:"to"`
	TypeID   uint64 `json:"type_id"`
	Quantity uint64 `json:"quantity"`
}

// RedeemRequest is the POST /ledger/redeem payload. Units are debited from
// From; the reserve payout goes to the caller.
type RedeemRequest struct {
	From     string `json:"from"`
	TypeID   uint64 `json:"type_id"`
	Quantity uint64 `json:"quantity"`
}

// ConvertRequest is the POST /ledger/convert payload.
type ConvertRequest struct {
	FrozenTypeID     uint64 `json:"frozen_type_id"`
	SettlementTypeID uint64 `json:"settlement_type_id"`
	Quantity         uint64 `json:"quantity"`
}

// MovementRequest is one (type id, quantity) pair of a transfer batch.
type MovementRequest struct {
	TypeID   uint64 `json:"type_id"`
	Quantity uint64 `json:"quantity"`
}

// TransferRequest is the POST /ledger/transfer payload. The caller is the
// sender of every movement in the batch.
type TransferRequest struct {
	To        string            `json:"to"`
	Movements []MovementRequest `json:"movements"`
}
