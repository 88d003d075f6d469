package handler

import (
	"time"

	ledgermodels "pbmledger/internal/ledger/models"
	"pbmledger/internal/registry/models"
)

// TypeResponse renders a PBM type, with issuance figures when requested.
type TypeResponse struct {
	TypeID       uint64          `json:"type_id"`
	Category     string          `json:"category"`
	SettlementAt time.Time       `json:"settlement_at"`
	FaceValue    uint64          `json:"face_value"`
	Creator      string          `json:"creator"`
	CreatedAt    time.Time       `json:"created_at"`
	Supply       *SupplyResponse `json:"supply,omitempty"`
}

// SupplyResponse carries the conservation-audit figures for a type.
type SupplyResponse struct {
	Outstanding uint64 `json:"outstanding"`
	EscrowIn    uint64 `json:"escrow_in"`
	EscrowOut   uint64 `json:"escrow_out"`
	Escrowed    uint64 `json:"escrowed"`
}

func newTypeResponse(entry *models.PBMType, supply *ledgermodels.Supply) TypeResponse {
	resp := TypeResponse{
		TypeID:       uint64(entry.ID),
		Category:     entry.Category.String(),
		SettlementAt: entry.SettlementAt,
		FaceValue:    entry.FaceValue,
		Creator:      entry.Creator.String(),
		CreatedAt:    entry.CreatedAt,
	}
	if supply != nil {
		resp.Supply = &SupplyResponse{
			Outstanding: supply.Outstanding,
			EscrowIn:    supply.EscrowIn,
			EscrowOut:   supply.EscrowOut,
			Escrowed:    supply.Escrowed(),
		}
	}
	return resp
}
