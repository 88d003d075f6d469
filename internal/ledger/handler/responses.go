package handler

import (
	"pbmledger/internal/ledger/models"
	id "pbmledger/pkg/domain"
)

type MintResponse struct {
	TypeID        uint64 `json:"type_id"`
	To            string `json:"to"`
	Quantity      uint64 `json:"quantity"`
	ReserveAmount uint64 `json:"reserve_amount"`
}

func newMintResponse(r *models.MintReceipt) MintResponse {
	return MintResponse{
		TypeID:        uint64(r.TypeID),
		To:            r.To.String(),
		Quantity:      r.Quantity,
		ReserveAmount: r.ReserveAmount,
	}
}

type RedeemResponse struct {
	TypeID        uint64 `json:"type_id"`
	From          string `json:"from"`
	Quantity      uint64 `json:"quantity"`
	ReserveAmount uint64 `json:"reserve_amount"`
}

func newRedeemResponse(r *models.RedeemReceipt) RedeemResponse {
	return RedeemResponse{
		TypeID:        uint64(r.TypeID),
		From:          r.From.String(),
		Quantity:      r.Quantity,
		ReserveAmount: r.ReserveAmount,
	}
}

type ConvertResponse struct {
	FrozenTypeID     uint64 `json:"frozen_type_id"`
	SettlementTypeID uint64 `json:"settlement_type_id"`
	Holder           string `json:"holder"`
	Quantity         uint64 `json:"quantity"`
}

func newConvertResponse(r *models.ConvertReceipt) ConvertResponse {
	return ConvertResponse{
		FrozenTypeID:     uint64(r.FrozenTypeID),
		SettlementTypeID: uint64(r.SettlementTypeID),
		Holder:           r.Holder.String(),
		Quantity:         r.Quantity,
	}
}

type MovementResponse struct {
	TypeID   uint64 `json:"type_id"`
	Quantity uint64 `json:"quantity"`
}

type TransferResponse struct {
	From      string             `json:"from"`
	To        string             `json:"to"`
	Movements []MovementResponse `json:"movements"`
}

func newTransferResponse(r *models.TransferReceipt) TransferResponse {
	movements := make([]MovementResponse, len(r.Movements))
	for i, mv := range r.Movements {
		movements[i] = MovementResponse{TypeID: uint64(mv.TypeID), Quantity: mv.Quantity}
	}
	return TransferResponse{From: r.From.String(), To: r.To.String(), Movements: movements}
}

type BalanceResponse struct {
	TypeID   uint64 `json:"type_id"`
	Quantity uint64 `json:"quantity"`
}

type BalancesResponse struct {
	Holder   string            `json:"holder"`
	Balances []BalanceResponse `json:"balances"`
}

func newBalancesResponse(holder id.Identity, balances []models.Balance) BalancesResponse {
	out := BalancesResponse{Holder: holder.String(), Balances: []BalanceResponse{}}
	for _, b := range balances {
		out.Balances = append(out.Balances, BalanceResponse{TypeID: uint64(b.TypeID), Quantity: b.Quantity})
	}
	return out
}
