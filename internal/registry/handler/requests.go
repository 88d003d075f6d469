package handler

import "time"

// CreateTypeRequest is the POST /types payload.
type CreateTypeRequest struct {
	Category     string    `json:"category"`
	SettlementAt time.Time `json:"settlement_at"`
	FaceValue    uint64    `json:"face_value"`
}
