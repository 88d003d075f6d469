package models

import (
	"time"

	id "pbmledger/pkg/domain"
)

// PBMType is the immutable metadata of a registered purpose-bound money
// type. Category and FaceValue never change after creation; ids are never
// reused or deleted.
type PBMType struct {
	ID           id.TypeID
	Category     id.Category
	SettlementAt time.Time
	// FaceValue is the reserve-asset amount backing one unit of this type.
	FaceValue uint64
	// Creator is the identity that registered the type. A zero creator
	// means the id was never assigned.
	Creator   id.Identity
	CreatedAt time.Time
}

// Exists reports whether the entry was ever created. Existence is carried by
// the creator field rather than a separate flag so a zero-value PBMType
// reads as absent.
func (t PBMType) Exists() bool {
	return !t.Creator.IsZero()
}
