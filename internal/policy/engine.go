// Package policy decides whether PBM movements are permitted. The rules are
// pure functions over resolved facts - no I/O, no side effects - so they stay
// independently testable; the service layer resolves role lookups before
// calling in.
package policy

import (
	"time"

	id "pbmledger/pkg/domain"
)

// TransferAllowed reports whether ordinary transfers of the category are
// permitted. Sender and recipient identity deliberately play no part:
// category alone gates transfers.
func TransferAllowed(category id.Category) bool {
	return category != id.CategoryFrozen
}

// RedeemFacts are the resolved inputs of a redemption decision.
type RedeemFacts struct {
	Redeemer     id.Identity
	Category     id.Category
	SettlementAt time.Time
	Now          time.Time
	// Depository is the registered depository identity, zero when unset.
	Depository id.Identity
	// RedeemerIsCustodian is the custodian-bank registry lookup for Redeemer.
	RedeemerIsCustodian bool
}

// RedeemAllowed applies the redemption rule chain.
// Rule priority (fail-fast):
//  1. Time gate - uniform across categories, including frozen
//  2. Settlement units redeem only to the depository
//  3. Repatriation units redeem only to custodian banks
//  4. Frozen units never redeem; conversion is their only exit
func RedeemAllowed(f RedeemFacts) bool {
	if f.Now.Before(f.SettlementAt) {
		return false
	}

	switch f.Category {
	case id.CategorySettlement:
		return !f.Depository.IsZero() && f.Redeemer == f.Depository
	case id.CategoryRepatriation:
		return f.RedeemerIsCustodian
	case id.CategoryFrozen:
		return false
	default:
		return false
	}
}

// ConversionFacts are the resolved inputs of a conversion decision.
type ConversionFacts struct {
	SourceCategory    id.Category
	TargetCategory    id.Category
	SourceFaceValue   uint64
	TargetFaceValue   uint64
	CallerIsCustodian bool
}

// ConversionAllowed applies the frozen-to-settlement conversion rule chain.
// Equal face values preserve the conservation invariant without any reserve
// movement.
func ConversionAllowed(f ConversionFacts) bool {
	if f.SourceCategory != id.CategoryFrozen {
		return false
	}
	if f.TargetCategory != id.CategorySettlement {
		return false
	}
	if f.SourceFaceValue != f.TargetFaceValue {
		return false
	}
	return f.CallerIsCustodian
}
