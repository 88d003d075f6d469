package domain

import dErrors "pbmledger/pkg/domain-errors"

// Category restricts what may be done with PBM units of a type.
// Invariant: the set is closed; a type's category never changes after
// creation.
type Category string

const (
	// CategorySettlement units transfer freely and redeem only to the
	// registered depository once the settlement time has passed.
	CategorySettlement Category = "settlement"

	// CategoryRepatriation units transfer freely and redeem only to
	// custodian banks once the settlement time has passed.
	CategoryRepatriation Category = "repatriation"

	// CategoryFrozen units neither transfer nor redeem; their only exit is
	// conversion into an equal-face-value settlement type.
	CategoryFrozen Category = "frozen"
)

// validCategories is the single source of truth for the closed category set.
var validCategories = map[Category]bool{
	CategorySettlement:   true,
	CategoryRepatriation: true,
	CategoryFrozen:       true,
}

// ParseCategory constructs a Category from external input.
//
// Errors: returns CodeInvalidArgument when the value is empty or not one of
// the supported categories.
func ParseCategory(s string) (Category, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidArgument, "category cannot be empty")
	}
	c := Category(s)
	if !c.IsValid() {
		return "", dErrors.Newf(dErrors.CodeInvalidArgument, "invalid category %q", s)
	}
	return c, nil
}

// IsValid checks if the category is one of the supported enum values.
func (c Category) IsValid() bool {
	return validCategories[c]
}

// String returns the string representation of the category.
func (c Category) String() string {
	return string(c)
}
