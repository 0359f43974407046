package types

import (
	"cosmossdk.io/math"
)

// Category is an admin-curated listing bucket for one contract kind.
// Minimum bounds the contract's deposited amount at listing time; Fee is
// the flat listing fee collected in the marketplace settlement denom.
type Category struct {
	Name    string         `json:"name"`
	Kind    string         `json:"kind"`
	Minimum math.LegacyDec `json:"minimum"`
	Fee     math.Int       `json:"fee"`
}

// Listing records a contract placed in a category.
type Listing struct {
	ContractID string   `json:"contract_id"`
	Kind       string   `json:"kind"`
	Category   string   `json:"category"`
	FeePaid    math.Int `json:"fee_paid"`
	ListEpoch  int64    `json:"list_epoch"`
}

// Validate checks the category record.
func (c Category) Validate() error {
	if c.Name == "" || c.Kind == "" {
		return ErrCategoryNotFound.Wrap("category name and kind must be non-empty")
	}
	if c.Minimum.IsNil() || c.Minimum.IsNegative() {
		return ErrBelowMinimum.Wrap("category minimum cannot be negative")
	}
	if c.Fee.IsNil() || c.Fee.IsNegative() {
		return ErrWrongFee.Wrap("category fee cannot be negative")
	}
	return nil
}
