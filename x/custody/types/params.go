package types

import (
	"fmt"

	paramtypes "github.com/cosmos/cosmos-sdk/x/params/types"
)

var _ paramtypes.ParamSet = (*Params)(nil)

// Default parameter values
var (
	DefaultMaxMembers      = uint64(20)
	DefaultMaxObjectives   = uint64(50)
	DefaultListingLockDays = int64(3)
)

// Parameter store keys
var (
	KeyMaxMembers      = []byte("MaxMembers")
	KeyMaxObjectives   = []byte("MaxObjectives")
	KeyListingLockDays = []byte("ListingLockDays")
)

// Params defines the parameters for the custody module.
type Params struct {
	// MaxMembers caps the project contract roster.
	MaxMembers uint64 `json:"max_members"`
	// MaxObjectives caps pending plus completed objectives per project.
	MaxObjectives uint64 `json:"max_objectives"`
	// ListingLockDays gates withdraw/cancel after a marketplace listing.
	ListingLockDays int64 `json:"listing_lock_days"`
}

// ParamKeyTable the param key table for the custody module
func ParamKeyTable() paramtypes.KeyTable {
	return paramtypes.NewKeyTable().RegisterParamSet(&Params{})
}

// NewParams creates a new Params instance
func NewParams(maxMembers, maxObjectives uint64, listingLockDays int64) Params {
	return Params{
		MaxMembers:      maxMembers,
		MaxObjectives:   maxObjectives,
		ListingLockDays: listingLockDays,
	}
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return NewParams(DefaultMaxMembers, DefaultMaxObjectives, DefaultListingLockDays)
}

// ParamSetPairs get the params.ParamSet
func (p *Params) ParamSetPairs() paramtypes.ParamSetPairs {
	return paramtypes.ParamSetPairs{
		paramtypes.NewParamSetPair(KeyMaxMembers, &p.MaxMembers, validatePositiveUint),
		paramtypes.NewParamSetPair(KeyMaxObjectives, &p.MaxObjectives, validatePositiveUint),
		paramtypes.NewParamSetPair(KeyListingLockDays, &p.ListingLockDays, validateLockDays),
	}
}

// Validate validates the set of params
func (p Params) Validate() error {
	if err := validatePositiveUint(p.MaxMembers); err != nil {
		return err
	}
	if err := validatePositiveUint(p.MaxObjectives); err != nil {
		return err
	}
	return validateLockDays(p.ListingLockDays)
}

func validatePositiveUint(v interface{}) error {
	value, ok := v.(uint64)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", v)
	}
	if value == 0 {
		return fmt.Errorf("parameter must be positive")
	}
	return nil
}

func validateLockDays(v interface{}) error {
	value, ok := v.(int64)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", v)
	}
	if value < 0 {
		return fmt.Errorf("listing lock days cannot be negative")
	}
	return nil
}
