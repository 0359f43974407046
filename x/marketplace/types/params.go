package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	paramtypes "github.com/cosmos/cosmos-sdk/x/params/types"
)

var _ paramtypes.ParamSet = (*Params)(nil)

// DefaultSettlementDenom is the denom listing fees are collected in.
const DefaultSettlementDenom = "upay"

var KeySettlementDenom = []byte("SettlementDenom")

// Params defines the parameters for the marketplace module.
type Params struct {
	// SettlementDenom is the asset categories settle listings in. Contracts
	// must escrow this denom to be listable and fees are paid in it.
	SettlementDenom string `json:"settlement_denom"`
}

// ParamKeyTable the param key table for the marketplace module
func ParamKeyTable() paramtypes.KeyTable {
	return paramtypes.NewKeyTable().RegisterParamSet(&Params{})
}

// NewParams creates a new Params instance
func NewParams(settlementDenom string) Params {
	return Params{SettlementDenom: settlementDenom}
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return NewParams(DefaultSettlementDenom)
}

// ParamSetPairs get the params.ParamSet
func (p *Params) ParamSetPairs() paramtypes.ParamSetPairs {
	return paramtypes.ParamSetPairs{
		paramtypes.NewParamSetPair(KeySettlementDenom, &p.SettlementDenom, validateDenom),
	}
}

// Validate validates the set of params
func (p Params) Validate() error {
	return validateDenom(p.SettlementDenom)
}

func validateDenom(v interface{}) error {
	value, ok := v.(string)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", v)
	}
	return sdk.ValidateDenom(value)
}
