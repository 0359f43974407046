package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// x/marketplace module sentinel errors
var (
	ErrCategoryNotFound = sdkerrors.Register(ModuleName, 1400, "category not found")
	ErrCategoryExists   = sdkerrors.Register(ModuleName, 1401, "category already exists")
	ErrBelowMinimum     = sdkerrors.Register(ModuleName, 1402, "amount below category minimum")
	ErrWrongDenom       = sdkerrors.Register(ModuleName, 1403, "denom not accepted by category")
	ErrWrongFee         = sdkerrors.Register(ModuleName, 1404, "listing fee mismatch")
	ErrAlreadyListed    = sdkerrors.Register(ModuleName, 1405, "contract already listed")
	ErrListingNotFound  = sdkerrors.Register(ModuleName, 1406, "listing not found")
	ErrUnauthorized     = sdkerrors.Register(ModuleName, 1407, "unauthorized")
)
