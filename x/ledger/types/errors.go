package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// x/ledger module sentinel errors
var (
	ErrInvalidRecord  = sdkerrors.Register(ModuleName, 1200, "invalid transaction record")
	ErrRecordNotFound = sdkerrors.Register(ModuleName, 1201, "transaction record not found")
)
