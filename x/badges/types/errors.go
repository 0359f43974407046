package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// x/badges module sentinel errors
var (
	ErrInvalidProof    = sdkerrors.Register(ModuleName, 1300, "invalid credential proof")
	ErrBadgeExists     = sdkerrors.Register(ModuleName, 1301, "badge already exists")
	ErrBadgeNotFound   = sdkerrors.Register(ModuleName, 1302, "badge not found")
	ErrInvalidHandle   = sdkerrors.Register(ModuleName, 1303, "invalid handle")
	ErrRoleBadgeExists = sdkerrors.Register(ModuleName, 1304, "role badge already minted")
)
