package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// x/custody module sentinel errors
var (
	ErrUnauthorized      = sdkerrors.Register(ModuleName, 1100, "authorization failed")
	ErrPrecondition      = sdkerrors.Register(ModuleName, 1101, "precondition violated")
	ErrLedgerInvariant   = sdkerrors.Register(ModuleName, 1102, "ledger invariant violated")
	ErrContractNotFound  = sdkerrors.Register(ModuleName, 1103, "contract not found")
	ErrMemberNotFound    = sdkerrors.Register(ModuleName, 1104, "member not found")
	ErrInvalidDenom      = sdkerrors.Register(ModuleName, 1105, "invalid denomination")
	ErrNothingToWithdraw = sdkerrors.Register(ModuleName, 1106, "nothing to withdraw")
	ErrAlreadyCancelled  = sdkerrors.Register(ModuleName, 1107, "contract already cancelled")
	ErrAlreadySigned     = sdkerrors.Register(ModuleName, 1108, "member already signed")
	ErrAlreadyInvited    = sdkerrors.Register(ModuleName, 1109, "invite slot already occupied")
	ErrListingLocked     = sdkerrors.Register(ModuleName, 1110, "listing lock period has not elapsed")
	ErrInvalidSchedule   = sdkerrors.Register(ModuleName, 1111, "invalid vesting schedule")
	ErrInvalidObjectives = sdkerrors.Register(ModuleName, 1112, "invalid objectives")
	ErrContractExists    = sdkerrors.Register(ModuleName, 1113, "contract already exists")
	ErrObjectiveNotFound = sdkerrors.Register(ModuleName, 1114, "objective not found")
	ErrJoinWindowClosed  = sdkerrors.Register(ModuleName, 1115, "join window closed")
	ErrAlreadyListed     = sdkerrors.Register(ModuleName, 1116, "contract already listed")
)
