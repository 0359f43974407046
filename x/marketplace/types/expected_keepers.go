package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// FeeBankKeeper is the bank surface the marketplace uses to collect
// listing fees, with a memo recorded per transfer.
type FeeBankKeeper interface {
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins, memo string) error
}

// ParamSubspace defines the expected Subspace interface for parameters.
type ParamSubspace interface {
	Get(context.Context, []byte, interface{})
	Set(context.Context, []byte, interface{})
}
