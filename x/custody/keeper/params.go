package keeper

import (
	"context"

	"github.com/teampay/chain/x/custody/types"
)

// GetParams get all parameters as types.Params
func (k Keeper) GetParams(ctx context.Context) types.Params {
	params, err := k.ParamsStore.Get(ctx)
	if err != nil {
		return types.DefaultParams()
	}
	return params
}

// SetParams set the params
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	return k.ParamsStore.Set(ctx, params)
}
