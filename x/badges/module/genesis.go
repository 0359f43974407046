package badges

import (
	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/teampay/chain/x/badges/keeper"
	"github.com/teampay/chain/x/badges/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, genState types.GenesisState) {
	for _, badge := range genState.Badges {
		if err := k.Badges.Set(ctx, badge.Credential, badge); err != nil {
			panic(err)
		}
	}
	for _, role := range genState.RoleBadges {
		if err := k.RoleBadges.Set(ctx, collections.Join(role.Credential, role.ContractID), role); err != nil {
			panic(err)
		}
	}
}

// ExportGenesis returns the module's exported genesis.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *types.GenesisState {
	genesis := types.DefaultGenesis()
	genesis.Badges = k.GetAllBadges(ctx)
	genesis.RoleBadges = k.GetAllRoleBadges(ctx)
	return genesis
}
