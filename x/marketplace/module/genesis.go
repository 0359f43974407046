package marketplace

import (
	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/teampay/chain/x/marketplace/keeper"
	"github.com/teampay/chain/x/marketplace/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, genState types.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}
	for _, category := range genState.Categories {
		if err := k.Categories.Set(ctx, collections.Join(category.Kind, category.Name), category); err != nil {
			panic(err)
		}
	}
	for _, listing := range genState.Listings {
		if err := k.Listings.Set(ctx, listing.ContractID, listing); err != nil {
			panic(err)
		}
	}
}

// ExportGenesis returns the module's exported genesis.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *types.GenesisState {
	genesis := types.DefaultGenesis()
	genesis.Params = k.GetParams(ctx)
	genesis.Categories = k.GetAllCategories(ctx)
	genesis.Listings = k.GetAllListings(ctx)
	return genesis
}
