package custody

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/teampay/chain/x/custody/keeper"
	"github.com/teampay/chain/x/custody/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, genState types.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}
	for _, job := range genState.Jobs {
		if err := k.SetJob(ctx, job); err != nil {
			panic(err)
		}
	}
	for _, project := range genState.Projects {
		if err := k.SetProject(ctx, project); err != nil {
			panic(err)
		}
	}
}

// ExportGenesis returns the module's exported genesis.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *types.GenesisState {
	genesis := types.DefaultGenesis()
	genesis.Params = k.GetParams(ctx)
	genesis.Jobs = k.GetAllJobs(ctx)
	genesis.Projects = k.GetAllProjects(ctx)
	return genesis
}
