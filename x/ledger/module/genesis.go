package ledger

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/teampay/chain/x/ledger/keeper"
	"github.com/teampay/chain/x/ledger/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, genState types.GenesisState) {
	var next uint64
	for _, record := range genState.Records {
		if err := k.RecordStore.Set(ctx, record.Sequence, record); err != nil {
			panic(err)
		}
		if record.Sequence >= next {
			next = record.Sequence + 1
		}
	}
	if err := k.RecordCount.Set(ctx, next); err != nil {
		panic(err)
	}
}

// ExportGenesis returns the module's exported genesis.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *types.GenesisState {
	genesis := types.DefaultGenesis()
	genesis.Records = k.GetAllRecords(ctx)
	return genesis
}
