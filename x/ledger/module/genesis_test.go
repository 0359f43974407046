package ledger_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/teampay/chain/testutil/keeper"
	ledger "github.com/teampay/chain/x/ledger/module"
	"github.com/teampay/chain/x/ledger/types"
)

func TestGenesisRoundTrip(t *testing.T) {
	genesisState := types.GenesisState{
		Records: []types.TxRecord{
			{
				Sequence:   0,
				Epoch:      keepertest.TestBlockTime,
				ContractID: "contract-1",
				Amount:     math.LegacyZeroDec(),
				Denom:      "upay",
				Kind:       types.TxKindCreate,
			},
			{
				Sequence:   1,
				Epoch:      keepertest.TestBlockTime,
				ContractID: "contract-1",
				Amount:     math.LegacyNewDec(10000),
				Denom:      "upay",
				Kind:       types.TxKindDeposit,
			},
		},
	}
	require.NoError(t, genesisState.Validate())

	k, ctx := keepertest.LedgerKeeper(t)
	ledger.InitGenesis(ctx, k, genesisState)
	exported := ledger.ExportGenesis(ctx, k)
	require.NotNil(t, exported)
	require.ElementsMatch(t, genesisState.Records, exported.Records)

	// appends continue after the highest imported sequence
	require.Equal(t, uint64(2), k.Count(ctx))
	require.NoError(t, k.AppendRecord(ctx, types.TxRecord{
		ContractID: "contract-1",
		Amount:     math.LegacyNewDec(1),
		Denom:      "upay",
		Kind:       types.TxKindWithdraw,
	}))
	record, found := k.GetRecord(ctx, 2)
	require.True(t, found)
	require.Equal(t, types.TxKindWithdraw, record.Kind)
}

func TestGenesisValidateDuplicateSequence(t *testing.T) {
	genesisState := types.GenesisState{
		Records: []types.TxRecord{
			{Sequence: 0, ContractID: "contract-1", Amount: math.LegacyZeroDec(), Kind: types.TxKindCreate},
			{Sequence: 0, ContractID: "contract-2", Amount: math.LegacyZeroDec(), Kind: types.TxKindCreate},
		},
	}
	require.ErrorIs(t, genesisState.Validate(), types.ErrInvalidRecord)
}
