package keeper

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"

	badgeskeeper "github.com/teampay/chain/x/badges/keeper"
	badgestypes "github.com/teampay/chain/x/badges/types"
	custodykeeper "github.com/teampay/chain/x/custody/keeper"
	custodytypes "github.com/teampay/chain/x/custody/types"
	ledgerkeeper "github.com/teampay/chain/x/ledger/keeper"
	ledgertypes "github.com/teampay/chain/x/ledger/types"
	marketplacekeeper "github.com/teampay/chain/x/marketplace/keeper"
	marketplacetypes "github.com/teampay/chain/x/marketplace/types"
)

// TestBlockTime is the pinned block time the contract fixtures observe.
const TestBlockTime int64 = 1695236716

// CustodyFixture wires the custody keeper with its real collaborators over
// a shared in-memory multistore, with the bank doubled in memory.
type CustodyFixture struct {
	Keeper      custodykeeper.Keeper
	MsgServer   custodytypes.MsgServer
	Badges      badgeskeeper.Keeper
	Ledger      ledgerkeeper.Keeper
	Marketplace marketplacekeeper.Keeper
	Bank        *InMemoryBankKeeper
	Authority   string
	Ctx         sdk.Context
}

func CustodyKeeper(t testing.TB) CustodyFixture {
	custodyKey := storetypes.NewKVStoreKey(custodytypes.StoreKey)
	badgesKey := storetypes.NewKVStoreKey(badgestypes.StoreKey)
	ledgerKey := storetypes.NewKVStoreKey(ledgertypes.StoreKey)
	marketplaceKey := storetypes.NewKVStoreKey(marketplacetypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(custodyKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(badgesKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(ledgerKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(marketplaceKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	authority := authtypes.NewModuleAddress(govtypes.ModuleName)
	bank := NewInMemoryBankKeeper()

	badgesK := badgeskeeper.NewKeeper(
		runtime.NewKVStoreService(badgesKey),
		log.NewNopLogger(),
		authority.String(),
	)
	ledgerK := ledgerkeeper.NewKeeper(
		runtime.NewKVStoreService(ledgerKey),
		log.NewNopLogger(),
		authority.String(),
		ledgerkeeper.LogConfig{},
	)
	marketplaceK := marketplacekeeper.NewKeeper(
		runtime.NewKVStoreService(marketplaceKey),
		log.NewNopLogger(),
		authority.String(),
		bank,
	)
	custodyK := custodykeeper.NewKeeper(
		runtime.NewKVStoreService(custodyKey),
		log.NewNopLogger(),
		authority.String(),
		bank,
		badgesK,
		ledgerK,
		marketplaceK,
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{Time: time.Unix(TestBlockTime, 0)}, false, log.NewNopLogger())

	require.NoError(t, custodyK.SetParams(ctx, custodytypes.DefaultParams()))
	require.NoError(t, marketplaceK.SetParams(ctx, marketplacetypes.DefaultParams()))

	return CustodyFixture{
		Keeper:      custodyK,
		MsgServer:   custodykeeper.NewMsgServerImpl(custodyK),
		Badges:      badgesK,
		Ledger:      ledgerK,
		Marketplace: marketplaceK,
		Bank:        bank,
		Authority:   authority.String(),
		Ctx:         ctx,
	}
}

// WithBlockTime returns a context observing the given epoch.
func (f CustodyFixture) WithBlockTime(epoch int64) sdk.Context {
	return f.Ctx.WithBlockTime(time.Unix(epoch, 0))
}

// RegisterBadge registers a handle for the owner and returns the proof the
// owner presents in contract operations.
func (f CustodyFixture) RegisterBadge(t testing.TB, owner sdk.AccAddress, handle string) badgestypes.Proof {
	credential, err := f.Badges.Register(f.Ctx, owner, handle)
	require.NoError(t, err)
	return badgestypes.Proof{
		Credential: credential,
		Handle:     handle,
		Owner:      owner.String(),
	}
}
