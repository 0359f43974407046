package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/teampay/chain/testutil/keeper"
	"github.com/teampay/chain/testutil/sample"
	"github.com/teampay/chain/x/marketplace/types"
)

func engineeringCategory() types.Category {
	return types.Category{
		Name:    "engineering",
		Kind:    "job",
		Minimum: math.LegacyNewDec(100),
		Fee:     math.NewInt(250_000),
	}
}

func TestAddCategory(t *testing.T) {
	k, _, ctx := keepertest.MarketplaceKeeper(t)

	require.NoError(t, k.AddCategory(ctx, k.GetAuthority(), engineeringCategory()))

	stored, found := k.GetCategory(ctx, "job", "engineering")
	require.True(t, found)
	require.Equal(t, math.NewInt(250_000), stored.Fee)

	// duplicates and non-authority callers are rejected
	require.ErrorIs(t, k.AddCategory(ctx, k.GetAuthority(), engineeringCategory()), types.ErrCategoryExists)
	require.ErrorIs(t, k.AddCategory(ctx, sample.AccAddress(), engineeringCategory()), types.ErrUnauthorized)
}

func TestUpdateCategory(t *testing.T) {
	k, _, ctx := keepertest.MarketplaceKeeper(t)
	require.NoError(t, k.AddCategory(ctx, k.GetAuthority(), engineeringCategory()))

	updated := engineeringCategory()
	updated.Fee = math.NewInt(500_000)
	require.NoError(t, k.UpdateCategory(ctx, k.GetAuthority(), updated))

	stored, _ := k.GetCategory(ctx, "job", "engineering")
	require.Equal(t, math.NewInt(500_000), stored.Fee)

	missing := engineeringCategory()
	missing.Name = "consulting"
	require.ErrorIs(t, k.UpdateCategory(ctx, k.GetAuthority(), missing), types.ErrCategoryNotFound)
	require.ErrorIs(t, k.UpdateCategory(ctx, sample.AccAddress(), updated), types.ErrUnauthorized)
}

func TestCheckListingEligibility(t *testing.T) {
	k, _, ctx := keepertest.MarketplaceKeeper(t)
	require.NoError(t, k.AddCategory(ctx, k.GetAuthority(), engineeringCategory()))

	fee, err := k.CheckListingEligibility(ctx, "job", "engineering", math.LegacyNewDec(10000), "upay")
	require.NoError(t, err)
	require.Equal(t, sdk.NewInt64Coin("upay", 250_000), fee)

	_, err = k.CheckListingEligibility(ctx, "job", "consulting", math.LegacyNewDec(10000), "upay")
	require.ErrorIs(t, err, types.ErrCategoryNotFound)

	_, err = k.CheckListingEligibility(ctx, "job", "engineering", math.LegacyNewDec(99), "upay")
	require.ErrorIs(t, err, types.ErrBelowMinimum)

	_, err = k.CheckListingEligibility(ctx, "job", "engineering", math.LegacyNewDec(10000), "uatom")
	require.ErrorIs(t, err, types.ErrWrongDenom)
}

func TestListContract(t *testing.T) {
	k, bank, ctx := keepertest.MarketplaceKeeper(t)
	require.NoError(t, k.AddCategory(ctx, k.GetAuthority(), engineeringCategory()))

	payer := sample.AccAddressBytes()
	fee := sdk.NewInt64Coin("upay", 250_000)
	bank.FundAccount(payer, sdk.NewCoins(fee))

	require.NoError(t, k.ListContract(ctx, "job", "engineering", "contract-1", payer, fee))

	// fee collected into the module account
	require.Equal(t, math.NewInt(250_000), bank.ModuleBalance(types.ModuleName).AmountOf("upay"))
	require.True(t, bank.AccountBalance(payer).AmountOf("upay").IsZero())

	listing, found := k.GetListing(ctx, "contract-1")
	require.True(t, found)
	require.Equal(t, "engineering", listing.Category)
	require.Equal(t, keepertest.TestBlockTime, listing.ListEpoch)

	// a contract is listed at most once
	bank.FundAccount(payer, sdk.NewCoins(fee))
	require.ErrorIs(t, k.ListContract(ctx, "job", "engineering", "contract-1", payer, fee), types.ErrAlreadyListed)
}

func TestListContractFeeMismatch(t *testing.T) {
	k, bank, ctx := keepertest.MarketplaceKeeper(t)
	require.NoError(t, k.AddCategory(ctx, k.GetAuthority(), engineeringCategory()))

	payer := sample.AccAddressBytes()
	bank.FundAccount(payer, sdk.NewCoins(sdk.NewInt64Coin("upay", 250_000)))

	err := k.ListContract(ctx, "job", "engineering", "contract-1", payer, sdk.NewInt64Coin("upay", 1))
	require.ErrorIs(t, err, types.ErrWrongFee)

	err = k.ListContract(ctx, "job", "consulting", "contract-1", payer, sdk.NewInt64Coin("upay", 250_000))
	require.ErrorIs(t, err, types.ErrCategoryNotFound)

	// nothing was collected
	require.True(t, bank.ModuleBalance(types.ModuleName).AmountOf("upay").IsZero())
}

func TestListContractZeroFeeCategory(t *testing.T) {
	k, bank, ctx := keepertest.MarketplaceKeeper(t)
	free := engineeringCategory()
	free.Fee = math.NewInt(0)
	require.NoError(t, k.AddCategory(ctx, k.GetAuthority(), free))

	payer := sample.AccAddressBytes()
	require.NoError(t, k.ListContract(ctx, "job", "engineering", "contract-1", payer, sdk.NewInt64Coin("upay", 0)))
	require.True(t, bank.ModuleBalance(types.ModuleName).AmountOf("upay").IsZero())
}

func TestRemoveListing(t *testing.T) {
	k, bank, ctx := keepertest.MarketplaceKeeper(t)
	require.NoError(t, k.AddCategory(ctx, k.GetAuthority(), engineeringCategory()))

	payer := sample.AccAddressBytes()
	fee := sdk.NewInt64Coin("upay", 250_000)
	bank.FundAccount(payer, sdk.NewCoins(fee))
	require.NoError(t, k.ListContract(ctx, "job", "engineering", "contract-1", payer, fee))

	require.ErrorIs(t, k.RemoveListing(ctx, sample.AccAddress(), "contract-1"), types.ErrUnauthorized)
	require.ErrorIs(t, k.RemoveListing(ctx, k.GetAuthority(), "contract-2"), types.ErrListingNotFound)

	require.NoError(t, k.RemoveListing(ctx, k.GetAuthority(), "contract-1"))
	_, found := k.GetListing(ctx, "contract-1")
	require.False(t, found)
}
