package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/teampay/chain/internal/storecodec"
	"github.com/teampay/chain/x/marketplace/types"
)

type (
	Keeper struct {
		storeService store.KVStoreService
		logger       log.Logger

		// the address capable of executing governance messages. Typically, this
		// should be the x/gov module account.
		authority string

		bankKeeper types.FeeBankKeeper

		// Collections schema and stores
		Schema     collections.Schema
		Params     collections.Item[types.Params]
		Categories collections.Map[collections.Pair[string, string], types.Category]
		Listings   collections.Map[string, types.Listing]
	}
)

func NewKeeper(
	storeService store.KVStoreService,
	logger log.Logger,
	authority string,
	bankKeeper types.FeeBankKeeper,
) Keeper {
	if _, err := sdk.AccAddressFromBech32(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address: %s", authority))
	}

	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		storeService: storeService,
		logger:       logger,
		authority:    authority,
		bankKeeper:   bankKeeper,
	}

	k.Params = collections.NewItem(sb, types.ParamsKey, "params", storecodec.JSONValue[types.Params]("Params"))
	k.Categories = collections.NewMap(sb, types.CategoryKey, "categories",
		collections.PairKeyCodec(collections.StringKey, collections.StringKey), storecodec.JSONValue[types.Category]("Category"))
	k.Listings = collections.NewMap(sb, types.ListingKey, "listings", collections.StringKey, storecodec.JSONValue[types.Listing]("Listing"))

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// Logger returns a module-specific logger.
func (k Keeper) Logger() log.Logger {
	return k.logger.With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// GetParams get all parameters as types.Params
func (k Keeper) GetParams(ctx context.Context) types.Params {
	params, err := k.Params.Get(ctx)
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
	return k.Params.Set(ctx, params)
}

// AddCategory registers a new listing category. Authority-gated.
func (k Keeper) AddCategory(ctx context.Context, authority string, category types.Category) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf("expected %s, got %s", k.authority, authority)
	}
	if err := category.Validate(); err != nil {
		return err
	}
	key := collections.Join(category.Kind, category.Name)
	has, err := k.Categories.Has(ctx, key)
	if err != nil {
		return err
	}
	if has {
		return types.ErrCategoryExists.Wrapf("%s/%s", category.Kind, category.Name)
	}
	if err := k.Categories.Set(ctx, key, category); err != nil {
		return err
	}
	k.Logger().Info("added category", "kind", category.Kind, "name", category.Name, "fee", category.Fee.String())
	return nil
}

// UpdateCategory replaces an existing category's minimum and fee. Authority-gated.
func (k Keeper) UpdateCategory(ctx context.Context, authority string, category types.Category) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf("expected %s, got %s", k.authority, authority)
	}
	if err := category.Validate(); err != nil {
		return err
	}
	key := collections.Join(category.Kind, category.Name)
	has, err := k.Categories.Has(ctx, key)
	if err != nil {
		return err
	}
	if !has {
		return types.ErrCategoryNotFound.Wrapf("%s/%s", category.Kind, category.Name)
	}
	return k.Categories.Set(ctx, key, category)
}

// GetCategory retrieves a category by kind and name.
func (k Keeper) GetCategory(ctx context.Context, kind, name string) (types.Category, bool) {
	category, err := k.Categories.Get(ctx, collections.Join(kind, name))
	if err != nil {
		return types.Category{}, false
	}
	return category, true
}

// CheckListingEligibility validates a contract against a category and
// returns the fee that listing will cost. The contract's deposited amount
// must reach the category minimum and its escrow denom must be the
// marketplace settlement denom.
func (k Keeper) CheckListingEligibility(ctx context.Context, kind, name string, amount math.LegacyDec, denom string) (sdk.Coin, error) {
	category, found := k.GetCategory(ctx, kind, name)
	if !found {
		return sdk.Coin{}, types.ErrCategoryNotFound.Wrapf("%s/%s", kind, name)
	}
	settlementDenom := k.GetParams(ctx).SettlementDenom
	if denom != settlementDenom {
		return sdk.Coin{}, types.ErrWrongDenom.Wrapf("contract escrows %s, marketplace settles %s", denom, settlementDenom)
	}
	if amount.LT(category.Minimum) {
		return sdk.Coin{}, types.ErrBelowMinimum.Wrapf("deposited %s, minimum %s", amount, category.Minimum)
	}
	return sdk.NewCoin(settlementDenom, category.Fee), nil
}

// ListContract collects the listing fee from the payer and records the
// listing. The supplied fee must match the category fee exactly.
func (k Keeper) ListContract(ctx context.Context, kind, name, contractID string, payer sdk.AccAddress, feePaid sdk.Coin) error {
	category, found := k.GetCategory(ctx, kind, name)
	if !found {
		return types.ErrCategoryNotFound.Wrapf("%s/%s", kind, name)
	}
	has, err := k.Listings.Has(ctx, contractID)
	if err != nil {
		return err
	}
	if has {
		return types.ErrAlreadyListed.Wrap(contractID)
	}
	required := sdk.NewCoin(k.GetParams(ctx).SettlementDenom, category.Fee)
	if !feePaid.Equal(required) {
		return types.ErrWrongFee.Wrapf("paid %s, category requires %s", feePaid, required)
	}
	if required.IsPositive() {
		memo := fmt.Sprintf("listing fee for %s in %s/%s", contractID, kind, name)
		if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, payer, types.ModuleName, sdk.NewCoins(required), memo); err != nil {
			return err
		}
	}
	listing := types.Listing{
		ContractID: contractID,
		Kind:       kind,
		Category:   name,
		FeePaid:    feePaid.Amount,
		ListEpoch:  sdk.UnwrapSDKContext(ctx).BlockTime().Unix(),
	}
	if err := k.Listings.Set(ctx, contractID, listing); err != nil {
		return err
	}
	k.Logger().Info("listed contract", "contract", contractID, "category", name, "fee", feePaid.String())
	return nil
}

// RemoveListing deletes a listing. Authority-gated.
func (k Keeper) RemoveListing(ctx context.Context, authority string, contractID string) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf("expected %s, got %s", k.authority, authority)
	}
	has, err := k.Listings.Has(ctx, contractID)
	if err != nil {
		return err
	}
	if !has {
		return types.ErrListingNotFound.Wrap(contractID)
	}
	return k.Listings.Remove(ctx, contractID)
}

// GetListing retrieves a listing by contract id.
func (k Keeper) GetListing(ctx context.Context, contractID string) (types.Listing, bool) {
	listing, err := k.Listings.Get(ctx, contractID)
	if err != nil {
		return types.Listing{}, false
	}
	return listing, true
}

// GetAllCategories returns every category (for genesis export).
func (k Keeper) GetAllCategories(ctx context.Context) []types.Category {
	iter, err := k.Categories.Iterate(ctx, nil)
	if err != nil {
		panic(err)
	}
	values, err := iter.Values()
	if err != nil {
		panic(err)
	}
	return values
}

// GetAllListings returns every listing (for genesis export).
func (k Keeper) GetAllListings(ctx context.Context) []types.Listing {
	iter, err := k.Listings.Iterate(ctx, nil)
	if err != nil {
		panic(err)
	}
	values, err := iter.Values()
	if err != nil {
		panic(err)
	}
	return values
}
