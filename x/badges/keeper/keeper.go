package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/teampay/chain/internal/storecodec"
	"github.com/teampay/chain/x/badges/types"
)

type (
	Keeper struct {
		storeService store.KVStoreService
		logger       log.Logger

		// the address capable of executing governance messages. Typically, this
		// should be the x/gov module account.
		authority string

		// Collections schema and stores
		Schema     collections.Schema
		Badges     collections.Map[string, types.Badge]
		RoleBadges collections.Map[collections.Pair[string, string], types.RoleBadge]
	}
)

func NewKeeper(
	storeService store.KVStoreService,
	logger log.Logger,
	authority string,
) Keeper {
	if _, err := sdk.AccAddressFromBech32(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address: %s", authority))
	}

	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		storeService: storeService,
		logger:       logger,
		authority:    authority,
	}

	// Wire collections stores
	k.Badges = collections.NewMap(sb, types.BadgeKey, "badges", collections.StringKey, storecodec.JSONValue[types.Badge]("Badge"))
	k.RoleBadges = collections.NewMap(sb, types.RoleBadgeKey, "role_badges",
		collections.PairKeyCodec(collections.StringKey, collections.StringKey), storecodec.JSONValue[types.RoleBadge]("RoleBadge"))

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

// Register mints a root badge for the handle, owned by the given account,
// and returns the derived credential id. Handles are globally unique.
func (k Keeper) Register(ctx context.Context, owner sdk.AccAddress, handle string) (string, error) {
	if handle == "" {
		return "", types.ErrInvalidHandle.Wrap("handle must be non-empty")
	}

	credential := types.CredentialID(handle)
	has, err := k.Badges.Has(ctx, credential)
	if err != nil {
		return "", err
	}
	if has {
		return "", types.ErrBadgeExists.Wrapf("handle %q", handle)
	}

	badge := types.Badge{
		Credential: credential,
		Handle:     handle,
		Owner:      owner.String(),
	}
	if err := k.Badges.Set(ctx, credential, badge); err != nil {
		return "", err
	}

	k.Logger().Info("registered badge", "handle", handle, "credential", credential)
	return credential, nil
}

// HasBadge reports whether a valid badge exists for the credential/handle pair.
func (k Keeper) HasBadge(ctx context.Context, credential, handle string) bool {
	badge, err := k.Badges.Get(ctx, credential)
	if err != nil {
		return false
	}
	return badge.Handle == handle
}

// VerifyProof authenticates a presented proof against the stored badge and
// the expected credential. It fails closed: any mismatch in credential,
// handle, or owning account is ErrInvalidProof. Returns the verified handle.
func (k Keeper) VerifyProof(ctx context.Context, proof types.Proof, expectedCredential string) (string, error) {
	if proof.Credential != expectedCredential {
		return "", types.ErrInvalidProof.Wrap("credential mismatch")
	}
	badge, err := k.Badges.Get(ctx, proof.Credential)
	if err != nil {
		return "", types.ErrInvalidProof.Wrap("unknown credential")
	}
	if badge.Handle != proof.Handle {
		return "", types.ErrInvalidProof.Wrap("handle mismatch")
	}
	if badge.Owner != proof.Owner {
		return "", types.ErrInvalidProof.Wrap("owner mismatch")
	}
	return badge.Handle, nil
}

// GetBadgeOwner returns the account that registered the credential.
func (k Keeper) GetBadgeOwner(ctx context.Context, credential string) (sdk.AccAddress, error) {
	badge, err := k.Badges.Get(ctx, credential)
	if err != nil {
		return nil, types.ErrBadgeNotFound.Wrap(credential)
	}
	return sdk.AccAddressFromBech32(badge.Owner)
}

// MintAdminCredential records the contract admin's role badge.
func (k Keeper) MintAdminCredential(ctx context.Context, credential string, data types.RoleBadge) error {
	return k.mintRoleBadge(ctx, credential, data)
}

// MintMemberCredential records a joined member's role badge.
func (k Keeper) MintMemberCredential(ctx context.Context, credential string, data types.RoleBadge) error {
	return k.mintRoleBadge(ctx, credential, data)
}

func (k Keeper) mintRoleBadge(ctx context.Context, credential string, data types.RoleBadge) error {
	key := collections.Join(credential, data.ContractID)
	has, err := k.RoleBadges.Has(ctx, key)
	if err != nil {
		return err
	}
	if has {
		return types.ErrRoleBadgeExists.Wrapf("credential %s contract %s", credential, data.ContractID)
	}
	data.Credential = credential
	if err := k.RoleBadges.Set(ctx, key, data); err != nil {
		return err
	}
	k.Logger().Info("minted role badge", "credential", credential, "contract", data.ContractID, "role", data.ContractRole)
	return nil
}

// GetRoleBadge retrieves a contract-role badge.
func (k Keeper) GetRoleBadge(ctx context.Context, credential, contractID string) (types.RoleBadge, bool) {
	badge, err := k.RoleBadges.Get(ctx, collections.Join(credential, contractID))
	if err != nil {
		return types.RoleBadge{}, false
	}
	return badge, true
}

// GetRoleBadgesByCredential returns all role badges minted for a credential.
func (k Keeper) GetRoleBadgesByCredential(ctx context.Context, credential string) []types.RoleBadge {
	rng := collections.NewPrefixedPairRange[string, string](credential)
	iter, err := k.RoleBadges.Iterate(ctx, rng)
	if err != nil {
		panic(err)
	}
	values, err := iter.Values()
	if err != nil {
		panic(err)
	}
	return values
}

// GetAllBadges returns all root badges (for genesis export).
func (k Keeper) GetAllBadges(ctx context.Context) []types.Badge {
	iter, err := k.Badges.Iterate(ctx, nil)
	if err != nil {
		panic(err)
	}
	values, err := iter.Values()
	if err != nil {
		panic(err)
	}
	return values
}

// GetAllRoleBadges returns all role badges (for genesis export).
func (k Keeper) GetAllRoleBadges(ctx context.Context) []types.RoleBadge {
	iter, err := k.RoleBadges.Iterate(ctx, nil)
	if err != nil {
		panic(err)
	}
	values, err := iter.Values()
	if err != nil {
		panic(err)
	}
	return values
}
