package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	badgestypes "github.com/teampay/chain/x/badges/types"
	ledgertypes "github.com/teampay/chain/x/ledger/types"
)

// EscrowBankKeeper is the bank surface custody uses to move escrowed
// principal, with a memo recorded per transfer.
type EscrowBankKeeper interface {
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins, memo string) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins, memo string) error
	// For logging transactions to tracking accounts, like escrow holds
	LogSubAccountTransaction(ctx context.Context, recipient string, sender string, subAccount string, amt sdk.Coin, memo string)
}

// CredentialKeeper verifies badge proofs and mints contract-role credentials.
type CredentialKeeper interface {
	VerifyProof(ctx context.Context, proof badgestypes.Proof, expectedCredential string) (string, error)
	HasBadge(ctx context.Context, credential, handle string) bool
	GetBadgeOwner(ctx context.Context, credential string) (sdk.AccAddress, error)
	MintAdminCredential(ctx context.Context, credential string, data badgestypes.RoleBadge) error
	MintMemberCredential(ctx context.Context, credential string, data badgestypes.RoleBadge) error
}

// LedgerKeeper receives the immutable transaction record emitted by every
// contract operation.
type LedgerKeeper interface {
	AppendRecord(ctx context.Context, record ledgertypes.TxRecord) error
}

// MarketplaceKeeper gates contract listings and collects listing fees.
type MarketplaceKeeper interface {
	CheckListingEligibility(ctx context.Context, kind, name string, amount math.LegacyDec, denom string) (sdk.Coin, error)
	ListContract(ctx context.Context, kind, name, contractID string, payer sdk.AccAddress, feePaid sdk.Coin) error
}

// ParamSubspace defines the expected Subspace interface for parameters.
type ParamSubspace interface {
	Get(context.Context, []byte, interface{})
	Set(context.Context, []byte, interface{})
}
