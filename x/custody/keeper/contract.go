package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	badgestypes "github.com/teampay/chain/x/badges/types"
	"github.com/teampay/chain/x/custody/types"
	ledgertypes "github.com/teampay/chain/x/ledger/types"
)

// verifyJobAdmin loads the job and authenticates the proof as its admin.
func (k Keeper) verifyJobAdmin(ctx sdk.Context, contractID string, proof badgestypes.Proof) (types.Job, error) {
	job, found := k.GetJob(ctx, contractID)
	if !found {
		return types.Job{}, types.ErrContractNotFound.Wrap(contractID)
	}
	handle, err := k.credentialKeeper.VerifyProof(ctx, proof, job.AdminCredential)
	if err != nil {
		return types.Job{}, types.ErrUnauthorized.Wrap(err.Error())
	}
	if handle != job.AdminHandle {
		return types.Job{}, types.ErrUnauthorized.Wrap("admin handle mismatch")
	}
	return job, nil
}

// verifyJobMember authenticates the proof as an invited member of the job
// and returns the handle recorded at invite time.
func (k Keeper) verifyJobMember(ctx sdk.Context, job types.Job, proof badgestypes.Proof) (string, error) {
	recorded, ok := job.Members[proof.Credential]
	if !ok {
		return "", types.ErrMemberNotFound.Wrap(proof.Credential)
	}
	handle, err := k.credentialKeeper.VerifyProof(ctx, proof, proof.Credential)
	if err != nil {
		return "", types.ErrUnauthorized.Wrap(err.Error())
	}
	if handle != recorded {
		return "", types.ErrUnauthorized.Wrap("handle does not match the invite record")
	}
	return handle, nil
}

// verifyProjectAdmin loads the project and authenticates the proof as its admin.
func (k Keeper) verifyProjectAdmin(ctx sdk.Context, contractID string, proof badgestypes.Proof) (types.Project, error) {
	project, found := k.GetProject(ctx, contractID)
	if !found {
		return types.Project{}, types.ErrContractNotFound.Wrap(contractID)
	}
	handle, err := k.credentialKeeper.VerifyProof(ctx, proof, project.AdminCredential)
	if err != nil {
		return types.Project{}, types.ErrUnauthorized.Wrap(err.Error())
	}
	if handle != project.AdminHandle {
		return types.Project{}, types.ErrUnauthorized.Wrap("admin handle mismatch")
	}
	return project, nil
}

// verifyProjectMember authenticates the proof as a roster member of the
// project and returns the handle recorded at invite time.
func (k Keeper) verifyProjectMember(ctx sdk.Context, project types.Project, proof badgestypes.Proof) (string, error) {
	recorded, ok := project.Members[proof.Credential]
	if !ok {
		return "", types.ErrMemberNotFound.Wrap(proof.Credential)
	}
	handle, err := k.credentialKeeper.VerifyProof(ctx, proof, proof.Credential)
	if err != nil {
		return "", types.ErrUnauthorized.Wrap(err.Error())
	}
	if handle != recorded {
		return "", types.ErrUnauthorized.Wrap("handle does not match the invite record")
	}
	return handle, nil
}

// adminAddress resolves the account that owns the admin credential, for
// sweeps initiated by someone other than the admin.
func (k Keeper) adminAddress(ctx sdk.Context, adminCredential string) (sdk.AccAddress, error) {
	addr, err := k.credentialKeeper.GetBadgeOwner(ctx, adminCredential)
	if err != nil {
		return nil, types.ErrUnauthorized.Wrap(err.Error())
	}
	return addr, nil
}

// checkContractExists rejects ids already taken by either variant.
func (k Keeper) checkContractExists(ctx sdk.Context, contractID string) error {
	if _, found := k.GetJob(ctx, contractID); found {
		return types.ErrContractExists.Wrap(contractID)
	}
	if _, found := k.GetProject(ctx, contractID); found {
		return types.ErrContractExists.Wrap(contractID)
	}
	return nil
}

// checkListingLock gates fund-moving operations after a listing. A contract
// that was never listed has a zero list epoch and passes trivially.
func (k Keeper) checkListingLock(ctx sdk.Context, listEpoch int64) error {
	if listEpoch == 0 {
		return nil
	}
	unlockEpoch := listEpoch + k.GetParams(ctx).ListingLockDays*types.SecondsPerDay
	if now := ctx.BlockTime().Unix(); now < unlockEpoch {
		return types.ErrListingLocked.Wrapf("locked until epoch %d, now %d", unlockEpoch, now)
	}
	return nil
}

// reserveUnlockedFunds moves whatever has vested beyond the unvested floor
// from the job's escrow into the shared reserved pool, truncated to the
// asset precision. No-op once the contract is cancelled or while the
// schedule holds nothing, which keeps a frozen schedule from double-counting.
func reserveUnlockedFunds(job *types.Job, now int64) math.LegacyDec {
	if job.IsCancelled || job.Schedule.Amount.IsZero() {
		return math.LegacyZeroDec()
	}
	unvested := job.Schedule.Unvested(now)
	free := types.TruncateToPrecision(job.Funds.Sub(unvested), job.AssetDecimals)
	if !free.IsPositive() {
		return math.LegacyZeroDec()
	}
	job.Funds = job.Funds.Sub(free)
	job.Reserved = job.Reserved.Add(free)
	return free
}

// collectEscrow pulls base-unit coins from the payer into the module account.
func (k Keeper) collectEscrow(ctx sdk.Context, payer sdk.AccAddress, denom string, decimals uint32, amount math.LegacyDec, memo string) error {
	coin := types.CoinFromDec(denom, decimals, amount)
	if err := k.escrowBankKeeper.SendCoinsFromAccountToModule(ctx, payer, types.ModuleName, sdk.NewCoins(coin), memo); err != nil {
		return err
	}
	k.escrowBankKeeper.LogSubAccountTransaction(ctx, types.ModuleName, payer.String(), types.SubAccountEscrow, coin, memo)
	return nil
}

// releaseEscrow pays base-unit coins from the module account to the recipient.
func (k Keeper) releaseEscrow(ctx sdk.Context, recipient sdk.AccAddress, denom string, decimals uint32, amount math.LegacyDec, memo string) error {
	coin := types.CoinFromDec(denom, decimals, amount)
	if err := k.escrowBankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipient, sdk.NewCoins(coin), memo); err != nil {
		return err
	}
	k.escrowBankKeeper.LogSubAccountTransaction(ctx, recipient.String(), types.ModuleName, types.SubAccountReserved, coin, memo)
	return nil
}

// appendRecord emits the immutable ledger record every operation produces.
func (k Keeper) appendRecord(ctx sdk.Context, kind ledgertypes.TxKind, contractID string, contractKind types.ContractKind,
	fromHandle, fromCredential, toHandle, toCredential string, amount math.LegacyDec, denom string,
) error {
	return k.ledgerKeeper.AppendRecord(ctx, ledgertypes.TxRecord{
		Epoch:          ctx.BlockTime().Unix(),
		ContractID:     contractID,
		ContractKind:   string(contractKind),
		FromHandle:     fromHandle,
		FromCredential: fromCredential,
		ToHandle:       toHandle,
		ToCredential:   toCredential,
		Amount:         amount,
		Denom:          denom,
		Kind:           kind,
	})
}

// emitContractEvent emits the module event shared by every operation.
func emitContractEvent(ctx sdk.Context, eventType, contractID string, kind types.ContractKind, credential string, amount math.LegacyDec, denom string) {
	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			eventType,
			sdk.NewAttribute(types.AttributeKeyContractID, contractID),
			sdk.NewAttribute(types.AttributeKeyKind, string(kind)),
			sdk.NewAttribute(types.AttributeKeyCredential, credential),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyEpoch, fmt.Sprintf("%d", ctx.BlockTime().Unix())),
		),
	})
}
