package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	badgestypes "github.com/teampay/chain/x/badges/types"
	"github.com/teampay/chain/x/custody/types"
	ledgertypes "github.com/teampay/chain/x/ledger/types"
)

// CreateJob instantiates the single-escrow vesting contract and mints the
// admin's role credential.
func (k msgServer) CreateJob(goCtx context.Context, msg *types.MsgCreateJob) (*types.MsgCreateJobResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	adminHandle, err := k.credentialKeeper.VerifyProof(ctx, msg.Proof, msg.Proof.Credential)
	if err != nil {
		return nil, types.ErrUnauthorized.Wrap(err.Error())
	}

	contractID := types.ContractID(types.KindJob, msg.TeamHandle, msg.ContractHandle)
	if err := k.checkContractExists(ctx, contractID); err != nil {
		return nil, err
	}

	schedule, err := types.NewVestingSchedule(msg.StartEpoch, msg.CliffEpoch, msg.EndEpoch, msg.VestInterval, msg.CheckJoin)
	if err != nil {
		return nil, err
	}

	job := types.Job{
		ID:              contractID,
		TeamHandle:      msg.TeamHandle,
		ContractHandle:  msg.ContractHandle,
		ContractName:    msg.ContractName,
		Category:        msg.Category,
		Image:           msg.Image,
		Details:         msg.Details,
		AdminCredential: msg.Proof.Credential,
		AdminHandle:     adminHandle,
		AssetDenom:      msg.AssetDenom,
		AssetDecimals:   msg.AssetDecimals,
		Funds:           math.LegacyZeroDec(),
		Reserved:        math.LegacyZeroDec(),
		Schedule:        schedule,
		CreatedEpoch:    ctx.BlockTime().Unix(),
	}

	if msg.Deposit.IsPositive() {
		if err := types.ValidatePrecision(msg.Deposit, job.AssetDecimals); err != nil {
			return nil, err
		}
		signerAddr := sdk.MustAccAddressFromBech32(msg.Signer)
		if err := k.collectEscrow(ctx, signerAddr, job.AssetDenom, job.AssetDecimals, msg.Deposit, "job escrow deposit"); err != nil {
			return nil, err
		}
		job.Funds = msg.Deposit
		job.Schedule.Amount = msg.Deposit
	}

	if err := k.credentialKeeper.MintAdminCredential(ctx, job.AdminCredential, badgestypes.RoleBadge{
		ContractID:     contractID,
		ContractKind:   string(types.KindJob),
		ContractRole:   string(types.RoleAdmin),
		ContractHandle: job.ContractHandle,
		TeamHandle:     job.TeamHandle,
	}); err != nil {
		return nil, err
	}

	if err := k.SetJob(ctx, job); err != nil {
		return nil, err
	}
	if err := k.appendRecord(ctx, ledgertypes.TxKindCreate, contractID, types.KindJob,
		job.AdminHandle, job.AdminCredential, job.ContractHandle, contractID, job.Schedule.Amount, job.AssetDenom); err != nil {
		return nil, err
	}
	emitContractEvent(ctx, types.EventTypeCreateContract, contractID, types.KindJob, job.AdminCredential, job.Schedule.Amount, job.AssetDenom)

	k.Logger().Info("created job contract", "contract", contractID, "admin", job.AdminHandle, "deposit", job.Schedule.Amount.String())
	return &types.MsgCreateJobResponse{ContractID: contractID}, nil
}

// InviteJobMember fills the job's single member slot.
func (k msgServer) InviteJobMember(goCtx context.Context, msg *types.MsgInviteJobMember) (*types.MsgInviteJobMemberResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	job, err := k.verifyJobAdmin(ctx, msg.ContractID, msg.Proof)
	if err != nil {
		return nil, err
	}
	if job.IsCancelled {
		return nil, types.ErrAlreadyCancelled.Wrap(job.ID)
	}
	if len(job.Members) > 0 {
		return nil, types.ErrAlreadyInvited.Wrap("job holds a single member slot")
	}
	if !k.credentialKeeper.HasBadge(ctx, msg.MemberCredential, msg.MemberHandle) {
		return nil, types.ErrMemberNotFound.Wrapf("no badge for handle %q", msg.MemberHandle)
	}

	job.Members = map[string]string{msg.MemberCredential: msg.MemberHandle}
	if err := k.SetJob(ctx, job); err != nil {
		return nil, err
	}
	if err := k.appendRecord(ctx, ledgertypes.TxKindInvite, job.ID, types.KindJob,
		job.AdminHandle, job.AdminCredential, msg.MemberHandle, msg.MemberCredential, math.LegacyZeroDec(), job.AssetDenom); err != nil {
		return nil, err
	}
	emitContractEvent(ctx, types.EventTypeInvite, job.ID, types.KindJob, msg.MemberCredential, math.LegacyZeroDec(), job.AssetDenom)

	return &types.MsgInviteJobMemberResponse{}, nil
}

// JoinJob records the invited member's signature and mints the member-role
// credential.
func (k msgServer) JoinJob(goCtx context.Context, msg *types.MsgJoinJob) (*types.MsgJoinJobResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	job, found := k.GetJob(ctx, msg.ContractID)
	if !found {
		return nil, types.ErrContractNotFound.Wrap(msg.ContractID)
	}
	if job.IsCancelled {
		return nil, types.ErrAlreadyCancelled.Wrap(job.ID)
	}

	handle, err := k.verifyJobMember(ctx, job, msg.Proof)
	if err != nil {
		return nil, err
	}
	if job.HasSignature(msg.Proof.Credential) {
		return nil, types.ErrAlreadySigned.Wrap(handle)
	}
	if err := job.Schedule.CheckJoinWindow(ctx.BlockTime().Unix()); err != nil {
		return nil, err
	}

	if job.Signatures == nil {
		job.Signatures = map[string]bool{}
	}
	job.Signatures[msg.Proof.Credential] = true

	if err := k.credentialKeeper.MintMemberCredential(ctx, msg.Proof.Credential, badgestypes.RoleBadge{
		ContractID:     job.ID,
		ContractKind:   string(types.KindJob),
		ContractRole:   string(types.RoleMember),
		ContractHandle: job.ContractHandle,
		TeamHandle:     job.TeamHandle,
	}); err != nil {
		return nil, err
	}
	if err := k.SetJob(ctx, job); err != nil {
		return nil, err
	}
	if err := k.appendRecord(ctx, ledgertypes.TxKindJoin, job.ID, types.KindJob,
		handle, msg.Proof.Credential, job.ContractHandle, job.ID, math.LegacyZeroDec(), job.AssetDenom); err != nil {
		return nil, err
	}
	emitContractEvent(ctx, types.EventTypeJoin, job.ID, types.KindJob, msg.Proof.Credential, math.LegacyZeroDec(), job.AssetDenom)

	k.Logger().Info("member joined job", "contract", job.ID, "member", handle)
	return &types.MsgJoinJobResponse{}, nil
}

// RemoveJobMember frees the invite slot. A signed member cannot be removed;
// the stream belongs to them until they leave or the admin cancels.
func (k msgServer) RemoveJobMember(goCtx context.Context, msg *types.MsgRemoveJobMember) (*types.MsgRemoveJobMemberResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	job, err := k.verifyJobAdmin(ctx, msg.ContractID, msg.Proof)
	if err != nil {
		return nil, err
	}
	handle, ok := job.Members[msg.MemberCredential]
	if !ok {
		return nil, types.ErrMemberNotFound.Wrap(msg.MemberCredential)
	}
	if job.HasSignature(msg.MemberCredential) {
		return nil, types.ErrPrecondition.Wrap("cannot remove a signed member")
	}

	delete(job.Members, msg.MemberCredential)
	if err := k.SetJob(ctx, job); err != nil {
		return nil, err
	}
	if err := k.appendRecord(ctx, ledgertypes.TxKindRemove, job.ID, types.KindJob,
		job.AdminHandle, job.AdminCredential, handle, msg.MemberCredential, math.LegacyZeroDec(), job.AssetDenom); err != nil {
		return nil, err
	}
	emitContractEvent(ctx, types.EventTypeRemove, job.ID, types.KindJob, msg.MemberCredential, math.LegacyZeroDec(), job.AssetDenom)

	return &types.MsgRemoveJobMemberResponse{}, nil
}

// LeaveJob is the member's unilateral exit. One member leaving ends the
// stream for everyone: the contract cancels and the remaining escrow sweeps
// back to the admin. The member must have drained any reserved balance first.
func (k msgServer) LeaveJob(goCtx context.Context, msg *types.MsgLeaveJob) (*types.MsgLeaveJobResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	job, found := k.GetJob(ctx, msg.ContractID)
	if !found {
		return nil, types.ErrContractNotFound.Wrap(msg.ContractID)
	}
	if job.IsCancelled {
		return nil, types.ErrAlreadyCancelled.Wrap(job.ID)
	}

	handle, err := k.verifyJobMember(ctx, job, msg.Proof)
	if err != nil {
		return nil, err
	}
	if !job.HasSignature(msg.Proof.Credential) {
		return nil, types.ErrPrecondition.Wrap("only a signed member can leave")
	}
	if !job.Reserved.IsZero() {
		return nil, types.ErrPrecondition.Wrap("withdraw the reserved balance before leaving")
	}
	if err := k.checkListingLock(ctx, job.ListEpoch); err != nil {
		return nil, err
	}

	now := ctx.BlockTime().Unix()
	job.IsCancelled = true
	job.Schedule.CancelEpoch = &now

	swept := job.Funds
	if swept.IsPositive() {
		adminAddr, err := k.adminAddress(ctx, job.AdminCredential)
		if err != nil {
			return nil, err
		}
		job.Funds = math.LegacyZeroDec()
		job.Schedule.Withdrawn = job.Schedule.Withdrawn.Add(swept)
		if err := k.releaseEscrow(ctx, adminAddr, job.AssetDenom, job.AssetDecimals, swept, "job cancelled on member exit"); err != nil {
			return nil, err
		}
	}

	if err := k.SetJob(ctx, job); err != nil {
		return nil, err
	}
	if err := k.appendRecord(ctx, ledgertypes.TxKindLeave, job.ID, types.KindJob,
		handle, msg.Proof.Credential, job.AdminHandle, job.AdminCredential, swept, job.AssetDenom); err != nil {
		return nil, err
	}
	emitContractEvent(ctx, types.EventTypeLeave, job.ID, types.KindJob, msg.Proof.Credential, swept, job.AssetDenom)

	k.Logger().Info("member left job, contract cancelled", "contract", job.ID, "member", handle, "swept", swept.String())
	return &types.MsgLeaveJobResponse{}, nil
}

// DepositJob escrows additional principal into the schedule. Admin-only.
func (k msgServer) DepositJob(goCtx context.Context, msg *types.MsgDepositJob) (*types.MsgDepositJobResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	job, err := k.verifyJobAdmin(ctx, msg.ContractID, msg.Proof)
	if err != nil {
		return nil, err
	}
	if job.IsCancelled {
		return nil, types.ErrAlreadyCancelled.Wrap(job.ID)
	}
	if msg.Denom != job.AssetDenom {
		return nil, types.ErrInvalidDenom.Wrapf("contract escrows %s, got %s", job.AssetDenom, msg.Denom)
	}
	if err := types.ValidatePrecision(msg.Amount, job.AssetDecimals); err != nil {
		return nil, err
	}

	signerAddr := sdk.MustAccAddressFromBech32(msg.Signer)
	if err := k.collectEscrow(ctx, signerAddr, job.AssetDenom, job.AssetDecimals, msg.Amount, "job escrow deposit"); err != nil {
		return nil, err
	}
	job.Funds = job.Funds.Add(msg.Amount)
	job.Schedule.Amount = job.Schedule.Amount.Add(msg.Amount)

	if err := k.SetJob(ctx, job); err != nil {
		return nil, err
	}
	if err := k.appendRecord(ctx, ledgertypes.TxKindDeposit, job.ID, types.KindJob,
		job.AdminHandle, job.AdminCredential, job.ContractHandle, job.ID, msg.Amount, job.AssetDenom); err != nil {
		return nil, err
	}
	emitContractEvent(ctx, types.EventTypeDeposit, job.ID, types.KindJob, job.AdminCredential, msg.Amount, job.AssetDenom)

	k.Logger().Info("job deposit", "contract", job.ID, "amount", msg.Amount.String(), "total", job.Schedule.Amount.String())
	return &types.MsgDepositJobResponse{}, nil
}

// WithdrawJob reserves whatever has vested and drains the shared reserved
// pool to the signing member.
func (k msgServer) WithdrawJob(goCtx context.Context, msg *types.MsgWithdrawJob) (*types.MsgWithdrawJobResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	job, found := k.GetJob(ctx, msg.ContractID)
	if !found {
		return nil, types.ErrContractNotFound.Wrap(msg.ContractID)
	}
	if len(job.Signatures) == 0 {
		return nil, types.ErrPrecondition.Wrap("the stream has no destination until a member joins")
	}

	handle, err := k.verifyJobMember(ctx, job, msg.Proof)
	if err != nil {
		return nil, err
	}
	if !job.HasSignature(msg.Proof.Credential) {
		return nil, types.ErrPrecondition.Wrap("member has not signed")
	}
	if err := k.checkListingLock(ctx, job.ListEpoch); err != nil {
		return nil, err
	}

	reserveUnlockedFunds(&job, ctx.BlockTime().Unix())

	amount := job.Reserved
	if amount.IsZero() {
		return nil, types.ErrNothingToWithdraw.Wrap(job.ID)
	}
	job.Reserved = math.LegacyZeroDec()
	job.Schedule.Withdrawn = job.Schedule.Withdrawn.Add(amount)

	signerAddr := sdk.MustAccAddressFromBech32(msg.Signer)
	if err := k.releaseEscrow(ctx, signerAddr, job.AssetDenom, job.AssetDecimals, amount, "job vested withdrawal"); err != nil {
		return nil, err
	}

	if err := k.SetJob(ctx, job); err != nil {
		return nil, err
	}
	if err := k.appendRecord(ctx, ledgertypes.TxKindWithdraw, job.ID, types.KindJob,
		job.ContractHandle, job.ID, handle, msg.Proof.Credential, amount, job.AssetDenom); err != nil {
		return nil, err
	}
	emitContractEvent(ctx, types.EventTypeWithdraw, job.ID, types.KindJob, msg.Proof.Credential, amount, job.AssetDenom)

	k.Logger().Info("job withdrawal", "contract", job.ID, "member", handle, "amount", amount.String())
	return &types.MsgWithdrawJobResponse{Amount: amount}, nil
}

// CancelJob is the admin's terminal recall. Anything already vested is
// reserved for the member first; the rest of the escrow, vested or not,
// sweeps back to the admin and no further claims can be raised.
func (k msgServer) CancelJob(goCtx context.Context, msg *types.MsgCancelJob) (*types.MsgCancelJobResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	job, err := k.verifyJobAdmin(ctx, msg.ContractID, msg.Proof)
	if err != nil {
		return nil, err
	}
	if job.IsCancelled {
		// terminal state already reached, nothing left to recall
		return &types.MsgCancelJobResponse{Swept: math.LegacyZeroDec()}, nil
	}
	if err := k.checkListingLock(ctx, job.ListEpoch); err != nil {
		return nil, err
	}

	now := ctx.BlockTime().Unix()
	if len(job.Signatures) > 0 {
		reserveUnlockedFunds(&job, now)
	}
	job.IsCancelled = true
	job.Schedule.CancelEpoch = &now

	swept := job.Funds
	if swept.IsPositive() {
		signerAddr := sdk.MustAccAddressFromBech32(msg.Signer)
		job.Funds = math.LegacyZeroDec()
		job.Schedule.Withdrawn = job.Schedule.Withdrawn.Add(swept)
		if err := k.releaseEscrow(ctx, signerAddr, job.AssetDenom, job.AssetDecimals, swept, "job cancellation sweep"); err != nil {
			return nil, err
		}
	}

	if err := k.SetJob(ctx, job); err != nil {
		return nil, err
	}
	if err := k.appendRecord(ctx, ledgertypes.TxKindCancellation, job.ID, types.KindJob,
		job.ContractHandle, job.ID, job.AdminHandle, job.AdminCredential, swept, job.AssetDenom); err != nil {
		return nil, err
	}
	emitContractEvent(ctx, types.EventTypeCancel, job.ID, types.KindJob, job.AdminCredential, swept, job.AssetDenom)

	k.Logger().Info("job cancelled", "contract", job.ID, "swept", swept.String(), "reserved", job.Reserved.String())
	return &types.MsgCancelJobResponse{Swept: swept}, nil
}

// ListJob places the job in a marketplace category and starts the
// post-listing time lock on withdraw and cancellation.
func (k msgServer) ListJob(goCtx context.Context, msg *types.MsgListJob) (*types.MsgListJobResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	job, err := k.verifyJobAdmin(ctx, msg.ContractID, msg.Proof)
	if err != nil {
		return nil, err
	}
	if job.IsCancelled {
		return nil, types.ErrAlreadyCancelled.Wrap(job.ID)
	}
	if job.ListEpoch != 0 {
		return nil, types.ErrAlreadyListed.Wrap(job.ID)
	}

	remaining := job.Funds.Add(job.Reserved)
	fee, err := k.marketplaceKeeper.CheckListingEligibility(ctx, string(types.KindJob), msg.Category, remaining, job.AssetDenom)
	if err != nil {
		return nil, err
	}
	if !msg.Fee.Equal(fee) {
		return nil, types.ErrPrecondition.Wrapf("supplied fee %s does not match listing fee %s", msg.Fee, fee)
	}

	signerAddr := sdk.MustAccAddressFromBech32(msg.Signer)
	if err := k.marketplaceKeeper.ListContract(ctx, string(types.KindJob), msg.Category, job.ID, signerAddr, msg.Fee); err != nil {
		return nil, err
	}

	job.ListEpoch = ctx.BlockTime().Unix()
	job.Marketplaces = appendUnique(job.Marketplaces, msg.Marketplace)
	if err := k.SetJob(ctx, job); err != nil {
		return nil, err
	}
	if err := k.appendRecord(ctx, ledgertypes.TxKindList, job.ID, types.KindJob,
		job.AdminHandle, job.AdminCredential, msg.Marketplace, msg.Category, math.LegacyNewDecFromInt(msg.Fee.Amount), msg.Fee.Denom); err != nil {
		return nil, err
	}
	emitContractEvent(ctx, types.EventTypeList, job.ID, types.KindJob, job.AdminCredential, math.LegacyNewDecFromInt(msg.Fee.Amount), msg.Fee.Denom)

	k.Logger().Info("job listed", "contract", job.ID, "marketplace", msg.Marketplace, "category", msg.Category)
	return &types.MsgListJobResponse{}, nil
}

// UpdateJobDetails replaces the contract's display metadata.
func (k msgServer) UpdateJobDetails(goCtx context.Context, msg *types.MsgUpdateJobDetails) (*types.MsgUpdateJobDetailsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	job, err := k.verifyJobAdmin(ctx, msg.ContractID, msg.Proof)
	if err != nil {
		return nil, err
	}
	if msg.ContractName != "" {
		job.ContractName = msg.ContractName
	}
	if msg.Image != "" {
		job.Image = msg.Image
	}
	if msg.Details != nil {
		job.Details = msg.Details
	}

	if err := k.SetJob(ctx, job); err != nil {
		return nil, err
	}
	if err := k.appendRecord(ctx, ledgertypes.TxKindDetails, job.ID, types.KindJob,
		job.AdminHandle, job.AdminCredential, job.ContractHandle, job.ID, math.LegacyZeroDec(), job.AssetDenom); err != nil {
		return nil, err
	}
	emitContractEvent(ctx, types.EventTypeDetails, job.ID, types.KindJob, job.AdminCredential, math.LegacyZeroDec(), job.AssetDenom)

	return &types.MsgUpdateJobDetailsResponse{}, nil
}

func appendUnique(list []string, value string) []string {
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}
