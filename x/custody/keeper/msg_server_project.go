package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	badgestypes "github.com/teampay/chain/x/badges/types"
	"github.com/teampay/chain/x/custody/types"
	ledgertypes "github.com/teampay/chain/x/ledger/types"
)

// CreateProject instantiates the multi-objective contract and mints the
// admin's role credential.
func (k msgServer) CreateProject(goCtx context.Context, msg *types.MsgCreateProject) (*types.MsgCreateProjectResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	adminHandle, err := k.credentialKeeper.VerifyProof(ctx, msg.Proof, msg.Proof.Credential)
	if err != nil {
		return nil, types.ErrUnauthorized.Wrap(err.Error())
	}

	contractID := types.ContractID(types.KindProject, msg.TeamHandle, msg.ContractHandle)
	if err := k.checkContractExists(ctx, contractID); err != nil {
		return nil, err
	}

	project := types.Project{
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
		StartEpoch:      msg.StartEpoch,
		EndEpoch:        msg.EndEpoch,
		Amount:          math.LegacyZeroDec(),
		Rewarded:        math.LegacyZeroDec(),
		Withdrawn:       math.LegacyZeroDec(),
		IsJoinable:      msg.IsJoinable,
		CreatedEpoch:    ctx.BlockTime().Unix(),
	}

	if msg.Deposit.IsPositive() {
		if err := types.ValidatePrecision(msg.Deposit, project.AssetDecimals); err != nil {
			return nil, err
		}
		signerAddr := sdk.MustAccAddressFromBech32(msg.Signer)
		if err := k.collectEscrow(ctx, signerAddr, project.AssetDenom, project.AssetDecimals, msg.Deposit, "project escrow deposit"); err != nil {
			return nil, err
		}
		project.Funds = msg.Deposit
		project.Amount = msg.Deposit
	}

	if err := k.credentialKeeper.MintAdminCredential(ctx, project.AdminCredential, badgestypes.RoleBadge{
		ContractID:     contractID,
		ContractKind:   string(types.KindProject),
		ContractRole:   string(types.RoleAdmin),
		ContractHandle: project.ContractHandle,
		TeamHandle:     project.TeamHandle,
	}); err != nil {
		return nil, err
	}

	if err := k.SetProject(ctx, project); err != nil {
		return nil, err
	}
	if err := k.appendRecord(ctx, ledgertypes.TxKindCreate, contractID, types.KindProject,
		project.AdminHandle, project.AdminCredential, project.ContractHandle, contractID, project.Amount, project.AssetDenom); err != nil {
		return nil, err
	}
	emitContractEvent(ctx, types.EventTypeCreateContract, contractID, types.KindProject, project.AdminCredential, project.Amount, project.AssetDenom)

	k.Logger().Info("created project contract", "contract", contractID, "admin", project.AdminHandle, "deposit", project.Amount.String())
	return &types.MsgCreateProjectResponse{ContractID: contractID}, nil
}

// InviteProjectMember adds a credential to the roster, bounded by MaxMembers.
func (k msgServer) InviteProjectMember(goCtx context.Context, msg *types.MsgInviteProjectMember) (*types.MsgInviteProjectMemberResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	project, err := k.verifyProjectAdmin(ctx, msg.ContractID, msg.Proof)
	if err != nil {
		return nil, err
	}
	if project.IsCancelled {
		return nil, types.ErrAlreadyCancelled.Wrap(project.ID)
	}
	if _, ok := project.Members[msg.MemberCredential]; ok {
		return nil, types.ErrAlreadyInvited.Wrap(msg.MemberCredential)
	}
	if uint64(len(project.Members)) >= k.GetParams(ctx).MaxMembers {
		return nil, types.ErrPrecondition.Wrapf("roster is full (%d members)", len(project.Members))
	}
	if !k.credentialKeeper.HasBadge(ctx, msg.MemberCredential, msg.MemberHandle) {
		return nil, types.ErrMemberNotFound.Wrapf("no badge for handle %q", msg.MemberHandle)
	}

	if project.Members == nil {
		project.Members = map[string]string{}
	}
	project.Members[msg.MemberCredential] = msg.MemberHandle
	if err := k.SetProject(ctx, project); err != nil {
		return nil, err
	}
	if err := k.appendRecord(ctx, ledgertypes.TxKindInvite, project.ID, types.KindProject,
		project.AdminHandle, project.AdminCredential, msg.MemberHandle, msg.MemberCredential, math.LegacyZeroDec(), project.AssetDenom); err != nil {
		return nil, err
	}
	emitContractEvent(ctx, types.EventTypeInvite, project.ID, types.KindProject, msg.MemberCredential, math.LegacyZeroDec(), project.AssetDenom)

	return &types.MsgInviteProjectMemberResponse{}, nil
}

// JoinProject records the invited member's signature while the project is
// joinable and running.
func (k msgServer) JoinProject(goCtx context.Context, msg *types.MsgJoinProject) (*types.MsgJoinProjectResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	project, found := k.GetProject(ctx, msg.ContractID)
	if !found {
		return nil, types.ErrContractNotFound.Wrap(msg.ContractID)
	}
	if project.IsCancelled {
		return nil, types.ErrAlreadyCancelled.Wrap(project.ID)
	}

	handle, err := k.verifyProjectMember(ctx, project, msg.Proof)
	if err != nil {
		return nil, err
	}
	if project.HasSignature(msg.Proof.Credential) {
		return nil, types.ErrAlreadySigned.Wrap(handle)
	}
	if !project.IsJoinable {
		return nil, types.ErrJoinWindowClosed.Wrap("project is not accepting signatures")
	}
	if now := ctx.BlockTime().Unix(); project.EndEpoch != 0 && now > project.EndEpoch {
		return nil, types.ErrJoinWindowClosed.Wrapf("project ended at epoch %d", project.EndEpoch)
	}

	if project.Signatures == nil {
		project.Signatures = map[string]bool{}
	}
	project.Signatures[msg.Proof.Credential] = true

	if err := k.credentialKeeper.MintMemberCredential(ctx, msg.Proof.Credential, badgestypes.RoleBadge{
		ContractID:     project.ID,
		ContractKind:   string(types.KindProject),
		ContractRole:   string(types.RoleMember),
		ContractHandle: project.ContractHandle,
		TeamHandle:     project.TeamHandle,
	}); err != nil {
		return nil, err
	}
	if err := k.SetProject(ctx, project); err != nil {
		return nil, err
	}
	if err := k.appendRecord(ctx, ledgertypes.TxKindJoin, project.ID, types.KindProject,
		handle, msg.Proof.Credential, project.ContractHandle, project.ID, math.LegacyZeroDec(), project.AssetDenom); err != nil {
		return nil, err
	}
	emitContractEvent(ctx, types.EventTypeJoin, project.ID, types.KindProject, msg.Proof.Credential, math.LegacyZeroDec(), project.AssetDenom)

	k.Logger().Info("member joined project", "contract", project.ID, "member", handle)
	return &types.MsgJoinProjectResponse{}, nil
}

// RemoveProjectMember detaches the member from every pending objective and
// records a previously signed member in the removed ledger. Other members
// are unaffected. Rejected while the member still holds a reserved balance.
func (k msgServer) RemoveProjectMember(goCtx context.Context, msg *types.MsgRemoveProjectMember) (*types.MsgRemoveProjectMemberResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	project, err := k.verifyProjectAdmin(ctx, msg.ContractID, msg.Proof)
	if err != nil {
		return nil, err
	}
	handle, ok := project.Members[msg.MemberCredential]
	if !ok {
		return nil, types.ErrMemberNotFound.Wrap(msg.MemberCredential)
	}
	if !project.ReservedFor(msg.MemberCredential).IsZero() {
		return nil, types.ErrPrecondition.Wrap("member must withdraw the reserved balance before removal")
	}

	detachMember(&project, msg.MemberCredential, handle)
	if err := k.SetProject(ctx, project); err != nil {
		return nil, err
	}
	if err := k.appendRecord(ctx, ledgertypes.TxKindRemove, project.ID, types.KindProject,
		project.AdminHandle, project.AdminCredential, handle, msg.MemberCredential, math.LegacyZeroDec(), project.AssetDenom); err != nil {
		return nil, err
	}
	emitContractEvent(ctx, types.EventTypeRemove, project.ID, types.KindProject, msg.MemberCredential, math.LegacyZeroDec(), project.AssetDenom)

	return &types.MsgRemoveProjectMemberResponse{}, nil
}

// LeaveProject is the member's self-service detach, with the same
// accounting as an admin removal.
func (k msgServer) LeaveProject(goCtx context.Context, msg *types.MsgLeaveProject) (*types.MsgLeaveProjectResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	project, found := k.GetProject(ctx, msg.ContractID)
	if !found {
		return nil, types.ErrContractNotFound.Wrap(msg.ContractID)
	}
	handle, err := k.verifyProjectMember(ctx, project, msg.Proof)
	if err != nil {
		return nil, err
	}
	if !project.ReservedFor(msg.Proof.Credential).IsZero() {
		return nil, types.ErrPrecondition.Wrap("withdraw the reserved balance before leaving")
	}

	detachMember(&project, msg.Proof.Credential, handle)
	if err := k.SetProject(ctx, project); err != nil {
		return nil, err
	}
	if err := k.appendRecord(ctx, ledgertypes.TxKindLeave, project.ID, types.KindProject,
		handle, msg.Proof.Credential, project.AdminHandle, project.AdminCredential, math.LegacyZeroDec(), project.AssetDenom); err != nil {
		return nil, err
	}
	emitContractEvent(ctx, types.EventTypeLeave, project.ID, types.KindProject, msg.Proof.Credential, math.LegacyZeroDec(), project.AssetDenom)

	return &types.MsgLeaveProjectResponse{}, nil
}

// DepositProject escrows additional principal. Admin-only.
func (k msgServer) DepositProject(goCtx context.Context, msg *types.MsgDepositProject) (*types.MsgDepositProjectResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	project, err := k.verifyProjectAdmin(ctx, msg.ContractID, msg.Proof)
	if err != nil {
		return nil, err
	}
	if project.IsCancelled {
		return nil, types.ErrAlreadyCancelled.Wrap(project.ID)
	}
	if msg.Denom != project.AssetDenom {
		return nil, types.ErrInvalidDenom.Wrapf("contract escrows %s, got %s", project.AssetDenom, msg.Denom)
	}
	if err := types.ValidatePrecision(msg.Amount, project.AssetDecimals); err != nil {
		return nil, err
	}

	signerAddr := sdk.MustAccAddressFromBech32(msg.Signer)
	if err := k.collectEscrow(ctx, signerAddr, project.AssetDenom, project.AssetDecimals, msg.Amount, "project escrow deposit"); err != nil {
		return nil, err
	}
	project.Funds = project.Funds.Add(msg.Amount)
	project.Amount = project.Amount.Add(msg.Amount)

	if err := k.SetProject(ctx, project); err != nil {
		return nil, err
	}
	if err := k.appendRecord(ctx, ledgertypes.TxKindDeposit, project.ID, types.KindProject,
		project.AdminHandle, project.AdminCredential, project.ContractHandle, project.ID, msg.Amount, project.AssetDenom); err != nil {
		return nil, err
	}
	emitContractEvent(ctx, types.EventTypeDeposit, project.ID, types.KindProject, project.AdminCredential, msg.Amount, project.AssetDenom)

	k.Logger().Info("project deposit", "contract", project.ID, "amount", msg.Amount.String(), "total", project.Amount.String())
	return &types.MsgDepositProjectResponse{}, nil
}

// UpdateObjectives replaces the pending-objective map wholesale. The sum of
// all pending amounts must exactly equal the escrow balance, forcing the
// admin to fully allocate deposited funds before any objective is
// reward-eligible.
func (k msgServer) UpdateObjectives(goCtx context.Context, msg *types.MsgUpdateObjectives) (*types.MsgUpdateObjectivesResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	project, err := k.verifyProjectAdmin(ctx, msg.ContractID, msg.Proof)
	if err != nil {
		return nil, err
	}
	if project.IsCancelled {
		return nil, types.ErrAlreadyCancelled.Wrap(project.ID)
	}

	if total := uint64(len(msg.Objectives) + len(project.Completed)); total > k.GetParams(ctx).MaxObjectives {
		return nil, types.ErrInvalidObjectives.Wrapf("%d objectives exceeds the cap", total)
	}

	pendingTotal := math.LegacyZeroDec()
	for id, members := range msg.Objectives {
		done := project.Completed[id]
		for credential, amount := range members {
			if _, ok := project.Members[credential]; !ok {
				return nil, types.ErrMemberNotFound.Wrapf("objective %d lists non-member %s", id, credential)
			}
			if _, settled := done[credential]; settled {
				return nil, types.ErrInvalidObjectives.Wrapf("objective %d already completed for %s", id, credential)
			}
			if err := types.ValidatePrecision(amount, project.AssetDecimals); err != nil {
				return nil, err
			}
			pendingTotal = pendingTotal.Add(amount)
		}
	}
	if !pendingTotal.Equal(project.Funds) {
		return nil, types.ErrLedgerInvariant.Wrapf("pending objectives total %s must equal escrow %s", pendingTotal, project.Funds)
	}

	project.Objectives = msg.Objectives
	if err := k.SetProject(ctx, project); err != nil {
		return nil, err
	}
	if err := k.appendRecord(ctx, ledgertypes.TxKindUpdate, project.ID, types.KindProject,
		project.AdminHandle, project.AdminCredential, project.ContractHandle, project.ID, pendingTotal, project.AssetDenom); err != nil {
		return nil, err
	}
	emitContractEvent(ctx, types.EventTypeUpdate, project.ID, types.KindProject, project.AdminCredential, pendingTotal, project.AssetDenom)

	k.Logger().Info("project objectives updated", "contract", project.ID, "objectives", len(msg.Objectives), "allocated", pendingTotal.String())
	return &types.MsgUpdateObjectivesResponse{}, nil
}

// RewardObjective settles one objective: each member's amount moves from
// escrow into that member's keyed reserved balance and the pair moves from
// pending to completed. All preconditions are validated before any funds
// move, so a reward is all-or-nothing.
func (k msgServer) RewardObjective(goCtx context.Context, msg *types.MsgRewardObjective) (*types.MsgRewardObjectiveResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	project, err := k.verifyProjectAdmin(ctx, msg.ContractID, msg.Proof)
	if err != nil {
		return nil, err
	}
	if project.IsCancelled {
		return nil, types.ErrAlreadyCancelled.Wrap(project.ID)
	}

	pending, ok := project.Objectives[msg.ObjectiveID]
	if !ok {
		return nil, types.ErrObjectiveNotFound.Wrapf("objective %d", msg.ObjectiveID)
	}

	total := math.LegacyZeroDec()
	done := project.Completed[msg.ObjectiveID]
	for _, credential := range pending.SortedCredentials() {
		if !project.HasSignature(credential) {
			return nil, types.ErrPrecondition.Wrapf("member %s has not signed", credential)
		}
		if _, settled := done[credential]; settled {
			return nil, types.ErrPrecondition.Wrapf("member %s already rewarded for objective %d", credential, msg.ObjectiveID)
		}
		total = total.Add(pending[credential])
	}
	if total.GT(project.Funds) {
		return nil, types.ErrLedgerInvariant.Wrapf("objective total %s exceeds escrow %s", total, project.Funds)
	}

	if project.Reserved == nil {
		project.Reserved = map[string]math.LegacyDec{}
	}
	if project.Completed == nil {
		project.Completed = map[uint64]types.Allocations{}
	}
	if project.Completed[msg.ObjectiveID] == nil {
		project.Completed[msg.ObjectiveID] = types.Allocations{}
	}
	for _, credential := range pending.SortedCredentials() {
		amount := pending[credential]
		project.Funds = project.Funds.Sub(amount)
		project.Reserved[credential] = project.ReservedFor(credential).Add(amount)
		project.Completed[msg.ObjectiveID][credential] = amount
	}
	delete(project.Objectives, msg.ObjectiveID)
	project.Rewarded = project.Rewarded.Add(total)

	if err := k.SetProject(ctx, project); err != nil {
		return nil, err
	}
	if err := k.appendRecord(ctx, ledgertypes.TxKindReward, project.ID, types.KindProject,
		project.AdminHandle, project.AdminCredential, project.ContractHandle, project.ID, total, project.AssetDenom); err != nil {
		return nil, err
	}
	emitContractEvent(ctx, types.EventTypeReward, project.ID, types.KindProject, project.AdminCredential, total, project.AssetDenom)

	k.Logger().Info("objective rewarded", "contract", project.ID, "objective", msg.ObjectiveID, "amount", total.String())
	return &types.MsgRewardObjectiveResponse{Rewarded: total}, nil
}

// WithdrawProject drains the signing member's keyed reserved balance.
// Permitted after cancellation; completed rewards stay claimable.
func (k msgServer) WithdrawProject(goCtx context.Context, msg *types.MsgWithdrawProject) (*types.MsgWithdrawProjectResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	project, found := k.GetProject(ctx, msg.ContractID)
	if !found {
		return nil, types.ErrContractNotFound.Wrap(msg.ContractID)
	}
	handle, err := k.verifyProjectMember(ctx, project, msg.Proof)
	if err != nil {
		return nil, err
	}
	if !project.HasSignature(msg.Proof.Credential) {
		return nil, types.ErrPrecondition.Wrap("member has not signed")
	}
	if err := k.checkListingLock(ctx, project.ListEpoch); err != nil {
		return nil, err
	}

	amount := project.ReservedFor(msg.Proof.Credential)
	if amount.IsZero() {
		return nil, types.ErrNothingToWithdraw.Wrap(project.ID)
	}
	delete(project.Reserved, msg.Proof.Credential)
	project.Withdrawn = project.Withdrawn.Add(amount)

	signerAddr := sdk.MustAccAddressFromBech32(msg.Signer)
	if err := k.releaseEscrow(ctx, signerAddr, project.AssetDenom, project.AssetDecimals, amount, "project reward withdrawal"); err != nil {
		return nil, err
	}

	if err := k.SetProject(ctx, project); err != nil {
		return nil, err
	}
	if err := k.appendRecord(ctx, ledgertypes.TxKindWithdraw, project.ID, types.KindProject,
		project.ContractHandle, project.ID, handle, msg.Proof.Credential, amount, project.AssetDenom); err != nil {
		return nil, err
	}
	emitContractEvent(ctx, types.EventTypeWithdraw, project.ID, types.KindProject, msg.Proof.Credential, amount, project.AssetDenom)

	k.Logger().Info("project withdrawal", "contract", project.ID, "member", handle, "amount", amount.String())
	return &types.MsgWithdrawProjectResponse{Amount: amount}, nil
}

// CancelProject forfeits pending objectives back to the admin and sweeps
// the remaining escrow. Already-reserved amounts are untouched and remain
// independently withdrawable by their members.
func (k msgServer) CancelProject(goCtx context.Context, msg *types.MsgCancelProject) (*types.MsgCancelProjectResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	project, err := k.verifyProjectAdmin(ctx, msg.ContractID, msg.Proof)
	if err != nil {
		return nil, err
	}
	if project.IsCancelled {
		// terminal state already reached, nothing left to recall
		return &types.MsgCancelProjectResponse{Swept: math.LegacyZeroDec()}, nil
	}
	if err := k.checkListingLock(ctx, project.ListEpoch); err != nil {
		return nil, err
	}

	now := ctx.BlockTime().Unix()
	project.Objectives = nil
	project.IsCancelled = true
	project.IsJoinable = false
	project.CancelEpoch = now

	swept := project.Funds
	if swept.IsPositive() {
		signerAddr := sdk.MustAccAddressFromBech32(msg.Signer)
		project.Funds = math.LegacyZeroDec()
		project.Withdrawn = project.Withdrawn.Add(swept)
		if err := k.releaseEscrow(ctx, signerAddr, project.AssetDenom, project.AssetDecimals, swept, "project cancellation sweep"); err != nil {
			return nil, err
		}
	}

	if err := k.SetProject(ctx, project); err != nil {
		return nil, err
	}
	if err := k.appendRecord(ctx, ledgertypes.TxKindCancellation, project.ID, types.KindProject,
		project.ContractHandle, project.ID, project.AdminHandle, project.AdminCredential, swept, project.AssetDenom); err != nil {
		return nil, err
	}
	emitContractEvent(ctx, types.EventTypeCancel, project.ID, types.KindProject, project.AdminCredential, swept, project.AssetDenom)

	k.Logger().Info("project cancelled", "contract", project.ID, "swept", swept.String(), "reserved", project.ReservedTotal().String())
	return &types.MsgCancelProjectResponse{Swept: swept}, nil
}

// ListProject places the project in a marketplace category and starts the
// post-listing time lock on withdraw and cancellation.
func (k msgServer) ListProject(goCtx context.Context, msg *types.MsgListProject) (*types.MsgListProjectResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	project, err := k.verifyProjectAdmin(ctx, msg.ContractID, msg.Proof)
	if err != nil {
		return nil, err
	}
	if project.IsCancelled {
		return nil, types.ErrAlreadyCancelled.Wrap(project.ID)
	}
	if project.ListEpoch != 0 {
		return nil, types.ErrAlreadyListed.Wrap(project.ID)
	}

	remaining := project.Funds.Add(project.ReservedTotal())
	fee, err := k.marketplaceKeeper.CheckListingEligibility(ctx, string(types.KindProject), msg.Category, remaining, project.AssetDenom)
	if err != nil {
		return nil, err
	}
	if !msg.Fee.Equal(fee) {
		return nil, types.ErrPrecondition.Wrapf("supplied fee %s does not match listing fee %s", msg.Fee, fee)
	}

	signerAddr := sdk.MustAccAddressFromBech32(msg.Signer)
	if err := k.marketplaceKeeper.ListContract(ctx, string(types.KindProject), msg.Category, project.ID, signerAddr, msg.Fee); err != nil {
		return nil, err
	}

	project.ListEpoch = ctx.BlockTime().Unix()
	project.Marketplaces = appendUnique(project.Marketplaces, msg.Marketplace)
	if err := k.SetProject(ctx, project); err != nil {
		return nil, err
	}
	if err := k.appendRecord(ctx, ledgertypes.TxKindList, project.ID, types.KindProject,
		project.AdminHandle, project.AdminCredential, msg.Marketplace, msg.Category, math.LegacyNewDecFromInt(msg.Fee.Amount), msg.Fee.Denom); err != nil {
		return nil, err
	}
	emitContractEvent(ctx, types.EventTypeList, project.ID, types.KindProject, project.AdminCredential, math.LegacyNewDecFromInt(msg.Fee.Amount), msg.Fee.Denom)

	k.Logger().Info("project listed", "contract", project.ID, "marketplace", msg.Marketplace, "category", msg.Category)
	return &types.MsgListProjectResponse{}, nil
}

// UpdateProjectDetails replaces display metadata and adjusts the
// joinability window.
func (k msgServer) UpdateProjectDetails(goCtx context.Context, msg *types.MsgUpdateProjectDetails) (*types.MsgUpdateProjectDetailsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	project, err := k.verifyProjectAdmin(ctx, msg.ContractID, msg.Proof)
	if err != nil {
		return nil, err
	}
	if project.IsCancelled {
		return nil, types.ErrAlreadyCancelled.Wrap(project.ID)
	}
	if msg.ContractName != "" {
		project.ContractName = msg.ContractName
	}
	if msg.Image != "" {
		project.Image = msg.Image
	}
	if msg.Details != nil {
		project.Details = msg.Details
	}
	if msg.StartEpoch != 0 {
		project.StartEpoch = msg.StartEpoch
	}
	if msg.EndEpoch != 0 {
		project.EndEpoch = msg.EndEpoch
	}
	project.IsJoinable = msg.IsJoinable
	if project.EndEpoch < project.StartEpoch {
		return nil, types.ErrPrecondition.Wrap("end before start")
	}

	if err := k.SetProject(ctx, project); err != nil {
		return nil, err
	}
	if err := k.appendRecord(ctx, ledgertypes.TxKindDetails, project.ID, types.KindProject,
		project.AdminHandle, project.AdminCredential, project.ContractHandle, project.ID, math.LegacyZeroDec(), project.AssetDenom); err != nil {
		return nil, err
	}
	emitContractEvent(ctx, types.EventTypeDetails, project.ID, types.KindProject, project.AdminCredential, math.LegacyZeroDec(), project.AssetDenom)

	return &types.MsgUpdateProjectDetailsResponse{}, nil
}

// detachMember strips the credential from the roster and every pending
// objective. A signed member is moved to the removed ledger for audit.
func detachMember(project *types.Project, credential, handle string) {
	for id, members := range project.Objectives {
		if _, ok := members[credential]; ok {
			delete(members, credential)
			if len(members) == 0 {
				delete(project.Objectives, id)
			}
		}
	}
	if project.HasSignature(credential) {
		delete(project.Signatures, credential)
		if project.Removed == nil {
			project.Removed = map[string]string{}
		}
		project.Removed[credential] = handle
	}
	delete(project.Members, credential)
}
