package types

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	badgestypes "github.com/teampay/chain/x/badges/types"
)

// MsgServer is the transaction API of the custody module. Every operation
// authenticates the signer's badge proof before touching contract state.
type MsgServer interface {
	UpdateParams(ctx context.Context, msg *MsgUpdateParams) (*MsgUpdateParamsResponse, error)

	CreateJob(ctx context.Context, msg *MsgCreateJob) (*MsgCreateJobResponse, error)
	InviteJobMember(ctx context.Context, msg *MsgInviteJobMember) (*MsgInviteJobMemberResponse, error)
	JoinJob(ctx context.Context, msg *MsgJoinJob) (*MsgJoinJobResponse, error)
	RemoveJobMember(ctx context.Context, msg *MsgRemoveJobMember) (*MsgRemoveJobMemberResponse, error)
	LeaveJob(ctx context.Context, msg *MsgLeaveJob) (*MsgLeaveJobResponse, error)
	DepositJob(ctx context.Context, msg *MsgDepositJob) (*MsgDepositJobResponse, error)
	WithdrawJob(ctx context.Context, msg *MsgWithdrawJob) (*MsgWithdrawJobResponse, error)
	CancelJob(ctx context.Context, msg *MsgCancelJob) (*MsgCancelJobResponse, error)
	ListJob(ctx context.Context, msg *MsgListJob) (*MsgListJobResponse, error)
	UpdateJobDetails(ctx context.Context, msg *MsgUpdateJobDetails) (*MsgUpdateJobDetailsResponse, error)

	CreateProject(ctx context.Context, msg *MsgCreateProject) (*MsgCreateProjectResponse, error)
	InviteProjectMember(ctx context.Context, msg *MsgInviteProjectMember) (*MsgInviteProjectMemberResponse, error)
	JoinProject(ctx context.Context, msg *MsgJoinProject) (*MsgJoinProjectResponse, error)
	RemoveProjectMember(ctx context.Context, msg *MsgRemoveProjectMember) (*MsgRemoveProjectMemberResponse, error)
	LeaveProject(ctx context.Context, msg *MsgLeaveProject) (*MsgLeaveProjectResponse, error)
	DepositProject(ctx context.Context, msg *MsgDepositProject) (*MsgDepositProjectResponse, error)
	UpdateObjectives(ctx context.Context, msg *MsgUpdateObjectives) (*MsgUpdateObjectivesResponse, error)
	RewardObjective(ctx context.Context, msg *MsgRewardObjective) (*MsgRewardObjectiveResponse, error)
	WithdrawProject(ctx context.Context, msg *MsgWithdrawProject) (*MsgWithdrawProjectResponse, error)
	CancelProject(ctx context.Context, msg *MsgCancelProject) (*MsgCancelProjectResponse, error)
	ListProject(ctx context.Context, msg *MsgListProject) (*MsgListProjectResponse, error)
	UpdateProjectDetails(ctx context.Context, msg *MsgUpdateProjectDetails) (*MsgUpdateProjectDetailsResponse, error)
}

// MsgUpdateParams is the authority-gated params update.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

type MsgUpdateParamsResponse struct{}

func (msg *MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid authority address (%s)", err)
	}
	return msg.Params.Validate()
}

func validateSigner(signer string) error {
	if _, err := sdk.AccAddressFromBech32(signer); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid signer address (%s)", err)
	}
	return nil
}

func validateProof(signer string, proof badgestypes.Proof) error {
	if err := validateSigner(signer); err != nil {
		return err
	}
	if proof.Credential == "" || proof.Handle == "" {
		return ErrUnauthorized.Wrap("incomplete badge proof")
	}
	if proof.Owner != signer {
		return ErrUnauthorized.Wrap("proof owner does not match signer")
	}
	return nil
}
