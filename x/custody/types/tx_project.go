package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	badgestypes "github.com/teampay/chain/x/badges/types"
)

// MsgCreateProject instantiates a multi-objective contract. The signer
// becomes the admin; the deposit, if positive, seeds the escrow.
type MsgCreateProject struct {
	Signer string            `json:"signer"`
	Proof  badgestypes.Proof `json:"proof"`

	TeamHandle     string            `json:"team_handle"`
	ContractHandle string            `json:"contract_handle"`
	ContractName   string            `json:"contract_name"`
	Category       string            `json:"category"`
	Image          string            `json:"image,omitempty"`
	Details        map[string]string `json:"details,omitempty"`

	AssetDenom    string `json:"asset_denom"`
	AssetDecimals uint32 `json:"asset_decimals"`

	StartEpoch int64 `json:"start_epoch"`
	EndEpoch   int64 `json:"end_epoch"`
	IsJoinable bool  `json:"is_joinable"`

	Deposit math.LegacyDec `json:"deposit"`
}

type MsgCreateProjectResponse struct {
	ContractID string `json:"contract_id"`
}

func (msg *MsgCreateProject) ValidateBasic() error {
	if err := validateProof(msg.Signer, msg.Proof); err != nil {
		return err
	}
	if msg.TeamHandle == "" || msg.ContractHandle == "" {
		return ErrPrecondition.Wrap("team and contract handles must be non-empty")
	}
	if err := sdk.ValidateDenom(msg.AssetDenom); err != nil {
		return ErrInvalidDenom.Wrap(err.Error())
	}
	if msg.Deposit.IsNil() || msg.Deposit.IsNegative() {
		return ErrPrecondition.Wrap("deposit must be non-negative")
	}
	if msg.EndEpoch < msg.StartEpoch {
		return ErrPrecondition.Wrap("end before start")
	}
	return nil
}

// MsgInviteProjectMember adds a credential to the project roster.
type MsgInviteProjectMember struct {
	Signer string            `json:"signer"`
	Proof  badgestypes.Proof `json:"proof"`

	ContractID       string `json:"contract_id"`
	MemberCredential string `json:"member_credential"`
	MemberHandle     string `json:"member_handle"`
}

type MsgInviteProjectMemberResponse struct{}

func (msg *MsgInviteProjectMember) ValidateBasic() error {
	if err := validateProof(msg.Signer, msg.Proof); err != nil {
		return err
	}
	if msg.ContractID == "" {
		return ErrContractNotFound.Wrap("missing contract id")
	}
	if msg.MemberCredential == "" || msg.MemberHandle == "" {
		return ErrPrecondition.Wrap("member credential and handle must be non-empty")
	}
	return nil
}

// MsgJoinProject records the invited member's signature.
type MsgJoinProject struct {
	Signer string            `json:"signer"`
	Proof  badgestypes.Proof `json:"proof"`

	ContractID string `json:"contract_id"`
}

type MsgJoinProjectResponse struct{}

func (msg *MsgJoinProject) ValidateBasic() error {
	if err := validateProof(msg.Signer, msg.Proof); err != nil {
		return err
	}
	if msg.ContractID == "" {
		return ErrContractNotFound.Wrap("missing contract id")
	}
	return nil
}

// MsgRemoveProjectMember detaches a member from future objectives.
// Admin-only; the member keeps any already-reserved balance claim, so
// removal is rejected while a reserved balance is outstanding.
type MsgRemoveProjectMember struct {
	Signer string            `json:"signer"`
	Proof  badgestypes.Proof `json:"proof"`

	ContractID       string `json:"contract_id"`
	MemberCredential string `json:"member_credential"`
}

type MsgRemoveProjectMemberResponse struct{}

func (msg *MsgRemoveProjectMember) ValidateBasic() error {
	if err := validateProof(msg.Signer, msg.Proof); err != nil {
		return err
	}
	if msg.ContractID == "" {
		return ErrContractNotFound.Wrap("missing contract id")
	}
	if msg.MemberCredential == "" {
		return ErrMemberNotFound.Wrap("missing member credential")
	}
	return nil
}

// MsgLeaveProject is the member's self-service detach.
type MsgLeaveProject struct {
	Signer string            `json:"signer"`
	Proof  badgestypes.Proof `json:"proof"`

	ContractID string `json:"contract_id"`
}

type MsgLeaveProjectResponse struct{}

func (msg *MsgLeaveProject) ValidateBasic() error {
	if err := validateProof(msg.Signer, msg.Proof); err != nil {
		return err
	}
	if msg.ContractID == "" {
		return ErrContractNotFound.Wrap("missing contract id")
	}
	return nil
}

// MsgDepositProject escrows additional principal.
type MsgDepositProject struct {
	Signer string            `json:"signer"`
	Proof  badgestypes.Proof `json:"proof"`

	ContractID string         `json:"contract_id"`
	Amount     math.LegacyDec `json:"amount"`
	Denom      string         `json:"denom"`
}

type MsgDepositProjectResponse struct{}

func (msg *MsgDepositProject) ValidateBasic() error {
	if err := validateProof(msg.Signer, msg.Proof); err != nil {
		return err
	}
	if msg.ContractID == "" {
		return ErrContractNotFound.Wrap("missing contract id")
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return ErrLedgerInvariant.Wrap("deposit must be positive")
	}
	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return ErrInvalidDenom.Wrap(err.Error())
	}
	return nil
}

// MsgUpdateObjectives replaces the pending-objective map wholesale. The sum
// of all pending amounts must exactly equal the current escrow balance.
type MsgUpdateObjectives struct {
	Signer string            `json:"signer"`
	Proof  badgestypes.Proof `json:"proof"`

	ContractID string                 `json:"contract_id"`
	Objectives map[uint64]Allocations `json:"objectives"`
}

type MsgUpdateObjectivesResponse struct{}

func (msg *MsgUpdateObjectives) ValidateBasic() error {
	if err := validateProof(msg.Signer, msg.Proof); err != nil {
		return err
	}
	if msg.ContractID == "" {
		return ErrContractNotFound.Wrap("missing contract id")
	}
	for id, members := range msg.Objectives {
		if len(members) == 0 {
			return ErrInvalidObjectives.Wrapf("objective %d has no members", id)
		}
		for credential, amount := range members {
			if credential == "" {
				return ErrInvalidObjectives.Wrapf("objective %d has an empty credential", id)
			}
			if amount.IsNil() || !amount.IsPositive() {
				return ErrInvalidObjectives.Wrapf("objective %d allocates a non-positive amount", id)
			}
		}
	}
	return nil
}

// MsgRewardObjective settles one objective: each member's amount moves from
// escrow into that member's keyed reserved balance.
type MsgRewardObjective struct {
	Signer string            `json:"signer"`
	Proof  badgestypes.Proof `json:"proof"`

	ContractID  string `json:"contract_id"`
	ObjectiveID uint64 `json:"objective_id"`
}

type MsgRewardObjectiveResponse struct {
	Rewarded math.LegacyDec `json:"rewarded"`
}

func (msg *MsgRewardObjective) ValidateBasic() error {
	if err := validateProof(msg.Signer, msg.Proof); err != nil {
		return err
	}
	if msg.ContractID == "" {
		return ErrContractNotFound.Wrap("missing contract id")
	}
	return nil
}

// MsgWithdrawProject drains the signing member's keyed reserved balance.
type MsgWithdrawProject struct {
	Signer string            `json:"signer"`
	Proof  badgestypes.Proof `json:"proof"`

	ContractID string `json:"contract_id"`
}

type MsgWithdrawProjectResponse struct {
	Amount math.LegacyDec `json:"amount"`
}

func (msg *MsgWithdrawProject) ValidateBasic() error {
	if err := validateProof(msg.Signer, msg.Proof); err != nil {
		return err
	}
	if msg.ContractID == "" {
		return ErrContractNotFound.Wrap("missing contract id")
	}
	return nil
}

// MsgCancelProject forfeits pending objectives and sweeps the remaining
// escrow to the admin. Completed reserved balances stay withdrawable.
type MsgCancelProject struct {
	Signer string            `json:"signer"`
	Proof  badgestypes.Proof `json:"proof"`

	ContractID string `json:"contract_id"`
}

type MsgCancelProjectResponse struct {
	Swept math.LegacyDec `json:"swept"`
}

func (msg *MsgCancelProject) ValidateBasic() error {
	if err := validateProof(msg.Signer, msg.Proof); err != nil {
		return err
	}
	if msg.ContractID == "" {
		return ErrContractNotFound.Wrap("missing contract id")
	}
	return nil
}

// MsgListProject places the project in a marketplace category, paying the listing fee.
type MsgListProject struct {
	Signer string            `json:"signer"`
	Proof  badgestypes.Proof `json:"proof"`

	ContractID  string   `json:"contract_id"`
	Marketplace string   `json:"marketplace"`
	Category    string   `json:"category"`
	Fee         sdk.Coin `json:"fee"`
}

type MsgListProjectResponse struct{}

func (msg *MsgListProject) ValidateBasic() error {
	if err := validateProof(msg.Signer, msg.Proof); err != nil {
		return err
	}
	if msg.ContractID == "" {
		return ErrContractNotFound.Wrap("missing contract id")
	}
	if msg.Marketplace == "" || msg.Category == "" {
		return ErrPrecondition.Wrap("marketplace and category must be non-empty")
	}
	return msg.Fee.Validate()
}

// MsgUpdateProjectDetails replaces display metadata and adjusts the
// joinability window.
type MsgUpdateProjectDetails struct {
	Signer string            `json:"signer"`
	Proof  badgestypes.Proof `json:"proof"`

	ContractID   string            `json:"contract_id"`
	ContractName string            `json:"contract_name"`
	Image        string            `json:"image,omitempty"`
	Details      map[string]string `json:"details,omitempty"`
	StartEpoch   int64             `json:"start_epoch"`
	EndEpoch     int64             `json:"end_epoch"`
	IsJoinable   bool              `json:"is_joinable"`
}

type MsgUpdateProjectDetailsResponse struct{}

func (msg *MsgUpdateProjectDetails) ValidateBasic() error {
	if err := validateProof(msg.Signer, msg.Proof); err != nil {
		return err
	}
	if msg.ContractID == "" {
		return ErrContractNotFound.Wrap("missing contract id")
	}
	if msg.EndEpoch < msg.StartEpoch {
		return ErrPrecondition.Wrap("end before start")
	}
	return nil
}
