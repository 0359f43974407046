package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	badgestypes "github.com/teampay/chain/x/badges/types"
)

// MsgCreateJob instantiates a single-escrow vesting contract. The signer
// becomes the admin; the deposit, if positive, seeds the schedule.
type MsgCreateJob struct {
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

	StartEpoch   int64  `json:"start_epoch"`
	CliffEpoch   *int64 `json:"cliff_epoch,omitempty"`
	EndEpoch     int64  `json:"end_epoch"`
	VestInterval int64  `json:"vest_interval"`
	CheckJoin    bool   `json:"check_join"`

	Deposit math.LegacyDec `json:"deposit"`
}

type MsgCreateJobResponse struct {
	ContractID string `json:"contract_id"`
}

func (msg *MsgCreateJob) ValidateBasic() error {
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
	_, err := NewVestingSchedule(msg.StartEpoch, msg.CliffEpoch, msg.EndEpoch, msg.VestInterval, msg.CheckJoin)
	return err
}

// MsgInviteJobMember places a credential in the job's single member slot.
type MsgInviteJobMember struct {
	Signer string            `json:"signer"`
	Proof  badgestypes.Proof `json:"proof"`

	ContractID       string `json:"contract_id"`
	MemberCredential string `json:"member_credential"`
	MemberHandle     string `json:"member_handle"`
}

type MsgInviteJobMemberResponse struct{}

func (msg *MsgInviteJobMember) ValidateBasic() error {
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

// MsgJoinJob records the invited member's signature. The proof must
// authenticate the credential recorded at invite time.
type MsgJoinJob struct {
	Signer string            `json:"signer"`
	Proof  badgestypes.Proof `json:"proof"`

	ContractID string `json:"contract_id"`
}

type MsgJoinJobResponse struct{}

func (msg *MsgJoinJob) ValidateBasic() error {
	if err := validateProof(msg.Signer, msg.Proof); err != nil {
		return err
	}
	if msg.ContractID == "" {
		return ErrContractNotFound.Wrap("missing contract id")
	}
	return nil
}

// MsgRemoveJobMember frees the invite slot. Admin-only; rejected once the
// member has signed.
type MsgRemoveJobMember struct {
	Signer string            `json:"signer"`
	Proof  badgestypes.Proof `json:"proof"`

	ContractID       string `json:"contract_id"`
	MemberCredential string `json:"member_credential"`
}

type MsgRemoveJobMemberResponse struct{}

func (msg *MsgRemoveJobMember) ValidateBasic() error {
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

// MsgLeaveJob is the member's unilateral exit. It cancels the whole
// contract; the member must withdraw any reserved balance first.
type MsgLeaveJob struct {
	Signer string            `json:"signer"`
	Proof  badgestypes.Proof `json:"proof"`

	ContractID string `json:"contract_id"`
}

type MsgLeaveJobResponse struct{}

func (msg *MsgLeaveJob) ValidateBasic() error {
	if err := validateProof(msg.Signer, msg.Proof); err != nil {
		return err
	}
	if msg.ContractID == "" {
		return ErrContractNotFound.Wrap("missing contract id")
	}
	return nil
}

// MsgDepositJob escrows additional principal into the schedule.
type MsgDepositJob struct {
	Signer string            `json:"signer"`
	Proof  badgestypes.Proof `json:"proof"`

	ContractID string         `json:"contract_id"`
	Amount     math.LegacyDec `json:"amount"`
	Denom      string         `json:"denom"`
}

type MsgDepositJobResponse struct{}

func (msg *MsgDepositJob) ValidateBasic() error {
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

// MsgWithdrawJob reserves whatever has vested and drains the reserved pool
// to the signing member.
type MsgWithdrawJob struct {
	Signer string            `json:"signer"`
	Proof  badgestypes.Proof `json:"proof"`

	ContractID string `json:"contract_id"`
}

type MsgWithdrawJobResponse struct {
	Amount math.LegacyDec `json:"amount"`
}

func (msg *MsgWithdrawJob) ValidateBasic() error {
	if err := validateProof(msg.Signer, msg.Proof); err != nil {
		return err
	}
	if msg.ContractID == "" {
		return ErrContractNotFound.Wrap("missing contract id")
	}
	return nil
}

// MsgCancelJob is the admin's terminal recall. Vested funds are reserved
// for the member first; the rest of the escrow sweeps back to the admin.
type MsgCancelJob struct {
	Signer string            `json:"signer"`
	Proof  badgestypes.Proof `json:"proof"`

	ContractID string `json:"contract_id"`
}

type MsgCancelJobResponse struct {
	Swept math.LegacyDec `json:"swept"`
}

func (msg *MsgCancelJob) ValidateBasic() error {
	if err := validateProof(msg.Signer, msg.Proof); err != nil {
		return err
	}
	if msg.ContractID == "" {
		return ErrContractNotFound.Wrap("missing contract id")
	}
	return nil
}

// MsgListJob places the job in a marketplace category, paying the listing fee.
type MsgListJob struct {
	Signer string            `json:"signer"`
	Proof  badgestypes.Proof `json:"proof"`

	ContractID  string   `json:"contract_id"`
	Marketplace string   `json:"marketplace"`
	Category    string   `json:"category"`
	Fee         sdk.Coin `json:"fee"`
}

type MsgListJobResponse struct{}

func (msg *MsgListJob) ValidateBasic() error {
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

// MsgUpdateJobDetails replaces the contract's display metadata.
type MsgUpdateJobDetails struct {
	Signer string            `json:"signer"`
	Proof  badgestypes.Proof `json:"proof"`

	ContractID   string            `json:"contract_id"`
	ContractName string            `json:"contract_name"`
	Image        string            `json:"image,omitempty"`
	Details      map[string]string `json:"details,omitempty"`
}

type MsgUpdateJobDetailsResponse struct{}

func (msg *MsgUpdateJobDetails) ValidateBasic() error {
	if err := validateProof(msg.Signer, msg.Proof); err != nil {
		return err
	}
	if msg.ContractID == "" {
		return ErrContractNotFound.Wrap("missing contract id")
	}
	return nil
}
