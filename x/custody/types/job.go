package types

import (
	"cosmossdk.io/math"
	"github.com/google/uuid"
)

// Job is the single-escrow, shared-stream contract variant. All signed
// members draw from one vesting schedule; Funds holds the escrowed
// principal and Reserved the vested-but-unclaimed pool.
type Job struct {
	ID             string            `json:"id"`
	TeamHandle     string            `json:"team_handle"`
	ContractHandle string            `json:"contract_handle"`
	ContractName   string            `json:"contract_name"`
	Category       string            `json:"category"`
	Image          string            `json:"image,omitempty"`
	Details        map[string]string `json:"details,omitempty"`
	Marketplaces   []string          `json:"marketplaces,omitempty"`

	AdminCredential string `json:"admin_credential"`
	AdminHandle     string `json:"admin_handle"`

	// Members maps invited credentials to their recorded handles;
	// Signatures is the subset that joined.
	Members    map[string]string `json:"members,omitempty"`
	Signatures map[string]bool   `json:"signatures,omitempty"`

	AssetDenom    string `json:"asset_denom"`
	AssetDecimals uint32 `json:"asset_decimals"`

	Funds    math.LegacyDec `json:"funds"`
	Reserved math.LegacyDec `json:"reserved"`

	Schedule VestingSchedule `json:"schedule"`

	IsCancelled  bool  `json:"is_cancelled"`
	CreatedEpoch int64 `json:"created_epoch"`
	ListEpoch    int64 `json:"list_epoch"`
}

// ContractID derives a deterministic contract id from the team and contract handles.
func ContractID(kind ContractKind, teamHandle, contractHandle string) string {
	name := string(kind) + "/" + teamHandle + "/" + contractHandle
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}

// HasSignature reports whether the credential has joined.
func (j Job) HasSignature(credential string) bool {
	return j.Signatures[credential]
}

// Role classifies a credential against the contract.
func (j Job) Role(credential string) ContractRole {
	switch {
	case credential == j.AdminCredential:
		return RoleAdmin
	case j.HasSignature(credential):
		return RoleMember
	default:
		return RoleNonmember
	}
}

// Deposited is the cumulative amount ever escrowed.
func (j Job) Deposited() math.LegacyDec {
	return j.Schedule.Amount
}

// Validate checks the stored record's internal consistency.
func (j Job) Validate() error {
	if j.ID == "" {
		return ErrLedgerInvariant.Wrap("missing contract id")
	}
	if j.AdminCredential == "" || j.AdminHandle == "" {
		return ErrLedgerInvariant.Wrap("missing admin identity")
	}
	if j.AssetDenom == "" {
		return ErrInvalidDenom.Wrap("missing asset denom")
	}
	if j.Funds.IsNegative() || j.Reserved.IsNegative() {
		return ErrLedgerInvariant.Wrap("negative balance")
	}
	// funds + reserved == deposited - withdrawn
	if !j.Funds.Add(j.Reserved).Equal(j.Schedule.Amount.Sub(j.Schedule.Withdrawn)) {
		return ErrLedgerInvariant.Wrap("escrow does not reconcile with schedule")
	}
	for credential := range j.Signatures {
		if _, ok := j.Members[credential]; !ok {
			return ErrLedgerInvariant.Wrapf("signature without invite: %s", credential)
		}
	}
	return j.Schedule.Validate()
}
