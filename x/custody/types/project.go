package types

import (
	"sort"

	"cosmossdk.io/math"
)

// Allocations maps member credentials to per-member payout amounts
// within a single objective.
type Allocations map[string]math.LegacyDec

// Project is the multi-objective contract variant. The admin allocates the
// escrow across discrete objectives; rewarding an objective moves each
// member's amount into that member's keyed reserved balance.
type Project struct {
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

	Members    map[string]string `json:"members,omitempty"`
	Removed    map[string]string `json:"removed,omitempty"`
	Signatures map[string]bool   `json:"signatures,omitempty"`

	AssetDenom    string `json:"asset_denom"`
	AssetDecimals uint32 `json:"asset_decimals"`

	Funds math.LegacyDec `json:"funds"`

	StartEpoch int64 `json:"start_epoch"`
	EndEpoch   int64 `json:"end_epoch"`

	// Amount is cumulative deposits; Rewarded cumulative objective payouts;
	// Withdrawn cumulative member withdrawals from reserved balances.
	Amount    math.LegacyDec `json:"amount"`
	Rewarded  math.LegacyDec `json:"rewarded"`
	Withdrawn math.LegacyDec `json:"withdrawn"`

	// Objectives holds pending allocations; Completed the settled ones.
	// A credential never appears in both maps for the same objective id.
	Objectives map[uint64]Allocations    `json:"objectives,omitempty"`
	Completed  map[uint64]Allocations    `json:"completed,omitempty"`
	Reserved   map[string]math.LegacyDec `json:"reserved,omitempty"`

	IsJoinable   bool  `json:"is_joinable"`
	IsCancelled  bool  `json:"is_cancelled"`
	CancelEpoch  int64 `json:"cancel_epoch,omitempty"`
	CreatedEpoch int64 `json:"created_epoch"`
	ListEpoch    int64 `json:"list_epoch"`
}

// HasSignature reports whether the credential has joined.
func (p Project) HasSignature(credential string) bool {
	return p.Signatures[credential]
}

// Role classifies a credential against the contract.
func (p Project) Role(credential string) ContractRole {
	switch {
	case credential == p.AdminCredential:
		return RoleAdmin
	case p.HasSignature(credential):
		return RoleMember
	default:
		return RoleNonmember
	}
}

// ReservedTotal sums all keyed reserved balances.
func (p Project) ReservedTotal() math.LegacyDec {
	total := math.LegacyZeroDec()
	for _, amount := range p.Reserved {
		total = total.Add(amount)
	}
	return total
}

// ReservedFor returns the credential's reserved balance, zero if absent.
func (p Project) ReservedFor(credential string) math.LegacyDec {
	if amount, ok := p.Reserved[credential]; ok {
		return amount
	}
	return math.LegacyZeroDec()
}

// PendingTotal sums every amount in the pending objectives map.
func (p Project) PendingTotal() math.LegacyDec {
	total := math.LegacyZeroDec()
	for _, members := range p.Objectives {
		for _, amount := range members {
			total = total.Add(amount)
		}
	}
	return total
}

// SortedCredentials returns the allocation keys in deterministic order.
func (a Allocations) SortedCredentials() []string {
	credentials := make([]string, 0, len(a))
	for credential := range a {
		credentials = append(credentials, credential)
	}
	sort.Strings(credentials)
	return credentials
}

// Validate checks the stored record's internal consistency.
func (p Project) Validate() error {
	if p.ID == "" {
		return ErrLedgerInvariant.Wrap("missing contract id")
	}
	if p.AdminCredential == "" || p.AdminHandle == "" {
		return ErrLedgerInvariant.Wrap("missing admin identity")
	}
	if p.AssetDenom == "" {
		return ErrInvalidDenom.Wrap("missing asset denom")
	}
	if p.EndEpoch < p.StartEpoch {
		return ErrPrecondition.Wrap("end before start")
	}
	if p.Funds.IsNegative() {
		return ErrLedgerInvariant.Wrap("negative balance")
	}
	for credential, amount := range p.Reserved {
		if amount.IsNegative() {
			return ErrLedgerInvariant.Wrapf("negative reserved balance for %s", credential)
		}
	}
	// funds + reserved == deposited - withdrawn
	if !p.Funds.Add(p.ReservedTotal()).Equal(p.Amount.Sub(p.Withdrawn)) {
		return ErrLedgerInvariant.Wrap("escrow does not reconcile with ledger")
	}
	for id, members := range p.Objectives {
		done, ok := p.Completed[id]
		if !ok {
			continue
		}
		for credential := range members {
			if _, settled := done[credential]; settled {
				return ErrLedgerInvariant.Wrapf("credential %s both pending and completed for objective %d", credential, id)
			}
		}
	}
	return nil
}
