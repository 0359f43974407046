package types

import (
	"github.com/google/uuid"
)

// Badge is a principal's root credential record. The credential id is
// derived deterministically from the handle; possession is modeled by the
// owner account recorded at registration.
type Badge struct {
	Credential string `json:"credential"`
	Handle     string `json:"handle"`
	Owner      string `json:"owner"`
}

// Proof is a presented claim of badge possession. Verification checks the
// triple against the stored badge and fails closed on any mismatch.
type Proof struct {
	Credential string `json:"credential"`
	Handle     string `json:"handle"`
	Owner      string `json:"owner"`
}

// RoleBadge records a contract-scoped role credential minted when a
// principal becomes a contract's admin or joins as a member.
type RoleBadge struct {
	Credential     string `json:"credential"`
	ContractID     string `json:"contract_id"`
	ContractKind   string `json:"contract_kind"`
	ContractRole   string `json:"contract_role"`
	ContractHandle string `json:"contract_handle"`
	TeamHandle     string `json:"team_handle"`
}

// CredentialID derives the deterministic credential id for a handle.
func CredentialID(handle string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("teampay/badge/"+handle)).String()
}

// Validate checks the badge record.
func (b Badge) Validate() error {
	if b.Credential == "" || b.Handle == "" || b.Owner == "" {
		return ErrInvalidHandle.Wrap("badge fields must be non-empty")
	}
	return nil
}
