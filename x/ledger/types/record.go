package types

import (
	"cosmossdk.io/math"
)

// TxKind classifies an appended transaction record.
type TxKind string

const (
	TxKindCreate       TxKind = "create"
	TxKindInvite       TxKind = "invite"
	TxKindRemove       TxKind = "remove"
	TxKindLeave        TxKind = "leave"
	TxKindJoin         TxKind = "join"
	TxKindDeposit      TxKind = "deposit"
	TxKindUpdate       TxKind = "update"
	TxKindReward       TxKind = "reward"
	TxKindWithdraw     TxKind = "withdraw"
	TxKindCancellation TxKind = "cancellation"
	TxKindList         TxKind = "list"
	TxKindDetails      TxKind = "details"
)

var validKinds = map[TxKind]struct{}{
	TxKindCreate: {}, TxKindInvite: {}, TxKindRemove: {}, TxKindLeave: {},
	TxKindJoin: {}, TxKindDeposit: {}, TxKindUpdate: {}, TxKindReward: {},
	TxKindWithdraw: {}, TxKindCancellation: {}, TxKindList: {}, TxKindDetails: {},
}

// TxRecord is an immutable entry in the append-only contract ledger.
// Sequence is assigned by the keeper on append.
type TxRecord struct {
	Sequence     uint64 `json:"sequence"`
	Epoch        int64  `json:"epoch"`
	ContractID   string `json:"contract_id"`
	ContractKind string `json:"contract_kind"`

	FromHandle     string `json:"from_handle"`
	FromCredential string `json:"from_credential"`
	ToHandle       string `json:"to_handle"`
	ToCredential   string `json:"to_credential"`

	Amount math.LegacyDec `json:"amount"`
	Denom  string         `json:"denom"`
	Kind   TxKind         `json:"kind"`
}

// Validate checks the record before it is appended.
func (r TxRecord) Validate() error {
	if r.ContractID == "" {
		return ErrInvalidRecord.Wrap("missing contract id")
	}
	if _, ok := validKinds[r.Kind]; !ok {
		return ErrInvalidRecord.Wrapf("unknown kind %q", r.Kind)
	}
	if r.Amount.IsNil() || r.Amount.IsNegative() {
		return ErrInvalidRecord.Wrap("amount must be non-negative")
	}
	return nil
}
