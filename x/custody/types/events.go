package types

// Event types
const (
	EventTypeCreateContract = "create_contract"
	EventTypeInvite         = "invite_member"
	EventTypeJoin           = "join_contract"
	EventTypeRemove         = "remove_member"
	EventTypeLeave          = "leave_contract"
	EventTypeDeposit        = "deposit_funds"
	EventTypeUpdate         = "update_objectives"
	EventTypeReward         = "reward_objective"
	EventTypeWithdraw       = "withdraw_funds"
	EventTypeCancel         = "cancel_contract"
	EventTypeList           = "list_contract"
	EventTypeDetails        = "update_details"
)

// Event attribute keys
const (
	AttributeKeyContractID = "contract_id"
	AttributeKeyKind       = "contract_kind"
	AttributeKeyCredential = "credential"
	AttributeKeyHandle     = "handle"
	AttributeKeyAmount     = "amount"
	AttributeKeyDenom      = "denom"
	AttributeKeyObjective  = "objective_id"
	AttributeKeyEpoch      = "epoch"
)
