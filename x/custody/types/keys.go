package types

import (
	"cosmossdk.io/collections"
)

const (
	// ModuleName defines the module name
	ModuleName = "custody"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_custody"

	// SubAccountEscrow tracks principal held by the module on behalf of a contract
	SubAccountEscrow = "escrow"

	// SubAccountReserved tracks vested-but-unclaimed funds
	SubAccountReserved = "reserved"
)

// SecondsPerDay converts the day-denominated schedule fields to epoch seconds.
const SecondsPerDay int64 = 86400

var (
	ParamsKey = collections.NewPrefix(0)

	// JobKey is the prefix to store job contracts by contract id
	JobKey = collections.NewPrefix(1)

	// ProjectKey is the prefix to store project contracts by contract id
	ProjectKey = collections.NewPrefix(2)
)

// ContractKind discriminates the two contract variants.
type ContractKind string

const (
	KindJob     ContractKind = "job"
	KindProject ContractKind = "project"
)

// ContractRole is the relationship of a credential to a contract.
type ContractRole string

const (
	RoleAdmin     ContractRole = "admin"
	RoleMember    ContractRole = "member"
	RoleNonmember ContractRole = "nonmember"
)
