package types

import (
	"cosmossdk.io/collections"
)

const (
	// ModuleName defines the module name
	ModuleName = "badges"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_badges"
)

var (
	// BadgeKey is the prefix to store root badges by credential id
	BadgeKey = collections.NewPrefix(0)

	// RoleBadgeKey is the prefix to store contract-role badges by (credential, contract id)
	RoleBadgeKey = collections.NewPrefix(1)
)
