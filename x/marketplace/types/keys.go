package types

import (
	"cosmossdk.io/collections"
)

const (
	// ModuleName defines the module name
	ModuleName = "marketplace"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_marketplace"
)

var (
	ParamsKey = collections.NewPrefix(0)

	// CategoryKey is the prefix to store categories by (kind, name)
	CategoryKey = collections.NewPrefix(1)

	// ListingKey is the prefix to store listings by contract id
	ListingKey = collections.NewPrefix(2)
)
