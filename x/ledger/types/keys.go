package types

import (
	"cosmossdk.io/collections"
)

const (
	// ModuleName defines the module name
	ModuleName = "ledger"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_ledger"
)

var (
	// RecordCountKey is the sequence assigning record ids
	RecordCountKey = collections.NewPrefix(0)

	// RecordKey is the prefix to store transaction records by sequence
	RecordKey = collections.NewPrefix(1)
)
