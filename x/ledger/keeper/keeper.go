package keeper

import (
	"context"
	"fmt"
	"strings"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/teampay/chain/internal/storecodec"
	"github.com/teampay/chain/x/ledger/types"
)

type (
	Keeper struct {
		storeService store.KVStoreService
		logger       log.Logger

		// the address capable of executing governance messages. Typically, this
		// should be the x/gov module account.
		authority string

		logConfig LogConfig

		// Collections schema and stores
		Schema      collections.Schema
		RecordCount collections.Sequence
		RecordStore collections.Map[uint64, types.TxRecord]
	}
)

// LogConfig controls the audit lines written alongside each appended record.
type LogConfig struct {
	DoubleEntry bool   `json:"double_entry"`
	SimpleEntry bool   `json:"simple_entry"`
	LogLevel    string `json:"log_level"`
}

func NewKeeper(
	storeService store.KVStoreService,
	logger log.Logger,
	authority string,
	logConfig LogConfig,
) Keeper {
	if _, err := sdk.AccAddressFromBech32(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address: %s", authority))
	}

	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		storeService: storeService,
		logger:       logger,
		authority:    authority,
		logConfig:    logConfig,
	}

	// Wire collections stores
	k.RecordCount = collections.NewSequence(sb, types.RecordCountKey, "record_count")
	k.RecordStore = collections.NewMap(sb, types.RecordKey, "records", collections.Uint64Key, storecodec.JSONValue[types.TxRecord]("TxRecord"))

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// Logger returns a module-specific logger.
func (k Keeper) Logger() log.Logger {
	return k.logger.With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// AppendRecord assigns the next sequence number and stores the record.
// The ledger is append-only; records are never mutated or removed.
func (k Keeper) AppendRecord(ctx context.Context, record types.TxRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	seq, err := k.RecordCount.Next(ctx)
	if err != nil {
		return err
	}
	record.Sequence = seq

	if err := k.RecordStore.Set(ctx, seq, record); err != nil {
		return err
	}

	k.logRecord(ctx, record)
	return nil
}

// GetRecord retrieves a record by sequence number.
func (k Keeper) GetRecord(ctx context.Context, sequence uint64) (types.TxRecord, bool) {
	record, err := k.RecordStore.Get(ctx, sequence)
	if err != nil {
		return types.TxRecord{}, false
	}
	return record, true
}

// GetAllRecords returns every record in append order.
func (k Keeper) GetAllRecords(ctx context.Context) []types.TxRecord {
	iter, err := k.RecordStore.Iterate(ctx, nil)
	if err != nil {
		panic(err)
	}
	values, err := iter.Values()
	if err != nil {
		panic(err)
	}
	return values
}

// GetRecordsByContract returns the records emitted by a single contract, in append order.
func (k Keeper) GetRecordsByContract(ctx context.Context, contractID string) []types.TxRecord {
	var records []types.TxRecord
	err := k.RecordStore.Walk(ctx, nil, func(_ uint64, record types.TxRecord) (bool, error) {
		if record.ContractID == contractID {
			records = append(records, record)
		}
		return false, nil
	})
	if err != nil {
		panic(err)
	}
	return records
}

// Count returns the number of appended records.
func (k Keeper) Count(ctx context.Context) uint64 {
	count, err := k.RecordCount.Peek(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

func (k Keeper) logRecord(ctx context.Context, record types.TxRecord) {
	height := sdk.UnwrapSDKContext(ctx).BlockHeight()
	logFunc := k.getLogFunction(k.logConfig.LogLevel)
	amount := record.Amount.String()
	if k.logConfig.DoubleEntry {
		logFunc("ContractAudit", "type", "debit", "account", record.ToHandle, "counteraccount", record.FromHandle,
			"amount", amount, "denom", record.Denom, "kind", record.Kind, "contract", record.ContractID, "height", height)
		logFunc("ContractAudit", "type", "credit", "account", record.FromHandle, "counteraccount", record.ToHandle,
			"amount", amount, "denom", record.Denom, "kind", record.Kind, "contract", record.ContractID, "height", height)
	}
	if k.logConfig.SimpleEntry {
		logFunc(fmt.Sprintf("ContractEntry to=%s from=%s amount=%20s %-10s kind=%-12s contract=%s height=%d",
			fixedSize(record.ToHandle, 32), fixedSize(record.FromHandle, 32), amount, record.Denom, record.Kind, record.ContractID, height))
	}
}

func (k Keeper) getLogFunction(level string) func(msg string, keyvals ...interface{}) {
	switch strings.ToLower(level) {
	case "info":
		return k.Logger().Info
	case "debug":
		return k.Logger().Debug
	case "error":
		return k.Logger().Error
	case "warn":
		return k.Logger().Warn
	default:
		return k.Logger().Info
	}
}

// no easy way to truncate AND pad a string in Sprintf
func fixedSize(s string, size int) string {
	if len(s) > size {
		return s[:size]
	}
	return s + strings.Repeat(" ", size-len(s))
}
