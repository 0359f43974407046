package keeper

// In-memory bank double for keeper tests, tracking account and module
// balances as if in the KV store.
import (
	"context"
	"fmt"
	"sync"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// SubAccountLog captures one LogSubAccountTransaction call.
type SubAccountLog struct {
	Recipient  string
	Sender     string
	SubAccount string
	Amount     sdk.Coin
	Memo       string
}

// InMemoryBankKeeper satisfies the escrow and fee bank interfaces while
// keeping all balances in memory.
type InMemoryBankKeeper struct {
	mu       sync.RWMutex
	accounts map[string]sdk.Coins
	modules  map[string]sdk.Coins

	SubAccountLogs []SubAccountLog
}

// NewInMemoryBankKeeper creates a new instance of InMemoryBankKeeper.
func NewInMemoryBankKeeper() *InMemoryBankKeeper {
	return &InMemoryBankKeeper{
		accounts: make(map[string]sdk.Coins),
		modules:  make(map[string]sdk.Coins),
	}
}

// FundAccount seeds an account balance for a test.
func (b *InMemoryBankKeeper) FundAccount(addr sdk.AccAddress, amt sdk.Coins) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.accounts[addr.String()] = b.accounts[addr.String()].Add(amt...)
}

// AccountBalance returns the current balance of an account.
func (b *InMemoryBankKeeper) AccountBalance(addr sdk.AccAddress) sdk.Coins {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.accounts[addr.String()]
}

// ModuleBalance returns the current balance of a module account.
func (b *InMemoryBankKeeper) ModuleBalance(module string) sdk.Coins {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.modules[module]
}

func (b *InMemoryBankKeeper) SendCoinsFromAccountToModule(_ context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins, _ string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	balance := b.accounts[senderAddr.String()]
	if !amt.IsAllLTE(balance) {
		return fmt.Errorf("insufficient funds: %s has %s, needs %s", senderAddr, balance, amt)
	}
	b.accounts[senderAddr.String()] = balance.Sub(amt...)
	b.modules[recipientModule] = b.modules[recipientModule].Add(amt...)
	return nil
}

func (b *InMemoryBankKeeper) SendCoinsFromModuleToAccount(_ context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins, _ string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	balance := b.modules[senderModule]
	if !amt.IsAllLTE(balance) {
		return fmt.Errorf("insufficient module funds: %s has %s, needs %s", senderModule, balance, amt)
	}
	b.modules[senderModule] = balance.Sub(amt...)
	b.accounts[recipientAddr.String()] = b.accounts[recipientAddr.String()].Add(amt...)
	return nil
}

func (b *InMemoryBankKeeper) LogSubAccountTransaction(_ context.Context, recipient string, sender string, subAccount string, amt sdk.Coin, memo string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.SubAccountLogs = append(b.SubAccountLogs, SubAccountLog{
		Recipient:  recipient,
		Sender:     sender,
		SubAccount: subAccount,
		Amount:     amt,
		Memo:       memo,
	})
}
