package dependency

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/0xmukeshr/ticketdapp/internal/entity"
)

//go:generate moq -rm -out gen/native_transfer_client_mock.go -pkg dependencygen -fmt goimports . NativeTransferClient

// NativeTransferClient represents an interface for the external
// native-currency value transfer mechanism used for primary-currency
// purchases.
type NativeTransferClient interface {
	// Transfer pushes native value from one account to another. A failure
	// must abort the purchase it belongs to.
	Transfer(ctx context.Context, from, to string, amount decimal.Decimal) error
}

// MemoryNativeLedger is the in-process reference implementation of the
// native value transfer collaborator.
type MemoryNativeLedger struct {
	mu       sync.Mutex
	balances map[string]decimal.Decimal
}

// NewMemoryNativeLedger creates a new instance of MemoryNativeLedger
func NewMemoryNativeLedger() *MemoryNativeLedger {
	return &MemoryNativeLedger{
		balances: make(map[string]decimal.Decimal),
	}
}

// Deposit credits native value to an account
func (l *MemoryNativeLedger) Deposit(account string, amount decimal.Decimal) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.balances[account] = l.balance(account).Add(amount)
}

// BalanceOf returns the native balance of an account
func (l *MemoryNativeLedger) BalanceOf(account string) decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.balance(account)
}

// Transfer pushes native value from one account to another
func (l *MemoryNativeLedger) Transfer(ctx context.Context, from, to string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: negative amount", entity.ErrInvalidArgument)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	balance := l.balance(from)
	if balance.LessThan(amount) {
		return fmt.Errorf("%w: balance %s below %s", entity.ErrPaymentFailed, balance, amount)
	}

	l.balances[from] = balance.Sub(amount)
	l.balances[to] = l.balance(to).Add(amount)

	return nil
}

func (l *MemoryNativeLedger) balance(account string) decimal.Decimal {
	if balance, ok := l.balances[account]; ok {
		return balance
	}
	return decimal.Zero
}
