package dependency

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/0xmukeshr/ticketdapp/internal/entity"
)

//go:generate moq -rm -out gen/token_client_mock.go -pkg dependencygen -fmt goimports . TokenClient

// TokenClient represents an interface for interacting with the external
// token payment service used for secondary-currency purchases.
type TokenClient interface {
	// BalanceOf returns the spendable token balance of an account
	BalanceOf(ctx context.Context, account string) (decimal.Decimal, error)

	// Allowance returns the amount the spender may transfer on behalf of
	// the owner
	Allowance(ctx context.Context, owner, spender string) (decimal.Decimal, error)

	// TransferFrom moves tokens from the owner to the recipient within the
	// spender's allowance
	TransferFrom(ctx context.Context, owner, recipient string, amount decimal.Decimal) error
}

type allowanceKey struct {
	owner   string
	spender string
}

// MemoryToken is the in-process reference implementation of the token
// payment collaborator: a balance/allowance ledger.
type MemoryToken struct {
	mu         sync.Mutex
	spender    string
	balances   map[string]decimal.Decimal
	allowances map[allowanceKey]decimal.Decimal
}

// NewMemoryToken creates a new MemoryToken ledger. All TransferFrom calls
// are debited against allowances granted to the given spender account.
func NewMemoryToken(spender string) *MemoryToken {
	return &MemoryToken{
		spender:    spender,
		balances:   make(map[string]decimal.Decimal),
		allowances: make(map[allowanceKey]decimal.Decimal),
	}
}

// Mint credits tokens to an account
func (t *MemoryToken) Mint(account string, amount decimal.Decimal) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.balances[account] = t.balance(account).Add(amount)
}

// Approve grants the spender an allowance over the owner's tokens
func (t *MemoryToken) Approve(owner string, amount decimal.Decimal) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.allowances[allowanceKey{owner: owner, spender: t.spender}] = amount
}

// BalanceOf returns the spendable token balance of an account
func (t *MemoryToken) BalanceOf(ctx context.Context, account string) (decimal.Decimal, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.balance(account), nil
}

// Allowance returns the amount the spender may transfer on behalf of the owner
func (t *MemoryToken) Allowance(ctx context.Context, owner, spender string) (decimal.Decimal, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.allowance(owner, spender), nil
}

// TransferFrom moves tokens from the owner to the recipient within the
// spender's allowance
func (t *MemoryToken) TransferFrom(ctx context.Context, owner, recipient string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: negative amount", entity.ErrInvalidArgument)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	balance := t.balance(owner)
	if balance.LessThan(amount) {
		return fmt.Errorf("%w: balance %s below %s", entity.ErrPaymentFailed, balance, amount)
	}

	key := allowanceKey{owner: owner, spender: t.spender}
	allowance := t.allowance(owner, t.spender)
	if allowance.LessThan(amount) {
		return fmt.Errorf("%w: allowance %s below %s", entity.ErrPaymentFailed, allowance, amount)
	}

	t.balances[owner] = balance.Sub(amount)
	t.balances[recipient] = t.balance(recipient).Add(amount)
	t.allowances[key] = allowance.Sub(amount)

	return nil
}

func (t *MemoryToken) balance(account string) decimal.Decimal {
	if balance, ok := t.balances[account]; ok {
		return balance
	}
	return decimal.Zero
}

func (t *MemoryToken) allowance(owner, spender string) decimal.Decimal {
	if allowance, ok := t.allowances[allowanceKey{owner: owner, spender: spender}]; ok {
		return allowance
	}
	return decimal.Zero
}
