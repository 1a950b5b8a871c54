package memory

import (
	"context"
	"sync"

	"did-payment-splitter/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

type balanceKey struct {
	token common.Address
	owner domain.Principal
}

type allowanceKey struct {
	token   common.Address
	owner   domain.Principal
	spender domain.Principal
}

// Token implements ports.ValueToken for any number of token addresses.
// Stored amounts are never mutated in place.
type Token struct {
	mu         sync.RWMutex
	balances   map[balanceKey]*uint256.Int
	allowances map[allowanceKey]*uint256.Int
}

// NewToken creates an in-memory value token with no balances.
func NewToken() *Token {
	return &Token{
		balances:   make(map[balanceKey]*uint256.Int),
		allowances: make(map[allowanceKey]*uint256.Int),
	}
}

func (t *Token) BalanceOf(ctx context.Context, token common.Address, owner domain.Principal) (*uint256.Int, error) {
	defer readGuard(ctx)()
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.balance(balanceKey{token, owner}), nil
}

func (t *Token) Allowance(ctx context.Context, token common.Address, owner, spender domain.Principal) (*uint256.Int, error) {
	defer readGuard(ctx)()
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.allowance(allowanceKey{token, owner, spender}), nil
}

func (t *Token) Approve(ctx context.Context, token common.Address, owner, spender domain.Principal, amount *uint256.Int) error {
	defer writeGuard(ctx)()
	t.mu.Lock()
	defer t.mu.Unlock()
	t.setAllowance(ctx, allowanceKey{token, owner, spender}, new(uint256.Int).Set(amount))
	return nil
}

func (t *Token) Transfer(ctx context.Context, token common.Address, from, to domain.Principal, amount *uint256.Int) error {
	defer writeGuard(ctx)()
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.move(ctx, token, from, to, amount)
}

func (t *Token) TransferFrom(ctx context.Context, token common.Address, spender, from, to domain.Principal, amount *uint256.Int) error {
	defer writeGuard(ctx)()
	t.mu.Lock()
	defer t.mu.Unlock()

	key := allowanceKey{token, from, spender}
	allowed := t.allowance(key)
	if allowed.Lt(amount) {
		return domain.ErrInsufficientAllowance
	}
	if err := t.move(ctx, token, from, to, amount); err != nil {
		return err
	}
	t.setAllowance(ctx, key, new(uint256.Int).Sub(allowed, amount))
	return nil
}

func (t *Token) Mint(ctx context.Context, token common.Address, to domain.Principal, amount *uint256.Int) error {
	defer writeGuard(ctx)()
	t.mu.Lock()
	defer t.mu.Unlock()

	key := balanceKey{token, to}
	next, overflow := new(uint256.Int).AddOverflow(t.balance(key), amount)
	if overflow {
		return domain.ErrBalanceOverflow
	}
	t.setBalance(ctx, key, next)
	return nil
}

// move must be called with t.mu held.
func (t *Token) move(ctx context.Context, token common.Address, from, to domain.Principal, amount *uint256.Int) error {
	fromKey, toKey := balanceKey{token, from}, balanceKey{token, to}

	fromBal := t.balance(fromKey)
	if fromBal.Lt(amount) {
		return domain.ErrInsufficientBalance
	}
	if from == to {
		return nil
	}

	toBal, overflow := new(uint256.Int).AddOverflow(t.balance(toKey), amount)
	if overflow {
		return domain.ErrBalanceOverflow
	}
	t.setBalance(ctx, fromKey, fromBal.Sub(fromBal, amount))
	t.setBalance(ctx, toKey, toBal)
	return nil
}

func (t *Token) balance(k balanceKey) *uint256.Int {
	if v, ok := t.balances[k]; ok {
		return new(uint256.Int).Set(v)
	}
	return new(uint256.Int)
}

func (t *Token) allowance(k allowanceKey) *uint256.Int {
	if v, ok := t.allowances[k]; ok {
		return new(uint256.Int).Set(v)
	}
	return new(uint256.Int)
}

func (t *Token) setBalance(ctx context.Context, k balanceKey, v *uint256.Int) {
	old, had := t.balances[k]
	t.balances[k] = v
	record(ctx, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		if had {
			t.balances[k] = old
		} else {
			delete(t.balances, k)
		}
	})
}

func (t *Token) setAllowance(ctx context.Context, k allowanceKey, v *uint256.Int) {
	old, had := t.allowances[k]
	t.allowances[k] = v
	record(ctx, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		if had {
			t.allowances[k] = old
		} else {
			delete(t.allowances, k)
		}
	})
}
