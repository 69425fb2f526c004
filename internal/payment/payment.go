package payment

import (
	"errors"
	"sync"

	"github.com/holiman/uint256"
)

var ErrInsufficientFunds = errors.New("insufficient funds")

// Service pays accounts out of the marketplace's custody. A failed payout must
// surface as an error; it is never swallowed.
type Service interface {
	Pay(account string, amount *uint256.Int) error
}

// MemoryBank is the in-process monetary transfer primitive used by tests and
// the simulation mode.
type MemoryBank struct {
	mu       sync.Mutex
	balances map[string]*uint256.Int
	failure  error
}

func NewMemoryBank() *MemoryBank {
	return &MemoryBank{balances: make(map[string]*uint256.Int)}
}

// SetFailure makes every subsequent Pay fail with err until cleared with nil.
func (b *MemoryBank) SetFailure(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failure = err
}

func (b *MemoryBank) Pay(account string, amount *uint256.Int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.failure != nil {
		return b.failure
	}

	balance, exists := b.balances[account]
	if !exists {
		balance = uint256.NewInt(0)
		b.balances[account] = balance
	}
	balance.Add(balance, amount)

	return nil
}

func (b *MemoryBank) Balance(account string) *uint256.Int {
	b.mu.Lock()
	defer b.mu.Unlock()

	balance, exists := b.balances[account]
	if !exists {
		return uint256.NewInt(0)
	}

	return balance.Clone()
}
