package account

import (
	"sync/atomic"

	"github.com/shopspring/decimal"
)

// nextID hands out process-wide unique, strictly increasing account ids.
// The transfer coordinator uses this total order to pick its lock order, so
// ids are never reused and the counter is never reset.
var nextID atomic.Uint64

// NewAccount creates an account with a fresh id and the given starting
// balance. The starting balance must not be negative.
func NewAccount(holder string, initial decimal.Decimal) (*Account, error) {
	if initial.IsNegative() {
		return nil, ErrNegativeAmount
	}
	return &Account{
		id:      nextID.Add(1),
		holder:  holder,
		balance: initial,
	}, nil
}
