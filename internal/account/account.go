package account

import (
	"github.com/sasha-s/go-deadlock"
	"github.com/shopspring/decimal"
)

// Account is a single balance entity. The mutex is owned by the account and
// guards every access to balance, reads included; nothing outside this
// package ever locks it except the transfer coordinator.
type Account struct {
	id     uint64
	holder string

	mu      deadlock.Mutex
	balance decimal.Decimal
}

func (a *Account) ID() uint64 {
	return a.id
}

func (a *Account) Holder() string {
	return a.holder
}

// Deposit adds amount to the balance. Negative amounts are rejected, never
// clamped.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.balance = a.balance.Add(amount)
	return nil
}

// Withdraw subtracts amount if the balance covers it. The bool reports
// success; false with a nil error is the normal insufficient-funds outcome
// and leaves the balance untouched. The funds check and the subtraction
// happen under one lock acquisition.
func (a *Account) Withdraw(amount decimal.Decimal) (bool, error) {
	if amount.IsNegative() {
		return false, ErrNegativeAmount
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.balance.LessThan(amount) {
		return false, nil
	}
	a.balance = a.balance.Sub(amount)
	return true, nil
}

// Balance reads under the same lock as the mutating operations. An unlocked
// read would race with them.
func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}
