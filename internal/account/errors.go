package account

import "errors"

// ErrNegativeAmount is a caller contract violation: a negative amount passed
// to Deposit, Withdraw, Transfer or NewAccount. It is returned before any
// lock is taken. Insufficient funds and self-transfers are not errors; they
// are reported as normal outcomes.
var ErrNegativeAmount = errors.New("amount must not be negative")
