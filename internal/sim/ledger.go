package sim

import (
	"ledger/internal/account"

	"github.com/sasha-s/go-deadlock"
	"github.com/shopspring/decimal"
)

// Ledger is the set of accounts a simulation runs against. Accounts are
// created at setup and never removed; the mutex only guards the slice, each
// account guards its own balance.
type Ledger struct {
	mu       deadlock.Mutex
	accounts []*account.Account
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// CreateAccount opens a new account and adds it to the ledger.
func (l *Ledger) CreateAccount(holder string, initial decimal.Decimal) (*account.Account, error) {
	a, err := account.NewAccount(holder, initial)
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.accounts = append(l.accounts, a)
	return a, nil
}

// Accounts returns a copy of the account set.
func (l *Ledger) Accounts() []*account.Account {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]*account.Account, len(l.accounts))
	copy(out, l.accounts)
	return out
}

// TotalBalance sums every account's balance. Each balance is read under its
// own account lock; the sum is only meaningful once the workers are
// quiescent.
func (l *Ledger) TotalBalance() decimal.Decimal {
	total := decimal.Zero
	for _, a := range l.Accounts() {
		total = total.Add(a.Balance())
	}
	return total
}

// Conserved reports whether the current total matches the expected total:
// the seeded funds plus net deposits. Transfers and failed withdrawals must
// never move it.
func (l *Ledger) Conserved(expected decimal.Decimal) bool {
	return l.TotalBalance().Equal(expected)
}
