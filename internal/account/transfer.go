package account

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Outcome is the result of a transfer attempt.
type Outcome string

const (
	OutcomeSuccess           Outcome = "success"
	OutcomeInsufficientFunds Outcome = "insufficient_funds"
	OutcomeSelfTransfer      Outcome = "self_transfer"
)

// Request describes one transfer between two accounts.
type Request struct {
	ID     string
	From   *Account
	To     *Account
	Amount decimal.Decimal
}

func NewRequest(from, to *Account, amount decimal.Decimal) *Request {
	return &Request{
		ID:     uuid.New().String(),
		From:   from,
		To:     to,
		Amount: amount,
	}
}

// Coordinator moves funds between two accounts as one atomic step. It holds
// no state of its own; both account locks are held for the whole
// debit+credit, so no observer ever sees the debit without the credit.
type Coordinator struct {
	log *slog.Logger
}

func NewCoordinator(log *slog.Logger) *Coordinator {
	if log == nil {
		log = slog.Default()
	}
	return &Coordinator{log: log}
}

// Transfer moves amount from one account to the other.
func (c *Coordinator) Transfer(from, to *Account, amount decimal.Decimal) (Outcome, error) {
	return c.Execute(NewRequest(from, to, amount))
}

// Execute runs a prepared transfer request. Self-transfers and negative
// amounts are rejected before any lock is taken. Locks are acquired in
// ascending id order: two concurrent transfers over the same pair of
// accounts agree on the order regardless of direction, which rules out
// circular wait.
func (c *Coordinator) Execute(r *Request) (Outcome, error) {
	if r.Amount.IsNegative() {
		return "", ErrNegativeAmount
	}
	if r.From.id == r.To.id {
		return OutcomeSelfTransfer, nil
	}

	first, second := r.From, r.To
	if second.id < first.id {
		first, second = second, first
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	if r.From.balance.LessThan(r.Amount) {
		c.log.Debug("transfer rejected",
			"id", r.ID,
			"from", r.From.holder,
			"to", r.To.holder,
			"amount", r.Amount,
			"outcome", OutcomeInsufficientFunds,
		)
		return OutcomeInsufficientFunds, nil
	}

	r.From.balance = r.From.balance.Sub(r.Amount)
	r.To.balance = r.To.balance.Add(r.Amount)
	c.log.Debug("transfer applied",
		"id", r.ID,
		"from", r.From.holder,
		"to", r.To.holder,
		"amount", r.Amount,
	)
	return OutcomeSuccess, nil
}
