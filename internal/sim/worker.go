package sim

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"ledger/internal/account"

	"github.com/shopspring/decimal"
)

// Action is one kind of randomized operation a worker performs.
type Action string

const (
	ActionDeposit  Action = "deposit"
	ActionWithdraw Action = "withdraw"
	ActionTransfer Action = "transfer"
)

// Worker drives a fixed number of randomized operations against the ledger's
// accounts, sleeping a random delay between operations. Each worker owns its
// own rand.Rand; rand.Rand is not safe for concurrent use.
type Worker struct {
	id       int
	accounts []*account.Account
	coord    *account.Coordinator
	rng      *rand.Rand
	ops      int
	minDelay time.Duration
	maxDelay time.Duration
	log      *slog.Logger

	// Written only by the worker's own goroutine, read by the runner after
	// the WaitGroup completes.
	deposited decimal.Decimal
	withdrawn decimal.Decimal
}

func NewWorker(id int, accounts []*account.Account, coord *account.Coordinator, cfg Config, log *slog.Logger) *Worker {
	return &Worker{
		id:       id,
		accounts: accounts,
		coord:    coord,
		rng:      rand.New(rand.NewSource(cfg.Seed + int64(id))),
		ops:      cfg.Ops,
		minDelay: cfg.MinDelay,
		maxDelay: cfg.MaxDelay,
		log:      log.With("worker", id),
	}
}

// Run executes the operation loop until the op count is reached or ctx is
// cancelled. Cancellation is only observed between operations and during the
// inter-operation sleep; no account lock is ever held across either.
func (w *Worker) Run(ctx context.Context) error {
	for i := 0; i < w.ops; i++ {
		if err := ctx.Err(); err != nil {
			w.log.Debug("worker cancelled", "completed", i)
			return err
		}
		w.step()
		if err := w.sleep(ctx); err != nil {
			w.log.Debug("worker cancelled during delay", "completed", i+1)
			return err
		}
	}
	return nil
}

func (w *Worker) step() {
	amount := decimal.NewFromInt(int64(w.rng.Intn(100) + 1))
	target := w.accounts[w.rng.Intn(len(w.accounts))]

	switch w.action() {
	case ActionDeposit:
		if err := target.Deposit(amount); err != nil {
			w.log.Error("deposit failed", "holder", target.Holder(), "amount", amount, "err", err)
			return
		}
		w.deposited = w.deposited.Add(amount)
		w.log.Debug("deposit", "holder", target.Holder(), "amount", amount)
	case ActionWithdraw:
		ok, err := target.Withdraw(amount)
		if err != nil {
			w.log.Error("withdraw failed", "holder", target.Holder(), "amount", amount, "err", err)
			return
		}
		if ok {
			w.withdrawn = w.withdrawn.Add(amount)
		}
		w.log.Debug("withdraw", "holder", target.Holder(), "amount", amount, "ok", ok)
	case ActionTransfer:
		// The destination may coincide with the source; the coordinator
		// reports that as a self-transfer and moves nothing.
		dest := w.accounts[w.rng.Intn(len(w.accounts))]
		outcome, err := w.coord.Transfer(target, dest, amount)
		if err != nil {
			w.log.Error("transfer failed", "from", target.Holder(), "to", dest.Holder(), "amount", amount, "err", err)
			return
		}
		w.log.Debug("transfer", "from", target.Holder(), "to", dest.Holder(), "amount", amount, "outcome", outcome)
	}
}

func (w *Worker) action() Action {
	if len(w.accounts) < 2 {
		// A single account cannot receive transfers from anywhere else.
		if w.rng.Intn(2) == 0 {
			return ActionDeposit
		}
		return ActionWithdraw
	}
	switch w.rng.Intn(3) {
	case 0:
		return ActionDeposit
	case 1:
		return ActionWithdraw
	default:
		return ActionTransfer
	}
}

func (w *Worker) sleep(ctx context.Context) error {
	d := w.minDelay
	if span := w.maxDelay - w.minDelay; span > 0 {
		d += time.Duration(w.rng.Int63n(int64(span) + 1))
	}
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Deposited is the total this worker added through deposits. Only valid
// after Run has returned.
func (w *Worker) Deposited() decimal.Decimal {
	return w.deposited
}

// Withdrawn is the total this worker removed through successful withdrawals.
// Only valid after Run has returned.
func (w *Worker) Withdrawn() decimal.Decimal {
	return w.withdrawn
}
