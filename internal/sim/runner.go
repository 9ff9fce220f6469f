package sim

import (
	"context"
	"log/slog"
	"sync"

	"ledger/internal/account"
	"ledger/internal/util"

	"github.com/shopspring/decimal"
)

// Balance is one account's final state in a Result.
type Balance struct {
	Holder string
	Amount decimal.Decimal
}

// Result is the final report of a simulation run.
type Result struct {
	Balances     []Balance
	InitialTotal decimal.Decimal
	FinalTotal   decimal.Decimal
	Deposited    decimal.Decimal
	Withdrawn    decimal.Decimal
	Interrupted  bool
}

// Conserved reports whether the final total matches the seeded funds plus
// net deposits. Transfers must never move it, in either direction.
func (r Result) Conserved() bool {
	want := r.InitialTotal.Add(r.Deposited).Sub(r.Withdrawn)
	return r.FinalTotal.Equal(want)
}

// Runner seeds the ledger and drives the configured number of workers
// against it.
type Runner struct {
	cfg Config
	log *slog.Logger
}

func NewRunner(cfg Config, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{cfg: cfg, log: log}
}

// Run executes the whole simulation and reports the final balances. A
// cancelled ctx stops the workers between operations; the report is still
// produced and still conserved, since every operation is atomic.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	ledger := NewLedger()
	for _, seed := range r.cfg.Accounts {
		if _, err := ledger.CreateAccount(seed.Holder, decimal.NewFromInt(seed.Balance)); err != nil {
			return Result{}, err
		}
	}
	initial := ledger.TotalBalance()

	coord := account.NewCoordinator(r.log)
	accounts := ledger.Accounts()

	workers := make([]*Worker, r.cfg.Workers)
	var wg sync.WaitGroup
	for i := range workers {
		w := NewWorker(i, accounts, coord, r.cfg, r.log)
		workers[i] = w
		util.Go(&wg, func() {
			if err := w.Run(ctx); err != nil {
				r.log.Info("worker stopped early", "worker", w.id, "reason", err)
			}
		})
	}
	wg.Wait()

	result := Result{
		InitialTotal: initial,
		FinalTotal:   ledger.TotalBalance(),
		Deposited:    decimal.Zero,
		Withdrawn:    decimal.Zero,
		Interrupted:  ctx.Err() != nil,
	}
	for _, w := range workers {
		result.Deposited = result.Deposited.Add(w.Deposited())
		result.Withdrawn = result.Withdrawn.Add(w.Withdrawn())
	}
	for _, a := range accounts {
		result.Balances = append(result.Balances, Balance{Holder: a.Holder(), Amount: a.Balance()})
	}
	return result, nil
}
