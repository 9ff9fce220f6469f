package sim

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestLedgerTotalBalance(t *testing.T) {
	l := NewLedger()
	if _, err := l.CreateAccount("Alice", decimal.NewFromInt(200)); err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}
	if _, err := l.CreateAccount("Bob", decimal.NewFromInt(300)); err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}

	if got := l.TotalBalance(); !got.Equal(decimal.NewFromInt(500)) {
		t.Errorf("TotalBalance = %s, want 500", got)
	}
	if !l.Conserved(decimal.NewFromInt(500)) {
		t.Errorf("Conserved(500) = false on an untouched ledger")
	}
	if l.Conserved(decimal.NewFromInt(400)) {
		t.Errorf("Conserved(400) = true, want false")
	}
}

func TestLedgerRejectsNegativeSeed(t *testing.T) {
	l := NewLedger()
	if _, err := l.CreateAccount("Alice", decimal.NewFromInt(-1)); err == nil {
		t.Errorf("CreateAccount with negative balance succeeded")
	}
	if got := len(l.Accounts()); got != 0 {
		t.Errorf("ledger holds %d accounts after rejected creation, want 0", got)
	}
}
