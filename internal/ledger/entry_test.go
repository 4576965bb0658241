package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func TestNewEntryMinutePrecision(t *testing.T) {
	e := NewEntry(ActionDeposit, dec(t, "10"), dec(t, "110"))

	stamp, err := time.Parse(TimeLayout, e.Timestamp)
	if err != nil {
		t.Fatalf("timestamp %q does not match layout: %v", e.Timestamp, err)
	}
	if stamp.Second() != 0 {
		t.Errorf("timestamp should be truncated to the minute, got %q", e.Timestamp)
	}
	if e.IsLegacy() {
		t.Error("structured entry reported as legacy")
	}
}

func TestReconcileLegacyDeposit(t *testing.T) {
	action, amount, balance, err := ReconcileLegacy("Deposited $40", dec(t, "100"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if action != ActionDeposit {
		t.Errorf("action = %q, want %q", action, ActionDeposit)
	}
	if !amount.Equal(dec(t, "40")) {
		t.Errorf("amount = %s, want 40", amount)
	}
	if !balance.Equal(dec(t, "140")) {
		t.Errorf("balance = %s, want 140", balance)
	}
}

func TestReconcileLegacyCreated(t *testing.T) {
	// Creation resets the replayed balance regardless of what was carried.
	action, amount, balance, err := ReconcileLegacy("Account created with balance $500.00", dec(t, "999"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if action != ActionCreated {
		t.Errorf("action = %q, want %q", action, ActionCreated)
	}
	if !amount.Equal(dec(t, "500")) {
		t.Errorf("amount = %s, want 500", amount)
	}
	if !balance.Equal(dec(t, "500")) {
		t.Errorf("balance = %s, want 500", balance)
	}
}

func TestReconcileLegacyWithdrawal(t *testing.T) {
	action, amount, balance, err := ReconcileLegacy("Withdrew $25.50", dec(t, "100"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if action != ActionWithdrawal {
		t.Errorf("action = %q, want %q", action, ActionWithdrawal)
	}
	if !amount.Equal(dec(t, "25.5")) {
		t.Errorf("amount = %s, want 25.5", amount)
	}
	if !balance.Equal(dec(t, "74.5")) {
		t.Errorf("balance = %s, want 74.5", balance)
	}
}

func TestReconcileLegacyUnknownDescription(t *testing.T) {
	carried := dec(t, "100")
	_, _, balance, err := ReconcileLegacy("Fee charged $10", carried)
	if !errors.Is(err, ErrUnrecognizedLegacy) {
		t.Fatalf("err = %v, want ErrUnrecognizedLegacy", err)
	}
	if !balance.Equal(carried) {
		t.Errorf("carried balance changed on unrecognized entry: %s", balance)
	}
}

func TestReconcileLegacyMissingAmount(t *testing.T) {
	_, _, _, err := ReconcileLegacy("Deposited forty", decimal.Zero)
	if !errors.Is(err, ErrUnrecognizedLegacy) {
		t.Fatalf("err = %v, want ErrUnrecognizedLegacy", err)
	}
}
