package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Action labels a balance-affecting event in an account's log.
type Action string

const (
	ActionCreated    Action = "Created"
	ActionDeposit    Action = "Deposit"
	ActionWithdrawal Action = "Withdrawal"
)

// TimeLayout is the minute-precision stamp written into the snapshot file.
const TimeLayout = "2006-01-02 15:04"

// Entry is one immutable record of a balance-affecting event. RunningBalance
// is the account balance immediately after the event.
//
// Entries written before the structured fields existed carry only a free-text
// Details description; those are resolved on read through ReconcileLegacy and
// are never produced by new writes.
type Entry struct {
	Timestamp      string
	Action         Action
	Amount         decimal.Decimal
	RunningBalance decimal.Decimal
	Details        string
}

// NewEntry stamps an entry with the current wall clock truncated to the
// minute. Amount sign rules are enforced by the account, not here.
func NewEntry(action Action, amount, runningBalance decimal.Decimal) Entry {
	return Entry{
		Timestamp:      time.Now().Format(TimeLayout),
		Action:         action,
		Amount:         amount,
		RunningBalance: runningBalance,
	}
}

// IsLegacy reports whether the entry predates the structured fields and only
// carries a free-text description.
func (e Entry) IsLegacy() bool {
	return e.Action == ""
}

// ReconcileLegacy recovers action, amount and running balance from a legacy
// free-text description. carried is the running balance replayed from the
// entries preceding this one; creation descriptions reset it to the parsed
// amount. A description that matches none of the known patterns is a
// data-quality problem and comes back as ErrUnrecognizedLegacy.
func ReconcileLegacy(details string, carried decimal.Decimal) (Action, decimal.Decimal, decimal.Decimal, error) {
	switch {
	case strings.Contains(details, "Account created with balance"):
		amount, err := amountAfterCurrency(details)
		if err != nil {
			return "", decimal.Zero, carried, err
		}
		return ActionCreated, amount, amount, nil

	case strings.Contains(details, "Deposited"):
		amount, err := amountAfterCurrency(details)
		if err != nil {
			return "", decimal.Zero, carried, err
		}
		return ActionDeposit, amount, carried.Add(amount), nil

	case strings.Contains(details, "Withdrew"):
		amount, err := amountAfterCurrency(details)
		if err != nil {
			return "", decimal.Zero, carried, err
		}
		return ActionWithdrawal, amount, carried.Sub(amount), nil
	}

	return "", decimal.Zero, carried, fmt.Errorf("%w: %q", ErrUnrecognizedLegacy, details)
}

func amountAfterCurrency(details string) (decimal.Decimal, error) {
	_, rest, ok := strings.Cut(details, "$")
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: no currency amount in %q", ErrUnrecognizedLegacy, details)
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(rest))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: bad amount in %q", ErrUnrecognizedLegacy, details)
	}
	return amount, nil
}
