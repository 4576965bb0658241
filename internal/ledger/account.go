package ledger

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Kind discriminates the account variants. There is deliberately no untagged
// zero kind: accounts only come into existence through NewAccount or
// AccountFromRecord, both of which pin a concrete kind with a withdrawal
// policy behind it.
type Kind string

const (
	KindSavings  Kind = "Savings"
	KindChecking Kind = "Checking"
)

// savingsWithdrawalLimit caps a single savings withdrawal at $100.
var savingsWithdrawalLimit = decimal.NewFromInt(100)

type withdrawalPolicy func(balance, amount decimal.Decimal) error

// withdrawalPolicies selects the per-kind withdrawal rule, picked at
// construction and at deserialization time.
var withdrawalPolicies = map[Kind]withdrawalPolicy{
	KindSavings: func(balance, amount decimal.Decimal) error {
		if amount.GreaterThan(savingsWithdrawalLimit) {
			return fmt.Errorf("%w: the maximum you can withdraw is $%s",
				ErrWithdrawalLimit, savingsWithdrawalLimit.StringFixed(2))
		}
		return checkFunds(balance, amount)
	},
	KindChecking: checkFunds,
}

func checkFunds(balance, amount decimal.Decimal) error {
	if amount.GreaterThan(balance) {
		return ErrInsufficientFunds
	}
	return nil
}

// ParseKind validates operator input for an account kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "savings":
		return KindSavings, nil
	case "checking":
		return KindChecking, nil
	}
	return "", fmt.Errorf("%w: %q (must be Savings or Checking)", ErrUnknownKind, s)
}

// Address holds the optional postal address fields of an account holder.
type Address struct {
	Street     string
	PostalCode string
	City       string
	Country    string
}

// Account is a single holder's account. The balance and the entry log are
// only reachable through Deposit and Withdraw so that the balance always
// equals the running balance of the most recent entry; the account number is
// immutable after creation.
type Account struct {
	Name    string
	Email   string
	Address Address

	number  string
	kind    Kind
	balance decimal.Decimal
	entries []Entry
}

// NewAccount opens an account and writes the creation entry. Validation and
// account-number allocation are the store's job.
func NewAccount(name, number, email string, initial decimal.Decimal, kind Kind, addr Address) *Account {
	a := &Account{
		Name:    name,
		Email:   email,
		Address: addr,
		number:  number,
		kind:    kind,
		balance: initial,
	}
	a.entries = append(a.entries, NewEntry(ActionCreated, initial, initial))
	return a
}

func (a *Account) Number() string {
	return a.number
}

func (a *Account) Kind() Kind {
	return a.kind
}

func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// Entries returns a copy of the entry log.
func (a *Account) Entries() []Entry {
	out := make([]Entry, len(a.entries))
	copy(out, a.entries)
	return out
}

// Deposit credits the account and appends a Deposit entry. The amount must be
// strictly positive; a rejected deposit leaves balance and log untouched.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: deposit must be greater than zero", ErrInvalidAmount)
	}
	a.balance = a.balance.Add(amount)
	a.entries = append(a.entries, NewEntry(ActionDeposit, amount, a.balance))
	return nil
}

// Withdraw debits the account under the kind's withdrawal policy and appends
// a Withdrawal entry. A rejected withdrawal leaves balance and log untouched.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: withdrawal must be greater than zero", ErrInvalidAmount)
	}
	policy, ok := withdrawalPolicies[a.kind]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKind, a.kind)
	}
	if err := policy(a.balance, amount); err != nil {
		return err
	}
	a.balance = a.balance.Sub(amount)
	a.entries = append(a.entries, NewEntry(ActionWithdrawal, amount, a.balance))
	return nil
}

// FormattedBalance renders the balance with thousands separators and two
// decimal places, e.g. "$1,234.50".
func (a *Account) FormattedBalance() string {
	return "$" + FormatAmount(a.balance)
}

// FormatAmount renders a money value with thousands separators and two
// decimal places.
func FormatAmount(d decimal.Decimal) string {
	f, _ := d.Float64()
	return humanize.FormatFloat("#,###.##", f)
}
