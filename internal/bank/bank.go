// Package bank is the account store: it owns every account keyed by account
// number, enforces the creation and update rules, and persists the full
// snapshot after each mutation.
package bank

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bankctl/bankctl/internal/ledger"
	"github.com/bankctl/bankctl/internal/storage"
	"github.com/bankctl/bankctl/internal/validation"
)

// Notifier sends the account-creation notice. Delivery is best effort: a
// failure is reported but never rolls back the created account.
type Notifier interface {
	AccountCreated(email, name, number string, balance decimal.Decimal) error
}

// NotifyFailure receives notification errors for reporting. Wired by the app
// layer; nil means failures are dropped.
type NotifyFailure func(err error)

// Bank is the single owner of all accounts and the only writer of the
// snapshot file. Single-operator tool: no locking, interleaved processes
// would clobber each other's full-snapshot writes.
type Bank struct {
	snapshotPath string
	notifier     Notifier
	onNotifyErr  NotifyFailure
	accounts     map[string]*ledger.Account
}

// New creates an empty store writing to snapshotPath. notifier may be nil
// when mail is not configured.
func New(snapshotPath string, notifier Notifier, onNotifyErr NotifyFailure) *Bank {
	return &Bank{
		snapshotPath: snapshotPath,
		notifier:     notifier,
		onNotifyErr:  onNotifyErr,
		accounts:     make(map[string]*ledger.Account),
	}
}

// Restore loads the snapshot from disk. A missing or empty snapshot yields an
// empty store. A corrupt snapshot also yields an empty store and returns
// storage.ErrCorruptSnapshot so the caller can report it and carry on.
func (b *Bank) Restore() error {
	b.accounts = make(map[string]*ledger.Account)

	snap, err := storage.Load(b.snapshotPath)
	if err != nil {
		return err
	}
	for number, rec := range snap {
		b.accounts[number] = ledger.AccountFromRecord(rec)
	}
	return nil
}

// Persist serializes every account into the flat snapshot mapping and writes
// it, replacing the previous snapshot in full.
func (b *Bank) Persist() error {
	snap := make(storage.Snapshot, len(b.accounts))
	for number, acc := range b.accounts {
		snap[number] = acc.Record()
	}
	return storage.Save(b.snapshotPath, snap)
}

// GenerateAccountNumber produces a random 10-digit number not already
// assigned. Collisions are unlikely but real, so it retries until free.
func (b *Bank) GenerateAccountNumber() string {
	for {
		number := strconv.FormatInt(rand.Int64N(9_000_000_000)+1_000_000_000, 10)
		if _, taken := b.accounts[number]; !taken {
			return number
		}
	}
}

// CreateRequest carries the validated-on-entry fields for a new account.
type CreateRequest struct {
	Name           string
	Email          string
	Kind           string
	InitialBalance decimal.Decimal
	Address        ledger.Address
}

// CreateAccount validates the request, allocates an account number, inserts
// the new account, persists the store and fires the creation notice. The
// validation order is fixed: email syntax, email uniqueness, non-empty
// name/email, non-negative balance, known kind.
func (b *Bank) CreateAccount(req CreateRequest) (*ledger.Account, error) {
	if !validation.ValidEmail(req.Email) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEmail, req.Email)
	}
	if b.emailTaken(req.Email, "") {
		return nil, ErrDuplicateEmail
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		return nil, ErrEmptyField
	}
	if req.InitialBalance.IsNegative() {
		return nil, ErrNegativeBalance
	}
	kind, err := ledger.ParseKind(req.Kind)
	if err != nil {
		return nil, err
	}

	number := b.GenerateAccountNumber()
	acc := ledger.NewAccount(req.Name, number, req.Email, req.InitialBalance, kind, req.Address)
	b.accounts[number] = acc

	if err := b.Persist(); err != nil {
		delete(b.accounts, number)
		return nil, err
	}

	if b.notifier != nil {
		if err := b.notifier.AccountCreated(acc.Email, acc.Name, number, req.InitialBalance); err != nil && b.onNotifyErr != nil {
			b.onNotifyErr(err)
		}
	}
	return acc, nil
}

// GetAccount looks an account up by number. A false result is a normal
// outcome the caller handles, not an error.
func (b *Bank) GetAccount(number string) (*ledger.Account, bool) {
	acc, ok := b.accounts[number]
	return acc, ok
}

// Accounts returns all accounts ordered by account number.
func (b *Bank) Accounts() []*ledger.Account {
	out := make([]*ledger.Account, 0, len(b.accounts))
	for _, acc := range b.accounts {
		out = append(out, acc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number() < out[j].Number() })
	return out
}

// AccountsByKind returns the accounts of one kind, ordered by number.
func (b *Bank) AccountsByKind(kind ledger.Kind) []*ledger.Account {
	var out []*ledger.Account
	for _, acc := range b.Accounts() {
		if acc.Kind() == kind {
			out = append(out, acc)
		}
	}
	return out
}

// Deposit credits the account and persists the store.
func (b *Bank) Deposit(number string, amount decimal.Decimal) (*ledger.Account, error) {
	acc, ok := b.accounts[number]
	if !ok {
		return nil, ErrAccountNotFound
	}
	if err := acc.Deposit(amount); err != nil {
		return nil, err
	}
	return acc, b.Persist()
}

// Withdraw debits the account under its kind's policy and persists the store.
func (b *Bank) Withdraw(number string, amount decimal.Decimal) (*ledger.Account, error) {
	acc, ok := b.accounts[number]
	if !ok {
		return nil, ErrAccountNotFound
	}
	if err := acc.Withdraw(amount); err != nil {
		return nil, err
	}
	return acc, b.Persist()
}

// UpdateRequest carries the optional fields of an account update. Empty
// fields are left unchanged.
type UpdateRequest struct {
	Name       string
	Email      string
	Street     string
	PostalCode string
	City       string
	Country    string
}

// Skipped describes a field that failed its constraint during an update and
// was left unchanged.
type Skipped struct {
	Field  string
	Reason string
}

// UpdateAccountDetails applies every non-empty field that passes its own
// constraint. A failing field is skipped with a reason, not fatal: the other
// fields in the same call still apply, and the store is persisted either way.
func (b *Bank) UpdateAccountDetails(number string, req UpdateRequest) ([]Skipped, error) {
	acc, ok := b.accounts[number]
	if !ok {
		return nil, ErrAccountNotFound
	}

	var skipped []Skipped
	skip := func(field string, err error) {
		skipped = append(skipped, Skipped{Field: field, Reason: err.Error()})
	}

	if req.Name != "" {
		if err := validation.ValidateName(req.Name); err != nil {
			skip("name", err)
		} else {
			acc.Name = strings.TrimSpace(req.Name)
		}
	}
	if req.Email != "" {
		switch {
		case !validation.ValidEmail(req.Email):
			skip("email", errors.New("invalid email format"))
		case b.emailTaken(req.Email, number):
			skip("email", errors.New("already associated with another account"))
		default:
			acc.Email = req.Email
		}
	}
	if req.Street != "" {
		if err := validation.ValidateStreetAddress(req.Street); err != nil {
			skip("street address", err)
		} else {
			acc.Address.Street = strings.TrimSpace(req.Street)
		}
	}
	if req.PostalCode != "" {
		if err := validation.ValidatePostalCode(req.PostalCode); err != nil {
			skip("postal code", err)
		} else {
			acc.Address.PostalCode = strings.TrimSpace(req.PostalCode)
		}
	}
	if req.City != "" {
		if err := validation.ValidateCity(req.City); err != nil {
			skip("city", err)
		} else {
			acc.Address.City = strings.TrimSpace(req.City)
		}
	}
	if req.Country != "" {
		if err := validation.ValidateCountry(req.Country); err != nil {
			skip("country", err)
		} else {
			acc.Address.Country = strings.TrimSpace(req.Country)
		}
	}

	return skipped, b.Persist()
}

func (b *Bank) emailTaken(email, exceptNumber string) bool {
	for number, acc := range b.accounts {
		if number != exceptNumber && acc.Email == email {
			return true
		}
	}
	return false
}
