package bank

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/bankctl/bankctl/internal/ledger"
	"github.com/bankctl/bankctl/internal/storage"
	"github.com/bankctl/bankctl/internal/validation"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

// fakeNotifier records creation notices and can be told to fail.
type fakeNotifier struct {
	calls []string
	err   error
}

func (f *fakeNotifier) AccountCreated(email, name, number string, balance decimal.Decimal) error {
	f.calls = append(f.calls, email)
	return f.err
}

func newTestBank(t *testing.T) *Bank {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "bank_data.json"), nil, nil)
}

func createAccount(t *testing.T, b *Bank, email, kind, balance string) *ledger.Account {
	t.Helper()
	acc, err := b.CreateAccount(CreateRequest{
		Name:           "Ada Holt",
		Email:          email,
		Kind:           kind,
		InitialBalance: dec(t, balance),
	})
	if err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}
	return acc
}

func TestCreateAccountValidation(t *testing.T) {
	b := newTestBank(t)
	createAccount(t, b, "taken@example.com", "Savings", "0")

	tests := []struct {
		name    string
		req     CreateRequest
		wantErr error
	}{
		{
			name:    "invalid email",
			req:     CreateRequest{Name: "Ada", Email: "not-an-email", Kind: "Savings"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "duplicate email",
			req:     CreateRequest{Name: "Ada", Email: "taken@example.com", Kind: "Savings"},
			wantErr: ErrDuplicateEmail,
		},
		{
			name:    "empty name",
			req:     CreateRequest{Name: "  ", Email: "new@example.com", Kind: "Savings"},
			wantErr: ErrEmptyField,
		},
		{
			name: "negative balance",
			req: CreateRequest{Name: "Ada", Email: "new@example.com", Kind: "Savings",
				InitialBalance: decimal.NewFromInt(-1)},
			wantErr: ErrNegativeBalance,
		},
		{
			name:    "unknown kind",
			req:     CreateRequest{Name: "Ada", Email: "new@example.com", Kind: "Premium"},
			wantErr: ledger.ErrUnknownKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := b.CreateAccount(tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if got := len(b.Accounts()); got != 1 {
		t.Errorf("accounts = %d, want 1 (failed creations must not insert)", got)
	}
}

func TestCreateAccountAllocatesUniqueNumbers(t *testing.T) {
	b := newTestBank(t)

	seen := make(map[string]bool)
	for i := 0; i < 40; i++ {
		acc := createAccount(t, b, fmt.Sprintf("holder%d@example.com", i), "Checking", "0")

		number := acc.Number()
		if err := validation.ValidateAccountNumber(number); err != nil {
			t.Fatalf("account number %q: %v", number, err)
		}
		if seen[number] {
			t.Fatalf("account number %q assigned twice", number)
		}
		seen[number] = true
	}
}

func TestGetAccountAbsent(t *testing.T) {
	b := newTestBank(t)

	if _, ok := b.GetAccount("0000000000"); ok {
		t.Error("lookup of unknown number reported ok")
	}
}

func TestCreateAccountNotifies(t *testing.T) {
	notifier := &fakeNotifier{}
	b := New(filepath.Join(t.TempDir(), "bank_data.json"), notifier, nil)

	createAccount(t, b, "ada@example.com", "Savings", "500")

	if len(notifier.calls) != 1 || notifier.calls[0] != "ada@example.com" {
		t.Errorf("notifier calls = %v, want one call for ada@example.com", notifier.calls)
	}
}

func TestNotificationFailureDoesNotRollBack(t *testing.T) {
	notifier := &fakeNotifier{err: errors.New("smtp down")}
	var reported error
	b := New(filepath.Join(t.TempDir(), "bank_data.json"), notifier, func(err error) { reported = err })

	acc, err := b.CreateAccount(CreateRequest{
		Name:  "Ada Holt",
		Email: "ada@example.com",
		Kind:  "Savings",
	})
	if err != nil {
		t.Fatalf("creation failed on notifier error: %v", err)
	}
	if _, ok := b.GetAccount(acc.Number()); !ok {
		t.Error("account missing after notifier failure")
	}
	if reported == nil {
		t.Error("notifier failure was not reported")
	}
}

func TestPersistRestoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank_data.json")
	b := New(path, nil, nil)

	acc, err := b.CreateAccount(CreateRequest{
		Name:           "Ada Holt",
		Email:          "ada@example.com",
		Kind:           "Checking",
		InitialBalance: dec(t, "500"),
		Address:        ledger.Address{City: "Berlin"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.Deposit(acc.Number(), dec(t, "200")); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Withdraw(acc.Number(), dec(t, "150")); err != nil {
		t.Fatal(err)
	}

	reloaded := New(path, nil, nil)
	if err := reloaded.Restore(); err != nil {
		t.Fatalf("restore: %v", err)
	}

	got, ok := reloaded.GetAccount(acc.Number())
	if !ok {
		t.Fatal("account missing after restore")
	}
	if !got.Balance().Equal(dec(t, "550")) {
		t.Errorf("balance = %s, want 550", got.Balance())
	}
	if got.Kind() != ledger.KindChecking {
		t.Errorf("kind = %q, want Checking", got.Kind())
	}
	if got.Address.City != "Berlin" {
		t.Errorf("city = %q, want Berlin", got.Address.City)
	}
	if entries := got.Entries(); len(entries) != 3 {
		t.Errorf("entries = %d, want 3", len(entries))
	}
}

func TestRestoreMissingSnapshot(t *testing.T) {
	b := newTestBank(t)

	if err := b.Restore(); err != nil {
		t.Fatalf("restore of missing snapshot: %v", err)
	}
	if got := len(b.Accounts()); got != 0 {
		t.Errorf("accounts = %d, want 0", got)
	}
}

func TestRestoreCorruptSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank_data.json")
	if err := writeFile(path, "{not json"); err != nil {
		t.Fatal(err)
	}

	b := New(path, nil, nil)
	err := b.Restore()
	if !errors.Is(err, storage.ErrCorruptSnapshot) {
		t.Fatalf("err = %v, want ErrCorruptSnapshot", err)
	}
	if got := len(b.Accounts()); got != 0 {
		t.Errorf("accounts = %d, want 0 after corrupt snapshot", got)
	}
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func TestUpdateAccountDetailsSkipSemantics(t *testing.T) {
	b := newTestBank(t)
	acc := createAccount(t, b, "ada@example.com", "Savings", "0")
	other := createAccount(t, b, "bea@example.com", "Checking", "0")

	skipped, err := b.UpdateAccountDetails(acc.Number(), UpdateRequest{
		Name:   "Ada H. Holt",
		Email:  "bea@example.com", // taken by the other account
		Street: "12 Long Road",
		City:   "Ur", // below the 3-char minimum
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	fields := make(map[string]bool)
	for _, s := range skipped {
		fields[s.Field] = true
	}
	if !fields["email"] || !fields["city"] {
		t.Errorf("skipped = %v, want email and city", skipped)
	}
	if len(skipped) != 2 {
		t.Errorf("skipped = %v, want exactly 2", skipped)
	}

	if acc.Name != "Ada H. Holt" {
		t.Errorf("name = %q, valid field should still apply", acc.Name)
	}
	if acc.Address.Street != "12 Long Road" {
		t.Errorf("street = %q, valid field should still apply", acc.Address.Street)
	}
	if acc.Email != "ada@example.com" {
		t.Errorf("email = %q, duplicate email must not apply", acc.Email)
	}
	if other.Email != "bea@example.com" {
		t.Errorf("other account's email changed: %q", other.Email)
	}
}

func TestUpdateAccountDetailsUnknownAccount(t *testing.T) {
	b := newTestBank(t)

	_, err := b.UpdateAccountDetails("0000000000", UpdateRequest{Name: "X"})
	if !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("err = %v, want ErrAccountNotFound", err)
	}
}

func TestDepositUnknownAccount(t *testing.T) {
	b := newTestBank(t)

	if _, err := b.Deposit("0000000000", dec(t, "10")); !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("deposit err = %v, want ErrAccountNotFound", err)
	}
	if _, err := b.Withdraw("0000000000", dec(t, "10")); !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("withdraw err = %v, want ErrAccountNotFound", err)
	}
}
