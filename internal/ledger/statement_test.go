package ledger

import (
	"strings"
	"testing"

	"github.com/bankctl/bankctl/internal/storage"
)

func TestBuildStatementSignsAndSummary(t *testing.T) {
	a := newTestAccount(t, KindSavings, "500")
	if err := a.Deposit(dec(t, "200")); err != nil {
		t.Fatal(err)
	}
	if err := a.Withdraw(dec(t, "50")); err != nil {
		t.Fatal(err)
	}

	st := a.BuildStatement()

	if len(st.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(st.Rows))
	}
	if st.Rows[0].Action != "Account created" || st.Rows[0].Balance != "$500.00" {
		t.Errorf("creation row = %+v", st.Rows[0])
	}
	if st.Rows[1].Amount != "$200.00" || st.Rows[1].Balance != "$700.00" {
		t.Errorf("deposit row = %+v", st.Rows[1])
	}
	if st.Rows[2].Amount != "-$50.00" || st.Rows[2].Balance != "$650.00" {
		t.Errorf("withdrawal row = %+v", st.Rows[2])
	}

	if !st.OpeningBalance.Equal(dec(t, "500")) {
		t.Errorf("opening = %s, want 500", st.OpeningBalance)
	}
	if !st.ClosingBalance.Equal(dec(t, "650")) {
		t.Errorf("closing = %s, want 650", st.ClosingBalance)
	}
	// The creation entry is not counted as a transaction.
	if st.Transactions != 2 {
		t.Errorf("transactions = %d, want 2", st.Transactions)
	}
	if len(st.Warnings) != 0 {
		t.Errorf("warnings = %v, want none", st.Warnings)
	}
}

func TestBuildStatementReplaysLegacyEntries(t *testing.T) {
	a := AccountFromRecord(storage.AccountRecord{
		Name:          "Ada Holt",
		AccountNumber: "1234567890",
		Email:         "ada@example.com",
		Balance:       dec(t, "115"),
		AccountType:   "Savings",
		Transactions: []storage.EntryRecord{
			{Timestamp: "2019-03-02 09:15", Details: "Account created with balance $100"},
			{Timestamp: "2019-03-05 11:00", Details: "Deposited $40"},
			{Timestamp: "2019-03-09 16:30", Details: "Withdrew $25"},
		},
	})

	st := a.BuildStatement()

	if len(st.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(st.Rows))
	}
	if st.Rows[1].Balance != "$140.00" {
		t.Errorf("deposit balance = %q, want $140.00", st.Rows[1].Balance)
	}
	if st.Rows[2].Amount != "-$25.00" || st.Rows[2].Balance != "$115.00" {
		t.Errorf("withdrawal row = %+v", st.Rows[2])
	}
	if !st.OpeningBalance.Equal(dec(t, "100")) {
		t.Errorf("opening = %s, want 100", st.OpeningBalance)
	}
}

func TestBuildStatementFlagsUnrecognizedLegacy(t *testing.T) {
	a := AccountFromRecord(storage.AccountRecord{
		Name:          "Ada Holt",
		AccountNumber: "1234567890",
		Email:         "ada@example.com",
		Balance:       dec(t, "140"),
		AccountType:   "Savings",
		Transactions: []storage.EntryRecord{
			{Timestamp: "2019-03-02 09:15", Details: "Account created with balance $100"},
			{Timestamp: "2019-03-03 10:00", Details: "Fee charged $10"},
			{Timestamp: "2019-03-05 11:00", Details: "Deposited $40"},
		},
	})

	st := a.BuildStatement()

	if len(st.Warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one", st.Warnings)
	}
	if !strings.Contains(st.Warnings[0], "Fee charged") {
		t.Errorf("warning %q does not name the offending entry", st.Warnings[0])
	}

	// The unrecognized entry contributes nothing; the deposit still replays
	// against the carried balance of 100.
	if len(st.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(st.Rows))
	}
	if st.Rows[1].Balance != "$140.00" {
		t.Errorf("deposit balance = %q, want $140.00", st.Rows[1].Balance)
	}
}
