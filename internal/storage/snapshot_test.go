package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func sampleSnapshot() Snapshot {
	amount := decimal.NewFromInt(500)
	running := decimal.NewFromInt(500)
	return Snapshot{
		"1234567890": AccountRecord{
			Name:          "Ada Holt",
			AccountNumber: "1234567890",
			Email:         "ada@example.com",
			Balance:       decimal.NewFromInt(500),
			AccountType:   "Savings",
			Transactions: []EntryRecord{
				{Timestamp: "2024-06-01 09:15", Action: "Created", Amount: &amount, RunningBalance: &running},
				{Timestamp: "2019-03-05 11:00", Details: "Deposited $40"},
			},
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank_data.json")

	if err := Save(path, sampleSnapshot()); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	rec, ok := got["1234567890"]
	if !ok {
		t.Fatal("account missing after round trip")
	}
	if !rec.Balance.Equal(decimal.NewFromInt(500)) {
		t.Errorf("balance = %s, want 500", rec.Balance)
	}
	if len(rec.Transactions) != 2 {
		t.Fatalf("transactions = %d, want 2", len(rec.Transactions))
	}
	if rec.Transactions[0].Amount == nil || !rec.Transactions[0].Amount.Equal(decimal.NewFromInt(500)) {
		t.Errorf("structured entry amount = %v", rec.Transactions[0].Amount)
	}
	if rec.Transactions[1].Details != "Deposited $40" || rec.Transactions[1].Amount != nil {
		t.Errorf("legacy entry changed shape: %+v", rec.Transactions[1])
	}
}

func TestSaveWritesBalanceAsNumber(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank_data.json")

	if err := Save(path, sampleSnapshot()); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(raw), `"balance": "`) {
		t.Error("balance serialized as a quoted string, want a JSON number")
	}
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bank_data.json")

	if err := Save(path, sampleSnapshot()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !errors.Is(err, os.ErrNotExist) {
		t.Error("temp file left behind after save")
	}
}

func TestLoadMissingFile(t *testing.T) {
	snap, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("load of missing file: %v", err)
	}
	if len(snap) != 0 {
		t.Errorf("snapshot = %v, want empty", snap)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank_data.json")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	snap, err := Load(path)
	if err != nil {
		t.Fatalf("load of empty file: %v", err)
	}
	if len(snap) != 0 {
		t.Errorf("snapshot = %v, want empty", snap)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank_data.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrCorruptSnapshot) {
		t.Errorf("err = %v, want ErrCorruptSnapshot", err)
	}
}
