package ledger

import (
	"github.com/bankctl/bankctl/internal/storage"
)

// Record converts the account into its snapshot representation, including the
// full entry log. Legacy entries round-trip with their description only.
func (a *Account) Record() storage.AccountRecord {
	rec := storage.AccountRecord{
		Name:          a.Name,
		AccountNumber: a.number,
		Email:         a.Email,
		Balance:       a.balance,
		AccountType:   string(a.kind),
		StreetAddress: nilIfEmpty(a.Address.Street),
		PostalCode:    nilIfEmpty(a.Address.PostalCode),
		City:          nilIfEmpty(a.Address.City),
		Country:       nilIfEmpty(a.Address.Country),
		Transactions:  make([]storage.EntryRecord, 0, len(a.entries)),
	}
	for _, e := range a.entries {
		rec.Transactions = append(rec.Transactions, entryRecord(e))
	}
	return rec
}

// AccountFromRecord rebuilds an account from its snapshot representation,
// dispatching on the recorded account type. A missing or unrecognized type
// deserializes as Savings: old snapshots predate the account_type field and
// Savings was the only kind they could hold. This is a deliberate fallback;
// ParseKind on operator input still rejects unknown kinds.
func AccountFromRecord(rec storage.AccountRecord) *Account {
	kind, err := ParseKind(rec.AccountType)
	if err != nil {
		kind = KindSavings
	}

	a := &Account{
		Name:  rec.Name,
		Email: rec.Email,
		Address: Address{
			Street:     deref(rec.StreetAddress),
			PostalCode: deref(rec.PostalCode),
			City:       deref(rec.City),
			Country:    deref(rec.Country),
		},
		number:  rec.AccountNumber,
		kind:    kind,
		balance: rec.Balance,
	}
	for _, er := range rec.Transactions {
		a.entries = append(a.entries, entryFromRecord(er))
	}
	return a
}

func entryRecord(e Entry) storage.EntryRecord {
	if e.IsLegacy() {
		return storage.EntryRecord{Timestamp: e.Timestamp, Details: e.Details}
	}
	amount, running := e.Amount, e.RunningBalance
	return storage.EntryRecord{
		Timestamp:      e.Timestamp,
		Action:         string(e.Action),
		Amount:         &amount,
		RunningBalance: &running,
	}
}

func entryFromRecord(er storage.EntryRecord) Entry {
	e := Entry{
		Timestamp: er.Timestamp,
		Action:    Action(er.Action),
		Details:   er.Details,
	}
	if er.Amount != nil {
		e.Amount = *er.Amount
	}
	if er.RunningBalance != nil {
		e.RunningBalance = *er.RunningBalance
	}
	return e
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
