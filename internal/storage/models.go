package storage

import "github.com/shopspring/decimal"

func init() {
	// The snapshot format stores money as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// EntryRecord is the serialized form of one ledger entry. Structured entries
// carry the action/amount/running_balance triple; legacy entries carry only
// the free-text details field and are resolved on read.
type EntryRecord struct {
	Timestamp      string           `json:"timestamp"`
	Action         string           `json:"action,omitempty"`
	Amount         *decimal.Decimal `json:"amount,omitempty"`
	RunningBalance *decimal.Decimal `json:"running_balance,omitempty"`
	Details        string           `json:"details,omitempty"`
}

// AccountRecord is the serialized form of one account. Address fields are
// nullable in the file.
type AccountRecord struct {
	Name          string          `json:"name"`
	AccountNumber string          `json:"account_number"`
	Email         string          `json:"email"`
	Balance       decimal.Decimal `json:"balance"`
	AccountType   string          `json:"account_type"`
	StreetAddress *string         `json:"street_address"`
	PostalCode    *string         `json:"postal_code"`
	City          *string         `json:"city"`
	Country       *string         `json:"country"`
	Transactions  []EntryRecord   `json:"transactions"`
}

// Snapshot is the full durable state: every account keyed by account number,
// rewritten wholesale on each persist.
type Snapshot map[string]AccountRecord
