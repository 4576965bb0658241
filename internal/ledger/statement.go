package ledger

import "github.com/shopspring/decimal"

// StatementRow is one rendered line of an account statement. Withdrawal
// amounts carry a leading minus.
type StatementRow struct {
	Timestamp string
	Action    string
	Amount    string
	Balance   string
}

// Statement is the transaction history report for one account.
type Statement struct {
	Rows           []StatementRow
	OpeningBalance decimal.Decimal
	ClosingBalance decimal.Decimal
	// Transactions counts the log entries excluding the creation entry.
	Transactions int
	// Warnings lists legacy descriptions that could not be classified. Such
	// entries stay in the log untouched but contribute no row and no amount
	// to the replayed balance; skipping them silently would let a zero
	// default corrupt the running-balance chain.
	Warnings []string
}

// BuildStatement resolves every entry, replaying legacy descriptions against
// a running balance carried from zero, and assembles the report.
func (a *Account) BuildStatement() Statement {
	st := Statement{
		ClosingBalance: a.balance,
		Transactions:   len(a.entries) - 1,
	}
	if len(a.entries) == 0 {
		st.Transactions = 0
		return st
	}

	carried := decimal.Zero
	opening := false
	for _, e := range a.entries {
		action, amount, running := e.Action, e.Amount, e.RunningBalance
		if e.IsLegacy() {
			var err error
			action, amount, running, err = ReconcileLegacy(e.Details, carried)
			if err != nil {
				st.Warnings = append(st.Warnings, err.Error())
				continue
			}
		}
		carried = running

		if !opening {
			st.OpeningBalance = running
			opening = true
		}

		label := string(action)
		amountStr := "$" + amount.StringFixed(2)
		switch action {
		case ActionCreated:
			label = "Account created"
		case ActionWithdrawal:
			amountStr = "-$" + amount.StringFixed(2)
		}

		st.Rows = append(st.Rows, StatementRow{
			Timestamp: e.Timestamp,
			Action:    label,
			Amount:    amountStr,
			Balance:   "$" + running.StringFixed(2),
		})
	}
	return st
}
