package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/bankctl/bankctl/internal/app"
	"github.com/bankctl/bankctl/internal/bank"
	"github.com/bankctl/bankctl/internal/ledger"
)

func NewHistoryCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "history [account-number]",
		Short: "Show the transaction history of an account",
		Long: `Show the full account statement: every transaction with its running
balance, plus the opening balance, closing balance and transaction count.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := resolveAccountNumber(application, args, 0)
			if err != nil {
				return err
			}

			acc, ok := application.Bank.GetAccount(number)
			if !ok {
				return bank.ErrAccountNotFound
			}

			displayStatement(acc)
			return nil
		},
	}
}

func displayStatement(acc *ledger.Account) {
	pterm.DefaultSection.Println("Account Statement")

	infoData := pterm.TableData{
		{pterm.Blue("Account Number"), acc.Number()},
		{pterm.Blue("Account Holder"), acc.Name},
		{pterm.Blue("Account Type"), string(acc.Kind())},
		{pterm.Blue("Current Balance"), acc.FormattedBalance()},
	}
	pterm.DefaultTable.WithData(infoData).Render()

	st := acc.BuildStatement()
	if len(st.Rows) == 0 && len(st.Warnings) == 0 {
		pterm.Info.Println("No transactions to display.")
		return
	}

	tableData := pterm.TableData{{"Date & Time", "Transaction", "Amount", "Balance"}}
	for _, row := range st.Rows {
		amount := row.Amount
		if row.Action == "Withdrawal" {
			amount = pterm.Red(amount)
		}
		tableData = append(tableData, []string{row.Timestamp, row.Action, amount, row.Balance})
	}
	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()

	for _, warning := range st.Warnings {
		pterm.Warning.Println(warning)
	}

	pterm.DefaultSection.WithLevel(2).Println("Statement Summary")
	summaryData := pterm.TableData{
		{pterm.Blue("Opening Balance"), "$" + st.OpeningBalance.StringFixed(2)},
		{pterm.Blue("Closing Balance"), "$" + st.ClosingBalance.StringFixed(2)},
		{pterm.Blue("Total Transactions"), fmt.Sprintf("%d", st.Transactions)},
	}
	pterm.DefaultTable.WithData(summaryData).Render()
}
