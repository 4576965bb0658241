package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/bankctl/bankctl/internal/app"
)

func NewWithdrawCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw [account-number] [amount]",
		Short: "Withdraw funds from an account",
		Long: `Withdraw funds from an account.

Savings accounts are limited to $100 per withdrawal; checking accounts have
no per-transaction limit. Withdrawals beyond the current balance are rejected
for both.`,
		Example: `  # Withdraw 50.00 from account 1234567890
  bankctl withdraw 1234567890 50.00`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := resolveAccountNumber(application, args, 0)
			if err != nil {
				return err
			}
			amount, err := resolveAmount(args, 1, "Amount to withdraw:")
			if err != nil {
				return err
			}

			acc, err := application.Bank.Withdraw(number, amount)
			if err != nil {
				return err
			}

			pterm.Success.Printfln("Successfully withdrew $%s from %s Account", amount.StringFixed(2), acc.Kind())
			pterm.Info.Printfln("New balance: %s", acc.FormattedBalance())
			return nil
		},
	}
}
