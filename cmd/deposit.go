package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/bankctl/bankctl/internal/app"
)

func NewDepositCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "deposit [account-number] [amount]",
		Short: "Deposit funds into an account",
		Long: `Deposit funds into an account. The amount must be greater than zero.

Arguments left out are prompted for interactively.`,
		Example: `  # Deposit 200.00 into account 1234567890
  bankctl deposit 1234567890 200.00

  # Prompt for account number and amount
  bankctl deposit`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := resolveAccountNumber(application, args, 0)
			if err != nil {
				return err
			}
			amount, err := resolveAmount(args, 1, "Amount to deposit:")
			if err != nil {
				return err
			}

			acc, err := application.Bank.Deposit(number, amount)
			if err != nil {
				return err
			}

			pterm.Success.Printfln("Successfully deposited $%s", amount.StringFixed(2))
			pterm.Info.Printfln("New balance: %s", acc.FormattedBalance())
			return nil
		},
	}
}
