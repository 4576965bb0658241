package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/bankctl/bankctl/internal/app"
	"github.com/bankctl/bankctl/internal/bank"
)

func NewBalanceCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "balance [account-number]",
		Short: "Show the current balance of an account",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := resolveAccountNumber(application, args, 0)
			if err != nil {
				return err
			}

			acc, ok := application.Bank.GetAccount(number)
			if !ok {
				return bank.ErrAccountNotFound
			}

			pterm.DefaultBox.
				WithTitle("Balance").
				Println(fmt.Sprintf("%s\n%s",
					pterm.Cyan("Account Holder Name: "+acc.Name),
					pterm.Green("Current balance: "+acc.FormattedBalance())))
			return nil
		},
	}
}
