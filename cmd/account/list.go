package account

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/bankctl/bankctl/internal/app"
	"github.com/bankctl/bankctl/internal/ledger"
	"github.com/bankctl/bankctl/internal/ui"
)

type listFlags struct {
	Kind string
}

type ListCommandRunner struct {
	bank  accountLister
	flags *listFlags
}

type accountLister interface {
	Accounts() []*ledger.Account
	AccountsByKind(kind ledger.Kind) []*ledger.Account
}

func NewListCmd(application *app.App) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all accounts with their balances",
		Long: `List all accounts in the system with their current balances.
You can filter by account kind.`,
		Example: `  # List all accounts
  bankctl account list

  # List only savings accounts
  bankctl account list -t Savings`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ListCommandRunner{
				bank:  application.Bank,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Kind, "type", "t", "", "Filter accounts by kind (Savings or Checking)")

	return cmd
}

func (r *ListCommandRunner) Run() error {
	var accounts []*ledger.Account

	if r.flags.Kind != "" {
		kind, err := ledger.ParseKind(r.flags.Kind)
		if err != nil {
			return err
		}
		accounts = r.bank.AccountsByKind(kind)
	} else {
		accounts = r.bank.Accounts()
	}

	if len(accounts) == 0 {
		pterm.Info.Println("No accounts available to display.")
		return nil
	}

	r.displayAccountsList(accounts)
	return nil
}

func (r *ListCommandRunner) displayAccountsList(accounts []*ledger.Account) {
	headers := []string{"Name", "Account Number", "Email", "Balance", "Account Type"}
	tableData := pterm.TableData{headers}

	for _, acc := range accounts {
		// Savings green, checking cyan, so the kinds read apart at a glance.
		var coloredKind, coloredBalance string
		switch acc.Kind() {
		case ledger.KindSavings:
			coloredKind = pterm.Green(acc.Kind())
			coloredBalance = pterm.Green(acc.FormattedBalance())
		case ledger.KindChecking:
			coloredKind = pterm.Cyan(acc.Kind())
			coloredBalance = pterm.Cyan(acc.FormattedBalance())
		default:
			coloredKind = string(acc.Kind())
			coloredBalance = acc.FormattedBalance()
		}

		row := []string{acc.Name, acc.Number(), acc.Email, coloredBalance, coloredKind}
		tableData = append(tableData, row)
	}

	ui.PrintL1Title("Account List")
	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
	pterm.Info.Printf("Total: %d accounts\n", len(accounts))
}
