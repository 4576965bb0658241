package account

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/bankctl/bankctl/internal/app"
	"github.com/bankctl/bankctl/internal/bank"
	"github.com/bankctl/bankctl/internal/ui"
	"github.com/bankctl/bankctl/internal/ui/prompts"
)

func NewUpdateCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "update [account-number]",
		Short: "Update the details of an account",
		Long: `Update the holder details of an account. Every field can be left empty to
keep its current value. A field failing its own rule is skipped with a
reason; the remaining fields still apply.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var number string
			var err error
			if len(args) > 0 {
				number = args[0]
			} else {
				var known []string
				for _, acc := range application.Bank.Accounts() {
					known = append(known, acc.Number())
				}
				number, err = prompts.PromptAccountNumber(known)
				if err != nil {
					return err
				}
			}

			acc, ok := application.Bank.GetAccount(number)
			if !ok {
				return bank.ErrAccountNotFound
			}

			displayCurrentDetails(acc.Name, acc.Email, acc.Address.Street, acc.Address.PostalCode, acc.Address.City, acc.Address.Country)

			// Field rules are enforced by the store, which skips a failing
			// field with a reason instead of aborting the whole update.
			req := bank.UpdateRequest{}
			if req.Name, err = prompts.PromptOptionalInput("New name:", nil); err != nil {
				return err
			}
			if req.Email, err = prompts.PromptOptionalInput("New email:", nil); err != nil {
				return err
			}
			if req.Street, err = prompts.PromptOptionalInput("New street address:", nil); err != nil {
				return err
			}
			if req.PostalCode, err = prompts.PromptOptionalInput("New postal code:", nil); err != nil {
				return err
			}
			if req.City, err = prompts.PromptOptionalInput("New city:", nil); err != nil {
				return err
			}
			if req.Country, err = prompts.PromptOptionalInput("New country:", nil); err != nil {
				return err
			}

			skipped, err := application.Bank.UpdateAccountDetails(number, req)
			if err != nil {
				return err
			}

			for _, s := range skipped {
				pterm.Warning.Printfln("Skipped %s: %s", s.Field, s.Reason)
			}
			pterm.Success.Println("Account details updated successfully!")
			return nil
		},
	}
}

func displayCurrentDetails(name, email, street, postalCode, city, country string) {
	orNA := func(s string) string {
		if s == "" {
			return "N/A"
		}
		return s
	}

	ui.Separator()
	fmt.Println("Current Information:")
	tableData := pterm.TableData{
		{pterm.Blue("Name"), name},
		{pterm.Blue("Email"), email},
		{pterm.Blue("Street Address"), orNA(street)},
		{pterm.Blue("Postal Code"), orNA(postalCode)},
		{pterm.Blue("City"), orNA(city)},
		{pterm.Blue("Country"), orNA(country)},
	}
	pterm.DefaultTable.WithData(tableData).Render()
}
