package account

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/bankctl/bankctl/internal/app"
	"github.com/bankctl/bankctl/internal/bank"
	"github.com/bankctl/bankctl/internal/ledger"
	"github.com/bankctl/bankctl/internal/ui"
	"github.com/bankctl/bankctl/internal/ui/prompts"
	"github.com/bankctl/bankctl/internal/validation"
)

type createFlags struct {
	Name       string
	Email      string
	Kind       string
	Balance    string
	Street     string
	PostalCode string
	City       string
	Country    string
}

// AccountCreator collects the request step by step and hands it to the store.
type AccountCreator struct {
	bank *bank.Bank
	req  bank.CreateRequest
}

func NewCreateCmd(application *app.App) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new Savings or Checking account",
		Long: `Create a new bank account of kind Savings or Checking.

A fresh 10-digit account number is allocated, the account is persisted, and
the holder is emailed their account details when mail is configured.

Savings accounts cap single withdrawals at $100; checking accounts have no
per-transaction cap.`,
		Example: `  # Create a checking account with an opening balance
  bankctl account create -n "Ada Holt" -e ada@example.com -k Checking -b 500

  # Walk through the interactive form
  bankctl account create`,
		RunE: func(cmd *cobra.Command, args []string) error {
			creator := &AccountCreator{bank: application.Bank}

			hasFlags := cmd.Flags().Changed("name") ||
				cmd.Flags().Changed("email") ||
				cmd.Flags().Changed("kind")

			if hasFlags {
				return creator.FlagsMode(flags)
			}
			return creator.InteractiveMode()
		},
	}

	cmd.Flags().StringVarP(&flags.Name, "name", "n", "", "Account holder's name")
	cmd.Flags().StringVarP(&flags.Email, "email", "e", "", "Account holder's email")
	cmd.Flags().StringVarP(&flags.Kind, "kind", "k", "", "Account kind (Savings or Checking)")
	cmd.Flags().StringVarP(&flags.Balance, "balance", "b", "", "Initial deposit amount")
	cmd.Flags().StringVar(&flags.Street, "street", "", "Street address (optional)")
	cmd.Flags().StringVar(&flags.PostalCode, "postal-code", "", "Postal code (optional)")
	cmd.Flags().StringVar(&flags.City, "city", "", "City (optional)")
	cmd.Flags().StringVar(&flags.Country, "country", "", "Country (optional)")

	return cmd
}

// FlagsMode builds the account from command-line flags.
func (ac *AccountCreator) FlagsMode(flags *createFlags) error {
	if err := validation.ValidateName(flags.Name); err != nil {
		return err
	}

	balance, err := parseInitialBalance(flags.Balance)
	if err != nil {
		return err
	}

	if err := validateAddressFlags(flags); err != nil {
		return err
	}

	ac.req = bank.CreateRequest{
		Name:           strings.TrimSpace(flags.Name),
		Email:          strings.TrimSpace(flags.Email),
		Kind:           flags.Kind,
		InitialBalance: balance,
		Address: ledger.Address{
			Street:     strings.TrimSpace(flags.Street),
			PostalCode: strings.TrimSpace(flags.PostalCode),
			City:       strings.TrimSpace(flags.City),
			Country:    strings.TrimSpace(flags.Country),
		},
	}

	return ac.save()
}

// InteractiveMode builds the account through prompts.
func (ac *AccountCreator) InteractiveMode() error {
	name, err := prompts.PromptInput("Account holder's name:", "", prompts.PromptRequired("name", validation.ValidateName))
	if err != nil {
		return err
	}

	email, err := prompts.PromptInput("Account holder's email:", "", prompts.PromptRequired("email", validation.ValidateEmail))
	if err != nil {
		return err
	}

	kind, err := prompts.PromptAccountKind()
	if err != nil {
		return err
	}

	balanceInput, err := prompts.PromptInput("Initial deposit amount (press Enter for 0):", "0", validation.ValidateInitialBalance)
	if err != nil {
		return err
	}
	balance, err := parseInitialBalance(balanceInput)
	if err != nil {
		return err
	}

	street, err := prompts.PromptOptionalInput("Street address (optional, at least 5 characters):", validation.ValidateStreetAddress)
	if err != nil {
		return err
	}
	postalCode, err := prompts.PromptOptionalInput("Postal code (optional, at least 3 characters):", validation.ValidatePostalCode)
	if err != nil {
		return err
	}
	city, err := prompts.PromptOptionalInput("City (optional, at least 3 characters):", validation.ValidateCity)
	if err != nil {
		return err
	}
	country, err := prompts.PromptOptionalInput("Country (optional, at least 3 characters):", validation.ValidateCountry)
	if err != nil {
		return err
	}

	ac.req = bank.CreateRequest{
		Name:           strings.TrimSpace(name),
		Email:          strings.TrimSpace(email),
		Kind:           kind,
		InitialBalance: balance,
		Address: ledger.Address{
			Street:     street,
			PostalCode: postalCode,
			City:       city,
			Country:    country,
		},
	}

	ac.displaySummary()

	confirm, err := prompts.PromptConfirm("Proceed with account creation?", true)
	if err != nil {
		return err
	}
	if !confirm {
		pterm.Info.Println("Account creation cancelled.")
		return nil
	}

	return ac.save()
}

func (ac *AccountCreator) save() error {
	acc, err := ac.bank.CreateAccount(ac.req)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	ui.Separator()
	successData := pterm.TableData{
		{pterm.Blue("Account Number"), acc.Number()},
		{pterm.Blue("Account Holder"), acc.Name},
		{pterm.Blue("Account Type"), string(acc.Kind())},
		{pterm.Blue("Balance"), acc.FormattedBalance()},
	}
	pterm.DefaultTable.WithData(successData).Render()
	pterm.Success.Printfln("Account created for %s as a %s account!", acc.Name, acc.Kind())
	return nil
}

func (ac *AccountCreator) displaySummary() {
	ui.Separator()

	addr := ac.req.Address
	tableData := pterm.TableData{
		{pterm.Blue("Name"), ac.req.Name},
		{pterm.Blue("Email"), ac.req.Email},
		{pterm.Blue("Kind"), ac.req.Kind},
		{pterm.Blue("Initial Balance"), "$" + ac.req.InitialBalance.StringFixed(2)},
	}
	if addr.Street != "" {
		tableData = append(tableData, []string{pterm.Blue("Street Address"), addr.Street})
	}
	if addr.PostalCode != "" {
		tableData = append(tableData, []string{pterm.Blue("Postal Code"), addr.PostalCode})
	}
	if addr.City != "" {
		tableData = append(tableData, []string{pterm.Blue("City"), addr.City})
	}
	if addr.Country != "" {
		tableData = append(tableData, []string{pterm.Blue("Country"), addr.Country})
	}

	pterm.DefaultTable.WithData(tableData).Render()
}

func parseInitialBalance(input string) (decimal.Decimal, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return decimal.Zero, nil
	}
	balance, err := decimal.NewFromString(input)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid initial balance %q: must be a number", input)
	}
	return balance, nil
}

func validateAddressFlags(flags *createFlags) error {
	checks := []struct {
		value    string
		validate func(string) error
	}{
		{flags.Street, validation.ValidateStreetAddress},
		{flags.PostalCode, validation.ValidatePostalCode},
		{flags.City, validation.ValidateCity},
		{flags.Country, validation.ValidateCountry},
	}
	for _, c := range checks {
		if c.value == "" {
			continue
		}
		if err := c.validate(c.value); err != nil {
			return err
		}
	}
	return nil
}
