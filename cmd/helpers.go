package cmd

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bankctl/bankctl/internal/app"
	"github.com/bankctl/bankctl/internal/ui/prompts"
)

// resolveAccountNumber takes the account number from the positional args or
// falls back to an interactive prompt with completion over known numbers.
func resolveAccountNumber(application *app.App, args []string, idx int) (string, error) {
	if len(args) > idx {
		return strings.TrimSpace(args[idx]), nil
	}

	var known []string
	for _, acc := range application.Bank.Accounts() {
		known = append(known, acc.Number())
	}
	return prompts.PromptAccountNumber(known)
}

// resolveAmount takes a money amount from the positional args or prompts for
// one.
func resolveAmount(args []string, idx int, message string) (decimal.Decimal, error) {
	var input string
	if len(args) > idx {
		input = args[idx]
	} else {
		var err error
		input, err = prompts.PromptAmount(message)
		if err != nil {
			return decimal.Zero, err
		}
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(input))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: must be a number", input)
	}
	return amount, nil
}
