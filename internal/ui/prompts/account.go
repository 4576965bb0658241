package prompts

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/bankctl/bankctl/internal/ui"
	"github.com/bankctl/bankctl/internal/validation"
)

// PromptAccountKind prompts for the account kind selection.
func PromptAccountKind() (string, error) {
	options := []string{
		"Savings - $100 per-withdrawal limit",
		"Checking - no withdrawal limit",
	}

	selected, err := PromptSelect("Account type:", options, options[0])
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}

	return strings.Split(selected, " ")[0], nil
}

// PromptAccountNumber prompts for an account number with suggestion
// completion over the known numbers.
func PromptAccountNumber(known []string) (string, error) {
	var number string

	prompt := &survey.Input{
		Message: "Account number:",
		Suggest: func(toComplete string) []string {
			var filtered []string
			for _, n := range known {
				if strings.HasPrefix(n, toComplete) {
					filtered = append(filtered, n)
				}
			}
			return filtered
		},
	}

	err := survey.AskOne(prompt, &number,
		survey.WithValidator(func(val interface{}) error {
			s, ok := val.(string)
			if !ok {
				return fmt.Errorf("account number must be a string")
			}
			return validation.ValidateAccountNumber(s)
		}),
		ui.IconOption(),
	)
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}

	return strings.TrimSpace(number), nil
}

// PromptAmount prompts for a positive money amount.
func PromptAmount(message string) (string, error) {
	return PromptInput(message, "", validation.ValidateAmount)
}
