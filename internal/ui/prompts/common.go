package prompts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// PromptInput prompts for a generic text input with optional default and validator
func PromptInput(message string, defaultValue string, validator func(string) error) (string, error) {
	var inputVal string

	input := huh.NewInput().
		Title(message).
		Value(&inputVal)

	if defaultValue != "" {
		input.Placeholder(defaultValue)
	}

	if validator != nil {
		input.Validate(validator)
	}

	err := input.Run()
	if err != nil {
		return "", err
	}

	if inputVal == "" && defaultValue != "" {
		return defaultValue, nil
	}

	return inputVal, nil
}

// PromptOptionalInput prompts for a value that may be left empty to keep the
// current one; the validator only runs on non-empty input.
func PromptOptionalInput(message string, validator func(string) error) (string, error) {
	var inputVal string

	err := huh.NewInput().
		Title(message).
		Placeholder("press Enter to keep current").
		Value(&inputVal).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" || validator == nil {
				return nil
			}
			return validator(s)
		}).
		Run()

	return strings.TrimSpace(inputVal), err
}

// PromptPassword prompts for a masked password input
func PromptPassword(message string, validator func(string) error) (string, error) {
	var password string

	input := huh.NewInput().
		Title(message).
		EchoMode(huh.EchoModePassword).
		Value(&password)

	if validator != nil {
		input.Validate(validator)
	}

	err := input.Run()
	return password, err
}

// PromptConfirm prompts for yes/no confirmation
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	confirm := defaultValue

	err := huh.NewConfirm().
		Title(message).
		Value(&confirm).
		Affirmative("Yes").
		Negative("No").
		Run()

	return confirm, err
}

// PromptSelect prompts for a selection from a list of options
func PromptSelect(message string, options []string, defaultOption string) (string, error) {
	selected := defaultOption

	var opts []huh.Option[string]
	for _, o := range options {
		opts = append(opts, huh.NewOption(o, o))
	}

	err := huh.NewSelect[string]().
		Title(message).
		Options(opts...).
		Value(&selected).
		Run()

	return selected, err
}

// PromptRequired wraps a validator so the field also rejects empty input.
func PromptRequired(field string, validator func(string) error) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		if validator != nil {
			return validator(s)
		}
		return nil
	}
}
