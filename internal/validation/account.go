// Package validation holds the field rules shared by account creation and
// account update. Every validator has the func(string) error shape so it can
// be handed straight to a huh input.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Minimum lengths for the optional address fields. The street rule is
// stricter than the rest; the same thresholds apply at creation and update.
const (
	MinStreetLen  = 5
	MinPostalLen  = 3
	MinCityLen    = 3
	MinCountryLen = 3

	MaxNameLen = 100
)

// emailPattern is the usual local-part@domain.tld shape.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

// ValidEmail reports whether the address matches the expected shape.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidateEmail is ValidEmail in validator shape.
func ValidateEmail(val string) error {
	if !ValidEmail(strings.TrimSpace(val)) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// ValidateName checks the account holder's name.
func ValidateName(val string) error {
	name := strings.TrimSpace(val)
	if name == "" {
		return fmt.Errorf("name can't be empty")
	}
	if len(name) > MaxNameLen {
		return fmt.Errorf("name too long (max %d characters)", MaxNameLen)
	}
	return nil
}

// ValidateAmount checks a deposit/withdrawal amount: a number greater than
// zero.
func ValidateAmount(val string) error {
	amount, err := decimal.NewFromString(strings.TrimSpace(val))
	if err != nil {
		return fmt.Errorf("invalid amount: must be a number")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("amount must be greater than zero")
	}
	return nil
}

// ValidateInitialBalance checks an opening balance: empty means zero, and
// negative values are rejected.
func ValidateInitialBalance(val string) error {
	input := strings.TrimSpace(val)
	if input == "" {
		return nil
	}
	balance, err := decimal.NewFromString(input)
	if err != nil {
		return fmt.Errorf("invalid amount: must be a number")
	}
	if balance.IsNegative() {
		return fmt.Errorf("initial balance can't be negative")
	}
	return nil
}

// ValidateAccountNumber checks the 10-digit account number shape.
func ValidateAccountNumber(val string) error {
	number := strings.TrimSpace(val)
	if len(number) != 10 {
		return fmt.Errorf("account number must be 10 digits")
	}
	for _, c := range number {
		if c < '0' || c > '9' {
			return fmt.Errorf("account number must contain only digits")
		}
	}
	return nil
}

// ValidateStreetAddress checks the street address minimum length.
func ValidateStreetAddress(val string) error {
	return minLen("street address", val, MinStreetLen)
}

// ValidatePostalCode checks the postal code minimum length.
func ValidatePostalCode(val string) error {
	return minLen("postal code", val, MinPostalLen)
}

// ValidateCity checks the city minimum length.
func ValidateCity(val string) error {
	return minLen("city", val, MinCityLen)
}

// ValidateCountry checks the country minimum length.
func ValidateCountry(val string) error {
	return minLen("country", val, MinCountryLen)
}

func minLen(field, val string, min int) error {
	if len(strings.TrimSpace(val)) < min {
		return fmt.Errorf("%s must be at least %d characters long", field, min)
	}
	return nil
}
