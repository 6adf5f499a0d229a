package prompts

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/hance08/cashbook/internal/utils"
)

const otherCurrency = "Other"

var commonCurrencies = []string{"INR", "USD", "EUR", "GBP", "JPY", "TWD"}

func PromptInitCurrency(currDefault string) (string, error) {
	selection := currDefault

	var opts []huh.Option[string]
	for _, code := range commonCurrencies {
		opts = append(opts, huh.NewOption(code+" ("+utils.CurrencyGlyph(code)+")", code))
	}
	opts = append(opts, huh.NewOption(otherCurrency, otherCurrency))

	err := huh.NewSelect[string]().
		Title("Welcome to Cashbook! Please set the currency used to display amounts:").
		Description("Amounts in summaries are prefixed with this currency's symbol").
		Options(opts...).
		Value(&selection).
		Run()

	if err != nil {
		return "", err
	}

	if selection != otherCurrency {
		return selection, nil
	}

	customInput, err := PromptInput(
		"Please enter the currency code:",
		"Please use the ISO 4217 standard 3-letter currency code.",
		ValidateCurrencyCode,
	)
	if err != nil {
		return "", err
	}

	return strings.ToUpper(customInput), nil
}

// ValidateCurrencyCode accepts any ISO 4217 code known to the formatter.
func ValidateCurrencyCode(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("currency code is required")
	}
	if !utils.IsKnownCurrency(s) {
		return errors.New("unknown currency code")
	}
	return nil
}
