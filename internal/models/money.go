package models

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var currencySymbols = regexp.MustCompile(`[€$£¥₹\s']|INR|EUR|USD|CHF`)

// StandardizeAmount strips currency symbols, codes, spaces and thousand separators
// so the result can be handed to decimal.NewFromString.
// A lone comma followed by at most two digits is read as a decimal separator.
func StandardizeAmount(amountStr string) string {
	amountStr = currencySymbols.ReplaceAllString(strings.TrimSpace(amountStr), "")

	switch {
	case strings.Contains(amountStr, ",") && strings.Contains(amountStr, "."):
		if strings.LastIndex(amountStr, ".") < strings.LastIndex(amountStr, ",") {
			// 1.234,56
			amountStr = strings.ReplaceAll(amountStr, ".", "")
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			// 1,234.56
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	case strings.Contains(amountStr, ","):
		parts := strings.Split(amountStr, ",")
		if len(parts) == 2 && len(parts[1]) <= 2 {
			amountStr = strings.Replace(amountStr, ",", ".", 1)
		} else {
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	}

	return amountStr
}

// ParseAmount parses user input such as "12.50", "₹1,200" or "-3,5" into a decimal.
// Empty or non-numeric input is an error; the sign is kept as given.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	standardized := StandardizeAmount(amountStr)
	if standardized == "" {
		return decimal.Zero, fmt.Errorf("amount is empty")
	}

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount string '%s': %w", amountStr, err)
	}
	return amount, nil
}

// MustParseAmount is ParseAmount for literals known to be valid. It panics otherwise.
func MustParseAmount(amountStr string) decimal.Decimal {
	amount, err := ParseAmount(amountStr)
	if err != nil {
		panic(err)
	}
	return amount
}

// FormatAmount renders an amount with two decimals behind the given currency symbol.
func FormatAmount(amount decimal.Decimal, symbol string) string {
	return symbol + amount.StringFixed(2)
}
