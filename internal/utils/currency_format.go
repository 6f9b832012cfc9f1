package utils

import (
	"github.com/shopspring/decimal"
)

// AmountPrecision is the number of decimal places of every derived amount.
const AmountPrecision = 2

// RoundAmount rounds amount to precision places, half away from zero.
// Example: 14705.882352 with precision 2 returns 14705.88
// Example: -2.345 with precision 2 returns -2.35
func RoundAmount(amount decimal.Decimal, precision int) decimal.Decimal {
	return amount.Round(int32(precision))
}

// FormatWithPrecision formats an amount with the given precision
// This is a convenience function when you only have the precision value
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}
