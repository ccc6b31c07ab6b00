package exporter

import "github.com/shopspring/decimal"

// FormatDecimal formats a decimal with exactly two decimal places, rounding
// half away from zero
func FormatDecimal(d decimal.Decimal) string {
	return d.StringFixed(2)
}
