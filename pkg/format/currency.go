// Package format renders report figures with English thousands separators.
package format

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency returns a dollar amount with two decimals and separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	if amount < 0 && math.Abs(amount) >= 0.005 {
		return "-$" + printer.Sprintf("%.2f", math.Abs(amount))
	}
	return "$" + printer.Sprintf("%.2f", math.Abs(amount))
}

// Number returns an integer with separators (e.g., "8,500").
func Number(n int) string {
	return printer.Sprintf("%d", n)
}

// Decimal returns a value with two decimals and separators, no symbol.
func Decimal(v float64) string {
	return printer.Sprintf("%.2f", v)
}

// Percent renders a ratio as a percentage with one decimal (0.333 -> "33.3%").
func Percent(ratio float64) string {
	return printer.Sprintf("%.1f%%", ratio*100)
}
