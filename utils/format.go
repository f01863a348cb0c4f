package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var thbPrinter = message.NewPrinter(language.English)

// FormatTHB renders an amount in Thai Baht with en-US digit grouping,
// e.g. 1500 -> "THB 1,500".
func FormatTHB(amount int64) string {
	return thbPrinter.Sprintf("THB %d", amount)
}

// FormatNumber renders a bare amount with en-US digit grouping.
func FormatNumber(amount int64) string {
	return thbPrinter.Sprintf("%d", amount)
}
