package quotation

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// groupedAmount renders a whole-RWF amount with thousands separators,
// e.g. 37500 -> "37,500". The "grand total equals to" line uses this
// grouped figure, not a spelled-out number.
func groupedAmount(n int64) string {
	return printer.Sprintf("%d", n)
}

// currency prefixes a grouped amount with the RWF unit.
func currency(n int64) string {
	return "RWF " + groupedAmount(n)
}

// roundRWF rounds a derived amount to whole francs for display.
// Internally tax and grand total keep full precision.
func roundRWF(v float64) int64 {
	return int64(math.Round(v))
}
