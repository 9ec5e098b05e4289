package chart

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatAmount renders d with comma thousands separators, keeping any
// fractional digits exactly: 1234567.5 -> "1,234,567.5".
func FormatAmount(d decimal.Decimal) string {
	abs := d.Abs()
	whole := abs.Truncate(0)

	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString(printer.Sprintf("%d", whole.IntPart()))
	if frac := abs.Sub(whole); !frac.IsZero() {
		// "0.25" -> ".25"
		b.WriteString(strings.TrimPrefix(frac.String(), "0"))
	}
	return b.String()
}

// formatAxis renders d rounded half-to-even to an integer, comma separated
// and right-aligned in width columns.
func formatAxis(d decimal.Decimal, width int) string {
	s := FormatAmount(d.RoundBank(0))
	if pad := width - len(s); pad > 0 {
		s = strings.Repeat(" ", pad) + s
	}
	return s
}
