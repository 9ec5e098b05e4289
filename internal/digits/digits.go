// Package digits maps localized numeral glyphs to ASCII digits.
package digits

import "strings"

var replacer = strings.NewReplacer(
	"۰", "0", "۱", "1", "۲", "2", "۳", "3", "۴", "4",
	"۵", "5", "۶", "6", "۷", "7", "۸", "8", "۹", "9",
	"٠", "0", "١", "1", "٢", "2", "٣", "3", "٤", "4",
	"٥", "5", "٦", "6", "٧", "7", "٨", "8", "٩", "9",
)

// Normalize replaces Persian (U+06F0..U+06F9) and Arabic-Indic (U+0660..U+0669)
// digits with their ASCII equivalents. All other characters pass through.
func Normalize(s string) string {
	return replacer.Replace(s)
}

var numberReplacer = strings.NewReplacer(
	",", "",
	"٬", "",
	"٫", ".",
)

// NormalizeNumber normalizes digits and drops thousands separators so the
// result can be handed to a decimal parser.
func NormalizeNumber(s string) string {
	return strings.TrimSpace(numberReplacer.Replace(Normalize(s)))
}
