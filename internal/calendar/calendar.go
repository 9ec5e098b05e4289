// Package calendar converts localized export dates to Gregorian dates.
package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"

	"github.com/tidominer/bankino/internal/digits"
)

// ErrInvalidDate is returned for strings that are not a valid calendar date.
var ErrInvalidDate = errors.New("invalid date")

// Converter turns a localized date string into a standard calendar date.
type Converter interface {
	ToStandardDate(s string) (time.Time, error)
}

// Jalali converts Solar Hijri dates such as "۱۴۰۳/۰۱/۱۵" or "1403-01-15"
// to Gregorian dates at UTC midnight.
type Jalali struct{}

// ToStandardDate implements Converter.
func (Jalali) ToStandardDate(s string) (time.Time, error) {
	year, month, day, err := splitDate(s)
	if err != nil {
		return time.Time{}, err
	}

	pt := ptime.Date(year, ptime.Month(month), day, 0, 0, 0, 0, time.UTC)

	// ptime normalizes out-of-range values; a round trip catches them.
	back := ptime.New(pt.Time())
	if back.Year() != year || int(back.Month()) != month || back.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	g := pt.Time()
	return time.Date(g.Year(), g.Month(), g.Day(), 0, 0, 0, 0, time.UTC), nil
}

// splitDate parses "YYYY/MM/DD" or "YYYY-MM-DD" with any digit glyphs.
// A trailing time component separated by a space is ignored.
func splitDate(s string) (year, month, day int, err error) {
	norm := strings.TrimSpace(digits.Normalize(s))
	if i := strings.IndexByte(norm, ' '); i >= 0 {
		norm = norm[:i]
	}
	norm = strings.ReplaceAll(norm, "-", "/")

	parts := strings.Split(norm, "/")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	vals := make([]int, 3)
	for i, p := range parts {
		v, convErr := strconv.Atoi(p)
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}
		vals[i] = v
	}

	year, month, day = vals[0], vals[1], vals[2]
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return year, month, day, nil
}
