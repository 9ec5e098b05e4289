package commands

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

const flagDateFormat = "2006-01-02"

var _ pflag.Value = (*dateFlag)(nil)

// dateFlag is a pflag.Value for optional YYYY-MM-DD dates.
type dateFlag struct {
	value *time.Time
}

func (d *dateFlag) String() string {
	if d.value == nil {
		return ""
	}
	return d.value.Format(flagDateFormat)
}

func (d *dateFlag) Set(s string) error {
	t, err := time.Parse(flagDateFormat, s)
	if err != nil {
		return fmt.Errorf("not a valid date: %q", s)
	}
	d.value = &t
	return nil
}

func (d *dateFlag) Type() string { return "date" }

// Time returns the parsed date, or nil when the flag was not given.
func (d *dateFlag) Time() *time.Time {
	return d.value
}
