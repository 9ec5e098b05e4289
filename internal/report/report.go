// Package report assembles the charts and totals into the final text output.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tidominer/bankino/internal/chart"
	"github.com/tidominer/bankino/internal/series"
)

// DefaultCurrency is the unit printed after totals.
const DefaultCurrency = "Rial"

// NoDataMessage replaces the summary line and charts when nothing is in range.
const NoDataMessage = "No transactions found in the selected date range."

// Section names.
const (
	SectionSummary = "summary"
	SectionIncome  = "income"
	SectionCost    = "cost"
	SectionBalance = "balance"
	SectionTotals  = "totals"
)

const dateFormat = "2006-01-02"

// Input is everything the composer needs from the pipeline.
type Input struct {
	Rows        int // transactions that survived the filter
	Series      series.Series
	TotalIncome decimal.Decimal
	TotalCost   decimal.Decimal
	Height      int
	Currency    string
}

// Section is one block of the report.
type Section struct {
	Name string
	Text string // newline terminated
}

// Report is an ordered list of sections, serialized once by String.
type Report struct {
	Sections []Section
}

// Compose renders the charts and totals for in.
func Compose(in Input) (*Report, error) {
	currency := in.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	days := in.Series.DayCount()

	r := &Report{}
	if in.Series.Empty() {
		r.add(SectionSummary, NoDataMessage+"\n")
	} else {
		r.add(SectionSummary, fmt.Sprintf("%d rows analyzed from %s to %s\n",
			in.Rows, in.Series.Start().Format(dateFormat), in.Series.End().Format(dateFormat)))

		charts := []struct {
			name   string
			values []decimal.Decimal
			title  string
			label  string
		}{
			{SectionIncome, in.Series.Income, fmt.Sprintf("Income in %d Days", days), "Incoming Transactions"},
			{SectionCost, in.Series.Cost, fmt.Sprintf("Costs in %d Days", days), "Outgoing Transactions"},
			{SectionBalance, in.Series.Balance, fmt.Sprintf("Balance in %d Days", days), "Balance"},
		}
		for _, c := range charts {
			text, err := chart.Render(c.values, c.title, c.label, in.Height)
			if err != nil {
				return nil, fmt.Errorf("rendering %s chart: %w", c.name, err)
			}
			r.add(c.name, text)
		}
	}

	var totals strings.Builder
	fmt.Fprintf(&totals, "Summary of Transactions in the Past %d Days:\n", days)
	fmt.Fprintf(&totals, "Total Income: %s %s\n", chart.FormatAmount(in.TotalIncome), currency)
	fmt.Fprintf(&totals, "Total Costs: %s %s\n", chart.FormatAmount(in.TotalCost), currency)
	r.add(SectionTotals, totals.String())

	return r, nil
}

func (r *Report) add(name, text string) {
	r.Sections = append(r.Sections, Section{Name: name, Text: text})
}

// Section returns the text of the named section.
func (r *Report) Section(name string) (string, bool) {
	for _, s := range r.Sections {
		if s.Name == name {
			return s.Text, true
		}
	}
	return "", false
}

// String joins the sections with a blank line between each.
func (r *Report) String() string {
	var b strings.Builder
	for i, s := range r.Sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(s.Text)
	}
	return b.String()
}

// WriteTo writes the serialized report to w.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.String())
	return int64(n), err
}

// WriteFile writes the report to path as UTF-8, replacing any existing file.
func WriteFile(path string, r *Report) error {
	if err := os.WriteFile(path, []byte(r.String()), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
