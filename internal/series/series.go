// Package series aligns transactions onto a contiguous daily calendar.
package series

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tidominer/bankino/internal/model"
)

// Series holds three sequences aligned on Days. Index i of Income, Cost and
// Balance all describe Days[i].
type Series struct {
	Days    []time.Time
	Income  []decimal.Decimal
	Cost    []decimal.Decimal
	Balance []decimal.Decimal
}

// DayCount is the inclusive number of calendar days in the span.
func (s Series) DayCount() int {
	return len(s.Days)
}

// Empty reports whether the span has no days.
func (s Series) Empty() bool {
	return len(s.Days) == 0
}

// Start returns the first day of the span, or the zero time when empty.
func (s Series) Start() time.Time {
	if s.Empty() {
		return time.Time{}
	}
	return s.Days[0]
}

// End returns the last day of the span, or the zero time when empty.
func (s Series) End() time.Time {
	if s.Empty() {
		return time.Time{}
	}
	return s.Days[len(s.Days)-1]
}

// Filter returns the transactions whose date falls inside r, keeping order.
func Filter(txns []model.Transaction, r model.DateRange) []model.Transaction {
	if r.IsZero() {
		return txns
	}
	var out []model.Transaction
	for _, t := range txns {
		if r.Contains(t.Date) {
			out = append(out, t)
		}
	}
	return out
}

// Span returns the earliest and latest transaction day. ok is false when
// txns is empty.
func Span(txns []model.Transaction) (minDay, maxDay time.Time, ok bool) {
	for i, t := range txns {
		d := model.Day(t.Date)
		if i == 0 || d.Before(minDay) {
			minDay = d
		}
		if i == 0 || d.After(maxDay) {
			maxDay = d
		}
	}
	return minDay, maxDay, len(txns) > 0
}

// Align builds the daily income, cost and balance sequences over the span of
// txns. Income and cost are per-day sums; balance is the last balance of the
// day in input order, carried forward over days without transactions and 0
// before the first known value. Empty input yields an empty Series.
func Align(txns []model.Transaction) Series {
	minDay, maxDay, ok := Span(txns)
	if !ok {
		return Series{}
	}

	n := daysBetween(minDay, maxDay) + 1
	s := Series{
		Days:    make([]time.Time, n),
		Income:  make([]decimal.Decimal, n),
		Cost:    make([]decimal.Decimal, n),
		Balance: make([]decimal.Decimal, n),
	}
	for i := range s.Days {
		s.Days[i] = minDay.AddDate(0, 0, i)
		s.Income[i] = decimal.Zero
		s.Cost[i] = decimal.Zero
	}

	lastBalance := make(map[int]decimal.Decimal)
	for _, t := range txns {
		i := daysBetween(minDay, model.Day(t.Date))
		switch t.Type {
		case model.TypeDeposit:
			s.Income[i] = s.Income[i].Add(t.Amount)
		case model.TypeWithdrawal:
			s.Cost[i] = s.Cost[i].Add(t.Amount)
		}
		lastBalance[i] = t.Balance
	}

	carry := decimal.Zero
	for i := range s.Balance {
		if b, ok := lastBalance[i]; ok {
			carry = b
		}
		s.Balance[i] = carry
	}
	return s
}

// Totals sums deposit and withdrawal amounts.
func Totals(txns []model.Transaction) (income, cost decimal.Decimal) {
	income, cost = decimal.Zero, decimal.Zero
	for _, t := range txns {
		switch t.Type {
		case model.TypeDeposit:
			income = income.Add(t.Amount)
		case model.TypeWithdrawal:
			cost = cost.Add(t.Amount)
		}
	}
	return income, cost
}

// daysBetween counts whole calendar days from a to b. Both must be UTC midnights.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
