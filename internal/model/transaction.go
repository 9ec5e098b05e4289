package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a bank transaction as money in or money out.
type TransactionType string

const (
	TypeDeposit    TransactionType = "deposit"
	TypeWithdrawal TransactionType = "withdrawal"
)

// Transaction represents one row of a bank export.
type Transaction struct {
	Date        time.Time       // Gregorian, UTC midnight
	Time        string          // as exported, not interpreted
	Amount      decimal.Decimal // always non-negative
	Balance     decimal.Decimal // account balance after the transaction
	Type        TransactionType
	Title       string
	Description string
}

// DateRange is an inclusive date filter. A nil bound is open.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Contains reports whether d falls inside the range. Only the calendar day
// of each value is compared.
func (r DateRange) Contains(d time.Time) bool {
	day := Day(d)
	if r.Start != nil && day.Before(Day(*r.Start)) {
		return false
	}
	if r.End != nil && day.After(Day(*r.End)) {
		return false
	}
	return true
}

// IsZero reports whether neither bound is set.
func (r DateRange) IsZero() bool {
	return r.Start == nil && r.End == nil
}

// Day truncates t to midnight UTC of its calendar day.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
