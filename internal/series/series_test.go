package series

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidominer/bankino/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(i int64) decimal.Decimal {
	return decimal.NewFromInt(i)
}

func txn(day time.Time, typ model.TransactionType, amount, balance int64) model.Transaction {
	return model.Transaction{Date: day, Type: typ, Amount: dec(amount), Balance: dec(balance)}
}

func assertDecimals(t *testing.T, want []int64, got []decimal.Decimal, name string) {
	t.Helper()
	require.Len(t, got, len(want), name)
	for i := range want {
		assert.True(t, dec(want[i]).Equal(got[i]), "%s[%d] = %s, want %d", name, i, got[i], want[i])
	}
}

func TestAlign_Scenario(t *testing.T) {
	txns := []model.Transaction{
		txn(date(2024, 1, 1), model.TypeDeposit, 1000, 1000),
		txn(date(2024, 1, 1), model.TypeWithdrawal, 200, 800),
		txn(date(2024, 1, 3), model.TypeDeposit, 500, 1300),
	}

	s := Align(txns)
	assert.Equal(t, 3, s.DayCount())
	assert.Equal(t, date(2024, 1, 1), s.Start())
	assert.Equal(t, date(2024, 1, 3), s.End())
	assertDecimals(t, []int64{1000, 0, 500}, s.Income, "income")
	assertDecimals(t, []int64{200, 0, 0}, s.Cost, "cost")
	assertDecimals(t, []int64{800, 800, 1300}, s.Balance, "balance")

	income, cost := Totals(txns)
	assert.True(t, income.Equal(dec(1500)))
	assert.True(t, cost.Equal(dec(200)))
}

func TestAlign_Empty(t *testing.T) {
	s := Align(nil)
	assert.True(t, s.Empty())
	assert.Equal(t, 0, s.DayCount())
	assert.Empty(t, s.Income)
	assert.True(t, s.Start().IsZero())
	assert.True(t, s.End().IsZero())
}

func TestAlign_EqualLengths(t *testing.T) {
	txns := []model.Transaction{
		txn(date(2024, 2, 27), model.TypeDeposit, 1, 1),
		txn(date(2024, 3, 2), model.TypeWithdrawal, 1, 0),
		txn(date(2024, 2, 28), model.TypeDeposit, 1, 2),
	}
	s := Align(txns)

	// 2024 is a leap year: Feb 27 .. Mar 2 is 5 days.
	assert.Equal(t, 5, s.DayCount())
	assert.Len(t, s.Income, 5)
	assert.Len(t, s.Cost, 5)
	assert.Len(t, s.Balance, 5)
	for i, d := range s.Days {
		assert.Equal(t, date(2024, 2, 27).AddDate(0, 0, i), d)
	}
}

func TestAlign_UnsortedInputLastBalanceByInputOrder(t *testing.T) {
	txns := []model.Transaction{
		txn(date(2024, 1, 2), model.TypeDeposit, 10, 110),
		txn(date(2024, 1, 1), model.TypeDeposit, 100, 100),
		txn(date(2024, 1, 2), model.TypeWithdrawal, 5, 95),
		txn(date(2024, 1, 2), model.TypeDeposit, 3, 98),
	}
	s := Align(txns)

	assertDecimals(t, []int64{100, 13}, s.Income, "income")
	assertDecimals(t, []int64{0, 5}, s.Cost, "cost")
	assertDecimals(t, []int64{100, 98}, s.Balance, "balance")
}

func TestAlign_ForwardFillAcrossGap(t *testing.T) {
	txns := []model.Transaction{
		txn(date(2024, 1, 1), model.TypeDeposit, 50, 50),
		txn(date(2024, 1, 5), model.TypeWithdrawal, 20, 30),
	}
	s := Align(txns)
	assertDecimals(t, []int64{50, 50, 50, 50, 30}, s.Balance, "balance")
	assertDecimals(t, []int64{50, 0, 0, 0, 0}, s.Income, "income")
	assertDecimals(t, []int64{0, 0, 0, 0, 20}, s.Cost, "cost")
}

func TestAlign_SumsMatchRawTotals(t *testing.T) {
	txns := []model.Transaction{
		txn(date(2024, 5, 1), model.TypeDeposit, 7, 7),
		txn(date(2024, 5, 9), model.TypeDeposit, 11, 18),
		txn(date(2024, 5, 9), model.TypeWithdrawal, 4, 14),
		txn(date(2024, 5, 3), model.TypeWithdrawal, 2, 5),
	}
	s := Align(txns)
	income, cost := Totals(txns)

	sum := func(ds []decimal.Decimal) decimal.Decimal {
		total := decimal.Zero
		for _, d := range ds {
			total = total.Add(d)
		}
		return total
	}
	assert.True(t, income.Equal(sum(s.Income)))
	assert.True(t, cost.Equal(sum(s.Cost)))
}

func TestFilter(t *testing.T) {
	txns := []model.Transaction{
		txn(date(2024, 1, 1), model.TypeDeposit, 1, 1),
		txn(date(2024, 1, 5), model.TypeDeposit, 2, 3),
		txn(date(2024, 1, 9), model.TypeDeposit, 3, 6),
	}
	start := date(2024, 1, 2)
	end := date(2024, 1, 9)

	got := Filter(txns, model.DateRange{Start: &start, End: &end})
	require.Len(t, got, 2)
	assert.Equal(t, date(2024, 1, 5), got[0].Date)

	assert.Len(t, Filter(txns, model.DateRange{}), 3)
}

func TestFilter_BeforeSpan(t *testing.T) {
	txns := []model.Transaction{
		txn(date(2024, 1, 1), model.TypeDeposit, 1, 1),
		txn(date(2024, 1, 10), model.TypeDeposit, 2, 3),
		txn(date(2024, 1, 12), model.TypeWithdrawal, 1, 2),
	}
	start := date(2024, 1, 5)

	s := Align(Filter(txns, model.DateRange{Start: &start}))
	assert.Equal(t, 3, s.DayCount())
	assert.Equal(t, date(2024, 1, 10), s.Start())
}

func TestFilter_NothingInRange(t *testing.T) {
	txns := []model.Transaction{txn(date(2024, 1, 1), model.TypeDeposit, 1, 1)}
	start := date(2025, 1, 1)

	got := Filter(txns, model.DateRange{Start: &start})
	assert.Empty(t, got)
	assert.True(t, Align(got).Empty())
}

func TestAlign_AcrossDSTIndependentOfLocalZone(t *testing.T) {
	txns := []model.Transaction{
		txn(date(2024, 3, 9), model.TypeDeposit, 1, 1),
		txn(date(2024, 3, 11), model.TypeDeposit, 1, 2),
	}
	assert.Equal(t, 3, Align(txns).DayCount())
}
