package chart

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decs(vals ...int64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(vals))
	for i, v := range vals {
		out[i] = decimal.NewFromInt(v)
	}
	return out
}

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestRows_Linear(t *testing.T) {
	rows, err := Rows(decs(0, 5, 10), 10)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 5, 10}, rows)
}

func TestRows_Flat(t *testing.T) {
	rows, err := Rows(decs(7, 7, 7), 10)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0}, rows)
}

func TestRows_RoundHalfToEven(t *testing.T) {
	// scale = 4/8 = 0.5: offsets 1, 3 and 5 sit exactly on .5.
	rows, err := Rows(decs(0, 1, 3, 5, 8), 4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 2, 2, 4}, rows)
}

func TestRender_Linear(t *testing.T) {
	out, err := Render(decs(0, 5, 10), "Income in 3 Days", "Incoming Transactions", 10)
	require.NoError(t, err)

	got := lines(out)
	// title + label + border + 11 rows + border + ticks
	require.Len(t, got, 16)

	assert.Equal(t, "Income in 3 Days", got[0])
	assert.Equal(t, "Incoming Transactions (Max: 10, Min: 0)", got[1])
	assert.Equal(t, "+"+strings.Repeat("-", 40)+"+", got[2])
	assert.Equal(t, "          10 |  ▄", got[3])
	assert.Equal(t, "           9 |  █", got[4])
	assert.Equal(t, "           5 | ▄█", got[8])
	assert.Equal(t, "           1 | ██", got[12])
	assert.Equal(t, "           0 |‗██", got[13])
	assert.Equal(t, got[2], got[14])
	assert.Equal(t, strings.Repeat(" ", 14)+"|||", got[15])
}

func TestRender_Flat(t *testing.T) {
	out, err := Render(decs(7, 7, 7), "Balance in 3 Days", "Balance", 10)
	require.NoError(t, err)

	got := lines(out)
	require.Len(t, got, 16)
	assert.Equal(t, "          17 |   ", got[3])
	assert.Equal(t, "           7 |‗‗‗", got[13])
}

func TestRender_AxisThousands(t *testing.T) {
	out, err := Render(decs(0, 2500000), "t", "l", 2)
	require.NoError(t, err)

	got := lines(out)
	assert.Equal(t, "l (Max: 2,500,000, Min: 0)", got[1])
	assert.Equal(t, "   2,500,000 | ▄", got[3])
	assert.Equal(t, "   1,250,000 | █", got[4])
	assert.Equal(t, "           0 |‗█", got[5])
}

func TestRender_Deterministic(t *testing.T) {
	vals := decs(3, 1, 4, 1, 5, 9, 2, 6)
	a, err := Render(vals, "t", "l", 7)
	require.NoError(t, err)
	b, err := Render(vals, "t", "l", 7)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRender_Empty(t *testing.T) {
	_, err := Render(nil, "t", "l", 10)
	assert.ErrorIs(t, err, ErrEmptySeries)
}

func TestRender_InvalidHeight(t *testing.T) {
	_, err := Render(decs(1), "t", "l", 0)
	assert.ErrorIs(t, err, ErrInvalidHeight)
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"999", "999"},
		{"1000", "1,000"},
		{"1234567.25", "1,234,567.25"},
		{"-1500", "-1,500"},
		{"-0.5", "-0.5"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatAmount(decimal.RequireFromString(tt.in)), "FormatAmount(%s)", tt.in)
	}
}
