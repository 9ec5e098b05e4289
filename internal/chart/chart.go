// Package chart renders numeric sequences as fixed-height text bar charts.
package chart

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultHeight is the number of rows above the zero row.
const DefaultHeight = 10

// Cell glyphs.
const (
	GlyphTop   = "▄"
	GlyphFloor = "‗"
	GlyphFill  = "█"
	GlyphBlank = " "
)

const (
	borderWidth = 40
	axisWidth   = 12
	tickIndent  = 14
)

var (
	// ErrEmptySeries is returned when there are no values to plot.
	ErrEmptySeries = errors.New("chart: empty series")
	// ErrInvalidHeight is returned for heights below one row.
	ErrInvalidHeight = errors.New("chart: height must be at least 1")
)

// Render draws values as a bar chart of height+1 rows scaled between the
// smallest and largest value. One column per value.
func Render(values []decimal.Decimal, title, label string, height int) (string, error) {
	g, err := newGrid(values, height)
	if err != nil {
		return "", err
	}
	pos := g.rows(values)

	border := "+" + strings.Repeat("-", borderWidth) + "+"

	var b strings.Builder
	b.WriteString(title + "\n")
	fmt.Fprintf(&b, "%s (Max: %s, Min: %s)\n", label, FormatAmount(g.max), FormatAmount(g.min))
	b.WriteString(border + "\n")

	for row := height; row >= 0; row-- {
		b.WriteString(formatAxis(g.value(row), axisWidth))
		b.WriteString(" |")
		for _, p := range pos {
			b.WriteString(cell(p, row))
		}
		b.WriteString("\n")
	}

	b.WriteString(border + "\n")
	b.WriteString(strings.Repeat(" ", tickIndent) + strings.Repeat("|", len(values)) + "\n")
	return b.String(), nil
}

// Rows returns the row index each value's bar top lands on, on a 0..height
// scale. It shares Render's scaling.
func Rows(values []decimal.Decimal, height int) ([]int, error) {
	g, err := newGrid(values, height)
	if err != nil {
		return nil, err
	}
	return g.rows(values), nil
}

// grid maps values to rows. A flat series (span zero) uses scale 1, so every
// value lands on row 0.
type grid struct {
	min    decimal.Decimal
	max    decimal.Decimal
	span   decimal.Decimal
	height decimal.Decimal
}

func newGrid(values []decimal.Decimal, height int) (grid, error) {
	if len(values) == 0 {
		return grid{}, ErrEmptySeries
	}
	if height < 1 {
		return grid{}, fmt.Errorf("%w: got %d", ErrInvalidHeight, height)
	}
	lo, hi := bounds(values)
	return grid{min: lo, max: hi, span: hi.Sub(lo), height: decimal.NewFromInt(int64(height))}, nil
}

func (g grid) rows(values []decimal.Decimal) []int {
	pos := make([]int, len(values))
	for i, v := range values {
		pos[i] = g.row(v)
	}
	return pos
}

// row is round((v-min) * height/span), ties to even.
func (g grid) row(v decimal.Decimal) int {
	off := v.Sub(g.min)
	if g.span.IsPositive() {
		off = off.Mul(g.height).Div(g.span)
	}
	return int(off.RoundBank(0).IntPart())
}

// value is the amount a row represents: min + row/scale.
func (g grid) value(row int) decimal.Decimal {
	r := decimal.NewFromInt(int64(row))
	if g.span.IsPositive() {
		r = r.Mul(g.span).Div(g.height)
	}
	return g.min.Add(r)
}

func cell(pos, row int) string {
	switch {
	case pos == row && pos != 0:
		return GlyphTop
	case pos < row:
		return GlyphBlank
	case pos == 0:
		return GlyphFloor
	default:
		return GlyphFill
	}
}

func bounds(values []decimal.Decimal) (lo, hi decimal.Decimal) {
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		lo = decimal.Min(lo, v)
		hi = decimal.Max(hi, v)
	}
	return lo, hi
}
