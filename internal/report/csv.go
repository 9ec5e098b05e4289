package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tidominer/bankino/internal/series"
)

// SeriesHeader is the CSV header for the daily series export.
const SeriesHeader = "date,income,cost,balance"

const (
	numSeriesFields = 4
	colDate         = 0
	colIncome       = 1
	colCost         = 2
	colBalance      = 3
)

// MarshalDay converts day i of s to a CSV row.
func MarshalDay(s series.Series, i int) []string {
	row := make([]string, numSeriesFields)
	row[colDate] = s.Days[i].Format(dateFormat)
	row[colIncome] = s.Income[i].String()
	row[colCost] = s.Cost[i].String()
	row[colBalance] = s.Balance[i].String()
	return row
}

// WriteSeriesCSV writes one row per calendar day, including the header.
func WriteSeriesCSV(w io.Writer, s series.Series) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(SeriesHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i := range s.Days {
		if err := cw.Write(MarshalDay(s, i)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveSeriesCSV writes the daily series to path, replacing any existing file.
func SaveSeriesCSV(path string, s series.Series) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating series file: %w", err)
	}
	defer f.Close()

	if err := WriteSeriesCSV(f, s); err != nil {
		return fmt.Errorf("writing series: %w", err)
	}
	return f.Close()
}
