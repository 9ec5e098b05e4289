package importer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/tidominer/bankino/internal/model"
)

// CSVParser parses the same seven-column layout saved as CSV.
type CSVParser struct {
	Decoder RowDecoder
}

// Format returns the parser name.
func (p *CSVParser) Format() string { return "csv" }

// Parse reads a CSV export and returns its Transactions.
func (p *CSVParser) Parse(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	return decodeRows(records, p.Decoder)
}
