package importer

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tidominer/bankino/internal/calendar"
	"github.com/tidominer/bankino/internal/digits"
	"github.com/tidominer/bankino/internal/model"
)

// Default type labels used by the export.
const (
	DepositLabel    = "واریز"
	WithdrawalLabel = "برداشت"
)

const (
	numFields  = 7
	colDate    = 0
	colTime    = 1
	colAmount  = 2
	colBalance = 3
	colType    = 4
	colTitle   = 5
	colDesc    = 6
)

// RowDecoder turns one tabulated export row into a Transaction.
type RowDecoder struct {
	Dates           calendar.Converter
	DepositLabel    string
	WithdrawalLabel string
}

// NewRowDecoder returns a decoder using the Jalali calendar and the default labels.
func NewRowDecoder() RowDecoder {
	return RowDecoder{
		Dates:           calendar.Jalali{},
		DepositLabel:    DepositLabel,
		WithdrawalLabel: WithdrawalLabel,
	}
}

// Decode converts a seven-column record.
func (d RowDecoder) Decode(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := d.Dates.ToStandardDate(record[colDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	amount, err := parseDecimal(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}
	if amount.IsNegative() {
		return model.Transaction{}, fmt.Errorf("negative amount %q", record[colAmount])
	}

	balance, err := parseDecimal(record[colBalance])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing balance %q: %w", record[colBalance], err)
	}

	typ, err := d.parseType(record[colType])
	if err != nil {
		return model.Transaction{}, err
	}

	return model.Transaction{
		Date:        model.Day(date),
		Time:        digits.Normalize(strings.TrimSpace(record[colTime])),
		Amount:      amount,
		Balance:     balance,
		Type:        typ,
		Title:       strings.TrimSpace(record[colTitle]),
		Description: strings.TrimSpace(record[colDesc]),
	}, nil
}

func (d RowDecoder) parseType(s string) (model.TransactionType, error) {
	label := normalizeLabel(s)
	switch label {
	case normalizeLabel(d.DepositLabel):
		return model.TypeDeposit, nil
	case normalizeLabel(d.WithdrawalLabel):
		return model.TypeWithdrawal, nil
	}
	return "", fmt.Errorf("unknown transaction type %q", s)
}

// Arabic yeh and kaf are common in exports produced on Arabic keyboards.
var labelReplacer = strings.NewReplacer("ي", "ی", "ك", "ک", "\u200c", "")

func normalizeLabel(s string) string {
	return strings.TrimSpace(labelReplacer.Replace(s))
}

func parseDecimal(s string) (decimal.Decimal, error) {
	n := digits.NormalizeNumber(s)
	if n == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(n)
}

// decodeRows skips the header row and blank rows, pads short rows to the
// export width and decodes the rest. Errors name the 1-based source row.
func decodeRows(rows [][]string, dec RowDecoder) ([]model.Transaction, error) {
	if len(rows) <= 1 {
		return nil, nil
	}

	var txns []model.Transaction
	for i, row := range rows[1:] {
		rowNum := i + 2
		if isBlank(row) {
			continue
		}
		rec, err := fitRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
		txn, err := dec.Decode(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func fitRow(row []string) ([]string, error) {
	if len(row) > numFields {
		for _, extra := range row[numFields:] {
			if strings.TrimSpace(extra) != "" {
				return nil, fmt.Errorf("expected %d fields, got %d", numFields, len(row))
			}
		}
		row = row[:numFields]
	}
	rec := make([]string, numFields)
	copy(rec, row)
	return rec, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
