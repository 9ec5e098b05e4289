package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/tidominer/bankino/internal/calendar"
	"github.com/tidominer/bankino/internal/config"
	"github.com/tidominer/bankino/internal/importer"
	"github.com/tidominer/bankino/internal/logger"
	"github.com/tidominer/bankino/internal/report"
	"github.com/tidominer/bankino/internal/series"
)

// runAnalyze is the pipeline: load, filter, align, render, write. dates
// defaults to the Jalali calendar when nil.
func runAnalyze(ctx context.Context, opts config.Options, dates calendar.Converter, out io.Writer) error {
	log := logger.FromContext(ctx)
	if dates == nil {
		dates = calendar.Jalali{}
	}

	// Load transactions.
	reg := importer.DefaultRegistry(importer.RowDecoder{
		Dates:           dates,
		DepositLabel:    opts.DepositLabel,
		WithdrawalLabel: opts.WithdrawalLabel,
	})
	txns, err := reg.Load(opts.InputPath)
	if err != nil {
		return err
	}
	log.Debug().Str("file", opts.InputPath).Int("rows", len(txns)).Msg("loaded transactions")

	// Filter before computing the span.
	txns = series.Filter(txns, opts.Range)
	if len(txns) == 0 {
		log.Warn().Msg("no transactions in the selected date range")
	}

	s := series.Align(txns)
	income, cost := series.Totals(txns)
	log.Debug().Int("days", s.DayCount()).Str("income", income.String()).Str("cost", cost.String()).Msg("aligned series")

	rep, err := report.Compose(report.Input{
		Rows:        len(txns),
		Series:      s,
		TotalIncome: income,
		TotalCost:   cost,
		Height:      opts.Height,
		Currency:    opts.Currency,
	})
	if err != nil {
		return fmt.Errorf("composing report: %w", err)
	}

	if _, err := rep.WriteTo(out); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	if opts.OutputPath != "" {
		if err := report.WriteFile(opts.OutputPath, rep); err != nil {
			return err
		}
		log.Debug().Str("path", opts.OutputPath).Msg("report exported")
	}

	if opts.SeriesPath != "" {
		if err := report.SaveSeriesCSV(opts.SeriesPath, s); err != nil {
			return err
		}
		log.Debug().Str("path", opts.SeriesPath).Msg("daily series exported")
	}

	return nil
}
