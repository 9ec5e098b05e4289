package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tidominer/bankino/internal/buildinfo"
	"github.com/tidominer/bankino/internal/config"
	"github.com/tidominer/bankino/internal/logger"
)

const longDescription = `Analyzes a Bankino transactions export and reports total income, costs
and balance, plotting each over a daily timeline in the terminal.

The export is read from an .xlsx workbook (or the same seven columns saved as
.csv). Defaults may be set in bankino.yaml, a .env file or BANKINO_* variables;
flags take precedence.`

// NewRootCommand creates the bankino CLI command.
func NewRootCommand() *cobra.Command {
	var (
		start, end dateFlag
		height     int
		output     string
		seriesCSV  string
		configPath string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:     "bankino <filename>",
		Short:   "Bankino Financial Assistant",
		Long:    longDescription,
		Version: buildinfo.String(),
		Args:    cobra.ExactArgs(1),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New(verbose)

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			opts := cfg.Options(args[0])
			opts.Range.Start = start.Time()
			opts.Range.End = end.Time()
			if cmd.Flags().Changed("height") {
				opts.Height = height
			}
			if cmd.Flags().Changed("output") {
				opts.OutputPath = output
			}
			opts.SeriesPath = seriesCSV

			if err := opts.Validate(); err != nil {
				return err
			}

			printBanner(cmd.OutOrStdout())

			ctx := logger.WithContext(cmd.Context(), log)
			return runAnalyze(ctx, opts, nil, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.VarP(&start, "start", "s", "start date of the data to take (YYYY-MM-DD)")
	flags.VarP(&end, "end", "e", "end date of the data to take (YYYY-MM-DD)")
	flags.IntVarP(&height, "height", "g", config.Default().Height, "height of the drawn graphs")
	flags.StringVarP(&output, "output", "o", "", "also write the report to this file (overwritten)")
	flags.StringVar(&seriesCSV, "csv", "", "write the daily income/cost/balance series to this CSV file")
	flags.StringVar(&configPath, "config", "", "config file (default ./"+config.DefaultFile+" if present)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")

	return cmd
}

// loadConfig resolves defaults < config file < .env/environment.
func loadConfig(path string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path == "" {
		cfg, err = config.LoadOptional(config.DefaultFile)
	} else {
		cfg, err = config.Load(path)
	}
	if err != nil {
		return nil, err
	}

	if err := config.LoadEnvFile(".env"); err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	return cfg, nil
}
