package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/tidominer/bankino/internal/chart"
	"github.com/tidominer/bankino/internal/importer"
	"github.com/tidominer/bankino/internal/model"
	"github.com/tidominer/bankino/internal/report"
)

// DefaultFile is the config file picked up from the working directory.
const DefaultFile = "bankino.yaml"

// Environment variables that override the config file.
const (
	EnvHeight   = "BANKINO_HEIGHT"
	EnvCurrency = "BANKINO_CURRENCY"
	EnvOutput   = "BANKINO_OUTPUT"
)

// Config represents bankino.yaml.
type Config struct {
	Height   int          `yaml:"height"`
	Output   string       `yaml:"output,omitempty"`
	Currency string       `yaml:"currency"`
	Labels   LabelsConfig `yaml:"labels"`
}

// LabelsConfig holds the export's transaction type labels.
type LabelsConfig struct {
	Deposit    string `yaml:"deposit"`
	Withdrawal string `yaml:"withdrawal"`
}

// Load reads a bankino.yaml file from disk. Missing keys keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOptional reads path if it exists and returns the defaults otherwise.
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config matching the bank's export.
func Default() *Config {
	return &Config{
		Height:   chart.DefaultHeight,
		Currency: report.DefaultCurrency,
		Labels: LabelsConfig{
			Deposit:    importer.DepositLabel,
			Withdrawal: importer.WithdrawalLabel,
		},
	}
}

// LoadEnvFile loads KEY=VALUE pairs from a dotenv file into the process
// environment. A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides cfg with any BANKINO_* variables returned by getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := strings.TrimSpace(getenv(EnvHeight)); v != "" {
		h, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing %s %q: %w", EnvHeight, v, err)
		}
		c.Height = h
	}
	if v := strings.TrimSpace(getenv(EnvCurrency)); v != "" {
		c.Currency = v
	}
	if v := strings.TrimSpace(getenv(EnvOutput)); v != "" {
		c.Output = v
	}
	return nil
}

// Options is the resolved configuration for one run. It is built once and
// passed by value.
type Options struct {
	InputPath       string
	Range           model.DateRange
	Height          int
	OutputPath      string // empty: console only
	SeriesPath      string // empty: no CSV export
	Currency        string
	DepositLabel    string
	WithdrawalLabel string
}

// Options returns run options seeded from the config file values.
func (c *Config) Options(inputPath string) Options {
	return Options{
		InputPath:       inputPath,
		Height:          c.Height,
		OutputPath:      c.Output,
		Currency:        c.Currency,
		DepositLabel:    c.Labels.Deposit,
		WithdrawalLabel: c.Labels.Withdrawal,
	}
}

// Validate checks the options before any file is touched.
func (o Options) Validate() error {
	if o.InputPath == "" {
		return errors.New("input file is required")
	}
	if o.Height < 1 {
		return fmt.Errorf("height must be at least 1, got %d", o.Height)
	}
	if o.Range.Start != nil && o.Range.End != nil && o.Range.End.Before(*o.Range.Start) {
		return fmt.Errorf("end date %s is before start date %s",
			o.Range.End.Format("2006-01-02"), o.Range.Start.Format("2006-01-02"))
	}
	if o.DepositLabel == "" || o.WithdrawalLabel == "" {
		return errors.New("deposit and withdrawal labels must be set")
	}
	if o.DepositLabel == o.WithdrawalLabel {
		return fmt.Errorf("deposit and withdrawal labels must differ, both are %q", o.DepositLabel)
	}
	return nil
}
