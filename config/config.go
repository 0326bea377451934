package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/evogt/gridbot/grid"
)

// Params are the strategy inputs of one backtest run.
type Params struct {
	TotalInvestment float64   `json:"total_investment" yaml:"total_investment" envconfig:"TOTAL_INVESTMENT"`
	LowerPrice      float64   `json:"lower_price" yaml:"lower_price" envconfig:"LOWER_PRICE"`
	UpperPrice      float64   `json:"upper_price" yaml:"upper_price" envconfig:"UPPER_PRICE"`
	NumGrids        int       `json:"num_grids" yaml:"num_grids" envconfig:"NUM_GRIDS"`
	GridMode        grid.Mode `json:"grid_mode" yaml:"grid_mode" envconfig:"GRID_MODE"`
	FeeRate         float64   `json:"fee_rate" yaml:"fee_rate" envconfig:"FEE_RATE"`

	// PathSamples is the number of interpolated intrabar price points per
	// candle; 0 selects the engine default.
	PathSamples int `json:"path_samples,omitempty" yaml:"path_samples,omitempty" envconfig:"PATH_SAMPLES"`
}

// Validate checks every parameter domain. Violations surface as
// *grid.ValidationError before any candle is processed.
func (p Params) Validate() error {
	if p.TotalInvestment <= 0 {
		return &grid.ValidationError{Param: "total_investment", Reason: fmt.Sprintf("must be positive, got %g", p.TotalInvestment)}
	}
	if _, err := grid.Lines(p.LowerPrice, p.UpperPrice, p.NumGrids, p.GridMode); err != nil {
		return err
	}
	if p.FeeRate < 0 || p.FeeRate >= 0.1 {
		return &grid.ValidationError{Param: "fee_rate", Reason: fmt.Sprintf("must be in [0, 0.1), got %g", p.FeeRate)}
	}
	if p.PathSamples < 0 || p.PathSamples == 1 {
		return &grid.ValidationError{Param: "path_samples", Reason: fmt.Sprintf("must be 0 (default) or at least 2, got %d", p.PathSamples)}
	}
	return nil
}

// DataConfig points at the candle series for a run.
type DataConfig struct {
	Symbol      string `json:"symbol,omitempty" yaml:"symbol,omitempty" envconfig:"SYMBOL"`
	CandlesFile string `json:"candles_file" yaml:"candles_file" envconfig:"CANDLES_FILE"`
	From        string `json:"from,omitempty" yaml:"from,omitempty" envconfig:"FROM"`
	To          string `json:"to,omitempty" yaml:"to,omitempty" envconfig:"TO"`
}

// Range parses the optional From/To bounds (RFC3339). Zero times mean open
// bounds.
func (d DataConfig) Range() (from, to time.Time, err error) {
	if d.From != "" {
		from, err = time.Parse(time.RFC3339, d.From)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("data.from: %w", err)
		}
	}
	if d.To != "" {
		to, err = time.Parse(time.RFC3339, d.To)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("data.to: %w", err)
		}
	}
	return from, to, nil
}

// JournalConfig selects where finished runs are recorded.
type JournalConfig struct {
	Type       string `json:"type" yaml:"type" envconfig:"JOURNAL_TYPE"` // "none", "csv" or "sqlite"
	TradesFile string `json:"trades_file,omitempty" yaml:"trades_file,omitempty" envconfig:"JOURNAL_TRADES_FILE"`
	RunsFile   string `json:"runs_file,omitempty" yaml:"runs_file,omitempty" envconfig:"JOURNAL_RUNS_FILE"`
	DBPath     string `json:"db_path,omitempty" yaml:"db_path,omitempty" envconfig:"JOURNAL_DB_PATH"`
}

// Config is the complete backtest configuration.
type Config struct {
	Strategy Params        `json:"strategy" yaml:"strategy"`
	Data     DataConfig    `json:"data" yaml:"data"`
	Journal  JournalConfig `json:"journal" yaml:"journal"`
}

// Validate checks the configuration beyond the strategy parameter domains.
func (c *Config) Validate() error {
	if err := c.Strategy.Validate(); err != nil {
		return err
	}
	if _, _, err := c.Data.Range(); err != nil {
		return err
	}
	switch strings.ToLower(c.Journal.Type) {
	case "", "none":
	case "csv":
		if c.Journal.TradesFile == "" || c.Journal.RunsFile == "" {
			return fmt.Errorf("journal trades_file and runs_file required for csv type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for sqlite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite', got %q", c.Journal.Type)
	}
	return nil
}

// LoadFromFile loads a configuration file (YAML or JSON), applies GRIDBOT_*
// environment overrides and validates the result.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// FromEnv builds a configuration from defaults plus GRIDBOT_* environment
// variables only.
func FromEnv() (*Config, error) {
	cfg := Default()
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if err := envconfig.Process("gridbot", &cfg.Strategy); err != nil {
		return fmt.Errorf("environment overrides: %w", err)
	}
	if err := envconfig.Process("gridbot", &cfg.Data); err != nil {
		return fmt.Errorf("environment overrides: %w", err)
	}
	if err := envconfig.Process("gridbot", &cfg.Journal); err != nil {
		return fmt.Errorf("environment overrides: %w", err)
	}
	return nil
}

// Default returns a configuration with sensible defaults for a BTC/USDT style
// pair. Data.CandlesFile must still be supplied.
func Default() *Config {
	return &Config{
		Strategy: Params{
			TotalInvestment: 10_000,
			LowerPrice:      50_000,
			UpperPrice:      70_000,
			NumGrids:        20,
			GridMode:        grid.Arithmetic,
			FeeRate:         0.001,
		},
		Data: DataConfig{
			Symbol: "BTCUSDT",
		},
		Journal: JournalConfig{
			Type: "none",
		},
	}
}
