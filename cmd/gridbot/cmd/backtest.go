package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/evogt/gridbot/backtest"
	"github.com/evogt/gridbot/config"
	"github.com/evogt/gridbot/grid"
	"github.com/evogt/gridbot/journal"
	"github.com/evogt/gridbot/pkg/id"
)

var backtestCmd = &cobra.Command{
	Use:   "backtest",
	Short: "Run a grid strategy backtest over a candle CSV file",
	Long: `Backtest replays a grid trading strategy over historical candles and prints
a performance summary. Candles are read from a CSV file with rows
time,open,high,low,close,volume (RFC3339 or unix-millisecond timestamps).

Example:
  gridbot backtest --candles data/btcusdt_1h.csv \
    --investment 10000 --lower 50000 --upper 70000 --grids 20 --mode arithmetic`,
	RunE: runBacktest,
}

var (
	btConfigPath  string
	btCandlesPath string
	btSymbol      string
	btFrom        string
	btTo          string

	btInvestment float64
	btLower      float64
	btUpper      float64
	btGrids      int
	btMode       string
	btFee        float64
	btSamples    int

	btJournalType string
	btDBPath      string
	btTradesFile  string
	btRunsFile    string
)

func init() {
	rootCmd.AddCommand(backtestCmd)

	backtestCmd.Flags().StringVarP(&btConfigPath, "config", "c", "", "path to YAML/JSON config file")
	backtestCmd.Flags().StringVarP(&btCandlesPath, "candles", "k", "", "path to candle CSV (time,open,high,low,close,volume)")
	backtestCmd.Flags().StringVar(&btSymbol, "symbol", "", "symbol label for journaling")
	backtestCmd.Flags().StringVar(&btFrom, "from", "", "start of candle range (RFC3339, inclusive)")
	backtestCmd.Flags().StringVar(&btTo, "to", "", "end of candle range (RFC3339, exclusive)")

	backtestCmd.Flags().Float64VarP(&btInvestment, "investment", "i", 0, "total investment in quote currency")
	backtestCmd.Flags().Float64VarP(&btLower, "lower", "l", 0, "lower grid bound")
	backtestCmd.Flags().Float64VarP(&btUpper, "upper", "u", 0, "upper grid bound")
	backtestCmd.Flags().IntVarP(&btGrids, "grids", "g", 0, "number of grids (levels = grids+1)")
	backtestCmd.Flags().StringVarP(&btMode, "mode", "m", "", "grid spacing mode (arithmetic, geometric)")
	backtestCmd.Flags().Float64VarP(&btFee, "fee", "f", -1, "taker fee rate, e.g. 0.001")
	backtestCmd.Flags().IntVar(&btSamples, "samples", 0, "interpolated intrabar points per candle (default 20)")

	backtestCmd.Flags().StringVarP(&btJournalType, "journal", "j", "", "journal type (none, csv, sqlite)")
	backtestCmd.Flags().StringVarP(&btDBPath, "db", "d", "", "path to SQLite journal DB")
	backtestCmd.Flags().StringVar(&btTradesFile, "trades-out", "", "path to trades CSV (csv journal)")
	backtestCmd.Flags().StringVar(&btRunsFile, "runs-out", "", "path to runs CSV (csv journal)")
}

func runBacktest(cmd *cobra.Command, args []string) error {
	cfg, err := loadBacktestConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Data.CandlesFile == "" {
		return fmt.Errorf("candle CSV required: pass --candles or set data.candles_file")
	}

	from, to, err := cfg.Data.Range()
	if err != nil {
		return err
	}

	feed, err := backtest.NewCSVFeed(cfg.Data.CandlesFile, from, to)
	if err != nil {
		return fmt.Errorf("load candles: %w", err)
	}
	candles, err := backtest.ReadAll(feed)
	if err != nil {
		return fmt.Errorf("read candles: %w", err)
	}

	runner := backtest.Runner{Params: cfg.Strategy}
	result, err := runner.Run(candles)
	if err != nil {
		return err
	}

	backtest.PrintResult(os.Stdout, result)

	return journalResult(cfg, result)
}

// loadBacktestConfig merges the config file (or defaults) with any flags the
// user set; flags win.
func loadBacktestConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	var err error

	if btConfigPath != "" {
		cfg, err = config.LoadFromFile(btConfigPath)
	} else {
		cfg, err = config.FromEnv()
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("candles") {
		cfg.Data.CandlesFile = btCandlesPath
	}
	if flags.Changed("symbol") {
		cfg.Data.Symbol = btSymbol
	}
	if flags.Changed("from") {
		cfg.Data.From = btFrom
	}
	if flags.Changed("to") {
		cfg.Data.To = btTo
	}
	if flags.Changed("investment") {
		cfg.Strategy.TotalInvestment = btInvestment
	}
	if flags.Changed("lower") {
		cfg.Strategy.LowerPrice = btLower
	}
	if flags.Changed("upper") {
		cfg.Strategy.UpperPrice = btUpper
	}
	if flags.Changed("grids") {
		cfg.Strategy.NumGrids = btGrids
	}
	if flags.Changed("mode") {
		mode, err := grid.ParseMode(btMode)
		if err != nil {
			return nil, err
		}
		cfg.Strategy.GridMode = mode
	}
	if flags.Changed("fee") {
		cfg.Strategy.FeeRate = btFee
	}
	if flags.Changed("samples") {
		cfg.Strategy.PathSamples = btSamples
	}
	if flags.Changed("journal") {
		cfg.Journal.Type = btJournalType
	}
	if flags.Changed("db") {
		cfg.Journal.DBPath = btDBPath
	}
	if flags.Changed("trades-out") {
		cfg.Journal.TradesFile = btTradesFile
	}
	if flags.Changed("runs-out") {
		cfg.Journal.RunsFile = btRunsFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func journalResult(cfg *config.Config, result backtest.Result) error {
	var j journal.Journal
	var err error

	switch strings.ToLower(cfg.Journal.Type) {
	case "", "none":
		return nil
	case "csv":
		j, err = journal.NewCSV(cfg.Journal.TradesFile, cfg.Journal.RunsFile)
	case "sqlite":
		j, err = journal.NewSQLite(cfg.Journal.DBPath)
	}
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer j.Close()

	runID := id.New()
	if err := result.Record(j, runID, cfg.Data.Symbol, cfg.Data.CandlesFile, time.Now().UTC()); err != nil {
		return fmt.Errorf("record run: %w", err)
	}

	fmt.Printf("Journaled run %s (%d trades)\n", runID, result.NumTrades)
	return nil
}
