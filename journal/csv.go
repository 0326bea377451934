package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

// CSVJournal appends run summaries and trades to two CSV files.
type CSVJournal struct {
	trades *csv.Writer
	runs   *csv.Writer
	tf, rf *os.File
}

func NewCSV(tradesPath, runsPath string) (*CSVJournal, error) {
	tf, err := os.Create(tradesPath)
	if err != nil {
		return nil, err
	}
	rf, err := os.Create(runsPath)
	if err != nil {
		tf.Close()
		return nil, err
	}

	tw := csv.NewWriter(tf)
	rw := csv.NewWriter(rf)

	if err := tw.Write([]string{"run_id", "time", "type", "trigger_price", "grid_price", "amount", "fee", "realized_profit", "inventory_depth"}); err != nil {
		return nil, err
	}
	if err := rw.Write([]string{"run_id", "created", "symbol", "dataset", "total_investment", "lower_price", "upper_price", "num_grids", "grid_mode", "fee_rate", "path_samples", "start", "end", "initial_price", "final_price", "final_value", "profit_usdt", "profit_pct", "realized_profit", "floating_profit", "fees_paid", "num_trades"}); err != nil {
		return nil, err
	}

	tw.Flush()
	if err := tw.Error(); err != nil {
		return nil, err
	}
	rw.Flush()
	if err := rw.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{trades: tw, runs: rw, tf: tf, rf: rf}, nil
}

func (j *CSVJournal) RecordTrade(t TradeRecord) error {
	err := j.trades.Write([]string{
		t.RunID,
		t.Time.UTC().Format(time.RFC3339),
		t.Type,
		f(t.TriggerPrice),
		f(t.GridPrice),
		f(t.Amount),
		f(t.Fee),
		f(t.RealizedProfit),
		strconv.Itoa(t.InventoryDepth),
	})
	if err != nil {
		return err
	}
	j.trades.Flush()
	return j.trades.Error()
}

func (j *CSVJournal) RecordRun(r RunRecord) error {
	err := j.runs.Write([]string{
		r.RunID,
		r.Created.UTC().Format(time.RFC3339),
		r.Symbol,
		r.Dataset,
		f(r.TotalInvestment),
		f(r.LowerPrice),
		f(r.UpperPrice),
		strconv.Itoa(r.NumGrids),
		r.GridMode,
		f(r.FeeRate),
		strconv.Itoa(r.PathSamples),
		r.Start.UTC().Format(time.RFC3339),
		r.End.UTC().Format(time.RFC3339),
		f(r.InitialPrice),
		f(r.FinalPrice),
		f(r.FinalValue),
		f(r.ProfitUSDT),
		f(r.ProfitPct),
		f(r.RealizedProfit),
		f(r.FloatingProfit),
		f(r.FeesPaid),
		strconv.Itoa(r.NumTrades),
	})
	if err != nil {
		return err
	}
	j.runs.Flush()
	return j.runs.Error()
}

func (j *CSVJournal) Close() error {
	j.trades.Flush()
	if err := j.trades.Error(); err != nil {
		return err
	}
	j.runs.Flush()
	if err := j.runs.Error(); err != nil {
		return err
	}

	if err := j.tf.Close(); err != nil {
		return err
	}
	return j.rf.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 8, 64)
}
