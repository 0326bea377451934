package backtest

import (
	"fmt"
	"io"
	"time"

	"github.com/evogt/gridbot/config"
	"github.com/evogt/gridbot/journal"
	"github.com/evogt/gridbot/market"
	"github.com/evogt/gridbot/sim"
)

// Result is the complete outcome of one run: final valuation, profit split
// into grid-realized and floating parts, fee total, the full trade log and
// the grid it ran on.
type Result struct {
	Params    config.Params
	GridLines []float64

	InitialPrice   float64
	FinalPrice     float64
	PriceChangePct float64

	InitialPosition sim.Position
	FinalPosition   sim.Position

	FinalValue float64
	// ProfitUSDT is mark-to-market: final value minus investment, whether
	// or not lots remain open.
	ProfitUSDT float64
	ProfitPct  float64
	// RealizedProfit sums the trade log's per-sale FIFO profit;
	// FloatingProfit is the unrealized remainder. Consumers pick whichever
	// view they need.
	RealizedProfit float64
	FloatingProfit float64

	FeesPaid  float64
	NumTrades int
	TradeLog  []journal.TradeRecord

	Start time.Time
	End   time.Time
}

func newResult(p config.Params, lines []float64, candles market.Series, e *sim.Engine) Result {
	first, last := candles.First(), candles.Last()
	pos := e.Position()
	log := e.TradeLog()

	finalValue := pos.Value(last.Close)
	profit := finalValue - p.TotalInvestment

	var realized float64
	for _, t := range log {
		realized += t.RealizedProfit
	}

	return Result{
		Params:          p,
		GridLines:       lines,
		InitialPrice:    first.Close,
		FinalPrice:      last.Close,
		PriceChangePct:  (last.Close - first.Close) / first.Close * 100,
		InitialPosition: e.InitialPosition(),
		FinalPosition:   pos,
		FinalValue:      finalValue,
		ProfitUSDT:      profit,
		ProfitPct:       profit / p.TotalInvestment * 100,
		RealizedProfit:  realized,
		FloatingProfit:  profit - realized,
		FeesPaid:        e.FeesPaid(),
		NumTrades:       len(log),
		TradeLog:        log,
		Start:           first.Time,
		End:             last.Time,
	}
}

// RunRecord converts the result into a journal record under the given run ID.
func (r Result) RunRecord(runID, symbol, dataset string, created time.Time) journal.RunRecord {
	samples := r.Params.PathSamples
	if samples == 0 {
		samples = DefaultSamples
	}
	return journal.RunRecord{
		RunID:           runID,
		Created:         created,
		Symbol:          symbol,
		Dataset:         dataset,
		TotalInvestment: r.Params.TotalInvestment,
		LowerPrice:      r.Params.LowerPrice,
		UpperPrice:      r.Params.UpperPrice,
		NumGrids:        r.Params.NumGrids,
		GridMode:        string(r.Params.GridMode),
		FeeRate:         r.Params.FeeRate,
		PathSamples:     samples,
		Start:           r.Start,
		End:             r.End,
		InitialPrice:    r.InitialPrice,
		FinalPrice:      r.FinalPrice,
		FinalValue:      r.FinalValue,
		ProfitUSDT:      r.ProfitUSDT,
		ProfitPct:       r.ProfitPct,
		RealizedProfit:  r.RealizedProfit,
		FloatingProfit:  r.FloatingProfit,
		FeesPaid:        r.FeesPaid,
		NumTrades:       r.NumTrades,
	}
}

// Record writes the run summary and its full trade log to a journal, stamping
// every trade with the run ID.
func (r Result) Record(j journal.Journal, runID, symbol, dataset string, created time.Time) error {
	if err := j.RecordRun(r.RunRecord(runID, symbol, dataset, created)); err != nil {
		return err
	}
	for _, t := range r.TradeLog {
		t.RunID = runID
		if err := j.RecordTrade(t); err != nil {
			return err
		}
	}
	return nil
}

// PrintResult writes a human-readable run report.
func PrintResult(w io.Writer, r Result) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Grid Backtest Result")
	fmt.Fprintln(w, "==================================================")

	fmt.Fprintf(w, "Period:        %s .. %s\n", r.Start.Format(time.RFC3339), r.End.Format(time.RFC3339))
	fmt.Fprintf(w, "Grid:          %d levels, %s, %.4f .. %.4f\n",
		len(r.GridLines), r.Params.GridMode, r.Params.LowerPrice, r.Params.UpperPrice)
	fmt.Fprintf(w, "Fee Rate:      %.4f%%\n", r.Params.FeeRate*100)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Market")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Initial Price: %.4f\n", r.InitialPrice)
	fmt.Fprintf(w, "Final Price:   %.4f\n", r.FinalPrice)
	fmt.Fprintf(w, "Price Change:  %.2f%%\n", r.PriceChangePct)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Performance")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Investment:    %.2f\n", r.Params.TotalInvestment)
	fmt.Fprintf(w, "Final Value:   %.2f\n", r.FinalValue)
	fmt.Fprintf(w, "Profit:        %.2f (%.2f%%)\n", r.ProfitUSDT, r.ProfitPct)
	fmt.Fprintf(w, "  Realized:    %.2f\n", r.RealizedProfit)
	fmt.Fprintf(w, "  Floating:    %.2f\n", r.FloatingProfit)
	fmt.Fprintf(w, "Fees Paid:     %.2f\n", r.FeesPaid)
	fmt.Fprintf(w, "Trades:        %d\n", r.NumTrades)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Final Position")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "USDT:          %.2f\n", r.FinalPosition.USDT)
	fmt.Fprintf(w, "Coin:          %.8f\n", r.FinalPosition.Coin)

	fmt.Fprintln(w)
}
