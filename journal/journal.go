package journal

import "time"

// TradeRecord is one executed grid trade. The engine appends these to its
// in-run trade log with an empty RunID; the journaling layer stamps RunID when
// a finished run is recorded, so engine output stays deterministic.
type TradeRecord struct {
	RunID          string
	Time           time.Time
	Type           string // "BUY" or "SELL"
	TriggerPrice   float64
	GridPrice      float64
	Amount         float64
	Fee            float64
	RealizedProfit float64
	InventoryDepth int // open lots after the trade
}

// RunRecord summarizes one finished backtest: the parameters it ran with and
// the aggregate outcome.
type RunRecord struct {
	RunID   string
	Created time.Time
	Symbol  string
	Dataset string

	TotalInvestment float64
	LowerPrice      float64
	UpperPrice      float64
	NumGrids        int
	GridMode        string
	FeeRate         float64
	PathSamples     int

	Start time.Time
	End   time.Time

	InitialPrice   float64
	FinalPrice     float64
	FinalValue     float64
	ProfitUSDT     float64
	ProfitPct      float64
	RealizedProfit float64
	FloatingProfit float64
	FeesPaid       float64
	NumTrades      int
}

// Journal records finished backtest runs and their trades. Implementations
// sit outside the simulation; recording happens after a run completes.
type Journal interface {
	RecordRun(RunRecord) error
	RecordTrade(TradeRecord) error
	Close() error
}
