package sim

import (
	"time"

	"github.com/evogt/gridbot/grid"
	"github.com/evogt/gridbot/journal"
)

// Engine applies grid trades against the FIFO ledger and the position and
// accumulates the append-only trade log. It owns all mutable state of one
// run and never touches the wall clock, so identical inputs replay to
// identical logs.
type Engine struct {
	levels     []*grid.Level
	ledger     *grid.Ledger
	pos        Position
	initial    Position
	feeRate    float64
	lastTraded *grid.Level
	feesPaid   float64
	log        []journal.TradeRecord
}

// NewEngine allocates capital for the run (seed purchase plus per-level trade
// sizes) and returns the engine holding the resulting state.
func NewEngine(total float64, lines []float64, feeRate, initialPrice float64, initialTime time.Time) *Engine {
	alloc := grid.Allocate(total, lines, feeRate, initialPrice, initialTime)
	pos := Position{USDT: alloc.USDT, Coin: alloc.Coin}

	return &Engine{
		levels:   alloc.Levels,
		ledger:   alloc.Ledger,
		pos:      pos,
		initial:  pos,
		feeRate:  feeRate,
		feesPaid: alloc.SeedFee,
	}
}

// Levels returns the tradeable levels in ascending price order.
func (e *Engine) Levels() []*grid.Level { return e.levels }

// Position returns the current balances.
func (e *Engine) Position() Position { return e.pos }

// InitialPosition returns the balances right after capital allocation.
func (e *Engine) InitialPosition() Position { return e.initial }

// FeesPaid returns the cumulative fees including the seed purchase fee.
func (e *Engine) FeesPaid() float64 { return e.feesPaid }

// LedgerTotal returns the summed open lot amount, which tracks the coin
// balance within 1e-8 at every instant.
func (e *Engine) LedgerTotal() float64 { return e.ledger.Total() }

// LedgerDepth returns the number of open lots.
func (e *Engine) LedgerDepth() int { return e.ledger.Depth() }

// TradeLog returns the executed trades in order.
func (e *Engine) TradeLog() []journal.TradeRecord { return e.log }

// Reclassify recomputes every level's side from the reference price, keeping
// the most recently filled level blocked.
func (e *Engine) Reclassify(ref float64) {
	grid.Reclassify(e.levels, ref, e.lastTraded)
}

// Execute attempts one trade at the level's frozen side and size, triggered
// at the given path price. A shortfall of coin or USDT is a silent no-op,
// mirroring an exchange rejecting an order under capital constraints; the run
// continues and the level may fill later.
func (e *Engine) Execute(lv *grid.Level, trigger float64, ts time.Time) bool {
	switch lv.Side {
	case grid.Sell:
		return e.sell(lv, trigger, ts)
	case grid.Buy:
		return e.buy(lv, trigger, ts)
	}
	return false
}

func (e *Engine) sell(lv *grid.Level, trigger float64, ts time.Time) bool {
	profit, ok := e.ledger.Consume(lv.TradeAmount, lv.Price)
	if !ok {
		return false
	}

	fee := lv.TradeAmount * lv.Price * e.feeRate
	e.pos.USDT += lv.TradeAmount*lv.Price - fee
	e.pos.Coin -= lv.TradeAmount
	e.feesPaid += fee

	e.record(lv, "SELL", trigger, fee, profit-fee, ts)
	return true
}

func (e *Engine) buy(lv *grid.Level, trigger float64, ts time.Time) bool {
	fee := lv.TradeAmount * lv.Price * e.feeRate
	required := lv.TradeAmount*lv.Price + fee
	if e.pos.USDT < required {
		return false
	}

	e.pos.USDT -= required
	e.pos.Coin += lv.TradeAmount
	e.feesPaid += fee
	e.ledger.Append(lv.TradeAmount, lv.Price, ts)

	e.record(lv, "BUY", trigger, fee, 0, ts)
	return true
}

func (e *Engine) record(lv *grid.Level, typ string, trigger, fee, realized float64, ts time.Time) {
	e.log = append(e.log, journal.TradeRecord{
		Time:           ts,
		Type:           typ,
		TriggerPrice:   trigger,
		GridPrice:      lv.Price,
		Amount:         lv.TradeAmount,
		Fee:            fee,
		RealizedProfit: realized,
		InventoryDepth: e.ledger.Depth(),
	})

	lv.Side = grid.Blocked
	e.lastTraded = lv
}
