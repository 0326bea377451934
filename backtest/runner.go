package backtest

import (
	"fmt"
	"time"

	"github.com/evogt/gridbot/config"
	"github.com/evogt/gridbot/grid"
	"github.com/evogt/gridbot/market"
	"github.com/evogt/gridbot/sim"
)

// DefaultSamples is the number of interpolated intrabar price points per
// candle. Linear sampling between successive closes approximates the path the
// price took inside a bar; it is not high/low aware and is known to
// underestimate grid profit on volatile bars. Tune via Params.PathSamples.
const DefaultSamples = 20

// Runner drives one deterministic simulation over a candle series: allocate,
// then per candle reclassify the grid against the previous close, walk the
// interpolated price path firing crossed levels, and finally aggregate the
// result. One Runner run owns all mutable state; parameter sweeps parallelize
// across runs, never within one.
type Runner struct {
	Params config.Params
}

// Run executes the backtest. Configuration errors abort before the first
// candle; a run either completes with a full Result or fails at
// initialization.
func (r *Runner) Run(candles market.Series) (Result, error) {
	p := r.Params
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	if err := candles.Validate(); err != nil {
		return Result{}, fmt.Errorf("backtest: %w", err)
	}

	samples := p.PathSamples
	if samples == 0 {
		samples = DefaultSamples
	}

	lines, err := grid.Lines(p.LowerPrice, p.UpperPrice, p.NumGrids, p.GridMode)
	if err != nil {
		return Result{}, err
	}

	first := candles.First()
	engine := sim.NewEngine(p.TotalInvestment, lines, p.FeeRate, first.Close, first.Time)

	ref := first.Close
	for _, c := range candles[1:] {
		engine.Reclassify(ref)
		walkPath(engine, ref, c.Close, samples, c.Time)
		ref = c.Close
	}

	return newResult(p, lines, candles, engine), nil
}

// walkPath samples the straight line from prev to cur and fires every level a
// segment strictly crosses in the direction matching its side: rising through
// a Sell level, falling through a Buy level. Blocked levels never fire, and a
// filled level goes Blocked immediately, so no level fires twice within one
// candle. A level exactly at the current close is left for the next candle.
func walkPath(e *sim.Engine, prev, cur float64, samples int, ts time.Time) {
	step := (cur - prev) / float64(samples-1)

	last := prev
	for i := 1; i < samples; i++ {
		pt := prev + float64(i)*step
		if i == samples-1 {
			pt = cur
		}

		for _, lv := range e.Levels() {
			switch lv.Side {
			case grid.Sell:
				if last < lv.Price && lv.Price < pt {
					e.Execute(lv, pt, ts)
				}
			case grid.Buy:
				if last > lv.Price && lv.Price > pt {
					e.Execute(lv, pt, ts)
				}
			}
		}
		last = pt
	}
}
