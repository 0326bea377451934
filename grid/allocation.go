package grid

import "time"

// Reserve fraction of the total investment withheld from per-level notionals
// as a buffer against fees and float drift.
const reserveFraction = 0.01

// Allocation is the one-time capital split computed before the first
// simulated candle: the seed coin purchase, the fixed trade size per level and
// the starting balances.
type Allocation struct {
	Levels   []*Level
	Ledger   *Ledger
	USDT     float64
	Coin     float64
	SeedFee  float64
	Notional float64 // uniform USDT notional assigned to each level
}

// Allocate converts half of the total investment into coin at the initial
// price and sizes every grid level with a uniform notional.
//
// The seed purchase is not a grid trade and is never logged as one: a live
// grid bot only ever places a sell order for coin it already holds, so the
// simulator establishes that standing inventory up front. Buying at
// initialPrice with the fee folded in leaves exactly half the investment in
// USDT.
//
// A line exactly equal to the initial price is excluded from the tradeable
// set for the whole run.
func Allocate(total float64, lines []float64, feeRate, initialPrice float64, initialTime time.Time) Allocation {
	seedCoin := (0.5 * total) / (initialPrice * (1 + feeRate))
	seedFee := seedCoin * initialPrice * feeRate

	ledger := NewLedger()
	ledger.Append(seedCoin, initialPrice, initialTime)

	num := len(lines) - 1
	notional := (1 - reserveFraction) * total / float64(num)

	levels := make([]*Level, 0, len(lines))
	for _, price := range lines {
		if price == initialPrice {
			continue
		}
		side := Buy
		if price > initialPrice {
			side = Sell
		}
		levels = append(levels, &Level{
			Price:       price,
			TradeAmount: notional / (price * (1 + feeRate)),
			Side:        side,
		})
	}

	return Allocation{
		Levels:   levels,
		Ledger:   ledger,
		USDT:     total - seedCoin*initialPrice - seedFee,
		Coin:     seedCoin,
		SeedFee:  seedFee,
		Notional: notional,
	}
}
