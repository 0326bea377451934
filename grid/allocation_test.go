package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateHalvesCapital(t *testing.T) {
	t.Parallel()

	lines, err := Lines(50_000, 70_000, 20, Arithmetic)
	require.NoError(t, err)

	a := Allocate(10_000, lines, 0.001, 60_000, t0)

	// The seed purchase with the fee folded in leaves exactly half in USDT.
	assert.InDelta(t, 5_000, a.USDT, 1e-6)
	assert.InDelta(t, 5_000, a.Coin*60_000+a.SeedFee, 1e-6)
	assert.InDelta(t, a.Coin*60_000*0.001, a.SeedFee, 1e-9)

	// Seed coin sits in the ledger as a single lot at the initial price.
	assert.Equal(t, 1, a.Ledger.Depth())
	assert.InDelta(t, a.Coin, a.Ledger.Total(), 1e-12)
	assert.Equal(t, 60_000.0, a.Ledger.Lots()[0].Price)
}

func TestAllocateUniformNotional(t *testing.T) {
	t.Parallel()

	lines, err := Lines(50_000, 70_000, 20, Arithmetic)
	require.NoError(t, err)

	a := Allocate(10_000, lines, 0.001, 60_000, t0)

	assert.InDelta(t, 0.99*10_000/20, a.Notional, 1e-9)
	for _, lv := range a.Levels {
		// Buying TradeAmount at the level price plus fee costs the notional.
		cost := lv.TradeAmount * lv.Price * 1.001
		assert.InDelta(t, a.Notional, cost, 1e-6)
	}
}

func TestAllocateInitialSides(t *testing.T) {
	t.Parallel()

	lines, err := Lines(50_000, 70_000, 20, Arithmetic)
	require.NoError(t, err)

	a := Allocate(10_000, lines, 0.001, 61_500, t0)
	require.Len(t, a.Levels, 21)

	for _, lv := range a.Levels {
		if lv.Price > 61_500 {
			assert.Equal(t, Sell, lv.Side, "level %.0f", lv.Price)
		} else {
			assert.Equal(t, Buy, lv.Side, "level %.0f", lv.Price)
		}
	}
}

func TestAllocateExcludesLineAtInitialPrice(t *testing.T) {
	t.Parallel()

	lines, err := Lines(50_000, 70_000, 20, Arithmetic)
	require.NoError(t, err)

	// 60000 is line index 10; starting exactly there drops it for the run.
	a := Allocate(10_000, lines, 0.001, 60_000, t0)
	require.Len(t, a.Levels, 20)
	for _, lv := range a.Levels {
		assert.NotEqual(t, 60_000.0, lv.Price)
	}
}
