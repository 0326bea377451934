package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func levelsAt(prices ...float64) []*Level {
	out := make([]*Level, len(prices))
	for i, p := range prices {
		out[i] = &Level{Price: p, TradeAmount: 1}
	}
	return out
}

func TestReclassifySplitsAroundReference(t *testing.T) {
	t.Parallel()

	levels := levelsAt(100, 110, 120, 130)
	Reclassify(levels, 115, nil)

	assert.Equal(t, Buy, levels[0].Side)
	assert.Equal(t, Buy, levels[1].Side)
	assert.Equal(t, Sell, levels[2].Side)
	assert.Equal(t, Sell, levels[3].Side)
}

func TestReclassifyBlocksLastTraded(t *testing.T) {
	t.Parallel()

	levels := levelsAt(100, 110, 120)
	Reclassify(levels, 115, levels[1])

	assert.Equal(t, Buy, levels[0].Side)
	assert.Equal(t, Blocked, levels[1].Side)
	assert.Equal(t, Sell, levels[2].Side)

	// The block follows the most recent fill, it does not accumulate.
	Reclassify(levels, 115, levels[2])
	assert.Equal(t, Buy, levels[1].Side)
	assert.Equal(t, Blocked, levels[2].Side)
}

func TestReclassifyLevelAtReferenceKeepsSide(t *testing.T) {
	t.Parallel()

	levels := levelsAt(100, 110, 120)
	Reclassify(levels, 115, nil)
	require.Equal(t, Buy, levels[1].Side)

	// Reference lands exactly on the level: previous side sticks.
	Reclassify(levels, 110, nil)
	assert.Equal(t, Buy, levels[1].Side)
}

func TestSideString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "BUY", Buy.String())
	assert.Equal(t, "SELL", Sell.String())
	assert.Equal(t, "BLOCKED", Blocked.String())
	assert.Equal(t, "UNKNOWN", Side(42).String())
}
