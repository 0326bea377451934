package market

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePatternsValidate(t *testing.T) {
	t.Parallel()

	patterns := []Pattern{
		PatternLinearUp, PatternLinearDown, PatternSine,
		PatternRange, PatternBreakout, PatternRandomWalk,
	}

	for _, p := range patterns {
		p := p
		t.Run(string(p), func(t *testing.T) {
			t.Parallel()

			s, err := Generate(SyntheticConfig{
				Pattern:      p,
				Bars:         200,
				Start:        base,
				Interval:     time.Hour,
				InitialPrice: 60_000,
				Volatility:   5_000,
				Seed:         7,
			})
			require.NoError(t, err)
			require.Len(t, s, 200)
			assert.NoError(t, s.Validate())
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	t.Parallel()

	cfg := SyntheticConfig{
		Pattern:      PatternRandomWalk,
		Bars:         100,
		Start:        base,
		Interval:     time.Hour,
		InitialPrice: 60_000,
		Volatility:   2_000,
		Seed:         42,
	}

	a, err := Generate(cfg)
	require.NoError(t, err)
	b, err := Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	cfg.Seed = 43
	c, err := Generate(cfg)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestGenerateLinearShapes(t *testing.T) {
	t.Parallel()

	up, err := Generate(SyntheticConfig{
		Pattern: PatternLinearUp, Bars: 50, Start: base,
		InitialPrice: 60_000, Volatility: 1_000, Seed: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 60_000.0, up.First().Close)
	assert.Greater(t, up.Last().Close, up.First().Close)

	down, err := Generate(SyntheticConfig{
		Pattern: PatternLinearDown, Bars: 50, Start: base,
		InitialPrice: 60_000, Volatility: 1_000, Seed: 1,
	})
	require.NoError(t, err)
	assert.Less(t, down.Last().Close, down.First().Close)
}

func TestGenerateRejectsBadConfig(t *testing.T) {
	t.Parallel()

	_, err := Generate(SyntheticConfig{Pattern: PatternSine, Bars: 0, InitialPrice: 100})
	assert.Error(t, err)

	_, err = Generate(SyntheticConfig{Pattern: PatternSine, Bars: 10, InitialPrice: 0})
	assert.Error(t, err)

	_, err = Generate(SyntheticConfig{Pattern: Pattern("zigzag"), Bars: 10, InitialPrice: 100})
	assert.ErrorContains(t, err, "unknown pattern")
}
