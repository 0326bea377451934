package market

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Pattern selects the shape of a generated candle series.
type Pattern string

const (
	PatternLinearUp   Pattern = "linear-up"
	PatternLinearDown Pattern = "linear-down"
	PatternSine       Pattern = "sine"
	PatternRange      Pattern = "range"
	PatternBreakout   Pattern = "breakout"
	PatternRandomWalk Pattern = "random-walk"
)

// SyntheticConfig describes a generated candle series. Volatility is an
// absolute price amplitude, not a percentage. The same config always produces
// the same series; random patterns draw from a PRNG seeded with Seed.
type SyntheticConfig struct {
	Pattern      Pattern
	Bars         int
	Start        time.Time
	Interval     time.Duration
	InitialPrice float64
	Volatility   float64
	Seed         int64
}

// Generate produces a deterministic synthetic candle series for exercising
// the grid engine without market data.
func Generate(cfg SyntheticConfig) (Series, error) {
	if cfg.Bars <= 0 {
		return nil, fmt.Errorf("synthetic: bars must be positive, got %d", cfg.Bars)
	}
	if cfg.InitialPrice <= 0 {
		return nil, fmt.Errorf("synthetic: initial price must be positive, got %g", cfg.InitialPrice)
	}
	if cfg.Interval <= 0 {
		cfg.Interval = time.Hour
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	closes, err := closesFor(cfg, rng)
	if err != nil {
		return nil, err
	}

	s := make(Series, cfg.Bars)
	for i, px := range closes {
		spread := math.Abs(rng.NormFloat64()) * cfg.Volatility / 50
		s[i] = Candle{
			Time:   cfg.Start.Add(time.Duration(i) * cfg.Interval),
			Open:   px,
			High:   px + spread,
			Low:    math.Max(px-spread, 1),
			Close:  px,
			Volume: 100 + 50*rng.Float64(),
		}
	}
	return s, nil
}

func closesFor(cfg SyntheticConfig, rng *rand.Rand) ([]float64, error) {
	n := cfg.Bars
	px := make([]float64, n)
	step := cfg.Volatility / 10

	switch cfg.Pattern {
	case PatternLinearUp:
		for i := range px {
			px[i] = cfg.InitialPrice + float64(i)*step
		}
	case PatternLinearDown:
		for i := range px {
			px[i] = math.Max(cfg.InitialPrice-float64(i)*step, 1)
		}
	case PatternSine:
		for i := range px {
			px[i] = cfg.InitialPrice + cfg.Volatility*math.Sin(float64(i)/5)
		}
	case PatternRange:
		for i := range px {
			px[i] = cfg.InitialPrice + cfg.Volatility*(0.5-float64(i%20)/20)
		}
	case PatternBreakout:
		// Slow drift for the first half, then a sharp leg up.
		half := n / 2
		for i := range px {
			if i < half {
				px[i] = cfg.InitialPrice + 0.2*cfg.Volatility*float64(i)/float64(half)
			} else {
				px[i] = cfg.InitialPrice + 0.2*cfg.Volatility +
					0.8*cfg.Volatility*float64(i-half)/float64(n-half)
			}
		}
	case PatternRandomWalk:
		px[0] = cfg.InitialPrice
		for i := 1; i < n; i++ {
			px[i] = math.Max(px[i-1]+cfg.Volatility*(rng.Float64()-0.5), 1)
		}
	default:
		return nil, fmt.Errorf("synthetic: unknown pattern %q", cfg.Pattern)
	}
	return px, nil
}
