package market

import (
	"fmt"
	"time"
)

// Candle represents one OHLCV bar of a price series at a fixed interval.
type Candle struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Series is an ordered candle sequence for one symbol and interval.
type Series []Candle

// Validate checks that the series is non-empty, strictly ascending by
// timestamp and carries positive closes. Gaps and missing bars are allowed;
// the simulation only needs ordering.
func (s Series) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("empty candle series")
	}
	for i, c := range s {
		if c.Close <= 0 {
			return fmt.Errorf("candle %d: non-positive close %g", i, c.Close)
		}
		if i > 0 && !c.Time.After(s[i-1].Time) {
			return fmt.Errorf("candle %d: timestamp %s not after %s",
				i, c.Time.Format(time.RFC3339), s[i-1].Time.Format(time.RFC3339))
		}
	}
	return nil
}

// First returns the first candle of the series.
func (s Series) First() Candle { return s[0] }

// Last returns the last candle of the series.
func (s Series) Last() Candle { return s[len(s)-1] }

// Between returns the subsequence with Time in [from, to). Zero bounds are
// open on that side.
func (s Series) Between(from, to time.Time) Series {
	out := make(Series, 0, len(s))
	for _, c := range s {
		if !from.IsZero() && c.Time.Before(from) {
			continue
		}
		if !to.IsZero() && !c.Time.Before(to) {
			continue
		}
		out = append(out, c)
	}
	return out
}
