package backtest

import (
	"time"

	"github.com/evogt/gridbot/market"
)

// CandleFeed yields candles one at a time in ascending timestamp order.
// Implementations must be deterministic and return ok=false, err=nil at EOF.
type CandleFeed interface {
	Next() (c market.Candle, ok bool, err error)
	Close() error
}

// SeriesFeed replays an in-memory candle series.
type SeriesFeed struct {
	s   market.Series
	idx int
}

func NewSeriesFeed(s market.Series) *SeriesFeed {
	return &SeriesFeed{s: s}
}

func (f *SeriesFeed) Next() (market.Candle, bool, error) {
	if f.idx >= len(f.s) {
		return market.Candle{}, false, nil
	}
	c := f.s[f.idx]
	f.idx++
	return c, true, nil
}

func (f *SeriesFeed) Close() error { return nil }

// NewCSVFeed loads a candle CSV file and replays the rows with Time in
// [from, to). Zero bounds are open. Candle runs are bounded (a few thousand
// bars), so the file is read up front rather than streamed.
func NewCSVFeed(path string, from, to time.Time) (*SeriesFeed, error) {
	s, err := market.LoadCSV(path)
	if err != nil {
		return nil, err
	}
	return NewSeriesFeed(s.Between(from, to)), nil
}

// ReadAll drains a feed into a series and closes it.
func ReadAll(f CandleFeed) (market.Series, error) {
	defer f.Close()

	var s market.Series
	for {
		c, ok, err := f.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return s, nil
		}
		s = append(s, c)
	}
}
