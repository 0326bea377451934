package grid

import (
	"math"
	"time"
)

// AmountEpsilon is the coin amount below which a lot counts as exhausted.
// Balance and inventory comparisons use the same tolerance.
const AmountEpsilon = 1e-8

// Lot is one open purchase: a coin amount still held at its acquisition price.
type Lot struct {
	Amount float64
	Price  float64
	Time   time.Time
}

// Ledger is the FIFO queue of open purchase lots. Every buy appends a lot;
// every sell consumes oldest-first, so realized profit is computed against the
// oldest still-open cost basis.
type Ledger struct {
	lots []Lot
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Append adds a purchase lot at the tail.
func (l *Ledger) Append(amount, price float64, ts time.Time) {
	l.lots = append(l.lots, Lot{Amount: amount, Price: price, Time: ts})
}

// Consume removes amount oldest-first, splitting the head lot when it is
// larger than the remainder, and returns the summed cost-basis profit
// Σ (sellPrice - lot.Price)·slice over the consumed slices.
//
// It is all-or-nothing: when the open total is short of amount the ledger is
// left untouched and ok is false. The caller treats that as "trade not
// possible", not as an error.
func (l *Ledger) Consume(amount, sellPrice float64) (profit float64, ok bool) {
	if l.Total()+AmountEpsilon < amount {
		return 0, false
	}

	remaining := amount
	for remaining > AmountEpsilon && len(l.lots) > 0 {
		head := &l.lots[0]
		slice := math.Min(head.Amount, remaining)

		profit += (sellPrice - head.Price) * slice
		head.Amount -= slice
		remaining -= slice

		if head.Amount <= AmountEpsilon {
			l.lots = l.lots[1:]
		}
	}
	return profit, true
}

// Total returns the summed open amount across all lots.
func (l *Ledger) Total() float64 {
	var sum float64
	for _, lot := range l.lots {
		sum += lot.Amount
	}
	return sum
}

// Depth returns the number of open lots.
func (l *Ledger) Depth() int {
	return len(l.lots)
}

// Lots returns a copy of the open lots, oldest first.
func (l *Ledger) Lots() []Lot {
	out := make([]Lot, len(l.lots))
	copy(out, l.lots)
	return out
}
