package sim

// Position is the simulated account of one run: quote balance and coin held.
// Both stay non-negative for the whole run; a trade that would push either
// below zero is rejected outright, never clamped.
type Position struct {
	USDT float64
	Coin float64
}

// Value marks the position to market at the given price.
func (p Position) Value(price float64) float64 {
	return p.USDT + p.Coin*price
}
