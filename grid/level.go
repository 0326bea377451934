package grid

// Side classifies a grid level against the current reference price.
type Side int8

const (
	// Buy levels sit below the reference and fill when the price falls
	// through them.
	Buy Side = iota
	// Sell levels sit above the reference and fill when the price rises
	// through them.
	Sell
	// Blocked marks the most recently filled level; it cannot fill again
	// until a later reclassification reassigns it.
	Blocked
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	case Blocked:
		return "BLOCKED"
	}
	return "UNKNOWN"
}

// Level is one grid line with its per-run fixed trade size and its current
// classification. Price and TradeAmount never change after allocation; Side
// is recomputed before every candle.
type Level struct {
	Price       float64
	TradeAmount float64
	Side        Side
}

// Reclassify recomputes every level's side from the reference price: Sell
// above, Buy below. The most recently filled level stays Blocked. A level
// exactly at the reference keeps its previous side; the strict comparisons in
// crossing detection keep it from filling at that instant.
//
// Classification is deliberately separate from trade execution. Interleaving
// the two is what produced duplicate fills and inverted sides in earlier
// renditions of this engine.
func Reclassify(levels []*Level, ref float64, lastTraded *Level) {
	for _, lv := range levels {
		switch {
		case lv == lastTraded:
			lv.Side = Blocked
		case lv.Price > ref:
			lv.Side = Sell
		case lv.Price < ref:
			lv.Side = Buy
		}
	}
}
