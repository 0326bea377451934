package grid

import "math"

// Mode selects the spacing of grid lines inside the price band.
type Mode string

const (
	// Arithmetic spaces lines with a constant absolute step.
	Arithmetic Mode = "arithmetic"
	// Geometric spaces lines with a constant price ratio.
	Geometric Mode = "geometric"
)

// ParseMode maps a config string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case Arithmetic:
		return Arithmetic, nil
	case Geometric:
		return Geometric, nil
	}
	return "", invalid("grid_mode", "%q is not one of %q, %q", s, Arithmetic, Geometric)
}

// Lines returns num+1 strictly ascending price levels spanning [lower, upper],
// both bounds included exactly. The top level is pinned to upper so float
// drift cannot lose the bound.
func Lines(lower, upper float64, num int, mode Mode) ([]float64, error) {
	if lower <= 0 {
		return nil, invalid("lower_price", "must be positive, got %g", lower)
	}
	if upper <= lower {
		return nil, invalid("upper_price", "must be greater than lower price %g, got %g", lower, upper)
	}
	if num < 2 {
		return nil, invalid("num_grids", "at least 2 grids required, got %d", num)
	}

	lines := make([]float64, num+1)
	switch mode {
	case Arithmetic:
		step := (upper - lower) / float64(num)
		for i := range lines {
			lines[i] = lower + float64(i)*step
		}
	case Geometric:
		ratio := math.Pow(upper/lower, 1/float64(num))
		px := lower
		for i := range lines {
			lines[i] = px
			px *= ratio
		}
	default:
		return nil, invalid("grid_mode", "%q is not one of %q, %q", mode, Arithmetic, Geometric)
	}

	lines[num] = upper
	return lines, nil
}
