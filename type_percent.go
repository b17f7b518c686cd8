package tranche

import "fmt"

// Percent is a percentage value in points: Percent(10.5) renders as
// "10.50%".
type Percent float64

// FromFraction converts a fraction (0.105) into a Percent (10.5).
func FromFraction(f float64) Percent { return Percent(100 * f) }

// Fraction converts back to a fraction.
func (p Percent) Fraction() float64 { return float64(p) / 100 }

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}
