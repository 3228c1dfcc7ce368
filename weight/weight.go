// Package weight defines the saturating scalar every drainly budget is
// expressed in.  The unit is opaque to the executor; hosts typically map it
// to gas, instruction counts or time slices.
package weight

import "math"

// Weight is a non-negative amount of abstract work.
type Weight uint64

// Max is the largest representable weight.
const Max = Weight(math.MaxUint64)

// Add returns w + other, saturating at Max instead of wrapping.
func (w Weight) Add(other Weight) Weight {
	if other > Max-w {
		return Max
	}
	return w + other
}

// Sub returns w - other, saturating at zero instead of wrapping.
func (w Weight) Sub(other Weight) Weight {
	if other >= w {
		return 0
	}
	return w - other
}

// Min returns the smaller of w and other.
func (w Weight) Min(other Weight) Weight {
	if other < w {
		return other
	}
	return w
}

// IsZero reports whether no weight is left.
func (w Weight) IsZero() bool {
	return w == 0
}
