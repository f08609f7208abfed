// Package affect implements the PAD (pleasure/arousal/dominance) affect
// model and the emotion taxonomy built on top of it.
package affect

import "fmt"

const (
	// AxisMin and AxisMax bound every stored PAD component.
	AxisMin = -100
	AxisMax = 100

	// DeltaCap bounds the net impact a single bulk window may apply per axis.
	DeltaCap = 80
)

// Composite score weights. The taxonomy scorer reuses them for per-axis
// match quality, so the two stay in lockstep.
const (
	WeightPleasure  = 0.4
	WeightArousal   = 0.35
	WeightDominance = 0.25
)

// Vector is a PAD affect vector. Each component is in [-100, 100].
type Vector struct {
	Pleasure  int
	Arousal   int
	Dominance int
}

// RangeError reports a component outside the valid axis range.
type RangeError struct {
	Axis  string
	Value int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("affect: %s must be between %d and %d, got %d", e.Axis, AxisMin, AxisMax, e.Value)
}

// New validates each component strictly. Out-of-range input is an error,
// never a clamp; boundary values -100 and 100 are accepted.
func New(pleasure, arousal, dominance int) (Vector, error) {
	for _, c := range []struct {
		axis  string
		value int
	}{
		{"pleasure", pleasure},
		{"arousal", arousal},
		{"dominance", dominance},
	} {
		if c.value < AxisMin || c.value > AxisMax {
			return Vector{}, &RangeError{Axis: c.axis, Value: c.value}
		}
	}
	return Vector{Pleasure: pleasure, Arousal: arousal, Dominance: dominance}, nil
}

// Clamp saturates each component independently to [-100, 100]. It always
// succeeds; update paths use it instead of New.
func Clamp(pleasure, arousal, dominance int) Vector {
	return Vector{
		Pleasure:  clampAxis(pleasure, AxisMin, AxisMax),
		Arousal:   clampAxis(arousal, AxisMin, AxisMax),
		Dominance: clampAxis(dominance, AxisMin, AxisMax),
	}
}

// ClampDelta saturates a net per-axis impact to [-80, 80]. The bulk pipeline
// applies this narrower cap to the summed window impact before the final
// stored-value clamp.
func ClampDelta(pleasure, arousal, dominance int) (int, int, int) {
	return clampAxis(pleasure, -DeltaCap, DeltaCap),
		clampAxis(arousal, -DeltaCap, DeltaCap),
		clampAxis(dominance, -DeltaCap, DeltaCap)
}

// Add returns the clamped sum of v and a per-axis delta.
func (v Vector) Add(pleasure, arousal, dominance int) Vector {
	return Clamp(v.Pleasure+pleasure, v.Arousal+arousal, v.Dominance+dominance)
}

// CompositeScore summarizes the vector as 0.4p + 0.35a + 0.25d. The weights
// sum to 1.0 so the result cannot leave the axis range today, but it is
// re-clamped anyway so a future weight change cannot leak an out-of-range
// taxonomy key.
func (v Vector) CompositeScore() float64 {
	score := float64(v.Pleasure)*WeightPleasure +
		float64(v.Arousal)*WeightArousal +
		float64(v.Dominance)*WeightDominance
	if score < AxisMin {
		return AxisMin
	}
	if score > AxisMax {
		return AxisMax
	}
	return score
}

func clampAxis(value, min, max int) int {
	switch {
	case value < min:
		return min
	case value > max:
		return max
	default:
		return value
	}
}
