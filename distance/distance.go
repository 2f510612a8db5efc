package distance

import (
	"fmt"
	"math"
)

// Dot calculates the dot product of two vectors.
// Assumes vectors are the same length (caller's responsibility).
func Dot(a, b []float32) float32 {
	var ret float32
	for i := range a {
		ret += a[i] * b[i]
	}

	return ret
}

// SquaredL2 calculates the squared L2 (Euclidean) distance between two
// vectors. Assumes vectors are the same length (caller's responsibility).
func SquaredL2(a, b []float32) float32 {
	var ret float32
	for i := range a {
		d := a[i] - b[i]
		ret += d * d
	}

	return ret
}

// Norm calculates the Euclidean (2-)norm of a vector.
func Norm(v []float32) float32 {
	return float32(math.Sqrt(float64(Dot(v, v))))
}

// Cosine calculates the cosine similarity between two vectors.
//
// Degenerate inputs are data conditions, not errors: if the dot product
// is exactly zero, or either vector has zero norm, the result is 0 and
// never NaN.
func Cosine(a, b []float32) float32 {
	dot := Dot(a, b)
	if dot == 0 {
		return 0
	}

	div := Norm(a) * Norm(b)
	if div == 0 {
		return 0
	}

	return dot / div
}

// Metric represents the similarity metric used for vector comparison.
type Metric int

const (
	MetricCosine Metric = iota
	MetricDot
	MetricL2
)

func (m Metric) String() string {
	switch m {
	case MetricCosine:
		return "Cosine"
	case MetricDot:
		return "Dot"
	case MetricL2:
		return "L2"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Func is a function type for similarity calculation. Higher means more
// similar.
type Func func(a, b []float32) float32

// Provider returns the similarity function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricCosine:
		return Cosine, nil
	case MetricDot:
		return Dot, nil
	case MetricL2:
		// Negated so that higher still means more similar.
		return func(a, b []float32) float32 { return -SquaredL2(a, b) }, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
