package distance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDot(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float32
	}{
		{"Simple", []float32{1, 2, 3}, []float32{4, 5, 6}, 32},
		{"Zero", []float32{0, 0, 0}, []float32{0, 0, 0}, 0},
		{"Mixed", []float32{1, -1, 2}, []float32{1, 1, -2}, -4},
		{"Empty", []float32{}, []float32{}, 0},
		{"Single", []float32{2}, []float32{3}, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dot(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, 1e-5)
		})
	}
}

func TestSquaredL2(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float32
	}{
		{"Simple", []float32{1, 2, 3}, []float32{4, 5, 6}, 27},
		{"Identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 0},
		{"Mixed", []float32{1, -1}, []float32{-1, 1}, 8},
		{"Empty", []float32{}, []float32{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SquaredL2(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, 1e-5)
		})
	}
}

func TestNorm(t *testing.T) {
	assert.InDelta(t, 5, Norm([]float32{3, 4}), 1e-5)
	assert.InDelta(t, math.Sqrt(3), Norm([]float32{1, 1, 1}), 1e-5)
	assert.Equal(t, float32(0), Norm([]float32{0, 0}))
	assert.Equal(t, float32(0), Norm(nil))
}

func TestCosine(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float32
	}{
		{"Identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1},
		{"Opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"Orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"ZeroLeft", []float32{0, 0}, []float32{1, 2}, 0},
		{"ZeroRight", []float32{1, 2}, []float32{0, 0}, 0},
		{"ZeroBoth", []float32{0, 0}, []float32{0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cosine(tt.a, tt.b)
			assert.False(t, math.IsNaN(float64(got)))
			assert.InDelta(t, tt.expected, got, 1e-5)
		})
	}
}

func TestMetricString(t *testing.T) {
	assert.Equal(t, "Cosine", MetricCosine.String())
	assert.Equal(t, "Dot", MetricDot.String())
	assert.Equal(t, "L2", MetricL2.String())
	assert.Equal(t, "Unknown(99)", Metric(99).String())
}

func TestProvider(t *testing.T) {
	t.Run("Cosine", func(t *testing.T) {
		fn, err := Provider(MetricCosine)
		require.NoError(t, err)
		assert.InDelta(t, 1, fn([]float32{1, 2}, []float32{1, 2}), 1e-5)
	})

	t.Run("L2NegatedForSimilarity", func(t *testing.T) {
		fn, err := Provider(MetricL2)
		require.NoError(t, err)

		near := fn([]float32{0, 0}, []float32{1, 0})
		far := fn([]float32{0, 0}, []float32{5, 0})
		assert.Greater(t, near, far)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := Provider(Metric(99))
		require.Error(t, err)
	})
}
