package vecspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefToOwned(t *testing.T) {
	data := []float32{1.5, -2, 0.25}
	ref := NewRef(data, "word")

	owned := ref.ToOwned()
	assert.Equal(t, ref.Term(), owned.Term())
	assert.Equal(t, ref.Data(), owned.Data())

	// Mutating the original buffer must not leak into the owned copy.
	data[0] = 99
	assert.Equal(t, float32(1.5), owned.Data()[0])
	assert.Equal(t, float32(99), ref.Data()[0])
}

func TestOwnedReborrow(t *testing.T) {
	owned := NewOwned([]float32{1, 2, 3}, "word")
	ref := owned.Ref()

	assert.Equal(t, owned.Term(), ref.Term())
	assert.Equal(t, owned.Data(), ref.Data())
	assert.Equal(t, 3, ref.Dim())
}

func TestAdd(t *testing.T) {
	a := NewRef([]float32{1, 2, 3}, "foo")
	b := NewRef([]float32{0.5, -2, 10}, "bar")

	sum := Add(a, b)
	assert.Equal(t, "foo bar", sum.Term())
	assert.Equal(t, []float32{1.5, 0, 13}, sum.Data())

	// Left-to-right order is preserved when chaining.
	chained := Add(sum, NewRef([]float32{0, 0, 0}, "baz"))
	assert.Equal(t, "foo bar baz", chained.Term())

	assert.Panics(t, func() {
		Add(a, NewRef([]float32{1, 2}, "short"))
	})
}

func TestDot(t *testing.T) {
	a := NewRef([]float32{1, 2, 3}, "a")
	b := NewRef([]float32{4, 5, 6}, "b")

	assert.InDelta(t, 32, Dot(a, b), 1e-5)

	assert.Panics(t, func() {
		Dot(a, NewRef([]float32{1}, "short"))
	})
}

func TestLength(t *testing.T) {
	assert.InDelta(t, 5, Length(NewRef([]float32{3, 4}, "a")), 1e-5)
	assert.InDelta(t, 0, Length(NewRef([]float32{0, 0}, "zero")), 1e-9)
}

func TestCosine(t *testing.T) {
	t.Run("SelfSimilarity", func(t *testing.T) {
		v := NewRef([]float32{1.2, -3.4, 0.5}, "v")
		assert.InDelta(t, 1.0, Cosine(v, v), 1e-5)
	})

	t.Run("Bounds", func(t *testing.T) {
		a := NewRef([]float32{1, 2, 3}, "a")
		b := NewRef([]float32{-3, 0.5, 7}, "b")

		c := Cosine(a, b)
		require.GreaterOrEqual(t, c, float32(-1.0)-1e-5)
		require.LessOrEqual(t, c, float32(1.0)+1e-5)
	})

	t.Run("Opposite", func(t *testing.T) {
		a := NewRef([]float32{1, 0}, "a")
		b := NewRef([]float32{-1, 0}, "b")
		assert.InDelta(t, -1.0, Cosine(a, b), 1e-5)
	})

	t.Run("ZeroVector", func(t *testing.T) {
		zero := NewRef([]float32{0, 0, 0}, "zero")
		v := NewRef([]float32{1, 2, 3}, "v")

		assert.Equal(t, float32(0), Cosine(zero, v))
		assert.Equal(t, float32(0), Cosine(v, zero))
		assert.Equal(t, float32(0), Cosine(zero, zero))
	})

	t.Run("Orthogonal", func(t *testing.T) {
		a := NewRef([]float32{1, 0}, "a")
		b := NewRef([]float32{0, 1}, "b")
		assert.Equal(t, float32(0), Cosine(a, b))
	})
}
