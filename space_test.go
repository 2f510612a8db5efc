package vecspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVectors() []Vector {
	return []Vector{
		NewRef([]float32{1.0, 0.07, 23.1}, "a"),
		NewRef([]float32{0.13, 3.19, 3.12}, "b"),
		NewRef([]float32{3.193, 3.1, 32.1}, "c"),
	}
}

func testSpace(t *testing.T) *Space {
	t.Helper()

	space := New(3)
	require.NoError(t, space.Extend(testVectors()...))

	return space
}

func TestSpaceGet(t *testing.T) {
	space := testSpace(t)

	for pos, want := range testVectors() {
		got, ok := space.Get(pos)
		require.True(t, ok)
		assert.True(t, got.Equal(want))
	}

	_, ok := space.Get(3)
	assert.False(t, ok)
	_, ok = space.Get(-1)
	assert.False(t, ok)
}

func TestSpaceInsertCopies(t *testing.T) {
	space := New(2)

	data := []float32{1, 2}
	require.NoError(t, space.Insert(NewRef(data, "a")))

	// The caller's buffer must not alias the store.
	data[0] = 42
	got, ok := space.Get(0)
	require.True(t, ok)
	assert.Equal(t, float32(1), got.Data()[0])
}

func TestSpaceDimensionGuard(t *testing.T) {
	space := testSpace(t)

	err := space.Insert(NewRef([]float32{1, 2, 3, 4}, "d"))
	require.Error(t, err)

	var mismatch *ErrDimensionMismatch
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 3, mismatch.Expected)
	assert.Equal(t, 4, mismatch.Actual)

	// The store is left untouched.
	assert.Equal(t, 3, space.Len())
	_, ok := space.Get(3)
	assert.False(t, ok)
}

func TestSpaceDeferredDimension(t *testing.T) {
	space := New(0)
	assert.Equal(t, 0, space.Dim())

	require.NoError(t, space.Insert(NewRef([]float32{1, 2}, "a")))
	assert.Equal(t, 2, space.Dim())

	err := space.Insert(NewRef([]float32{1, 2, 3}, "b"))
	var mismatch *ErrDimensionMismatch
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 2, mismatch.Expected)
}

func TestSpaceExtendAborts(t *testing.T) {
	space := New(3)

	err := space.Extend(
		NewRef([]float32{1, 2, 3}, "ok"),
		NewRef([]float32{1, 2}, "bad"),
		NewRef([]float32{4, 5, 6}, "never"),
	)
	require.Error(t, err)

	var mismatch *ErrDimensionMismatch
	assert.ErrorAs(t, err, &mismatch)

	// Everything before the offending vector stays, nothing after it.
	assert.Equal(t, 1, space.Len())
}

func TestSpaceFindTerm(t *testing.T) {
	t.Run("IndexingAfterInsert", func(t *testing.T) {
		space := testSpace(t).WithTermMap()

		for _, want := range testVectors() {
			got, ok := space.FindTerm(want.Term())
			require.True(t, ok)
			assert.Equal(t, want.Data(), got.Data())
		}
	})

	t.Run("IndexingWhileInserting", func(t *testing.T) {
		space := New(3).WithTermMap()
		require.NoError(t, space.Extend(testVectors()...))

		for _, want := range testVectors() {
			got, ok := space.FindTerm(want.Term())
			require.True(t, ok)
			assert.Equal(t, want.Data(), got.Data())
		}
	})

	t.Run("Disabled", func(t *testing.T) {
		space := testSpace(t)

		_, ok := space.FindTerm("a")
		assert.False(t, ok)
	})

	t.Run("Absent", func(t *testing.T) {
		space := testSpace(t).WithTermMap()

		_, ok := space.FindTerm("nope")
		assert.False(t, ok)
	})

	t.Run("LastWriterWins", func(t *testing.T) {
		space := New(3).WithTermMap()
		require.NoError(t, space.Extend(
			NewRef([]float32{1.2, 2.0, 4.4}, "term1"),
			NewRef([]float32{2.3, 1.0, 3.4}, "term3"),
			NewRef([]float32{3.1, 9.4, 3.0}, "term3"),
		))

		got, ok := space.FindTerm("term3")
		require.True(t, ok)
		assert.Equal(t, []float32{3.1, 9.4, 3.0}, got.Data())

		// Both occurrences are still stored.
		assert.Equal(t, 3, space.Len())
	})
}

func TestSpaceClear(t *testing.T) {
	space := testSpace(t).WithTermMap()

	space.Clear()
	assert.True(t, space.IsEmpty())
	assert.Equal(t, 3, space.Dim())

	_, ok := space.FindTerm("a")
	assert.False(t, ok)

	// Still usable after clearing.
	require.NoError(t, space.Insert(NewRef([]float32{1, 2, 3}, "x")))
	got, ok := space.FindTerm("x")
	require.True(t, ok)
	assert.Equal(t, "x", got.Term())
}

func TestSpaceAll(t *testing.T) {
	space := testSpace(t)

	var terms []string
	for pos, v := range space.All() {
		assert.Equal(t, len(terms), pos)
		terms = append(terms, v.Term())
	}
	assert.Equal(t, []string{"a", "b", "c"}, terms)
}

func TestSpaceEqual(t *testing.T) {
	a := testSpace(t)
	b := testSpace(t)
	assert.True(t, a.Equal(b))

	require.NoError(t, b.Insert(NewRef([]float32{0, 0, 0}, "extra")))
	assert.False(t, a.Equal(b))
}

func TestSpaceReserveAndShrink(t *testing.T) {
	space := New(3)
	space.Reserve(100)
	require.NoError(t, space.Extend(testVectors()...))
	space.ShrinkToFit()

	assert.Equal(t, 3, space.Len())
	got, ok := space.Get(2)
	require.True(t, ok)
	assert.Equal(t, "c", got.Term())
}
