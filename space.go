package vecspace

import (
	"fmt"
	"iter"
	"slices"
)

// Space is a memory-optimized container for a large number of
// fixed-dimension word vectors.
//
// All vector data lives in a single flat float32 buffer, logically
// partitioned into equal-length segments, one per record in insertion
// order. Since every vector shares the same dimension, the segment for
// record i is a plain arithmetic offset; there is no per-record
// allocation and sequential scans stay cache friendly.
//
// A Space is append-only: records are never updated or removed
// individually, Clear drops them all at once. It performs no internal
// locking; concurrent mutation is the caller's problem.
type Space struct {
	// data holds all vector components back to back, dim per record.
	data []float32

	// words is index-aligned with the segments of data.
	words []string

	dim int

	// termMap maps a term to its record position. nil means term lookup
	// is disabled, which is the default as the map roughly doubles the
	// per-record bookkeeping.
	termMap map[string]uint32
}

// New creates an empty Space with the given dimension. A dimension of 0
// defers the choice to the first inserted vector.
func New(dim int) *Space {
	return &Space{dim: dim}
}

// WithTermMap enables O(1) term lookup via FindTerm, indexing any
// existing records. Terms inserted more than once resolve to the most
// recent occurrence. Calling it again rebuilds the map. Returns s.
func (s *Space) WithTermMap() *Space {
	m := make(map[string]uint32, len(s.words))
	for i, term := range s.words {
		m[term] = uint32(i) //nolint:gosec
	}
	s.termMap = m

	return s
}

// Len returns the number of vectors in the Space.
func (s *Space) Len() int { return len(s.words) }

// IsEmpty reports whether the Space holds no vectors.
func (s *Space) IsEmpty() bool { return len(s.words) == 0 }

// Dim returns the dimension of the Space.
func (s *Space) Dim() int { return s.dim }

// Reserve grows the underlying buffers for at least additional more
// vectors.
func (s *Space) Reserve(additional int) {
	s.words = slices.Grow(s.words, additional)
	s.data = slices.Grow(s.data, additional*s.dim)
}

// ShrinkToFit drops spare capacity from the underlying buffers.
func (s *Space) ShrinkToFit() {
	s.words = slices.Clip(s.words)
	s.data = slices.Clip(s.data)
}

// Clear removes all vectors. The dimension and term map mode survive.
func (s *Space) Clear() {
	s.data = s.data[:0]
	s.words = s.words[:0]
	if s.termMap != nil {
		clear(s.termMap)
	}
}

// Insert appends a vector. A Space created with dimension 0 adopts the
// dimension of the first vector; afterwards any vector whose dimension
// disagrees is rejected with ErrDimensionMismatch and the Space is left
// unchanged.
//
// The vector's data is copied into the Space; the caller's buffer is not
// retained.
func (s *Space) Insert(v Vector) error {
	if s.dim == 0 && len(s.words) == 0 {
		s.dim = v.Dim()
	}

	if v.Dim() != s.dim {
		return &ErrDimensionMismatch{Expected: s.dim, Actual: v.Dim()}
	}

	s.data = append(s.data, v.Data()...)
	s.words = append(s.words, v.Term())

	if s.termMap != nil {
		s.termMap[v.Term()] = uint32(len(s.words) - 1) //nolint:gosec
	}

	return nil
}

// Extend appends each vector via Insert. A dimension mismatch aborts the
// whole operation and is returned; vectors inserted before the offending
// one remain. Mixed-dimension input indicates a caller bug, so there is
// no per-record recovery here.
func (s *Space) Extend(vectors ...Vector) error {
	s.Reserve(len(vectors))

	for i, v := range vectors {
		if err := s.Insert(v); err != nil {
			return fmt.Errorf("extend aborted at vector %d (%q): %w", i, v.Term(), err)
		}
	}

	return nil
}

// Get returns a borrowed view of the vector at pos, or false if pos is
// out of range. O(1).
func (s *Space) Get(pos int) (Ref, bool) {
	if pos < 0 || pos >= len(s.words) {
		return Ref{}, false
	}

	off := pos * s.dim

	return Ref{
		data: s.data[off : off+s.dim : off+s.dim],
		term: s.words[pos],
	}, true
}

// FindTerm returns the vector stored under term. It requires the term
// map (see WithTermMap); without it, or for an unknown term, it returns
// false. For duplicate terms the most recently inserted record wins.
func (s *Space) FindTerm(term string) (Ref, bool) {
	pos, ok := s.termMap[term]
	if !ok {
		return Ref{}, false
	}

	return s.Get(int(pos))
}

// All iterates over all vectors in insertion order, yielding each
// position and a borrowed view.
func (s *Space) All() iter.Seq2[int, Ref] {
	return func(yield func(int, Ref) bool) {
		for i := range s.words {
			v, _ := s.Get(i)
			if !yield(i, v) {
				return
			}
		}
	}
}

// Terms iterates over all terms in insertion order.
func (s *Space) Terms() iter.Seq[string] {
	return slices.Values(s.words)
}

// Equal reports whether two Spaces hold the same dimension and the same
// records in the same order. The term map mode does not participate.
func (s *Space) Equal(other *Space) bool {
	return s.dim == other.dim &&
		slices.Equal(s.words, other.words) &&
		slices.Equal(s.data, other.data)
}
