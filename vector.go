package vecspace

import (
	"fmt"
	"slices"

	"github.com/hupe1980/vecspace/distance"
)

// Vector is the read-only capability shared by borrowed and owned word
// vectors. Algorithms (Dot, Cosine, TopK) are written against this
// interface so they work with either flavor.
type Vector interface {
	// Data returns the raw float32 components.
	Data() []float32
	// Term returns the word this vector embeds.
	Term() string
	// Dim returns the number of components.
	Dim() int
}

// Ref is a borrowed word vector: a view into storage owned by someone
// else, usually a Space. It carries no ownership and stays valid only as
// long as the backing buffer is alive and unmodified.
type Ref struct {
	data []float32
	term string
}

// NewRef creates a borrowed vector over the given slice. The slice is
// not copied.
func NewRef(data []float32, term string) Ref {
	return Ref{data: data, term: term}
}

// Data returns the underlying components without copying.
func (r Ref) Data() []float32 { return r.data }

// Term returns the term this vector embeds.
func (r Ref) Term() string { return r.term }

// Dim returns the number of components.
func (r Ref) Dim() int { return len(r.data) }

// Equal reports whether two vectors hold the same term and the same
// components.
func (r Ref) Equal(other Vector) bool {
	return r.term == other.Term() && slices.Equal(r.data, other.Data())
}

// ToOwned promotes the view into an Owned vector with independent
// storage.
func (r Ref) ToOwned() Owned {
	return Owned{data: slices.Clone(r.data), term: r.term}
}

// Owned is a word vector with independent storage, typically produced by
// promoting a Ref or by vector arithmetic.
type Owned struct {
	data []float32
	term string
}

// NewOwned creates an owned vector by copying data.
func NewOwned(data []float32, term string) Owned {
	return Owned{data: slices.Clone(data), term: term}
}

// Data returns the underlying components.
func (o Owned) Data() []float32 { return o.data }

// Term returns the term this vector embeds.
func (o Owned) Term() string { return o.term }

// Dim returns the number of components.
func (o Owned) Dim() int { return len(o.data) }

// Ref reborrows the owned vector as a view.
func (o Owned) Ref() Ref { return Ref{data: o.data, term: o.term} }

// Dot calculates the dot product of two vectors.
// Panics if the dimensions differ; comparing vectors of different
// dimensionality is a caller bug, not a data condition.
func Dot(a, b Vector) float32 {
	ad, bd := a.Data(), b.Data()
	if len(ad) != len(bd) {
		panic(fmt.Sprintf("vecspace: dot product over mismatched dimensions %d and %d", len(ad), len(bd)))
	}
	return distance.Dot(ad, bd)
}

// Length calculates the Euclidean (2-)norm of a vector.
func Length(v Vector) float32 {
	return distance.Norm(v.Data())
}

// Cosine calculates the cosine similarity between two vectors.
// Zero vectors and exactly orthogonal vectors yield 0, never NaN.
func Cosine(a, b Vector) float32 {
	ad, bd := a.Data(), b.Data()
	if len(ad) != len(bd) {
		panic(fmt.Sprintf("vecspace: cosine over mismatched dimensions %d and %d", len(ad), len(bd)))
	}
	return distance.Cosine(ad, bd)
}

// Add returns an Owned vector with the elementwise sum of a and b and a
// term formed by joining both terms with a single space. Used to compose
// multi-word queries.
// Panics if the dimensions differ.
func Add(a, b Vector) Owned {
	ad, bd := a.Data(), b.Data()
	if len(ad) != len(bd) {
		panic(fmt.Sprintf("vecspace: add over mismatched dimensions %d and %d", len(ad), len(bd)))
	}

	sum := make([]float32, len(ad))
	for i := range ad {
		sum[i] = ad[i] + bd[i]
	}

	return Owned{data: sum, term: a.Term() + " " + b.Term()}
}
