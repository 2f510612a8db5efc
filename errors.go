package vecspace

import "fmt"

// ErrDimensionMismatch indicates a vector whose dimensionality disagrees
// with the Space it was inserted into.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}
