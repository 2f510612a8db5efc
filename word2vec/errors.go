package word2vec

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingSeparator is returned when a record contains no term
	// separator.
	ErrMissingSeparator = errors.New("missing term separator")

	// ErrInvalidEncoding is returned when a record is not valid UTF-8.
	ErrInvalidEncoding = errors.New("invalid utf-8 encoding")

	// ErrHeaderRequired is returned when parsing binary input without a
	// header. Binary records are not self-delimiting, so the dimension
	// has to come from the header.
	ErrHeaderRequired = errors.New("binary format requires a header")
)

// ErrInvalidHeader indicates a missing or unparsable header line.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidHeader struct {
	Line  string
	cause error
}

func (e *ErrInvalidHeader) Error() string {
	return fmt.Sprintf("invalid header line %q", e.Line)
}

func (e *ErrInvalidHeader) Unwrap() error { return e.cause }

// ErrMalformedRecord indicates a record that could not be parsed.
// Record is the zero-based position in the input.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrMalformedRecord struct {
	Record int
	cause  error
}

func (e *ErrMalformedRecord) Error() string {
	return fmt.Sprintf("malformed record %d: %v", e.Record, e.cause)
}

func (e *ErrMalformedRecord) Unwrap() error { return e.cause }

// ErrTruncatedRecord indicates that the input ended in the middle of a
// binary record's float payload.
type ErrTruncatedRecord struct {
	Term     string
	Expected int
	Got      int
}

func (e *ErrTruncatedRecord) Error() string {
	return fmt.Sprintf("truncated record %q: expected %d payload bytes, got %d", e.Term, e.Expected, e.Got)
}
