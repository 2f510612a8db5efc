package word2vec

import "github.com/hupe1980/vecspace"

const (
	// DefaultTermSeparator separates the term from the vector data.
	DefaultTermSeparator byte = ' '
	// DefaultVecSeparator separates components in text mode.
	DefaultVecSeparator byte = ' '
)

// ParserOptions configures a Parser. The zero values are not the
// defaults; use NewParser to get a properly defaulted instance.
type ParserOptions struct {
	// Header treats the first line as a "count dimension" header.
	// Default true.
	Header bool

	// TermSeparator separates the term from the vector data.
	// Default ' '.
	TermSeparator byte

	// VecSeparator separates components in text mode. Default ' '.
	VecSeparator byte

	// Binary selects the binary sub-format. Binary input always needs a
	// header. Default false.
	Binary bool

	// IndexTerms builds the term lookup map incrementally while
	// streaming, avoiding a backfill pass after the load. Default false.
	IndexTerms bool

	// Logger receives structured parse logs. Defaults to a noop logger.
	Logger *vecspace.Logger
}

// ExporterOptions configures an Exporter.
type ExporterOptions struct {
	// TermSeparator separates the term from the vector data.
	// Default ' '.
	TermSeparator byte

	// VecSeparator separates components in text mode. Default ' '.
	VecSeparator byte

	// Binary selects the binary sub-format. Default false.
	Binary bool

	// Logger receives structured export logs. Defaults to a noop logger.
	Logger *vecspace.Logger
}
