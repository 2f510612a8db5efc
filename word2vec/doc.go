// Package word2vec parses and emits the word2vec interchange format, in
// both its text and binary flavors, streaming records directly into and
// out of a vecspace.Space.
//
// # Format contract
//
// The first line is a header with two ASCII decimal integers, record
// count followed by dimension, separated by whitespace:
//
//	count dimension\n
//
// Parser and Exporter both use this field order. The count is
// informative: the parser uses it only to pre-size the Space and does
// not complain when fewer records follow.
//
// A text record is a term and its components, separator characters are
// configurable and default to a single space:
//
//	term 0.12 -4.5 1e-3\n
//
// A binary record is the term, one separator byte, then exactly
// dimension little-endian IEEE-754 float32 values with no delimiters in
// between. Record boundaries are implied by the dimension, which is why
// binary input always needs a header.
//
// Parsing is all-or-nothing: a malformed record, a truncated binary
// record or a transport failure aborts the whole parse and no partial
// Space is returned. Embedding files come from trusted pipelines;
// never silently dropping or misaligning a record outranks resilience
// to corrupt input.
//
// ParseFile and ExportFile transparently handle gzip (.gz), zstd (.zst)
// and lz4 (.lz4) compressed files by extension.
package word2vec
