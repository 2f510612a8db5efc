package word2vec

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"iter"
	"math"
	"os"
	"strconv"

	"github.com/hupe1980/vecspace"
	"github.com/hupe1980/vecspace/blobstore"
)

// Exporter writes a vecspace.Space in the word2vec interchange format.
// The required call order is WriteHeader, then ExportVector for each
// record; ExportSpace and ExportSpaceFiltered do both.
type Exporter struct {
	opts          ExporterOptions
	w             io.Writer
	headerWritten bool

	// buf is per-record scratch so a large export allocates once.
	buf []byte
}

// NewExporter creates an Exporter writing to w. Text mode with
// single-space separators is the default.
func NewExporter(w io.Writer, optFns ...func(o *ExporterOptions)) *Exporter {
	opts := ExporterOptions{
		TermSeparator: DefaultTermSeparator,
		VecSeparator:  DefaultVecSeparator,
		Logger:        vecspace.NoopLogger(),
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Exporter{opts: opts, w: w}
}

// ExportSpace writes the header and every record of the Space in store
// order. Returns the total number of bytes written.
func (e *Exporter) ExportSpace(space *vecspace.Space) (int, error) {
	return e.ExportSpaceFiltered(space, nil)
}

// ExportSpaceFiltered writes the header and every record for which keep
// returns true, applying the predicate lazily while streaming; no
// intermediate collection is built. A nil predicate keeps everything.
//
// The header count always reflects the full Space, since the number of
// surviving records is unknown until the stream has been written.
func (e *Exporter) ExportSpaceFiltered(space *vecspace.Space, keep func(v vecspace.Ref) bool) (int, error) {
	written, err := e.WriteHeader(space.Len(), space.Dim())
	if err != nil {
		return written, fmt.Errorf("write header: %w", err)
	}

	count := 0
	for _, v := range space.All() {
		if keep != nil && !keep(v) {
			continue
		}

		n, err := e.ExportVector(v)
		written += n
		if err != nil {
			e.opts.Logger.LogExport(count, written, err)
			return written, err
		}

		count++
	}

	e.opts.Logger.LogExport(count, written, nil)

	return written, nil
}

// WriteHeader writes the "count dimension" header line. Returns the
// number of bytes written.
func (e *Exporter) WriteHeader(count, dim int) (int, error) {
	e.headerWritten = true

	buf := e.buf[:0]
	buf = strconv.AppendInt(buf, int64(count), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(dim), 10)
	buf = append(buf, '\n')
	e.buf = buf

	return e.w.Write(buf)
}

// ExportVector writes a single record. WriteHeader must have been called
// first; forgetting it is a programmer error, not a data condition, and
// panics.
func (e *Exporter) ExportVector(v vecspace.Vector) (int, error) {
	if !e.headerWritten {
		panic("word2vec: ExportVector called before WriteHeader")
	}

	if e.opts.Binary {
		return e.writeBinaryRecord(v)
	}

	return e.writeTextRecord(v)
}

// ExportVectors writes every record yielded by seq, such as a filtered
// view over Space.All. WriteHeader must have been called first. Returns
// the total number of bytes written for the records.
func (e *Exporter) ExportVectors(seq iter.Seq2[int, vecspace.Ref]) (int, error) {
	written := 0
	for _, v := range seq {
		n, err := e.ExportVector(v)
		written += n
		if err != nil {
			return written, err
		}
	}

	return written, nil
}

// writeTextRecord emits term, separator and the components in the
// shortest decimal form that parses back to the identical float32.
func (e *Exporter) writeTextRecord(v vecspace.Vector) (int, error) {
	buf := e.buf[:0]
	buf = append(buf, v.Term()...)
	buf = append(buf, e.opts.TermSeparator)

	for i, f := range v.Data() {
		if i > 0 {
			buf = append(buf, e.opts.VecSeparator)
		}
		buf = strconv.AppendFloat(buf, float64(f), 'g', -1, 32)
	}

	buf = append(buf, '\n')
	e.buf = buf

	return e.w.Write(buf)
}

func (e *Exporter) writeBinaryRecord(v vecspace.Vector) (int, error) {
	buf := e.buf[:0]
	buf = append(buf, v.Term()...)
	buf = append(buf, e.opts.TermSeparator)

	for _, f := range v.Data() {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
	}
	e.buf = buf

	return e.w.Write(buf)
}

// ExportFile exports the Space to a file, compressing by extension
// (.gz, .zst, .lz4) like ParseFile. Returns the number of encoded bytes
// before compression.
func ExportFile(path string, space *vecspace.Space, optFns ...func(o *ExporterOptions)) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}

	n, err := exportStream(f, path, space, optFns)
	if cerr := f.Close(); err == nil {
		err = cerr
	}

	return n, err
}

// ExportBlob exports the Space to a named blob, with the same
// extension-based compression as ExportFile.
func ExportBlob(ctx context.Context, store blobstore.BlobStore, name string, space *vecspace.Space, optFns ...func(o *ExporterOptions)) (int, error) {
	wc, err := store.Create(ctx, name)
	if err != nil {
		return 0, err
	}

	n, err := exportStream(wc, name, space, optFns)
	if cerr := wc.Close(); err == nil {
		err = cerr
	}

	return n, err
}

func exportStream(w io.Writer, name string, space *vecspace.Space, optFns []func(o *ExporterOptions)) (int, error) {
	cw, err := wrapWriter(w, name)
	if err != nil {
		return 0, err
	}

	n, err := NewExporter(cw, optFns...).ExportSpace(space)
	if cerr := cw.Close(); err == nil {
		err = cerr
	}

	return n, err
}
