package word2vec

import (
	"bufio"
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hupe1980/vecspace"
	"github.com/hupe1980/vecspace/blobstore"
)

// maxLineBytes bounds a single text record. 1 MiB covers dimensions in
// the tens of thousands.
const maxLineBytes = 1 << 20

// Parser reads word2vec interchange files into a vecspace.Space.
//
// Parsing streams: at most one record's worth of scratch memory is held
// besides the growing Space, so memory scales with the Space, not with
// the input file.
type Parser struct {
	opts ParserOptions
}

// NewParser creates a Parser. Text mode with a header and single-space
// separators is the default.
func NewParser(optFns ...func(o *ParserOptions)) *Parser {
	opts := ParserOptions{
		Header:        true,
		TermSeparator: DefaultTermSeparator,
		VecSeparator:  DefaultVecSeparator,
		Logger:        vecspace.NoopLogger(),
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Parser{opts: opts}
}

// Parse reads all records from r into a fresh Space.
//
// Any malformed record, truncation or read failure aborts the parse; no
// partial Space is returned.
func (p *Parser) Parse(r io.Reader) (*vecspace.Space, error) {
	start := time.Now()

	var (
		space *vecspace.Space
		err   error
	)

	if p.opts.Binary {
		space, err = p.parseBinary(r)
	} else {
		space, err = p.parseText(r)
	}

	if err != nil {
		p.opts.Logger.LogParse(0, 0, time.Since(start), err)
		return nil, err
	}

	p.opts.Logger.LogParse(space.Len(), space.Dim(), time.Since(start), nil)

	return space, nil
}

// ParseFile parses the file at path. Files ending in .gz, .zst or .lz4
// are decompressed on the fly.
func (p *Parser) ParseFile(path string) (*vecspace.Space, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := wrapReader(f, path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return p.Parse(r)
}

// ParseBlob parses the named blob from a blob store, with the same
// extension-based decompression as ParseFile.
func (p *Parser) ParseBlob(ctx context.Context, store blobstore.BlobStore, name string) (*vecspace.Space, error) {
	rc, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	r, err := wrapReader(rc, name)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return p.Parse(r)
}

func (p *Parser) parseText(r io.Reader) (*vecspace.Space, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)

	space := vecspace.New(0)

	if p.opts.Header {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("read header: %w", err)
			}
			return nil, &ErrInvalidHeader{cause: io.ErrUnexpectedEOF}
		}

		count, dim, err := parseHeader(sc.Text())
		if err != nil {
			return nil, err
		}

		space = vecspace.New(dim)
		if p.opts.IndexTerms {
			space.WithTermMap()
		}
		space.Reserve(count)
	} else if p.opts.IndexTerms {
		space.WithTermMap()
	}

	scratch := make([]float32, 0, space.Dim())
	record := 0

	for sc.Scan() {
		v, err := p.parseTextRecord(sc.Bytes(), &scratch)
		if err != nil {
			return nil, &ErrMalformedRecord{Record: record, cause: err}
		}

		if err := space.Insert(v); err != nil {
			return nil, fmt.Errorf("record %d: %w", record, err)
		}

		record++
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read record %d: %w", record, err)
	}

	return space, nil
}

// parseTextRecord parses one line into a borrowed vector over scratch.
// The returned Ref is only valid until the next call.
func (p *Parser) parseTextRecord(line []byte, scratch *[]float32) (vecspace.Ref, error) {
	line = bytes.TrimSuffix(line, []byte{'\r'})

	if !utf8.Valid(line) {
		return vecspace.Ref{}, ErrInvalidEncoding
	}

	sep := bytes.IndexByte(line, p.opts.TermSeparator)
	if sep < 0 {
		return vecspace.Ref{}, ErrMissingSeparator
	}

	term := string(line[:sep])

	buf := (*scratch)[:0]
	rest := line[sep+1:]
	for len(rest) > 0 {
		tok := rest
		if i := bytes.IndexByte(rest, p.opts.VecSeparator); i >= 0 {
			tok, rest = rest[:i], rest[i+1:]
		} else {
			rest = nil
		}

		f, err := strconv.ParseFloat(string(tok), 32)
		if err != nil {
			return vecspace.Ref{}, fmt.Errorf("invalid float %q: %w", tok, err)
		}

		buf = append(buf, float32(f))
	}
	*scratch = buf

	return vecspace.NewRef(buf, term), nil
}

func (p *Parser) parseBinary(r io.Reader) (*vecspace.Space, error) {
	if !p.opts.Header {
		return nil, ErrHeaderRequired
	}

	br := bufio.NewReaderSize(r, 64*1024)

	line, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if line == "" {
		return nil, &ErrInvalidHeader{cause: io.ErrUnexpectedEOF}
	}

	count, dim, err := parseHeader(line)
	if err != nil {
		return nil, err
	}

	space := vecspace.New(dim)
	if p.opts.IndexTerms {
		space.WithTermMap()
	}
	space.Reserve(count)

	var (
		raw     = make([]byte, dim*4)
		scratch = make([]float32, 0, dim)
		record  = 0
	)

	for {
		v, err := p.readBinaryRecord(br, raw, &scratch)
		if err != nil {
			if err == io.EOF {
				break
			}
			var trunc *ErrTruncatedRecord
			if errors.As(err, &trunc) {
				return nil, err
			}
			return nil, &ErrMalformedRecord{Record: record, cause: err}
		}

		if err := space.Insert(v); err != nil {
			return nil, fmt.Errorf("record %d: %w", record, err)
		}

		record++
	}

	return space, nil
}

// readBinaryRecord reads one binary record: term bytes up to the term
// separator, then dim little-endian float32 values. A clean io.EOF at a
// record boundary is returned as io.EOF; EOF anywhere inside a record is
// a truncation.
func (p *Parser) readBinaryRecord(br *bufio.Reader, raw []byte, scratch *[]float32) (vecspace.Ref, error) {
	// Canonical word2vec writers pad records with '\n'; skip it.
	c, err := br.ReadByte()
	for err == nil && (c == '\n' || c == '\r') {
		c, err = br.ReadByte()
	}
	if err != nil {
		if err == io.EOF {
			return vecspace.Ref{}, io.EOF
		}
		return vecspace.Ref{}, fmt.Errorf("read record: %w", err)
	}
	_ = br.UnreadByte()

	termBytes, err := br.ReadBytes(p.opts.TermSeparator)
	if err != nil {
		if err == io.EOF {
			return vecspace.Ref{}, fmt.Errorf("%w: %w", ErrMissingSeparator, io.ErrUnexpectedEOF)
		}
		return vecspace.Ref{}, fmt.Errorf("read record: %w", err)
	}

	term := string(termBytes[:len(termBytes)-1])
	if !utf8.ValidString(term) {
		return vecspace.Ref{}, ErrInvalidEncoding
	}

	if n, err := io.ReadFull(br, raw); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return vecspace.Ref{}, &ErrTruncatedRecord{Term: term, Expected: len(raw), Got: n}
		}
		return vecspace.Ref{}, fmt.Errorf("read record: %w", err)
	}

	buf := (*scratch)[:0]
	for i := 0; i < len(raw); i += 4 {
		buf = append(buf, math.Float32frombits(binary.LittleEndian.Uint32(raw[i:])))
	}
	*scratch = buf

	return vecspace.NewRef(buf, term), nil
}

// parseHeader parses a "count dimension" header line.
func parseHeader(line string) (count, dim int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, &ErrInvalidHeader{Line: strings.TrimRight(line, "\r\n")}
	}

	count, err = strconv.Atoi(fields[0])
	if err != nil || count < 0 {
		return 0, 0, &ErrInvalidHeader{Line: strings.TrimRight(line, "\r\n"), cause: err}
	}

	dim, err = strconv.Atoi(fields[1])
	if err != nil || dim < 0 {
		return 0, 0, &ErrInvalidHeader{Line: strings.TrimRight(line, "\r\n"), cause: err}
	}

	return count, dim, nil
}
