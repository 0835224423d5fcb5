package tsv

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const (
	// Delimiter separates fields
	Delimiter = '\t'
	// Quote opens and closes quoted fields
	Quote = '"'
	// DefaultMaxFieldSize is the per-field limit in characters
	DefaultMaxFieldSize = 131072
)

var (
	// ErrInvalidUTF8 is returned for input bytes that are not valid UTF-8
	ErrInvalidUTF8 = errors.New("invalid UTF-8")
	// ErrFieldTooLarge is returned when a field exceeds Options.MaxFieldSize
	ErrFieldTooLarge = errors.New("field larger than field limit")
)

// ParseError reports where the input stopped making sense
type ParseError struct {
	Line int // 1-based
	Err  error
}

func (e *ParseError) Error() string { return fmt.Sprintf("tsv: line %d: %v", e.Line, e.Err) }

// Unwrap returns the underlying cause
func (e *ParseError) Unwrap() error { return e.Err }

// Options tunes the reader
type Options struct {
	MaxFieldSize int // characters; <= 0 means DefaultMaxFieldSize
}

type state uint8

const (
	startRecord state = iota
	startField
	inField
	inQuotedField
	quoteInQuotedField
)

// Reader streams records from a tab separated source
type Reader struct {
	br       *bufio.Reader
	maxField int
	field    strings.Builder
	fieldLen int
	line     int // completed lines
	records  int
	bytes    int64
	err      error
}

// NewReader wraps r
func NewReader(r io.Reader, opt Options) *Reader {
	mf := opt.MaxFieldSize
	if mf <= 0 {
		mf = DefaultMaxFieldSize
	}
	return &Reader{br: bufio.NewReaderSize(r, 64*1024), maxField: mf}
}

// Read returns the next record; io.EOF when the input is exhausted.
// A blank line yields an empty, non-nil record. Errors are sticky
func (r *Reader) Read() ([]string, error) {
	if r.err != nil {
		return nil, r.err
	}
	rec, err := r.readRecord()
	if err != nil {
		r.err = err
		return nil, err
	}
	r.records++
	return rec, nil
}

// Line returns the number of input lines consumed so far
func (r *Reader) Line() int { return r.line }

// Stats returns the number of records and bytes read so far
func (r *Reader) Stats() (records int, bytes int64) { return r.records, r.bytes }

func (r *Reader) readRecord() ([]string, error) {
	fields := []string{}
	st := startRecord
	r.field.Reset()
	r.fieldLen = 0

	for {
		c, size, err := r.br.ReadRune()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return nil, err
			}
			if st == startRecord {
				return nil, io.EOF
			}
			// last record had no line terminator; an open quote just ends here
			return append(fields, r.take()), nil
		}
		r.bytes += int64(size)
		if c == utf8.RuneError && size == 1 {
			return nil, &ParseError{Line: r.line + 1, Err: ErrInvalidUTF8}
		}

		if c == '\n' || c == '\r' {
			if st == inQuotedField {
				if err := r.add(c); err != nil {
					return nil, err
				}
				if c == '\n' || !r.nextIsLF() {
					r.line++
				}
				continue
			}
			if c == '\r' && r.nextIsLF() {
				_, _ = r.br.ReadByte()
				r.bytes++
			}
			r.line++
			if st != startRecord {
				fields = append(fields, r.take())
			}
			return fields, nil
		}

		switch st {
		case startRecord, startField:
			switch c {
			case Quote:
				st = inQuotedField
			case Delimiter:
				fields = append(fields, r.take())
				st = startField
			default:
				if err := r.add(c); err != nil {
					return nil, err
				}
				st = inField
			}
		case inField:
			if c == Delimiter {
				fields = append(fields, r.take())
				st = startField
				continue
			}
			if err := r.add(c); err != nil {
				return nil, err
			}
		case inQuotedField:
			if c == Quote {
				st = quoteInQuotedField
				continue
			}
			if err := r.add(c); err != nil {
				return nil, err
			}
		case quoteInQuotedField:
			switch c {
			case Quote:
				// doubled quote
				if err := r.add(c); err != nil {
					return nil, err
				}
				st = inQuotedField
			case Delimiter:
				fields = append(fields, r.take())
				st = startField
			default:
				// lenient: keep text after the closing quote
				if err := r.add(c); err != nil {
					return nil, err
				}
				st = inField
			}
		}
	}
}

func (r *Reader) add(c rune) error {
	if r.fieldLen >= r.maxField {
		return &ParseError{
			Line: r.line + 1,
			Err:  fmt.Errorf("%w (%d)", ErrFieldTooLarge, r.maxField),
		}
	}
	r.field.WriteRune(c)
	r.fieldLen++
	return nil
}

func (r *Reader) take() string {
	s := r.field.String()
	r.field.Reset()
	r.fieldLen = 0
	return s
}

func (r *Reader) nextIsLF() bool {
	b, err := r.br.Peek(1)
	return err == nil && b[0] == '\n'
}
