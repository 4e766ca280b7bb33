package dynarray

import (
	"bufio"
	"fmt"
	"io"
)

const defaultBufferSize = 1 << 10 // 1024 bytes

// Reader parses bracketed records written by Writer.
type Reader struct {
	src *bufio.Reader

	// Comma is the element separator. Default is ','.
	Comma byte
	// Quote is the quote character. Default is '"'.
	Quote byte

	field  []byte
	line   int
	column int
}

// NewReader creates a Reader that consumes records from r, panicking if r is nil.
func NewReader(r io.Reader) *Reader {
	if r == nil {
		panic("dynarray: reader source cannot be nil")
	}

	return &Reader{
		src:   bufio.NewReaderSize(r, defaultBufferSize),
		Comma: ',',
		Quote: '"',
		field: make([]byte, 0, 64),
		line:  1,
	}
}

// Read parses the next record and returns its fields. Blank lines between
// records are skipped; io.EOF signals that no more records remain. An empty
// record [] yields a non-nil slice of length zero.
func (r *Reader) Read() ([]string, error) {
	if r == nil || r.src == nil {
		return nil, io.EOF
	}

	comma := r.Comma
	if comma == 0 {
		comma = ','
	}
	quote := r.Quote
	if quote == 0 {
		quote = '"'
	}

	var b byte
	for {
		c, err := r.readByte()
		if err != nil {
			return nil, err
		}
		if c == '\n' {
			r.newline()
			continue
		}
		if c == '\r' {
			continue
		}
		b = c
		break
	}
	if b != '[' {
		return nil, r.wrapError(r.column, ErrMissingBracket)
	}

	record := make([]string, 0, 8)
	c, err := r.readByte()
	if err != nil {
		return nil, r.eofError(err, ErrMissingBracket)
	}
	if c == ']' {
		return r.finishRecord(record)
	}

	for {
		// c holds the first byte of the next field.
		r.field = r.field[:0]
		if c == quote {
			c, err = r.readQuoted(comma, quote)
		} else {
			c, err = r.readPlain(c, comma, quote)
		}
		if err != nil {
			return nil, err
		}
		record = append(record, string(r.field))
		if c == ']' {
			return r.finishRecord(record)
		}

		c, err = r.readByte()
		if err != nil {
			return nil, r.eofError(err, ErrMissingBracket)
		}
	}
}

// ReadAll exhausts the reader and returns every record, or the first non-EOF error.
func (r *Reader) ReadAll() (records [][]string, err error) {
	for {
		record, err := r.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
}

// readPlain consumes an unquoted field starting with c and returns the
// delimiter that ended it: the comma or ']'.
func (r *Reader) readPlain(c, comma, quote byte) (byte, error) {
	for {
		switch c {
		case comma, ']':
			return c, nil
		case quote:
			return 0, r.wrapError(r.column, ErrBareQuote)
		case '\n', '\r':
			return 0, r.wrapError(r.column, ErrMissingBracket)
		}
		r.field = append(r.field, c)

		var err error
		c, err = r.readByte()
		if err != nil {
			return 0, r.eofError(err, ErrMissingBracket)
		}
	}
}

// readQuoted consumes a quoted field after its opening quote and returns the
// delimiter following the closing quote.
func (r *Reader) readQuoted(comma, quote byte) (byte, error) {
	for {
		c, err := r.readByte()
		if err != nil {
			return 0, r.eofError(err, ErrUnterminatedQuote)
		}
		switch c {
		case quote:
			next, err := r.src.Peek(1)
			if err == nil && next[0] == quote {
				// Doubled quote is a literal quote.
				_, _ = r.readByte()
				r.field = append(r.field, quote)
				continue
			}
			if err != nil && err != io.EOF {
				return 0, err
			}
			d, err := r.readByte()
			if err != nil {
				return 0, r.eofError(err, ErrMissingBracket)
			}
			if d != comma && d != ']' {
				return 0, r.wrapError(r.column, ErrBareQuote)
			}
			return d, nil
		case '\n':
			r.field = append(r.field, c)
			r.newline()
		default:
			r.field = append(r.field, c)
		}
	}
}

// finishRecord checks that only a line break or EOF follows the closing bracket.
func (r *Reader) finishRecord(record []string) ([]string, error) {
	c, err := r.readByte()
	if err == io.EOF {
		return record, nil
	}
	if err != nil {
		return nil, err
	}
	switch c {
	case '\n':
		r.newline()
		return record, nil
	case '\r':
		next, err := r.src.Peek(1)
		if err == nil && next[0] == '\n' {
			_, _ = r.readByte()
		} else if err != nil && err != io.EOF {
			return nil, err
		}
		r.newline()
		return record, nil
	}
	return nil, r.wrapError(r.column, ErrTrailingData)
}

func (r *Reader) readByte() (byte, error) {
	c, err := r.src.ReadByte()
	if err != nil {
		return 0, err
	}
	r.column++
	return c, nil
}

func (r *Reader) newline() {
	r.line++
	r.column = 0
}

// eofError turns an unexpected io.EOF into a ParseError positioned just past
// the last byte; other read errors pass through.
func (r *Reader) eofError(err, cause error) error {
	if err == io.EOF {
		return r.wrapError(r.column+1, cause)
	}
	return err
}

// wrapError attaches the current line and supplied column to err, producing a *ParseError.
func (r *Reader) wrapError(column int, err error) error {
	return &ParseError{Line: r.line, Column: column, Err: err}
}

// Decode reads the next record from r and parses each field into a new Vector.
// The Vector is sized with a single bulk growth step.
func Decode[T comparable](r *Reader, parse func(string) (T, error)) (*Vector[T], error) {
	if parse == nil {
		return nil, ErrInvalidFormatter
	}
	record, err := r.Read()
	if err != nil {
		return nil, err
	}
	items := make([]T, len(record))
	for i, field := range record {
		x, err := parse(field)
		if err != nil {
			return nil, fmt.Errorf("dynarray: decode field %d: %w", i, err)
		}
		items[i] = x
	}
	v := New[T]()
	if err := v.appendBulk(items); err != nil {
		return nil, err
	}
	return v, nil
}
