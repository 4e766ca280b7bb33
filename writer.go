package dynarray

import (
	"bufio"
	"errors"
	"io"
)

var (
	errNilWriter      = errors.New("dynarray: writer is nil")
	errWriterNoTarget = errors.New("dynarray: writer destination cannot be nil")
)

// Writer emits bracketed records such as [1,2,3], one per line.
type Writer struct {
	dst *bufio.Writer

	// Comma is the element separator. Default is ','.
	Comma byte
	// Quote is the quote character. Default is '"'.
	Quote byte
	// UseCRLF terminates records with \r\n when set.
	UseCRLF bool
	// AlwaysQuote forces quoting for all fields when enabled.
	AlwaysQuote bool
	// Verbatim writes fields exactly as given, without quoting. Records
	// written this way are for display and may not read back.
	Verbatim bool

	err error
}

// NewWriter creates a new Writer buffering output to w.
func NewWriter(w io.Writer) *Writer {
	if w == nil {
		panic(errWriterNoTarget.Error())
	}
	return &Writer{
		dst:   bufio.NewWriterSize(w, defaultBufferSize),
		Comma: ',',
		Quote: '"',
	}
}

// Reset updates the underlying writer while preserving the configuration flags.
func (w *Writer) Reset(dst io.Writer) {
	if w == nil {
		panic(errNilWriter.Error())
	}
	if dst == nil {
		panic(errWriterNoTarget.Error())
	}
	if w.dst == nil {
		w.dst = bufio.NewWriterSize(dst, defaultBufferSize)
	} else {
		w.dst.Reset(dst)
	}
	w.err = nil
}

// Write emits one record holding fields, followed by the configured newline.
func (w *Writer) Write(fields []string) error {
	if w == nil {
		return errNilWriter
	}
	if w.dst == nil {
		return errWriterNoTarget
	}
	if w.err != nil {
		return w.err
	}

	comma := w.Comma
	if comma == 0 {
		comma = ','
	}
	quote := w.Quote
	if quote == 0 {
		quote = '"'
	}

	if err := w.dst.WriteByte('['); err != nil {
		w.err = err
		return err
	}
	// A lone empty field would otherwise read back as an empty record.
	loneEmpty := !w.Verbatim && len(fields) == 1 && fields[0] == ""
	for i := range fields {
		if i > 0 {
			if err := w.dst.WriteByte(comma); err != nil {
				w.err = err
				return err
			}
		}
		if err := w.writeField(fields[i], comma, quote, loneEmpty); err != nil {
			w.err = err
			return err
		}
	}
	if err := w.dst.WriteByte(']'); err != nil {
		w.err = err
		return err
	}

	if w.UseCRLF {
		if _, err := w.dst.Write([]byte{'\r', '\n'}); err != nil {
			w.err = err
			return err
		}
	} else {
		if err := w.dst.WriteByte('\n'); err != nil {
			w.err = err
			return err
		}
	}
	return nil
}

// WriteAll writes multiple records, stopping at the first error.
func (w *Writer) WriteAll(records [][]string) error {
	if w == nil {
		return errNilWriter
	}
	for _, record := range records {
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes pending buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if w == nil {
		return errNilWriter
	}
	if w.dst == nil {
		return errWriterNoTarget
	}
	if w.err != nil {
		return w.err
	}
	if err := w.dst.Flush(); err != nil {
		w.err = err
		return err
	}
	return nil
}

// Error reports the first error encountered by the writer.
func (w *Writer) Error() error {
	if w == nil {
		return errNilWriter
	}
	return w.err
}

func (w *Writer) writeField(field string, comma, quote byte, force bool) error {
	if w.Verbatim {
		_, err := w.dst.WriteString(field)
		return err
	}
	needsQuote := w.AlwaysQuote || force
	if !needsQuote {
		needsQuote = fieldNeedsQuote(field, comma, quote)
	}
	if !needsQuote {
		_, err := w.dst.WriteString(field)
		return err
	}
	if err := w.dst.WriteByte(quote); err != nil {
		return err
	}

	start := 0
	for i := 0; i < len(field); i++ {
		if field[i] == quote {
			if start < i {
				if _, err := w.dst.WriteString(field[start:i]); err != nil {
					return err
				}
			}
			if _, err := w.dst.Write([]byte{quote, quote}); err != nil {
				return err
			}
			start = i + 1
		}
	}
	if start < len(field) {
		if _, err := w.dst.WriteString(field[start:]); err != nil {
			return err
		}
	}
	return w.dst.WriteByte(quote)
}

func fieldNeedsQuote(field string, comma, quote byte) bool {
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case quote, comma, ']', '\n', '\r':
			return true
		}
	}
	return false
}

// Encode writes the elements of v to w as one record, rendering each element
// with format. Nothing is written when format is nil.
func (v *Vector[T]) Encode(w *Writer, format func(T) string) error {
	if err := v.check(); err != nil {
		return err
	}
	if format == nil {
		tracer().Errorf("dynarray: cannot encode %d elements without a formatter", v.count)
		return v.fail(ErrInvalidFormatter)
	}
	if w == nil {
		return v.fail(errNilWriter)
	}
	fields := make([]string, v.count)
	for i, x := range v.data[:v.count] {
		fields[i] = format(x)
	}
	if err := w.Write(fields); err != nil {
		return v.fail(err)
	}
	v.ok()
	return nil
}

// Print writes v to out as a single line such as [1,2,3] and flushes it.
// Each element appears exactly as format renders it. A nil or destroyed
// vector prints NULL and reports ErrNotExist.
func (v *Vector[T]) Print(out io.Writer, format func(T) string) error {
	if out == nil {
		if err := v.check(); err != nil {
			return err
		}
		return v.fail(errWriterNoTarget)
	}
	if err := v.check(); err != nil {
		if _, werr := io.WriteString(out, "NULL\n"); werr != nil {
			return werr
		}
		return err
	}
	w := NewWriter(out)
	w.Verbatim = true
	if err := v.Encode(w, format); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return v.fail(err)
	}
	return nil
}
