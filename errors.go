package dynarray

import (
	"errors"
	"fmt"
)

var (
	// ErrNotExist is returned when operating on a nil or destroyed Vector.
	ErrNotExist = errors.New("dynarray: vector does not exist")
	// ErrEmpty is returned when reading or popping from a Vector with no elements.
	ErrEmpty = errors.New("dynarray: vector is empty")
	// ErrOutOfRange is returned when an index falls outside the live elements.
	ErrOutOfRange = errors.New("dynarray: index out of range")
	// ErrAllocationFailed is returned when the buffer cannot be resized.
	ErrAllocationFailed = errors.New("dynarray: allocation failed")
	// ErrInvalidCapacity is returned for a negative capacity request.
	ErrInvalidCapacity = errors.New("dynarray: invalid capacity")
	// ErrInvalidFormatter is returned when printing without an element formatter.
	ErrInvalidFormatter = errors.New("dynarray: element formatter is nil")

	// ErrMissingBracket is returned when a record does not start with '[' or ends before ']'.
	ErrMissingBracket = errors.New("dynarray: record is not enclosed in brackets")
	// ErrBareQuote is returned when a quote appears inside an unquoted field.
	ErrBareQuote = errors.New("dynarray: bare quote in non-quoted field")
	// ErrUnterminatedQuote is returned when a quoted field is not closed before EOF.
	ErrUnterminatedQuote = errors.New("dynarray: unterminated quoted field")
	// ErrTrailingData is returned when anything but a line break follows ']'.
	ErrTrailingData = errors.New("dynarray: unexpected data after record")
)

// IndexError reports an index rejected by a Vector operation.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

// Error formats the rejected index together with the operation and the bound it was checked against.
func (e *IndexError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("dynarray: %s: index %d out of range [0:%d]", e.Op, e.Index, e.Len)
}

// Unwrap returns ErrOutOfRange so IndexError matches it with errors.Is.
func (e *IndexError) Unwrap() error {
	if e == nil {
		return nil
	}
	return ErrOutOfRange
}

// ParseError contains location information for record parsing errors.
type ParseError struct {
	Line   int
	Column int
	Err    error
}

// Error formats the parse error message with the stored line, column, and Err values.
func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("dynarray: parse error on line %d, column %d: %v", e.Line, e.Column, e.Err)
}

// Unwrap returns the underlying Err so ParseError participates in errors.Unwrap.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
