package dynarray

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Vector is a growable array of T stored in one contiguous buffer.
//
// The zero value is an empty Vector ready for use. A Vector must not be copied
// by value once it holds elements; use Clone for an independent copy.
type Vector[T comparable] struct {
	data  []T
	count int

	// err is the outcome of the last fallible operation, cleared by Err.
	err  error
	dead bool
}

// New returns an empty Vector with no buffer allocated.
func New[T comparable]() *Vector[T] {
	return &Vector[T]{}
}

// NewWithCapacity returns an empty Vector with n slots preallocated.
func NewWithCapacity[T comparable](n int) (*Vector[T], error) {
	v := New[T]()
	if err := v.Resize(n); err != nil {
		return nil, err
	}
	return v, nil
}

// Init resets v to the empty state, including after Destroy.
func (v *Vector[T]) Init() {
	if v == nil {
		return
	}
	*v = Vector[T]{}
}

// Err returns the error recorded by the last fallible operation and clears it.
func (v *Vector[T]) Err() error {
	if v == nil {
		return ErrNotExist
	}
	err := v.err
	v.err = nil
	return err
}

// Push appends x, growing the buffer when it is full.
func (v *Vector[T]) Push(x T) error {
	if err := v.check(); err != nil {
		return err
	}
	if err := v.reserveOne(); err != nil {
		return v.fail(err)
	}
	v.data[v.count] = x
	v.count++
	v.ok()
	return nil
}

// Pop removes and returns the last element.
func (v *Vector[T]) Pop() (T, error) {
	var zero T
	if err := v.check(); err != nil {
		return zero, err
	}
	if v.count == 0 {
		return zero, v.fail(ErrEmpty)
	}
	v.count--
	x := v.data[v.count]
	v.data[v.count] = zero
	v.shrink()
	v.ok()
	return x, nil
}

// First returns the element at index 0 without removing it.
func (v *Vector[T]) First() (T, error) {
	var zero T
	if err := v.check(); err != nil {
		return zero, err
	}
	if v.count == 0 {
		return zero, v.fail(ErrEmpty)
	}
	v.ok()
	return v.data[0], nil
}

// Back returns the last element without removing it.
func (v *Vector[T]) Back() (T, error) {
	var zero T
	if err := v.check(); err != nil {
		return zero, err
	}
	if v.count == 0 {
		return zero, v.fail(ErrEmpty)
	}
	v.ok()
	return v.data[v.count-1], nil
}

// Get returns a copy of the element at index i.
func (v *Vector[T]) Get(i int) (T, error) {
	var zero T
	if err := v.check(); err != nil {
		return zero, err
	}
	if i < 0 || i >= v.count {
		return zero, v.fail(&IndexError{Op: "get", Index: i, Len: v.count})
	}
	v.ok()
	return v.data[i], nil
}

// Set overwrites the element at index i. Only live indices [0, Len()) are
// accepted; Set never extends the Vector.
func (v *Vector[T]) Set(i int, x T) error {
	if err := v.check(); err != nil {
		return err
	}
	if i < 0 || i >= v.count {
		return v.fail(&IndexError{Op: "set", Index: i, Len: v.count})
	}
	v.data[i] = x
	v.ok()
	return nil
}

// Find returns the index of the first element equal to x, or -1.
func (v *Vector[T]) Find(x T) int {
	if v.check() != nil {
		return -1
	}
	v.ok()
	return slices.Index(v.data[:v.count], x)
}

// Contains reports whether x is present.
func (v *Vector[T]) Contains(x T) bool {
	return v.Find(x) >= 0
}

// Insert places x at index i, shifting the elements at [i, Len()) one slot to
// the right. i == Len() appends.
func (v *Vector[T]) Insert(i int, x T) error {
	if err := v.check(); err != nil {
		return err
	}
	if i < 0 || i > v.count {
		return v.fail(&IndexError{Op: "insert", Index: i, Len: v.count})
	}
	if err := v.reserveOne(); err != nil {
		return v.fail(err)
	}
	copy(v.data[i+1:v.count+1], v.data[i:v.count])
	v.data[i] = x
	v.count++
	v.ok()
	return nil
}

// RemoveAt deletes the element at index i, shifting the tail one slot left.
func (v *Vector[T]) RemoveAt(i int) error {
	if err := v.check(); err != nil {
		return err
	}
	if i < 0 || i >= v.count {
		return v.fail(&IndexError{Op: "remove", Index: i, Len: v.count})
	}
	v.removeAt(i)
	v.ok()
	return nil
}

// Remove deletes every element equal to x and reports how many were removed.
// Each removal applies the shrink policy on its own.
func (v *Vector[T]) Remove(x T) (int, error) {
	if err := v.check(); err != nil {
		return 0, err
	}
	removed := 0
	i := slices.Index(v.data[:v.count], x)
	for i >= 0 {
		v.removeAt(i)
		removed++
		next := slices.Index(v.data[i:v.count], x)
		if next < 0 {
			break
		}
		i += next
	}
	v.ok()
	return removed, nil
}

// Extend appends a copy of other's elements to v in one bulk growth step and
// returns v. other may be v itself.
func (v *Vector[T]) Extend(other *Vector[T]) (*Vector[T], error) {
	if err := v.check(); err != nil {
		return nil, err
	}
	if other == nil || other.dead {
		return nil, v.fail(ErrNotExist)
	}
	if err := v.appendBulk(other.data[:other.count]); err != nil {
		return nil, v.fail(err)
	}
	v.ok()
	return v, nil
}

// Resize reallocates the buffer to exactly n slots. Elements beyond n are
// dropped.
func (v *Vector[T]) Resize(n int) error {
	if err := v.check(); err != nil {
		return err
	}
	if n < 0 {
		return v.fail(ErrInvalidCapacity)
	}
	if err := v.realloc(n, "resize"); err != nil {
		return v.fail(err)
	}
	v.ok()
	return nil
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}
	return v.count
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	if v == nil {
		return 0
	}
	return len(v.data)
}

// IsEmpty reports whether the Vector holds no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.Len() == 0
}

// Clear releases the buffer and leaves v empty. A destroyed Vector stays
// destroyed.
func (v *Vector[T]) Clear() {
	if v == nil {
		return
	}
	v.data = nil
	v.count = 0
	v.err = nil
}

// Destroy releases the buffer and retires v. Every later operation reports
// ErrNotExist until Init is called.
func (v *Vector[T]) Destroy() {
	if v == nil {
		return
	}
	v.Clear()
	v.dead = true
}

// Slice returns a copy of the elements in order.
func (v *Vector[T]) Slice() []T {
	if v == nil || v.dead {
		return nil
	}
	return slices.Clone(v.data[:v.count])
}

// Clone returns an independent Vector with the same elements and capacity.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	if err := v.check(); err != nil {
		return nil, err
	}
	c := &Vector[T]{count: v.count}
	if len(v.data) > 0 {
		buf, err := allocate(len(v.data), v.data[:v.count])
		if err != nil {
			return nil, v.fail(err)
		}
		c.data = buf
	}
	v.ok()
	return c, nil
}

// String renders the elements with fmt as a bracketed, comma-separated list.
func (v *Vector[T]) String() string {
	if v == nil || v.dead {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range v.data[:v.count] {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprint(&b, x)
	}
	b.WriteByte(']')
	return b.String()
}

func (v *Vector[T]) check() error {
	if v == nil {
		return ErrNotExist
	}
	if v.dead {
		return v.fail(ErrNotExist)
	}
	return nil
}

func (v *Vector[T]) fail(err error) error {
	v.err = err
	return err
}

func (v *Vector[T]) ok() {
	v.err = nil
}

// reserveOne makes room for one more element.
func (v *Vector[T]) reserveOne() error {
	if v.count < len(v.data) {
		return nil
	}
	if v.count >= MaxCapacity {
		return ErrAllocationFailed
	}
	return v.realloc(growCapacity(len(v.data)), "grow")
}

func (v *Vector[T]) appendBulk(items []T) error {
	if len(items) > MaxCapacity-v.count {
		return ErrAllocationFailed
	}
	total := v.count + len(items)
	if total > len(v.data) {
		if err := v.realloc(nextPowerOfTwo(total), "bulk grow"); err != nil {
			return err
		}
	}
	copy(v.data[v.count:total], items)
	v.count = total
	return nil
}

func (v *Vector[T]) removeAt(i int) {
	var zero T
	copy(v.data[i:], v.data[i+1:v.count])
	v.count--
	v.data[v.count] = zero
	v.shrink()
}

// shrink applies the shrink policy after a removal. A failed shrink keeps the
// current buffer.
func (v *Vector[T]) shrink() {
	if !needsShrink(v.count, len(v.data)) {
		return
	}
	// Buffers sized below the floor by Resize stay as they are.
	n := shrinkCapacity(len(v.data))
	if n >= len(v.data) {
		return
	}
	_ = v.realloc(n, "shrink")
}

// realloc moves the live elements into a buffer of n slots, truncating count
// when n is smaller. On failure v is left untouched.
func (v *Vector[T]) realloc(n int, op string) error {
	if n == len(v.data) {
		return nil
	}
	keep := min(v.count, n)
	buf, err := allocate(n, v.data[:keep])
	if err != nil {
		tracer().Errorf("dynarray: %s %d -> %d slots failed: %v", op, len(v.data), n, err)
		return err
	}
	tracer().Debugf("dynarray: %s %d -> %d slots", op, len(v.data), n)
	v.data = buf
	v.count = keep
	return nil
}
