package dynarray

import "math"

const (
	// MinCapacity is the first capacity a Vector grows to and the floor it shrinks back to.
	MinCapacity = 8
	// BulkMinCapacity is the smallest capacity chosen by a bulk growth step.
	BulkMinCapacity = 16
	// MaxCapacity bounds the number of slots a Vector will allocate.
	MaxCapacity = math.MaxInt32

	// shrinkRatio triggers a shrink once count*shrinkRatio drops below capacity.
	shrinkRatio = 4
)

func growCapacity(capacity int) int {
	if capacity < MinCapacity {
		return MinCapacity
	}
	if capacity > MaxCapacity/2 {
		return MaxCapacity
	}
	return capacity * 2
}

func shrinkCapacity(capacity int) int {
	if capacity < 2*MinCapacity {
		return MinCapacity
	}
	return capacity / 2
}

func needsShrink(count, capacity int) bool {
	return count*shrinkRatio < capacity
}

// nextPowerOfTwo returns the smallest power of two >= n, never less than
// BulkMinCapacity and never more than MaxCapacity.
func nextPowerOfTwo(n int) int {
	if n >= MaxCapacity {
		return MaxCapacity
	}
	capacity := BulkMinCapacity
	for capacity < n {
		if capacity > MaxCapacity/2 {
			return MaxCapacity
		}
		capacity *= 2
	}
	return capacity
}

// allocate returns a buffer of n slots with live copied to its front. A nil
// buffer is returned for n == 0. Oversized requests and runtime allocation
// panics are reported as ErrAllocationFailed.
func allocate[T any](n int, live []T) (buf []T, err error) {
	if n < 0 {
		return nil, ErrInvalidCapacity
	}
	if n > MaxCapacity {
		return nil, ErrAllocationFailed
	}
	if n == 0 {
		return nil, nil
	}

	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, ErrAllocationFailed
		}
	}()
	buf = make([]T, n)
	copy(buf, live)
	return buf, nil
}
