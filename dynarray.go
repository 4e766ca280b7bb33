// # dynarray: A Growable Contiguous Vector for Go
//
// dynarray provides Vector, a generic dynamic array backed by a single contiguous buffer. Appends and removals at the end are amortized O(1), inserts and removals elsewhere are O(n), and capacity grows and shrinks automatically.
//
// # Features
//
// - Grow-by-doubling with a floor of 8 slots, and a shrink step whenever fewer than a quarter of the slots are in use.
// - Single-step bulk growth to the next power of two for Extend and decoding.
// - Recoverable errors for every failure: `ErrEmpty`, `ErrOutOfRange`, `ErrNotExist`, `ErrAllocationFailed`, `ErrInvalidCapacity`, `ErrInvalidFormatter`. The last one is also kept per instance and returned once by `Vector.Err`.
// - Bracketed text records (`[a,b,c]`) through `Writer` and `Reader`, and JSON through `MarshalJSON`/`UnmarshalJSON`.
// - Capacity changes traced under the `dynarray` key of schuko tracing.
//
// # Getting Started
//
//	v := dynarray.New[int]()
//	_ = v.Push(1)
//	_ = v.Insert(0, 7)
//	_ = v.Print(os.Stdout, strconv.Itoa) // [7,1]
//
// A Vector is not safe for concurrent use.
package dynarray
