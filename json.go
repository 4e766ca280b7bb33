package dynarray

import json "github.com/goccy/go-json"

// MarshalJSON encodes the elements of v as a JSON array. A nil Vector encodes
// as null.
func (v *Vector[T]) MarshalJSON() ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	if v.dead {
		return nil, ErrNotExist
	}
	items := v.data[:v.count]
	if items == nil {
		items = []T{}
	}
	return json.Marshal(items)
}

// UnmarshalJSON replaces the contents of v with the decoded JSON array, sized
// with a single bulk growth step. On error v keeps its previous contents.
func (v *Vector[T]) UnmarshalJSON(b []byte) error {
	if err := v.check(); err != nil {
		return err
	}
	var items []T
	if err := json.Unmarshal(b, &items); err != nil {
		return v.fail(err)
	}
	var next Vector[T]
	if err := next.appendBulk(items); err != nil {
		return v.fail(err)
	}
	v.data, v.count = next.data, next.count
	v.ok()
	return nil
}
