package dynarray

import (
	"errors"
	"testing"

	json "github.com/goccy/go-json"
	"golang.org/x/exp/slices"
)

func TestVectorMarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    *Vector[int]
		want string
	}{
		{name: "nil", v: nil, want: "null"},
		{name: "empty", v: New[int](), want: "[]"},
		{name: "values", v: func() *Vector[int] {
			v := New[int]()
			for _, x := range []int{1111, 234, 2} {
				_ = v.Push(x)
			}
			return v
		}(), want: "[1111,234,2]"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := tc.v.MarshalJSON()
			if err != nil {
				t.Fatalf("MarshalJSON() error = %v", err)
			}
			if string(got) != tc.want {
				t.Fatalf("MarshalJSON() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestVectorJSONField(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name  string          `json:"name"`
		Items *Vector[string] `json:"items"`
	}

	in := payload{Name: "p", Items: New[string]()}
	pushAll(t, in.Items, "a", "b")

	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(b) != `{"name":"p","items":["a","b"]}` {
		t.Fatalf("json.Marshal() = %s", b)
	}

	var out payload
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if got := out.Items.Slice(); !slices.Equal(got, []string{"a", "b"}) {
		t.Fatalf("decoded items = %v", got)
	}
}

func TestVectorUnmarshalJSON(t *testing.T) {
	t.Parallel()

	v := New[int]()
	pushAll(t, v, 7)

	if err := v.UnmarshalJSON([]byte(`[1,2,3,4,5,6,7,8,9,10,11,12,13,14,15,16,17]`)); err != nil {
		t.Fatalf("UnmarshalJSON() error = %v", err)
	}
	if v.Len() != 17 {
		t.Fatalf("Len() = %d, want 17", v.Len())
	}
	if v.Cap() != 32 {
		t.Fatalf("Cap() = %d, want 32", v.Cap())
	}

	if err := v.UnmarshalJSON([]byte(`null`)); err != nil {
		t.Fatalf("UnmarshalJSON(null) error = %v", err)
	}
	if v.Len() != 0 || v.Cap() != 0 {
		t.Fatalf("UnmarshalJSON(null) len=%d cap=%d", v.Len(), v.Cap())
	}
}

func TestVectorUnmarshalJSONErrorKeepsContents(t *testing.T) {
	t.Parallel()

	v := New[int]()
	pushAll(t, v, 1, 2)

	if err := v.UnmarshalJSON([]byte(`["x"]`)); err == nil {
		t.Fatalf("UnmarshalJSON() expected type error")
	}
	if v.Err() == nil {
		t.Fatalf("Err() should report the decode failure")
	}
	if got := v.Slice(); !slices.Equal(got, []int{1, 2}) {
		t.Fatalf("failed decode changed contents: %v", got)
	}

	v.Destroy()
	if err := v.UnmarshalJSON([]byte(`[1]`)); !errors.Is(err, ErrNotExist) {
		t.Fatalf("UnmarshalJSON() on destroyed vector error = %v, want ErrNotExist", err)
	}
	if _, err := v.MarshalJSON(); !errors.Is(err, ErrNotExist) {
		t.Fatalf("MarshalJSON() on destroyed vector error = %v, want ErrNotExist", err)
	}
}
