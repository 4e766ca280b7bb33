package dynarray

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"
)

func FuzzReaderConsistency(f *testing.F) {
	seeds := []string{
		"",
		"[a,b,c]\n",
		"[a,\"b,b\",c]\n",
		"[a,\"b\nc\",d]\n",
		"[\"unterminated\n",
		"[a\"b,c]\n",
		"[one]\r\n[two]\r\n",
		"[]\n[\"\"]\n",
		"no brackets",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		if len(input) > 1<<12 {
			t.Skip()
		}

		recordsManual, errManual := readRecordsSequential(input)
		recordsAll, errAll := NewReader(strings.NewReader(input)).ReadAll()

		if !sameReaderError(errManual, errAll) {
			t.Fatalf("ReadAll mismatch: errManual=%v errAll=%v input=%q", errManual, errAll, truncateForMessage(input))
		}
		if errManual == nil && !reflect.DeepEqual(recordsManual, recordsAll) {
			t.Fatalf("records mismatch with ReadAll:\nmanual=%v\nreadAll=%v\ninput=%q", recordsManual, recordsAll, truncateForMessage(input))
		}
	})
}

// FuzzWriterReader requires every field list written by Writer to read back unchanged.
func FuzzWriterReader(f *testing.F) {
	seeds := []string{"", "a|b", "x,y|]", "\"|\"\"", "line\nbreak|\r", "|"}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		if len(input) > 1<<12 {
			t.Skip()
		}
		fields := strings.Split(input, "|")

		var buf bytes.Buffer
		w := NewWriter(&buf)
		if err := w.Write(fields); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
		if err := w.Flush(); err != nil {
			t.Fatalf("Flush() error = %v", err)
		}

		got, err := NewReader(&buf).Read()
		if err != nil {
			t.Fatalf("Read() error = %v for %q", err, truncateForMessage(input))
		}
		if !reflect.DeepEqual(got, fields) {
			t.Fatalf("read back %q, wrote %q", got, fields)
		}
	})
}

func readRecordsSequential(input string) ([][]string, error) {
	r := NewReader(strings.NewReader(input))

	var out [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
}

func sameReaderError(a, b error) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	sigA, lineA, colA := readerErrorSignature(a)
	sigB, lineB, colB := readerErrorSignature(b)
	return sigA == sigB && lineA == lineB && colA == colB
}

func readerErrorSignature(err error) (sig string, line int, column int) {
	var perr *ParseError
	if errors.As(err, &perr) {
		return perr.Err.Error(), perr.Line, perr.Column
	}
	return err.Error(), 0, 0
}

func truncateForMessage(s string) string {
	const max = 256
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
