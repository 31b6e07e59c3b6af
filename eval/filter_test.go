package eval

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type filterTest struct {
	src  string
	in   map[string]any
	want map[string]any
}

var filterTests = []filterTest{
	{
		src:  `key != "baz"`,
		in:   map[string]any{"foo": "bar", "baz": "qux", "quux": "quuz"},
		want: map[string]any{"foo": "bar", "quux": "quuz"},
	},
	{
		src:  `key startsWith "q"`,
		in:   map[string]any{"foo": "bar", "quux": "quuz"},
		want: map[string]any{"quux": "quuz"},
	},
	{
		src:  `value`,
		in:   map[string]any{"t": true, "f": false, "z": 0, "s": "x", "n": nil},
		want: map[string]any{"t": true, "s": "x"},
	},
	{
		src:  `kind(value) == "Mapping"`,
		in:   map[string]any{"m": map[string]any{}, "l": []any{}},
		want: map[string]any{"m": map[string]any{}},
	},
	{
		src:  `haspath("$." + key + ".enabled")`,
		in:   map[string]any{"a": map[string]any{"enabled": false}, "b": map[string]any{}},
		want: map[string]any{"a": map[string]any{"enabled": false}},
	},
	{
		src:  `getpath("$.limits.max") == 3 && key != "limits"`,
		in:   map[string]any{"limits": map[string]any{"max": 3}, "x": 1},
		want: map[string]any{"x": 1},
	},
}

func TestKeyFilter(t *testing.T) {
	for _, tt := range filterTests {
		t.Run(tt.src, func(t *testing.T) {
			f, err := CompileKeyFilter(tt.src)
			if err != nil {
				t.Fatal(err)
			}
			got, err := f.Apply(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestKeyFilterCompileError(t *testing.T) {
	_, err := CompileKeyFilter(`key ==`)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "error compiling") {
		t.Errorf("unexpected error %v", err)
	}
}

func TestKeyFilterRuntimeError(t *testing.T) {
	f, err := CompileKeyFilter(`value.x > 1`)
	if err != nil {
		t.Fatal(err)
	}
	_, err = f.Apply(map[string]any{"a": 7})
	if err == nil {
		t.Fatal("expected evaluation error")
	}
}
