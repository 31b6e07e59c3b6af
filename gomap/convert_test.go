package gomap

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tony-format/objops/ir"
)

func TestFilter(t *testing.T) {
	in := map[string]any{"foo": "bar", "baz": "qux", "quux": "quuz"}
	got := Filter(in, func(key string) bool { return key != "baz" })
	want := map[string]any{"foo": "bar", "quux": "quuz"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if len(in) != 3 {
		t.Errorf("source modified")
	}
}

func TestFilterSharesValues(t *testing.T) {
	inner := map[string]any{"x": 1}
	got := Filter(map[string]any{"a": inner}, func(string) bool { return true })
	got["a"].(map[string]any)["x"] = 2
	if inner["x"] != 2 {
		t.Errorf("expected values to be shared by reference")
	}
	if got := Filter(nil, func(string) bool { return true }); got == nil || len(got) != 0 {
		t.Errorf("expected empty map, got %#v", got)
	}
}

func TestFilterNilPred(t *testing.T) {
	in := map[string]any{"a": 1, "b": 2}
	got := Filter(in, nil)
	if diff := cmp.Diff(in, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestToArray(t *testing.T) {
	in := map[string]any{"b": 2, "a": 1, "c": 3}
	got, err := ToArray(in, nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]any{1, 2, 3}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	got, err = ToArray(map[string]string{"x": "1", "y": "2"}, func(k string, v any) any {
		return k + "=" + v.(string)
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]any{"x=1", "y=2"}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestToObject(t *testing.T) {
	got, err := ToObject([]any{"a", "b"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]any{"0": "a", "1": "b"}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	recs := []map[string]any{{"id": "x", "n": 1}, {"id": "y", "n": 2}}
	got, err = ToObject(recs, func(_ int, v any) (string, any) {
		r := v.(map[string]any)
		return r["id"].(string), r["n"]
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]any{"x": 1, "y": 2}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	seq := ir.NewSequence("a")
	seq.Set("name", "list")
	got, err = ToObject(seq, nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]any{"0": "a", "name": "list"}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestConvertWrongShape(t *testing.T) {
	for _, v := range []any{nil, "s", 1, []any{1}} {
		_, err := ToArray(v, nil)
		if !errors.Is(err, ir.ErrNotMapping) {
			t.Errorf("ToArray(%#v): expected ErrNotMapping, got %v", v, err)
		}
	}
	for _, v := range []any{nil, "s", 1, map[string]any{}} {
		_, err := ToObject(v, nil)
		if !errors.Is(err, ir.ErrNotSequence) {
			t.Errorf("ToObject(%#v): expected ErrNotSequence, got %v", v, err)
		}
	}
	_, err := ToArray(42, nil)
	if err == nil || !strings.Contains(err.Error(), "Number (int)") {
		t.Errorf("unexpected message %v", err)
	}
}
