package mergeop

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type labels map[string]string

type upsertTest struct {
	name      string
	list      []any
	candidate map[string]any
	key       string
	want      []any
}

var upsertTests = []upsertTest{
	{
		name:      "append on no match",
		list:      []any{map[string]any{"uuid": 0, "label": "foo"}},
		candidate: map[string]any{"uuid": 1, "label": "bar"},
		key:       "uuid",
		want: []any{
			map[string]any{"uuid": 0, "label": "foo"},
			map[string]any{"uuid": 1, "label": "bar"},
		},
	},
	{
		name: "overlay on match",
		list: []any{
			map[string]any{"uuid": 0, "label": "foo"},
			map[string]any{"uuid": 1, "label": "quz", "value": true, "date": ""},
		},
		candidate: map[string]any{"uuid": 1, "label": "bar", "value": false, "attribute": ""},
		key:       "uuid",
		want: []any{
			map[string]any{"uuid": 0, "label": "foo"},
			map[string]any{"uuid": 1, "label": "bar", "value": false, "date": "", "attribute": ""},
		},
	},
	{
		name:      "nil list",
		candidate: map[string]any{"id": "a"},
		want:      []any{map[string]any{"id": "a"}},
	},
	{
		name: "nil candidate",
		list: []any{map[string]any{"id": "a"}},
		want: []any{map[string]any{"id": "a"}},
	},
	{
		name: "nil list and candidate",
		want: []any{},
	},
	{
		name:      "default key",
		list:      []any{map[string]any{"id": "a", "n": 1}},
		candidate: map[string]any{"id": "a", "n": 2},
		want:      []any{map[string]any{"id": "a", "n": 2}},
	},
	{
		name: "first match only",
		list: []any{
			map[string]any{"id": 1, "v": "first"},
			map[string]any{"id": 1, "v": "second"},
		},
		candidate: map[string]any{"id": 1, "v": "new"},
		key:       "id",
		want: []any{
			map[string]any{"id": 1, "v": "new"},
			map[string]any{"id": 1, "v": "second"},
		},
	},
	{
		name:      "numbers compare by value",
		list:      []any{map[string]any{"id": uint64(7), "a": 1}},
		candidate: map[string]any{"id": 7.0, "b": 2},
		key:       "id",
		want:      []any{map[string]any{"id": 7.0, "a": 1, "b": 2}},
	},
	{
		name:      "structured identity",
		list:      []any{map[string]any{"id": []any{"a", 1}, "x": 1}},
		candidate: map[string]any{"id": []any{"a", 1}, "y": 2},
		key:       "id",
		want:      []any{map[string]any{"id": []any{"a", 1}, "x": 1, "y": 2}},
	},
	{
		name:      "candidate without identity appends",
		list:      []any{map[string]any{"name": "x"}},
		candidate: map[string]any{"name": "y"},
		key:       "id",
		want: []any{
			map[string]any{"name": "x"},
			map[string]any{"name": "y"},
		},
	},
	{
		name:      "non-record elements skipped",
		list:      []any{"scalar", nil, map[string]any{"id": 2}},
		candidate: map[string]any{"id": 2, "ok": true},
		key:       "id",
		want:      []any{"scalar", nil, map[string]any{"id": 2, "ok": true}},
	},
	{
		name: "typed record matches",
		list: []any{
			map[string]string{"id": "1", "name": "a"},
			labels{"id": "2"},
		},
		candidate: map[string]any{"id": "2", "tag": "x"},
		key:       "id",
		want: []any{
			map[string]string{"id": "1", "name": "a"},
			map[string]any{"id": "2", "tag": "x"},
		},
	},
	{
		name:      "string map record merged",
		list:      []any{map[string]string{"id": "1", "name": "a"}},
		candidate: map[string]any{"id": "1", "tag": "x"},
		want:      []any{map[string]any{"id": "1", "name": "a", "tag": "x"}},
	},
	{
		name:      "nil identity matches nil identity",
		list:      []any{map[string]any{"id": nil, "a": 1}},
		candidate: map[string]any{"id": nil, "b": 2},
		key:       "id",
		want:      []any{map[string]any{"id": nil, "a": 1, "b": 2}},
	},
}

func TestUpsert(t *testing.T) {
	for _, tt := range upsertTests {
		t.Run(tt.name, func(t *testing.T) {
			got := Upsert(tt.list, tt.candidate, tt.key)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestUpsertNoSourceMutation(t *testing.T) {
	mk := func() ([]any, map[string]any) {
		list := []any{
			map[string]any{"id": 1, "tags": []any{"a"}},
			map[string]any{"id": 2},
		}
		cand := map[string]any{"id": 1, "tags": []any{"b"}, "meta": map[string]any{"k": "v"}}
		return list, cand
	}
	list, cand := mk()
	res := UpsertByID(list, cand)

	wantList, wantCand := mk()
	if diff := cmp.Diff(wantList, list); diff != "" {
		t.Errorf("list mutated (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantCand, cand); diff != "" {
		t.Errorf("candidate mutated (-want +got):\n%s", diff)
	}

	res[0].(map[string]any)["meta"].(map[string]any)["k"] = "changed"
	res[0].(map[string]any)["tags"].([]any)[0] = "z"
	if cand["meta"].(map[string]any)["k"] != "v" || cand["tags"].([]any)[0] != "b" {
		t.Errorf("result aliases candidate")
	}
	res[1].(map[string]any)["id"] = 99
	if list[1].(map[string]any)["id"] != 2 {
		t.Errorf("result aliases list")
	}

	appended := UpsertByID(list, map[string]any{"id": 3, "m": map[string]any{}})
	appended[2].(map[string]any)["m"].(map[string]any)["x"] = 1
	if len(list) != 2 {
		t.Errorf("list grew")
	}
}

func TestUpsertNoNewDuplicates(t *testing.T) {
	list := []any{}
	for i := range 5 {
		list = UpsertByID(list, map[string]any{"id": i % 2, "n": i})
	}
	want := []any{
		map[string]any{"id": 0, "n": 4},
		map[string]any{"id": 1, "n": 3},
	}
	if diff := cmp.Diff(want, list); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestUpsertAll(t *testing.T) {
	got := UpsertAll(nil, "k",
		map[string]any{"k": "a", "v": 1},
		map[string]any{"k": "b", "v": 2},
		map[string]any{"k": "a", "w": 3},
	)
	want := []any{
		map[string]any{"k": "a", "v": 1, "w": 3},
		map[string]any{"k": "b", "v": 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestOverlay(t *testing.T) {
	base := map[string]any{"a": 1, "b": map[string]any{"x": 1}}
	over := map[string]any{"b": map[string]any{"y": 2}, "c": 3}
	got := Overlay(base, over)
	want := map[string]any{"a": 1, "b": map[string]any{"y": 2}, "c": 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	got["b"].(map[string]any)["y"] = 0
	if over["b"].(map[string]any)["y"] != 2 {
		t.Errorf("overlay aliases over")
	}
	if Overlay(nil, nil) == nil {
		t.Errorf("expected empty map")
	}
}
