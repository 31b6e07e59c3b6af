// Package gomap converts between Go mappings and sequences.
package gomap

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/tony-format/objops/ir"
)

// Filter returns a new mapping holding the entries of m whose key
// satisfies pred.  Values are shared, not copied.  A nil pred keeps every
// key.
func Filter(m map[string]any, pred func(key string) bool) map[string]any {
	res := make(map[string]any, len(m))
	for k, v := range m {
		if pred == nil || pred(k) {
			res[k] = v
		}
	}
	return res
}

// ToArray returns the values of the mapping v in key order, each passed
// through fn if fn is not nil.  It fails with ir.ErrNotMapping if v is not
// a mapping.
func ToArray(v any, fn func(key string, val any) any) ([]any, error) {
	m, ok := ir.Entries(v)
	if !ok {
		return nil, fmt.Errorf("%w: cannot convert %s (%T) to array", ir.ErrNotMapping, ir.KindOf(v), v)
	}
	keys := slices.Sorted(maps.Keys(m))
	res := make([]any, len(keys))
	for i, k := range keys {
		if fn == nil {
			res[i] = m[k]
			continue
		}
		res[i] = fn(k, m[k])
	}
	return res, nil
}

// ToObject returns a mapping from the decimal index of each item of the
// sequence v to the item, or whatever key and value fn returns for it.
// Attributes of an *ir.Sequence are carried over unless an item produced
// the same key.  It fails with ir.ErrNotSequence if v is not a sequence.
func ToObject(v any, fn func(i int, val any) (string, any)) (map[string]any, error) {
	items, attrs, ok := ir.Items(v)
	if !ok {
		return nil, fmt.Errorf("%w: cannot convert %s (%T) to object", ir.ErrNotSequence, ir.KindOf(v), v)
	}
	res := make(map[string]any, len(items)+len(attrs))
	for k, a := range attrs {
		res[k] = a
	}
	for i, item := range items {
		if fn == nil {
			res[strconv.Itoa(i)] = item
			continue
		}
		k, val := fn(i, item)
		res[k] = val
	}
	return res, nil
}
