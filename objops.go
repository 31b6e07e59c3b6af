// Package objops collects the value operations of this module behind one
// import: deep cloning, null-safe navigation, upsert by identity, key
// filtering and mapping/sequence conversion.
//
// The operations never modify their inputs.
package objops

import (
	"github.com/tony-format/objops/clone"
	"github.com/tony-format/objops/gomap"
	"github.com/tony-format/objops/mergeop"
	"github.com/tony-format/objops/nav"
)

// Clone returns a deep copy of v.  See [clone.Clone].
func Clone(v any) any {
	return clone.Clone(v)
}

// Filter returns a new mapping with the entries of m whose key satisfies
// pred.  Values are shared with m.
func Filter(m map[string]any, pred func(key string) bool) map[string]any {
	return gomap.Filter(m, pred)
}

// Wrap returns a navigable wrapper over a copy of v.
func Wrap(v any) *nav.Wrapped {
	return nav.Wrap(v)
}

// Unwrap resolves a wrapper, returning ir.Absent if its path is missing,
// and returns any other value unchanged.
func Unwrap(v any) any {
	return nav.Unwrap(v)
}

// UpsertMerge merges candidate into the first record of a copy of list
// with the same identityKey attribute, or appends it.
func UpsertMerge(list []any, candidate map[string]any, identityKey string) []any {
	return mergeop.Upsert(list, candidate, identityKey)
}

func UpsertMergeByID(list []any, candidate map[string]any) []any {
	return mergeop.UpsertByID(list, candidate)
}

func ToArray(v any, fn func(key string, val any) any) ([]any, error) {
	return gomap.ToArray(v, fn)
}

func ToObject(v any, fn func(i int, val any) (string, any)) (map[string]any, error) {
	return gomap.ToObject(v, fn)
}
