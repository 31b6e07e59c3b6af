// Package mergeop merges keyed records into record lists.
//
// A record is a map[string]any carrying an identity attribute, "id" by
// default.  [Upsert] replaces the first record sharing the candidate's
// identity with the overlay of the candidate onto it, or appends the
// candidate:
//
//	list := []any{map[string]any{"id": 1, "name": "a"}}
//	list = mergeop.UpsertByID(list, map[string]any{"id": 1, "tag": "x"})
//	// [{id: 1, name: a, tag: x}]
//
// Identity values compare with [ir.Equal], so numbers of different Go
// types compare by value.  Upsert works on a deep copy of its input and
// never modifies its arguments.  Duplicates present before the call are
// left in place; only the first match is merged.
package mergeop
