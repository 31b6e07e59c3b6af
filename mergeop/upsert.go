package mergeop

import (
	"github.com/tony-format/objops/clone"
	"github.com/tony-format/objops/debug"
	"github.com/tony-format/objops/ir"
)

// IDKey is the default identity attribute.
const IDKey = "id"

// Upsert returns a copy of list in which candidate is merged into the
// first record whose identityKey attribute equals the candidate's, or
// appended if there is no such record.  An empty identityKey means IDKey.
// Any string-keyed map is a record; a merged record becomes a
// map[string]any.
//
// Neither list nor candidate is modified.  A nil list is treated as
// empty and a nil candidate leaves the copy unchanged.  A candidate
// without the identity attribute never matches and is appended.
func Upsert(list []any, candidate map[string]any, identityKey string) []any {
	if identityKey == "" {
		identityKey = IDKey
	}
	res := []any{}
	if list != nil {
		res = clone.Clone(list).([]any)
	}
	if candidate == nil {
		return res
	}
	id, hasID := candidate[identityKey]
	if hasID {
		for i, item := range res {
			rec, ok := ir.Entries(item)
			if !ok {
				continue
			}
			recID, ok := rec[identityKey]
			if !ok || !ir.Equal(recID, id) {
				continue
			}
			if debug.Upsert() {
				debug.Logf("upsert: %s=%v merged at %d\n", identityKey, id, i)
			}
			res[i] = overlay(rec, candidate)
			return res
		}
	}
	if debug.Upsert() {
		debug.Logf("upsert: %s=%v appended at %d\n", identityKey, id, len(res))
	}
	return append(res, clone.Clone(candidate))
}

// UpsertByID is Upsert keyed on IDKey.
func UpsertByID(list []any, candidate map[string]any) []any {
	return Upsert(list, candidate, IDKey)
}

// UpsertAll upserts each candidate in turn.
func UpsertAll(list []any, identityKey string, candidates ...map[string]any) []any {
	res := Upsert(list, nil, identityKey)
	for _, c := range candidates {
		res = Upsert(res, c, identityKey)
	}
	return res
}

// Overlay returns a new record with the attributes of base followed by
// those of over, so that over wins on collision.  Values are cloned.
func Overlay(base, over map[string]any) map[string]any {
	return overlay(clone.Clone(base).(map[string]any), over)
}

// overlay is Overlay for a base which is already owned by the caller.
func overlay(base, over map[string]any) map[string]any {
	res := make(map[string]any, len(base)+len(over))
	for k, v := range base {
		res[k] = v
	}
	for k, v := range over {
		res[k] = clone.Clone(v)
	}
	return res
}
