package libdiff

import (
	"maps"
	"slices"
	"strconv"

	"github.com/tony-format/objops/ir"
)

// Paths returns the `$`-paths at which from and to differ, in order.
// Containers of the same kind are compared entry by entry; anything else
// is reported at its own path when not ir.Equal.
func Paths(from, to any) []string {
	return paths(nil, "$", from, to)
}

func paths(dst []string, at string, from, to any) []string {
	kf, kt := ir.KindOf(from), ir.KindOf(to)
	if kf != kt || kf.IsLeaf() {
		if !ir.Equal(from, to) {
			dst = append(dst, at)
		}
		return dst
	}
	switch kf {
	case ir.MappingKind:
		mf, _ := ir.Entries(from)
		mt, _ := ir.Entries(to)
		return diffEntries(dst, at, mf, mt)
	default:
		itf, af, _ := ir.Items(from)
		itt, at2, _ := ir.Items(to)
		for i := range max(len(itf), len(itt)) {
			sub := at + "[" + strconv.Itoa(i) + "]"
			switch {
			case i >= len(itf), i >= len(itt):
				dst = append(dst, sub)
			default:
				dst = paths(dst, sub, itf[i], itt[i])
			}
		}
		return diffEntries(dst, at, af, at2)
	}
}

func diffEntries(dst []string, at string, from, to map[string]any) []string {
	keys := slices.Sorted(maps.Keys(from))
	for k := range to {
		if _, ok := from[k]; !ok {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	for _, k := range keys {
		sub := at + "." + ir.PathField(k)
		vf, okF := from[k]
		vt, okT := to[k]
		if !okF || !okT {
			dst = append(dst, sub)
			continue
		}
		dst = paths(dst, sub, vf, vt)
	}
	return dst
}
