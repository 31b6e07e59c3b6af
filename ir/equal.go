package ir

import (
	"reflect"
	"time"
)

// Equal reports whether a and b are structurally equal.  Numbers compare
// by value regardless of their Go type, dates by instant, and funcs are
// equal only when both are nil.
func Equal(a, b any) bool {
	ka, kb := KindOf(a), KindOf(b)
	if ka != kb {
		return false
	}
	switch ka {
	case NullKind:
		return true
	case BoolKind:
		return reflect.ValueOf(a).Bool() == reflect.ValueOf(b).Bool()
	case StringKind:
		return reflect.ValueOf(a).String() == reflect.ValueOf(b).String()
	case NumberKind:
		return numberEqual(reflect.ValueOf(a), reflect.ValueOf(b))
	case FuncKind:
		return reflect.ValueOf(a).IsNil() && reflect.ValueOf(b).IsNil()
	case DateKind:
		ta, okA := asTime(a)
		tb, okB := asTime(b)
		if okA != okB {
			return false
		}
		return !okA || ta.Equal(tb)
	case SequenceKind:
		ia, aa, _ := Items(a)
		ib, ab, _ := Items(b)
		if len(ia) != len(ib) || len(aa) != len(ab) {
			return false
		}
		for i := range ia {
			if !Equal(ia[i], ib[i]) {
				return false
			}
		}
		return mapEqual(aa, ab)
	case MappingKind:
		ma, _ := Entries(a)
		mb, _ := Entries(b)
		return mapEqual(ma, mb)
	default:
		return reflect.DeepEqual(a, b)
	}
}

func mapEqual(a, b map[string]any) bool {
	if len(a) != len(b) {
		return false
	}
	for k, va := range a {
		vb, ok := b[k]
		if !ok || !Equal(va, vb) {
			return false
		}
	}
	return true
}

func numberEqual(a, b reflect.Value) bool {
	switch {
	case a.CanFloat() || b.CanFloat():
		return toFloat(a) == toFloat(b)
	case a.CanInt() && b.CanInt():
		return a.Int() == b.Int()
	case a.CanUint() && b.CanUint():
		return a.Uint() == b.Uint()
	case a.CanInt():
		return a.Int() >= 0 && uint64(a.Int()) == b.Uint()
	default:
		return b.Int() >= 0 && uint64(b.Int()) == a.Uint()
	}
}

func toFloat(v reflect.Value) float64 {
	switch {
	case v.CanFloat():
		return v.Float()
	case v.CanInt():
		return float64(v.Int())
	default:
		return float64(v.Uint())
	}
}

func asTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}
		return *t, true
	}
	return time.Time{}, false
}

// Items returns the slots and attributes of a sequence value.
func Items(v any) (items []any, attrs map[string]any, ok bool) {
	switch x := v.(type) {
	case []any:
		return x, nil, true
	case *Sequence:
		if x == nil {
			return nil, nil, true
		}
		return x.Items, x.Attrs, true
	case Sequence:
		return x.Items, x.Attrs, true
	}
	if KindOf(v) != SequenceKind {
		return nil, nil, false
	}
	rv := reflect.ValueOf(v)
	items = make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, nil, true
}

// Entries returns the entries of a mapping value.  For map[string]any
// the map itself is returned.
func Entries(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	if KindOf(v) != MappingKind {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	res := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		res[iter.Key().String()] = iter.Value().Interface()
	}
	return res, true
}
