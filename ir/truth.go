package ir

import "reflect"

func Truth(v any) bool {
	switch KindOf(v) {
	case NullKind:
		return false
	case BoolKind:
		return reflect.ValueOf(v).Bool()
	case NumberKind:
		return !reflect.ValueOf(v).IsZero()
	case StringKind:
		return reflect.ValueOf(v).Len() != 0
	case SequenceKind:
		items, attrs, _ := Items(v)
		return len(items) != 0 || len(attrs) != 0
	case MappingKind:
		m, _ := Entries(v)
		return len(m) != 0
	case FuncKind:
		return !reflect.ValueOf(v).IsNil()
	case DateKind:
		t, ok := asTime(v)
		return ok && !t.IsZero()
	default:
		return true
	}
}
