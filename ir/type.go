package ir

import (
	"fmt"
	"reflect"
	"time"
)

// Kind is the category of a value.
type Kind int

const (
	UnknownKind Kind = iota
	NullKind
	BoolKind
	NumberKind
	StringKind
	FuncKind
	SequenceKind
	MappingKind
	DateKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		UnknownKind:  "Unknown",
		NullKind:     "Null",
		BoolKind:     "Bool",
		NumberKind:   "Number",
		StringKind:   "String",
		FuncKind:     "Func",
		SequenceKind: "Sequence",
		MappingKind:  "Mapping",
		DateKind:     "Date",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Unknown":  UnknownKind,
		"Null":     NullKind,
		"Bool":     BoolKind,
		"Number":   NumberKind,
		"String":   StringKind,
		"Func":     FuncKind,
		"Sequence": SequenceKind,
		"Mapping":  MappingKind,
		"Date":     DateKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		UnknownKind,
		NullKind,
		BoolKind,
		NumberKind,
		StringKind,
		FuncKind,
		SequenceKind,
		MappingKind,
		DateKind,
	}
}

// IsLeaf reports whether values of kind k hold no other values.
func (k Kind) IsLeaf() bool {
	switch k {
	case SequenceKind, MappingKind:
		return false
	default:
		return true
	}
}

// KindOf classifies v.  Named Go types are classified by their underlying
// kind, so a `type Labels map[string]string` is a mapping.
func KindOf(v any) Kind {
	switch x := v.(type) {
	case nil, absent:
		return NullKind
	case bool:
		return BoolKind
	case string:
		return StringKind
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64:
		return NumberKind
	case []any, *Sequence, Sequence:
		return SequenceKind
	case map[string]any:
		return MappingKind
	case time.Time, *time.Time:
		return DateKind
	default:
		return reflectKind(reflect.ValueOf(x))
	}
}

func reflectKind(rv reflect.Value) Kind {
	switch rv.Kind() {
	case reflect.Bool:
		return BoolKind
	case reflect.String:
		return StringKind
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return NumberKind
	case reflect.Func:
		return FuncKind
	case reflect.Slice, reflect.Array:
		return SequenceKind
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return MappingKind
		}
		return UnknownKind
	default:
		return UnknownKind
	}
}
