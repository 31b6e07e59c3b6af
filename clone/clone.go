// Package clone deep-copies values.
//
// A clone shares no map, slice, [ir.Sequence] or *time.Time with its
// source.  Scalars and funcs are shared since they cannot be mutated
// through the clone.  Cycles are not detected.
package clone

import (
	"log/slog"
	"reflect"
	"time"

	"github.com/tony-format/objops/debug"
	"github.com/tony-format/objops/ir"
)

// Cloner deep-copies values, reporting values of unknown kind to Log.
type Cloner struct {
	// Log receives a warning for each value of unknown kind.  If nil,
	// slog.Default() is used.
	Log *slog.Logger
}

var std = &Cloner{}

// Clone deep-copies v with the default Cloner.
func Clone(v any) any {
	return std.Clone(v)
}

func (c *Cloner) log() *slog.Logger {
	if c.Log == nil {
		return slog.Default()
	}
	return c.Log
}

func (c *Cloner) Clone(v any) any {
	switch ir.KindOf(v) {
	case ir.NullKind, ir.BoolKind, ir.NumberKind, ir.StringKind, ir.FuncKind:
		return v
	case ir.DateKind:
		return cloneDate(v)
	case ir.SequenceKind:
		return c.cloneSequence(v)
	case ir.MappingKind:
		return c.cloneMapping(v)
	default:
		c.log().Warn("unrecognized value category",
			"kind", ir.UnknownKind,
			"type", reflect.TypeOf(v).String())
		return v
	}
}

func cloneDate(v any) any {
	switch t := v.(type) {
	case *time.Time:
		if t == nil {
			return t
		}
		res := *t
		return &res
	default:
		return v
	}
}

func (c *Cloner) cloneSequence(v any) any {
	if debug.Clone() {
		debug.Logf("clone sequence %T\n", v)
	}
	switch x := v.(type) {
	case []any:
		if x == nil {
			return x
		}
		res := make([]any, len(x))
		for i, item := range x {
			res[i] = c.Clone(item)
		}
		return res
	case *ir.Sequence:
		if x == nil {
			return x
		}
		res := c.cloneSeq(x)
		return &res
	case ir.Sequence:
		return c.cloneSeq(&x)
	}
	rv := reflect.ValueOf(v)
	var res reflect.Value
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return v
		}
		res = reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
	default:
		res = reflect.New(rv.Type()).Elem()
	}
	for i := range rv.Len() {
		res.Index(i).Set(c.cloneElem(rv.Index(i)))
	}
	return res.Interface()
}

func (c *Cloner) cloneSeq(x *ir.Sequence) ir.Sequence {
	res := ir.Sequence{}
	if x.Items != nil {
		res.Items = make([]any, len(x.Items))
		for i, item := range x.Items {
			res.Items[i] = c.Clone(item)
		}
	}
	if x.Attrs != nil {
		res.Attrs = make(map[string]any, len(x.Attrs))
		for k, attr := range x.Attrs {
			res.Attrs[k] = c.Clone(attr)
		}
	}
	return res
}

func (c *Cloner) cloneMapping(v any) any {
	if debug.Clone() {
		debug.Logf("clone mapping %T\n", v)
	}
	if m, ok := v.(map[string]any); ok {
		if m == nil {
			return m
		}
		res := make(map[string]any, len(m))
		for k, val := range m {
			res[k] = c.Clone(val)
		}
		return res
	}
	rv := reflect.ValueOf(v)
	if rv.IsNil() {
		return v
	}
	res := reflect.MakeMapWithSize(rv.Type(), rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		res.SetMapIndex(iter.Key(), c.cloneElem(iter.Value()))
	}
	return res.Interface()
}

// cloneElem clones an element of a typed container.  Clones keep the
// dynamic type of their source so the result is assignable to the element
// type.
func (c *Cloner) cloneElem(ev reflect.Value) reflect.Value {
	et := ev.Type()
	if et.Kind() == reflect.Interface && ev.IsNil() {
		return reflect.Zero(et)
	}
	cv := c.Clone(ev.Interface())
	if cv == nil {
		return reflect.Zero(et)
	}
	return reflect.ValueOf(cv)
}
