// Package nav provides null-safe navigation over values.
//
// [Wrap] takes a private deep copy of a value.  Navigating the resulting
// [Wrapped] with Get, Index or Path never fails, whether or not the keys
// exist.  Only Unwrap resolves the recorded steps, yielding [ir.Absent]
// when any step misses.
//
//	w := nav.Wrap(doc)
//	name := w.Get("spec").Get("owner").Get("name").Unwrap()
//	if ir.IsAbsent(name) {
//		...
//	}
package nav

import (
	"bytes"
	"reflect"
	"slices"
	"strconv"

	"github.com/tony-format/objops/clone"
	"github.com/tony-format/objops/debug"
	"github.com/tony-format/objops/ir"
)

// Wrapped is a navigable handle on a private copy of a value.  A Wrapped
// is never modified after creation: each navigation returns a new one.
type Wrapped struct {
	root  *box
	steps []step
	// bad is set when a navigation could never resolve, such as a path
	// which failed to parse.
	bad bool
}

// box holds the root so that scalars can be navigated like containers.
type box struct {
	v any
}

type step struct {
	key   string
	index int
	isIdx bool
}

func (s step) String() string {
	if s.isIdx {
		return "[" + strconv.Itoa(s.index) + "]"
	}
	return "." + ir.PathField(s.key)
}

// Wrap returns a Wrapped over a deep copy of v.  If v is already a
// *Wrapped it is returned as is.
func Wrap(v any) *Wrapped {
	if w, ok := v.(*Wrapped); ok {
		if w == nil {
			return &Wrapped{root: &box{}}
		}
		return w
	}
	return &Wrapped{root: &box{v: clone.Clone(v)}}
}

// Unwrap resolves v if it is a *Wrapped and returns it unchanged
// otherwise.
func Unwrap(v any) any {
	if w, ok := v.(*Wrapped); ok && w != nil {
		return w.Unwrap()
	}
	return v
}

func (w *Wrapped) with(s step) *Wrapped {
	if w == nil {
		w = &Wrapped{root: &box{}}
	}
	return &Wrapped{
		root:  w.root,
		steps: append(slices.Clip(w.steps), s),
		bad:   w.bad,
	}
}

// Get navigates to key.
func (w *Wrapped) Get(key string) *Wrapped {
	return w.with(step{key: key})
}

// Index navigates to index i.
func (w *Wrapped) Index(i int) *Wrapped {
	return w.with(step{index: i, isIdx: true})
}

// Path navigates each step of the `$`-path p, which is relative to w.
// A path which does not parse, or which contains wildcards, unwraps to
// ir.Absent.
func (w *Wrapped) Path(p string) *Wrapped {
	yp, err := ir.ParsePath(p)
	if err != nil || yp.Wildcard() {
		if debug.Nav() {
			debug.Logf("nav: unusable path %q: %v\n", p, err)
		}
		res := w.with(step{key: p})
		res.bad = true
		return res
	}
	res := w
	for x := yp; x != nil; x = x.Next {
		switch {
		case x.Field != nil:
			res = res.Get(*x.Field)
		case x.Index != nil:
			res = res.Index(*x.Index)
		}
	}
	return res
}

// String returns the recorded path, eg `$.a[0].b`.
func (w *Wrapped) String() string {
	if w == nil {
		return "$"
	}
	buf := bytes.NewBuffer([]byte{'$'})
	for _, s := range w.steps {
		buf.WriteString(s.String())
	}
	return buf.String()
}

// Unwrap returns the value at the recorded path, or ir.Absent if any step
// misses.  The result is part of w's private copy: mutating it does not
// affect the value originally wrapped.
func (w *Wrapped) Unwrap() any {
	v, ok := w.Lookup()
	if !ok {
		return ir.Absent
	}
	return v
}

// Lookup is like Unwrap but reports whether the path resolved.
func (w *Wrapped) Lookup() (any, bool) {
	if w == nil || w.bad {
		return nil, false
	}
	var cur any
	if w.root != nil {
		cur = w.root.v
	}
	for i, s := range w.steps {
		next, ok := resolve(cur, s)
		if !ok {
			if debug.Nav() {
				debug.Logf("nav: %s missing at step %d (%s)\n", w, i, s)
			}
			return nil, false
		}
		cur = next
	}
	return cur, true
}

func resolve(v any, s step) (any, bool) {
	key := s.key
	if s.isIdx {
		if s.index < 0 {
			return nil, false
		}
		key = strconv.Itoa(s.index)
	}
	switch ir.KindOf(v) {
	case ir.MappingKind:
		return lookupKey(v, key)
	case ir.SequenceKind:
		return lookupIndex(v, key)
	default:
		return nil, false
	}
}

func lookupKey(v any, key string) (any, bool) {
	if m, ok := v.(map[string]any); ok {
		res, ok := m[key]
		return res, ok
	}
	rv := reflect.ValueOf(v)
	kv := reflect.ValueOf(key).Convert(rv.Type().Key())
	res := rv.MapIndex(kv)
	if !res.IsValid() {
		return nil, false
	}
	return res.Interface(), true
}

func lookupIndex(v any, key string) (any, bool) {
	switch x := v.(type) {
	case *ir.Sequence:
		return x.Get(key)
	case ir.Sequence:
		return x.Get(key)
	case []any:
		i, ok := ir.ParseIndex(key)
		if !ok || i >= len(x) {
			return nil, false
		}
		return x[i], true
	}
	i, ok := ir.ParseIndex(key)
	if !ok {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if i >= rv.Len() {
		return nil, false
	}
	return rv.Index(i).Interface(), true
}
