package ir

import (
	"maps"
	"slices"
	"strconv"
)

// Sequence is an ordered sequence which may additionally carry named
// attributes.  Nil slots in Items are holes.  Both Sequence and *Sequence
// are sequence values.
type Sequence struct {
	Items []any
	Attrs map[string]any
}

func NewSequence(items ...any) *Sequence {
	return &Sequence{Items: items}
}

func (s *Sequence) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Items)
}

// Get looks up key as an item index when it is a canonical index and as an
// attribute otherwise.
func (s *Sequence) Get(key string) (any, bool) {
	if s == nil {
		return nil, false
	}
	if i, ok := ParseIndex(key); ok {
		if i >= len(s.Items) {
			return nil, false
		}
		return s.Items[i], true
	}
	v, ok := s.Attrs[key]
	return v, ok
}

// Set assigns key.  Setting an index past the end grows Items, leaving
// holes.
func (s *Sequence) Set(key string, v any) {
	if i, ok := ParseIndex(key); ok {
		if i >= len(s.Items) {
			s.Items = slices.Grow(s.Items, i+1-len(s.Items))[:i+1]
		}
		s.Items[i] = v
		return
	}
	if s.Attrs == nil {
		s.Attrs = map[string]any{}
	}
	s.Attrs[key] = v
}

// Keys returns the item indices followed by the sorted attribute names.
func (s *Sequence) Keys() []string {
	res := make([]string, 0, s.Len()+len(s.Attrs))
	for i := range s.Len() {
		res = append(res, strconv.Itoa(i))
	}
	return append(res, slices.Sorted(maps.Keys(s.Attrs))...)
}

// ParseIndex parses key as a non-negative decimal index in canonical form:
// "01", "+1" and "-0" are not indices.
func ParseIndex(key string) (int, bool) {
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 {
		return 0, false
	}
	if strconv.Itoa(i) != key {
		return 0, false
	}
	return i, true
}
