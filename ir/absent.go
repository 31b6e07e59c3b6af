package ir

type absent struct{}

func (absent) String() string { return "<absent>" }

// Absent is the result of resolving a path through a missing key.
var Absent any = absent{}

func IsAbsent(v any) bool {
	_, ok := v.(absent)
	return ok
}
