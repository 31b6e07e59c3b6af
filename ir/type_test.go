package ir

import (
	"testing"
	"time"
)

type labels map[string]string

type kindTest struct {
	in   any
	kind Kind
}

func TestKindOf(t *testing.T) {
	now := time.Now()
	var nilSeq *Sequence
	tests := []kindTest{
		{nil, NullKind},
		{Absent, NullKind},
		{true, BoolKind},
		{"s", StringKind},
		{0, NumberKind},
		{uint8(1), NumberKind},
		{2.5, NumberKind},
		{[]any{}, SequenceKind},
		{[]int{1}, SequenceKind},
		{[2]string{}, SequenceKind},
		{NewSequence(), SequenceKind},
		{nilSeq, SequenceKind},
		{Sequence{}, SequenceKind},
		{map[string]any{}, MappingKind},
		{labels{}, MappingKind},
		{map[int]any{}, UnknownKind},
		{now, DateKind},
		{&now, DateKind},
		{func() {}, FuncKind},
		{complex(1, 1), UnknownKind},
		{struct{}{}, UnknownKind},
		{make(chan int), UnknownKind},
	}
	for i, tt := range tests {
		if got := KindOf(tt.in); got != tt.kind {
			t.Errorf("%d: KindOf(%T) = %s, want %s", i, tt.in, got, tt.kind)
		}
	}
}

func TestKindText(t *testing.T) {
	for _, k := range Kinds() {
		d, err := k.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var kk Kind
		if err := kk.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if kk != k {
			t.Errorf("%s round tripped to %s", k, kk)
		}
	}
	var k Kind
	if err := k.UnmarshalText([]byte("Tuple")); err == nil {
		t.Errorf("expected error")
	}
	if Kind(99).String() != "<unknown kind>" {
		t.Errorf("bad string for out of range kind")
	}
}

func TestIsLeaf(t *testing.T) {
	for _, k := range Kinds() {
		want := k != SequenceKind && k != MappingKind
		if k.IsLeaf() != want {
			t.Errorf("%s.IsLeaf() = %t", k, k.IsLeaf())
		}
	}
}
