package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"y": YAMLFormat, "yaml": YAMLFormat, "j": JSONFormat, "json": JSONFormat,
	} {
		got, err := ParseFormat(in)
		if err != nil {
			t.Errorf("%q: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("%q: got %s want %s", in, got, want)
		}
	}
	if _, err := ParseFormat("tony"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}

func TestFormatText(t *testing.T) {
	var f Format
	if err := f.UnmarshalText([]byte("json")); err != nil {
		t.Fatal(err)
	}
	if !f.IsJSON() || f.String() != "json" {
		t.Errorf("unexpected %s", f)
	}
	if _, err := Format(9).MarshalText(); err == nil {
		t.Errorf("expected error for unknown format")
	}
}
