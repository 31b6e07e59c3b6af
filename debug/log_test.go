package debug

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogfRendersContainers(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	old := out
	out = buf
	defer func() { out = old }()

	Logf("merged %s into %s\n", map[string]any{"id": 1}, "list")
	got := buf.String()
	if !strings.Contains(got, `"id": 1`) {
		t.Errorf("expected JSON rendering, got %q", got)
	}
	if !strings.HasSuffix(got, "into list\n") {
		t.Errorf("unexpected tail %q", got)
	}
}

func TestLogfUnmarshalable(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	old := out
	out = buf
	defer func() { out = old }()

	Logf("%s\n", map[string]any{"f": func() {}})
	if !strings.HasPrefix(buf.String(), "map[") {
		t.Errorf("expected fmt fallback, got %q", buf.String())
	}
}
