// Package encode writes values as YAML or JSON.
package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/lexer"
)

// Encode writes v to w followed by a newline.  Values are first passed
// through Plain.
func Encode(v any, w io.Writer, opts ...EncodeOption) error {
	eo := &encOpts{indent: 2}
	for _, o := range opts {
		o(eo)
	}
	d, err := marshal(Plain(v), eo)
	if err != nil {
		return err
	}
	out := strings.TrimRight(string(d), "\n")
	if eo.colors != nil {
		out = eo.colors.printer().PrintTokens(lexer.Tokenize(out))
	}
	if _, err := io.WriteString(w, out+"\n"); err != nil {
		return fmt.Errorf("error writing: %w", err)
	}
	return nil
}

func marshal(v any, eo *encOpts) ([]byte, error) {
	if eo.format.IsJSON() {
		d, err := json.MarshalIndent(v, "", strings.Repeat(" ", eo.indent))
		if err != nil {
			return nil, fmt.Errorf("error encoding json: %w", err)
		}
		return d, nil
	}
	d, err := yaml.MarshalWithOptions(v, yaml.Indent(eo.indent))
	if err != nil {
		return nil, fmt.Errorf("error encoding yaml: %w", err)
	}
	return d, nil
}

// MustString returns the YAML encoding of v, panicking on error.
func MustString(v any, opts ...EncodeOption) string {
	buf := &strings.Builder{}
	if err := Encode(v, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
