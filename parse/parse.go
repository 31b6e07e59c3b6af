// Package parse decodes YAML and JSON documents into values.
//
// Mappings decode to map[string]any and sequences to []any, the shapes
// the other objops packages work on.
package parse

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tony-format/objops/format"

	"github.com/goccy/go-yaml"
)

type parseOpts struct {
	format format.Format
}

type ParseOption func(*parseOpts)

func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// Parse decodes one document.  YAML is the default format.
func Parse(d []byte, opts ...ParseOption) (any, error) {
	po := &parseOpts{}
	for _, o := range opts {
		o(po)
	}
	var v any
	if po.format.IsJSON() {
		if len(bytes.TrimSpace(d)) == 0 {
			return nil, ErrEmptyJSON
		}
		if err := json.Unmarshal(d, &v); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		return v, nil
	}
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return v, nil
}

// ParseDocs splits d on "\n---\n" and decodes each document.
func ParseDocs(d []byte, opts ...ParseOption) ([]any, error) {
	docs := bytes.Split(d, []byte("\n---\n"))
	res := make([]any, 0, len(docs))
	for i, doc := range docs {
		v, err := Parse(doc, opts...)
		if err != nil {
			return nil, fmt.Errorf("error decoding document %d: %w", i, err)
		}
		res = append(res, v)
	}
	return res, nil
}
