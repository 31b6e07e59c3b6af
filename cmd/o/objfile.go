package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tony-format/objops/encode"
	"github.com/tony-format/objops/parse"

	"github.com/scott-cotton/cli"
)

// getObjFile decodes the documents in path, or in cc.In if path is "-".
func getObjFile(cc *cli.Context, path string, opts ...parse.ParseOption) ([]any, error) {
	var (
		r io.Reader
	)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	return readDocs(r, path, opts...)
}

func readDocs(r io.Reader, name string, opts ...parse.ParseOption) ([]any, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", name, err)
	}
	return parse.ParseDocs(d, opts...)
}

// eachFile calls fn with the documents of each file in files, or of
// stdin if there are none.
func eachFile(cfg *MainConfig, cc *cli.Context, files []string, fn func(file string, docs []any) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		docs, err := getObjFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if err := fn(file, docs); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}

// getish decodes arg as a document, reading it from a file with f and
// taking it literally otherwise.
func getish(s, f bool, cc *cli.Context, arg string, opts []parse.ParseOption) (any, error) {
	if s == f && s {
		return nil, fmt.Errorf("%w: only one of -s, -f may be specified", cli.ErrUsage)
	}
	var r io.Reader
	if f {
		switch arg {
		case "-":
			r = cc.In
		default:
			f, err := os.Open(arg)
			if err != nil {
				return nil, fmt.Errorf("error opening %s: %w", arg, err)
			}
			defer f.Close()
			r = f
		}
	} else {
		r = strings.NewReader(arg)
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", arg, err)
	}
	return parse.Parse(d, opts...)
}

// writeDocs encodes docs to w separated by "---".
func writeDocs(cfg *MainConfig, w io.Writer, docs []any, sep bool) (bool, error) {
	opts := cfg.encOpts(w)
	for _, doc := range docs {
		if sep {
			if _, err := io.WriteString(w, "---\n"); err != nil {
				return sep, err
			}
		}
		if err := encode.Encode(doc, w, opts...); err != nil {
			return sep, fmt.Errorf("error encoding output: %w", err)
		}
		sep = true
	}
	return sep, nil
}
