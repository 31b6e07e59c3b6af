package main

import (
	"fmt"

	"github.com/tony-format/objops/gomap"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string, fn func(any) (any, error)) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	sep := false
	return eachFile(cfg.MainConfig, cc, args, func(_ string, docs []any) error {
		res, err := convertDocs(docs, fn)
		if err != nil {
			return err
		}
		sep, err = writeDocs(cfg.MainConfig, cc.Out, res, sep)
		return err
	})
}

func convertDocs(docs []any, fn func(any) (any, error)) ([]any, error) {
	res := make([]any, len(docs))
	for i, doc := range docs {
		v, err := fn(doc)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		res[i] = v
	}
	return res, nil
}

func toArray(v any) (any, error) {
	return gomap.ToArray(v, nil)
}

func toObject(v any) (any, error) {
	return gomap.ToObject(v, nil)
}
