package main

import (
	"fmt"
	"io"

	"github.com/tony-format/objops/encode"
	"github.com/tony-format/objops/ir"
	"github.com/tony-format/objops/libdiff"
	"github.com/tony-format/objops/mergeop"

	"github.com/scott-cotton/cli"
)

func upsert(cfg *UpsertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Upsert.Parse(cc, args)
	if err != nil {
		cfg.Upsert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: upsert requires 1 argument, a candidate record", cli.ErrUsage)
	}
	cand, err := getCandidate(cfg, cc, args[0])
	if err != nil {
		return err
	}
	sep := false
	return eachFile(cfg.MainConfig, cc, args[1:], func(_ string, docs []any) error {
		res, err := upsertDocs(cfg.Key, cand, docs)
		if err != nil {
			return err
		}
		if cfg.Diff {
			return diffDocs(cfg.MainConfig, cc.Out, docs, res)
		}
		sep, err = writeDocs(cfg.MainConfig, cc.Out, res, sep)
		return err
	})
}

func getCandidate(cfg *UpsertConfig, cc *cli.Context, arg string) (map[string]any, error) {
	v, err := getish(cfg.String, cfg.File, cc, arg, cfg.parseOpts())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	if v == nil {
		return nil, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: candidate must be a mapping, got %s", cli.ErrUsage, ir.KindOf(v))
	}
	return m, nil
}

func upsertDocs(key string, cand map[string]any, docs []any) ([]any, error) {
	res := make([]any, len(docs))
	for i, doc := range docs {
		var list []any
		switch x := doc.(type) {
		case nil:
		case []any:
			list = x
		default:
			return nil, fmt.Errorf("document %d: %w: cannot upsert into %s", i, ir.ErrNotSequence, ir.KindOf(doc))
		}
		res[i] = mergeop.Upsert(list, cand, key)
	}
	return res, nil
}

// diffDocs writes a line diff of the encodings of each pair of documents.
func diffDocs(cfg *MainConfig, w io.Writer, from, to []any) error {
	colors := cfg.colors(w)
	for i := range from {
		a := encode.MustString(from[i], encode.EncodeFormat(cfg.ioFormat(cfg.OutFormat)))
		b := encode.MustString(to[i], encode.EncodeFormat(cfg.ioFormat(cfg.OutFormat)))
		if err := libdiff.Write(w, libdiff.Lines(a, b), colors); err != nil {
			return err
		}
	}
	return nil
}
