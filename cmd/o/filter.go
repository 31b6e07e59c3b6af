package main

import (
	"fmt"

	"github.com/tony-format/objops/eval"
	"github.com/tony-format/objops/ir"

	"github.com/scott-cotton/cli"
)

func filter(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Filter.Parse(cc, args)
	if err != nil {
		cfg.Filter.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: filter requires an expression (-e)", cli.ErrUsage)
	}
	f, err := eval.CompileKeyFilter(cfg.Expr)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	sep := false
	return eachFile(cfg.MainConfig, cc, args, func(_ string, docs []any) error {
		res, err := filterDocs(f, docs)
		if err != nil {
			return err
		}
		sep, err = writeDocs(cfg.MainConfig, cc.Out, res, sep)
		return err
	})
}

func filterDocs(f *eval.KeyFilter, docs []any) ([]any, error) {
	res := make([]any, len(docs))
	for i, doc := range docs {
		m, ok := ir.Entries(doc)
		if !ok {
			return nil, fmt.Errorf("document %d: %w: cannot filter %s", i, ir.ErrNotMapping, ir.KindOf(doc))
		}
		out, err := f.Apply(m)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		res[i] = out
	}
	return res, nil
}
