package main

import (
	"encoding/json"
	"fmt"

	"github.com/tony-format/objops/clone"
	"github.com/tony-format/objops/encode"
	"github.com/tony-format/objops/format"
	"github.com/tony-format/objops/parse"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires 1 argument, a json patch", cli.ErrUsage)
	}
	ops, err := getPatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	sep := false
	return eachFile(cfg.MainConfig, cc, args[1:], func(_ string, docs []any) error {
		res, err := patchDocs(ops, docs)
		if err != nil {
			return err
		}
		sep, err = writeDocs(cfg.MainConfig, cc.Out, res, sep)
		return err
	})
}

func getPatch(cfg *PatchConfig, cc *cli.Context, arg string) (jsonpatch.Patch, error) {
	v, err := getish(cfg.String, cfg.File, cc, arg, cfg.parseOpts())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	ops, err := decodePatch(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return ops, nil
}

func decodePatch(v any) (jsonpatch.Patch, error) {
	d, err := json.Marshal(encode.Plain(v))
	if err != nil {
		return nil, err
	}
	return jsonpatch.DecodePatch(d)
}

// patchDocs applies ops to a clone of each of docs.
func patchDocs(ops jsonpatch.Patch, docs []any) ([]any, error) {
	res := make([]any, len(docs))
	for i, doc := range docs {
		d, err := json.Marshal(encode.Plain(clone.Clone(doc)))
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		out, err := ops.Apply(d)
		if err != nil {
			return nil, fmt.Errorf("error patching document %d: %w", i, err)
		}
		v, err := parse.Parse(out, parse.ParseFormat(format.JSONFormat))
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		res[i] = v
	}
	return res, nil
}
