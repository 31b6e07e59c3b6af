package main

import (
	"encoding/json"
	"fmt"

	"github.com/tony-format/objops/clone"
	"github.com/tony-format/objops/encode"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func cloneCmd(cfg *CloneConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Clone.Parse(cc, args)
	if err != nil {
		cfg.Clone.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	sep := false
	return eachFile(cfg.MainConfig, cc, args, func(_ string, docs []any) error {
		res, err := cloneDocs(docs, cfg.Check)
		if err != nil {
			return err
		}
		sep, err = writeDocs(cfg.MainConfig, cc.Out, res, sep)
		return err
	})
}

func cloneDocs(docs []any, check bool) ([]any, error) {
	res := make([]any, len(docs))
	for i, doc := range docs {
		res[i] = clone.Clone(doc)
		if !check {
			continue
		}
		if err := checkClone(doc, res[i]); err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
	}
	return res, nil
}

func checkClone(src, dst any) error {
	a, err := json.Marshal(encode.Plain(src))
	if err != nil {
		return err
	}
	b, err := json.Marshal(encode.Plain(dst))
	if err != nil {
		return err
	}
	if !jsonpatch.Equal(a, b) {
		return fmt.Errorf("clone differs from source:\n%s\n%s", a, b)
	}
	return nil
}
