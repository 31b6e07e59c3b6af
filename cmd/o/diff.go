package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/tony-format/objops/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getObjFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	differs, err := diffInputs(cfg, cc.Out, a, b)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffInputs(cfg *DiffConfig, w io.Writer, a, b []any) (bool, error) {
	if cfg.Reverse {
		a, b = b, a
	}
	if cfg.Paths {
		return diffPaths(w, a, b)
	}
	sa, err := encodeDocs(cfg.MainConfig, a)
	if err != nil {
		return false, err
	}
	sb, err := encodeDocs(cfg.MainConfig, b)
	if err != nil {
		return false, err
	}
	lines := libdiff.Lines(sa, sb)
	if !libdiff.Changed(lines) {
		return false, nil
	}
	return true, libdiff.Write(w, lines, cfg.colors(w))
}

func diffPaths(w io.Writer, a, b []any) (bool, error) {
	differs := len(a) != len(b)
	for i := range min(len(a), len(b)) {
		for _, p := range libdiff.Paths(a[i], b[i]) {
			differs = true
			if len(a) > 1 {
				p = fmt.Sprintf("%d:%s", i, p)
			}
			if _, err := fmt.Fprintln(w, p); err != nil {
				return differs, err
			}
		}
	}
	return differs, nil
}

// encodeDocs encodes docs without colors, as a diff base.
func encodeDocs(cfg *MainConfig, docs []any) (string, error) {
	buf := &strings.Builder{}
	plain := *cfg
	plain.Color = false
	plain.Main = nil
	if _, err := writeDocs(&plain, buf, docs, false); err != nil {
		return "", err
	}
	return buf.String(), nil
}
