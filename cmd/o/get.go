package main

import (
	"fmt"
	"io"

	"github.com/tony-format/objops/ir"
	"github.com/tony-format/objops/nav"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an object path", cli.ErrUsage)
	}
	path, err := getPath(args[0])
	if err != nil {
		return err
	}
	missing := 0
	sep := false
	err = eachFile(cfg.MainConfig, cc, args[1:], func(_ string, docs []any) error {
		n, s, err := getDocs(cfg.MainConfig, cc.Out, path, docs, sep)
		missing += n
		sep = s
		return err
	})
	if err != nil {
		return err
	}
	if missing > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// getPath checks that arg is a single-valued path, adding a leading '$'
// if missing.
func getPath(arg string) (string, error) {
	if arg == "" {
		return "", fmt.Errorf("%w: invalid query \"\"", cli.ErrUsage)
	}
	path := arg
	if path[0] != '$' {
		path = "$" + path
	}
	yp, err := ir.ParsePath(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	if yp.Wildcard() {
		return "", fmt.Errorf("%w: get path %q selects more than one value", cli.ErrUsage, path)
	}
	return path, nil
}

// getDocs writes the value at path in each of docs and returns the number
// of documents in which it is absent.
func getDocs(cfg *MainConfig, w io.Writer, path string, docs []any, sep bool) (int, bool, error) {
	missing := 0
	found := make([]any, 0, len(docs))
	for _, doc := range docs {
		v := nav.Wrap(doc).Path(path).Unwrap()
		if ir.IsAbsent(v) {
			missing++
			continue
		}
		found = append(found, v)
	}
	sep, err := writeDocs(cfg, w, found, sep)
	return missing, sep, err
}
