package eval

import (
	"os"

	"github.com/tony-format/objops/ir"
	"github.com/tony-format/objops/nav"

	"github.com/expr-lang/expr"
)

func exprOpts(doc map[string]any) []expr.Option {
	root := nav.Wrap(doc)
	return []expr.Option{
		expr.Env(Env{}),
		expr.Function("getpath", func(params ...any) (any, error) {
			v := root.Path(params[0].(string)).Unwrap()
			if ir.IsAbsent(v) {
				return nil, nil
			}
			return v, nil
		},
			new(func(string) any)),
		expr.Function("haspath", func(params ...any) (any, error) {
			_, ok := root.Path(params[0].(string)).Lookup()
			return ok, nil
		},
			new(func(string) bool)),
		expr.Function("kind", func(params ...any) (any, error) {
			return ir.KindOf(params[0]).String(), nil
		},
			new(func(any) string)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
