// Package eval evaluates expressions over mappings.
//
// Expressions use the github.com/expr-lang/expr language.  A key filter
// expression sees the variables `key` and `value` for each entry, and the
// functions
//
//	getpath("$.a.b")  value at a path of the whole mapping, or nil
//	haspath("$.a.b")  whether the path exists
//	kind(v)           the kind name of v, eg "Mapping"
//	getenv("NAME")    an environment variable
//
// An entry is kept when the expression's result is truthy.
package eval

import (
	"fmt"

	"github.com/tony-format/objops/debug"
	"github.com/tony-format/objops/gomap"
	"github.com/tony-format/objops/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Env is the expression environment for one mapping entry.
type Env struct {
	Key   string `expr:"key"`
	Value any    `expr:"value"`
}

// KeyFilter is a compiled key filter expression.
type KeyFilter struct {
	src string
}

// CompileKeyFilter checks that src compiles.
func CompileKeyFilter(src string) (*KeyFilter, error) {
	if _, err := expr.Compile(src, exprOpts(nil)...); err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", src, err)
	}
	return &KeyFilter{src: src}, nil
}

func (f *KeyFilter) String() string {
	return f.src
}

// Apply returns the entries of m for which the expression is truthy.  The
// first evaluation error is returned and the remaining entries are
// dropped.
func (f *KeyFilter) Apply(m map[string]any) (map[string]any, error) {
	prg, err := expr.Compile(f.src, exprOpts(m)...)
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", f.src, err)
	}
	var evalErr error
	res := gomap.Filter(m, func(key string) bool {
		if evalErr != nil {
			return false
		}
		ok, err := f.run(prg, key, m[key])
		if err != nil {
			evalErr = fmt.Errorf("error evaluating %q for key %q: %w", f.src, key, err)
			return false
		}
		return ok
	})
	if evalErr != nil {
		return nil, evalErr
	}
	return res, nil
}

func (f *KeyFilter) run(prg *vm.Program, key string, val any) (bool, error) {
	out, err := expr.Run(prg, Env{Key: key, Value: val})
	if err != nil {
		return false, err
	}
	if debug.Eval() {
		debug.Logf("eval %q key=%q -> %v\n", f.src, key, out)
	}
	return ir.Truth(out), nil
}
