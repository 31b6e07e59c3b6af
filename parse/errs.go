package parse

import (
	"fmt"

	"github.com/tony-format/objops/ir"
)

var (
	ErrParse     = ir.ErrParse
	ErrEmptyJSON = fmt.Errorf("%w: empty JSON document", ErrParse)
)
