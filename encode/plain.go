package encode

import (
	"fmt"
	"strconv"
	"time"

	"github.com/tony-format/objops/ir"
)

// Plain converts v to a value built only from the types the JSON and YAML
// encoders understand.  A sequence with attributes becomes a mapping of
// its indices and attributes; funcs and values of unknown kind become
// strings.
func Plain(v any) any {
	switch ir.KindOf(v) {
	case ir.NullKind:
		return nil
	case ir.BoolKind, ir.NumberKind, ir.StringKind:
		return v
	case ir.FuncKind:
		return fmt.Sprintf("<func %T>", v)
	case ir.DateKind:
		switch t := v.(type) {
		case *time.Time:
			if t == nil {
				return nil
			}
			return *t
		}
		return v
	case ir.SequenceKind:
		items, attrs, _ := ir.Items(v)
		if len(attrs) == 0 {
			res := make([]any, len(items))
			for i, item := range items {
				res[i] = Plain(item)
			}
			return res
		}
		res := make(map[string]any, len(items)+len(attrs))
		for k, a := range attrs {
			res[k] = Plain(a)
		}
		for i, item := range items {
			res[strconv.Itoa(i)] = Plain(item)
		}
		return res
	case ir.MappingKind:
		m, _ := ir.Entries(v)
		res := make(map[string]any, len(m))
		for k, val := range m {
			res[k] = Plain(val)
		}
		return res
	default:
		return fmt.Sprint(v)
	}
}
