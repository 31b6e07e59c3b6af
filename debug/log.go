package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

var out io.Writer = os.Stderr

// Logf writes a trace line to stderr.  Mapping and sequence arguments
// are rendered as indented JSON where possible.
func Logf(msg string, args ...any) {
	for i := range args {
		switch args[i].(type) {
		case map[string]any, []any:
			d, err := json.MarshalIndent(args[i], "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", args[i])
				continue
			}
			args[i] = string(d)
		default:
		}
	}
	fmt.Fprintf(out, msg, args...)
}
