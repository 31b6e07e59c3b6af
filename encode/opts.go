package encode

import "github.com/tony-format/objops/format"

type encOpts struct {
	format format.Format
	colors *Colors
	indent int
}

type EncodeOption func(*encOpts)

func EncodeFormat(f format.Format) EncodeOption {
	return func(o *encOpts) { o.format = f }
}

// EncodeColors colors the output with c.  A nil c disables colors.
func EncodeColors(c *Colors) EncodeOption {
	return func(o *encOpts) { o.colors = c }
}

func EncodeIndent(n int) EncodeOption {
	return func(o *encOpts) { o.indent = n }
}
