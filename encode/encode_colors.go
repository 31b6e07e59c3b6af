package encode

import (
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml/printer"
)

type ColorAttr int

const (
	KeyColor ColorAttr = iota
	StringColor
	NumberColor
	BoolColor
	CommentColor
	AnchorColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			KeyColor:     color.RGB(196, 96, 16).SprintfFunc(),
			StringColor:  color.RGB(128, 216, 236).SprintfFunc(),
			NumberColor:  color.RGB(168, 0, 196).SprintfFunc(),
			BoolColor:    color.CyanString,
			CommentColor: color.BlueString,
			AnchorColor:  color.RGB(255, 0, 196).SprintfFunc(),
		},
	}
}

func colorDefault(f string, args ...any) string {
	return color.New(color.Reset).Sprintf(f, args...)
}

func (c *Colors) Color(a ColorAttr) func(string, ...any) string {
	f, ok := c.Map[a]
	if ok {
		return f
	}
	return c.Default
}

// property turns a color function into the prefix and suffix the yaml
// printer wraps around tokens.
func (c *Colors) property(a ColorAttr) func() *printer.Property {
	s := c.Color(a)("%s", "\x00")
	i := strings.IndexByte(s, 0)
	p := &printer.Property{Prefix: s[:i], Suffix: s[i+1:]}
	return func() *printer.Property { return p }
}

func (c *Colors) printer() *printer.Printer {
	return &printer.Printer{
		MapKey:  c.property(KeyColor),
		String:  c.property(StringColor),
		Number:  c.property(NumberColor),
		Bool:    c.property(BoolColor),
		Comment: c.property(CommentColor),
		Anchor:  c.property(AnchorColor),
		Alias:   c.property(AnchorColor),
	}
}
