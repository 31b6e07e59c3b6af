package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path is a parsed `$`-path such as `$.a[0].'b.c'`.  Each element holds
// one step and links to the next.
type Path struct {
	IndexAll bool
	Index    *int
	Field    *string
	Subtree  bool
	Next     *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Subtree:
			buf.WriteString("..")
		case x.IndexAll:
			buf.WriteString("[*]")
		case x.Field != nil:
			buf.WriteString("." + PathField(*x.Field))
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

// Wildcard reports whether the path contains `[*]` or `..`, which select
// more than one value.
func (p *Path) Wildcard() bool {
	for x := p; x != nil; x = x.Next {
		if x.IndexAll || x.Subtree {
			return true
		}
	}
	return false
}

// PathField quotes f for use in a path if needed.
func PathField(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]") == -1 {
		return f
	}
	return "'" + strings.Replace(f, "'", "\\'", -1) + "'"
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: path %q should start with '$'", ErrParse, p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	if err := parseFrag(p[1:], root); err != nil {
		return nil, fmt.Errorf("%w: path %q: %w", ErrParse, p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	var rest string
	switch frag[0] {
	case '.':
		if len(frag) > 1 && frag[1] == '.' {
			parent.Subtree = true
			rest = frag[2:]
			if rest != "" && rest[0] != '[' {
				rest = "." + rest
			}
			break
		}
		field, r, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		rest = r
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, all, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.IndexAll = all
		if !all {
			parent.Index = &index
		}
		rest = frag[i+2:]
	default:
		return fmt.Errorf("expected '.' or '['")
	}
	if len(rest) == 0 {
		return nil
	}
	next := &Path{}
	if err := parseFrag(rest, next); err != nil {
		return err
	}
	parent.Next = next
	return nil
}

func parseIndex(is string) (index int, all bool, err error) {
	if len(is) == 1 && is[0] == '*' {
		return 0, true, nil
	}
	u64, err := strconv.ParseUint(is, 10, 31)
	if err != nil {
		return 0, false, err
	}
	return int(u64), false, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		if i == 0 {
			return "", "", fmt.Errorf("empty field")
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch c {
		case '\\':
			if escaped {
				escaped = false
				res = append(res, c)
				continue
			}
			escaped = true
		case '\'':
			if !escaped {
				return string(res), frag[i+1:], nil
			}
			fallthrough
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}
