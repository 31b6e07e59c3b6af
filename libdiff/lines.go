package libdiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) Prefix() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return " "
	}
}

type Line struct {
	Op   Op
	Text string
}

// Lines computes a line diff of from and to.
func Lines(from, to string) []Line {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	var res []Line
	for i := range diffs {
		diff := &diffs[i]
		op := Equal
		switch diff.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		}
		for _, ln := range strings.SplitAfter(diff.Text, "\n") {
			if ln == "" {
				continue
			}
			res = append(res, Line{Op: op, Text: strings.TrimSuffix(ln, "\n")})
		}
	}
	return res
}

// Changed reports whether any line was inserted or deleted.
func Changed(lines []Line) bool {
	for _, ln := range lines {
		if ln.Op != Equal {
			return true
		}
	}
	return false
}

// Write writes lines in unified style, coloring insertions and deletions
// when colors is set.
func Write(w io.Writer, lines []Line, colors bool) error {
	for _, ln := range lines {
		s := ln.Op.Prefix() + ln.Text
		if colors {
			switch ln.Op {
			case Insert:
				s = color.GreenString("%s", s)
			case Delete:
				s = color.RedString("%s", s)
			}
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}
