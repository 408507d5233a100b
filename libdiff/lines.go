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

// Line is one line of a diff, without its line ending.
type Line struct {
	Op   Op
	Text string
}

// Lines diffs from and to line by line.
func Lines(from, to string) []Line {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	var res []Line
	for _, d := range diffs {
		var op Op
		switch d.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		default:
			op = Equal
		}
		for _, ln := range splitText(d.Text) {
			res = append(res, Line{Op: op, Text: ln})
		}
	}
	return res
}

// Changed reports whether any line differs.
func Changed(ls []Line) bool {
	for i := range ls {
		if ls[i].Op != Equal {
			return true
		}
	}
	return false
}

type Colors struct {
	Insert func(string, ...any) string
	Delete func(string, ...any) string
	Equal  func(string, ...any) string
	Header func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Insert: color.GreenString,
		Delete: color.RedString,
		Equal:  fmt.Sprintf,
		Header: color.RGB(128, 168, 196).SprintfFunc(),
	}
}

// Write prints ls with context lines of unchanged text around each change.
// colors may be nil.
func Write(w io.Writer, name string, ls []Line, context int, colors *Colors) error {
	if colors == nil {
		colors = &Colors{Insert: fmt.Sprintf, Delete: fmt.Sprintf, Equal: fmt.Sprintf, Header: fmt.Sprintf}
	}
	if !Changed(ls) {
		return nil
	}
	if _, err := fmt.Fprintln(w, colors.Header("--- %s", name)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, colors.Header("+++ %s (annotated)", name)); err != nil {
		return err
	}
	show := make([]bool, len(ls))
	for i := range ls {
		if ls[i].Op == Equal {
			continue
		}
		for j := max(0, i-context); j <= min(len(ls)-1, i+context); j++ {
			show[j] = true
		}
	}
	fromLine, toLine := 1, 1
	inHunk := false
	for i, l := range ls {
		if !show[i] {
			inHunk = false
		} else {
			if !inHunk {
				if _, err := fmt.Fprintln(w, colors.Header("@@ -%d +%d @@", fromLine, toLine)); err != nil {
					return err
				}
				inHunk = true
			}
			var out string
			switch l.Op {
			case Insert:
				out = colors.Insert("+%s", l.Text)
			case Delete:
				out = colors.Delete("-%s", l.Text)
			default:
				out = colors.Equal(" %s", l.Text)
			}
			if _, err := fmt.Fprintln(w, out); err != nil {
				return err
			}
		}
		switch l.Op {
		case Insert:
			toLine++
		case Delete:
			fromLine++
		default:
			fromLine++
			toLine++
		}
	}
	return nil
}

func splitText(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	return lines
}
