package yamlline

import (
	"strings"

	"github.com/signadot/schema-annotator/annotation"
	"github.com/signadot/schema-annotator/debug"
)

// Entry is a line declaring a mapping key.
type Entry struct {
	// Line is the 0-based line index.
	Line int
	Path annotation.Path
	// Indent is the number of leading spaces of the line.
	Indent int
	Doc    int
	// Comments is the number of comment lines directly above Line.
	Comments int
}

type lineKind int

const (
	blankLine lineKind = iota
	commentLine
	contentLine
	markerLine
	skippedLine
)

type frame struct {
	indent int
	seg    string
	// seq marks a key whose sequence items sit at the key's own indent.
	seq bool
}

type mapper struct {
	lines []string
	kinds []lineKind
	stack []frame
	doc   int
	// docStarted is set once the current document has a marker or content.
	docStarted bool
	// skip consumes the continuation lines of a multi-line value.
	skip    func(s string) (skip, done bool)
	entries []Entry
}

// Map returns the key lines of lines, which must not carry line endings
// (a trailing '\r' is ignored).
func Map(lines []string) []Entry {
	m := &mapper{
		lines: make([]string, len(lines)),
		kinds: make([]lineKind, len(lines)),
	}
	for i, ln := range lines {
		m.lines[i] = strings.TrimSuffix(ln, "\r")
	}
	for i := range m.lines {
		m.line(i)
	}
	return m.entries
}

func (m *mapper) line(i int) {
	s := m.lines[i]
	if m.skip != nil {
		skip, done := m.skip(s)
		if done {
			m.skip = nil
		}
		if skip {
			m.kinds[i] = skippedLine
			return
		}
	}
	indent := leadingSpaces(s)
	content := strings.TrimRight(s[indent:], " \t")
	switch {
	case content == "":
		m.kinds[i] = blankLine
		return
	case content[0] == '#':
		m.kinds[i] = commentLine
		return
	case indent == 0 && isMarker(content, "---"):
		m.kinds[i] = markerLine
		if m.docStarted {
			m.doc++
		}
		m.docStarted = true
		m.stack = m.stack[:0]
		m.afterMarker(content[3:])
		return
	case indent == 0 && isMarker(content, "..."):
		m.kinds[i] = markerLine
		if m.docStarted {
			m.doc++
		}
		m.docStarted = false
		m.stack = m.stack[:0]
		return
	case indent == 0 && content[0] == '%':
		m.kinds[i] = markerLine
		return
	}
	m.kinds[i] = contentLine
	m.docStarted = true
	m.pop(indent, isDash(content))

	col := indent
	seqParent := -1
	for isDash(content) {
		seqParent = col
		rest := content[1:]
		n := leadingSpaces(rest)
		col += 1 + n
		content = rest[n:]
	}
	if content == "" {
		return
	}
	key, val, ok := splitKey(content)
	if !ok {
		// a sequence item or a continuation line
		if seqParent >= 0 {
			m.value(content, seqParent)
		}
		return
	}
	path := m.path().Append(key)
	m.entries = append(m.entries, Entry{
		Line:     i,
		Path:     path,
		Indent:   indent,
		Doc:      m.doc,
		Comments: m.comments(i),
	})
	if debug.Lines() {
		debug.Logf("line %d doc %d indent %d: %s\n", i, m.doc, indent, path)
	}
	if m.value(val, col) {
		return
	}
	next := m.nextSignificant(i)
	if next == -1 {
		return
	}
	nextIndent := leadingSpaces(m.lines[next])
	switch {
	case nextIndent > col:
		m.stack = append(m.stack, frame{indent: col, seg: key})
	case nextIndent == col && isEmptyValue(val) && isDash(strings.TrimSpace(m.lines[next])):
		m.stack = append(m.stack, frame{indent: col, seg: key, seq: true})
	}
}

// afterMarker handles content following a document start marker on the same
// line, such as "--- |".
func (m *mapper) afterMarker(rest string) {
	rest = strings.TrimSpace(rest)
	if rest == "" || rest[0] == '#' {
		return
	}
	m.value(rest, -1)
}

// pop closes the frames ended by a line at indent.
func (m *mapper) pop(indent int, dash bool) {
	for len(m.stack) > 0 {
		top := m.stack[len(m.stack)-1]
		if top.indent < indent || (top.indent == indent && top.seq && dash) {
			return
		}
		m.stack = m.stack[:len(m.stack)-1]
	}
}

func (m *mapper) path() annotation.Path {
	res := make(annotation.Path, len(m.stack))
	for i := range m.stack {
		res[i] = m.stack[i].seg
	}
	return res
}

func (m *mapper) comments(i int) int {
	n := 0
	for j := i - 1; j >= 0 && m.kinds[j] == commentLine; j-- {
		n++
	}
	return n
}

func (m *mapper) nextSignificant(i int) int {
	for j := i + 1; j < len(m.lines); j++ {
		t := strings.TrimSpace(m.lines[j])
		if t == "" || t[0] == '#' {
			continue
		}
		return j
	}
	return -1
}

// value looks at the value of a key or sequence item whose node sits at
// column parent and arranges for any lines it continues onto to be skipped.
// It reports whether such a multi-line value was found.
func (m *mapper) value(val string, parent int) bool {
	val = stripProperties(val)
	if val == "" {
		return false
	}
	switch val[0] {
	case '|', '>':
		m.skip = func(s string) (bool, bool) {
			if parent < 0 && (isMarker(s, "---") || isMarker(s, "...")) {
				return false, true
			}
			if strings.TrimSpace(s) == "" || leadingSpaces(s) > parent {
				return true, false
			}
			return false, true
		}
		return true
	case '"', '\'':
		q := val[0]
		if quoteClosed(val[1:], q) {
			return false
		}
		m.skip = func(s string) (bool, bool) {
			return true, quoteClosed(s, q)
		}
		return true
	case '[', '{':
		depth := flowDepth(val, 0)
		if depth <= 0 {
			return false
		}
		m.skip = func(s string) (bool, bool) {
			depth = flowDepth(s, depth)
			return true, depth <= 0
		}
		return true
	}
	return false
}

func leadingSpaces(s string) int {
	n := 0
	for n < len(s) && s[n] == ' ' {
		n++
	}
	return n
}

func isMarker(content, marker string) bool {
	if !strings.HasPrefix(content, marker) {
		return false
	}
	rest := content[len(marker):]
	return rest == "" || rest[0] == ' ' || rest[0] == '\t'
}

func isDash(content string) bool {
	return content == "-" || strings.HasPrefix(content, "- ") || strings.HasPrefix(content, "-\t")
}

func isEmptyValue(val string) bool {
	val = stripProperties(val)
	return val == "" || val[0] == '#'
}
