package tomldoc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"

	"github.com/signadot/schema-annotator/debug"
)

// Parse validates src as TOML and splits it into items.
func Parse(src string) (*Document, error) {
	var v map[string]any
	if err := toml.Unmarshal([]byte(src), &v); err != nil {
		var de *toml.DecodeError
		if errors.As(err, &de) {
			row, col := de.Position()
			return nil, &Error{Pos: &Pos{Line: row, Col: col}, Err: errors.New(de.Error())}
		}
		return nil, &Error{Err: err}
	}
	b := &builder{src: src, pd: newPosDoc(src), comments: map[int]bool{}}
	if err := b.read(); err != nil {
		return nil, err
	}
	doc := b.document()
	if debug.TOML() {
		for _, it := range doc.items {
			debug.Logf("toml %s %s at %s\n", it.Kind, strings.Join(it.Path, "."), it.Pos)
		}
	}
	return doc, nil
}

type builder struct {
	src string
	pd  *posDoc
	// comments holds the offsets of comments.
	comments map[int]bool
	items    []*Item
	// starts are the offsets of the first character of each item.
	starts []int
}

// read collects items and comments from the expressions of the document.
func (b *builder) read() error {
	p := &unstable.Parser{KeepComments: true}
	p.Reset([]byte(b.src))
	var table []string
	for p.NextExpression() {
		expr := p.Expression()
		b.collectComments(expr)
		var kind Kind
		switch expr.Kind {
		case unstable.KeyValue:
			kind = KeyValue
		case unstable.Table:
			kind = Table
		case unstable.ArrayTable:
			kind = ArrayTable
		default:
			continue
		}
		key, off := keyOf(expr)
		if off < 0 {
			return &Error{Err: fmt.Errorf("%s without a key", kind)}
		}
		start := b.lineIndentEnd(b.pd.line(off))
		it := &Item{Kind: kind, Key: key, Pos: b.pd.pos(start)}
		if kind == KeyValue {
			it.Path = append(append([]string(nil), table...), key...)
		} else {
			table = key
			it.Path = key
		}
		b.items = append(b.items, it)
		b.starts = append(b.starts, start)
	}
	if err := p.Error(); err != nil {
		return &Error{Err: err}
	}
	return nil
}

// keyOf returns the key parts of a key/value or header and the offset of the
// first part, or -1 if there is none.
func keyOf(expr *unstable.Node) ([]string, int) {
	var (
		key []string
		off = -1
	)
	it := expr.Key()
	for it.Next() {
		n := it.Node()
		if off == -1 {
			off = int(n.Raw.Offset)
		}
		key = append(key, string(n.Data))
	}
	return key, off
}

// collectComments records the comments of n, its children and the nodes
// chained after it, such as a trailing comment.
func (b *builder) collectComments(n *unstable.Node) {
	for ; n != nil && n.Valid(); n = n.Next() {
		if n.Kind == unstable.Comment {
			b.comments[int(n.Raw.Offset)] = true
			continue
		}
		b.collectComments(n.Child())
	}
}

// document splits the source at the item starts. Each item's decoration
// reaches back over the blank and comment lines above it, so values that
// span lines stay in the body of the item declaring them.
func (b *builder) document() *Document {
	doc := &Document{eol: "\n"}
	if i := strings.IndexByte(b.src, '\n'); i > 0 && b.src[i-1] == '\r' {
		doc.eol = "\r\n"
	}
	pending := 0
	for k, it := range b.items {
		floor := 0
		if k > 0 {
			floor = b.pd.line(b.starts[k-1]) + 1
		}
		li := b.pd.line(b.starts[k])
		decor := b.decorStart(li, floor)
		if k > 0 {
			b.items[k-1].body = b.src[pending:decor]
		}
		it.decor.prefix = b.src[decor:b.starts[k]]
		doc.items = append(doc.items, it)
		pending = b.starts[k]
	}
	if len(b.items) == 0 {
		doc.trailer = b.src
		return doc
	}
	last := b.pd.line(b.starts[len(b.starts)-1])
	end := b.decorStart(b.pd.lines(), last+1)
	b.items[len(b.items)-1].body = b.src[pending:end]
	doc.trailer = b.src[end:]
	return doc
}

// decorStart returns the start of the run of blank and comment lines ending
// just above line li, going no higher than line floor.
func (b *builder) decorStart(li, floor int) int {
	for li > floor && b.isTrivia(li-1) {
		li--
	}
	if li >= b.pd.lines() {
		return len(b.src)
	}
	return b.pd.lineStart(li)
}

// isTrivia reports whether line li is blank or holds only a comment.
func (b *builder) isTrivia(li int) bool {
	i := b.lineIndentEnd(li)
	end := b.pd.lineEnd(li, len(b.src))
	if strings.TrimRight(b.src[i:end], "\r\n") == "" {
		return true
	}
	return b.comments[i]
}

// lineIndentEnd returns the offset of the first character of line li that is
// neither a space nor a tab.
func (b *builder) lineIndentEnd(li int) int {
	i := b.pd.lineStart(li)
	for i < len(b.src) && (b.src[i] == ' ' || b.src[i] == '\t') {
		i++
	}
	return i
}
