package tomldoc

import (
	"strings"
)

type Kind int

const (
	KeyValue Kind = iota
	Table
	ArrayTable
)

func (k Kind) String() string {
	switch k {
	case KeyValue:
		return "key-value"
	case Table:
		return "table"
	case ArrayTable:
		return "array-table"
	default:
		return "unknown"
	}
}

// Decor is the leading decoration of an item.
type Decor struct {
	prefix string
}

func (d *Decor) Prefix() string {
	return d.prefix
}

// SetPrefix replaces the decoration. p must end with the item's indentation,
// i.e. any line ending in p must be followed only by spaces or tabs.
func (d *Decor) SetPrefix(p string) {
	d.prefix = p
}

type Item struct {
	Kind Kind
	// Key is the key as written: relative to the enclosing table for a
	// key/value, absolute for a header.
	Key []string
	// Path is the absolute path of the item. Elements of an array of tables
	// all share the path of the array.
	Path []string
	// Pos is the position of the first character of the key or header.
	Pos *Pos

	decor Decor
	body  string
}

func (it *Item) Decor() *Decor {
	return &it.decor
}

// Body is the raw text of the item, from its key or opening bracket through
// the line ending that terminates it.
func (it *Item) Body() string {
	return it.body
}

// Indent is the whitespace between the last line break of the original
// decoration and the item.
func (it *Item) Indent() string {
	p := it.decor.prefix
	i := strings.LastIndexByte(p, '\n')
	return p[i+1:]
}

// EOL is the line ending of the first line of the body, or "" if the item
// ends the document without one.
func (it *Item) EOL() string {
	i := strings.IndexByte(it.body, '\n')
	if i == -1 {
		return ""
	}
	if i > 0 && it.body[i-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}

type Document struct {
	items   []*Item
	trailer string
	eol     string
}

func (d *Document) Items() []*Item {
	return d.items
}

// EOL is the first line ending found in the source, "\n" if there is none.
func (d *Document) EOL() string {
	return d.eol
}

func (d *Document) String() string {
	buf := &strings.Builder{}
	for _, it := range d.items {
		buf.WriteString(it.decor.prefix)
		buf.WriteString(it.body)
	}
	buf.WriteString(d.trailer)
	return buf.String()
}
