package tomldoc

import (
	"fmt"
	"sort"
)

// Pos is a 1-based line and column.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("line %d, col %d", p.Line, p.Col)
}

type posDoc struct {
	n []int
}

func newPosDoc(src string) *posDoc {
	p := &posDoc{}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			p.n = append(p.n, i)
		}
	}
	return p
}

func (p *posDoc) pos(off int) *Pos {
	li := p.line(off)
	return &Pos{Line: li + 1, Col: off - p.lineStart(li) + 1}
}

// line returns the 0-based line holding off.
func (p *posDoc) line(off int) int {
	return sort.Search(len(p.n), func(i int) bool {
		return p.n[i] >= off
	})
}

// lines is the number of lines, counting an empty last line after a final
// line feed.
func (p *posDoc) lines() int {
	return len(p.n) + 1
}

func (p *posDoc) lineStart(li int) int {
	if li == 0 {
		return 0
	}
	return p.n[li-1] + 1
}

// lineEnd is the offset just past the line feed ending li, or size for the
// last line.
func (p *posDoc) lineEnd(li, size int) int {
	if li >= len(p.n) {
		return size
	}
	return p.n[li] + 1
}
