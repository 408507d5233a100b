package annotation

import "strings"

// Path addresses a location shared by a schema and a target document. The
// empty path is the document root and is never annotated.
type Path []string

func (p Path) String() string {
	return strings.Join(p, ".")
}

// Append returns a new path with segs added. The result never shares its
// backing array with p, so sibling branches of a recursion can each extend
// the same parent path.
func (p Path) Append(segs ...string) Path {
	res := make(Path, len(p), len(p)+len(segs))
	copy(res, p)
	return append(res, segs...)
}

func (p Path) IsRoot() bool {
	return len(p) == 0
}

// Key is the last segment, or "" for the root.
func (p Path) Key() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}
