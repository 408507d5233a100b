package yamlline

import (
	"slices"
	"strings"

	"github.com/signadot/schema-annotator/annotation"
)

type line struct {
	text string
	eol  string
}

// Inject returns lines with a rendered comment block inserted above every
// entry whose path is annotated in m. Lines carry no line endings.
func Inject(lines []string, entries []Entry, m *annotation.Map, cfg annotation.Config) []string {
	ls := make([]line, len(lines))
	for i := range lines {
		ls[i] = line{text: lines[i]}
	}
	ls = inject(ls, entries, m, cfg, "")
	res := make([]string, len(ls))
	for i := range ls {
		res[i] = ls[i].text
	}
	return res
}

func inject(ls []line, entries []Entry, m *annotation.Map, cfg annotation.Config, eol string) []line {
	entries = slices.Clone(entries)
	slices.SortFunc(entries, func(a, b Entry) int {
		return b.Line - a.Line
	})
	for _, e := range entries {
		rec := m.Get(e.Path)
		if rec == nil {
			continue
		}
		rendered := annotation.Render(rec, cfg)
		if len(rendered) == 0 {
			continue
		}
		lineEOL := ls[e.Line].eol
		if lineEOL == "" {
			lineEOL = eol
		}
		indent := strings.Repeat(" ", e.Indent)
		block := make([]line, len(rendered))
		for i, r := range rendered {
			block[i] = line{text: indent + r, eol: lineEOL}
		}
		at := e.Line - e.Comments
		if cfg.PreserveExisting {
			ls = slices.Insert(ls, at, block...)
			continue
		}
		ls = slices.Replace(ls, at, e.Line, block...)
	}
	return ls
}
