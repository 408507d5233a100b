package annotator

import (
	"errors"
	"strings"

	"github.com/signadot/schema-annotator/annotation"
	"github.com/signadot/schema-annotator/tomldoc"
)

// AnnotateTOML sets the leading decoration of every table header,
// array-of-tables header and key/value of text whose path is annotated in m.
func AnnotateTOML(text string, m *annotation.Map, cfg annotation.Config) (string, error) {
	doc, err := tomldoc.Parse(text)
	if err != nil {
		return "", tomlError(err)
	}
	for _, it := range doc.Items() {
		rec := m.Get(it.Path)
		if rec == nil {
			continue
		}
		lines := annotation.Render(rec, cfg)
		if len(lines) == 0 {
			continue
		}
		eol := it.EOL()
		if eol == "" {
			eol = doc.EOL()
		}
		d := it.Decor()
		d.SetPrefix(decorate(d.Prefix(), it.Indent(), lines, eol, cfg.PreserveExisting))
	}
	return doc.String(), nil
}

// decorate puts lines above the comment run that directly precedes an item.
// That run is dropped unless preserve is set. Blank lines, and anything above
// them, stay.
func decorate(prefix, indent string, lines []string, eol string, preserve bool) string {
	trivia := splitKeepEOL(prefix[:len(prefix)-len(indent)])
	k := len(trivia)
	for k > 0 && strings.HasPrefix(strings.TrimLeft(trivia[k-1], " \t"), "#") {
		k--
	}
	buf := &strings.Builder{}
	for _, t := range trivia[:k] {
		buf.WriteString(t)
	}
	for _, ln := range lines {
		buf.WriteString(indent)
		buf.WriteString(ln)
		buf.WriteString(eol)
	}
	if preserve {
		for _, t := range trivia[k:] {
			buf.WriteString(t)
		}
	}
	buf.WriteString(indent)
	return buf.String()
}

func splitKeepEOL(s string) []string {
	var res []string
	for s != "" {
		i := strings.IndexByte(s, '\n')
		if i == -1 {
			res = append(res, s)
			break
		}
		res = append(res, s[:i+1])
		s = s[i+1:]
	}
	return res
}

func tomlError(err error) error {
	res := &Error{Kind: ParseError, Err: err}
	var te *tomldoc.Error
	if errors.As(err, &te) {
		res.Err = te.Err
		if te.Pos != nil {
			res.Pos = &Pos{Line: te.Pos.Line, Col: te.Pos.Col}
		}
	}
	return res.WithContext("toml document")
}
