package yamlline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/parser"
	"github.com/goccy/go-yaml/token"

	"github.com/signadot/schema-annotator/annotation"
)

var ErrParse = errors.New("yaml parse error")

// Error is a parse failure. Line and Col are 1-based, 0 when unknown.
type Error struct {
	Line, Col int
	Err       error
}

func (e *Error) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %s", ErrParse, e.Err)
	}
	return fmt.Sprintf("%s at line %d, col %d: %s", ErrParse, e.Line, e.Col, e.Err)
}

func (e *Error) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

type tokenError interface {
	GetToken() *token.Token
}

// Validate reports whether text is a valid YAML stream.
func Validate(text string) error {
	if _, err := parser.ParseBytes([]byte(text), 0); err != nil {
		res := &Error{Err: errors.New(yaml.FormatError(err, false, false))}
		var te tokenError
		if errors.As(err, &te) {
			if tk := te.GetToken(); tk != nil && tk.Position != nil {
				res.Line, res.Col = tk.Position.Line, tk.Position.Column
			}
		}
		return res
	}
	return nil
}

// Annotate validates text and inserts the annotations of m above the key
// lines they address.
func Annotate(text string, m *annotation.Map, cfg annotation.Config) (string, error) {
	if err := Validate(text); err != nil {
		return "", err
	}
	ls, eol := splitLines(text)
	texts := make([]string, len(ls))
	for i := range ls {
		texts[i] = ls[i].text
	}
	ls = inject(ls, Map(texts), m, cfg, eol)
	buf := &strings.Builder{}
	buf.Grow(len(text))
	for _, l := range ls {
		buf.WriteString(l.text)
		buf.WriteString(l.eol)
	}
	return buf.String(), nil
}

// Lines splits text into lines without their endings.
func Lines(text string) []string {
	ls, _ := splitLines(text)
	res := make([]string, len(ls))
	for i := range ls {
		res[i] = ls[i].text
	}
	return res
}

// splitLines splits text keeping each line's ending. The returned eol is the
// first ending in text, "\n" if there is none.
func splitLines(text string) ([]line, string) {
	var res []line
	eol := ""
	for text != "" {
		i := strings.IndexByte(text, '\n')
		if i == -1 {
			res = append(res, line{text: text})
			break
		}
		l := line{text: text[:i], eol: "\n"}
		if strings.HasSuffix(l.text, "\r") {
			l.text = l.text[:len(l.text)-1]
			l.eol = "\r\n"
		}
		if eol == "" {
			eol = l.eol
		}
		res = append(res, l)
		text = text[i+1:]
	}
	if eol == "" {
		eol = "\n"
	}
	return res, eol
}
