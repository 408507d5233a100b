package annotator

import (
	"errors"
	"fmt"

	"github.com/signadot/schema-annotator/annotation"
	"github.com/signadot/schema-annotator/format"
	"github.com/signadot/schema-annotator/schema"
	"github.com/signadot/schema-annotator/tomldoc"
	"github.com/signadot/schema-annotator/value"
	"github.com/signadot/schema-annotator/yamlline"
)

// Annotate extracts the annotations of schema and writes them into target.
// Nothing is returned but the error when any step fails.
func Annotate(s *value.Value, target string, f format.Format, cfg annotation.Config) (string, error) {
	m, err := ExtractAnnotations(s)
	if err != nil {
		return "", err
	}
	return AnnotateMap(m, target, f, cfg)
}

// ExtractAnnotations resolves the references of s and collects its
// annotations.
func ExtractAnnotations(s *value.Value) (*annotation.Map, error) {
	return schema.Extract(s)
}

// AnnotateMap writes already extracted annotations into target.
func AnnotateMap(m *annotation.Map, target string, f format.Format, cfg annotation.Config) (string, error) {
	switch f {
	case format.TOMLFormat:
		return AnnotateTOML(target, m, cfg)
	case format.YAMLFormat:
		out, err := yamlline.Annotate(target, m, cfg)
		if err != nil {
			return "", yamlError(err)
		}
		return out, nil
	default:
		return "", fmt.Errorf("%w: %s", format.ErrBadFormat, f)
	}
}

// Located is a key of a target document with its 1-based line.
type Located struct {
	Line int
	Path annotation.Path
}

// Paths lists the annotatable keys of target in document order.
func Paths(target string, f format.Format) ([]Located, error) {
	var res []Located
	switch f {
	case format.TOMLFormat:
		doc, err := tomldoc.Parse(target)
		if err != nil {
			return nil, tomlError(err)
		}
		for _, it := range doc.Items() {
			res = append(res, Located{Line: it.Pos.Line, Path: it.Path})
		}
	case format.YAMLFormat:
		if err := yamlline.Validate(target); err != nil {
			return nil, yamlError(err)
		}
		for _, e := range yamlline.Map(yamlline.Lines(target)) {
			res = append(res, Located{Line: e.Line + 1, Path: e.Path})
		}
	default:
		return nil, fmt.Errorf("%w: %s", format.ErrBadFormat, f)
	}
	return res, nil
}

func yamlError(err error) error {
	res := &Error{Kind: ParseError, Err: err}
	var ye *yamlline.Error
	if errors.As(err, &ye) {
		res.Err = ye.Err
		if ye.Line != 0 {
			res.Pos = &Pos{Line: ye.Line, Col: ye.Col}
		}
	}
	return res.WithContext("yaml document")
}
