package annotator

import (
	"fmt"

	"github.com/signadot/schema-annotator/annotation"
	"github.com/signadot/schema-annotator/eval"
	"github.com/signadot/schema-annotator/schema"
)

// LoadAnnotations reads the schema file, applies the optional patch file,
// extracts its annotations and keeps those matching the optional where
// expression.
func LoadAnnotations(schemaFile, patchFile, where string) (*annotation.Map, error) {
	s, err := schema.LoadFile(schemaFile)
	if err != nil {
		return nil, err
	}
	if patchFile != "" {
		p, err := schema.LoadFile(patchFile)
		if err != nil {
			return nil, err
		}
		s, err = schema.Patch(s, p)
		if err != nil {
			return nil, fmt.Errorf("patching %s with %s: %w", schemaFile, patchFile, err)
		}
	}
	m, err := ExtractAnnotations(s)
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", schemaFile, err)
	}
	if where == "" {
		return m, nil
	}
	f, err := eval.Compile(where)
	if err != nil {
		return nil, err
	}
	return f.Apply(m)
}
