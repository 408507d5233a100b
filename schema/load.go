package schema

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/signadot/schema-annotator/value"
)

// Load decodes schema text. Names ending in .yaml or .yml are read as YAML,
// anything else as JSON. name also labels errors.
func Load(d []byte, name string) (*value.Value, error) {
	var (
		v   *value.Value
		err error
	)
	if isYAML(name) {
		v, err = value.FromYAML(d)
	} else {
		v, err = value.FromJSON(d)
	}
	if err != nil {
		return nil, (&Error{Kind: ValueParseError, Err: err}).WithContext("schema %s", name)
	}
	return v, nil
}

func LoadFile(path string) (*value.Value, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, (&Error{Kind: IOError, Err: err}).WithContext("schema %s", path)
	}
	return Load(d, path)
}

func isYAML(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
