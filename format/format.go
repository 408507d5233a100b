package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format is a target document format. TOML is edited through a lossless
// document tree, YAML line by line.
type Format int

const (
	TOMLFormat Format = iota
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"t":    TOMLFormat,
		"toml": TOMLFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
		"yml":  YAMLFormat,
	}[strings.ToLower(v)]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// FromExtension maps a file extension, with or without the dot, to a format.
func FromExtension(ext string) (Format, error) {
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" || ext == "t" || ext == "y" {
		return 0, fmt.Errorf("%w: unknown extension %q", ErrBadFormat, ext)
	}
	return ParseFormat(ext)
}

func FromPath(p string) (Format, error) {
	f, err := FromExtension(filepath.Ext(p))
	if err != nil {
		return 0, fmt.Errorf("%w (path %s)", err, p)
	}
	return f, nil
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case TOMLFormat:
		return []byte("toml"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsTOML() bool { return f == TOMLFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }

// Extension returns the file extension for this format (including the dot).
func (f Format) Extension() string {
	switch f {
	case TOMLFormat:
		return ".toml"
	case YAMLFormat:
		return ".yaml"
	default:
		return ""
	}
}

func AllFormats() []Format {
	return []Format{TOMLFormat, YAMLFormat}
}
