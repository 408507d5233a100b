package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/schema-annotator/annotation"
	"github.com/signadot/schema-annotator/format"
	"github.com/signadot/schema-annotator/libdiff"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='color diff output'"`

	Main *cli.Command
}

func (cfg *MainConfig) colors(w io.Writer) *libdiff.Colors {
	if cfg.Color {
		return libdiff.NewColors()
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == "color" && opt.Value != nil {
			return nil
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return libdiff.NewColors()
	}
	return nil
}

func fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

type AnnotateConfig struct {
	*MainConfig

	Schema  string `cli:"name=schema aliases=s desc='schema file, JSON or YAML (.yaml, .yml)'"`
	Input   string `cli:"name=input aliases=i desc='document to annotate, - for stdin'"`
	Output  string `cli:"name=output aliases=o desc='output file (default stdout)'"`
	Width   int    `cli:"name=max-width desc='wrap descriptions at this width, 0 disables wrapping'"`
	Force   bool   `cli:"name=force aliases=f desc='overwrite an existing output file'"`
	Stdout  bool   `cli:"name=stdout desc='write to stdout even if -output is given'"`
	Patch   string `cli:"name=patch desc='JSON patch or merge patch file applied to the schema'"`
	Where   string `cli:"name=where desc='only use annotations matching this expression'"`
	Diff    bool   `cli:"name=diff desc='print a diff instead of the annotated document'"`
	Default bool   `cli:"name=default desc='include schema default values'"`

	Format  *format.Format
	Include include
	// Preserve keeps existing comments above annotated keys.
	Preserve bool

	Annotate *cli.Command
}

func (cfg *AnnotateConfig) annotationConfig() annotation.Config {
	res := annotation.DefaultConfig()
	res.IncludeTitle = cfg.Include != includeDescription
	res.IncludeDescription = cfg.Include != includeTitle
	res.MaxLineWidth = cfg.Width
	res.PreserveExisting = cfg.Preserve
	res.IncludeDefault = cfg.Default
	return res
}

func (cfg *AnnotateConfig) preserveOpt(_ *cli.Context, v string) (any, error) {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, fmt.Errorf("%w: -preserve-comments: %w", cli.ErrUsage, err)
	}
	cfg.Preserve = b
	return b, nil
}

type include int

const (
	includeBoth include = iota
	includeTitle
	includeDescription
)

func (cfg *AnnotateConfig) includeOpt(_ *cli.Context, v string) (any, error) {
	switch v {
	case "both":
		cfg.Include = includeBoth
	case "title":
		cfg.Include = includeTitle
	case "description":
		cfg.Include = includeDescription
	default:
		return nil, fmt.Errorf("%w: -include must be title, description or both, got %q", cli.ErrUsage, v)
	}
	return v, nil
}

type ExtractConfig struct {
	*MainConfig

	Schema string `cli:"name=schema aliases=s desc='schema file, JSON or YAML (.yaml, .yml)'"`
	JSON   bool   `cli:"name=json aliases=j desc='output JSON'"`
	Patch  string `cli:"name=patch desc='JSON patch or merge patch file applied to the schema'"`
	Where  string `cli:"name=where desc='only list annotations matching this expression'"`

	Extract *cli.Command
}

type PathsConfig struct {
	*MainConfig

	Format *format.Format

	Paths *cli.Command
}
