package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/scott-cotton/cli"

	annotator "github.com/signadot/schema-annotator"
	"github.com/signadot/schema-annotator/format"
	"github.com/signadot/schema-annotator/libdiff"
)

func annotate(cfg *AnnotateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Annotate.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Schema == "" {
		return fmt.Errorf("%w: -schema is required", cli.ErrUsage)
	}
	input := cfg.Input
	switch {
	case len(args) > 1:
		return fmt.Errorf("%w: at most one document", cli.ErrUsage)
	case len(args) == 1 && input != "":
		return fmt.Errorf("%w: both -input and a document argument given", cli.ErrUsage)
	case len(args) == 1:
		input = args[0]
	}
	f, err := cfg.format(input)
	if err != nil {
		return err
	}
	if cfg.Output != "" && !cfg.Stdout && !cfg.Diff && !cfg.Force {
		if _, err := os.Stat(cfg.Output); err == nil {
			return fmt.Errorf("%s exists, use -force to overwrite", cfg.Output)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	m, err := annotator.LoadAnnotations(cfg.Schema, cfg.Patch, cfg.Where)
	if err != nil {
		return err
	}
	text, err := readInput(input, cc.In)
	if err != nil {
		return err
	}
	out, err := annotator.AnnotateMap(m, text, f, cfg.annotationConfig())
	if err != nil {
		return fmt.Errorf("%s: %w", displayName(input), err)
	}
	if cfg.Diff {
		return libdiff.Write(cc.Out, displayName(input), libdiff.Lines(text, out), 3, cfg.colors(cc.Out))
	}
	if cfg.Output == "" || cfg.Stdout {
		_, err = cc.Out.Write([]byte(out))
		return err
	}
	if err := os.WriteFile(cfg.Output, []byte(out), 0644); err != nil {
		return (&annotator.Error{Kind: annotator.IOError, Err: err}).WithContext("writing %s", cfg.Output)
	}
	return nil
}

// format picks the document format from -format, then the input name, then
// the output name.
func (cfg *AnnotateConfig) format(input string) (format.Format, error) {
	if cfg.Format != nil {
		return *cfg.Format, nil
	}
	if input != "" && input != "-" {
		if f, err := format.FromPath(input); err == nil {
			return f, nil
		}
	}
	if cfg.Output != "" {
		if f, err := format.FromPath(cfg.Output); err == nil {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: cannot tell the document format, use -format", cli.ErrUsage)
}
