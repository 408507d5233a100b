package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	annotator "github.com/signadot/schema-annotator"
	"github.com/signadot/schema-annotator/format"
)

func paths(cfg *PathsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Paths.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := pathsFile(cfg, cc, arg, len(args) > 1); err != nil {
			return err
		}
	}
	return nil
}

func pathsFile(cfg *PathsConfig, cc *cli.Context, file string, prefix bool) error {
	var f format.Format
	switch {
	case cfg.Format != nil:
		f = *cfg.Format
	case file == "-":
		return fmt.Errorf("%w: -format is required for stdin", cli.ErrUsage)
	default:
		var err error
		f, err = format.FromPath(file)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	text, err := readInput(file, cc.In)
	if err != nil {
		return err
	}
	locs, err := annotator.Paths(text, f)
	if err != nil {
		return fmt.Errorf("%s: %w", displayName(file), err)
	}
	return writePaths(cc.Out, file, locs, prefix)
}

func writePaths(w io.Writer, file string, locs []annotator.Located, prefix bool) error {
	for _, l := range locs {
		var err error
		if prefix {
			_, err = fmt.Fprintf(w, "%s:%d\t%s\n", file, l.Line, l.Path)
		} else {
			_, err = fmt.Fprintf(w, "%d\t%s\n", l.Line, l.Path)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
