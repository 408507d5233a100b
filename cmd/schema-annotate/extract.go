package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"

	annotator "github.com/signadot/schema-annotator"
	"github.com/signadot/schema-annotator/annotation"
	"github.com/signadot/schema-annotator/value"
)

func extract(cfg *ExtractConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Extract.Parse(cc, args)
	if err != nil {
		return err
	}
	file := cfg.Schema
	switch {
	case len(args) == 1 && file == "":
		file = args[0]
	case len(args) > 0:
		return fmt.Errorf("%w: expected one schema", cli.ErrUsage)
	}
	if file == "" {
		return fmt.Errorf("%w: no schema given", cli.ErrUsage)
	}
	m, err := annotator.LoadAnnotations(file, cfg.Patch, cfg.Where)
	if err != nil {
		return err
	}
	if cfg.JSON {
		return writeJSON(cc.Out, m)
	}
	return writeTable(cc.Out, m)
}

func writeJSON(w io.Writer, m *annotation.Map) error {
	var recs []*value.Value
	m.Each(func(r *annotation.Record) {
		kvs := []value.KeyValue{value.KV("path", value.FromString(r.Path.String()))}
		if r.Title != "" {
			kvs = append(kvs, value.KV("title", value.FromString(r.Title)))
		}
		if r.Description != "" {
			kvs = append(kvs, value.KV("description", value.FromString(r.Description)))
		}
		if r.Default != "" {
			if def, err := value.FromJSON([]byte(r.Default)); err == nil {
				kvs = append(kvs, value.KV("default", def))
			}
		}
		recs = append(recs, value.FromKeyValues(kvs...))
	})
	if recs == nil {
		recs = []*value.Value{}
	}
	d, err := value.FromSlice(recs).MarshalJSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", d)
	return err
}

func writeTable(w io.Writer, m *annotation.Map) error {
	var err error
	m.Each(func(r *annotation.Record) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, "%s\t%s\t%s\n", r.Path, oneLine(r.Title), oneLine(r.Description))
	})
	return err
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
