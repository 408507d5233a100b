package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "schema-annotate").
		WithSynopsis("schema-annotate [opts] command [opts]").
		WithDescription("schema-annotate writes JSON schema titles and descriptions into TOML and YAML documents as comments.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return mainRun(cfg, cc, args)
		}).
		WithSubs(
			AnnotateCommand(cfg),
			ExtractCommand(cfg),
			PathsCommand(cfg))
}

func AnnotateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &AnnotateConfig{MainConfig: mainCfg, Width: 80, Preserve: true}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "format",
			Description: "document format: toml, yaml (default from file extension)",
			Type:        cli.NamedFuncOpt(fmtFunc(&cfg.Format), "(format)"),
		},
		&cli.Opt{
			Name:        "include",
			Description: "annotations to write: title, description, both",
			Type:        cli.NamedFuncOpt(cfg.includeOpt, "(what)"),
		},
		&cli.Opt{
			Name:        "preserve-comments",
			Description: "keep existing comments above annotated keys (default true)",
			Type:        cli.NamedFuncOpt(cfg.preserveOpt, "(bool)"),
		})
	return cli.NewCommandAt(&cfg.Annotate, "annotate").
		WithAliases("a").
		WithSynopsis("annotate -schema <file> [opts] [file]").
		WithDescription("annotate a TOML or YAML document with comments from a schema").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return annotate(cfg, cc, args)
		})
}

func ExtractCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExtractConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Extract, "extract").
		WithAliases("x").
		WithSynopsis("extract [opts] [schema]").
		WithDescription("list the annotations of a schema by path").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return extract(cfg, cc, args)
		})
}

func PathsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PathsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Paths, "paths").
		WithAliases("p").
		WithSynopsis("paths [-format f] [files]").
		WithDescription("print the annotation path of every key line of TOML or YAML documents").
		WithOpts(&cli.Opt{
			Name:        "format",
			Description: "document format: toml, yaml (default from file extension)",
			Type:        cli.NamedFuncOpt(fmtFunc(&cfg.Format), "(format)"),
		}).
		WithRun(func(cc *cli.Context, args []string) error {
			return paths(cfg, cc, args)
		})
}
