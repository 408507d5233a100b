package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"

	annotator "github.com/signadot/schema-annotator"
	"github.com/signadot/schema-annotator/annotation"
)

const lsName = "schema-annotate-lsp"

var (
	version = "0.0.1"
)

type Config struct {
	Schema string `cli:"name=schema aliases=s desc='schema file, JSON or YAML (.yaml, .yml)'"`
	Patch  string `cli:"name=patch desc='JSON patch or merge patch applied to the schema'"`
	Where  string `cli:"name=where desc='only use annotations matching this expression'"`
	Width  int    `cli:"name=max-width desc='wrap descriptions at this width, 0 disables wrapping'"`

	Command *cli.Command
}

func main() {
	cfg := &Config{Width: 80}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommandAt(&cfg.Command, lsName).
		WithSynopsis(lsName + " -schema <file>").
		WithDescription("language server showing schema annotations of TOML and YAML documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
	cli.MainContext(context.Background(), cmd)
}

func run(cfg *Config, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: unexpected arguments %v", cli.ErrUsage, args)
	}
	if cfg.Schema == "" {
		return fmt.Errorf("%w: -schema is required", cli.ErrUsage)
	}
	m, err := annotator.LoadAnnotations(cfg.Schema, cfg.Patch, cfg.Where)
	if err != nil {
		return err
	}
	ctx := context.Background()
	stream := jsonrpc2.NewStream(&stdioReadWriteCloser{
		read:  os.Stdin,
		write: os.Stdout,
	})
	acfg := annotation.DefaultConfig()
	acfg.MaxLineWidth = cfg.Width
	server := newServer(m, acfg)
	handler := protocol.ServerHandler(server, nil)
	conn := jsonrpc2.NewConn(stream)
	server.conn = conn
	conn.Go(ctx, handler)
	<-conn.Done()
	return conn.Err()
}

type stdioReadWriteCloser struct {
	read  io.Reader
	write io.Writer
}

func (s *stdioReadWriteCloser) Read(p []byte) (n int, err error) {
	return s.read.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (n int, err error) {
	return s.write.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	return nil
}
