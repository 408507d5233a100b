package eval

import (
	"os"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/signadot/schema-annotator/annotation"
)

type Env struct {
	Path        string `expr:"path"`
	Key         string `expr:"key"`
	Depth       int    `expr:"depth"`
	Title       string `expr:"title"`
	Description string `expr:"description"`
	Default     string `expr:"default"`
}

func EnvOf(r *annotation.Record) Env {
	return Env{
		Path:        r.Path.String(),
		Key:         r.Path.Key(),
		Depth:       len(r.Path),
		Title:       r.Title,
		Description: r.Description,
		Default:     r.Default,
	}
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Function("under", func(params ...any) (any, error) {
			return Under(params[0].(string), params[1].(string)), nil
		},
			new(func(string, string) bool)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

// Under reports whether the dotted path p is prefix or a descendant of it.
func Under(p, prefix string) bool {
	return p == prefix || strings.HasPrefix(p, prefix+".")
}
