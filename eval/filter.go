package eval

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/schema-annotator/annotation"
)

type Filter struct {
	src  string
	prog *vm.Program
}

// Compile compiles a boolean expression over Env.
func Compile(src string) (*Filter, error) {
	opts := append(exprOpts(), expr.Env(Env{}), expr.AsBool())
	prog, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrCompile, src, err)
	}
	return &Filter{src: src, prog: prog}, nil
}

func (f *Filter) String() string {
	return f.src
}

// Match evaluates the filter for r.
func (f *Filter) Match(r *annotation.Record) (bool, error) {
	out, err := expr.Run(f.prog, EnvOf(r))
	if err != nil {
		return false, fmt.Errorf("%w: %q at %s: %w", ErrRun, f.src, r.Path, err)
	}
	return out.(bool), nil
}

// Apply returns the records of m matching f.
func (f *Filter) Apply(m *annotation.Map) (*annotation.Map, error) {
	return m.Filter(f.Match)
}
