package eval

import "errors"

var (
	ErrCompile = errors.New("expression compile error")
	ErrRun     = errors.New("expression run error")
)
