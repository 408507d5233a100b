package annotator

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrParse = errors.New("parse error")
	ErrIO    = errors.New("io error")
)

type ErrorKind int

const (
	ParseError ErrorKind = iota
	IOError
)

func (k ErrorKind) String() string {
	switch k {
	case ParseError:
		return "parse"
	case IOError:
		return "io"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Pos is a 1-based line and column in a target document.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

type Error struct {
	Kind    ErrorKind
	Context []string
	Pos     *Pos
	Err     error
}

func (e *Error) WithContext(format string, args ...any) *Error {
	e.Context = append(e.Context, fmt.Sprintf(format, args...))
	return e
}

func (e *Error) sentinel() error {
	if e.Kind == IOError {
		return ErrIO
	}
	return ErrParse
}

func (e *Error) Error() string {
	buf := &strings.Builder{}
	buf.WriteString(e.sentinel().Error())
	if e.Pos != nil {
		fmt.Fprintf(buf, " at %s", e.Pos)
	}
	buf.WriteString(": ")
	buf.WriteString(e.Err.Error())
	for i := len(e.Context) - 1; i >= 0; i-- {
		buf.WriteString("\n  ")
		buf.WriteString(e.Context[i])
	}
	return buf.String()
}

func (e *Error) Unwrap() []error {
	return []error{e.sentinel(), e.Err}
}
