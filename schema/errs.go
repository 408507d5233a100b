package schema

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrIO            = errors.New("io error")
	ErrValueParse    = errors.New("value parse error")
	ErrInvalidSchema = errors.New("invalid schema")
	ErrRefResolution = errors.New("reference resolution error")
)

type ErrorKind int

const (
	IOError ErrorKind = iota
	ValueParseError
	InvalidSchemaError
	RefResolutionError
)

func (k ErrorKind) String() string {
	switch k {
	case IOError:
		return "io"
	case ValueParseError:
		return "value-parse"
	case InvalidSchemaError:
		return "invalid-schema"
	case RefResolutionError:
		return "ref-resolution"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case IOError:
		return ErrIO
	case ValueParseError:
		return ErrValueParse
	case InvalidSchemaError:
		return ErrInvalidSchema
	default:
		return ErrRefResolution
	}
}

// Error is returned by every failing operation in this package. Context is
// appended to as the error travels outward, so Context[0] is the innermost
// frame.
type Error struct {
	Kind    ErrorKind
	Context []string
	Err     error
}

func newError(k ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: k, Err: fmt.Errorf(format, args...)}
}

func (e *Error) WithContext(format string, args ...any) *Error {
	e.Context = append(e.Context, fmt.Sprintf(format, args...))
	return e
}

func (e *Error) Error() string {
	buf := &strings.Builder{}
	buf.WriteString(e.Kind.sentinel().Error())
	buf.WriteString(": ")
	buf.WriteString(e.Err.Error())
	for i := len(e.Context) - 1; i >= 0; i-- {
		buf.WriteString("\n  ")
		buf.WriteString(e.Context[i])
	}
	return buf.String()
}

func (e *Error) Unwrap() []error {
	return []error{e.Kind.sentinel(), e.Err}
}

func asError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
