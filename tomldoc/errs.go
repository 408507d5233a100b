package tomldoc

import (
	"errors"
	"fmt"
)

var ErrParse = errors.New("toml parse error")

// Error is a parse failure. Pos is nil when no position is known.
type Error struct {
	Pos *Pos
	Err error
}

func (e *Error) Error() string {
	if e.Pos == nil {
		return fmt.Sprintf("%s: %s", ErrParse, e.Err)
	}
	return fmt.Sprintf("%s at %s: %s", ErrParse, e.Pos, e.Err)
}

func (e *Error) Unwrap() []error {
	return []error{ErrParse, e.Err}
}
