package value

import "errors"

var (
	ErrParse = errors.New("value parse error")
)
