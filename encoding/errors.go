package encoding

import "errors"

var (
	ErrNotPointer    = errors.New("encoding: value is not a non-nil pointer")
	ErrOffsetInvalid = errors.New("encoding: offset invalid")
)
