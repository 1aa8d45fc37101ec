package regops

import (
	"errors"
	"fmt"
	"syscall"
)

var (
	ErrMisaligned         = errors.New("offset misaligned")
	ErrOutOfRange         = errors.New("offset out of range")
	ErrNotAllowlisted     = errors.New("offset not allowlisted")
	ErrWrongKind          = errors.New("operation kind unsupported")
	ErrWrongScope         = errors.New("operation type invalid")
	ErrNoContext          = errors.New("context operation without context")
	ErrIndexOutOfBounds   = errors.New("chiplet index out of bounds")
	ErrArithmeticOverflow = errors.New("arithmetic overflow")
)

var (
	ErrBatchRejected         = errors.New("batch rejected")
	ErrContextUnavailable    = errors.New("context unavailable")
	ErrGenerationUnsupported = errors.New("generation unsupported")
	ErrAllowlistUnsorted     = errors.New("allowlist unsorted or overlapping")
	ErrArgumentInvalid       = errors.New("argument invalid")
)

// OpError records why a single operation failed validation or translation.
type OpError struct {
	Index  int
	Offset uint32
	Err    error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("[Op] index: %d, offset: %08X, %v", e.Index, e.Offset, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// BackendError is the context backend failing a batch.
type BackendError struct {
	Code int
	Err  error
}

func NewBackendError(err error) *BackendError {
	var be *BackendError
	if errors.As(err, &be) {
		return be
	}
	e := &BackendError{Err: err}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		e.Code = -int(errno)
	}
	return e
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("[Backend] code: %d, %v", e.Code, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is one of the validation failures.
func IsValidation(err error) bool {
	return errors.Is(err, ErrMisaligned) || errors.Is(err, ErrOutOfRange) ||
		errors.Is(err, ErrNotAllowlisted) || errors.Is(err, ErrWrongKind) ||
		errors.Is(err, ErrWrongScope) || errors.Is(err, ErrNoContext)
}

// IsTranslation reports whether err is one of the chiplet translation failures.
func IsTranslation(err error) bool {
	return errors.Is(err, ErrIndexOutOfBounds) || errors.Is(err, ErrArithmeticOverflow)
}
