package bus

import (
	"errors"
	"fmt"
)

var (
	ErrAddressInvalid  = errors.New("address invalid")
	ErrAddressOverflow = errors.New("address overflow")
)

type BusError struct {
	Access Access
	Addr   uint32
	Err    error
}

func (e *BusError) Error() string {
	return fmt.Sprintf("[Bus] %v addr: %08X, %v", e.Access, e.Addr, e.Err)
}

func (e *BusError) Unwrap() error {
	return e.Err
}
