package regops

import (
	"errors"
	"math"
	"testing"
)

func TestSafeArithmetic(t *testing.T) {
	if got, err := SafeAdd[uint32](math.MaxUint32-1, 1); err != nil || got != math.MaxUint32 {
		t.Errorf("SafeAdd: got %d, %v", got, err)
	}
	if _, err := SafeAdd[uint32](math.MaxUint32, 1); !errors.Is(err, ErrArithmeticOverflow) {
		t.Errorf("SafeAdd overflow: got %v", err)
	}
	if _, err := SafeSub[uint32](1, 2); !errors.Is(err, ErrArithmeticOverflow) {
		t.Errorf("SafeSub underflow: got %v", err)
	}
	if got, err := SafeMul[uint32](0x10000, 0xffff); err != nil || got != 0xffff0000 {
		t.Errorf("SafeMul: got 0x%x, %v", got, err)
	}
	if _, err := SafeMul[uint32](0x10000, 0x10000); !errors.Is(err, ErrArithmeticOverflow) {
		t.Errorf("SafeMul overflow: got %v", err)
	}
	if got, err := SafeMul[uint32](0, math.MaxUint32); err != nil || got != 0 {
		t.Errorf("SafeMul zero: got %d, %v", got, err)
	}
	if _, err := SafeDiv[uint32](8, 0); !errors.Is(err, ErrArithmeticOverflow) {
		t.Errorf("SafeDiv by zero: got %v", err)
	}
	if got, err := SafeDiv[uint64](0x1000, 0x200); err != nil || got != 8 {
		t.Errorf("SafeDiv: got %d, %v", got, err)
	}
}
