package bus

import (
	"errors"
	"testing"
)

func TestMemoryTrace(t *testing.T) {
	m := NewMemory()
	m.Poke(0x100, 0xAAAABBBB)
	if err := m.Write32(0x104, 5); err != nil {
		t.Fatal(err)
	}
	v, err := m.Read32(0x100)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := v, uint32(0xAAAABBBB); got != want {
		t.Errorf("Read32: got %08x want %08x", got, want)
	}
	tr := m.Trace()
	if got, want := len(tr), 2; got != want {
		t.Fatalf("trace: got %d entries want %d", got, want)
	}
	if tr[0] != (Trace{ACCESS_WRITE, 0x104, 5}) {
		t.Errorf("trace[0]: got %+v", tr[0])
	}
	if tr[1] != (Trace{ACCESS_READ, 0x100, 0xAAAABBBB}) {
		t.Errorf("trace[1]: got %+v", tr[1])
	}
}

func TestMemoryMisaligned(t *testing.T) {
	m := NewMemory()
	if _, err := m.Read32(0x101); !errors.Is(err, ErrAddressInvalid) {
		t.Errorf("Read32: got %v want %v", err, ErrAddressInvalid)
	}
}

func TestRegisterFault(t *testing.T) {
	m := NewMemory()
	boom := errors.New("boom")
	m.Fault(0x300, boom)
	_, err := ToRegister(m, 0x300).Read()
	var be *BusError
	if !errors.As(err, &be) {
		t.Fatalf("Read: got %v want *BusError", err)
	}
	if be.Addr != 0x300 || !errors.Is(err, boom) {
		t.Errorf("BusError: got %+v", be)
	}
}

func TestRegisterAddOverflow(t *testing.T) {
	if _, err := ToRegister(NewMemory(), 0xFFFFFFFC).Add(4); !errors.Is(err, ErrAddressOverflow) {
		t.Errorf("Add: got %v want %v", err, ErrAddressOverflow)
	}
}
