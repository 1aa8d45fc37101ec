package bus

import "math"

type Register struct {
	bus  Bus
	addr uint32
}

func ToRegister(b Bus, addr uint32) Register {
	return Register{b, addr}
}

func (r Register) Address() uint32 {
	return r.addr
}

func (r Register) Add(offset uint32) (Register, error) {
	if r.addr > math.MaxUint32-offset {
		return Register{}, ErrAddressOverflow
	}
	return Register{r.bus, r.addr + offset}, nil
}

func (r Register) Read() (uint32, error) {
	v, err := r.bus.Read32(r.addr)
	if err != nil {
		return 0, &BusError{ACCESS_READ, r.addr, err}
	}
	return v, nil
}

func (r Register) Write(value uint32) error {
	if err := r.bus.Write32(r.addr, value); err != nil {
		return &BusError{ACCESS_WRITE, r.addr, err}
	}
	return nil
}
