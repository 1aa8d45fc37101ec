package bus

import (
	"sync"
)

// Memory is a word-addressed register file backed by a map. Unwritten
// registers read as zero. Every access is appended to the trace.
type Memory struct {
	mu    sync.Mutex
	regs  map[uint32]uint32
	trace []Trace
	fault map[uint32]error
}

func NewMemory() *Memory {
	return &Memory{
		regs:  make(map[uint32]uint32),
		fault: make(map[uint32]error),
	}
}

func (m *Memory) Read32(addr uint32) (uint32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if addr&3 != 0 {
		return 0, ErrAddressInvalid
	}
	if err, ok := m.fault[addr]; ok {
		return 0, err
	}
	v := m.regs[addr]
	m.trace = append(m.trace, Trace{ACCESS_READ, addr, v})
	return v, nil
}

func (m *Memory) Write32(addr uint32, value uint32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if addr&3 != 0 {
		return ErrAddressInvalid
	}
	if err, ok := m.fault[addr]; ok {
		return err
	}
	m.regs[addr] = value
	m.trace = append(m.trace, Trace{ACCESS_WRITE, addr, value})
	return nil
}

// Poke sets a register without recording a trace entry.
func (m *Memory) Poke(addr, value uint32) {
	m.mu.Lock()
	m.regs[addr] = value
	m.mu.Unlock()
}

// Peek reads a register without recording a trace entry.
func (m *Memory) Peek(addr uint32) uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.regs[addr]
}

// Fault makes every access to addr fail with err. A nil err clears it.
func (m *Memory) Fault(addr uint32, err error) {
	m.mu.Lock()
	if err == nil {
		delete(m.fault, addr)
	} else {
		m.fault[addr] = err
	}
	m.mu.Unlock()
}

func (m *Memory) Trace() []Trace {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Trace(nil), m.trace...)
}
