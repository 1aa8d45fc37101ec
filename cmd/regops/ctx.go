package main

import (
	"github.com/wnxd/gpuregops/bus"
	"github.com/wnxd/gpuregops/regops"
)

// ctxImage stands in for a saved graphics context. Context ops are applied
// to their own register file.
type ctxImage struct {
	mem *bus.Memory
}

func newCtxImage() *ctxImage {
	return &ctxImage{mem: bus.NewMemory()}
}

func (c *ctxImage) ContextReady() bool {
	return true
}

func (c *ctxImage) ExecCtxOps(ops []regops.Op, ctxWrites, ctxReads uint32) error {
	for i := range ops {
		op := &ops[i]
		if !op.Type.IsGrCtx() || op.Status != regops.STATUS_SUCCESS {
			continue
		}
		lo := bus.ToRegister(c.mem, op.Offset)
		hi, err := lo.Add(4)
		if err != nil {
			return err
		}
		switch op.Kind {
		case regops.OP_READ_32:
			if op.ValueLo, err = lo.Read(); err != nil {
				return err
			}
			op.ValueHi = 0
		case regops.OP_READ_64:
			if op.ValueLo, err = lo.Read(); err != nil {
				return err
			}
			if op.ValueHi, err = hi.Read(); err != nil {
				return err
			}
		case regops.OP_WRITE_32:
			if err = store(lo, op.ValueLo, op.MaskLo); err != nil {
				return err
			}
		case regops.OP_WRITE_64:
			if err = store(lo, op.ValueLo, op.MaskLo); err != nil {
				return err
			}
			if err = store(hi, op.ValueHi, op.MaskHi); err != nil {
				return err
			}
		}
	}
	return nil
}

func store(reg bus.Register, value, mask uint32) error {
	old, err := reg.Read()
	if err != nil {
		return err
	}
	return reg.Write(old&^mask | value)
}
