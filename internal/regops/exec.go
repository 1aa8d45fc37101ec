package regops

import (
	"fmt"

	"github.com/wnxd/gpuregops/bus"
	"github.com/wnxd/gpuregops/regops"
)

const maskAll = ^uint32(0)

// execOps applies the global ops of an accepted batch to the bus in order,
// then hands the whole batch to the context backend when it holds context
// ops. Context ops without a bound context fail the batch before any access.
func (e *Engine) execOps(ops []regops.Op, hasCtx bool, out *regops.Outcome) error {
	hasCtxOps := out.CtxWrites|out.CtxReads != 0
	if hasCtxOps && (!hasCtx || e.backend == nil || !e.backend.ContextReady()) {
		e.errorf("gr context data not available")
		return regops.ErrContextUnavailable
	}
	for i := range ops {
		op := &ops[i]
		if op.Type != regops.TYPE_GLOBAL {
			continue
		}
		// only reachable in continue-on-error mode
		if op.Status != regops.STATUS_SUCCESS || out.Errs[i] != nil {
			continue
		}
		if err := e.execGlobal(i, op); err != nil {
			return err
		}
	}
	if hasCtxOps {
		if err := e.backend.ExecCtxOps(ops, out.CtxWrites, out.CtxReads); err != nil {
			e.warnf("failed to perform ctx ops")
			return regops.NewBackendError(err)
		}
	}
	return nil
}

func (e *Engine) execGlobal(i int, op *regops.Op) error {
	lo := bus.ToRegister(e.bus, op.Offset)
	switch op.Kind {
	case regops.OP_READ_32:
		v, err := lo.Read()
		if err != nil {
			return err
		}
		op.ValueLo, op.ValueHi = v, 0
		e.debugf("read_32 0x%08x from 0x%08x", op.ValueLo, op.Offset)
	case regops.OP_READ_64:
		hi, err := lo.Add(4)
		if err != nil {
			return err
		}
		if op.ValueLo, err = lo.Read(); err != nil {
			return err
		}
		if op.ValueHi, err = hi.Read(); err != nil {
			return err
		}
		e.debugf("read_64 0x%08x:%08x from 0x%08x", op.ValueHi, op.ValueLo, op.Offset)
	case regops.OP_WRITE_32, regops.OP_WRITE_64:
		is64 := op.Kind == regops.OP_WRITE_64
		dataLo, err := merge(lo, op.ValueLo, op.MaskLo)
		if err != nil {
			return err
		}
		var hi bus.Register
		var dataHi uint32
		if is64 {
			if hi, err = lo.Add(4); err != nil {
				return err
			}
			if dataHi, err = merge(hi, op.ValueHi, op.MaskHi); err != nil {
				return err
			}
		}
		if err = lo.Write(dataLo); err != nil {
			return err
		}
		e.debugf("wrote 0x%08x to 0x%08x", dataLo, lo.Address())
		if is64 {
			if err = hi.Write(dataHi); err != nil {
				return err
			}
			e.debugf("wrote 0x%08x to 0x%08x", dataHi, hi.Address())
		}
	default:
		panic(fmt.Sprintf("regops: op %d has unscreened kind %d", i, op.Kind))
	}
	return nil
}

// merge computes the value to store for a masked write. A full mask skips
// the read so write-only registers see no read side effects.
func merge(reg bus.Register, value, mask uint32) (uint32, error) {
	if mask == maskAll {
		return value, nil
	}
	old, err := reg.Read()
	if err != nil {
		return 0, err
	}
	return old&^mask | value, nil
}
