package regops

import (
	"errors"

	"github.com/wnxd/gpuregops/regops"
)

func (e *Engine) validateOps(ops []regops.Op, hasCtx, allowOverride bool, binding *regops.Binding, mode regops.Mode) regops.Outcome {
	allOrNone := mode == regops.MODE_ALL_OR_NONE
	out := regops.Outcome{Errs: make([]error, len(ops))}
	var failed bool
	for i := range ops {
		op := &ops[i]
		offset := op.Offset
		op.Status = regops.STATUS_SUCCESS // reset even with allowOverride
		out.Visited = i + 1

		var errs []error
		if !allowOverride {
			var err error
			if binding != nil {
				err = e.validateProfilerOffset(op, binding)
			} else {
				err = e.validateOffset(op, hasCtx)
			}
			if err != nil {
				errs = append(errs, err)
			}
		}
		if err := classify(op); err != nil {
			errs = append(errs, err)
		}
		if op.Type.IsGrCtx() {
			if op.Kind.IsRead() {
				out.CtxReads++
			} else {
				out.CtxWrites++
			}
			if !hasCtx {
				errs = append(errs, regops.ErrNoContext)
			}
		}

		if len(errs) != 0 {
			failed = true
			out.Errs[i] = &regops.OpError{Index: i, Offset: offset, Err: errors.Join(errs...)}
			if allOrNone {
				break
			}
		}
	}
	e.debugf("ctx_wrs:%d ctx_rds:%d", out.CtxWrites, out.CtxReads)

	out.AllPassed = !failed
	out.Accepted = !allOrNone || !failed
	return out
}
