package regops

import (
	"github.com/wnxd/gpuregops/regops"
)

const (
	offsetAlignMask = 0x00000003
	offsetRangeMask = 0xFF000000
)

// checkOffset accepts only 24-bit, 4-byte aligned offsets.
func checkOffset(offset uint32) error {
	if offset&offsetAlignMask != 0 {
		return regops.ErrMisaligned
	} else if offset&offsetRangeMask != 0 {
		return regops.ErrOutOfRange
	}
	return nil
}

func (e *Engine) validateOffset(op *regops.Op, hasCtx bool) error {
	if err := checkOffset(op.Offset); err != nil {
		e.errorf("invalid regop offset: 0x%x", op.Offset)
		op.Status |= regops.STATUS_INVALID_OFFSET
		return err
	}
	valid := e.allowlist.check(op.Type, op.Offset, hasCtx)
	if valid && op.Kind.Is64() {
		valid = e.allowlist.check(op.Type, op.Offset+4, hasCtx)
	}
	if !valid {
		e.errorf("invalid regop offset: 0x%x", op.Offset)
		op.Status |= regops.STATUS_INVALID_OFFSET
		return regops.ErrNotAllowlisted
	}
	if e.translator.enabled() {
		if s, ok := e.translator.spaceOf(op.Offset); ok {
			if err := e.translate(op, s); err != nil {
				op.Status |= regops.STATUS_INVALID_OFFSET
				return err
			}
		}
	}
	return nil
}

// validateProfilerOffset checks op against the session's ranges. On success
// the op type is replaced by the one bound to the matching range category.
func (e *Engine) validateProfilerOffset(op *regops.Op, binding *regops.Binding) error {
	if err := checkOffset(op.Offset); err != nil {
		e.errorf("invalid regop offset: 0x%x", op.Offset)
		op.Status |= regops.STATUS_INVALID_OFFSET
		return err
	}
	entry, valid := profilerSearch(binding.Map, op.Offset)
	if valid && op.Kind.Is64() {
		var entry64 regops.ProfilerRange
		entry64, valid = profilerSearch(binding.Map, op.Offset+4)
		valid = valid && entry64.Category == entry.Category
	}
	if !valid {
		e.debugf("offset 0x%x not found in range search", op.Offset)
		op.Status |= regops.STATUS_INVALID_OFFSET
		return regops.ErrNotAllowlisted
	}
	e.debugf("offset 0x%x found in range 0x%x-0x%x, type: %v", op.Offset, entry.Start, entry.End, entry.Category)
	if e.translator.enabled() {
		if s, ok := e.translator.spaceAt(entry); ok {
			if err := e.translate(op, s); err != nil {
				op.Status |= regops.STATUS_INVALID_OFFSET
				return err
			}
		}
	}
	op.Type = binding.Types[entry.Category]
	return nil
}
