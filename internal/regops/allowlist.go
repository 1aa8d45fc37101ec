package regops

import (
	"slices"

	"github.com/wnxd/gpuregops/regops"
)

type allowlist struct {
	global  []regops.Range
	context []regops.Range
	runctl  []uint32
}

func (al *allowlist) ctor(gen Generation) error {
	al.global = slices.Clone(gen.GlobalRanges())
	al.context = slices.Clone(gen.ContextRanges())
	al.runctl = slices.Clone(gen.RunControl())
	if !rangesSorted(al.global) || !rangesSorted(al.context) {
		return regops.ErrAllowlistUnsorted
	}
	return nil
}

// check reports whether offset may be accessed with the given type. The
// context list and the run control list are only consulted for global ops
// when a context is bound.
func (al *allowlist) check(typ regops.Type, offset uint32, hasCtx bool) bool {
	switch typ {
	case regops.TYPE_GLOBAL:
		if rangeSearch(al.global, offset) {
			return true
		}
		if !hasCtx {
			return false
		}
		return rangeSearch(al.context, offset) || slices.Contains(al.runctl, offset)
	case regops.TYPE_GR_CTX:
		if rangeSearch(al.context, offset) {
			return true
		}
		return hasCtx && slices.Contains(al.runctl, offset)
	}
	return false
}

func rangesSorted(ranges []regops.Range) bool {
	for i := 1; i < len(ranges); i++ {
		if uint64(ranges[i].Base) < ranges[i-1].End() {
			return false
		}
	}
	return true
}

func rangeSearch(ranges []regops.Range, offset uint32) bool {
	_, found := slices.BinarySearchFunc(ranges, offset, func(r regops.Range, key uint32) int {
		if key < r.Base {
			return 1
		} else if r.Contains(key) {
			return 0
		}
		return -1
	})
	return found
}

func profilerSearch(m []regops.ProfilerRange, offset uint32) (regops.ProfilerRange, bool) {
	i, found := slices.BinarySearchFunc(m, offset, func(r regops.ProfilerRange, key uint32) int {
		if key < r.Start {
			return 1
		} else if key > r.End {
			return -1
		}
		return 0
	})
	if !found {
		return regops.ProfilerRange{}, false
	}
	return m[i], true
}
