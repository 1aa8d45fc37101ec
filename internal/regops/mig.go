package regops

import (
	"github.com/wnxd/gpuregops/regops"
)

type window struct {
	Window
	end uint32
}

type translator struct {
	topo    regops.Topology
	windows [SPACE_COUNT]window
}

// ctor sizes every window by the device-wide chiplet count; the instance
// limit is enforced per op by translate.
func (t *translator) ctor(gen Generation, topo regops.Topology) error {
	t.topo = topo
	for s := range SPACE_COUNT {
		w := gen.Perfmon(s)
		units := gen.NumGPCs()
		if s == SPACE_FBP_PERFMON || s == SPACE_FBP_ROUTER {
			units = gen.NumFBPs()
		}
		size, err := regops.SafeMul(units, w.Stride)
		if err != nil {
			return err
		}
		end, err := regops.SafeAdd(w.Base, size)
		if err != nil {
			return err
		}
		t.windows[s] = window{w, end}
	}
	return nil
}

func (t *translator) enabled() bool {
	return t.topo != nil
}

func (t *translator) spaceOf(offset uint32) (Space, bool) {
	for s := range SPACE_COUNT {
		if w := &t.windows[s]; offset >= w.Base && offset < w.end {
			return s, true
		}
	}
	return 0, false
}

// spaceAt maps a profiler range back to its window by start address.
func (t *translator) spaceAt(entry regops.ProfilerRange) (Space, bool) {
	if entry.Category != regops.CATEGORY_HWPM_PERFMON && entry.Category != regops.CATEGORY_HWPM_ROUTER {
		return 0, false
	}
	for s := range SPACE_COUNT {
		if t.windows[s].Base == entry.Start {
			return s, true
		}
	}
	return 0, false
}

func (e *Engine) translate(op *regops.Op, s Space) error {
	w := &e.translator.windows[s]
	topo := e.translator.topo
	inst := topo.Instance()
	delta, err := regops.SafeSub(op.Offset, w.Base)
	if err != nil {
		return err
	}
	local, err := regops.SafeDiv(delta, w.Stride)
	if err != nil {
		e.errorf("invalid chiplet offsets")
		return err
	}
	var logical uint32
	switch s {
	case SPACE_GPC_PERFMON, SPACE_GPC_ROUTER:
		if local >= topo.NumGPCs(inst) {
			e.errorf("invalid GPC index %d", local)
			return regops.ErrIndexOutOfBounds
		}
		logical = topo.GPCLogicalID(inst, local)
	case SPACE_FBP_PERFMON, SPACE_FBP_ROUTER:
		if local >= topo.NumFBPs(inst) {
			e.errorf("invalid FBP index %d", local)
			return regops.ErrIndexOutOfBounds
		}
		// FBP indices only need conversion with memory partitioning.
		if !topo.MemoryPartitioned(inst) {
			return nil
		}
		logical = topo.FBPLogicalID(inst, local)
	default:
		return regops.ErrArgumentInvalid
	}
	offset, err := rebase(op.Offset, local, logical, w.Stride)
	if err != nil {
		return err
	}
	e.debugf("old offset: 0x%08x, new offset: 0x%08x, local index: %d, logical index: %d",
		op.Offset, offset, local, logical)
	op.Offset = offset
	return nil
}

func rebase(offset, local, logical, stride uint32) (uint32, error) {
	from, err := regops.SafeMul(local, stride)
	if err != nil {
		return 0, err
	}
	to, err := regops.SafeMul(logical, stride)
	if err != nil {
		return 0, err
	}
	offset, err = regops.SafeSub(offset, from)
	if err != nil {
		return 0, err
	}
	return regops.SafeAdd(offset, to)
}
