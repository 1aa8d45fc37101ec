package regops

import (
	"cmp"
	"slices"
)

// Range covers the words [Base, Base+4*Count).
type Range struct {
	Base  uint32
	Count uint32
}

func (r Range) End() uint64 {
	return uint64(r.Base) + uint64(r.Count)*4
}

func (r Range) Contains(offset uint32) bool {
	return offset >= r.Base && uint64(offset) < r.End()
}

type Category int

const (
	CATEGORY_SMPC Category = iota
	CATEGORY_HWPM_PERFMON
	CATEGORY_HWPM_ROUTER
	CATEGORY_HWPM_PMA_TRIGGER
	CATEGORY_HWPM_PERFMUX
	CATEGORY_CAU
	CATEGORY_HWPM_PMA_CHANNEL
	CATEGORY_PC_SAMPLER
	CATEGORY_TEST
	CATEGORY_COUNT
)

func (c Category) String() string {
	switch c {
	case CATEGORY_SMPC:
		return "smpc"
	case CATEGORY_HWPM_PERFMON:
		return "hwpm_perfmon"
	case CATEGORY_HWPM_ROUTER:
		return "hwpm_router"
	case CATEGORY_HWPM_PMA_TRIGGER:
		return "hwpm_pma_trigger"
	case CATEGORY_HWPM_PERFMUX:
		return "hwpm_perfmux"
	case CATEGORY_CAU:
		return "cau"
	case CATEGORY_HWPM_PMA_CHANNEL:
		return "hwpm_pma_channel"
	case CATEGORY_PC_SAMPLER:
		return "pc_sampler"
	case CATEGORY_TEST:
		return "test"
	}
	return "unknown"
}

// ProfilerRange is an inclusive [Start, End] window reserved by a profiler.
type ProfilerRange struct {
	Start, End uint32
	Category   Category
}

// Binding is the allowlist of one profiling session. Map is sorted by Start
// and non-overlapping; Types maps each category to the operation type its
// registers are accessed with.
type Binding struct {
	Map   []ProfilerRange
	Types [CATEGORY_COUNT]Type
}

// NewBinding copies and sorts ranges. Overlapping or inverted ranges are
// rejected.
func NewBinding(ranges []ProfilerRange, types map[Category]Type) (*Binding, error) {
	b := &Binding{Map: slices.Clone(ranges)}
	slices.SortFunc(b.Map, func(a, b ProfilerRange) int {
		return cmp.Compare(a.Start, b.Start)
	})
	for i, r := range b.Map {
		if r.End < r.Start || r.Category < 0 || r.Category >= CATEGORY_COUNT {
			return nil, ErrArgumentInvalid
		}
		if i > 0 && r.Start <= b.Map[i-1].End {
			return nil, ErrAllowlistUnsorted
		}
	}
	for c, t := range types {
		if c < 0 || c >= CATEGORY_COUNT || !t.Valid() {
			return nil, ErrArgumentInvalid
		}
		b.Types[c] = t
	}
	return b, nil
}
