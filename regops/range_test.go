package regops

import (
	"errors"
	"testing"
)

func TestRange(t *testing.T) {
	r := Range{Base: 0xfffffff0, Count: 4}
	if got, want := r.End(), uint64(0x100000000); got != want {
		t.Errorf("End: got 0x%x want 0x%x", got, want)
	}
	if !r.Contains(0xfffffffc) || r.Contains(0xffffffec) {
		t.Error("Contains mismatch at the top of the address space")
	}
}

func TestNewBinding(t *testing.T) {
	in := []ProfilerRange{
		{Start: 0x300, End: 0x3fc, Category: CATEGORY_PC_SAMPLER},
		{Start: 0x100, End: 0x1fc, Category: CATEGORY_SMPC},
	}
	b, err := NewBinding(in, map[Category]Type{CATEGORY_SMPC: TYPE_GR_CTX_SM})
	if err != nil {
		t.Fatal(err)
	}
	if b.Map[0].Start != 0x100 || b.Map[1].Start != 0x300 {
		t.Errorf("Map not sorted: %+v", b.Map)
	}
	if in[0].Start != 0x300 {
		t.Error("NewBinding reordered its input")
	}
	if got, want := b.Types[CATEGORY_SMPC], TYPE_GR_CTX_SM; got != want {
		t.Errorf("Types: got %v want %v", got, want)
	}
	if got, want := b.Types[CATEGORY_PC_SAMPLER], TYPE_GLOBAL; got != want {
		t.Errorf("default type: got %v want %v", got, want)
	}

	for _, tc := range []struct {
		name   string
		ranges []ProfilerRange
		types  map[Category]Type
		want   error
	}{
		{"overlap", []ProfilerRange{{Start: 0x100, End: 0x200}, {Start: 0x200, End: 0x300}}, nil, ErrAllowlistUnsorted},
		{"inverted", []ProfilerRange{{Start: 0x200, End: 0x100}}, nil, ErrArgumentInvalid},
		{"category", []ProfilerRange{{Start: 0x100, End: 0x100, Category: CATEGORY_COUNT}}, nil, ErrArgumentInvalid},
		{"type", nil, map[Category]Type{CATEGORY_CAU: 0x20}, ErrArgumentInvalid},
	} {
		if _, err := NewBinding(tc.ranges, tc.types); !errors.Is(err, tc.want) {
			t.Errorf("%s: got %v want %v", tc.name, err, tc.want)
		}
	}
}

func TestStatusString(t *testing.T) {
	for _, tc := range []struct {
		s    Status
		want string
	}{
		{STATUS_SUCCESS, "success"},
		{STATUS_INVALID_OFFSET, "invalid_offset"},
		{STATUS_INVALID_TYPE | STATUS_UNSUPPORTED_OP, "invalid_type|unsupported_op"},
		{0x80, "unknown"},
	} {
		if got := tc.s.String(); got != tc.want {
			t.Errorf("Status(0x%x): got %q want %q", uint8(tc.s), got, tc.want)
		}
	}
}
