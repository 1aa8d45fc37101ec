package main

import (
	"strconv"
	"strings"

	"github.com/wnxd/gpuregops/regops"
)

var kindNames = map[string]regops.OpKind{
	"r32": regops.OP_READ_32,
	"w32": regops.OP_WRITE_32,
	"r64": regops.OP_READ_64,
	"w64": regops.OP_WRITE_64,
}

var typeNames = map[string]regops.Type{
	"global":      regops.TYPE_GLOBAL,
	"gr_ctx":      regops.TYPE_GR_CTX,
	"gr_ctx_tpc":  regops.TYPE_GR_CTX_TPC,
	"gr_ctx_sm":   regops.TYPE_GR_CTX_SM,
	"gr_ctx_crop": regops.TYPE_GR_CTX_CROP,
	"gr_ctx_zrop": regops.TYPE_GR_CTX_ZROP,
	"gr_ctx_quad": regops.TYPE_GR_CTX_QUAD,
}

// parseOp parses KIND[@TYPE]:OFFSET[=VALUE[/MASK]]. A write without a mask
// replaces the whole register.
func parseOp(s string) (regops.Op, error) {
	var op regops.Op
	head, rest, ok := strings.Cut(s, ":")
	if !ok {
		return op, regops.ErrArgumentInvalid
	}
	kind, typ, _ := strings.Cut(head, "@")
	if op.Kind, ok = kindNames[kind]; !ok {
		return op, regops.ErrWrongKind
	}
	if typ != "" {
		if op.Type, ok = typeNames[typ]; !ok {
			return op, regops.ErrWrongScope
		}
	}
	offset, rest, hasValue := strings.Cut(rest, "=")
	off, err := strconv.ParseUint(offset, 0, 32)
	if err != nil {
		return op, err
	}
	op.Offset = uint32(off)
	if op.Kind.IsRead() {
		if hasValue {
			return op, regops.ErrArgumentInvalid
		}
		return op, nil
	}
	if !hasValue {
		return op, regops.ErrArgumentInvalid
	}
	value, mask, hasMask := strings.Cut(rest, "/")
	v, err := strconv.ParseUint(value, 0, 64)
	if err != nil {
		return op, err
	}
	m := uint64(1<<64 - 1)
	if hasMask {
		if m, err = strconv.ParseUint(mask, 0, 64); err != nil {
			return op, err
		}
	}
	if !op.Kind.Is64() && (v>>32 != 0 || (hasMask && m>>32 != 0)) {
		return op, regops.ErrArgumentInvalid
	}
	op.ValueLo, op.ValueHi = uint32(v), uint32(v>>32)
	op.MaskLo, op.MaskHi = uint32(m), uint32(m>>32)
	if !op.Kind.Is64() {
		op.ValueHi, op.MaskHi = 0, 0
	}
	return op, nil
}

// parseTopology builds a single instance partition from comma separated
// logical chiplet ids. Giving FBP ids turns on memory partitioning.
func parseTopology(gpcs, fbps string) (*regops.Partition, error) {
	if gpcs == "" && fbps == "" {
		return nil, nil
	}
	var inst regops.Instance
	var err error
	if inst.GPCs, err = parseIDs(gpcs); err != nil {
		return nil, err
	}
	if inst.FBPs, err = parseIDs(fbps); err != nil {
		return nil, err
	}
	inst.MemoryPartitioned = len(inst.FBPs) != 0
	return &regops.Partition{Instances: []regops.Instance{inst}}, nil
}

func parseIDs(s string) ([]uint32, error) {
	if s == "" {
		return nil, nil
	}
	var ids []uint32
	for _, f := range strings.Split(s, ",") {
		id, err := strconv.ParseUint(strings.TrimSpace(f), 0, 32)
		if err != nil {
			return nil, err
		}
		ids = append(ids, uint32(id))
	}
	return ids, nil
}
