package sim

import (
	internal "github.com/wnxd/gpuregops/internal/regops"
	"github.com/wnxd/gpuregops/regops"
)

// Synthetic chip layout: eight GPCs, four FBPs.
const (
	NUM_GPCS = 8
	NUM_FBPS = 4

	GPC_PERFMON_BASE   = 0x00180000
	GPC_PERFMON_STRIDE = 0x200
	FBP_PERFMON_BASE   = 0x00200000
	FBP_PERFMON_STRIDE = 0x200
	GPC_ROUTER_BASE    = 0x00244000
	GPC_ROUTER_STRIDE  = 0x100
	FBP_ROUTER_BASE    = 0x00246000
	FBP_ROUTER_STRIDE  = 0x100

	PTIMER_TIME_0 = 0x00009400
	PTIMER_TIME_1 = 0x00009410
)

var globalRanges = []regops.Range{
	{Base: PTIMER_TIME_0, Count: 1},
	{Base: PTIMER_TIME_1, Count: 1},
	{Base: 0x00100c80, Count: 2},
	{Base: GPC_PERFMON_BASE, Count: NUM_GPCS * GPC_PERFMON_STRIDE / 4},
	{Base: FBP_PERFMON_BASE, Count: NUM_FBPS * FBP_PERFMON_STRIDE / 4},
	{Base: GPC_ROUTER_BASE, Count: NUM_GPCS * GPC_ROUTER_STRIDE / 4},
	{Base: FBP_ROUTER_BASE, Count: NUM_FBPS * FBP_ROUTER_STRIDE / 4},
	{Base: 0x00400000, Count: 4},
	{Base: 0x00405840, Count: 1},
	{Base: 0x00419bd8, Count: 1},
}

var contextRanges = []regops.Range{
	{Base: 0x00418380, Count: 1},
	{Base: 0x00419a04, Count: 2},
	{Base: 0x00419e00, Count: 0x20},
	{Base: 0x00504000, Count: 0x80},
}

var runControl = []uint32{
	0x0041a300,
	0x00504610,
	0x00504618,
}

type SimEngine struct {
	internal.Engine
}

func NewSimEngine(cfg regops.Config) (regops.Engine, error) {
	e := new(SimEngine)
	err := e.Init(e, cfg)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (e *SimEngine) Gen() regops.Gen {
	return regops.GEN_SIM
}

func (e *SimEngine) GlobalRanges() []regops.Range {
	return globalRanges
}

func (e *SimEngine) ContextRanges() []regops.Range {
	return contextRanges
}

func (e *SimEngine) RunControl() []uint32 {
	return runControl
}

func (e *SimEngine) Perfmon(s internal.Space) internal.Window {
	switch s {
	case internal.SPACE_GPC_PERFMON:
		return internal.Window{Base: GPC_PERFMON_BASE, Stride: GPC_PERFMON_STRIDE}
	case internal.SPACE_GPC_ROUTER:
		return internal.Window{Base: GPC_ROUTER_BASE, Stride: GPC_ROUTER_STRIDE}
	case internal.SPACE_FBP_PERFMON:
		return internal.Window{Base: FBP_PERFMON_BASE, Stride: FBP_PERFMON_STRIDE}
	case internal.SPACE_FBP_ROUTER:
		return internal.Window{Base: FBP_ROUTER_BASE, Stride: FBP_ROUTER_STRIDE}
	}
	return internal.Window{}
}

func (e *SimEngine) NumGPCs() uint32 {
	return NUM_GPCS
}

func (e *SimEngine) NumFBPs() uint32 {
	return NUM_FBPS
}
