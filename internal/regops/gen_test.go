package regops

import (
	"testing"

	"github.com/wnxd/gpuregops/bus"
	"github.com/wnxd/gpuregops/regops"
)

const (
	testGlobalBase  = 0x00400000
	testContextBase = 0x00418000
	testRunControl  = 0x00419000

	testGPCPerfmon = 0x00180000
	testGPCRouter  = 0x00244000
	testFBPPerfmon = 0x00200000
	testFBPRouter  = 0x00246000
)

type testGen struct {
	Engine
	global  []regops.Range
	context []regops.Range
	runctl  []uint32
	windows [SPACE_COUNT]Window
	gpcs    uint32
	fbps    uint32
}

func newTestGen() *testGen {
	return &testGen{
		global: []regops.Range{
			{Base: testGPCPerfmon, Count: 8 * 0x200 / 4},
			{Base: testFBPPerfmon, Count: 4 * 0x200 / 4},
			{Base: testGPCRouter, Count: 8 * 0x100 / 4},
			{Base: testFBPRouter, Count: 4 * 0x100 / 4},
			{Base: testGlobalBase, Count: 4},
		},
		context: []regops.Range{
			{Base: testContextBase, Count: 8},
		},
		runctl: []uint32{testRunControl},
		windows: [SPACE_COUNT]Window{
			SPACE_GPC_PERFMON: {Base: testGPCPerfmon, Stride: 0x200},
			SPACE_GPC_ROUTER:  {Base: testGPCRouter, Stride: 0x100},
			SPACE_FBP_PERFMON: {Base: testFBPPerfmon, Stride: 0x200},
			SPACE_FBP_ROUTER:  {Base: testFBPRouter, Stride: 0x100},
		},
		gpcs: 8,
		fbps: 4,
	}
}

func (g *testGen) Gen() regops.Gen               { return regops.GEN_SIM }
func (g *testGen) GlobalRanges() []regops.Range  { return g.global }
func (g *testGen) ContextRanges() []regops.Range { return g.context }
func (g *testGen) RunControl() []uint32          { return g.runctl }
func (g *testGen) Perfmon(s Space) Window        { return g.windows[s] }
func (g *testGen) NumGPCs() uint32               { return g.gpcs }
func (g *testGen) NumFBPs() uint32               { return g.fbps }

type testBackend struct {
	ready  bool
	err    error
	calls  int
	writes uint32
	reads  uint32
	hook   func(ops []regops.Op)
}

func (b *testBackend) ContextReady() bool {
	return b.ready
}

func (b *testBackend) ExecCtxOps(ops []regops.Op, ctxWrites, ctxReads uint32) error {
	b.calls++
	b.writes, b.reads = ctxWrites, ctxReads
	if b.hook != nil {
		b.hook(ops)
	}
	return b.err
}

// newTestEngine initializes g against a fresh register file.
func newTestEngine(t *testing.T, g *testGen, cfg regops.Config) (*testGen, *bus.Memory) {
	t.Helper()
	mem := bus.NewMemory()
	if cfg.Bus == nil {
		cfg.Bus = mem
	}
	if err := g.Init(g, cfg); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return g, mem
}

func readOp(offset uint32) regops.Op {
	return regops.Op{Kind: regops.OP_READ_32, Type: regops.TYPE_GLOBAL, Offset: offset}
}

func writeOp(offset, value, mask uint32) regops.Op {
	return regops.Op{Kind: regops.OP_WRITE_32, Type: regops.TYPE_GLOBAL, Offset: offset, ValueLo: value, MaskLo: mask}
}
