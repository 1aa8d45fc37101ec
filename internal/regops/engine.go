package regops

import (
	"github.com/wnxd/gpuregops/bus"
	"github.com/wnxd/gpuregops/regops"
)

type Space int

const (
	SPACE_GPC_PERFMON Space = iota
	SPACE_GPC_ROUTER
	SPACE_FBP_PERFMON
	SPACE_FBP_ROUTER
	SPACE_COUNT
)

// Window is a chiplet-strided perfmon address space.
type Window struct {
	Base   uint32
	Stride uint32
}

type Generation interface {
	regops.Engine
	GlobalRanges() []regops.Range
	ContextRanges() []regops.Range
	RunControl() []uint32
	Perfmon(Space) Window
	NumGPCs() uint32
	NumFBPs() uint32
}

type Engine struct {
	impl    Generation
	bus     bus.Bus
	backend regops.CtxBackend
	debug   bool
	allowlist
	translator
}

func (e *Engine) Init(impl Generation, cfg regops.Config) error {
	if cfg.Bus == nil {
		return regops.ErrArgumentInvalid
	}
	e.impl = impl
	e.bus = cfg.Bus
	e.backend = cfg.Backend
	e.debug = cfg.Debug
	if err := e.allowlist.ctor(impl); err != nil {
		return err
	}
	return e.translator.ctor(impl, cfg.Topology)
}

func (e *Engine) Exec(ops []regops.Op, hasCtx, allowOverride bool, binding *regops.Binding, mode regops.Mode) (regops.Outcome, error) {
	e.debugf("exec %d ops, mode %v", len(ops), mode)
	out := e.validateOps(ops, hasCtx, allowOverride, binding, mode)
	if !out.Accepted {
		e.errorf("invalid op(s)")
		return out, regops.ErrBatchRejected
	}
	if err := e.execOps(ops, hasCtx, &out); err != nil {
		e.warnf("failed to perform regops, err=%v", err)
		return out, err
	}
	return out, nil
}

func (e *Engine) Validate(ops []regops.Op, hasCtx, allowOverride bool, binding *regops.Binding, mode regops.Mode) regops.Outcome {
	return e.validateOps(ops, hasCtx, allowOverride, binding, mode)
}

func (e *Engine) IsGlobalOffsetAllowed(offset uint32) bool {
	return rangeSearch(e.allowlist.global, offset)
}
