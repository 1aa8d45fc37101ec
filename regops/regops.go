package regops

import (
	"github.com/wnxd/gpuregops/bus"
)

type Engine interface {
	Gen() Gen
	// Exec validates ops in place and, when the batch is accepted, applies
	// them. Validation failures are reported through the status of each op
	// and Outcome.Errs; the returned error is reserved for a rejected batch
	// or a fatal execution failure.
	Exec(ops []Op, hasCtx, allowOverride bool, binding *Binding, mode Mode) (Outcome, error)
	// Validate runs only the validation pass. Without a topology it is
	// idempotent; with one, offsets are rewritten in place, so validating
	// the same ops twice translates them twice.
	Validate(ops []Op, hasCtx, allowOverride bool, binding *Binding, mode Mode) Outcome
	// IsGlobalOffsetAllowed consults the global allowlist only.
	IsGlobalOffsetAllowed(offset uint32) bool
}

type Config struct {
	Bus      bus.Bus
	Backend  CtxBackend
	Topology Topology
	Debug    bool
}

type Outcome struct {
	Accepted  bool
	AllPassed bool
	CtxReads  uint32
	CtxWrites uint32
	// Visited is the number of ops that went through validation. In
	// all-or-none mode validation stops at the first failure.
	Visited int
	// Errs holds the failure of each visited op, nil when it passed.
	Errs []error
}

func (o *Outcome) Failed() int {
	var n int
	for _, err := range o.Errs {
		if err != nil {
			n++
		}
	}
	return n
}
