package regops

// CtxBackend applies context relative operations to saved context state.
// ExecCtxOps receives the whole batch and skips non-context entries itself.
type CtxBackend interface {
	ContextReady() bool
	ExecCtxOps(ops []Op, ctxWrites, ctxReads uint32) error
}
