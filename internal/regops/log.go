package regops

import "github.com/platinasystems/log"

func logf(priority, format string, args []any) {
	log.Printf(append([]any{priority, "regops: " + format}, args...)...)
}

func (e *Engine) errorf(format string, args ...any) {
	logf("err", format, args)
}

func (e *Engine) warnf(format string, args ...any) {
	logf("warn", format, args)
}

func (e *Engine) debugf(format string, args ...any) {
	if e.debug {
		logf("debug", format, args)
	}
}
