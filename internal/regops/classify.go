package regops

import (
	"errors"

	"github.com/wnxd/gpuregops/regops"
)

func classify(op *regops.Op) error {
	var errs []error
	if !op.Kind.Valid() {
		op.Status |= regops.STATUS_UNSUPPORTED_OP
		errs = append(errs, regops.ErrWrongKind)
	}
	if !op.Type.Valid() {
		op.Status |= regops.STATUS_INVALID_TYPE
		errs = append(errs, regops.ErrWrongScope)
	}
	return errors.Join(errs...)
}
