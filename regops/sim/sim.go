package sim

import (
	internal "github.com/wnxd/gpuregops/internal/regops/sim"
	"github.com/wnxd/gpuregops/regops"
)

var _ = regops.Register(regops.GEN_SIM, internal.NewSimEngine)
