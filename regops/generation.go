package regops

import "strings"

type Gen int

const (
	GEN_UNKNOWN Gen = iota
	GEN_SIM
)

type EngineCtor func(Config) (Engine, error)

var (
	engineMap = make(map[Gen]EngineCtor)
	genNames  = map[Gen]string{
		GEN_UNKNOWN: "unknown",
		GEN_SIM:     "sim",
	}
)

func Register(gen Gen, ctor EngineCtor) bool {
	if _, ok := engineMap[gen]; ok {
		return false
	}
	engineMap[gen] = ctor
	return true
}

func New(gen Gen, cfg Config) (Engine, error) {
	if cfg.Bus == nil {
		return nil, ErrArgumentInvalid
	}
	if ctor, ok := engineMap[gen]; ok {
		return ctor(cfg)
	}
	return nil, ErrGenerationUnsupported
}

func ParseGen(name string) (Gen, error) {
	for gen, n := range genNames {
		if gen != GEN_UNKNOWN && strings.EqualFold(n, name) {
			return gen, nil
		}
	}
	return GEN_UNKNOWN, ErrGenerationUnsupported
}

func (g Gen) String() string {
	if n, ok := genNames[g]; ok {
		return n
	}
	return "unknown"
}
