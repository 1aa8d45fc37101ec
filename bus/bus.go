package bus

type Access int

const (
	ACCESS_READ Access = iota
	ACCESS_WRITE
)

// Bus is the raw register aperture. Offsets are byte offsets into the
// device's register space and are always word aligned by the caller.
type Bus interface {
	Read32(addr uint32) (uint32, error)
	Write32(addr uint32, value uint32) error
}

type Trace struct {
	Access Access
	Addr   uint32
	Value  uint32
}

func (a Access) String() string {
	switch a {
	case ACCESS_READ:
		return "read"
	case ACCESS_WRITE:
		return "write"
	}
	return "unknown"
}
