package regops

// Topology describes the active hardware partition. Local chiplet indices
// are relative to the instance, logical ones to the whole device.
type Topology interface {
	Instance() uint32
	NumGPCs(inst uint32) uint32
	GPCLogicalID(inst, local uint32) uint32
	NumFBPs(inst uint32) uint32
	FBPLogicalID(inst, local uint32) uint32
	MemoryPartitioned(inst uint32) bool
}

type Instance struct {
	GPCs              []uint32
	FBPs              []uint32
	MemoryPartitioned bool
}

// Partition is a static Topology. GPCs and FBPs of each instance hold the
// logical id of every local index.
type Partition struct {
	Current   uint32
	Instances []Instance
}

const invalidID = ^uint32(0)

func (p *Partition) instance(inst uint32) *Instance {
	if int(inst) >= len(p.Instances) {
		return nil
	}
	return &p.Instances[inst]
}

func (p *Partition) Instance() uint32 {
	return p.Current
}

func (p *Partition) NumGPCs(inst uint32) uint32 {
	if i := p.instance(inst); i != nil {
		return uint32(len(i.GPCs))
	}
	return 0
}

func (p *Partition) GPCLogicalID(inst, local uint32) uint32 {
	if i := p.instance(inst); i != nil && int(local) < len(i.GPCs) {
		return i.GPCs[local]
	}
	return invalidID
}

func (p *Partition) GPCLocalID(inst, logical uint32) (uint32, bool) {
	return localID(p.instance(inst), logical, func(i *Instance) []uint32 { return i.GPCs })
}

func (p *Partition) NumFBPs(inst uint32) uint32 {
	if i := p.instance(inst); i != nil {
		return uint32(len(i.FBPs))
	}
	return 0
}

func (p *Partition) FBPLogicalID(inst, local uint32) uint32 {
	if i := p.instance(inst); i != nil && int(local) < len(i.FBPs) {
		return i.FBPs[local]
	}
	return invalidID
}

func (p *Partition) FBPLocalID(inst, logical uint32) (uint32, bool) {
	return localID(p.instance(inst), logical, func(i *Instance) []uint32 { return i.FBPs })
}

func (p *Partition) MemoryPartitioned(inst uint32) bool {
	if i := p.instance(inst); i != nil {
		return i.MemoryPartitioned
	}
	return false
}

func localID(i *Instance, logical uint32, ids func(*Instance) []uint32) (uint32, bool) {
	if i == nil {
		return 0, false
	}
	for local, id := range ids(i) {
		if id == logical {
			return uint32(local), true
		}
	}
	return 0, false
}
