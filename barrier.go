package framegraph

// ResourceKind distinguishes images from buffers in the barrier plan,
// since the two occupy independent handle spaces.
type ResourceKind uint8

const (
	ResourceKindImage ResourceKind = iota
	ResourceKindBuffer
)

func (k ResourceKind) String() string {
	if k == ResourceKindBuffer {
		return "buffer"
	}
	return "image"
}

// AccessType is the coalesced read/write intent a pass has on a resource.
type AccessType uint8

const (
	AccessRead AccessType = iota
	AccessWrite
	AccessReadWrite
)

// PipelineDomain is a coarse pipeline domain hint. Concrete backends may
// ignore or refine it; the planner never emits anything but
// PipelineDomainAny for DstDomain (see planBarriers).
type PipelineDomain uint8

const (
	PipelineDomainAny PipelineDomain = iota
	PipelineDomainGraphics
	PipelineDomainCompute
	PipelineDomainCopy
)

// BarrierOpType is the kind of synchronization directive a BarrierOp
// represents. Backends lower each into driver-specific primitives
// (Vulkan barriers, D3D12 resource-state transitions + fences, Metal
// fences/events).
type BarrierOpType uint8

const (
	BarrierOpTransition BarrierOpType = iota
	BarrierOpUAV
	BarrierOpAliasing
)

// BarrierOp is an API-agnostic synchronization directive bound to one
// consumer pass and one logical resource.
type BarrierOp struct {
	Type BarrierOpType
	Kind ResourceKind

	// Logical is the resource handle as declared by the user.
	Logical ResourceHandle

	// Physical is the aliasing slot id after aliasing — an index into
	// PhysicalResourceMeta, not an API object handle.
	Physical ResourceHandle

	SrcDomain PipelineDomain
	DstDomain PipelineDomain

	SrcAccess AccessType
	DstAccess AccessType

	// SrcUsageBits/DstUsageBits hold ImageUsage bits for image ops and
	// BufferUsage bits for buffer ops.
	SrcUsageBits uint32
	DstUsageBits uint32

	// PrevLogical is set on BarrierOpAliasing ops: the previous logical
	// resource that occupied Physical before Logical took it over.
	PrevLogical ResourceHandle
}

// BarrierPlan is the flattened, column-oriented per-pass barrier table
// produced by Compile. Pass p's ops occupy
// [PassBegins[p], PassBegins[p]+PassLengths[p]) across the parallel
// field arrays.
type BarrierPlan struct {
	PassBegins  []uint32
	PassLengths []uint32

	Types        []BarrierOpType
	Kinds        []ResourceKind
	Logicals     []ResourceHandle
	Physicals    []ResourceHandle
	SrcDomains   []PipelineDomain
	DstDomains   []PipelineDomain
	SrcAccesses  []AccessType
	DstAccesses  []AccessType
	SrcUsageBits []uint32
	DstUsageBits []uint32
	PrevLogicals []ResourceHandle
}

func (p *BarrierPlan) clear() {
	p.PassBegins = p.PassBegins[:0]
	p.PassLengths = p.PassLengths[:0]
	p.Types = p.Types[:0]
	p.Kinds = p.Kinds[:0]
	p.Logicals = p.Logicals[:0]
	p.Physicals = p.Physicals[:0]
	p.SrcDomains = p.SrcDomains[:0]
	p.DstDomains = p.DstDomains[:0]
	p.SrcAccesses = p.SrcAccesses[:0]
	p.DstAccesses = p.DstAccesses[:0]
	p.SrcUsageBits = p.SrcUsageBits[:0]
	p.DstUsageBits = p.DstUsageBits[:0]
	p.PrevLogicals = p.PrevLogicals[:0]
}

// Range returns the [begin, end) index range of pass's ops within the
// field arrays.
func (p *BarrierPlan) Range(pass PassHandle) (begin, end uint32) {
	begin = p.PassBegins[pass]
	return begin, begin + p.PassLengths[pass]
}

// Op reconstructs the BarrierOp at a flat index, as returned by Range.
func (p *BarrierPlan) Op(idx uint32) BarrierOp {
	return BarrierOp{
		Type:         p.Types[idx],
		Kind:         p.Kinds[idx],
		Logical:      p.Logicals[idx],
		Physical:     p.Physicals[idx],
		SrcDomain:    p.SrcDomains[idx],
		DstDomain:    p.DstDomains[idx],
		SrcAccess:    p.SrcAccesses[idx],
		DstAccess:    p.DstAccesses[idx],
		SrcUsageBits: p.SrcUsageBits[idx],
		DstUsageBits: p.DstUsageBits[idx],
		PrevLogical:  p.PrevLogicals[idx],
	}
}

// ForPass calls fn once for every BarrierOp in pass's range, in emission
// order (aliasing before transition before UAV when all three exist for
// the same touch, but no composite ordering beyond emission order is
// contractually promised).
func (p *BarrierPlan) ForPass(pass PassHandle, fn func(BarrierOp)) {
	begin, end := p.Range(pass)
	for i := begin; i < end; i++ {
		fn(p.Op(i))
	}
}
