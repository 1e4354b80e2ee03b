package framegraph

// PhysicalResourceMeta is the result of aliasing for one resource kind:
// a list of physical slots, each carrying a representative logical
// handle (the descriptor the slot was allocated for), plus the
// logical-to-physical mapping used to build the barrier plan.
type PhysicalResourceMeta struct {
	// Representatives holds, per physical slot, the logical handle whose
	// descriptor the slot was allocated for.
	Representatives []ResourceHandle

	// HandleToPhysical maps every logical handle to its physical slot.
	// InvalidResourceHandle means the resource was never touched by a
	// live pass and has no slot.
	HandleToPhysical []ResourceHandle
}

func (m *PhysicalResourceMeta) clear() {
	m.Representatives = m.Representatives[:0]
	m.HandleToPhysical = m.HandleToPhysical[:0]
}

// SlotCount returns the number of physical slots images or buffers were
// packed into.
func (m *PhysicalResourceMeta) SlotCount() int { return len(m.Representatives) }

// Plan is the output of a successful Compile: the pass order the backend
// will see, the per-pass barrier table, and the aliasing result for both
// resource kinds. It is returned for introspection/testing; System also
// keeps it as its internal compiled state for Execute.
type Plan struct {
	SortedPasses   []PassHandle
	Barriers       BarrierPlan
	ImagePhysical  PhysicalResourceMeta
	BufferPhysical PhysicalResourceMeta
}
