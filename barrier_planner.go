package framegraph

import "sort"

// lastUse tracks the most recent occupant of a physical slot as the
// planner walks the scheduled pass order.
type lastUse struct {
	logical   ResourceHandle
	usageBits uint32
	domain    PipelineDomain
	access    AccessType
	valid     bool
}

func toAccess(hasRead, hasWrite bool) AccessType {
	switch {
	case hasRead && hasWrite:
		return AccessReadWrite
	case hasWrite:
		return AccessWrite
	default:
		return AccessRead
	}
}

func needsUAVLike(kind ResourceKind, usageBits uint32) bool {
	if kind == ResourceKindImage {
		return usageBits&uint32(ImageUsageStorage) != 0
	}
	return usageBits&uint32(BufferUsageStorage) != 0
}

// rw coalesces a pass's read/write touches of one logical resource.
type rw struct {
	read, write bool
	usage       uint32
}

// sortedTouchedHandles returns a pass's touched handles in ascending
// order, so barrier emission is deterministic regardless of Go's
// unordered map iteration.
func sortedTouchedHandles(touches map[ResourceHandle]rw) []ResourceHandle {
	handles := make([]ResourceHandle, 0, len(touches))
	for h := range touches {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })
	return handles
}

// planBarriers walks the scheduled pass order, coalesces each pass's
// touches per logical resource, and emits aliasing/transition/UAV ops
// against the per-physical-slot last-use state, then flattens the
// per-pass scratch lists into the column-oriented BarrierPlan.
func (s *System) planBarriers(sortedPasses []PassHandle, imagePhysical, bufferPhysical PhysicalResourceMeta) BarrierPlan {
	passCount := len(s.passes)
	scratch := make([][]BarrierOp, passCount)

	lastImageUse := make([]lastUse, imagePhysical.SlotCount())
	lastBufferUse := make([]lastUse, bufferPhysical.SlotCount())

	log := s.log()
	resourceName := func(kind ResourceKind, h ResourceHandle) string {
		if kind == ResourceKindBuffer {
			return s.buffers.Name(h)
		}
		return s.images.Name(h)
	}

	insert := func(pass PassHandle, kind ResourceKind, logical, physical ResourceHandle, access AccessType, usageBits uint32) {
		if physical == InvalidResourceHandle {
			return
		}
		lastVec := lastImageUse
		if kind == ResourceKindBuffer {
			lastVec = lastBufferUse
		}
		if int(physical) >= len(lastVec) {
			return
		}
		last := &lastVec[physical]

		if last.valid && last.logical != logical {
			scratch[pass] = append(scratch[pass], BarrierOp{
				Type:         BarrierOpAliasing,
				Kind:         kind,
				Logical:      logical,
				PrevLogical:  last.logical,
				Physical:     physical,
				DstUsageBits: usageBits,
			})
			log.Debug("framegraph: aliasing barrier", "name", resourceName(kind, logical), "pass", pass, "physical", physical)
		}

		if last.valid {
			changed := last.usageBits != usageBits || last.access != access || last.domain != PipelineDomainAny
			if changed {
				scratch[pass] = append(scratch[pass], BarrierOp{
					Type:         BarrierOpTransition,
					Kind:         kind,
					Logical:      logical,
					Physical:     physical,
					SrcDomain:    last.domain,
					DstDomain:    PipelineDomainAny,
					SrcAccess:    last.access,
					DstAccess:    access,
					SrcUsageBits: last.usageBits,
					DstUsageBits: usageBits,
				})
				log.Debug("framegraph: transition barrier", "name", resourceName(kind, logical), "pass", pass, "physical", physical)
			}

			if last.access != AccessRead && needsUAVLike(kind, usageBits) {
				scratch[pass] = append(scratch[pass], BarrierOp{
					Type:         BarrierOpUAV,
					Kind:         kind,
					Logical:      logical,
					Physical:     physical,
					DstUsageBits: usageBits,
				})
				log.Debug("framegraph: uav barrier", "name", resourceName(kind, logical), "pass", pass, "physical", physical)
			}
		}

		last.valid = true
		last.logical = logical
		last.access = access
		last.domain = PipelineDomainAny
		last.usageBits = usageBits
	}

	for _, pass := range sortedPasses {
		imageTouches := map[ResourceHandle]rw{}
		rb, re := s.imageReads.rangeOf(pass)
		for j := rb; j < re; j++ {
			h := s.imageReads.handles[j]
			t := imageTouches[h]
			t.read = true
			t.usage |= s.imageReads.usageBits[j]
			imageTouches[h] = t
		}
		wb, we := s.imageWrites.rangeOf(pass)
		for j := wb; j < we; j++ {
			h := s.imageWrites.handles[j]
			t := imageTouches[h]
			t.write = true
			t.usage |= s.imageWrites.usageBits[j]
			imageTouches[h] = t
		}
		for _, logical := range sortedTouchedHandles(imageTouches) {
			t := imageTouches[logical]
			physical := InvalidResourceHandle
			if int(logical) < len(imagePhysical.HandleToPhysical) {
				physical = imagePhysical.HandleToPhysical[logical]
			}
			insert(pass, ResourceKindImage, logical, physical, toAccess(t.read, t.write), t.usage)
		}

		bufferTouches := map[ResourceHandle]rw{}
		rb, re = s.bufferReads.rangeOf(pass)
		for j := rb; j < re; j++ {
			h := s.bufferReads.handles[j]
			t := bufferTouches[h]
			t.read = true
			t.usage |= s.bufferReads.usageBits[j]
			bufferTouches[h] = t
		}
		wb, we = s.bufferWrites.rangeOf(pass)
		for j := wb; j < we; j++ {
			h := s.bufferWrites.handles[j]
			t := bufferTouches[h]
			t.write = true
			t.usage |= s.bufferWrites.usageBits[j]
			bufferTouches[h] = t
		}
		for _, logical := range sortedTouchedHandles(bufferTouches) {
			t := bufferTouches[logical]
			physical := InvalidResourceHandle
			if int(logical) < len(bufferPhysical.HandleToPhysical) {
				physical = bufferPhysical.HandleToPhysical[logical]
			}
			insert(pass, ResourceKindBuffer, logical, physical, toAccess(t.read, t.write), t.usage)
		}
	}

	return flattenBarrierPlan(passCount, scratch)
}

func flattenBarrierPlan(passCount int, scratch [][]BarrierOp) BarrierPlan {
	var plan BarrierPlan
	plan.PassBegins = make([]uint32, passCount+1)
	plan.PassLengths = make([]uint32, passCount)

	var running uint32
	for p := 0; p < passCount; p++ {
		plan.PassBegins[p] = running
		plan.PassLengths[p] = uint32(len(scratch[p]))
		running += plan.PassLengths[p]
	}
	plan.PassBegins[passCount] = running

	plan.Types = make([]BarrierOpType, running)
	plan.Kinds = make([]ResourceKind, running)
	plan.Logicals = make([]ResourceHandle, running)
	plan.Physicals = make([]ResourceHandle, running)
	plan.SrcDomains = make([]PipelineDomain, running)
	plan.DstDomains = make([]PipelineDomain, running)
	plan.SrcAccesses = make([]AccessType, running)
	plan.DstAccesses = make([]AccessType, running)
	plan.SrcUsageBits = make([]uint32, running)
	plan.DstUsageBits = make([]uint32, running)
	plan.PrevLogicals = make([]ResourceHandle, running)

	for p := 0; p < passCount; p++ {
		base := plan.PassBegins[p]
		for i, op := range scratch[p] {
			idx := base + uint32(i)
			plan.Types[idx] = op.Type
			plan.Kinds[idx] = op.Kind
			plan.Logicals[idx] = op.Logical
			plan.Physicals[idx] = op.Physical
			plan.SrcDomains[idx] = op.SrcDomain
			plan.DstDomains[idx] = op.DstDomain
			plan.SrcAccesses[idx] = op.SrcAccess
			plan.DstAccesses[idx] = op.DstAccess
			plan.SrcUsageBits[idx] = op.SrcUsageBits
			plan.DstUsageBits[idx] = op.DstUsageBits
			plan.PrevLogicals[idx] = op.PrevLogical
		}
	}

	return plan
}
