package framegraph

import "sort"

// dag is the CSR-encoded pass dependency graph: pass p's outgoing edges
// occupy adjacency[adjacencyBegins[p] : adjacencyBegins[p+1]].
type dag struct {
	adjacency       []PassHandle
	adjacencyBegins []uint32
	inDegrees       []uint32
	outDegrees      []uint32
}

func (g *dag) clear() {
	g.adjacency = nil
	g.adjacencyBegins = nil
	g.inDegrees = nil
	g.outDegrees = nil
}

func (g *dag) successors(p PassHandle) []PassHandle {
	begin := g.adjacencyBegins[p]
	end := g.adjacencyBegins[p+1]
	return g.adjacency[begin:end]
}

// buildDAG emits an edge producer->consumer for every read a live
// consumer makes whose producer is itself live and distinct from the
// consumer, deduplicates per source, and flattens into CSR form.
func (s *System) buildDAG(active []bool, producers producerMap, imgReads, bufReads []VersionedHandle) dag {
	passCount := len(s.passes)
	outgoing := make([][]PassHandle, passCount)

	addEdge := func(from, to PassHandle) {
		if from == InvalidPass || to == InvalidPass {
			return
		}
		if int(from) >= passCount || int(to) >= passCount {
			return
		}
		if from == to {
			return
		}
		if !active[from] || !active[to] {
			return
		}
		outgoing[from] = append(outgoing[from], to)
	}

	for i := range s.passes {
		consumer := PassHandle(i)
		if !active[consumer] {
			continue
		}

		rb, re := s.imageReads.rangeOf(consumer)
		for j := rb; j < re; j++ {
			addEdge(producers.imageProducer(imgReads[j]), consumer)
		}

		rb, re = s.bufferReads.rangeOf(consumer)
		for j := rb; j < re; j++ {
			addEdge(producers.bufferProducer(bufReads[j]), consumer)
		}
	}

	var g dag
	g.adjacencyBegins = make([]uint32, passCount+1)
	g.inDegrees = make([]uint32, passCount)
	g.outDegrees = make([]uint32, passCount)

	for from := range outgoing {
		list := outgoing[from]
		sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
		list = dedupSorted(list)
		outgoing[from] = list
		g.outDegrees[from] = uint32(len(list))
		for _, to := range list {
			g.inDegrees[to]++
		}
	}

	var running uint32
	for from := 0; from < passCount; from++ {
		g.adjacencyBegins[from] = running
		g.adjacency = append(g.adjacency, outgoing[from]...)
		running = uint32(len(g.adjacency))
	}
	g.adjacencyBegins[passCount] = running

	return g
}

func dedupSorted(list []PassHandle) []PassHandle {
	if len(list) < 2 {
		return list
	}
	out := list[:1]
	for _, v := range list[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// ValidateAcyclic is a standalone cycle check over a DAG and an
// active-pass set, independent of Compile/Scheduler. It exists for tests
// and embedders that want to re-verify a plan's acyclicity without
// recompiling.
func ValidateAcyclic(passCount int, inDegrees []uint32, adjacencyBegins []uint32, adjacency []PassHandle, active []bool) error {
	if len(inDegrees) != passCount || len(adjacencyBegins) != passCount+1 || len(active) != passCount {
		return wrapf(ErrCycle, "validate acyclic: shape mismatch")
	}

	inDegreesCopy := make([]uint32, passCount)
	copy(inDegreesCopy, inDegrees)

	queue := make([]PassHandle, 0, passCount)
	for p := 0; p < passCount; p++ {
		if active[p] && inDegreesCopy[p] == 0 {
			queue = append(queue, PassHandle(p))
		}
	}

	visited := 0
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		visited++

		begin := adjacencyBegins[p]
		end := adjacencyBegins[p+1]
		for _, to := range adjacency[begin:end] {
			if !active[to] {
				continue
			}
			inDegreesCopy[to]--
			if inDegreesCopy[to] == 0 {
				queue = append(queue, to)
			}
		}
	}

	liveCount := countTrue(active)
	if visited != liveCount {
		return wrapf(ErrCycle, "validate acyclic: visited %d of %d live passes", visited, liveCount)
	}
	return nil
}
