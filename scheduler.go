package framegraph

// scheduleTopological runs Kahn's algorithm over the live subgraph of g:
// enqueue all live zero-in-degree passes, pop, append to the order,
// decrement successors' in-degree, enqueue newly-zero successors.
// Ties break FIFO, i.e. registration order among ready passes.
func scheduleTopological(g dag, active []bool) ([]PassHandle, error) {
	passCount := len(active)

	inDegrees := make([]uint32, passCount)
	copy(inDegrees, g.inDegrees)

	queue := make([]PassHandle, 0, passCount)
	for p := 0; p < passCount; p++ {
		if active[p] && inDegrees[p] == 0 {
			queue = append(queue, PassHandle(p))
		}
	}

	sorted := make([]PassHandle, 0, passCount)
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		sorted = append(sorted, p)

		for _, to := range g.successors(p) {
			inDegrees[to]--
			if inDegrees[to] == 0 {
				queue = append(queue, to)
			}
		}
	}

	liveCount := countTrue(active)
	if len(sorted) != liveCount {
		return nil, wrapf(ErrCycle, "schedule: ordered %d of %d live passes", len(sorted), liveCount)
	}
	return sorted, nil
}
