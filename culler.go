package framegraph

// cullPasses computes the live-pass set by reverse reachability from the
// declared outputs: seed the worklist with the producers of each
// output's latest version, then propagate backward along every read a
// live pass makes (writes are not traversed — the next reader's read
// entry already supplies that edge).
func (s *System) cullPasses(producers producerMap, imgReads, bufReads []VersionedHandle) []bool {
	passCount := len(s.passes)
	active := make([]bool, passCount)

	worklist := make([]PassHandle, 0, passCount)
	enqueue := func(p PassHandle) {
		if p == InvalidPass || int(p) >= passCount {
			return
		}
		if !active[p] {
			active[p] = true
			worklist = append(worklist, p)
		}
	}

	for _, img := range s.outputs.images {
		if int(img) < len(producers.imgLatest) {
			enqueue(producers.imageProducer(producers.imgLatest[img]))
		}
	}
	for _, buf := range s.outputs.buffers {
		if int(buf) < len(producers.bufLatest) {
			enqueue(producers.bufferProducer(producers.bufLatest[buf]))
		}
	}

	for len(worklist) > 0 {
		p := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		rb, re := s.imageReads.rangeOf(p)
		for j := rb; j < re; j++ {
			enqueue(producers.imageProducer(imgReads[j]))
		}

		rb, re = s.bufferReads.rangeOf(p)
		for j := rb; j < re; j++ {
			enqueue(producers.bufferProducer(bufReads[j]))
		}
	}

	return active
}
