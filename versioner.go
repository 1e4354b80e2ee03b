package framegraph

// runSetupFuncs resets the dependency arenas for the currently registered
// passes and invokes each pass's SetupFunc in registration order,
// capturing each pass's per-kind begin offset as it starts.
func (s *System) runSetupFuncs() {
	passCount := len(s.passes)

	s.imageReads.reset(passCount)
	s.imageWrites.reset(passCount)
	s.bufferReads.reset(passCount)
	s.bufferWrites.reset(passCount)
	s.outputs.clear()

	for i := range s.passes {
		p := PassHandle(i)

		s.imageReads.begins[p] = uint32(len(s.imageReads.handles))
		s.imageWrites.begins[p] = uint32(len(s.imageWrites.handles))
		s.bufferReads.begins[p] = uint32(len(s.bufferReads.handles))
		s.bufferWrites.begins[p] = uint32(len(s.bufferWrites.handles))

		if setup := s.passes[i].setup; setup != nil {
			ctx := &SetupContext{sys: s, pass: p}
			setup(ctx)
		}
	}
}

// assignVersions derives versioned read/write handles from the
// declaration-order dependency arenas. Setup only deals in
// ResourceHandle; this is where versions enter the picture for every
// downstream stage. Reads bind to the latest prior write in declaration
// order — the only total order available before scheduling exists.
func (s *System) assignVersions() (imgReads, imgWrites, bufReads, bufWrites []VersionedHandle, imageVersions, bufferVersions []VersionHandle) {
	imageCount := s.images.Count()
	bufferCount := s.buffers.Count()

	imgReads = make([]VersionedHandle, len(s.imageReads.handles))
	imgWrites = make([]VersionedHandle, len(s.imageWrites.handles))
	bufReads = make([]VersionedHandle, len(s.bufferReads.handles))
	bufWrites = make([]VersionedHandle, len(s.bufferWrites.handles))

	imageNextVersion := make([]VersionHandle, imageCount)
	bufferNextVersion := make([]VersionHandle, bufferCount)

	for i := range s.passes {
		p := PassHandle(i)

		rb, re := s.imageReads.rangeOf(p)
		for j := rb; j < re; j++ {
			h := s.imageReads.handles[j]
			if int(h) >= imageCount {
				imgReads[j] = InvalidVersionedHandle
				continue
			}
			next := imageNextVersion[h]
			if next == 0 {
				imgReads[j] = InvalidVersionedHandle
				continue
			}
			imgReads[j] = packHandle(h, next-1)
		}

		wb, we := s.imageWrites.rangeOf(p)
		for j := wb; j < we; j++ {
			h := s.imageWrites.handles[j]
			if int(h) >= imageCount {
				imgWrites[j] = InvalidVersionedHandle
				continue
			}
			imgWrites[j] = packHandle(h, imageNextVersion[h])
			imageNextVersion[h]++
		}

		rb, re = s.bufferReads.rangeOf(p)
		for j := rb; j < re; j++ {
			h := s.bufferReads.handles[j]
			if int(h) >= bufferCount {
				bufReads[j] = InvalidVersionedHandle
				continue
			}
			next := bufferNextVersion[h]
			if next == 0 {
				bufReads[j] = InvalidVersionedHandle
				continue
			}
			bufReads[j] = packHandle(h, next-1)
		}

		wb, we = s.bufferWrites.rangeOf(p)
		for j := wb; j < we; j++ {
			h := s.bufferWrites.handles[j]
			if int(h) >= bufferCount {
				bufWrites[j] = InvalidVersionedHandle
				continue
			}
			bufWrites[j] = packHandle(h, bufferNextVersion[h])
			bufferNextVersion[h]++
		}
	}

	return imgReads, imgWrites, bufReads, bufWrites, imageNextVersion, bufferNextVersion
}
