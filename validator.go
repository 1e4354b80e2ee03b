package framegraph

// validate runs over live passes only and checks:
//  1. at least one output was declared;
//  2. every read/write handle is in range;
//  3. every write produced a defined versioned handle;
//  4. every read's producer exists, unless the resource is imported.
//
// Point 4 also covers the case where a write defines a versioned handle
// but its producer-map slot was never filled (only reachable via a
// corrupted/forged handle slipping past registration): that is folded
// into the same "producer missing" check and is fatal unless imported,
// matching the read-before-write policy exactly.
func (s *System) validate(active []bool, producers producerMap, imgReads, bufReads, imgWrites, bufWrites []VersionedHandle) error {
	if len(s.outputs.images) == 0 && len(s.outputs.buffers) == 0 {
		return wrapf(ErrNoOutputs, "validate")
	}

	imageCount := s.images.Count()
	bufferCount := s.buffers.Count()

	for i := range s.passes {
		if !active[i] {
			continue
		}
		p := PassHandle(i)

		rb, re := s.imageReads.rangeOf(p)
		for j := rb; j < re; j++ {
			h := s.imageReads.handles[j]
			if int(h) >= imageCount {
				return wrapf(ErrOutOfRangeHandle, "validate: image read at pass %d", p)
			}
			vh := imgReads[j]
			imported := s.images.Imported(h)
			if vh == InvalidVersionedHandle {
				if !imported {
					return wrapf(ErrReadBeforeWrite, "validate: image %q (pass %d)", s.images.Name(h), p)
				}
				continue
			}
			if producers.imageProducer(vh) == InvalidPass && !imported {
				return wrapf(ErrReadBeforeWrite, "validate: image %q (pass %d)", s.images.Name(h), p)
			}
		}

		rb, re = s.bufferReads.rangeOf(p)
		for j := rb; j < re; j++ {
			h := s.bufferReads.handles[j]
			if int(h) >= bufferCount {
				return wrapf(ErrOutOfRangeHandle, "validate: buffer read at pass %d", p)
			}
			vh := bufReads[j]
			imported := s.buffers.Imported(h)
			if vh == InvalidVersionedHandle {
				if !imported {
					return wrapf(ErrReadBeforeWrite, "validate: buffer %q (pass %d)", s.buffers.Name(h), p)
				}
				continue
			}
			if producers.bufferProducer(vh) == InvalidPass && !imported {
				return wrapf(ErrReadBeforeWrite, "validate: buffer %q (pass %d)", s.buffers.Name(h), p)
			}
		}

		wb, we := s.imageWrites.rangeOf(p)
		for j := wb; j < we; j++ {
			h := s.imageWrites.handles[j]
			if int(h) >= imageCount {
				return wrapf(ErrOutOfRangeHandle, "validate: image write at pass %d", p)
			}
			if imgWrites[j] == InvalidVersionedHandle {
				return wrapf(ErrUndefinedWrite, "validate: image %q (pass %d)", s.images.Name(h), p)
			}
		}

		wb, we = s.bufferWrites.rangeOf(p)
		for j := wb; j < we; j++ {
			h := s.bufferWrites.handles[j]
			if int(h) >= bufferCount {
				return wrapf(ErrOutOfRangeHandle, "validate: buffer write at pass %d", p)
			}
			if bufWrites[j] == InvalidVersionedHandle {
				return wrapf(ErrUndefinedWrite, "validate: buffer %q (pass %d)", s.buffers.Name(h), p)
			}
		}
	}

	return nil
}
