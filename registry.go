package framegraph

// ImageRegistry stores per-image creation descriptors in column-oriented
// (SoA) form, indexed by ResourceHandle. It never stores image pixels or
// native handles — only the metadata a Backend needs to realize physical
// resources later.
type ImageRegistry struct {
	names        []string
	formats      []ImageFormat
	extents      []Extent3D
	usages       []ImageUsage
	types        []ImageType
	flags        []ImageFlags
	mipLevels    []uint32
	arrayLayers  []uint32
	sampleCounts []uint32
	imported     []bool
	transient    []bool
}

func (r *ImageRegistry) add(info ImageInfo) ResourceHandle {
	h := ResourceHandle(len(r.names))
	r.names = append(r.names, info.Name)
	r.formats = append(r.formats, info.Format)
	r.extents = append(r.extents, info.Extent)
	r.usages = append(r.usages, info.Usage)
	r.types = append(r.types, info.Type)
	r.flags = append(r.flags, info.Flags)
	r.mipLevels = append(r.mipLevels, info.MipLevels)
	r.arrayLayers = append(r.arrayLayers, info.ArrayLayers)
	r.sampleCounts = append(r.sampleCounts, info.SampleCount)
	r.imported = append(r.imported, info.Imported)
	r.transient = append(r.transient, !info.Imported)
	return h
}

// Count returns the number of registered images.
func (r *ImageRegistry) Count() int { return len(r.names) }

// Name returns the debug name of an image handle.
func (r *ImageRegistry) Name(h ResourceHandle) string { return r.names[h] }

// Imported reports whether an image handle was registered as imported.
func (r *ImageRegistry) Imported(h ResourceHandle) bool { return r.imported[h] }

// Info reconstructs the ImageInfo a handle was created with.
func (r *ImageRegistry) Info(h ResourceHandle) ImageInfo {
	return ImageInfo{
		Name:        r.names[h],
		Format:      r.formats[h],
		Extent:      r.extents[h],
		Usage:       r.usages[h],
		Type:        r.types[h],
		Flags:       r.flags[h],
		MipLevels:   r.mipLevels[h],
		ArrayLayers: r.arrayLayers[h],
		SampleCount: r.sampleCounts[h],
		Imported:    r.imported[h],
	}
}

// Compatible reports whether two image handles have identical descriptors
// and may therefore share a physical slot. Out-of-range handles are never
// compatible.
func (r *ImageRegistry) Compatible(a, b ResourceHandle) bool {
	count := ResourceHandle(len(r.names))
	if a >= count || b >= count {
		return false
	}
	return r.formats[a] == r.formats[b] &&
		r.extents[a] == r.extents[b] &&
		r.usages[a] == r.usages[b] &&
		r.types[a] == r.types[b] &&
		r.flags[a] == r.flags[b] &&
		r.mipLevels[a] == r.mipLevels[b] &&
		r.arrayLayers[a] == r.arrayLayers[b] &&
		r.sampleCounts[a] == r.sampleCounts[b]
}

func (r *ImageRegistry) clear() {
	r.names = r.names[:0]
	r.formats = r.formats[:0]
	r.extents = r.extents[:0]
	r.usages = r.usages[:0]
	r.types = r.types[:0]
	r.flags = r.flags[:0]
	r.mipLevels = r.mipLevels[:0]
	r.arrayLayers = r.arrayLayers[:0]
	r.sampleCounts = r.sampleCounts[:0]
	r.imported = r.imported[:0]
	r.transient = r.transient[:0]
}

// BufferRegistry stores per-buffer creation descriptors in column-oriented
// form, indexed by ResourceHandle.
type BufferRegistry struct {
	names    []string
	sizes    []uint64
	usages   []BufferUsage
	imported []bool
	transient []bool
}

func (r *BufferRegistry) add(info BufferInfo) ResourceHandle {
	h := ResourceHandle(len(r.names))
	r.names = append(r.names, info.Name)
	r.sizes = append(r.sizes, info.Size)
	r.usages = append(r.usages, info.Usage)
	r.imported = append(r.imported, info.Imported)
	r.transient = append(r.transient, !info.Imported)
	return h
}

// Count returns the number of registered buffers.
func (r *BufferRegistry) Count() int { return len(r.names) }

// Name returns the debug name of a buffer handle.
func (r *BufferRegistry) Name(h ResourceHandle) string { return r.names[h] }

// Imported reports whether a buffer handle was registered as imported.
func (r *BufferRegistry) Imported(h ResourceHandle) bool { return r.imported[h] }

// Info reconstructs the BufferInfo a handle was created with.
func (r *BufferRegistry) Info(h ResourceHandle) BufferInfo {
	return BufferInfo{
		Name:     r.names[h],
		Size:     r.sizes[h],
		Usage:    r.usages[h],
		Imported: r.imported[h],
	}
}

// Compatible reports whether two buffer handles have identical size and
// usage and may therefore share a physical slot.
func (r *BufferRegistry) Compatible(a, b ResourceHandle) bool {
	count := ResourceHandle(len(r.names))
	if a >= count || b >= count {
		return false
	}
	return r.sizes[a] == r.sizes[b] && r.usages[a] == r.usages[b]
}

func (r *BufferRegistry) clear() {
	r.names = r.names[:0]
	r.sizes = r.sizes[:0]
	r.usages = r.usages[:0]
	r.imported = r.imported[:0]
	r.transient = r.transient[:0]
}
