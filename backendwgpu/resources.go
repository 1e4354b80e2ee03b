package backendwgpu

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/framegraph"
)

type nativePair struct {
	texture uintptr
	view    uintptr
}

// BindImportedImage stashes a native texture/view pair for a logical
// image that Compile will later see declared as imported. It must be
// called before Compile; OnCompileResourceAllocation skips native
// allocation for any slot whose representative handle is imported and
// instead serves NativeImage from this stash.
func (b *Backend) BindImportedImage(logical framegraph.ResourceHandle, nativeImage, nativeView uintptr) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.importedImages[logical] = nativePair{texture: nativeImage, view: nativeView}
}

// BindImportedBuffer stashes a native buffer handle for a logical buffer
// that Compile will later see declared as imported.
func (b *Backend) BindImportedBuffer(logical framegraph.ResourceHandle, nativeBuffer uintptr) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.importedBuffers[logical] = nativeBuffer
}

// OnCompileResourceAllocation materializes a native texture and view for
// every non-imported image slot, and a native buffer for every
// non-imported buffer slot, in the physical layout Compile produced.
// Imported slots are served from the handles stashed by
// BindImportedImage / BindImportedBuffer instead; the aliaser never packs
// an imported resource alongside another, so a slot is either entirely
// imported or entirely owned by this Backend.
//
// A newly created texture starts in an undefined layout, and framegraph's
// barrier planner never emits a transition on a slot's first touch (see
// its Open Question decisions) — the pass that first writes it is
// expected to treat that usage as already current.
func (b *Backend) OnCompileResourceAllocation(images *framegraph.ImageRegistry, buffers *framegraph.BufferRegistry, imagePhysical, bufferPhysical framegraph.PhysicalResourceMeta) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.destroyPhysicalSlotsLocked()
	b.images = images
	b.buffers = buffers
	b.imagePhysical = imagePhysical
	b.bufferPhysical = bufferPhysical

	b.imageSlots = make([]hal.Texture, imagePhysical.SlotCount())
	b.imageViews = make([]hal.TextureView, imagePhysical.SlotCount())
	for slot, rep := range imagePhysical.Representatives {
		if images.Imported(rep) {
			continue
		}
		info := images.Info(rep)
		tex, view, err := b.createTexture(info)
		if err != nil {
			b.logger.Warn("backendwgpu: create texture failed", "slot", slot, "name", info.Name, "error", err)
			continue
		}
		b.imageSlots[slot] = tex
		b.imageViews[slot] = view
	}

	b.bufferSlots = make([]hal.Buffer, bufferPhysical.SlotCount())
	for slot, rep := range bufferPhysical.Representatives {
		if buffers.Imported(rep) {
			continue
		}
		info := buffers.Info(rep)
		buf, err := b.createBuffer(info)
		if err != nil {
			b.logger.Warn("backendwgpu: create buffer failed", "slot", slot, "name", info.Name, "error", err)
			continue
		}
		b.bufferSlots[slot] = buf
	}
}

// NativeImage returns the native texture/view pointers backing a logical
// image handle: either a stashed imported pair, or the native handles of
// the physical slot the aliaser assigned it.
func (b *Backend) NativeImage(logical framegraph.ResourceHandle) (texture, view uintptr, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if pair, ok := b.importedImages[logical]; ok {
		return pair.texture, pair.view, true
	}
	if int(logical) >= len(b.imagePhysical.HandleToPhysical) {
		return 0, 0, false
	}
	slot := b.imagePhysical.HandleToPhysical[logical]
	if slot == framegraph.InvalidResourceHandle || int(slot) >= len(b.imageSlots) {
		return 0, 0, false
	}
	tex, view2 := b.imageSlots[slot], b.imageViews[slot]
	if tex == nil || view2 == nil {
		return 0, 0, false
	}
	return tex.NativeHandle(), view2.NativeHandle(), true
}

// NativeBuffer returns the native buffer pointer backing a logical buffer
// handle, analogous to NativeImage.
func (b *Backend) NativeBuffer(logical framegraph.ResourceHandle) (buffer uintptr, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if native, ok := b.importedBuffers[logical]; ok {
		return native, true
	}
	if int(logical) >= len(b.bufferPhysical.HandleToPhysical) {
		return 0, false
	}
	slot := b.bufferPhysical.HandleToPhysical[logical]
	if slot == framegraph.InvalidResourceHandle || int(slot) >= len(b.bufferSlots) {
		return 0, false
	}
	buf := b.bufferSlots[slot]
	if buf == nil {
		return 0, false
	}
	return buf.NativeHandle(), true
}

func (b *Backend) createTexture(info framegraph.ImageInfo) (hal.Texture, hal.TextureView, error) {
	mipLevels := info.MipLevels
	if mipLevels == 0 {
		mipLevels = 1
	}
	sampleCount := info.SampleCount
	if sampleCount == 0 {
		sampleCount = 1
	}
	arrayLayers := info.ArrayLayers
	if arrayLayers == 0 {
		arrayLayers = 1
	}

	tex, err := b.device.CreateTexture(&hal.TextureDescriptor{
		Label: info.Name,
		Size: hal.Extent3D{
			Width:              info.Extent.Width,
			Height:             info.Extent.Height,
			DepthOrArrayLayers: max32(info.Extent.Depth, arrayLayers),
		},
		MipLevelCount: mipLevels,
		SampleCount:   sampleCount,
		Dimension:     imageTypeToDimension(info.Type),
		Format:        info.Format,
		Usage:         imageUsageToWGPU(info.Usage),
	})
	if err != nil {
		return nil, nil, err
	}
	view, err := b.device.CreateTextureView(tex, &hal.TextureViewDescriptor{Label: info.Name + "_view"})
	if err != nil {
		b.device.DestroyTexture(tex)
		return nil, nil, err
	}
	return tex, view, nil
}

func (b *Backend) createBuffer(info framegraph.BufferInfo) (hal.Buffer, error) {
	return b.device.CreateBuffer(&hal.BufferDescriptor{
		Label: info.Name,
		Size:  info.Size,
		Usage: bufferUsageToWGPU(info.Usage),
	})
}

// destroyPhysicalSlotsLocked releases every native resource this Backend
// created for the previous OnCompileResourceAllocation call. Imported
// slots were never created here, so there is nothing to destroy for them.
// Callers must hold b.mu.
func (b *Backend) destroyPhysicalSlotsLocked() {
	if b.device != nil {
		for _, view := range b.imageViews {
			if view != nil {
				b.device.DestroyTextureView(view)
			}
		}
		for _, tex := range b.imageSlots {
			if tex != nil {
				b.device.DestroyTexture(tex)
			}
		}
		for _, buf := range b.bufferSlots {
			if buf != nil {
				b.device.DestroyBuffer(buf)
			}
		}
	}
	b.imageSlots, b.imageViews, b.bufferSlots = nil, nil, nil
}

func imageTypeToDimension(t framegraph.ImageType) gputypes.TextureDimension {
	switch t {
	case framegraph.ImageType1D:
		return gputypes.TextureDimension1D
	case framegraph.ImageType3D:
		return gputypes.TextureDimension3D
	default:
		return gputypes.TextureDimension2D
	}
}

func max32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}
