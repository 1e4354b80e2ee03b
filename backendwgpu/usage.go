package backendwgpu

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/framegraph"
)

// imageUsageToWGPU translates framegraph's own ImageUsage bitmask into
// the gputypes.TextureUsage bits a hal.TextureDescriptor expects.
func imageUsageToWGPU(u framegraph.ImageUsage) gputypes.TextureUsage {
	var out gputypes.TextureUsage
	if u&framegraph.ImageUsageTransferSrc != 0 {
		out |= gputypes.TextureUsageCopySrc
	}
	if u&framegraph.ImageUsageTransferDst != 0 {
		out |= gputypes.TextureUsageCopyDst
	}
	if u&framegraph.ImageUsageSampled != 0 {
		out |= gputypes.TextureUsageTextureBinding
	}
	if u&framegraph.ImageUsageStorage != 0 {
		out |= gputypes.TextureUsageStorageBinding
	}
	if u&(framegraph.ImageUsageColorAttachment|framegraph.ImageUsageDepthStencilAttach) != 0 {
		out |= gputypes.TextureUsageRenderAttachment
	}
	return out
}

// bufferUsageToWGPU translates framegraph's own BufferUsage bitmask into
// the gputypes.BufferUsage bits a hal.BufferDescriptor expects.
func bufferUsageToWGPU(u framegraph.BufferUsage) gputypes.BufferUsage {
	var out gputypes.BufferUsage
	if u&framegraph.BufferUsageTransferSrc != 0 {
		out |= gputypes.BufferUsageCopySrc
	}
	if u&framegraph.BufferUsageTransferDst != 0 {
		out |= gputypes.BufferUsageCopyDst
	}
	if u&framegraph.BufferUsageUniform != 0 {
		out |= gputypes.BufferUsageUniform
	}
	if u&framegraph.BufferUsageStorage != 0 {
		out |= gputypes.BufferUsageStorage
	}
	if u&framegraph.BufferUsageIndex != 0 {
		out |= gputypes.BufferUsageIndex
	}
	if u&framegraph.BufferUsageVertex != 0 {
		out |= gputypes.BufferUsageVertex
	}
	if u&framegraph.BufferUsageIndirect != 0 {
		out |= gputypes.BufferUsageIndirect
	}
	return out
}

// imageUsageBitsToWGPU is the BarrierOp-level counterpart of
// imageUsageToWGPU: BarrierOp.SrcUsageBits/DstUsageBits are stored as
// plain uint32 since the core never imports gputypes for the barrier
// table itself.
func imageUsageBitsToWGPU(bits uint32) gputypes.TextureUsage {
	return imageUsageToWGPU(framegraph.ImageUsage(bits))
}

func bufferUsageBitsToWGPU(bits uint32) gputypes.BufferUsage {
	return bufferUsageToWGPU(framegraph.BufferUsage(bits))
}
