package backendwgpu

import (
	"fmt"

	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/framegraph"
)

// BeginFrame opens a command encoder that ApplyBarriers and the passes
// framegraph.System.Execute invokes will record into, and EndFrame later
// submits.
func (b *Backend) BeginFrame(label string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return ErrNotInitialized
	}
	encoder, err := b.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: label})
	if err != nil {
		return fmt.Errorf("backendwgpu: create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding(label); err != nil {
		return fmt.Errorf("backendwgpu: begin encoding: %w", err)
	}
	b.encoder = encoder
	return nil
}

// EndFrame ends and submits the frame's command encoder, waiting on a
// fence before returning so the caller can safely read back or reuse
// frame-scoped staging resources.
func (b *Backend) EndFrame() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.encoder == nil {
		return ErrNoActiveEncoder
	}
	cmdBuf, err := b.encoder.EndEncoding()
	if err != nil {
		b.encoder = nil
		return fmt.Errorf("backendwgpu: end encoding: %w", err)
	}
	b.encoder = nil

	fence, err := b.device.CreateFence()
	if err != nil {
		return fmt.Errorf("backendwgpu: create fence: %w", err)
	}
	defer b.device.DestroyFence(fence)

	if err := b.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("backendwgpu: submit: %w", err)
	}
	if _, err := b.device.Wait(fence, 1, frameFenceTimeout); err != nil {
		return fmt.Errorf("backendwgpu: wait on frame fence: %w", err)
	}
	b.device.FreeCommandBuffer(cmdBuf)
	return nil
}

// ApplyBarriers lowers the ops framegraph.System.Compile accumulated for
// one pass into hal transition and buffer barriers, recorded into the
// encoder opened by BeginFrame. A BarrierOpUAV is lowered as a
// same-usage transition, which forces a hazard barrier without a layout
// change. A BarrierOpAliasing is lowered as a transition from the
// undefined usage, establishing the new logical resource's layout on the
// slot the previous occupant vacated.
func (b *Backend) ApplyBarriers(pass framegraph.PassHandle, plan *framegraph.BarrierPlan) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.encoder == nil {
		b.logger.Warn("backendwgpu: ApplyBarriers called with no active encoder", "pass", pass)
		return
	}

	var textureBarriers []hal.TextureBarrier
	var bufferBarriers []hal.BufferBarrier

	plan.ForPass(pass, func(op framegraph.BarrierOp) {
		switch op.Kind {
		case framegraph.ResourceKindImage:
			tex := b.imageSlots[op.Physical]
			if tex == nil {
				return
			}
			switch op.Type {
			case framegraph.BarrierOpTransition:
				textureBarriers = append(textureBarriers, hal.TextureBarrier{
					Texture: tex,
					Usage: hal.TextureUsageTransition{
						OldUsage: imageUsageBitsToWGPU(op.SrcUsageBits),
						NewUsage: imageUsageBitsToWGPU(op.DstUsageBits),
					},
				})
			case framegraph.BarrierOpUAV:
				usage := imageUsageBitsToWGPU(op.DstUsageBits)
				textureBarriers = append(textureBarriers, hal.TextureBarrier{
					Texture: tex,
					Usage:   hal.TextureUsageTransition{OldUsage: usage, NewUsage: usage},
				})
			case framegraph.BarrierOpAliasing:
				textureBarriers = append(textureBarriers, hal.TextureBarrier{
					Texture: tex,
					Usage: hal.TextureUsageTransition{
						OldUsage: 0,
						NewUsage: imageUsageBitsToWGPU(op.DstUsageBits),
					},
				})
			}
		case framegraph.ResourceKindBuffer:
			buf := b.bufferSlots[op.Physical]
			if buf == nil {
				return
			}
			switch op.Type {
			case framegraph.BarrierOpUAV:
				usage := bufferUsageBitsToWGPU(op.DstUsageBits)
				bufferBarriers = append(bufferBarriers, hal.BufferBarrier{
					Buffer: buf,
					Usage:  hal.BufferUsageTransition{OldUsage: usage, NewUsage: usage},
				})
			case framegraph.BarrierOpTransition, framegraph.BarrierOpAliasing:
				bufferBarriers = append(bufferBarriers, hal.BufferBarrier{
					Buffer: buf,
					Usage: hal.BufferUsageTransition{
						OldUsage: bufferUsageBitsToWGPU(op.SrcUsageBits),
						NewUsage: bufferUsageBitsToWGPU(op.DstUsageBits),
					},
				})
			}
		}
	})

	if len(textureBarriers) > 0 {
		b.encoder.TransitionTextures(textureBarriers)
	}
	if len(bufferBarriers) > 0 {
		b.encoder.TransitionBuffers(bufferBarriers)
	}
}
