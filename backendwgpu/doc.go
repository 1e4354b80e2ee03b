// Package backendwgpu implements framegraph.Backend against a real
// wgpu-hal device: it acquires or shares a device, materializes native
// textures and buffers for the physical slots a compiled graph produced,
// and lowers every BarrierOp into the matching hal transition, UAV, or
// aliasing primitive.
package backendwgpu
