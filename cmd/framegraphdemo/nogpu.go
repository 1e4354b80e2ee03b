//go:build nogpu

package main

import "github.com/gogpu/framegraph"

// nullBackend applies no barriers and allocates nothing; it exists so
// this demo still builds and prints a schedule on platforms without a
// wgpu device, via `go build -tags nogpu`.
type nullBackend struct{}

func (nullBackend) ApplyBarriers(framegraph.PassHandle, *framegraph.BarrierPlan) {}

// newGPUBackend returns a no-op Backend when built with the nogpu tag.
func newGPUBackend() framegraph.Backend {
	return nullBackend{}
}
