//go:build !nogpu

package main

import (
	"github.com/gogpu/framegraph"
	"github.com/gogpu/framegraph/backendwgpu"
)

// newGPUBackend returns a backendwgpu.Backend that acquires its own wgpu
// device on Init.
func newGPUBackend() framegraph.Backend {
	return backendwgpu.NewBackend("framegraphdemo")
}
