package framegraph

// Backend consumes the compiled plan to apply synchronization and run
// passes. Physical resource creation and the lifetime of imported
// resources are owned by the embedder, outside the graph; the core only
// builds an abstract plan and calls into Backend with it.
type Backend interface {
	// ApplyBarriers is invoked once per scheduled pass, immediately
	// before that pass's ExecuteFunc runs, with the ops accumulated for
	// it during Compile.
	ApplyBarriers(pass PassHandle, plan *BarrierPlan)
}

// ResourceAllocator is implemented by backends that materialize native
// resources for the physical slots Compile produced. OnCompileResourceAllocation
// is called once, at the end of a successful Compile, if the Backend
// implements this interface.
type ResourceAllocator interface {
	// OnCompileResourceAllocation receives the resource registries and,
	// per kind, the physical-slot table and the logical-to-physical
	// mapping. Backends materialize native resources for non-imported
	// slots and bind previously stashed imported handles for imported
	// ones.
	OnCompileResourceAllocation(images *ImageRegistry, buffers *BufferRegistry, imagePhysical, bufferPhysical PhysicalResourceMeta)
}

// ImportedImageBinder is implemented by backends that accept externally
// owned image handles — swapchain images, host-provided render targets —
// ahead of Compile. NativeView may be zero if the backend derives a view
// itself.
type ImportedImageBinder interface {
	BindImportedImage(logical ResourceHandle, nativeImage, nativeView uintptr)
}

// ImportedBufferBinder is implemented by backends that accept externally
// owned buffer handles ahead of Compile.
type ImportedBufferBinder interface {
	BindImportedBuffer(logical ResourceHandle, nativeBuffer uintptr)
}
