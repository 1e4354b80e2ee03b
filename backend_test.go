package framegraph

// fakeBackend is a Backend used across this package's tests. It
// implements every optional interface so tests can exercise resource
// allocation and import binding without a real GPU.
type fakeBackend struct {
	barrierCalls []PassHandle
	executeOrder []PassHandle

	allocated      bool
	images         *ImageRegistry
	buffers        *BufferRegistry
	imagePhysical  PhysicalResourceMeta
	bufferPhysical PhysicalResourceMeta

	importedImages  map[ResourceHandle][2]uintptr
	importedBuffers map[ResourceHandle]uintptr
}

func (b *fakeBackend) ApplyBarriers(pass PassHandle, plan *BarrierPlan) {
	b.barrierCalls = append(b.barrierCalls, pass)
}

func (b *fakeBackend) OnCompileResourceAllocation(images *ImageRegistry, buffers *BufferRegistry, imagePhysical, bufferPhysical PhysicalResourceMeta) {
	b.allocated = true
	b.images = images
	b.buffers = buffers
	b.imagePhysical = imagePhysical
	b.bufferPhysical = bufferPhysical
}

func (b *fakeBackend) BindImportedImage(logical ResourceHandle, nativeImage, nativeView uintptr) {
	if b.importedImages == nil {
		b.importedImages = map[ResourceHandle][2]uintptr{}
	}
	b.importedImages[logical] = [2]uintptr{nativeImage, nativeView}
}

func (b *fakeBackend) BindImportedBuffer(logical ResourceHandle, nativeBuffer uintptr) {
	if b.importedBuffers == nil {
		b.importedBuffers = map[ResourceHandle]uintptr{}
	}
	b.importedBuffers[logical] = nativeBuffer
}

var (
	_ Backend             = (*fakeBackend)(nil)
	_ ResourceAllocator   = (*fakeBackend)(nil)
	_ ImportedImageBinder = (*fakeBackend)(nil)
	_ ImportedBufferBinder = (*fakeBackend)(nil)
)
