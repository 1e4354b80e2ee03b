package backendwgpu

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/framegraph"
)

// frameFenceTimeout bounds how long EndFrame waits on the frame's
// completion fence before giving up.
const frameFenceTimeout = 5 * time.Second

// Backend implements framegraph.Backend, framegraph.ResourceAllocator,
// framegraph.ImportedImageBinder and framegraph.ImportedBufferBinder
// against a wgpu-hal device. It materializes native textures and buffers
// for the physical slots a compiled graph produced, and lowers every
// BarrierOp accumulated during Compile into the matching hal
// synchronization primitive when ApplyBarriers runs.
type Backend struct {
	mu sync.Mutex

	instance *core.Instance
	adapter  core.AdapterID
	deviceID core.DeviceID
	queueID  core.QueueID
	owned    bool

	device hal.Device
	queue  hal.Queue

	initialized bool
	label       string
	logger      *slog.Logger

	images  *framegraph.ImageRegistry
	buffers *framegraph.BufferRegistry

	imagePhysical  framegraph.PhysicalResourceMeta
	bufferPhysical framegraph.PhysicalResourceMeta

	imageSlots  []hal.Texture
	imageViews  []hal.TextureView
	bufferSlots []hal.Buffer

	importedImages  map[framegraph.ResourceHandle]nativePair
	importedBuffers map[framegraph.ResourceHandle]uintptr

	encoder hal.CommandEncoder
}

var (
	_ framegraph.Backend              = (*Backend)(nil)
	_ framegraph.ResourceAllocator    = (*Backend)(nil)
	_ framegraph.ImportedImageBinder  = (*Backend)(nil)
	_ framegraph.ImportedBufferBinder = (*Backend)(nil)
)

// NewBackend creates a Backend that acquires and owns its own wgpu
// instance, adapter, device, and queue on Init, and tears them down on
// Close.
func NewBackend(label string) *Backend {
	return &Backend{
		owned:           true,
		label:           label,
		logger:          framegraph.Logger(),
		importedImages:  make(map[framegraph.ResourceHandle]nativePair),
		importedBuffers: make(map[framegraph.ResourceHandle]uintptr),
	}
}

// NewBackendWithDevice creates a Backend bound to a device and queue the
// caller already owns — for embedding framegraph inside a larger
// application that manages its own wgpu device. Close on this Backend
// never tears the device down.
func NewBackendWithDevice(device hal.Device, queue hal.Queue) *Backend {
	return &Backend{
		device:          device,
		queue:           queue,
		initialized:     true,
		logger:          framegraph.Logger(),
		importedImages:  make(map[framegraph.ResourceHandle]nativePair),
		importedBuffers: make(map[framegraph.ResourceHandle]uintptr),
	}
}

// Init acquires the GPU resources this Backend owns. It is a no-op on a
// Backend created with NewBackendWithDevice.
func (b *Backend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}
	if !b.owned {
		b.initialized = true
		return nil
	}

	b.instance = core.NewInstance(&gputypes.InstanceDescriptor{
		Backends: gputypes.BackendsPrimary,
		Flags:    0,
	})

	adapterID, err := b.instance.RequestAdapter(&gputypes.RequestAdapterOptions{
		PowerPreference: gputypes.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoGPU, err)
	}
	b.adapter = adapterID

	deviceID, err := core.CreateDevice(adapterID, &gputypes.DeviceDescriptor{Label: b.label})
	if err != nil {
		return fmt.Errorf("backendwgpu: create device: %w", err)
	}
	b.deviceID = deviceID

	queueID, err := core.GetDeviceQueue(deviceID)
	if err != nil {
		_ = core.ReleaseDevice(deviceID)
		return fmt.Errorf("backendwgpu: get device queue: %w", err)
	}
	b.queueID = queueID

	b.device = core.HALDevice(deviceID)
	b.queue = core.HALQueue(queueID)

	b.initialized = true
	b.logger.Debug("backendwgpu: initialized", "label", b.label)
	return nil
}

// Close releases every resource this Backend owns. It is a no-op on a
// Backend created with NewBackendWithDevice, and on an already-closed
// Backend.
func (b *Backend) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized || !b.owned {
		return
	}

	b.destroyPhysicalSlotsLocked()

	if !b.deviceID.IsZero() {
		if err := core.ReleaseDevice(b.deviceID); err != nil {
			b.logger.Warn("backendwgpu: release device failed", "error", err)
		}
		b.deviceID = core.DeviceID{}
	}
	if !b.adapter.IsZero() {
		if err := core.ReleaseAdapter(b.adapter); err != nil {
			b.logger.Warn("backendwgpu: release adapter failed", "error", err)
		}
		b.adapter = core.AdapterID{}
	}

	b.instance = nil
	b.queueID = core.QueueID{}
	b.device = nil
	b.queue = nil
	b.initialized = false
}

// Device returns the hal.Device this Backend records commands against.
func (b *Backend) Device() hal.Device {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.device
}
