package framegraph

// readDependency is a per-pass, append-only list of resource reads with
// usage bits, stored as contiguous arenas with per-pass CSR ranges:
// pass p's entries occupy [begins[p], begins[p]+lengths[p]).
type readDependency struct {
	handles   []ResourceHandle
	usageBits []uint32
	begins    []uint32
	lengths   []uint32
}

func (d *readDependency) reset(passCount int) {
	d.handles = d.handles[:0]
	d.usageBits = d.usageBits[:0]
	d.begins = make([]uint32, passCount)
	d.lengths = make([]uint32, passCount)
}

func (d *readDependency) append(pass PassHandle, h ResourceHandle, usage uint32) {
	d.handles = append(d.handles, h)
	d.usageBits = append(d.usageBits, usage)
	d.lengths[pass]++
}

func (d *readDependency) rangeOf(pass PassHandle) (begin, end uint32) {
	begin = d.begins[pass]
	return begin, begin + d.lengths[pass]
}

// writeDependency mirrors readDependency for writes.
type writeDependency struct {
	handles   []ResourceHandle
	usageBits []uint32
	begins    []uint32
	lengths   []uint32
}

func (d *writeDependency) reset(passCount int) {
	d.handles = d.handles[:0]
	d.usageBits = d.usageBits[:0]
	d.begins = make([]uint32, passCount)
	d.lengths = make([]uint32, passCount)
}

func (d *writeDependency) append(pass PassHandle, h ResourceHandle, usage uint32) {
	d.handles = append(d.handles, h)
	d.usageBits = append(d.usageBits, usage)
	d.lengths[pass]++
}

func (d *writeDependency) rangeOf(pass PassHandle) (begin, end uint32) {
	begin = d.begins[pass]
	return begin, begin + d.lengths[pass]
}

// outputTable is the seed set for culling: the logical resources whose
// latest write must survive in the schedule.
type outputTable struct {
	images  []ResourceHandle
	buffers []ResourceHandle
}

func (t *outputTable) clear() {
	t.images = t.images[:0]
	t.buffers = t.buffers[:0]
}

// SetupContext is passed to a pass's SetupFunc. It exposes the recorder
// API: resource creation, reads, writes, and output declarations for the
// pass currently being set up. A SetupContext is only valid for the
// duration of the setup call it was handed to.
type SetupContext struct {
	sys  *System
	pass PassHandle
}

// CreateImage registers a new image resource and returns its handle.
func (c *SetupContext) CreateImage(info ImageInfo) ResourceHandle {
	return c.sys.images.add(info)
}

// CreateBuffer registers a new buffer resource and returns its handle.
func (c *SetupContext) CreateBuffer(info BufferInfo) ResourceHandle {
	return c.sys.buffers.add(info)
}

// ReadImage records that the current pass reads image h with the given
// usage intent.
func (c *SetupContext) ReadImage(h ResourceHandle, usage ImageUsage) {
	c.sys.imageReads.append(c.pass, h, uint32(usage))
}

// WriteImage records that the current pass writes image h with the given
// usage intent.
func (c *SetupContext) WriteImage(h ResourceHandle, usage ImageUsage) {
	c.sys.imageWrites.append(c.pass, h, uint32(usage))
}

// ReadBuffer records that the current pass reads buffer h with the given
// usage intent.
func (c *SetupContext) ReadBuffer(h ResourceHandle, usage BufferUsage) {
	c.sys.bufferReads.append(c.pass, h, uint32(usage))
}

// WriteBuffer records that the current pass writes buffer h with the
// given usage intent.
func (c *SetupContext) WriteBuffer(h ResourceHandle, usage BufferUsage) {
	c.sys.bufferWrites.append(c.pass, h, uint32(usage))
}

// DeclareImageOutput marks image h as a frame output: the latest write to
// h, and everything it transitively depends on, must survive culling.
func (c *SetupContext) DeclareImageOutput(h ResourceHandle) {
	c.sys.outputs.images = append(c.sys.outputs.images, h)
}

// DeclareBufferOutput marks buffer h as a frame output.
func (c *SetupContext) DeclareBufferOutput(h ResourceHandle) {
	c.sys.outputs.buffers = append(c.sys.outputs.buffers, h)
}

// ExecuteContext is passed to a pass's ExecuteFunc at Execute time. It
// exposes the Backend so the pass can issue work against it; the core
// never inspects what the pass does with it.
type ExecuteContext struct {
	backend Backend
}

// Backend returns the backend this System was compiled and is executing
// against.
func (c *ExecuteContext) Backend() Backend { return c.backend }
