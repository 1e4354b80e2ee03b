package framegraph

import (
	"fmt"
	"log/slog"
)

// System is the render graph compiler. Passes are registered with
// AddPass; Compile derives the schedule, aliasing, and barrier plan from
// what their SetupFuncs declared; Execute runs the live passes in order
// against the configured Backend.
//
// System is not safe for concurrent use. Compile is not reentrant.
type System struct {
	images  ImageRegistry
	buffers BufferRegistry

	imageReads   readDependency
	imageWrites  writeDependency
	bufferReads  readDependency
	bufferWrites writeDependency

	outputs outputTable

	passes []pass

	// Derived, compile-time-only state below. Recomputed by Compile into
	// local temporaries first; only copied into these fields once Compile
	// has fully succeeded, so a failed Compile leaves the previous
	// successful compile's state (or the zero value) untouched.

	imgVerReads  []VersionedHandle
	imgVerWrites []VersionedHandle
	bufVerReads  []VersionedHandle
	bufVerWrites []VersionedHandle

	producers producerMap

	active []bool
	dag    dag

	sortedPasses []PassHandle

	lifetimes resourceLifetimes

	imagePhysical  PhysicalResourceMeta
	bufferPhysical PhysicalResourceMeta

	barriers BarrierPlan

	backend Backend
	logger  *slog.Logger
}

// NewSystem constructs a System, applying any Options.
func NewSystem(opts ...Option) *System {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &System{
		backend: o.backend,
		logger:  o.logger,
	}
}

// SetBackend sets the Backend this System compiles and executes against.
func (s *System) SetBackend(b Backend) { s.backend = b }

// log returns this System's private logger if WithLogger was used,
// otherwise the package-level logger installed via SetLogger.
func (s *System) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return Logger()
}

// AddPass registers a pass and returns its handle. setup is invoked once
// per Compile, in registration order; execute is invoked once per
// Execute, in scheduled order, if the pass survives culling.
func (s *System) AddPass(setup SetupFunc, execute ExecuteFunc) PassHandle {
	h := PassHandle(len(s.passes))
	s.passes = append(s.passes, pass{setup: setup, execute: execute})
	return h
}

// Clear empties the registry, the declared dependency graph, and the
// compiled state, so the System can be reused to declare a fresh graph
// (e.g. for the next frame).
func (s *System) Clear() {
	s.images.clear()
	s.buffers.clear()
	s.passes = s.passes[:0]
	s.outputs.clear()
	s.resetCompiledState()
}

func (s *System) resetCompiledState() {
	s.imgVerReads = nil
	s.imgVerWrites = nil
	s.bufVerReads = nil
	s.bufVerWrites = nil
	s.producers.clear()
	s.active = nil
	s.dag.clear()
	s.sortedPasses = nil
	s.lifetimes.clear()
	s.imagePhysical.clear()
	s.bufferPhysical.clear()
	s.barriers.clear()
}

// Compile runs the full pipeline over the currently registered passes:
// versioning, producer map, culling, validation, DAG construction,
// scheduling, lifetime analysis, aliasing, and barrier planning. On
// success it returns the resulting Plan and retains it as the System's
// internal state for Execute. On failure it returns a wrapped sentinel
// error from errors.go and leaves the System's previously compiled state
// (if any) untouched.
func (s *System) Compile() (*Plan, error) {
	log := s.log()
	passCount := len(s.passes)
	log.Debug("framegraph: compile start", "passes", passCount)

	s.runSetupFuncs()

	imgVerReads, imgVerWrites, bufVerReads, bufVerWrites, imageVersions, bufferVersions := s.assignVersions()

	producers := s.buildProducerMap(imgVerWrites, bufVerWrites, imageVersions, bufferVersions)

	active := s.cullPasses(producers, imgVerReads, bufVerReads)
	activeCount := countTrue(active)
	log.Debug("framegraph: culled", "live", activeCount, "total", passCount)

	if err := s.validate(active, producers, imgVerReads, bufVerReads, imgVerWrites, bufVerWrites); err != nil {
		log.Warn("framegraph: validation failed", "error", err)
		return nil, err
	}

	g := s.buildDAG(active, producers, imgVerReads, bufVerReads)

	sortedPasses, err := scheduleTopological(g, active)
	if err != nil {
		log.Warn("framegraph: scheduling failed", "error", err)
		return nil, err
	}

	lifetimes := s.analyzeLifetimes(sortedPasses)

	imagePhysical := aliasImages(&s.images, lifetimes.imageFirst, lifetimes.imageLast)
	bufferPhysical := aliasBuffers(&s.buffers, lifetimes.bufferFirst, lifetimes.bufferLast)
	log.Debug("framegraph: aliased",
		"image_slots", imagePhysical.SlotCount(), "buffer_slots", bufferPhysical.SlotCount())

	barriers := s.planBarriers(sortedPasses, imagePhysical, bufferPhysical)
	opCount := 0
	if n := len(barriers.PassBegins); n > 0 {
		opCount = int(barriers.PassBegins[n-1])
	}
	log.Debug("framegraph: barrier plan built", "ops", opCount)

	// Commit: everything above succeeded, so this Compile's results
	// become the System's compiled state.
	s.imgVerReads, s.imgVerWrites = imgVerReads, imgVerWrites
	s.bufVerReads, s.bufVerWrites = bufVerReads, bufVerWrites
	s.producers = producers
	s.active = active
	s.dag = g
	s.sortedPasses = sortedPasses
	s.lifetimes = lifetimes
	s.imagePhysical = imagePhysical
	s.bufferPhysical = bufferPhysical
	s.barriers = barriers

	if allocator, ok := s.backend.(ResourceAllocator); ok {
		allocator.OnCompileResourceAllocation(&s.images, &s.buffers, imagePhysical, bufferPhysical)
	}

	return &Plan{
		SortedPasses:   sortedPasses,
		Barriers:       barriers,
		ImagePhysical:  imagePhysical,
		BufferPhysical: bufferPhysical,
	}, nil
}

// Execute walks the pass order from the last successful Compile,
// applying each pass's barrier range against the Backend before invoking
// its ExecuteFunc. Execute is a no-op if no Backend is set or Compile has
// not yet succeeded.
func (s *System) Execute() {
	if s.backend == nil {
		return
	}
	ctx := &ExecuteContext{backend: s.backend}
	for _, p := range s.sortedPasses {
		s.backend.ApplyBarriers(p, &s.barriers)
		if exec := s.passes[p].execute; exec != nil {
			exec(ctx)
		}
	}
}

func countTrue(bs []bool) int {
	n := 0
	for _, b := range bs {
		if b {
			n++
		}
	}
	return n
}

// wrapf is a small helper keeping the "framegraph: ...: %w" wrapping
// convention consistent across compile stages.
func wrapf(err error, format string, args ...any) error {
	return fmt.Errorf("framegraph: "+format+": %w", append(args, err)...)
}
