// Package framegraph compiles a frame's declared render passes and the
// resources they read and write into an executable plan: a pass order
// limited to what the declared outputs actually depend on, a memory-aliasing
// map that packs non-overlapping resource lifetimes into shared physical
// slots, and a per-pass list of API-agnostic synchronization barriers.
//
// # Overview
//
// Passes declare their resource reads and writes inside a setup callback.
// Compile derives everything else: which passes are actually reachable from
// the declared outputs, a dependency order for the live ones, which
// resources can share memory, and what synchronization each pass needs
// before it runs. A Backend consumes the compiled plan to create physical
// resources and lower the abstract barriers to a concrete graphics API.
//
// # Quick Start
//
//	sys := framegraph.NewSystem(framegraph.WithBackend(myBackend))
//
//	var albedo framegraph.ResourceHandle
//	sys.AddPass(
//		func(ctx *framegraph.SetupContext) {
//			albedo = ctx.CreateImage(framegraph.ImageInfo{
//				Name:   "albedo",
//				Format: gputypes.TextureFormatRGBA8Unorm,
//				Extent: framegraph.Extent3D{Width: 1920, Height: 1080, Depth: 1},
//				Usage:  framegraph.ImageUsageColorAttachment | framegraph.ImageUsageSampled,
//			})
//			ctx.WriteImage(albedo, framegraph.ImageUsageColorAttachment)
//			ctx.DeclareImageOutput(albedo)
//		},
//		func(ctx *framegraph.ExecuteContext) {
//			// issue draw calls against ctx.Backend()
//		},
//	)
//
//	if _, err := sys.Compile(); err != nil {
//		log.Fatal(err)
//	}
//	sys.Execute()
//
// # Architecture
//
// The compile pipeline runs in a fixed order, leaves first: the resource
// registry and dependency recorder (populated by setup callbacks) feed the
// versioner, which feeds the producer map, which feeds the culler and
// validator, which feed the DAG builder and scheduler, which feed the
// lifetime analyzer and aliaser, which feed the barrier planner and plan
// emitter. Every stage after the registry operates on column-oriented (SoA)
// storage with CSR range indexing — this is preserved throughout for cache
// locality and is the package's primary data-layout decision.
//
// # Single-threaded by design
//
// System is not safe for concurrent Compile/Execute calls on the same
// instance, and Compile is not reentrant. Multiple independent Systems may
// run concurrently without coordination.
package framegraph

// Version information for the module.
const (
	// Version is the current version of the compiler.
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version.
	VersionMajor = 0

	// VersionMinor is the minor version.
	VersionMinor = 1

	// VersionPatch is the patch version.
	VersionPatch = 0
)
