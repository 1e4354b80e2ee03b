package framegraph

// SetupFunc declares a pass's resource reads, writes, and outputs. The
// core invokes it once per Compile, in registration order, before any
// derived structure (versions, producer map, schedule, ...) exists.
type SetupFunc func(*SetupContext)

// ExecuteFunc issues a live pass's work against the Backend. The core
// invokes it once per Execute, in scheduled order, after its barrier
// range has been applied — and never inspects what it does.
type ExecuteFunc func(*ExecuteContext)

// pass holds the two callables registered for one PassHandle. Dependency
// ranges and barrier ranges for a pass live in the System's own CSR
// arenas, keyed by PassHandle, not here.
type pass struct {
	setup   SetupFunc
	execute ExecuteFunc
}
