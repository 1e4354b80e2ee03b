package framegraph

import "errors"

// Sentinel errors for the compile error taxonomy. Compile wraps these
// with fmt.Errorf("framegraph: ...: %w", ...) at the point of detection;
// identify a failure with errors.Is.
var (
	// ErrNoOutputs is returned when no image or buffer output was
	// declared by any pass — the schedule would be empty.
	ErrNoOutputs = errors.New("framegraph: no outputs declared")

	// ErrOutOfRangeHandle is returned when a read or write names a
	// handle outside the range assigned by CreateImage/CreateBuffer.
	ErrOutOfRangeHandle = errors.New("framegraph: out-of-range resource handle")

	// ErrUndefinedWrite is returned when a write entry failed to produce
	// a defined versioned handle (implies an out-of-range handle).
	ErrUndefinedWrite = errors.New("framegraph: write produced an undefined versioned handle")

	// ErrReadBeforeWrite is returned when a live pass reads a
	// non-imported resource that has no producer.
	ErrReadBeforeWrite = errors.New("framegraph: read-before-write on non-imported resource")

	// ErrCycle is returned when the scheduler cannot drain all live
	// passes: the live subgraph has a cycle.
	ErrCycle = errors.New("framegraph: cycle detected in render graph")
)
