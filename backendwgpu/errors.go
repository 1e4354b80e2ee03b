package backendwgpu

import "errors"

var (
	// ErrNoGPU is returned by Init when no adapter could be requested.
	ErrNoGPU = errors.New("backendwgpu: no compatible GPU adapter found")

	// ErrNotInitialized is returned by operations that require Init to
	// have completed successfully first.
	ErrNotInitialized = errors.New("backendwgpu: backend not initialized")

	// ErrNoActiveEncoder is returned by EndFrame when no BeginFrame is
	// open. ApplyBarriers, which has no error result, logs a warning and
	// records nothing in that case.
	ErrNoActiveEncoder = errors.New("backendwgpu: no active command encoder")
)
