package framegraph

import (
	"errors"
	"testing"
)

// deferredShadingSystem builds a small G-buffer -> lighting -> post
// graph: three passes, five images, one declared output.
func deferredShadingSystem(t *testing.T, backend Backend) (*System, map[string]ResourceHandle) {
	t.Helper()
	sys := NewSystem(WithBackend(backend))

	handles := map[string]ResourceHandle{}

	sys.AddPass(func(c *SetupContext) {
		handles["albedo"] = c.CreateImage(ImageInfo{Name: "albedo", Usage: ImageUsageColorAttachment})
		handles["normal"] = c.CreateImage(ImageInfo{Name: "normal", Usage: ImageUsageColorAttachment})
		handles["depth"] = c.CreateImage(ImageInfo{Name: "depth", Usage: ImageUsageDepthStencilAttach})
		c.WriteImage(handles["albedo"], ImageUsageColorAttachment)
		c.WriteImage(handles["normal"], ImageUsageColorAttachment)
		c.WriteImage(handles["depth"], ImageUsageDepthStencilAttach)
	}, func(c *ExecuteContext) {})

	sys.AddPass(func(c *SetupContext) {
		c.ReadImage(handles["albedo"], ImageUsageSampled)
		c.ReadImage(handles["normal"], ImageUsageSampled)
		c.ReadImage(handles["depth"], ImageUsageSampled)
		handles["hdr"] = c.CreateImage(ImageInfo{Name: "hdr", Usage: ImageUsageColorAttachment})
		c.WriteImage(handles["hdr"], ImageUsageColorAttachment)
	}, func(c *ExecuteContext) {})

	sys.AddPass(func(c *SetupContext) {
		c.ReadImage(handles["hdr"], ImageUsageSampled)
		handles["final"] = c.CreateImage(ImageInfo{Name: "final", Usage: ImageUsageColorAttachment})
		c.WriteImage(handles["final"], ImageUsageColorAttachment)
		c.DeclareImageOutput(handles["final"])
	}, func(c *ExecuteContext) {})

	return sys, handles
}

func TestSystemCompileDeferredShadingEndToEnd(t *testing.T) {
	backend := &fakeBackend{}
	sys, handles := deferredShadingSystem(t, backend)

	plan, err := sys.Compile()
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	if len(plan.SortedPasses) != 3 {
		t.Fatalf("SortedPasses = %v, want 3 live passes", plan.SortedPasses)
	}
	want := []PassHandle{0, 1, 2}
	for i, p := range want {
		if plan.SortedPasses[i] != p {
			t.Errorf("SortedPasses[%d] = %d, want %d", i, plan.SortedPasses[i], p)
		}
	}

	if !backend.allocated {
		t.Error("Backend.OnCompileResourceAllocation was never called")
	}
	if backend.images.Count() != 5 {
		t.Errorf("images.Count() = %d, want 5 (albedo, normal, depth, hdr, final)", backend.images.Count())
	}
	_ = handles
}

func TestSystemCompileWithoutOutputsFails(t *testing.T) {
	sys := NewSystem(WithBackend(&fakeBackend{}))
	sys.AddPass(func(c *SetupContext) {
		img := c.CreateImage(ImageInfo{})
		c.WriteImage(img, ImageUsageColorAttachment)
	}, nil)

	_, err := sys.Compile()
	if !errors.Is(err, ErrNoOutputs) {
		t.Errorf("Compile() error = %v, want ErrNoOutputs", err)
	}
}

// TestSystemCompileFailureLeavesPriorStateUntouched exercises the
// "compute into locals, commit only on success" contract: once a System
// has a successful compile, a subsequent failing Compile must not
// change its compiled state.
func TestSystemCompileFailureLeavesPriorStateUntouched(t *testing.T) {
	backend := &fakeBackend{}
	sys, _ := deferredShadingSystem(t, backend)

	if _, err := sys.Compile(); err != nil {
		t.Fatalf("first Compile() error = %v", err)
	}
	firstSorted := append([]PassHandle(nil), sys.sortedPasses...)
	firstOpCount := len(sys.barriers.Types)

	// Register a fourth pass that forges a read of a handle that was
	// never created. It declares its own output so culling keeps it
	// live; the prior three passes are otherwise untouched, so this
	// Compile fails at validation rather than at the no-outputs check.
	sys.AddPass(func(c *SetupContext) {
		extra := c.CreateImage(ImageInfo{Name: "extra"})
		c.WriteImage(extra, ImageUsageColorAttachment)
		c.DeclareImageOutput(extra)
		c.ReadImage(ResourceHandle(999), ImageUsageSampled)
	}, nil)

	if _, err := sys.Compile(); !errors.Is(err, ErrOutOfRangeHandle) {
		t.Fatalf("second Compile() error = %v, want ErrOutOfRangeHandle", err)
	}

	if len(sys.sortedPasses) != len(firstSorted) {
		t.Fatalf("sortedPasses after failed Compile = %v, want unchanged %v", sys.sortedPasses, firstSorted)
	}
	for i := range firstSorted {
		if sys.sortedPasses[i] != firstSorted[i] {
			t.Errorf("sortedPasses[%d] after failed Compile = %d, want %d (prior compile's result)", i, sys.sortedPasses[i], firstSorted[i])
		}
	}
	if len(sys.barriers.Types) != firstOpCount {
		t.Errorf("barriers after failed Compile changed from %d ops to %d", firstOpCount, len(sys.barriers.Types))
	}
}

func TestSystemExecuteCallsBarriersThenPassesInOrder(t *testing.T) {
	backend := &fakeBackend{}
	sys := NewSystem(WithBackend(backend))

	var order []string
	var imgA, imgB ResourceHandle
	sys.AddPass(func(c *SetupContext) {
		imgA = c.CreateImage(ImageInfo{Name: "a"})
		c.WriteImage(imgA, ImageUsageColorAttachment)
	}, func(c *ExecuteContext) { order = append(order, "pass0") })
	sys.AddPass(func(c *SetupContext) {
		c.ReadImage(imgA, ImageUsageSampled)
		imgB = c.CreateImage(ImageInfo{Name: "b"})
		c.WriteImage(imgB, ImageUsageColorAttachment)
		c.DeclareImageOutput(imgB)
	}, func(c *ExecuteContext) { order = append(order, "pass1") })

	if _, err := sys.Compile(); err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	sys.Execute()

	if len(order) != 2 || order[0] != "pass0" || order[1] != "pass1" {
		t.Errorf("execution order = %v, want [pass0 pass1]", order)
	}
	if len(backend.barrierCalls) != 2 {
		t.Fatalf("ApplyBarriers called %d times, want 2", len(backend.barrierCalls))
	}
	if backend.barrierCalls[0] != 0 || backend.barrierCalls[1] != 1 {
		t.Errorf("ApplyBarriers pass order = %v, want [0 1]", backend.barrierCalls)
	}
}

func TestSystemExecuteNoBackendIsNoOp(t *testing.T) {
	sys := NewSystem()
	called := false
	sys.AddPass(func(c *SetupContext) {
		img := c.CreateImage(ImageInfo{})
		c.WriteImage(img, ImageUsageColorAttachment)
		c.DeclareImageOutput(img)
	}, func(c *ExecuteContext) { called = true })

	if _, err := sys.Compile(); err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	sys.Execute()

	if called {
		t.Error("ExecuteFunc ran with no Backend set")
	}
}

func TestSystemClearResetsRegistriesAndPasses(t *testing.T) {
	sys := NewSystem(WithBackend(&fakeBackend{}))
	sys.AddPass(func(c *SetupContext) {
		img := c.CreateImage(ImageInfo{})
		c.WriteImage(img, ImageUsageColorAttachment)
		c.DeclareImageOutput(img)
	}, nil)
	if _, err := sys.Compile(); err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	sys.Clear()

	if len(sys.passes) != 0 {
		t.Errorf("len(passes) after Clear() = %d, want 0", len(sys.passes))
	}
	if sys.images.Count() != 0 {
		t.Errorf("images.Count() after Clear() = %d, want 0", sys.images.Count())
	}
	if len(sys.sortedPasses) != 0 {
		t.Errorf("sortedPasses after Clear() = %v, want empty", sys.sortedPasses)
	}
}
