package framegraph

import "testing"

func TestOverlaps(t *testing.T) {
	cases := []struct {
		a, b interval
		want bool
	}{
		{interval{0, 2}, interval{2, 4}, true},  // touching endpoints overlap
		{interval{0, 1}, interval{2, 3}, false}, // disjoint
		{interval{0, 5}, interval{1, 2}, true},  // nested
	}
	for _, c := range cases {
		if got := overlaps(c.a, c.b); got != c.want {
			t.Errorf("overlaps(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

// TestAliasImagesNonOverlappingCompatibleTransientsShareASlot is the
// "aliasing between non-overlapping transients" scenario: two
// same-descriptor transient images whose scheduled lifetimes never
// overlap must pack into the same physical slot.
func TestAliasImagesNonOverlappingCompatibleTransientsShareASlot(t *testing.T) {
	var r ImageRegistry
	desc := ImageInfo{Extent: Extent3D{Width: 256, Height: 256, Depth: 1}, Usage: ImageUsageColorAttachment}
	a := r.add(desc)
	b := r.add(desc)

	first := []uint32{0, 2}
	last := []uint32{0, 2}

	meta := aliasImages(&r, first, last)

	if meta.SlotCount() != 1 {
		t.Fatalf("SlotCount() = %d, want 1 (disjoint compatible transients should alias)", meta.SlotCount())
	}
	if meta.HandleToPhysical[a] != meta.HandleToPhysical[b] {
		t.Error("non-overlapping compatible transients were not assigned the same physical slot")
	}
}

func TestAliasImagesOverlappingLifetimesGetDistinctSlots(t *testing.T) {
	var r ImageRegistry
	desc := ImageInfo{Extent: Extent3D{Width: 256, Height: 256, Depth: 1}}
	a := r.add(desc)
	b := r.add(desc)

	first := []uint32{0, 0}
	last := []uint32{2, 2}

	meta := aliasImages(&r, first, last)

	if meta.SlotCount() != 2 {
		t.Fatalf("SlotCount() = %d, want 2 (overlapping lifetimes must not alias)", meta.SlotCount())
	}
	if meta.HandleToPhysical[a] == meta.HandleToPhysical[b] {
		t.Error("overlapping-lifetime resources were assigned the same physical slot")
	}
}

func TestAliasImagesIncompatibleDescriptorsGetDistinctSlots(t *testing.T) {
	var r ImageRegistry
	a := r.add(ImageInfo{Extent: Extent3D{Width: 256, Height: 256, Depth: 1}})
	b := r.add(ImageInfo{Extent: Extent3D{Width: 512, Height: 512, Depth: 1}})

	first := []uint32{0, 5}
	last := []uint32{0, 5}

	meta := aliasImages(&r, first, last)

	if meta.HandleToPhysical[a] == meta.HandleToPhysical[b] {
		t.Error("incompatible descriptors were assigned the same physical slot despite disjoint lifetimes")
	}
}

// TestAliasImagesImportedGetsOwnNonAliasableSlot is the "imported
// read-only" scenario: an imported image is never packed alongside
// another resource, regardless of overlap or compatibility.
func TestAliasImagesImportedGetsOwnNonAliasableSlot(t *testing.T) {
	var r ImageRegistry
	desc := ImageInfo{Extent: Extent3D{Width: 256, Height: 256, Depth: 1}, Imported: true}
	imported := r.add(desc)
	transient := r.add(ImageInfo{Extent: desc.Extent})

	first := []uint32{0, 5}
	last := []uint32{0, 5}

	meta := aliasImages(&r, first, last)

	if meta.SlotCount() != 2 {
		t.Fatalf("SlotCount() = %d, want 2 (imported resource must not share a slot)", meta.SlotCount())
	}
	if meta.HandleToPhysical[imported] == meta.HandleToPhysical[transient] {
		t.Error("imported resource shared a slot with a non-overlapping transient")
	}
}

func TestAliasImagesUntouchedHandleHasNoSlot(t *testing.T) {
	var r ImageRegistry
	untouched := r.add(ImageInfo{})

	meta := aliasImages(&r, []uint32{noPosition}, []uint32{0})

	if meta.HandleToPhysical[untouched] != InvalidResourceHandle {
		t.Error("an untouched handle was assigned a physical slot")
	}
}

func TestAliasBuffersSameShape(t *testing.T) {
	var r BufferRegistry
	desc := BufferInfo{Size: 1024, Usage: BufferUsageStorage}
	a := r.add(desc)
	b := r.add(desc)

	meta := aliasBuffers(&r, []uint32{0, 3}, []uint32{0, 3})

	if meta.SlotCount() != 1 {
		t.Errorf("SlotCount() = %d, want 1", meta.SlotCount())
	}
	if meta.HandleToPhysical[a] != meta.HandleToPhysical[b] {
		t.Error("non-overlapping compatible buffers were not aliased")
	}
}
