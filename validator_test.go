package framegraph

import (
	"errors"
	"testing"
)

func TestValidateNoOutputsIsFatal(t *testing.T) {
	sys := NewSystem()
	sys.AddPass(func(c *SetupContext) {
		img := c.CreateImage(ImageInfo{})
		c.WriteImage(img, ImageUsageColorAttachment)
	}, nil)

	imgReads, imgWrites, bufReads, bufWrites, producers, active := setupForValidate(sys)

	err := sys.validate(active, producers, imgReads, bufReads, imgWrites, bufWrites)
	if !errors.Is(err, ErrNoOutputs) {
		t.Errorf("validate() = %v, want ErrNoOutputs", err)
	}
}

func TestValidateOutOfRangeHandleIsFatal(t *testing.T) {
	sys := NewSystem()
	sys.AddPass(func(c *SetupContext) {
		img := c.CreateImage(ImageInfo{})
		c.WriteImage(img, ImageUsageColorAttachment)
		c.DeclareImageOutput(img)
		// Forge a read of a handle that was never created.
		c.ReadImage(ResourceHandle(999), ImageUsageSampled)
	}, nil)

	imgReads, imgWrites, bufReads, bufWrites, producers, active := setupForValidate(sys)

	err := sys.validate(active, producers, imgReads, bufReads, imgWrites, bufWrites)
	if !errors.Is(err, ErrOutOfRangeHandle) {
		t.Errorf("validate() = %v, want ErrOutOfRangeHandle", err)
	}
}

// TestValidate_ImportedMissingProducerOK verifies the read-before-write
// policy's imported exception: a live pass may read an imported
// resource with no producer. The pass writes and declares a separate
// output so cullPasses keeps it live; without that, the pass would be
// culled entirely and the imported exception would never run.
func TestValidate_ImportedMissingProducerOK(t *testing.T) {
	sys := NewSystem()
	sys.AddPass(func(c *SetupContext) {
		a := c.CreateImage(ImageInfo{Imported: true})
		b := c.CreateImage(ImageInfo{})
		c.WriteImage(b, ImageUsageColorAttachment)
		c.DeclareImageOutput(b)
		c.ReadImage(a, ImageUsageSampled)
	}, nil)

	imgReads, imgWrites, bufReads, bufWrites, producers, active := setupForValidate(sys)

	if err := sys.validate(active, producers, imgReads, bufReads, imgWrites, bufWrites); err != nil {
		t.Errorf("validate() = %v, want nil (imported reads with no producer are allowed)", err)
	}
}

// TestValidate_NonImportedMissingProducerFatal is the negative
// counterpart: a non-imported read with no producer is always fatal.
// As above, the pass writes and declares a separate output to stay live
// through cullPasses so the read-before-write check actually runs.
func TestValidate_NonImportedMissingProducerFatal(t *testing.T) {
	sys := NewSystem()
	sys.AddPass(func(c *SetupContext) {
		a := c.CreateImage(ImageInfo{Imported: false})
		b := c.CreateImage(ImageInfo{})
		c.WriteImage(b, ImageUsageColorAttachment)
		c.DeclareImageOutput(b)
		c.ReadImage(a, ImageUsageSampled)
	}, nil)

	imgReads, imgWrites, bufReads, bufWrites, producers, active := setupForValidate(sys)

	err := sys.validate(active, producers, imgReads, bufReads, imgWrites, bufWrites)
	if !errors.Is(err, ErrReadBeforeWrite) {
		t.Errorf("validate() = %v, want ErrReadBeforeWrite", err)
	}
}

func TestValidateValidGraphPasses(t *testing.T) {
	sys, _ := chainSystem(t)

	imgReads, imgWrites, bufReads, bufWrites, producers, active := setupForValidate(sys)

	if err := sys.validate(active, producers, imgReads, bufReads, imgWrites, bufWrites); err != nil {
		t.Errorf("validate() = %v, want nil for a well-formed linear chain", err)
	}
}

func setupForValidate(sys *System) (imgReads, imgWrites, bufReads, bufWrites []VersionedHandle, producers producerMap, active []bool) {
	sys.runSetupFuncs()
	var imageVersions, bufferVersions []VersionHandle
	imgReads, imgWrites, bufReads, bufWrites, imageVersions, bufferVersions = sys.assignVersions()
	producers = sys.buildProducerMap(imgWrites, bufWrites, imageVersions, bufferVersions)
	active = sys.cullPasses(producers, imgReads, bufReads)
	return imgReads, imgWrites, bufReads, bufWrites, producers, active
}
