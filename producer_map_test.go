package framegraph

import "testing"

func TestBuildProducerMapResolvesEachWrite(t *testing.T) {
	sys, img := chainSystem(t)
	sys.runSetupFuncs()
	imgReads, imgWrites, bufReads, bufWrites, imageVersions, bufferVersions := sys.assignVersions()
	_ = imgReads
	_ = bufReads
	_ = bufWrites

	producers := sys.buildProducerMap(imgWrites, bufWrites, imageVersions, bufferVersions)

	if got := producers.imageProducer(packHandle(img, 0)); got != PassHandle(0) {
		t.Errorf("producer of version 0 = %d, want pass 0", got)
	}
	if got := producers.imageProducer(packHandle(img, 1)); got != PassHandle(1) {
		t.Errorf("producer of version 1 = %d, want pass 1", got)
	}
}

func TestBuildProducerMapUnknownVersionIsInvalid(t *testing.T) {
	sys, img := chainSystem(t)
	sys.runSetupFuncs()
	_, imgWrites, _, bufWrites, imageVersions, bufferVersions := sys.assignVersions()

	producers := sys.buildProducerMap(imgWrites, bufWrites, imageVersions, bufferVersions)

	if got := producers.imageProducer(packHandle(img, 99)); got != InvalidPass {
		t.Errorf("producer of an unwritten version = %d, want InvalidPass", got)
	}
}

func TestBuildProducerMapInvalidVersionedHandle(t *testing.T) {
	sys, _ := chainSystem(t)
	sys.runSetupFuncs()
	_, imgWrites, _, bufWrites, imageVersions, bufferVersions := sys.assignVersions()

	producers := sys.buildProducerMap(imgWrites, bufWrites, imageVersions, bufferVersions)

	if got := producers.imageProducer(InvalidVersionedHandle); got != InvalidPass {
		t.Errorf("producer of InvalidVersionedHandle = %d, want InvalidPass", got)
	}
}

func TestBuildProducerMapLatestTracksFinalVersion(t *testing.T) {
	sys, img := chainSystem(t)
	sys.runSetupFuncs()
	_, imgWrites, _, bufWrites, imageVersions, bufferVersions := sys.assignVersions()

	producers := sys.buildProducerMap(imgWrites, bufWrites, imageVersions, bufferVersions)

	if got := producers.imgLatest[img]; unpackVersion(got) != 1 {
		t.Errorf("imgLatest[img] versioned %d, want 1 (two writes => last version is 1)", unpackVersion(got))
	}
}
