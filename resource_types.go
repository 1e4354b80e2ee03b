package framegraph

import "github.com/gogpu/gputypes"

// ImageFormat is the pixel format of an image resource. It is the real
// wire format a Backend eventually binds to, not a parallel enum — see
// gputypes.TextureFormat.
type ImageFormat = gputypes.TextureFormat

// ImageUsage is a bitmask describing how an image may be accessed.
type ImageUsage uint32

const (
	ImageUsageNone ImageUsage = 0

	ImageUsageTransferSrc          ImageUsage = 1 << 0
	ImageUsageTransferDst          ImageUsage = 1 << 1
	ImageUsageSampled              ImageUsage = 1 << 2
	ImageUsageStorage              ImageUsage = 1 << 3
	ImageUsageColorAttachment      ImageUsage = 1 << 4
	ImageUsageDepthStencilAttach   ImageUsage = 1 << 5
)

// BufferUsage is a bitmask describing how a buffer may be accessed.
type BufferUsage uint32

const (
	BufferUsageNone BufferUsage = 0

	BufferUsageTransferSrc    BufferUsage = 1 << 0
	BufferUsageTransferDst    BufferUsage = 1 << 1
	BufferUsageUniform        BufferUsage = 1 << 2
	BufferUsageStorage        BufferUsage = 1 << 3
	BufferUsageIndex          BufferUsage = 1 << 4
	BufferUsageVertex         BufferUsage = 1 << 5
	BufferUsageIndirect       BufferUsage = 1 << 6
)

// ImageType is the dimensionality of an image.
type ImageType uint32

const (
	ImageType1D ImageType = iota
	ImageType2D
	ImageType3D
)

// ImageFlags is a bitmask of extra image creation flags.
type ImageFlags uint32

const (
	ImageFlagsNone           ImageFlags = 0
	ImageFlagsCubeCompatible ImageFlags = 1 << 0
	ImageFlagsMutableFormat  ImageFlags = 1 << 1
)

// Extent3D is the width/height/depth of an image, in texels.
type Extent3D struct {
	Width  uint32
	Height uint32
	Depth  uint32
}

// ImageInfo describes an image resource at creation time.
type ImageInfo struct {
	Name         string
	Format       ImageFormat
	Extent       Extent3D
	Usage        ImageUsage
	Type         ImageType
	Flags        ImageFlags
	MipLevels    uint32
	ArrayLayers  uint32
	SampleCount  uint32
	Imported     bool
}

// BufferInfo describes a buffer resource at creation time.
type BufferInfo struct {
	Name     string
	Size     uint64
	Usage    BufferUsage
	Imported bool
}
