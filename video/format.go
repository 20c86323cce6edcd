package video

import "fmt"

// PixelFormat identifies a planar YUV pixel format supported by the filter.
type PixelFormat int

// Supported planar formats. Chroma subsampling ranges from none (4:4:4)
// to 4x in each direction (4:1:0); YUVA420P carries an extra alpha plane
// that passes through the filter untouched.
const (
	YUV444P PixelFormat = iota
	YUV440P
	YUV422P
	YUV420P
	YUV411P
	YUV410P
	YUVA420P
)

// formatDesc describes the geometry of one pixel format.
type formatDesc struct {
	name     string
	chromaW  int // log2 horizontal chroma subsampling
	chromaH  int // log2 vertical chroma subsampling
	hasAlpha bool
}

var formatDescs = map[PixelFormat]formatDesc{
	YUV444P:  {name: "yuv444p", chromaW: 0, chromaH: 0},
	YUV440P:  {name: "yuv440p", chromaW: 0, chromaH: 1},
	YUV422P:  {name: "yuv422p", chromaW: 1, chromaH: 0},
	YUV420P:  {name: "yuv420p", chromaW: 1, chromaH: 1},
	YUV411P:  {name: "yuv411p", chromaW: 2, chromaH: 0},
	YUV410P:  {name: "yuv410p", chromaW: 2, chromaH: 2},
	YUVA420P: {name: "yuva420p", chromaW: 1, chromaH: 1, hasAlpha: true},
}

// SupportedFormats returns the static compatibility list the filter
// negotiates from.
func SupportedFormats() []PixelFormat {
	return []PixelFormat{
		YUV444P, YUV422P,
		YUV420P, YUV411P,
		YUV410P, YUV440P,
		YUVA420P,
	}
}

// Supported reports whether the format is on the compatibility list.
func (f PixelFormat) Supported() bool {
	_, ok := formatDescs[f]
	return ok
}

// ChromaShift returns the log2 horizontal and vertical subsampling
// factors between the luma plane and the chroma planes.
func (f PixelFormat) ChromaShift() (hsub, vsub int) {
	desc := formatDescs[f]
	return desc.chromaW, desc.chromaH
}

// HasAlpha reports whether the format carries an alpha plane.
func (f PixelFormat) HasAlpha() bool {
	return formatDescs[f].hasAlpha
}

// String returns the conventional short name of the format.
func (f PixelFormat) String() string {
	if desc, ok := formatDescs[f]; ok {
		return desc.name
	}
	return fmt.Sprintf("PixelFormat(%d)", int(f))
}
