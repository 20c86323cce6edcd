package video

import (
	"fmt"
	"math"
)

// NoPTS marks a frame whose presentation timestamp is unknown.
// Timestamp-derived expression variables become NaN in that case.
const NoPTS = int64(math.MinInt64)

// Rational is an exact ratio of two integers, used for stream timebases
// and frame rates.
type Rational struct {
	Num int
	Den int
}

// Float converts the rational to a float64. A zero numerator or
// denominator yields NaN, signalling an unknown rate.
func (r Rational) Float() float64 {
	if r.Num == 0 || r.Den == 0 {
		return math.NaN()
	}
	return float64(r.Num) / float64(r.Den)
}

// String returns the ratio in num/den form.
func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

// Frame represents a planar YUV video frame.
//
// Plane buffers are row-major with independent strides; the chroma
// planes are subsampled according to the frame's pixel format. The
// alpha plane A is nil for formats without one.
type Frame struct {
	Format PixelFormat
	Width  int
	Height int
	Y      []byte // Luminance plane
	U      []byte // Chrominance U plane
	V      []byte // Chrominance V plane
	A      []byte // Alpha plane, nil when the format has none
	YStride int   // Stride for the Y (and A) plane
	CStride int   // Stride shared by the U and V planes
	PTS     int64 // Presentation timestamp in timebase units, or NoPTS
}

// NewFrame allocates a frame with tightly packed planes for the given
// format and luma dimensions.
func NewFrame(format PixelFormat, width, height int) (*Frame, error) {
	if !format.Supported() {
		return nil, fmt.Errorf("cannot allocate frame: unsupported pixel format %s", format)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid frame dimensions: %dx%d", width, height)
	}

	hsub, vsub := format.ChromaShift()
	cw := width >> hsub
	ch := height >> vsub

	frame := &Frame{
		Format:  format,
		Width:   width,
		Height:  height,
		Y:       make([]byte, width*height),
		U:       make([]byte, cw*ch),
		V:       make([]byte, cw*ch),
		YStride: width,
		CStride: cw,
		PTS:     NoPTS,
	}
	if format.HasAlpha() {
		frame.A = make([]byte, width*height)
	}
	return frame, nil
}

// ChromaSize returns the chroma plane dimensions implied by the frame's
// format and luma dimensions.
func (f *Frame) ChromaSize() (w, h int) {
	hsub, vsub := f.Format.ChromaShift()
	return f.Width >> hsub, f.Height >> vsub
}

// Validate checks that the plane buffers cover the frame's dimensions.
func (f *Frame) Validate() error {
	if f == nil {
		return fmt.Errorf("frame cannot be nil")
	}
	if !f.Format.Supported() {
		return fmt.Errorf("unsupported pixel format %s", f.Format)
	}
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("invalid frame dimensions: %dx%d", f.Width, f.Height)
	}
	if f.YStride < f.Width {
		return fmt.Errorf("luma stride %d smaller than width %d", f.YStride, f.Width)
	}
	if len(f.Y) < planeSize(f.YStride, f.Height, f.Width) {
		return fmt.Errorf("luma plane too small: have %d bytes", len(f.Y))
	}
	cw, ch := f.ChromaSize()
	if f.CStride < cw {
		return fmt.Errorf("chroma stride %d smaller than chroma width %d", f.CStride, cw)
	}
	need := planeSize(f.CStride, ch, cw)
	if len(f.U) < need || len(f.V) < need {
		return fmt.Errorf("chroma planes too small: have U=%d V=%d, need %d bytes", len(f.U), len(f.V), need)
	}
	if f.Format.HasAlpha() && len(f.A) < planeSize(f.YStride, f.Height, f.Width) {
		return fmt.Errorf("alpha plane too small: have %d bytes", len(f.A))
	}
	return nil
}

// planeSize is the byte span of h stride-spaced rows where the last row
// only needs w valid samples.
func planeSize(stride, h, w int) int {
	if h == 0 {
		return 0
	}
	return stride*(h-1) + w
}

// CopyPlane copies a w x h sample region between two stride-spaced
// plane buffers. The buffers must not overlap.
func CopyPlane(dst []byte, dstStride int, src []byte, srcStride int, w, h int) {
	for row := 0; row < h; row++ {
		copy(dst[row*dstStride:row*dstStride+w], src[row*srcStride:row*srcStride+w])
	}
}
