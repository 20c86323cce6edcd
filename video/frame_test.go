package video

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRationalFloat(t *testing.T) {
	tests := []struct {
		name string
		r    Rational
		want float64
	}{
		{name: "timebase", r: Rational{Num: 1, Den: 25}, want: 0.04},
		{name: "frame rate", r: Rational{Num: 30000, Den: 1001}, want: 30000.0 / 1001.0},
		{name: "negative", r: Rational{Num: -1, Den: 2}, want: -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.r.Float(), 1e-12)
		})
	}
}

func TestRationalFloatUnknown(t *testing.T) {
	assert.True(t, math.IsNaN(Rational{}.Float()))
	assert.True(t, math.IsNaN(Rational{Num: 25}.Float()))
	assert.True(t, math.IsNaN(Rational{Den: 1}.Float()))
}

func TestNewFrame(t *testing.T) {
	tests := []struct {
		name       string
		format     PixelFormat
		w, h       int
		wantChroma int
		wantAlpha  bool
	}{
		{name: "yuv444p", format: YUV444P, w: 16, h: 8, wantChroma: 16 * 8},
		{name: "yuv422p", format: YUV422P, w: 16, h: 8, wantChroma: 8 * 8},
		{name: "yuv420p", format: YUV420P, w: 16, h: 8, wantChroma: 8 * 4},
		{name: "yuv410p", format: YUV410P, w: 16, h: 8, wantChroma: 4 * 2},
		{name: "yuva420p", format: YUVA420P, w: 16, h: 8, wantChroma: 8 * 4, wantAlpha: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, err := NewFrame(tt.format, tt.w, tt.h)
			require.NoError(t, err)

			assert.Len(t, frame.Y, tt.w*tt.h)
			assert.Len(t, frame.U, tt.wantChroma)
			assert.Len(t, frame.V, tt.wantChroma)
			assert.Equal(t, NoPTS, frame.PTS)
			assert.NoError(t, frame.Validate())
			if tt.wantAlpha {
				assert.Len(t, frame.A, tt.w*tt.h)
			} else {
				assert.Nil(t, frame.A)
			}
		})
	}
}

func TestNewFrameRejectsInvalid(t *testing.T) {
	_, err := NewFrame(PixelFormat(99), 16, 16)
	assert.Error(t, err)

	_, err = NewFrame(YUV420P, 0, 16)
	assert.Error(t, err)

	_, err = NewFrame(YUV420P, 16, -1)
	assert.Error(t, err)
}

func TestFrameValidate(t *testing.T) {
	frame, err := NewFrame(YUV420P, 16, 8)
	require.NoError(t, err)
	require.NoError(t, frame.Validate())

	short := *frame
	short.U = short.U[:len(short.U)-1]
	assert.Error(t, short.Validate())

	badStride := *frame
	badStride.YStride = 8
	assert.Error(t, badStride.Validate())

	var nilFrame *Frame
	assert.Error(t, nilFrame.Validate())
}

func TestCopyPlane(t *testing.T) {
	// Copy between planes with different strides; padding bytes in the
	// destination stay untouched.
	src := make([]byte, 6*4)
	for i := range src {
		src[i] = byte(i + 1)
	}
	dst := make([]byte, 8*4)

	CopyPlane(dst, 8, src, 6, 5, 4)

	for row := 0; row < 4; row++ {
		for col := 0; col < 5; col++ {
			assert.Equal(t, src[row*6+col], dst[row*8+col], "row %d col %d", row, col)
		}
		for col := 5; col < 8; col++ {
			assert.Equal(t, byte(0), dst[row*8+col], "padding row %d col %d", row, col)
		}
	}
}
