package video

import "math"

// Fixed-point parameters for the chroma rotation. Coefficients carry 16
// fractional bits; rounding adds half a unit before the shift and the
// 128-centering bias is folded into the same shift.
const (
	coeffShift = 16
	coeffOne   = 1 << coeffShift
	roundBias  = 1 << (coeffShift - 1)
	centerBias = 128 << coeffShift
)

// Coefficients is a fixed-point rotation pair derived from hue and
// saturation. Cos and Sin are cos/sin of the hue angle scaled by 2^16
// and by the saturation, so one multiply-add per sample applies both
// the rotation and the magnitude scale.
type Coefficients struct {
	Cos int32
	Sin int32
}

// ComputeCoefficients converts a hue angle in radians and a saturation
// scalar into fixed-point rotation coefficients.
//
// Saturation is assumed to already lie in the valid range; scaling the
// coefficients by it sets the norm of the resulting (U, V) vector, which
// is exactly the saturation, avoiding a separate scaling pass.
func ComputeCoefficients(hueRadians, saturation float64) Coefficients {
	return Coefficients{
		Cos: int32(math.Round(math.Cos(hueRadians) * coeffOne * saturation)),
		Sin: int32(math.Round(math.Sin(hueRadians) * coeffOne * saturation)),
	}
}

// Identity reports whether the coefficients leave chroma unchanged
// (hue 0, saturation 1).
func (c Coefficients) Identity() bool {
	return c.Cos == coeffOne && c.Sin == 0
}

// RotateChroma applies the rotation to every (U, V) pair in a w x h
// chroma region.
//
// Treating U and V as the components of a 2D vector centered on 128,
// the vector's angle is the hue and its norm is the saturation:
//
//	newU = (c*u - s*v) >> 16
//	newV = (s*u + c*v) >> 16
//
// with half-unit rounding and the 128 re-centering bias folded into the
// shift. Results are clipped to [0, 255] so extreme saturation cannot
// wrap. The call is allocation-free and may cover any row subrange of a
// plane, letting callers process a frame in horizontal slices.
func RotateChroma(dstU, dstV []byte, dstStride int, srcU, srcV []byte, srcStride int, w, h int, co Coefficients) {
	c, s := co.Cos, co.Sin
	for row := 0; row < h; row++ {
		so := row * srcStride
		do := row * dstStride
		for i := 0; i < w; i++ {
			u := int32(srcU[so+i]) - 128
			v := int32(srcV[so+i]) - 128

			newU := (c*u - s*v + roundBias + centerBias) >> coeffShift
			newV := (s*u + c*v + roundBias + centerBias) >> coeffShift

			dstU[do+i] = clipUint8(newU)
			dstV[do+i] = clipUint8(newV)
		}
	}
}

// clipUint8 clamps to the 8-bit sample range.
func clipUint8(v int32) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}
