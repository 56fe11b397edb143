package filter

import (
	"math"

	"github.com/gopixel/vfx"
)

// SobelX computes the horizontal Sobel gradient of src.
//
// The response is signed and unnormalized, so it is returned in a 16-bit
// Gradient buffer. The 1px border, where the kernel does not fit, stays
// zero.
func SobelX(src *vfx.Image) (*vfx.Gradient, error) {
	if src.Empty() {
		return nil, vfx.ErrEmptyImage
	}
	dst := vfx.NewGradient(src.Width(), src.Height(), src.Channels())
	convolveSigned(src, dst, sobelX2D3)
	return dst, nil
}

// SobelY computes the vertical Sobel gradient of src.
// See SobelX for the output contract.
func SobelY(src *vfx.Image) (*vfx.Gradient, error) {
	if src.Empty() {
		return nil, vfx.ErrEmptyImage
	}
	dst := vfx.NewGradient(src.Width(), src.Height(), src.Channels())
	convolveSigned(src, dst, sobelY2D3)
	return dst, nil
}

// Magnitude combines a Sobel gradient pair into the per-channel Euclidean
// gradient magnitude sqrt(sx² + sy²), clamped to 255.
//
// The theoretical maximum response (~1443 on a max-contrast edge) exceeds
// the 8-bit range, so the clamp is part of the contract rather than an
// implicit narrowing.
func Magnitude(sx, sy *vfx.Gradient) (*vfx.Image, error) {
	if sx.Empty() || sy.Empty() {
		return nil, vfx.ErrEmptyImage
	}
	if !sx.Matches(sy) {
		return nil, vfx.ErrDimensionMismatch
	}

	dst := vfx.NewImage(sx.Width(), sx.Height(), sx.Channels())
	xs := sx.Data()
	ys := sy.Data()
	out := dst.Data()
	for i := range xs {
		fx := float64(xs[i])
		fy := float64(ys[i])
		out[i] = clampUint8f(math.Sqrt(fx*fx + fy*fy))
	}
	return dst, nil
}

// GradientMagnitude computes the Sobel gradient magnitude of src in one
// call: SobelX, SobelY, then Magnitude on the pair.
func GradientMagnitude(src *vfx.Image) (*vfx.Image, error) {
	sx, err := SobelX(src)
	if err != nil {
		return nil, err
	}
	sy, err := SobelY(src)
	if err != nil {
		return nil, err
	}
	return Magnitude(sx, sy)
}

// embossDirection is the unit vector of the fixed 45° light direction.
const embossDirection = 0.7071

// Emboss renders a gradient pair as an embossed relief: the gradient is
// projected onto a fixed 45° direction, offset by neutral grey 128 and
// clamped to [0, 255].
func Emboss(sx, sy *vfx.Gradient) (*vfx.Image, error) {
	if sx.Empty() || sy.Empty() {
		return nil, vfx.ErrEmptyImage
	}
	if !sx.Matches(sy) {
		return nil, vfx.ErrDimensionMismatch
	}

	dst := vfx.NewImage(sx.Width(), sx.Height(), sx.Channels())
	xs := sx.Data()
	ys := sy.Data()
	out := dst.Data()
	for i := range xs {
		d := embossDirection*float64(xs[i]) + embossDirection*float64(ys[i])
		out[i] = clampUint8f(128 + d)
	}
	return dst, nil
}

// EmbossEffect computes the embossed relief of src in one call:
// SobelX, SobelY, then Emboss on the pair.
func EmbossEffect(src *vfx.Image) (*vfx.Image, error) {
	sx, err := SobelX(src)
	if err != nil {
		return nil, err
	}
	sy, err := SobelY(src)
	if err != nil {
		return nil, err
	}
	return Emboss(sx, sy)
}
