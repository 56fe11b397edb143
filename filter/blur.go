package filter

import (
	"errors"

	"github.com/gopixel/vfx"
)

// ErrUnknownStrategy is returned when a Strategy value is out of range.
var ErrUnknownStrategy = errors.New("filter: unknown blur strategy")

// Strategy selects the memory-access pattern used by Blur5x5.
//
// All strategies compute the same integer 5×5 Gaussian average and are
// pixel-identical; they differ only in how they walk the buffers. The
// bench package times them against each other.
type Strategy int

const (
	// Full2D sums the full 5×5 footprint with nested kernel loops and
	// element-indexed access. The naive baseline.
	Full2D Strategy = iota

	// Separable runs a horizontal then a vertical 1×5 pass with
	// element-indexed access.
	Separable

	// Unrolled2D sums all 25 footprint terms written out explicitly,
	// element-indexed access.
	Unrolled2D

	// UnrolledRows sums all 25 terms explicitly, reading through five
	// cached row slices instead of per-element index math.
	UnrolledRows

	// TwoPassRows combines the separable two-pass math with cached row
	// slices and unrolled five-term sums. The production variant.
	TwoPassRows
)

// String returns the strategy name used in benchmark output and filenames.
func (s Strategy) String() string {
	switch s {
	case Full2D:
		return "full2d"
	case Separable:
		return "separable"
	case Unrolled2D:
		return "unrolled2d"
	case UnrolledRows:
		return "unrolledrows"
	case TwoPassRows:
		return "twopassrows"
	default:
		return "unknown"
	}
}

// Strategies returns every blur strategy in benchmark order.
func Strategies() []Strategy {
	return []Strategy{Full2D, Separable, Unrolled2D, UnrolledRows, TwoPassRows}
}

// Blur applies the 5×5 Gaussian blur with the production strategy.
func Blur(src *vfx.Image) (*vfx.Image, error) {
	return Blur5x5(src, TwoPassRows)
}

// Blur5x5 applies an integer 5×5 Gaussian blur (weights 1-2-4-2-1 in each
// direction, divisor 100) using the given access strategy.
//
// Pixels within 2px of any edge are copied through from src unchanged.
// Images too small to hold the kernel footprint come back as a plain copy.
func Blur5x5(src *vfx.Image, s Strategy) (*vfx.Image, error) {
	if src.Empty() {
		return nil, vfx.ErrEmptyImage
	}

	dst := src.Clone()
	switch s {
	case Full2D:
		convolve(src, dst, gauss2D5)
	case Separable:
		blurSeparable(src, dst)
	case Unrolled2D:
		blurUnrolled2D(src, dst)
	case UnrolledRows:
		blurUnrolledRows(src, dst)
	case TwoPassRows:
		blurTwoPassRows(src, dst)
	default:
		return nil, ErrUnknownStrategy
	}
	return dst, nil
}

// blurSeparable runs the blur as two 1×5 passes with indexed access.
// Horizontal sums are kept at full precision in a temp buffer and the
// divide by 100 happens once after the vertical pass, so the result is
// bit-identical to the full 2D summation.
func blurSeparable(src, dst *vfx.Image) {
	w, h, ch := src.Width(), src.Height(), src.Channels()
	if w < 5 || h < 5 {
		return
	}

	// Horizontal pass over every row: the vertical pass at y=2 needs
	// temp rows 0 through 4.
	temp := make([]int32, w*h*ch)
	for y := 0; y < h; y++ {
		for x := 2; x < w-2; x++ {
			for c := 0; c < ch; c++ {
				sum := int(src.Pixel(x-2, y, c)) +
					2*int(src.Pixel(x-1, y, c)) +
					4*int(src.Pixel(x, y, c)) +
					2*int(src.Pixel(x+1, y, c)) +
					int(src.Pixel(x+2, y, c))
				temp[(y*w+x)*ch+c] = int32(sum)
			}
		}
	}

	for y := 2; y < h-2; y++ {
		for x := 2; x < w-2; x++ {
			for c := 0; c < ch; c++ {
				i := (y*w + x) * ch
				stride := w * ch
				sum := temp[i+c-2*stride] +
					2*temp[i+c-stride] +
					4*temp[i+c] +
					2*temp[i+c+stride] +
					temp[i+c+2*stride]
				dst.SetPixel(x, y, c, uint8(sum/100))
			}
		}
	}
}

// blurUnrolled2D sums the full footprint with all 25 terms written out,
// using indexed access throughout.
func blurUnrolled2D(src, dst *vfx.Image) {
	w, h, ch := src.Width(), src.Height(), src.Channels()

	for y := 2; y < h-2; y++ {
		for x := 2; x < w-2; x++ {
			for c := 0; c < ch; c++ {
				sum := 1*int(src.Pixel(x-2, y-2, c)) + 2*int(src.Pixel(x-1, y-2, c)) + 4*int(src.Pixel(x, y-2, c)) + 2*int(src.Pixel(x+1, y-2, c)) + 1*int(src.Pixel(x+2, y-2, c)) +
					2*int(src.Pixel(x-2, y-1, c)) + 4*int(src.Pixel(x-1, y-1, c)) + 8*int(src.Pixel(x, y-1, c)) + 4*int(src.Pixel(x+1, y-1, c)) + 2*int(src.Pixel(x+2, y-1, c)) +
					4*int(src.Pixel(x-2, y, c)) + 8*int(src.Pixel(x-1, y, c)) + 16*int(src.Pixel(x, y, c)) + 8*int(src.Pixel(x+1, y, c)) + 4*int(src.Pixel(x+2, y, c)) +
					2*int(src.Pixel(x-2, y+1, c)) + 4*int(src.Pixel(x-1, y+1, c)) + 8*int(src.Pixel(x, y+1, c)) + 4*int(src.Pixel(x+1, y+1, c)) + 2*int(src.Pixel(x+2, y+1, c)) +
					1*int(src.Pixel(x-2, y+2, c)) + 2*int(src.Pixel(x-1, y+2, c)) + 4*int(src.Pixel(x, y+2, c)) + 2*int(src.Pixel(x+1, y+2, c)) + 1*int(src.Pixel(x+2, y+2, c))
				dst.SetPixel(x, y, c, uint8(sum/100))
			}
		}
	}
}

// blurUnrolledRows sums all 25 terms through five cached row slices,
// avoiding the per-element index multiply of the Pixel accessor.
func blurUnrolledRows(src, dst *vfx.Image) {
	w, h, ch := src.Width(), src.Height(), src.Channels()
	if w < 5 || h < 5 {
		return
	}

	for y := 2; y < h-2; y++ {
		r0 := src.Row(y - 2)
		r1 := src.Row(y - 1)
		r2 := src.Row(y)
		r3 := src.Row(y + 1)
		r4 := src.Row(y + 2)
		out := dst.Row(y)

		for x := 2; x < w-2; x++ {
			for c := 0; c < ch; c++ {
				i := x*ch + c
				m2, m1, p1, p2 := i-2*ch, i-ch, i+ch, i+2*ch
				sum := 1*int(r0[m2]) + 2*int(r0[m1]) + 4*int(r0[i]) + 2*int(r0[p1]) + 1*int(r0[p2]) +
					2*int(r1[m2]) + 4*int(r1[m1]) + 8*int(r1[i]) + 4*int(r1[p1]) + 2*int(r1[p2]) +
					4*int(r2[m2]) + 8*int(r2[m1]) + 16*int(r2[i]) + 8*int(r2[p1]) + 4*int(r2[p2]) +
					2*int(r3[m2]) + 4*int(r3[m1]) + 8*int(r3[i]) + 4*int(r3[p1]) + 2*int(r3[p2]) +
					1*int(r4[m2]) + 2*int(r4[m1]) + 4*int(r4[i]) + 2*int(r4[p1]) + 1*int(r4[p2])
				out[i] = uint8(sum / 100)
			}
		}
	}
}

// blurTwoPassRows is the production variant: separable two-pass math with
// cached row slices and unrolled five-term sums in both passes.
func blurTwoPassRows(src, dst *vfx.Image) {
	w, h, ch := src.Width(), src.Height(), src.Channels()
	if w < 5 || h < 5 {
		return
	}
	stride := w * ch

	temp := make([]int32, w*h*ch)
	for y := 0; y < h; y++ {
		row := src.Row(y)
		trow := temp[y*stride : (y+1)*stride]
		for x := 2; x < w-2; x++ {
			for c := 0; c < ch; c++ {
				i := x*ch + c
				trow[i] = int32(row[i-2*ch]) +
					2*int32(row[i-ch]) +
					4*int32(row[i]) +
					2*int32(row[i+ch]) +
					int32(row[i+2*ch])
			}
		}
	}

	for y := 2; y < h-2; y++ {
		t0 := temp[(y-2)*stride : (y-1)*stride]
		t1 := temp[(y-1)*stride : y*stride]
		t2 := temp[y*stride : (y+1)*stride]
		t3 := temp[(y+1)*stride : (y+2)*stride]
		t4 := temp[(y+2)*stride : (y+3)*stride]
		out := dst.Row(y)

		for x := 2; x < w-2; x++ {
			for c := 0; c < ch; c++ {
				i := x*ch + c
				sum := t0[i] + 2*t1[i] + 4*t2[i] + 2*t3[i] + t4[i]
				out[i] = uint8(sum / 100)
			}
		}
	}
}

// Gauss3x3 applies an integer 3×3 Gaussian blur (weights 1-2-1, divisor
// 16). Pixels within 1px of any edge are copied through from src.
func Gauss3x3(src *vfx.Image) (*vfx.Image, error) {
	if src.Empty() {
		return nil, vfx.ErrEmptyImage
	}
	dst := src.Clone()
	convolve(src, dst, gauss2D3)
	return dst, nil
}
