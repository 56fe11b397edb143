package filter

import "github.com/gopixel/vfx"

// Kernel1D is an odd-length integer convolution kernel for one separable
// pass. Div is the normalization divisor, equal to the sum of the weights.
type Kernel1D struct {
	Weights []int
	Div     int
}

// Kernel2D is a square odd-dimension integer convolution kernel.
// Weights are stored row-major. Div is the normalization divisor; a Div
// of zero means the raw sum is kept (used by derivative kernels).
type Kernel2D struct {
	Weights []int
	Size    int
	Div     int
}

// Radius returns the half-width of the kernel footprint.
func (k Kernel2D) Radius() int { return k.Size / 2 }

// Fixed kernels. The divisors (16, 100, 10) are part of the filter
// contract: output is integer-divided with truncation, and changing them
// changes every documented pixel value.
var (
	// gauss1D5 is one separable pass of the 5×5 Gaussian.
	gauss1D5 = Kernel1D{Weights: []int{1, 2, 4, 2, 1}, Div: 10}

	// gauss2D5 is the full 5×5 Gaussian, the outer product of gauss1D5
	// with itself. Weight sum is 100.
	gauss2D5 = outerProduct(gauss1D5)

	// gauss2D3 is the 3×3 Gaussian with weight sum 16.
	gauss2D3 = Kernel2D{
		Weights: []int{
			1, 2, 1,
			2, 4, 2,
			1, 2, 1,
		},
		Size: 3,
		Div:  16,
	}

	// sobelX2D3 responds to horizontal intensity change. No divisor:
	// the signed response is kept raw in a Gradient buffer.
	sobelX2D3 = Kernel2D{
		Weights: []int{
			-1, 0, 1,
			-2, 0, 2,
			-1, 0, 1,
		},
		Size: 3,
	}

	// sobelY2D3 responds to vertical intensity change.
	sobelY2D3 = Kernel2D{
		Weights: []int{
			-1, -2, -1,
			0, 0, 0,
			1, 2, 1,
		},
		Size: 3,
	}
)

// outerProduct expands a separable 1D kernel into its 2D form.
// The 2D divisor is the square of the 1D divisor.
func outerProduct(k Kernel1D) Kernel2D {
	n := len(k.Weights)
	w := make([]int, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			w[y*n+x] = k.Weights[y] * k.Weights[x]
		}
	}
	return Kernel2D{Weights: w, Size: n, Div: k.Div * k.Div}
}

// convolve applies k to the interior of src, writing into dst.
// Border pixels (within Radius of an edge) are left as dst already has
// them; callers clone src into dst first to get border pass-through.
// Sums are kept at full precision and divided once, truncating.
func convolve(src, dst *vfx.Image, k Kernel2D) {
	r := k.Radius()
	w, h, ch := src.Width(), src.Height(), src.Channels()

	for y := r; y < h-r; y++ {
		for x := r; x < w-r; x++ {
			for c := 0; c < ch; c++ {
				sum := 0
				for ky := -r; ky <= r; ky++ {
					for kx := -r; kx <= r; kx++ {
						sum += k.Weights[(ky+r)*k.Size+kx+r] * int(src.Pixel(x+kx, y+ky, c))
					}
				}
				dst.SetPixel(x, y, c, uint8(sum/k.Div))
			}
		}
	}
}

// convolveSigned applies a derivative kernel to src, writing the raw
// signed response into dst. The dst border stays at its zero fill.
func convolveSigned(src *vfx.Image, dst *vfx.Gradient, k Kernel2D) {
	r := k.Radius()
	w, h, ch := src.Width(), src.Height(), src.Channels()

	for y := r; y < h-r; y++ {
		for x := r; x < w-r; x++ {
			for c := 0; c < ch; c++ {
				sum := 0
				for ky := -r; ky <= r; ky++ {
					for kx := -r; kx <= r; kx++ {
						sum += k.Weights[(ky+r)*k.Size+kx+r] * int(src.Pixel(x+kx, y+ky, c))
					}
				}
				dst.SetPixel(x, y, c, int16(sum))
			}
		}
	}
}

// clampUint8f clamps a float64 to [0, 255], truncating toward zero.
func clampUint8f(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
