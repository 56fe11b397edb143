package filter

import "github.com/gopixel/vfx"

// Sepia tone matrix, row-major over (R, G, B) input. Each row sums to
// roughly 1.0, so uniform pixels keep their intensity.
var sepiaMatrix = [3][3]float64{
	{0.393, 0.769, 0.189}, // R'
	{0.349, 0.686, 0.168}, // G'
	{0.272, 0.534, 0.131}, // B'
}

// Greyscale converts a color image to greyscale by setting every channel
// of each pixel to 255 minus its red value. An intentionally unusual
// conversion: it inverts bright red regions instead of averaging.
func Greyscale(src *vfx.Image) (*vfx.Image, error) {
	if src.Empty() {
		return nil, vfx.ErrEmptyImage
	}

	dst := src.Clone()
	w, h, ch := dst.Width(), dst.Height(), dst.Channels()
	for y := 0; y < h; y++ {
		row := dst.Row(y)
		for x := 0; x < w; x++ {
			i := x * ch
			inverted := 255 - row[i]
			for c := 0; c < ch; c++ {
				row[i+c] = inverted
			}
		}
	}
	return dst, nil
}

// Sepia applies the classic sepia tone color matrix, clamping each
// channel to 255.
func Sepia(src *vfx.Image) (*vfx.Image, error) {
	if src.Empty() {
		return nil, vfx.ErrEmptyImage
	}
	if src.Channels() < 3 {
		return nil, vfx.ErrInvalidChannels
	}

	dst := vfx.NewImage(src.Width(), src.Height(), src.Channels())
	w, h, ch := src.Width(), src.Height(), src.Channels()
	for y := 0; y < h; y++ {
		in := src.Row(y)
		out := dst.Row(y)
		for x := 0; x < w; x++ {
			i := x * ch
			r := float64(in[i])
			g := float64(in[i+1])
			b := float64(in[i+2])
			for c := 0; c < 3; c++ {
				m := &sepiaMatrix[c]
				out[i+c] = clampUint8f(m[0]*r + m[1]*g + m[2]*b)
			}
		}
	}
	return dst, nil
}

// Negative inverts every channel: v becomes 255 - v.
// Applying Negative twice restores the original image exactly.
func Negative(src *vfx.Image) (*vfx.Image, error) {
	if src.Empty() {
		return nil, vfx.ErrEmptyImage
	}

	dst := vfx.NewImage(src.Width(), src.Height(), src.Channels())
	in := src.Data()
	out := dst.Data()
	for i, v := range in {
		out[i] = 255 - v
	}
	return dst, nil
}

// Brightness multiplies every channel by factor, clamping to [0, 255].
// A factor of 1.0 is the identity; 2.0 doubles intensity.
func Brightness(src *vfx.Image, factor float64) (*vfx.Image, error) {
	if src.Empty() {
		return nil, vfx.ErrEmptyImage
	}

	dst := vfx.NewImage(src.Width(), src.Height(), src.Channels())
	in := src.Data()
	out := dst.Data()
	for i, v := range in {
		out[i] = clampUint8f(float64(v) * factor)
	}
	return dst, nil
}
