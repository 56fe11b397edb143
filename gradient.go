package vfx

// Gradient is a rectangular buffer with 16-bit signed channels, used for
// intermediate directional-derivative results that can be negative or
// exceed the 8-bit range. Layout matches Image: row-major, contiguous,
// channels interleaved per pixel.
type Gradient struct {
	width    int
	height   int
	channels int
	data     []int16
}

// NewGradient creates a zero-filled gradient buffer.
// Sobel filters rely on the zero fill for their untouched 1px border.
func NewGradient(width, height, channels int) *Gradient {
	if width <= 0 || height <= 0 || channels <= 0 {
		return &Gradient{}
	}
	return &Gradient{
		width:    width,
		height:   height,
		channels: channels,
		data:     make([]int16, width*height*channels),
	}
}

// Width returns the width of the buffer in pixels.
func (g *Gradient) Width() int { return g.width }

// Height returns the height of the buffer in pixels.
func (g *Gradient) Height() int { return g.height }

// Channels returns the number of channels per pixel.
func (g *Gradient) Channels() int { return g.channels }

// Data returns the raw backing storage.
func (g *Gradient) Data() []int16 { return g.data }

// Empty reports whether the buffer has no elements to operate on.
func (g *Gradient) Empty() bool {
	return g == nil || g.width <= 0 || g.height <= 0 || len(g.data) == 0
}

// Matches reports whether o shares this buffer's geometry.
// Gradient pairs must match before magnitude or emboss may combine them.
func (g *Gradient) Matches(o *Gradient) bool {
	return o != nil && g.width == o.width && g.height == o.height && g.channels == o.channels
}

// Row returns the scanline at y as a contiguous slice,
// channels elements per pixel. The slice aliases the buffer storage.
func (g *Gradient) Row(y int) []int16 {
	stride := g.width * g.channels
	return g.data[y*stride : (y+1)*stride]
}

// Pixel returns channel c of the element at (x, y).
// Coordinates are not bounds-checked; the caller validates them.
func (g *Gradient) Pixel(x, y, c int) int16 {
	return g.data[(y*g.width+x)*g.channels+c]
}

// SetPixel sets channel c of the element at (x, y).
// Coordinates are not bounds-checked; the caller validates them.
func (g *Gradient) SetPixel(x, y, c int, v int16) {
	g.data[(y*g.width+x)*g.channels+c] = v
}

// Image converts the gradient to an 8-bit image by absolute value,
// clamped to 255. This is the conventional way to display a raw Sobel
// response, where sign only encodes edge direction.
func (g *Gradient) Image() *Image {
	p := NewImage(g.width, g.height, g.channels)
	for i, v := range g.data {
		if v < 0 {
			v = -v
		}
		if v > 255 {
			v = 255
		}
		p.data[i] = uint8(v)
	}
	return p
}
