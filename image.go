package vfx

import (
	"errors"
	"image"
	"image/color"
)

// Common errors for buffer operations.
var (
	// ErrEmptyImage is returned when a filter or buffer operation receives
	// an image with zero dimension or no backing storage.
	ErrEmptyImage = errors.New("vfx: empty image")

	// ErrInvalidChannels is returned when the channel count is not 1 or 3.
	ErrInvalidChannels = errors.New("vfx: channel count must be 1 or 3")

	// ErrDimensionMismatch is returned when paired buffers (for example a
	// Sobel gradient pair) do not share identical geometry.
	ErrDimensionMismatch = errors.New("vfx: buffer dimensions do not match")
)

// Image is a rectangular pixel buffer with 8-bit unsigned channels.
//
// Storage is row-major and contiguous: pixel (x, y) starts at
// (y*width+x)*channels, with channels in R, G, B order for color images.
// An Image is exclusively owned by its creator; filters never retain a
// reference to their inputs and always return freshly allocated outputs.
type Image struct {
	width    int
	height   int
	channels int
	data     []uint8
}

// NewImage creates a zero-filled image with the given dimensions.
// Channels is 3 for color images and 1 for greyscale.
func NewImage(width, height, channels int) *Image {
	if width <= 0 || height <= 0 || channels <= 0 {
		return &Image{}
	}
	return &Image{
		width:    width,
		height:   height,
		channels: channels,
		data:     make([]uint8, width*height*channels),
	}
}

// Width returns the width of the image in pixels.
func (p *Image) Width() int { return p.width }

// Height returns the height of the image in pixels.
func (p *Image) Height() int { return p.height }

// Channels returns the number of channels per pixel.
func (p *Image) Channels() int { return p.channels }

// Data returns the raw backing storage.
func (p *Image) Data() []uint8 { return p.data }

// Empty reports whether the image has no pixels to operate on.
// Filters check this before touching a destination buffer.
func (p *Image) Empty() bool {
	return p == nil || p.width <= 0 || p.height <= 0 || len(p.data) == 0
}

// Clone returns a deep copy with independent storage.
func (p *Image) Clone() *Image {
	c := &Image{
		width:    p.width,
		height:   p.height,
		channels: p.channels,
		data:     make([]uint8, len(p.data)),
	}
	copy(c.data, p.data)
	return c
}

// Row returns the scanline at y as a contiguous slice,
// channels elements per pixel. The slice aliases the image storage.
func (p *Image) Row(y int) []uint8 {
	stride := p.width * p.channels
	return p.data[y*stride : (y+1)*stride]
}

// Pixel returns channel c of the pixel at (x, y).
// Coordinates are not bounds-checked; the caller validates them.
func (p *Image) Pixel(x, y, c int) uint8 {
	return p.data[(y*p.width+x)*p.channels+c]
}

// SetPixel sets channel c of the pixel at (x, y).
// Coordinates are not bounds-checked; the caller validates them.
func (p *Image) SetPixel(x, y, c int, v uint8) {
	p.data[(y*p.width+x)*p.channels+c] = v
}

// Fill sets every channel of every pixel to v.
func (p *Image) Fill(v uint8) {
	for i := range p.data {
		p.data[i] = v
	}
}

// ToImage converts the buffer to an image.RGBA.
// Greyscale buffers replicate their single channel into R, G and B.
func (p *Image) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	for y := 0; y < p.height; y++ {
		row := p.Row(y)
		for x := 0; x < p.width; x++ {
			di := img.PixOffset(x, y)
			if p.channels >= 3 {
				si := x * p.channels
				img.Pix[di+0] = row[si+0]
				img.Pix[di+1] = row[si+1]
				img.Pix[di+2] = row[si+2]
			} else {
				v := row[x]
				img.Pix[di+0] = v
				img.Pix[di+1] = v
				img.Pix[di+2] = v
			}
			img.Pix[di+3] = 0xff
		}
	}
	return img
}

// FromImage creates a 3-channel image from any image.Image.
func FromImage(img image.Image) *Image {
	bounds := img.Bounds()
	p := NewImage(bounds.Dx(), bounds.Dy(), 3)
	for y := 0; y < p.height; y++ {
		row := p.Row(y)
		for x := 0; x < p.width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := x * 3
			row[i+0] = uint8(r >> 8)
			row[i+1] = uint8(g >> 8)
			row[i+2] = uint8(b >> 8)
		}
	}
	return p
}

// At implements the image.Image interface.
func (p *Image) At(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	if p.channels >= 3 {
		i := (y*p.width + x) * p.channels
		return color.RGBA{R: p.data[i], G: p.data[i+1], B: p.data[i+2], A: 0xff}
	}
	v := p.data[y*p.width+x]
	return color.RGBA{R: v, G: v, B: v, A: 0xff}
}

// Bounds implements the image.Image interface.
func (p *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Image) ColorModel() color.Model {
	return color.RGBAModel
}
