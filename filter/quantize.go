package filter

import (
	"errors"
	"math"

	"github.com/gopixel/vfx"
)

// ErrInvalidLevels is returned when the quantization level count is not
// positive.
var ErrInvalidLevels = errors.New("filter: levels must be positive")

// BlurQuantize blurs src with the 5×5 Gaussian and then quantizes each
// channel into levels equal-width intensity buckets, assigning the
// bucket's floor value.
//
// Bucket width is 255/levels in float; a blurred value v maps to
// floor(v/width)*width truncated to uint8. With levels=10 a blurred 127
// lands in bucket 4 and becomes 102.
func BlurQuantize(src *vfx.Image, levels int) (*vfx.Image, error) {
	if src.Empty() {
		return nil, vfx.ErrEmptyImage
	}
	if levels < 1 {
		return nil, ErrInvalidLevels
	}

	dst, err := Blur5x5(src, TwoPassRows)
	if err != nil {
		return nil, err
	}

	width := 255.0 / float64(levels)
	var lut [256]uint8
	for v := range lut {
		lut[v] = uint8(math.Floor(float64(v)/width) * width)
	}

	data := dst.Data()
	for i, v := range data {
		data[i] = lut[v]
	}
	return dst, nil
}
