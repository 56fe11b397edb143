package filter

import (
	"github.com/gopixel/vfx"
)

// Test helper functions shared across filter tests.

// uniformImage creates an image with every channel set to v.
func uniformImage(w, h, channels int, v uint8) *vfx.Image {
	p := vfx.NewImage(w, h, channels)
	p.Fill(v)
	return p
}

// noiseImage creates a deterministic pseudo-random image so comparative
// tests cover non-trivial pixel neighborhoods.
func noiseImage(w, h, channels int) *vfx.Image {
	p := vfx.NewImage(w, h, channels)
	data := p.Data()
	state := uint32(0x2545f491)
	for i := range data {
		// xorshift32
		state ^= state << 13
		state ^= state >> 17
		state ^= state << 5
		data[i] = uint8(state)
	}
	return p
}

// verticalEdgeImage creates an image whose left half is lo and right
// half is hi, giving a maximal horizontal gradient at the seam.
func verticalEdgeImage(w, h, channels int, lo, hi uint8) *vfx.Image {
	p := vfx.NewImage(w, h, channels)
	for y := 0; y < h; y++ {
		row := p.Row(y)
		for x := 0; x < w; x++ {
			v := lo
			if x >= w/2 {
				v = hi
			}
			for c := 0; c < channels; c++ {
				row[x*channels+c] = v
			}
		}
	}
	return p
}

// imagesEqual reports whether two images have identical geometry and
// pixels.
func imagesEqual(a, b *vfx.Image) bool {
	if a.Width() != b.Width() || a.Height() != b.Height() || a.Channels() != b.Channels() {
		return false
	}
	ad, bd := a.Data(), b.Data()
	for i := range ad {
		if ad[i] != bd[i] {
			return false
		}
	}
	return true
}

// firstDiff returns the first differing index between two image buffers,
// or -1 if they are identical. Used for failure messages.
func firstDiff(a, b *vfx.Image) int {
	ad, bd := a.Data(), b.Data()
	for i := range ad {
		if ad[i] != bd[i] {
			return i
		}
	}
	return -1
}

// absDiff returns the absolute difference of two byte values as an int.
func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}
