package filter

import (
	"errors"
	"testing"

	"github.com/gopixel/vfx"
)

func TestSobelXVerticalEdge(t *testing.T) {
	// Left half 0, right half 255. On uniform columns the kernel
	// reduces to 4*(v(x+1) - v(x-1)), so the two columns flanking the
	// seam respond with 4*255 = 1020 and everything else stays 0.
	src := verticalEdgeImage(12, 8, 3, 0, 255)
	seam := 6

	sx, err := SobelX(src)
	if err != nil {
		t.Fatalf("SobelX error: %v", err)
	}

	for y := 1; y < 7; y++ {
		for x := 1; x < 11; x++ {
			want := int16(0)
			if x == seam-1 || x == seam {
				want = 1020
			}
			if got := sx.Pixel(x, y, 0); got != want {
				t.Fatalf("response at (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestSobelXBorderZero(t *testing.T) {
	src := noiseImage(8, 8, 3)
	sx, err := SobelX(src)
	if err != nil {
		t.Fatalf("SobelX error: %v", err)
	}

	w, h := sx.Width(), sx.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x >= 1 && x < w-1 && y >= 1 && y < h-1 {
				continue
			}
			for c := 0; c < sx.Channels(); c++ {
				if got := sx.Pixel(x, y, c); got != 0 {
					t.Fatalf("border (%d,%d,%d) = %d, want 0", x, y, c, got)
				}
			}
		}
	}
}

func TestSobelYIsTransposeOfSobelX(t *testing.T) {
	src := noiseImage(9, 9, 1)

	// Transposed source.
	tsrc := vfx.NewImage(9, 9, 1)
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			tsrc.SetPixel(y, x, 0, src.Pixel(x, y, 0))
		}
	}

	sx, err := SobelX(src)
	if err != nil {
		t.Fatalf("SobelX error: %v", err)
	}
	sy, err := SobelY(tsrc)
	if err != nil {
		t.Fatalf("SobelY error: %v", err)
	}

	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			if sx.Pixel(x, y, 0) != sy.Pixel(y, x, 0) {
				t.Fatalf("SobelY is not the transpose of SobelX at (%d,%d)", x, y)
			}
		}
	}
}

func TestSobelFlatImageZeroResponse(t *testing.T) {
	src := uniformImage(7, 7, 3, 180)

	sx, err := SobelX(src)
	if err != nil {
		t.Fatalf("SobelX error: %v", err)
	}
	sy, err := SobelY(src)
	if err != nil {
		t.Fatalf("SobelY error: %v", err)
	}
	for i, v := range sx.Data() {
		if v != 0 {
			t.Fatalf("SobelX response %d at index %d on flat image", v, i)
		}
	}
	for i, v := range sy.Data() {
		if v != 0 {
			t.Fatalf("SobelY response %d at index %d on flat image", v, i)
		}
	}
}

func TestMagnitudeClampsTo255(t *testing.T) {
	// A max-contrast edge produces |sx| = 1020, far beyond the 8-bit
	// range. The magnitude must clamp, not wrap.
	src := verticalEdgeImage(12, 8, 3, 0, 255)

	mag, err := GradientMagnitude(src)
	if err != nil {
		t.Fatalf("GradientMagnitude error: %v", err)
	}
	if got := mag.Pixel(5, 4, 0); got != 255 {
		t.Errorf("magnitude at seam = %d, want 255", got)
	}
}

func TestMagnitudeExactValue(t *testing.T) {
	sx := vfx.NewGradient(3, 3, 1)
	sy := vfx.NewGradient(3, 3, 1)
	sx.SetPixel(1, 1, 0, 30)
	sy.SetPixel(1, 1, 0, 40)

	mag, err := Magnitude(sx, sy)
	if err != nil {
		t.Fatalf("Magnitude error: %v", err)
	}
	// sqrt(30² + 40²) = 50
	if got := mag.Pixel(1, 1, 0); got != 50 {
		t.Errorf("magnitude = %d, want 50", got)
	}
	if got := mag.Pixel(0, 0, 0); got != 0 {
		t.Errorf("flat magnitude = %d, want 0", got)
	}
}

func TestMagnitudeDimensionMismatch(t *testing.T) {
	sx := vfx.NewGradient(4, 4, 3)
	sy := vfx.NewGradient(5, 4, 3)

	_, err := Magnitude(sx, sy)
	if !errors.Is(err, vfx.ErrDimensionMismatch) {
		t.Errorf("error = %v, want ErrDimensionMismatch", err)
	}
}

func TestGradientMagnitudeMatchesManualComposition(t *testing.T) {
	src := noiseImage(10, 10, 3)

	sx, err := SobelX(src)
	if err != nil {
		t.Fatalf("SobelX error: %v", err)
	}
	sy, err := SobelY(src)
	if err != nil {
		t.Fatalf("SobelY error: %v", err)
	}
	want, err := Magnitude(sx, sy)
	if err != nil {
		t.Fatalf("Magnitude error: %v", err)
	}

	got, err := GradientMagnitude(src)
	if err != nil {
		t.Fatalf("GradientMagnitude error: %v", err)
	}
	if !imagesEqual(want, got) {
		t.Errorf("composed magnitude differs at index %d", firstDiff(want, got))
	}
}

func TestEmbossFlatImageIsNeutralGrey(t *testing.T) {
	src := uniformImage(8, 8, 3, 90)

	dst, err := EmbossEffect(src)
	if err != nil {
		t.Fatalf("EmbossEffect error: %v", err)
	}
	for i, v := range dst.Data() {
		if v != 128 {
			t.Fatalf("flat emboss value %d at index %d, want 128", v, i)
		}
	}
}

func TestEmbossClamps(t *testing.T) {
	// 0.7071 * 1020 + 128 is far above 255 on the bright side of a
	// max-contrast edge, and far below 0 on the dark side.
	src := verticalEdgeImage(12, 8, 3, 0, 255)

	dst, err := EmbossEffect(src)
	if err != nil {
		t.Fatalf("EmbossEffect error: %v", err)
	}
	if got := dst.Pixel(5, 4, 0); got != 255 {
		t.Errorf("bright seam = %d, want 255", got)
	}

	// Reversed edge drives the projection negative.
	rev := verticalEdgeImage(12, 8, 3, 255, 0)
	dst, err = EmbossEffect(rev)
	if err != nil {
		t.Fatalf("EmbossEffect error: %v", err)
	}
	if got := dst.Pixel(5, 4, 0); got != 0 {
		t.Errorf("dark seam = %d, want 0", got)
	}
}

func TestEmbossDimensionMismatch(t *testing.T) {
	sx := vfx.NewGradient(4, 4, 3)
	sy := vfx.NewGradient(4, 5, 3)

	_, err := Emboss(sx, sy)
	if !errors.Is(err, vfx.ErrDimensionMismatch) {
		t.Errorf("error = %v, want ErrDimensionMismatch", err)
	}
}

func TestGradientFiltersEmptyInput(t *testing.T) {
	empty := vfx.NewImage(0, 0, 3)
	emptyGrad := vfx.NewGradient(0, 0, 3)
	valid := vfx.NewGradient(3, 3, 3)

	tests := []struct {
		name string
		call func() error
	}{
		{"sobelx", func() error { _, err := SobelX(empty); return err }},
		{"sobely", func() error { _, err := SobelY(empty); return err }},
		{"magnitude", func() error { _, err := Magnitude(emptyGrad, valid); return err }},
		{"emboss", func() error { _, err := Emboss(valid, emptyGrad); return err }},
		{"gradient magnitude", func() error { _, err := GradientMagnitude(empty); return err }},
		{"emboss effect", func() error { _, err := EmbossEffect(empty); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, vfx.ErrEmptyImage) {
				t.Errorf("error = %v, want ErrEmptyImage", err)
			}
		})
	}
}
