package filter

import "testing"

// BenchmarkBlur5x5Strategies compares the access strategies on a
// video-sized frame. The strategies are pixel-identical; only the memory
// access pattern differs.
func BenchmarkBlur5x5Strategies(b *testing.B) {
	sizes := []struct {
		name   string
		width  int
		height int
	}{
		{"320x240", 320, 240},
		{"640x480", 640, 480},
		{"1280x720", 1280, 720},
	}

	for _, size := range sizes {
		src := noiseImage(size.width, size.height, 3)
		for _, s := range Strategies() {
			b.Run(size.name+"/"+s.String(), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := Blur5x5(src, s); err != nil {
						b.Fatal(err)
					}
				}
				b.SetBytes(int64(size.width * size.height * 3))
			})
		}
	}
}

// BenchmarkGauss3x3 tracks the small-kernel convolution baseline.
func BenchmarkGauss3x3(b *testing.B) {
	src := noiseImage(640, 480, 3)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Gauss3x3(src); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGradientMagnitude tracks the composed Sobel pipeline.
func BenchmarkGradientMagnitude(b *testing.B) {
	src := noiseImage(640, 480, 3)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := GradientMagnitude(src); err != nil {
			b.Fatal(err)
		}
	}
}
