// Package vfx provides a pixel-transform and convolution engine for
// dense 8-bit images.
//
// # Overview
//
// vfx implements a catalogue of classic video filters (blur, Sobel
// gradients, gradient magnitude, emboss, sepia, quantization and friends)
// over a row-major multi-channel byte buffer. It is a pure-Go CPU engine:
// filters are stateless functions that read one buffer and return a
// freshly allocated result, which makes them trivially composable in a
// per-frame pipeline.
//
// # Quick Start
//
//	import (
//	    "github.com/gopixel/vfx"
//	    "github.com/gopixel/vfx/filter"
//	)
//
//	img := vfx.NewImage(640, 480, 3)
//	// ... fill img from a camera frame or decoded file ...
//
//	out, err := filter.Blur5x5(img, filter.TwoPassRows)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Architecture
//
// The module is organized into:
//   - Root package: Image and Gradient buffers, errors, logging
//   - filter: the filter library and the per-frame Pipeline
//   - bench: wall-clock comparison harness for the blur strategies
//   - cmd/blurtime: CLI front end for the harness
//
// # Coordinate System
//
// Origin (0,0) at top-left, x increases right, y increases down.
// Color images store channels in R, G, B order.
//
// # Performance
//
// Convolution is single-threaded and synchronous. The five blur access
// strategies in the filter package exist to compare memory-access
// patterns; they produce identical pixels.
package vfx

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
