// Package filter implements the vfx filter library: pure pixel transforms
// and small-kernel convolutions over vfx buffers.
//
// Every filter reads one source buffer (two for the gradient-pair
// transforms) and returns a freshly allocated destination; inputs are
// never mutated and no state is shared between calls. Filters whose
// kernel footprint cannot cover a border pixel copy that pixel through
// from the source unchanged.
//
// The 5×5 blur exists in five access-strategy variants (see Strategy)
// that produce identical pixels; they are kept side by side so the bench
// package can time memory-access patterns against each other.
package filter
