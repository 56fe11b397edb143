package filter

import (
	"errors"

	"github.com/gopixel/vfx"
)

// ErrUnknownMode is returned when a Mode value is out of range.
var ErrUnknownMode = errors.New("filter: unknown filter mode")

// Mode names one filter from the catalogue. A frame pipeline selects its
// active filter by passing a Mode value explicitly; there is no ambient
// toggle state.
type Mode int

const (
	// ModeNone passes frames through untouched.
	ModeNone Mode = iota

	// ModeGreyscale applies the inverted-red greyscale conversion.
	ModeGreyscale

	// ModeSepia applies the sepia tone matrix.
	ModeSepia

	// ModeBlur applies the production 5×5 Gaussian blur.
	ModeBlur

	// ModeSobelX renders the horizontal Sobel response as an 8-bit image.
	ModeSobelX

	// ModeSobelY renders the vertical Sobel response as an 8-bit image.
	ModeSobelY

	// ModeMagnitude renders the Sobel gradient magnitude.
	ModeMagnitude

	// ModeQuantize blurs and quantizes into intensity buckets.
	ModeQuantize

	// ModeEmboss renders an embossed relief from the gradient pair.
	ModeEmboss

	// ModeNegative inverts every channel.
	ModeNegative
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeGreyscale:
		return "greyscale"
	case ModeSepia:
		return "sepia"
	case ModeBlur:
		return "blur"
	case ModeSobelX:
		return "sobelx"
	case ModeSobelY:
		return "sobely"
	case ModeMagnitude:
		return "magnitude"
	case ModeQuantize:
		return "quantize"
	case ModeEmboss:
		return "emboss"
	case ModeNegative:
		return "negative"
	default:
		return "unknown"
	}
}

// Apply runs the filter selected by mode on src. Levels is only consulted
// by ModeQuantize. The Sobel modes return the display form of the signed
// response (absolute value, clamped).
func Apply(mode Mode, src *vfx.Image, levels int) (*vfx.Image, error) {
	switch mode {
	case ModeNone:
		if src.Empty() {
			return nil, vfx.ErrEmptyImage
		}
		return src.Clone(), nil
	case ModeGreyscale:
		return Greyscale(src)
	case ModeSepia:
		return Sepia(src)
	case ModeBlur:
		return Blur(src)
	case ModeSobelX:
		sx, err := SobelX(src)
		if err != nil {
			return nil, err
		}
		return sx.Image(), nil
	case ModeSobelY:
		sy, err := SobelY(src)
		if err != nil {
			return nil, err
		}
		return sy.Image(), nil
	case ModeMagnitude:
		return GradientMagnitude(src)
	case ModeQuantize:
		return BlurQuantize(src, levels)
	case ModeEmboss:
		return EmbossEffect(src)
	case ModeNegative:
		return Negative(src)
	default:
		return nil, ErrUnknownMode
	}
}

// Pipeline processes frames through one active filter followed by a
// brightness adjustment, mirroring a live-video display loop. The zero
// value is not ready to use; call NewPipeline.
type Pipeline struct {
	// Mode selects the active filter for subsequent frames.
	Mode Mode

	// Brightness is the multiplicative factor applied to every frame
	// after the active filter. 1.0 leaves intensity unchanged.
	Brightness float64

	// Levels is the bucket count used when Mode is ModeQuantize.
	Levels int
}

// Default pipeline parameters.
const (
	// DefaultLevels is the quantization bucket count.
	DefaultLevels = 10

	// BrightnessStep is the increment used by brightness adjustment keys.
	BrightnessStep = 0.1
)

// NewPipeline creates a pass-through pipeline with neutral brightness
// and the default quantization level count.
func NewPipeline() *Pipeline {
	return &Pipeline{
		Mode:       ModeNone,
		Brightness: 1.0,
		Levels:     DefaultLevels,
	}
}

// Process runs one frame through the pipeline: the active filter first,
// then the brightness adjustment. On error the input frame is untouched
// and the caller keeps displaying the previous result.
func (p *Pipeline) Process(frame *vfx.Image) (*vfx.Image, error) {
	out, err := Apply(p.Mode, frame, p.Levels)
	if err != nil {
		return nil, err
	}
	return Brightness(out, p.Brightness)
}
