package peaking

import "fmt"

// Detector selects the high-frequency response operator.
type Detector int

const (
	// DetectorLaplacian is the canonical second-derivative detector: a 3x3
	// aperture that responds symmetrically to both edge polarities.
	DetectorLaplacian Detector = iota
	// DetectorGradient combines 3x3 Sobel first derivatives in both axes as
	// a Euclidean magnitude.
	DetectorGradient
)

func (d Detector) String() string {
	switch d {
	case DetectorLaplacian:
		return "laplacian"
	case DetectorGradient:
		return "gradient"
	default:
		return "unknown"
	}
}

// ParseDetector parses a detector name as used on the CLI and in config
// files.
func ParseDetector(s string) (Detector, error) {
	switch s {
	case "laplacian":
		return DetectorLaplacian, nil
	case "gradient":
		return DetectorGradient, nil
	default:
		return 0, fmt.Errorf("unknown detector %q (want laplacian or gradient)", s)
	}
}

// Default pipeline tuning.
const (
	DefaultThreshold  = 30
	DefaultBlendAlpha = 0.8
)

// Params contains all parameters for one pipeline invocation. Params are
// never mutated by the engine and are not retained across calls.
type Params struct {
	// Threshold is compared against the normalized edge response in
	// [0, 255]. Lower values flag more pixels as in focus; the useful range
	// is roughly 5-50.
	Threshold int
	// Color is the highlight painted at in-focus pixels.
	Color HighlightColor
	// BlendAlpha is the overlay weight in [0, 1].
	BlendAlpha float64
	// Detector selects the edge operator.
	Detector Detector
	// CleanMask applies a 2x2 morphological opening to the focus mask,
	// suppressing isolated single-pixel responses.
	CleanMask bool
}

// NewParams creates Params with default values: threshold 30, pure red
// highlight, 0.8 blend, Laplacian detector, mask cleanup enabled.
func NewParams() *Params {
	return &Params{
		Threshold:  DefaultThreshold,
		Color:      HighlightColor{B: 0, G: 0, R: 255},
		BlendAlpha: DefaultBlendAlpha,
		Detector:   DetectorLaplacian,
		CleanMask:  true,
	}
}

// Validate rejects out-of-range parameters instead of silently clamping
// them.
func (p *Params) Validate() error {
	if p.Threshold < 0 || p.Threshold > 255 {
		return fmt.Errorf("threshold must be in [0, 255], got %d", p.Threshold)
	}
	if p.BlendAlpha < 0 || p.BlendAlpha > 1 {
		return fmt.Errorf("blend alpha must be in [0, 1], got %g", p.BlendAlpha)
	}
	if p.Detector != DetectorLaplacian && p.Detector != DetectorGradient {
		return fmt.Errorf("unknown detector %d", int(p.Detector))
	}
	return nil
}
