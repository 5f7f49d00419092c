package peaking

import (
	"fmt"
	"math"
)

// ExtractEdgeResponse converts a frame into a per-pixel high-frequency
// response: luminance conversion, 5x5 Gaussian smoothing, then the selected
// detector with both edge polarities folded into a non-negative magnitude.
// The response shares the frame's dimensions and is not yet bounded to
// [0, 255]. The caller owns the returned Response and must Close it.
func ExtractEdgeResponse(f Frame, d Detector) Response {
	luma := frameLuma(f)
	defer luma.Close()
	blurred := gaussianBlur5(luma)
	defer blurred.Close()

	switch d {
	case DetectorGradient:
		gx := sobelDeriv(blurred, 1, 0)
		defer gx.Close()
		gy := sobelDeriv(blurred, 0, 1)
		defer gy.Close()
		return gradientMagnitude(gx, gy)
	default:
		resp := laplacian3(blurred)
		absInPlace(resp)
		return resp
	}
}

func absInPlace(r Response) {
	data := r.DataFloat32()
	for i, v := range data[:r.Rows()*r.Cols()] {
		if v < 0 {
			data[i] = -v
		}
	}
}

func gradientMagnitude(gx, gy Response) Response {
	out := newResponse(gx.Rows(), gx.Cols())
	xd, yd, od := gx.DataFloat32(), gy.DataFloat32(), out.DataFloat32()
	for i := 0; i < gx.Rows()*gx.Cols(); i++ {
		x, y := float64(xd[i]), float64(yd[i])
		od[i] = float32(math.Sqrt(x*x + y*y))
	}
	return out
}

// BuildMask min-max normalizes the response to [0, 255] and classifies
// pixels with a normalized value strictly above threshold as in focus. A
// uniform response yields an all-false mask. When clean is set, a 2x2
// morphological opening suppresses isolated single-pixel responses.
func BuildMask(r Response, threshold int, clean bool) Mask {
	rows, cols := r.Rows(), r.Cols()
	mask := newMask(cols, rows)
	n := rows * cols
	if n == 0 {
		return mask
	}

	data := r.DataFloat32()
	minV, maxV := data[0], data[0]
	for _, v := range data[1:n] {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	if maxV == minV {
		return mask
	}

	scale := 255.0 / float64(maxV-minV)
	t := float64(threshold)
	for i := 0; i < n; i++ {
		if float64(data[i]-minV)*scale > t {
			mask.pix[i] = 255
		}
	}

	if clean {
		return openMask(mask)
	}
	return mask
}

// BuildOverlay returns a frame-sized overlay with color written at mask-true
// pixels and zero elsewhere. Batch callers can hold on to it and re-blend
// with different alphas without recomputing edges.
func BuildOverlay(f Frame, m Mask, c HighlightColor) Frame {
	out := NewFrame(f.Width(), f.Height())
	pix := out.Data()
	for i, j := 0, 0; i < len(m.pix); i, j = i+1, j+3 {
		if m.pix[i] != 0 {
			pix[j] = c.B
			pix[j+1] = c.G
			pix[j+2] = c.R
		}
	}
	return out
}

// Blend returns base*1.0 + overlay*alpha per channel, saturating at 255.
// Pixels where the overlay is zero come back byte-identical to base. Both
// frames must share the same dimensions.
func Blend(base, overlay Frame, alpha float64) Frame {
	out := base.Clone()
	dst := out.Data()
	src := overlay.Data()
	for i, v := range src {
		if v == 0 {
			continue
		}
		s := int(dst[i]) + int(math.Round(float64(v)*alpha))
		if s > 255 {
			s = 255
		}
		dst[i] = uint8(s)
	}
	return out
}

// Composite paints color at mask-true pixels and blends it onto the frame in
// one pass, without materializing the intermediate overlay. Pixels where the
// mask is false come back byte-identical to the input.
func Composite(f Frame, m Mask, c HighlightColor, alpha float64) Frame {
	addB := int(math.Round(float64(c.B) * alpha))
	addG := int(math.Round(float64(c.G) * alpha))
	addR := int(math.Round(float64(c.R) * alpha))

	out := f.Clone()
	pix := out.Data()
	for i, j := 0, 0; i < len(m.pix); i, j = i+1, j+3 {
		if m.pix[i] == 0 {
			continue
		}
		pix[j] = satAdd(pix[j], addB)
		pix[j+1] = satAdd(pix[j+1], addG)
		pix[j+2] = satAdd(pix[j+2], addR)
	}
	return out
}

func satAdd(v uint8, add int) uint8 {
	s := int(v) + add
	if s > 255 {
		return 255
	}
	return uint8(s)
}

// Apply runs the full pipeline on one frame: validate parameters, extract
// the edge response, build the focus mask and composite the highlight. The
// caller owns both the input and the returned frame.
func Apply(f Frame, p *Params) (Frame, error) {
	if err := p.Validate(); err != nil {
		return Frame{}, err
	}
	if f.Empty() {
		return Frame{}, fmt.Errorf("%w: zero-size frame", ErrEmptySource)
	}

	resp := ExtractEdgeResponse(f, p.Detector)
	defer resp.Close()
	mask := BuildMask(resp, p.Threshold, p.CleanMask)
	return Composite(f, mask, p.Color, p.BlendAlpha), nil
}
