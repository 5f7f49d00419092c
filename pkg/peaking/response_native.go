//go:build !purego && !js

package peaking

import (
	"image"

	"gocv.io/x/gocv"
)

// Response wraps a single-channel float32 gocv.Mat holding a per-pixel edge
// magnitude.
type Response struct {
	m gocv.Mat
}

func newResponse(rows, cols int) Response {
	return Response{m: gocv.NewMatWithSize(rows, cols, gocv.MatTypeCV32F)}
}

func (r Response) Rows() int { return r.m.Rows() }
func (r Response) Cols() int { return r.m.Cols() }
func (r *Response) Close()   { r.m.Close() }

// DataFloat32 returns the backing float32 buffer, row-major.
func (r Response) DataFloat32() []float32 {
	data, _ := r.m.DataPtrFloat32()
	return data
}

// frameLuma converts a BGR frame to a float32 luminance plane in [0, 255].
func frameLuma(f Frame) Response {
	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(f.m, &gray, gocv.ColorBGRToGray)

	out := gocv.NewMat()
	gray.ConvertTo(&out, gocv.MatTypeCV32F)
	return Response{m: out}
}

// gaussianBlur5 applies a 5x5 Gaussian with sigma auto-derived from the
// kernel size.
func gaussianBlur5(src Response) Response {
	out := gocv.NewMat()
	gocv.GaussianBlur(src.m, &out, image.Pt(5, 5), 0, 0, gocv.BorderDefault)
	return Response{m: out}
}

// laplacian3 computes the second-derivative response over the standard 3x3
// four-neighbor aperture.
func laplacian3(src Response) Response {
	out := gocv.NewMat()
	gocv.Laplacian(src.m, &out, gocv.MatTypeCV32F, 1, 1, 0, gocv.BorderDefault)
	return Response{m: out}
}

// sobelDeriv computes a 3x3 Sobel first derivative along one axis.
func sobelDeriv(src Response, dx, dy int) Response {
	out := gocv.NewMat()
	gocv.Sobel(src.m, &out, gocv.MatTypeCV32F, dx, dy, 3, 1, 0, gocv.BorderDefault)
	return Response{m: out}
}
