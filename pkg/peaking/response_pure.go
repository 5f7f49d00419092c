//go:build purego || js

package peaking

// Response is a pure Go single-channel float32 plane holding a per-pixel
// edge magnitude.
type Response struct {
	data []float32
	rows int
	cols int
}

func newResponse(rows, cols int) Response {
	return Response{data: make([]float32, rows*cols), rows: rows, cols: cols}
}

func (r Response) Rows() int { return r.rows }
func (r Response) Cols() int { return r.cols }

func (r *Response) Close() {
	r.data = nil
	r.rows = 0
	r.cols = 0
}

// DataFloat32 returns the backing float32 buffer, row-major.
func (r Response) DataFloat32() []float32 { return r.data }

func reflectIndex(idx, size int) int {
	if size == 1 {
		return 0
	}
	if idx < 0 {
		idx = -idx
	}
	for idx >= size {
		idx = 2*size - 2 - idx
		if idx < 0 {
			idx = -idx
		}
	}
	return idx
}

// frameLuma converts a BGR frame to a float32 luminance plane in [0, 255]
// using ITU-R BT.601 weights.
func frameLuma(f Frame) Response {
	w, h := f.Width(), f.Height()
	out := newResponse(h, w)
	pix := f.Data()
	for i, j := 0, 0; i < w*h; i, j = i+1, j+3 {
		b := float32(pix[j])
		g := float32(pix[j+1])
		r := float32(pix[j+2])
		out.data[i] = 0.114*b + 0.587*g + 0.299*r
	}
	return out
}

// gaussKernel5 matches OpenCV's fixed 5-tap kernel for an auto-derived
// sigma.
var gaussKernel5 = [5]float32{0.0625, 0.25, 0.375, 0.25, 0.0625}

// gaussianBlur5 applies the separated 5x5 Gaussian with reflected borders.
func gaussianBlur5(src Response) Response {
	rows, cols := src.rows, src.cols
	temp := make([]float32, rows*cols)
	out := newResponse(rows, cols)

	for r := 0; r < rows; r++ {
		off := r * cols
		for c := 0; c < cols; c++ {
			var sum float32
			for k := -2; k <= 2; k++ {
				sum += src.data[off+reflectIndex(c+k, cols)] * gaussKernel5[k+2]
			}
			temp[off+c] = sum
		}
	}
	for r := 0; r < rows; r++ {
		off := r * cols
		for c := 0; c < cols; c++ {
			var sum float32
			for k := -2; k <= 2; k++ {
				sum += temp[reflectIndex(r+k, rows)*cols+c] * gaussKernel5[k+2]
			}
			out.data[off+c] = sum
		}
	}
	return out
}

// laplacian3 computes the second-derivative response over the standard 3x3
// four-neighbor aperture with reflected borders.
func laplacian3(src Response) Response {
	rows, cols := src.rows, src.cols
	out := newResponse(rows, cols)
	for r := 0; r < rows; r++ {
		up := reflectIndex(r-1, rows) * cols
		down := reflectIndex(r+1, rows) * cols
		off := r * cols
		for c := 0; c < cols; c++ {
			left := reflectIndex(c-1, cols)
			right := reflectIndex(c+1, cols)
			out.data[off+c] = src.data[up+c] + src.data[down+c] +
				src.data[off+left] + src.data[off+right] - 4*src.data[off+c]
		}
	}
	return out
}

var (
	sobelSmooth = [3]float32{1, 2, 1}
	sobelDiff   = [3]float32{-1, 0, 1}
)

// sobelDeriv computes a 3x3 Sobel first derivative along one axis, separated
// into a smoothing pass and a central-difference pass.
func sobelDeriv(src Response, dx, dy int) Response {
	kx, ky := sobelSmooth, sobelDiff
	if dx == 1 {
		kx, ky = sobelDiff, sobelSmooth
	}

	rows, cols := src.rows, src.cols
	temp := make([]float32, rows*cols)
	out := newResponse(rows, cols)

	for r := 0; r < rows; r++ {
		off := r * cols
		for c := 0; c < cols; c++ {
			var sum float32
			for k := -1; k <= 1; k++ {
				sum += src.data[off+reflectIndex(c+k, cols)] * kx[k+1]
			}
			temp[off+c] = sum
		}
	}
	for r := 0; r < rows; r++ {
		off := r * cols
		for c := 0; c < cols; c++ {
			var sum float32
			for k := -1; k <= 1; k++ {
				sum += temp[reflectIndex(r+k, rows)*cols+c] * ky[k+1]
			}
			out.data[off+c] = sum
		}
	}
	return out
}
