package peaking

// Mask is a per-pixel focus classification with the same dimensions as the
// frame it was built from, stored as 0/255 bytes in row-major order.
type Mask struct {
	width  int
	height int
	pix    []uint8
}

func newMask(width, height int) Mask {
	return Mask{width: width, height: height, pix: make([]uint8, width*height)}
}

func (m Mask) Width() int  { return m.width }
func (m Mask) Height() int { return m.height }

// At reports whether the pixel at (x, y) is classified in focus.
func (m Mask) At(x, y int) bool { return m.pix[y*m.width+x] != 0 }

// CountTrue returns the number of in-focus pixels.
func (m Mask) CountTrue() int {
	count := 0
	for _, v := range m.pix {
		if v != 0 {
			count++
		}
	}
	return count
}

// openMask applies a 2x2 morphological opening (erosion then dilation) to
// remove isolated single-pixel responses. Structuring-element positions
// outside the grid are ignored, so border pixels only erode against their
// in-bounds neighbors.
func openMask(m Mask) Mask {
	erodeOffsets := [3][2]int{{1, 0}, {0, 1}, {1, 1}}
	dilateOffsets := [4][2]int{{0, 0}, {-1, 0}, {0, -1}, {-1, -1}}

	eroded := newMask(m.width, m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if !m.At(x, y) {
				continue
			}
			keep := true
			for _, d := range erodeOffsets {
				nx, ny := x+d[0], y+d[1]
				if nx >= m.width || ny >= m.height {
					continue
				}
				if !m.At(nx, ny) {
					keep = false
					break
				}
			}
			if keep {
				eroded.pix[y*m.width+x] = 255
			}
		}
	}

	opened := newMask(m.width, m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			for _, d := range dilateOffsets {
				nx, ny := x+d[0], y+d[1]
				if nx < 0 || ny < 0 {
					continue
				}
				if eroded.At(nx, ny) {
					opened.pix[y*m.width+x] = 255
					break
				}
			}
		}
	}
	return opened
}
