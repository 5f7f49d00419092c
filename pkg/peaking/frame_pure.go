//go:build purego || js

package peaking

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Frame is a pure Go BGR image: 8 bits per channel, blue/green/red order,
// interleaved, row-major.
type Frame struct {
	width  int
	height int
	pix    []byte
}

// NewFrame creates a zero-initialized BGR frame.
func NewFrame(width, height int) Frame {
	return Frame{width: width, height: height, pix: make([]byte, width*height*3)}
}

func (f Frame) Width() int  { return f.width }
func (f Frame) Height() int { return f.height }
func (f Frame) Empty() bool { return f.pix == nil || f.width == 0 || f.height == 0 }

func (f Frame) Clone() Frame {
	pix := make([]byte, len(f.pix))
	copy(pix, f.pix)
	return Frame{width: f.width, height: f.height, pix: pix}
}

func (f *Frame) Close() {
	f.pix = nil
	f.width = 0
	f.height = 0
}

// Data returns the frame's pixel buffer as interleaved BGR bytes, row-major.
// Mutations write through to the frame.
func (f Frame) Data() []byte { return f.pix }

// DecodeFrame decodes an encoded image (JPEG, PNG, ...) into a BGR frame,
// honoring EXIF orientation.
func DecodeFrame(data []byte) (Frame, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return Frame{}, fmt.Errorf("%w: %v", ErrDecodeFailure, err)
	}
	src := imaging.Clone(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	if w == 0 || h == 0 {
		return Frame{}, fmt.Errorf("%w: no image data", ErrDecodeFailure)
	}

	f := NewFrame(w, h)
	for y := 0; y < h; y++ {
		si := y * src.Stride
		di := y * w * 3
		for x := 0; x < w; x++ {
			f.pix[di] = src.Pix[si+2]
			f.pix[di+1] = src.Pix[si+1]
			f.pix[di+2] = src.Pix[si]
			si += 4
			di += 3
		}
	}
	return f, nil
}

// EncodeJPEG encodes the frame as JPEG bytes.
func (f Frame) EncodeJPEG() ([]byte, error) {
	img := image.NewNRGBA(image.Rect(0, 0, f.width, f.height))
	for y := 0; y < f.height; y++ {
		si := y * f.width * 3
		di := y * img.Stride
		for x := 0; x < f.width; x++ {
			img.Pix[di] = f.pix[si+2]
			img.Pix[di+1] = f.pix[si+1]
			img.Pix[di+2] = f.pix[si]
			img.Pix[di+3] = 255
			si += 3
			di += 4
		}
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(90)); err != nil {
		return nil, fmt.Errorf("encoding frame: %w", err)
	}
	return buf.Bytes(), nil
}
