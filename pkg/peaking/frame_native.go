//go:build !purego && !js

package peaking

import (
	"fmt"

	"gocv.io/x/gocv"
)

// Frame wraps a gocv BGR image for the native OpenCV backend: 8 bits per
// channel, blue/green/red order.
type Frame struct {
	m gocv.Mat
}

// NewFrame creates a zero-initialized BGR frame.
func NewFrame(width, height int) Frame {
	return Frame{m: gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), height, width, gocv.MatTypeCV8UC3)}
}

func (f Frame) Width() int   { return f.m.Cols() }
func (f Frame) Height() int  { return f.m.Rows() }
func (f Frame) Empty() bool  { return f.m.Closed() || f.m.Empty() }
func (f Frame) Clone() Frame { return Frame{m: f.m.Clone()} }
func (f *Frame) Close()      { f.m.Close() }

// Data returns the frame's pixel buffer as interleaved BGR bytes, row-major.
// Mutations write through to the frame. Every constructor in this package
// produces a contiguous mat; a non-contiguous mat (a region view) is a
// programming error and panics here rather than returning nil.
func (f Frame) Data() []byte {
	data, err := f.m.DataPtrUint8()
	if err != nil {
		panic("peaking: frame mat is not contiguous: " + err.Error())
	}
	return data
}

// DecodeFrame decodes an encoded image (JPEG, PNG, ...) into a BGR frame.
func DecodeFrame(data []byte) (Frame, error) {
	m, err := gocv.IMDecode(data, gocv.IMReadColor)
	if err != nil {
		return Frame{}, fmt.Errorf("%w: %v", ErrDecodeFailure, err)
	}
	if m.Empty() {
		m.Close()
		return Frame{}, fmt.Errorf("%w: no image data", ErrDecodeFailure)
	}
	return Frame{m: m}, nil
}

// EncodeJPEG encodes the frame as JPEG bytes.
func (f Frame) EncodeJPEG() ([]byte, error) {
	buf, err := gocv.IMEncode(gocv.JPEGFileExt, f.m)
	if err != nil {
		return nil, fmt.Errorf("encoding frame: %w", err)
	}
	defer buf.Close()
	out := make([]byte, len(buf.GetBytes()))
	copy(out, buf.GetBytes())
	return out, nil
}
