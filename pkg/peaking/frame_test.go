package peaking

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDecodeFrame(t *testing.T) {
	const w, h = 16, 12
	src := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	f, err := DecodeFrame(encodePNG(t, src))
	if err != nil {
		t.Fatalf("DecodeFrame failed: %v", err)
	}
	defer f.Close()

	if f.Width() != w || f.Height() != h {
		t.Fatalf("decoded %dx%d, want %dx%d", f.Width(), f.Height(), w, h)
	}
	pix := f.Data()
	if pix[0] != 50 || pix[1] != 100 || pix[2] != 200 {
		t.Errorf("pixel (0,0) = BGR %v, want [50 100 200]", pix[0:3])
	}
}

func TestDecodeFrame_Invalid(t *testing.T) {
	if _, err := DecodeFrame([]byte("not an image")); err == nil {
		t.Error("DecodeFrame accepted garbage bytes")
	}
}

func TestEncodeJPEGRoundTrip(t *testing.T) {
	const w, h = 32, 24
	f := newUniformFrame(t, w, h, 10, 120, 240)
	defer f.Close()

	data, err := f.EncodeJPEG()
	if err != nil {
		t.Fatalf("EncodeJPEG failed: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("EncodeJPEG returned no bytes")
	}

	back, err := DecodeFrame(data)
	if err != nil {
		t.Fatalf("decoding encoded frame: %v", err)
	}
	defer back.Close()
	if back.Width() != w || back.Height() != h {
		t.Errorf("round trip: %dx%d, want %dx%d", back.Width(), back.Height(), w, h)
	}
}

func TestDataLength(t *testing.T) {
	const w, h = 24, 10
	f := NewFrame(w, h)
	defer f.Close()
	if len(f.Data()) != w*h*3 {
		t.Errorf("NewFrame data length = %d, want %d", len(f.Data()), w*h*3)
	}

	c := f.Clone()
	defer c.Close()
	if len(c.Data()) != w*h*3 {
		t.Errorf("Clone data length = %d, want %d", len(c.Data()), w*h*3)
	}

	d, err := DecodeFrame(encodePNG(t, image.NewNRGBA(image.Rect(0, 0, w, h))))
	if err != nil {
		t.Fatal(err)
	}
	defer d.Close()
	if len(d.Data()) != w*h*3 {
		t.Errorf("DecodeFrame data length = %d, want %d", len(d.Data()), w*h*3)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	f := newUniformFrame(t, 8, 8, 1, 2, 3)
	defer f.Close()

	c := f.Clone()
	defer c.Close()
	c.Data()[0] = 99

	if f.Data()[0] != 1 {
		t.Error("mutating a clone changed the original frame")
	}
}
