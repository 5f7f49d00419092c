package peaking

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// bgrImage adapts a frame's pixel buffer to the draw.Image interface so the
// font drawer can write into it directly.
type bgrImage struct {
	pix    []byte
	width  int
	height int
}

func (im *bgrImage) ColorModel() color.Model { return color.RGBAModel }
func (im *bgrImage) Bounds() image.Rectangle { return image.Rect(0, 0, im.width, im.height) }

func (im *bgrImage) At(x, y int) color.Color {
	i := (y*im.width + x) * 3
	return color.RGBA{R: im.pix[i+2], G: im.pix[i+1], B: im.pix[i], A: 255}
}

func (im *bgrImage) Set(x, y int, c color.Color) {
	if x < 0 || y < 0 || x >= im.width || y >= im.height {
		return
	}
	r, g, b, _ := c.RGBA()
	i := (y*im.width + x) * 3
	im.pix[i] = uint8(b >> 8)
	im.pix[i+1] = uint8(g >> 8)
	im.pix[i+2] = uint8(r >> 8)
}

// DrawLabel burns a one-line status label into the top-left corner of the
// frame, over a dark backing strip for readability.
func DrawLabel(f Frame, text string) {
	if f.Empty() || text == "" {
		return
	}

	img := &bgrImage{pix: f.Data(), width: f.Width(), height: f.Height()}
	face := basicfont.Face7x13

	const pad = 4
	stripW := font.MeasureString(face, text).Round() + 2*pad
	stripH := face.Height + 2*pad
	dark := color.RGBA{32, 32, 32, 255}
	for y := 0; y < stripH && y < img.height; y++ {
		for x := 0; x < stripW && x < img.width; x++ {
			img.Set(x, y, dark)
		}
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{255, 255, 255, 255}),
		Face: face,
		Dot:  fixed.P(pad, pad+face.Ascent),
	}
	d.DrawString(text)
}
