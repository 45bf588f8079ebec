package image

import (
	"image"
	"image/color"

	"github.com/huecount/huecount/internal/colour"
)

// Source adapts a decoded image.Image to the colour.PixelSource capability
// interface. The classifier only ever sees width, height and per-pixel RGBA,
// never the decode backend.
//
// Colours are normalised through color.NRGBAModel so alpha stays straight:
// a fully transparent pixel always reports alpha 0 regardless of how the
// decoder premultiplies its colour values.
type Source struct {
	img   image.Image
	nrgba *image.NRGBA
	min   image.Point
}

// NewSource wraps img as a pixel source for classification.
func NewSource(img image.Image) *Source {
	s := &Source{
		img: img,
		min: img.Bounds().Min,
	}
	if nrgba, ok := img.(*image.NRGBA); ok {
		s.nrgba = nrgba
	}
	return s
}

// Width returns the image width in pixels.
func (s *Source) Width() int {
	return s.img.Bounds().Dx()
}

// Height returns the image height in pixels.
func (s *Source) Height() int {
	return s.img.Bounds().Dy()
}

// PixelAt returns the colour at (x, y) with straight alpha. Coordinates are
// zero-based relative to the image bounds.
func (s *Source) PixelAt(x, y int) colour.RGBA {
	if s.nrgba != nil {
		c := s.nrgba.NRGBAAt(s.min.X+x, s.min.Y+y)
		return colour.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
	}

	c := color.NRGBAModel.Convert(s.img.At(s.min.X+x, s.min.Y+y)).(color.NRGBA)
	return colour.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
