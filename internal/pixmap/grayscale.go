package pixmap

import (
	"math"

	"github.com/pkg/errors"
)

// ToGrayscale returns a new 4-channel pixmap for a 3- or 4-channel input
// (p itself is left unchanged), with RGB set to (0,0,0) and the *inverted*
// luma written into alpha:
//
//	a = 255 - round(0.30*r + 0.59*g + 0.11*b)
//
// This is semantically unusual for an operation named "grayscale", but
// WriteASCII's 4-channel branch depends on alpha encoding darkness this
// way. Use ToGrayscaleRGB for the conventional R=G=B=luma alternative.
func (p *Pixmap) ToGrayscale() (*Pixmap, error) {
	if p.NChannels != 3 && p.NChannels != 4 {
		return nil, errors.Errorf("pixmap: to_grayscale needs 3 or 4 channels, got %d", p.NChannels)
	}

	out, err := New(p.Width, p.Height, 4, p.BitDepth)
	if err != nil {
		return nil, err
	}
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			px := p.at(x, y)
			darkness := uint8(255 - math.Round(Luma601(px.R, px.G, px.B)))
			out.setAt(x, y, Rgba{0, 0, 0, darkness})
		}
	}
	return out, nil
}

// ToGrayscaleRGB is the conventional grayscale conversion, as a distinct
// operation from ToGrayscale: R=G=B=round(luma), alpha untouched (carried
// through for 4-channel inputs, or forced to 255 for 3-channel ones,
// matching SampleNormalized's alpha-less-source rule).
func (p *Pixmap) ToGrayscaleRGB() (*Pixmap, error) {
	if p.NChannels != 3 && p.NChannels != 4 {
		return nil, errors.Errorf("pixmap: to_grayscale_rgb needs 3 or 4 channels, got %d", p.NChannels)
	}

	out, err := New(p.Width, p.Height, p.NChannels, p.BitDepth)
	if err != nil {
		return nil, err
	}
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			px := p.at(x, y)
			luma := uint8(math.Round(Luma601(px.R, px.G, px.B)))
			out.setAt(x, y, Rgba{luma, luma, luma, px.A})
		}
	}
	return out, nil
}
