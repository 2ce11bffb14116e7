// Package pixmap holds the decoded raster and the sampling/transform
// operations built on top of it: sampling, scaling, grayscale conversion,
// rotation, and PPM/ASCII export.
package pixmap

import (
	"github.com/pkg/errors"
)

// Pixmap is a densely packed, row-major raster: width * height pixels, each
// NChannels samples wide, each sample BitDepth bits (only 8 is exercised by
// the operations in this package).
type Pixmap struct {
	Width     int
	Height    int
	NChannels uint8
	BitDepth  uint8
	Data      []byte
}

// Rgba is a sampled pixel, always 4 components wide: 3-channel sources
// report Alpha == 255.
type Rgba struct {
	R, G, B, A uint8
}

// pixelBytes is n_channels * (bit_depth > 8 ? 2 : 1), the byte width of one
// pixel.
func pixelBytes(nChannels, bitDepth uint8) int {
	if bitDepth > 8 {
		return int(nChannels) * 2
	}
	return int(nChannels)
}

// ScanlineBytes is ceil(width * n_channels * bit_depth / 8).
func (p *Pixmap) ScanlineBytes() int {
	bits := p.Width * int(p.NChannels) * int(p.BitDepth)
	return (bits + 7) / 8
}

// PixelBytes is the per-pixel byte width.
func (p *Pixmap) PixelBytes() int {
	return pixelBytes(p.NChannels, p.BitDepth)
}

// New allocates a Pixmap of the given shape with a zeroed data buffer sized
// len(data) == scanline_bytes*height.
func New(width, height int, nChannels, bitDepth uint8) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("pixmap: invalid dimensions %dx%d", width, height)
	}
	p := &Pixmap{Width: width, Height: height, NChannels: nChannels, BitDepth: bitDepth}
	p.Data = make([]byte, p.ScanlineBytes()*height)
	return p, nil
}

// FromBytes wraps an already-reconstructed, exactly-sized byte buffer as a
// Pixmap, verifying its size invariant rather than re-copying it.
func FromBytes(width, height int, nChannels, bitDepth uint8, data []byte) (*Pixmap, error) {
	p := &Pixmap{Width: width, Height: height, NChannels: nChannels, BitDepth: bitDepth}
	want := p.ScanlineBytes() * height
	if len(data) != want {
		return nil, errors.Errorf("pixmap: data is %d bytes, want %d", len(data), want)
	}
	p.Data = data
	return p, nil
}

// pixelOffset returns the byte offset of pixel (x, y).
func (p *Pixmap) pixelOffset(x, y int) int {
	return y*p.ScanlineBytes() + x*p.PixelBytes()
}

// at reads the raw pixel bytes at (x, y) as an Rgba, filling alpha with 255
// for 3-channel sources. x and y must already be in range.
func (p *Pixmap) at(x, y int) Rgba {
	off := p.pixelOffset(x, y)
	switch p.NChannels {
	case 1:
		v := p.Data[off]
		return Rgba{v, v, v, 255}
	case 2:
		v := p.Data[off]
		return Rgba{v, v, v, p.Data[off+1]}
	case 3:
		return Rgba{p.Data[off], p.Data[off+1], p.Data[off+2], 255}
	case 4:
		return Rgba{p.Data[off], p.Data[off+1], p.Data[off+2], p.Data[off+3]}
	default:
		return Rgba{}
	}
}

// setAt writes px's components into pixel (x, y), truncating to the
// pixmap's channel count (e.g. dropping alpha for a 3-channel target).
func (p *Pixmap) setAt(x, y int, px Rgba) {
	off := p.pixelOffset(x, y)
	switch p.NChannels {
	case 1:
		p.Data[off] = px.R
	case 2:
		p.Data[off] = px.R
		p.Data[off+1] = px.A
	case 3:
		p.Data[off] = px.R
		p.Data[off+1] = px.G
		p.Data[off+2] = px.B
	case 4:
		p.Data[off] = px.R
		p.Data[off+1] = px.G
		p.Data[off+2] = px.B
		p.Data[off+3] = px.A
	}
}
