package chunk

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// ColorType is the PNG color-type bitset: PALETTE | COLOR | ALPHA.
type ColorType uint8

const (
	ColorGreyscale      ColorType = 0
	ColorPalette        ColorType = 1 // PALETTE
	ColorTruecolor      ColorType = 2 // COLOR
	ColorIndexed        ColorType = 3 // PALETTE | COLOR
	ColorGreyscaleAlpha ColorType = 4 // ALPHA
	ColorTruecolorAlpha ColorType = 6 // COLOR | ALPHA
)

// Ihdr is the decoded IHDR payload plus the derived channel count.
type Ihdr struct {
	Width           uint32
	Height          uint32
	BitDepth        uint8
	ColorType       ColorType
	CompressMethod  uint8
	FilterMethod    uint8
	InterlaceMethod uint8
	NChannels       uint8
}

// ErrUnsupportedFormat marks an IHDR combination this core doesn't decode:
// indexed color, interlacing, or any color type/bit-depth pair outside the
// truecolor-8 / truecolor-alpha-8 subset this decoder implements.
var ErrUnsupportedFormat = errors.New("chunk: unsupported IHDR format")

// channelsFor derives the channel count from the PNG color type. Returns
// 0, false for color types this core doesn't support (palette).
func channelsFor(ct ColorType) (uint8, bool) {
	switch ct {
	case ColorGreyscale:
		return 1, true
	case ColorTruecolor:
		return 3, true
	case ColorGreyscaleAlpha:
		return 2, true
	case ColorTruecolorAlpha:
		return 4, true
	case ColorIndexed:
		return 0, false
	default:
		return 0, false
	}
}

// allowedBitDepths lists the bit depths PNG permits for a color type this
// core otherwise supports deriving channels for.
func allowedBitDepths(ct ColorType) []uint8 {
	switch ct {
	case ColorGreyscale:
		return []uint8{1, 2, 4, 8, 16}
	case ColorTruecolor, ColorGreyscaleAlpha, ColorTruecolorAlpha:
		return []uint8{8, 16}
	default:
		return nil
	}
}

// DecodeIhdr decodes a 13-byte IHDR payload. It asserts compress_method ==
// filter_method == interlace_method == 0 and rejects color types/bit-depths
// this core cannot decode with ErrUnsupportedFormat.
//
// This decoder only produces pixmaps for color type 2 (truecolor) and 6
// (truecolor+alpha) at bit depth 8; other combinations that are otherwise
// legal PNG (16-bit truecolor, any greyscale) are accepted by
// channelsFor/allowedBitDepths but still rejected here, with a
// distinguishable message, so callers can tell "not a PNG color type at
// all" apart from "a real PNG feature this core doesn't implement".
func DecodeIhdr(data []byte) (Ihdr, error) {
	if len(data) != 13 {
		return Ihdr{}, errors.Errorf("chunk: IHDR length must be 13, got %d", len(data))
	}

	h := Ihdr{
		Width:           binary.BigEndian.Uint32(data[0:4]),
		Height:          binary.BigEndian.Uint32(data[4:8]),
		BitDepth:        data[8],
		ColorType:       ColorType(data[9]),
		CompressMethod:  data[10],
		FilterMethod:    data[11],
		InterlaceMethod: data[12],
	}

	if h.Width == 0 || h.Height == 0 {
		return Ihdr{}, errors.New("chunk: IHDR width/height must be nonzero")
	}
	if h.CompressMethod != 0 {
		return Ihdr{}, errors.Errorf("chunk: unsupported compression method %d", h.CompressMethod)
	}
	if h.FilterMethod != 0 {
		return Ihdr{}, errors.Errorf("chunk: unsupported filter method %d", h.FilterMethod)
	}
	if h.InterlaceMethod != 0 {
		return Ihdr{}, errors.Wrap(ErrUnsupportedFormat, "chunk: interlaced PNGs are out of scope")
	}

	n, ok := channelsFor(h.ColorType)
	if !ok {
		return Ihdr{}, errors.Wrapf(ErrUnsupportedFormat, "chunk: color type %d (e.g. palette) is out of scope", h.ColorType)
	}
	if !bitDepthAllowed(h.BitDepth, allowedBitDepths(h.ColorType)) {
		return Ihdr{}, errors.Wrapf(ErrUnsupportedFormat, "chunk: bit depth %d invalid for color type %d", h.BitDepth, h.ColorType)
	}
	if h.ColorType != ColorTruecolor && h.ColorType != ColorTruecolorAlpha {
		return Ihdr{}, errors.Wrapf(ErrUnsupportedFormat, "chunk: color type %d not implemented by this core (only truecolor/truecolor+alpha)", h.ColorType)
	}
	if h.BitDepth != 8 {
		return Ihdr{}, errors.Wrapf(ErrUnsupportedFormat, "chunk: bit depth %d not implemented by this core (only 8)", h.BitDepth)
	}

	h.NChannels = n
	return h, nil
}

func bitDepthAllowed(bd uint8, allowed []uint8) bool {
	for _, a := range allowed {
		if a == bd {
			return true
		}
	}
	return false
}

// ScanlineBytes computes ceil(width * n_channels * bit_depth / 8), the
// packed byte width of one unfiltered scanline.
func (h Ihdr) ScanlineBytes() int {
	bits := int(h.Width) * int(h.NChannels) * int(h.BitDepth)
	return (bits + 7) / 8
}

// BytesPerPixel is the filter distance in bytes between a pixel and its
// left/up neighbor during filter reconstruction: n_channels * (2 if
// bit_depth > 8 else 1).
func (h Ihdr) BytesPerPixel() int {
	if h.BitDepth > 8 {
		return int(h.NChannels) * 2
	}
	return int(h.NChannels)
}
