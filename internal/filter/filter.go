// Package filter reverses PNG's per-scanline filter transforms: None, Sub,
// Up, Average, and Paeth. Each scanline is reconstructed against the
// previously reconstructed scanline, never against the still-filtered
// input, so the previous-row buffer passed in must always be a distinct
// buffer from the row currently being reversed.
package filter

import (
	"github.com/pkg/errors"
)

// Type is a per-scanline filter type byte.
type Type uint8

const (
	None    Type = 0
	Sub     Type = 1
	Up      Type = 2
	Average Type = 3
	Paeth   Type = 4
)

// ErrBadFilterType marks a malformed chunk stream: a filter byte outside
// 0..4.
var ErrBadFilterType = errors.New("filter: bad filter type byte")

// Paeth is the PNG Paeth predictor: the linear predictor a+b-c snapped to
// whichever of a, b, c is closest to it. Arithmetic is carried out in int
// (at least 32 bits signed) before the final byte reduction happens at the
// call site.
func Paeth(a, b, c int) int {
	p := a + b - c
	pa := abs(p - a)
	pb := abs(p - b)
	pc := abs(p - c)
	switch {
	case pa <= pb && pa <= pc:
		return a
	case pb <= pc:
		return b
	default:
		return c
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ReverseScanline reconstructs one scanline in place. s is the filtered
// scanline bytes (post filter-type byte) and is overwritten with the
// reconstructed bytes; prev is the previously reconstructed scanline (all
// zeros for row 0) and must not overlap s; it may be another region of the
// same backing array, as Reconstruct passes it. bpp is the
// filter distance in bytes: the byte offset between a pixel and its left
// neighbor.
func ReverseScanline(ft Type, s, prev []byte, bpp int) error {
	switch ft {
	case None:
		// no-op: S[i] already holds R[i]
	case Sub:
		for i := range s {
			a := 0
			if i >= bpp {
				a = int(s[i-bpp])
			}
			s[i] = byte(int(s[i]) + a)
		}
	case Up:
		for i := range s {
			s[i] = byte(int(s[i]) + int(prev[i]))
		}
	case Average:
		for i := range s {
			a := 0
			if i >= bpp {
				a = int(s[i-bpp])
			}
			b := int(prev[i])
			s[i] = byte(int(s[i]) + (a+b)/2)
		}
	case Paeth:
		for i := range s {
			a, c := 0, 0
			if i >= bpp {
				a = int(s[i-bpp])
				c = int(prev[i-bpp])
			}
			b := int(prev[i])
			s[i] = byte(int(s[i]) + Paeth(a, b, c))
		}
	default:
		return errors.Wrapf(ErrBadFilterType, "filter: ft=%d", ft)
	}
	return nil
}
